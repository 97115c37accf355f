package main

import (
	"address-book/services"
	"flag"
	"fmt"
	"io"
	"slices"
	"strings"
)

var errUsage = fmt.Errorf("usage")

type command struct {
	name    string
	usage   string
	mutates bool
	run     func(service services.IAddressBookService, args []string, out io.Writer) error
}

var commands = []command{
	{"add", "add [-birthday dd/mm/yyyy] NAME [PHONE...]", true, addContact},
	{"phone-add", "phone-add NAME PHONE", true, addPhone},
	{"phone-change", "phone-change NAME OLD_PHONE NEW_PHONE", true, changePhone},
	{"phone-remove", "phone-remove NAME PHONE", true, removePhone},
	{"birthday", "birthday NAME dd/mm/yyyy", true, setBirthday},
	{"delete", "delete NAME", true, deleteContact},
	{"show", "show NAME", false, showContact},
	{"list", "list", false, listContacts},
	{"upcoming", "upcoming [-days N]", false, upcomingBirthdays},
}

// execute runs the command named by args[0]. It reports whether the address
// book was changed and has to be saved.
func execute(service services.IAddressBookService, args []string, out io.Writer) (bool, error) {
	if len(args) == 0 {
		return false, fmt.Errorf("%w:\n%s", errUsage, usage())
	}
	i := slices.IndexFunc(commands, func(c command) bool { return c.name == args[0] })
	if i < 0 {
		return false, fmt.Errorf("unknown command %q, %w:\n%s", args[0], errUsage, usage())
	}
	cmd := commands[i]
	if err := cmd.run(service, args[1:], out); err != nil {
		if err == errUsage {
			return false, fmt.Errorf("%w: %s", errUsage, cmd.usage)
		}
		return false, err
	}
	return cmd.mutates, nil
}

func usage() string {
	lines := make([]string, len(commands))
	for i, c := range commands {
		lines[i] = "  " + c.usage
	}
	return strings.Join(lines, "\n")
}

func exactArgs(args []string, n int) error {
	if len(args) != n {
		return errUsage
	}
	return nil
}

func addContact(service services.IAddressBookService, args []string, _ io.Writer) error {
	fs := flag.NewFlagSet("add", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	birthday := fs.String("birthday", "", "birthday formatted as dd/mm/yyyy")
	if err := fs.Parse(args); err != nil || fs.NArg() == 0 {
		return errUsage
	}
	return service.AddContact(fs.Arg(0), fs.Args()[1:], *birthday)
}

func addPhone(service services.IAddressBookService, args []string, _ io.Writer) error {
	if err := exactArgs(args, 2); err != nil {
		return err
	}
	return service.AddPhone(args[0], args[1])
}

func changePhone(service services.IAddressBookService, args []string, _ io.Writer) error {
	if err := exactArgs(args, 3); err != nil {
		return err
	}
	return service.ChangePhone(args[0], args[1], args[2])
}

func removePhone(service services.IAddressBookService, args []string, _ io.Writer) error {
	if err := exactArgs(args, 2); err != nil {
		return err
	}
	return service.RemovePhone(args[0], args[1])
}

func setBirthday(service services.IAddressBookService, args []string, _ io.Writer) error {
	if err := exactArgs(args, 2); err != nil {
		return err
	}
	return service.SetBirthday(args[0], args[1])
}

func deleteContact(service services.IAddressBookService, args []string, _ io.Writer) error {
	if err := exactArgs(args, 1); err != nil {
		return err
	}
	return service.DeleteContact(args[0])
}

func showContact(service services.IAddressBookService, args []string, out io.Writer) error {
	if err := exactArgs(args, 1); err != nil {
		return err
	}
	entry, err := service.Show(args[0])
	if err != nil {
		return err
	}
	days, err := service.DaysToBirthday(args[0])
	if err != nil {
		return err
	}
	renderContact(out, entry, days)
	return nil
}

func listContacts(service services.IAddressBookService, args []string, out io.Writer) error {
	if err := exactArgs(args, 0); err != nil {
		return err
	}
	renderContacts(out, service.List())
	return nil
}

func upcomingBirthdays(service services.IAddressBookService, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("upcoming", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	within := fs.Int("days", 7, "look ahead window in days")
	if err := fs.Parse(args); err != nil || fs.NArg() != 0 || *within < 0 {
		return errUsage
	}
	renderUpcoming(out, service.UpcomingBirthdays(*within))
	return nil
}

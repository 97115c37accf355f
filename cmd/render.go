package main

import (
	"address-book/domain"
	"address-book/services"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
)

func newTable(out io.Writer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(out)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	return table
}

func renderContacts(out io.Writer, entries []domain.ContactEntry) {
	if len(entries) == 0 {
		fmt.Fprintln(out, "The address book is empty")
		return
	}
	table := newTable(out, []string{"Name", "Phones", "Birthday"})
	table.AppendBulk(lo.Map(entries, func(e domain.ContactEntry, _ int) []string {
		return []string{e.Name, e.JoinedPhones(), e.Birthday}
	}))
	table.Render()
}

func renderContact(out io.Writer, entry domain.ContactEntry, days *int) {
	next := "-"
	if days != nil {
		next = strconv.Itoa(*days)
	}
	table := newTable(out, []string{"Name", "Phones", "Birthday", "Days to birthday"})
	table.Append([]string{entry.Name, entry.JoinedPhones(), entry.Birthday, next})
	table.Render()
}

func renderUpcoming(out io.Writer, upcoming []services.UpcomingBirthday) {
	if len(upcoming) == 0 {
		fmt.Fprintln(out, "No upcoming birthdays")
		return
	}
	table := newTable(out, []string{"Name", "Birthday", "Days"})
	table.AppendBulk(lo.Map(upcoming, func(u services.UpcomingBirthday, _ int) []string {
		return []string{u.Name, u.Birthday, strconv.Itoa(u.Days)}
	}))
	table.Render()
}

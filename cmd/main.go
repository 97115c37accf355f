package main

import (
	"address-book/repositories"
	"address-book/services"
	"fmt"
	"io"
	"os"

	"github.com/Netflix/go-env"
	"github.com/benbjohnson/clock"
	"github.com/gookit/color"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, color.New(color.FgRed, color.OpBold).Render("Error: ")+err.Error())
		os.Exit(1)
	}
}

// run loads the configuration, opens the address book, executes one command and
// saves the book back when the command changed it.
func run(args []string, out io.Writer) error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	if err := repositories.ValidateBackend(config.StorageBackend); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Storage
	repository, closeStorage, err := repositories.NewRepository(repositories.StorageConfig{
		Backend:        config.StorageBackend,
		FilePath:       config.AddressBookFile,
		BadgerFilepath: config.BadgerFilepath,
	}, log)
	if err != nil {
		return err
	}
	defer closeStorage()

	// 3. Load, execute, save
	service := services.NewAddressBookService(repository, clock.New(), log)
	if err = service.Open(); err != nil {
		return err
	}
	changed, err := execute(service, args, out)
	if err != nil {
		return err
	}
	if changed {
		return service.Close()
	}
	return nil
}

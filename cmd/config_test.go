package main

import (
	"os"
	"testing"

	"github.com/Netflix/go-env"
	"github.com/stretchr/testify/require"
)

func Test_Config_Defaults(t *testing.T) {
	req := require.New(t)
	for _, key := range []string{"ADDRESS_BOOK_FILE", "STORAGE_BACKEND", "BADGER_FILEPATH", "LOG_LEVEL"} {
		// Setenv restores the previous value once the test is over
		t.Setenv(key, "")
		req.NoError(os.Unsetenv(key))
	}

	var config Config
	_, err := env.UnmarshalFromEnviron(&config)
	req.NoError(err)
	req.Equal(Config{
		AddressBookFile: "phonebook.txt",
		StorageBackend:  "file",
		BadgerFilepath:  "addressbook.db",
		LogLevel:        "WARN",
	}, config)
}

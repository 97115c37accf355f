package main

type Config struct {
	AddressBookFile string `env:"ADDRESS_BOOK_FILE,default=phonebook.txt"`
	StorageBackend  string `env:"STORAGE_BACKEND,default=file"`
	BadgerFilepath  string `env:"BADGER_FILEPATH,default=addressbook.db"`
	LogLevel        string `env:"LOG_LEVEL,default=WARN"`
}

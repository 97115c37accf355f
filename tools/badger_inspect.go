package main

import (
	"address-book/repositories"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/olekukonko/tablewriter"
)

// Dumps the raw contact snapshot of a badger address book, key by key.
func main() {
	dbPath := flag.String("db", "addressbook.db", "Path to badger DB")
	prefix := flag.String("prefix", repositories.ContactPrefix, "Prefix to scan")
	flag.Parse()

	db, err := openDB(*dbPath)
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Key", "Name", "Phones", "Birthday", "Size"})
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

	err = db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefixBytes := []byte(*prefix)
		for it.Seek(prefixBytes); it.ValidForPrefix(prefixBytes); it.Next() {
			item := it.Item()
			rawKey := string(item.Key())

			err := item.Value(func(v []byte) error {
				contact, err := repositories.UnmarshalContact(v)
				if err != nil {
					// Keep going, a single corrupted entry should not hide the others
					fmt.Printf("Error unmarshaling key %s: %v\n", rawKey, err)
					return nil
				}
				birthday := contact.Birthday
				if birthday == "" {
					birthday = "-"
				}
				table.Append([]string{
					rawKey,
					contact.Name,
					strings.Join(contact.Phones, ","),
					birthday,
					fmt.Sprintf("%dB", len(v)),
				})
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Fatal(err)
	}

	table.Render()
}

func openDB(path string) (*badger.DB, error) {
	opts := badger.DefaultOptions(path).
		WithReadOnly(true).
		WithLogger(nil).
		WithBypassLockGuard(true)

	db, err := badger.Open(opts)
	if err != nil {
		// A crash while saving can leave a value log that needs truncating,
		// which only a read-write open does
		if strings.Contains(err.Error(), "Log truncate required") {
			repairOpts := badger.DefaultOptions(path).
				WithLogger(nil).WithBypassLockGuard(true)

			db, err = badger.Open(repairOpts)
			if err != nil {
				return nil, fmt.Errorf("repair failed: %w", err)
			}
			db.Close()
			return badger.Open(opts)
		}
		return nil, err
	}
	return db, nil
}

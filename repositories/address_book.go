//go:generate go run go.uber.org/mock/mockgen -source=address_book.go -destination=../mocks/mock_address_book_repository.go -package=mocks
package repositories

import (
	"address-book/domain"
	"address-book/errors"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
)

// IAddressBookRepository persists a whole address book at once.
// Load adds the stored contacts to book through AddRecord, so contacts sharing
// a name are merged. Save replaces everything previously stored.
type IAddressBookRepository interface {
	Load(book *domain.AddressBook) error
	Save(book *domain.AddressBook) error
}

// StoredContact is the backend-neutral shape of a persisted record.
type StoredContact struct {
	Name     string
	Phones   []string
	Birthday string
}

func fromRecord(record *domain.Record) StoredContact {
	birthday, _ := record.Birthday()
	return StoredContact{
		Name:     record.Name(),
		Phones:   record.PhoneStrings(),
		Birthday: birthday.String(),
	}
}

// toRecord replays every field through the validating setters.
func toRecord(contact StoredContact) (*domain.Record, error) {
	record, err := domain.NewRecord(contact.Name)
	if err != nil {
		return nil, err
	}
	for _, phone := range contact.Phones {
		if err = record.AddPhone(phone); err != nil {
			return nil, err
		}
	}
	if err = record.AddBirthday(contact.Birthday); err != nil {
		return nil, err
	}
	return record, nil
}

// Backend names accepted by configuration.
const (
	FileBackend   = "file"
	BadgerBackend = "badger"
)

func ValidateBackend(name string) error {
	switch name {
	case FileBackend, BadgerBackend:
		return nil
	default:
		return fmt.Errorf("%w: %q", errors.ErrUnknownBackend, name)
	}
}

// StorageConfig selects and locates the backend.
type StorageConfig struct {
	Backend        string
	FilePath       string
	BadgerFilepath string
}

// NewRepository opens the configured backend. The returned function releases
// what the backend holds open and must be called once the book is saved.
func NewRepository(config StorageConfig, log *slog.Logger) (IAddressBookRepository, func(), error) {
	if err := ValidateBackend(config.Backend); err != nil {
		return nil, nil, err
	}
	switch config.Backend {
	case BadgerBackend:
		db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
			WithLoggingLevel(badger.WARNING))
		if err != nil {
			return nil, nil, fmt.Errorf("database opening failed: %w", err)
		}
		closeDB := func() {
			log.Debug("Closing BadgerDB...")
			_ = db.Close()
		}
		return NewBadgerRepository(db, log), closeDB, nil
	default:
		return NewFileRepository(config.FilePath, log), func() {}, nil
	}
}

package repositories

import (
	"address-book/domain"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
	"github.com/samber/lo"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

const ContactPrefix = "contact:"

// BadgerRepository keeps a snapshot of the book in BadgerDB. Unlike the text
// file it also keeps birthdays.
type BadgerRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewBadgerRepository(db *badger.DB, log *slog.Logger) *BadgerRepository {
	return &BadgerRepository{db: db, log: log}
}

// Save replaces the previous snapshot with the new one in a single transaction,
// so a failed save leaves the previous snapshot readable.
// The key is formatted as "contact:{position_padded}" so that badger's sorted
// iteration gives back the insertion order on Load.
func (b BadgerRepository) Save(book *domain.AddressBook) error {
	return b.db.Update(func(txn *badger.Txn) error {
		if err := deletePrefix(txn, []byte(ContactPrefix)); err != nil {
			return fmt.Errorf("drop previous snapshot: %w", err)
		}
		for i, record := range book.Records() {
			data, err := MarshalContact(fromRecord(record))
			if err != nil {
				return err
			}
			key := fmt.Sprintf("%s%06d", ContactPrefix, i)
			if err = txn.Set([]byte(key), data); err != nil {
				return err
			}
		}
		b.log.Debug("Address book snapshot written", "contacts", book.Len())
		return nil
	})
}

func deletePrefix(txn *badger.Txn, prefix []byte) error {
	options := badger.DefaultIteratorOptions
	options.PrefetchValues = false
	it := txn.NewIterator(options)
	var keys [][]byte
	for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
		keys = append(keys, it.Item().KeyCopy(nil))
	}
	it.Close()

	for _, key := range keys {
		if err := txn.Delete(key); err != nil {
			return err
		}
	}
	return nil
}

// Load replays the snapshot into book in key order.
func (b BadgerRepository) Load(book *domain.AddressBook) error {
	var contacts []StoredContact
	err := b.db.View(func(txn *badger.Txn) error {
		prefix := []byte(ContactPrefix)
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			err := item.Value(func(val []byte) error {
				contact, err := UnmarshalContact(val)
				if err != nil {
					return fmt.Errorf("key %s: %w", item.Key(), err)
				}
				contacts = append(contacts, contact)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	for _, contact := range contacts {
		record, err := toRecord(contact)
		if err != nil {
			return err
		}
		if err = book.AddRecord(record); err != nil {
			return err
		}
	}
	b.log.Debug("Address book snapshot loaded", "contacts", book.Len())
	return nil
}

func MarshalContact(contact StoredContact) ([]byte, error) {
	s, err := structpb.NewStruct(map[string]any{
		"name":     contact.Name,
		"phones":   lo.ToAnySlice(contact.Phones),
		"birthday": contact.Birthday,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal failed: %w", err)
	}
	return proto.Marshal(s)
}

func UnmarshalContact(data []byte) (StoredContact, error) {
	var s structpb.Struct
	if err := proto.Unmarshal(data, &s); err != nil {
		return StoredContact{}, fmt.Errorf("unmarshal failed: %w", err)
	}
	fields := s.GetFields()
	phones := lo.Map(fields["phones"].GetListValue().GetValues(), func(v *structpb.Value, _ int) string {
		return v.GetStringValue()
	})
	return StoredContact{
		Name:     fields["name"].GetStringValue(),
		Phones:   phones,
		Birthday: fields["birthday"].GetStringValue(),
	}, nil
}

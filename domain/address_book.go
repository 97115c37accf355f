package domain

import (
	"address-book/errors"
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"
)

// AddressBook maps a contact name to exactly one Record. Adding a record whose
// name is already known merges its phones into the stored one.
type AddressBook struct {
	records map[string]*Record
	order   []string
}

// ContactEntry is a read-only view of a record for display.
type ContactEntry struct {
	Name     string
	Phones   []string
	Birthday string
}

// JoinedPhones is the display form of the phone list.
func (c ContactEntry) JoinedPhones() string {
	return strings.Join(c.Phones, ", ")
}

func NewAddressBook() *AddressBook {
	return &AddressBook{records: make(map[string]*Record)}
}

// AddRecord stores record under its name. When the name exists, each phone of
// record is added to the stored record through AddPhone; the stored birthday is
// left as is.
func (a *AddressBook) AddRecord(record *Record) error {
	existing, ok := a.records[record.Name()]
	if !ok {
		a.records[record.Name()] = record
		a.order = append(a.order, record.Name())
		return nil
	}
	for _, phone := range record.phones {
		if err := existing.AddPhone(phone.String()); err != nil {
			return err
		}
	}
	return nil
}

func (a *AddressBook) Find(name string) (*Record, bool) {
	record, ok := a.records[name]
	return record, ok
}

func (a *AddressBook) RemovePhoneFromContact(name, phone string) {
	if record, ok := a.records[name]; ok {
		record.RemovePhone(phone)
	}
}

func (a *AddressBook) DeleteRecord(name string) error {
	if _, ok := a.records[name]; !ok {
		return fmt.Errorf("%w: %q", errors.ErrContactNotFound, name)
	}
	delete(a.records, name)
	a.order = slices.DeleteFunc(a.order, func(n string) bool { return n == name })
	return nil
}

func (a *AddressBook) Describe(name string) (ContactEntry, error) {
	record, ok := a.records[name]
	if !ok {
		return ContactEntry{}, fmt.Errorf("%w: %q", errors.ErrContactNotFound, name)
	}
	return toEntry(record), nil
}

// ListContacts returns every contact sorted by name.
func (a *AddressBook) ListContacts() []ContactEntry {
	names := slices.Sorted(slices.Values(a.order))
	return lo.Map(names, func(name string, _ int) ContactEntry {
		return toEntry(a.records[name])
	})
}

// Records returns the records in insertion order.
func (a *AddressBook) Records() []*Record {
	return lo.Map(a.order, func(name string, _ int) *Record {
		return a.records[name]
	})
}

func (a *AddressBook) Len() int {
	return len(a.order)
}

func toEntry(record *Record) ContactEntry {
	birthday, _ := record.Birthday()
	return ContactEntry{
		Name:     record.Name(),
		Phones:   record.PhoneStrings(),
		Birthday: birthday.String(),
	}
}

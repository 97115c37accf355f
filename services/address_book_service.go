package services

import (
	"address-book/domain"
	"address-book/errors"
	"address-book/repositories"
	"cmp"
	"fmt"
	"log/slog"
	"slices"

	"github.com/benbjohnson/clock"
)

type IAddressBookService interface {
	Open() error
	Close() error
	AddContact(name string, phones []string, birthday string) error
	AddPhone(name, phone string) error
	ChangePhone(name, oldPhone, newPhone string) error
	RemovePhone(name, phone string) error
	SetBirthday(name, birthday string) error
	DeleteContact(name string) error
	Show(name string) (domain.ContactEntry, error)
	List() []domain.ContactEntry
	DaysToBirthday(name string) (*int, error)
	UpcomingBirthdays(within int) []UpcomingBirthday
}

// UpcomingBirthday is a contact whose next birthday falls within the requested window.
type UpcomingBirthday struct {
	Name     string
	Birthday string
	Days     int
}

type AddressBookService struct {
	book       *domain.AddressBook
	repository repositories.IAddressBookRepository
	clock      clock.Clock
	log        *slog.Logger
}

func NewAddressBookService(repository repositories.IAddressBookRepository, clk clock.Clock, log *slog.Logger) *AddressBookService {
	return &AddressBookService{
		book:       domain.NewAddressBook(),
		repository: repository,
		clock:      clk,
		log:        log,
	}
}

// Open loads the stored contacts into the in-memory book.
func (s *AddressBookService) Open() error {
	if err := s.repository.Load(s.book); err != nil {
		return fmt.Errorf("load address book: %w", err)
	}
	s.log.Info("Address book opened", "contacts", s.book.Len())
	return nil
}

// Close writes the whole book back to the repository.
func (s *AddressBookService) Close() error {
	if err := s.repository.Save(s.book); err != nil {
		return fmt.Errorf("save address book: %w", err)
	}
	s.log.Info("Address book saved", "contacts", s.book.Len())
	return nil
}

// AddContact builds a record and adds it to the book. When the name already
// exists, the phones are merged and the stored birthday is kept.
func (s *AddressBookService) AddContact(name string, phones []string, birthday string) error {
	record, err := domain.NewRecord(name)
	if err != nil {
		return err
	}
	for _, phone := range phones {
		if err = record.AddPhone(phone); err != nil {
			return err
		}
	}
	if err = record.AddBirthday(birthday); err != nil {
		return err
	}
	_, existed := s.book.Find(name)
	if err = s.book.AddRecord(record); err != nil {
		return err
	}
	s.log.Debug("Contact added", "name", name, "merged", existed, "phones", len(phones))
	return nil
}

func (s *AddressBookService) AddPhone(name, phone string) error {
	record, err := s.find(name)
	if err != nil {
		return err
	}
	return record.AddPhone(phone)
}

func (s *AddressBookService) ChangePhone(name, oldPhone, newPhone string) error {
	record, err := s.find(name)
	if err != nil {
		return err
	}
	if !record.HasPhone(oldPhone) {
		s.log.Warn("Phone to change not found", "name", name, "phone", oldPhone)
	}
	return record.ChangePhone(oldPhone, newPhone)
}

func (s *AddressBookService) RemovePhone(name, phone string) error {
	if _, err := s.find(name); err != nil {
		return err
	}
	s.book.RemovePhoneFromContact(name, phone)
	return nil
}

func (s *AddressBookService) SetBirthday(name, birthday string) error {
	record, err := s.find(name)
	if err != nil {
		return err
	}
	return record.AddBirthday(birthday)
}

func (s *AddressBookService) DeleteContact(name string) error {
	return s.book.DeleteRecord(name)
}

func (s *AddressBookService) Show(name string) (domain.ContactEntry, error) {
	return s.book.Describe(name)
}

func (s *AddressBookService) List() []domain.ContactEntry {
	return s.book.ListContacts()
}

// DaysToBirthday returns nil when the contact has no birthday.
func (s *AddressBookService) DaysToBirthday(name string) (*int, error) {
	record, err := s.find(name)
	if err != nil {
		return nil, err
	}
	return record.DaysToNextBirthday(s.clock.Now())
}

// UpcomingBirthdays lists contacts whose next birthday is at most within days
// away, soonest first. Birthdays that cannot be placed in the calendar year
// (29/02 outside leap years) are skipped.
func (s *AddressBookService) UpcomingBirthdays(within int) []UpcomingBirthday {
	now := s.clock.Now()
	var upcoming []UpcomingBirthday
	for _, record := range s.book.Records() {
		days, err := record.DaysToNextBirthday(now)
		if err != nil {
			s.log.Warn("Skipping birthday", "name", record.Name(), "error", err)
			continue
		}
		if days == nil || *days > within {
			continue
		}
		birthday, _ := record.Birthday()
		upcoming = append(upcoming, UpcomingBirthday{
			Name:     record.Name(),
			Birthday: birthday.String(),
			Days:     *days,
		})
	}
	slices.SortFunc(upcoming, func(a, b UpcomingBirthday) int {
		return cmp.Or(cmp.Compare(a.Days, b.Days), cmp.Compare(a.Name, b.Name))
	})
	return upcoming
}

func (s *AddressBookService) find(name string) (*domain.Record, error) {
	record, ok := s.book.Find(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", errors.ErrContactNotFound, name)
	}
	return record, nil
}

package repositories

import (
	"address-book/domain"
	"address-book/errors"
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strings"
)

const (
	fieldSeparator = ";"
	phoneSeparator = ","
)

// FileRepository stores the book as plain text, one contact per line:
//
//	<name>;<phone1>,<phone2>,...
//
// Nothing is escaped and birthdays are not written.
type FileRepository struct {
	path string
	log  *slog.Logger
}

func NewFileRepository(path string, log *slog.Logger) *FileRepository {
	return &FileRepository{path: path, log: log}
}

// Load reads every line of the file into book. A missing file leaves book
// untouched. The first malformed line or invalid phone number aborts the load.
func (f FileRepository) Load(book *domain.AddressBook) error {
	file, err := os.Open(f.path)
	if os.IsNotExist(err) {
		f.log.Debug("Address book file not found, starting empty", "path", f.path)
		return nil
	}
	if err != nil {
		return fmt.Errorf("open %s: %w", f.path, err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		contact, err := parseLine(line)
		if err != nil {
			return fmt.Errorf("%s:%d: %w", f.path, lineNumber, err)
		}
		record, err := toRecord(contact)
		if err != nil {
			return fmt.Errorf("%s:%d: %w", f.path, lineNumber, err)
		}
		if err = book.AddRecord(record); err != nil {
			return fmt.Errorf("%s:%d: %w", f.path, lineNumber, err)
		}
	}
	if err = scanner.Err(); err != nil {
		return fmt.Errorf("read %s: %w", f.path, err)
	}
	f.log.Debug("Address book loaded", "path", f.path, "contacts", book.Len())
	return nil
}

func parseLine(line string) (StoredContact, error) {
	parts := strings.Split(line, fieldSeparator)
	if len(parts) != 2 {
		return StoredContact{}, fmt.Errorf("%w: expected name%sphones, got %q", errors.ErrMalformedStoredLine, fieldSeparator, line)
	}
	contact := StoredContact{Name: parts[0]}
	if parts[1] != "" {
		contact.Phones = strings.Split(parts[1], phoneSeparator)
	}
	return contact, nil
}

func formatLine(contact StoredContact) string {
	return contact.Name + fieldSeparator + strings.Join(contact.Phones, phoneSeparator) + "\n"
}

// Save truncates the file and writes the contacts in insertion order.
func (f FileRepository) Save(book *domain.AddressBook) error {
	file, err := os.Create(f.path)
	if err != nil {
		return fmt.Errorf("create %s: %w", f.path, err)
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	for _, record := range book.Records() {
		if _, err = w.WriteString(formatLine(fromRecord(record))); err != nil {
			return fmt.Errorf("write %s: %w", f.path, err)
		}
	}
	if err = w.Flush(); err != nil {
		return fmt.Errorf("write %s: %w", f.path, err)
	}
	f.log.Debug("Address book saved", "path", f.path, "contacts", book.Len())
	return file.Close()
}

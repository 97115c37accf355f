package services

import (
	"address-book/domain"
	"address-book/errors"
	"address-book/mocks"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newService(t *testing.T) (*AddressBookService, *mocks.MockIAddressBookRepository, *clock.Mock) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repository := mocks.NewMockIAddressBookRepository(ctrl)
	clk := clock.NewMock()
	clk.Set(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	return NewAddressBookService(repository, clk, logs.GetLoggerFromLevel(slog.LevelDebug)), repository, clk
}

func TestAddressBookService_Open_Loads_Into_Book(t *testing.T) {
	req := require.New(t)
	service, repository, _ := newService(t)
	repository.EXPECT().Load(gomock.Any()).DoAndReturn(func(book *domain.AddressBook) error {
		record, err := domain.NewRecord("Petro")
		if err != nil {
			return err
		}
		if err = record.AddPhone("0975312570"); err != nil {
			return err
		}
		return book.AddRecord(record)
	})

	req.NoError(service.Open())
	entry, err := service.Show("Petro")
	req.NoError(err)
	req.Equal([]string{"0975312570"}, entry.Phones)
}

func TestAddressBookService_Open_Wraps_Load_Error(t *testing.T) {
	req := require.New(t)
	service, repository, _ := newService(t)
	repository.EXPECT().Load(gomock.Any()).Return(fmt.Errorf("line 3: %w", errors.ErrMalformedStoredLine))

	err := service.Open()
	req.ErrorIs(err, errors.ErrMalformedStoredLine)
}

func TestAddressBookService_Close_Saves_Book(t *testing.T) {
	req := require.New(t)
	service, repository, _ := newService(t)
	req.NoError(service.AddContact("John", []string{"0673120732"}, ""))
	repository.EXPECT().Save(gomock.Any()).DoAndReturn(func(book *domain.AddressBook) error {
		req.Equal(1, book.Len())
		return nil
	})
	req.NoError(service.Close())
}

func TestAddressBookService_AddContact_Merges(t *testing.T) {
	req := require.New(t)
	service, _, _ := newService(t)
	req.NoError(service.AddContact("Kim", []string{"0976312904"}, "03/12/1981"))
	req.NoError(service.AddContact("Kim", []string{"0976312904", "0508432960"}, "11/11/1991"))

	entry, err := service.Show("Kim")
	req.NoError(err)
	req.Equal([]string{"0976312904", "0508432960"}, entry.Phones)
	req.Equal("03/12/1981", entry.Birthday)
}

func TestAddressBookService_AddContact_Validates_Everything_First(t *testing.T) {
	req := require.New(t)
	service, _, _ := newService(t)
	req.ErrorIs(service.AddContact("", nil, ""), errors.ErrEmptyName)
	req.ErrorIs(service.AddContact("John", []string{"0673120732", "abc"}, ""), errors.ErrInvalidPhoneNumber)
	req.ErrorIs(service.AddContact("John", []string{"0673120732"}, "32/01/1990"), errors.ErrInvalidBirthday)
	req.Empty(service.List())
}

func TestAddressBookService_Phone_Operations(t *testing.T) {
	req := require.New(t)
	service, _, _ := newService(t)
	req.NoError(service.AddContact("John", []string{"0976312904", "0563157905"}, ""))

	req.NoError(service.ChangePhone("John", "0976312904", "0673120732"))
	req.NoError(service.RemovePhone("John", "0563157905"))
	req.NoError(service.AddPhone("John", "0508432960"))
	req.ErrorIs(service.AddPhone("John", "050"), errors.ErrInvalidPhoneNumber)

	entry, err := service.Show("John")
	req.NoError(err)
	req.Equal([]string{"0673120732", "0508432960"}, entry.Phones)

	req.ErrorIs(service.AddPhone("Nobody", "0508432960"), errors.ErrContactNotFound)
	req.ErrorIs(service.ChangePhone("Nobody", "0508432960", "0508432961"), errors.ErrContactNotFound)
	req.ErrorIs(service.RemovePhone("Nobody", "0508432960"), errors.ErrContactNotFound)
}

func TestAddressBookService_DeleteContact(t *testing.T) {
	req := require.New(t)
	service, _, _ := newService(t)
	req.NoError(service.AddContact("John", []string{"0976312904"}, ""))
	req.NoError(service.DeleteContact("John"))
	req.ErrorIs(service.DeleteContact("John"), errors.ErrContactNotFound)
	_, err := service.Show("John")
	req.ErrorIs(err, errors.ErrContactNotFound)
}

func TestAddressBookService_DaysToBirthday_Uses_Clock(t *testing.T) {
	req := require.New(t)
	service, _, clk := newService(t)
	req.NoError(service.AddContact("John", []string{"0976312904"}, ""))

	days, err := service.DaysToBirthday("John")
	req.NoError(err)
	req.Nil(days)

	req.NoError(service.SetBirthday("John", "15/06/1990"))
	days, err = service.DaysToBirthday("John")
	req.NoError(err)
	req.Equal(166, *days)

	clk.Set(time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC))
	days, err = service.DaysToBirthday("John")
	req.NoError(err)
	req.Equal(349, *days)

	_, err = service.DaysToBirthday("Nobody")
	req.ErrorIs(err, errors.ErrContactNotFound)
}

func TestAddressBookService_UpcomingBirthdays(t *testing.T) {
	req := require.New(t)
	service, _, clk := newService(t)
	clk.Set(time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC))
	req.NoError(service.AddContact("Petro", []string{"0975312570"}, "15/06/1990"))
	req.NoError(service.AddContact("Anna", []string{"0975312571"}, "15/06/1985"))
	req.NoError(service.AddContact("Kim", []string{"0976312904"}, "03/06/1981"))
	req.NoError(service.AddContact("Leap", []string{"0976312905"}, "29/02/2000"))
	req.NoError(service.AddContact("Far", []string{"0976312906"}, "01/12/2000"))
	req.NoError(service.AddContact("NoBirthday", []string{"0976312907"}, ""))

	upcoming := service.UpcomingBirthdays(14)
	req.Equal([]UpcomingBirthday{
		{Name: "Kim", Birthday: "03/06/1981", Days: 2},
		{Name: "Anna", Birthday: "15/06/1985", Days: 14},
		{Name: "Petro", Birthday: "15/06/1990", Days: 14},
	}, upcoming)
}

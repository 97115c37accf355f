package domain

import (
	"address-book/errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewPhoneNumber_Rejects_Invalid_Values(t *testing.T) {
	for _, raw := range []string{
		"",
		"123456789",
		"12345abcde",
		"+380976312904",
		"097 631 2904",
		"097-631-2904",
		"１２３４５６７８９０",
	} {
		t.Run(raw, func(t *testing.T) {
			req := require.New(t)
			_, err := NewPhoneNumber(raw)
			req.ErrorIs(err, errors.ErrInvalidPhoneNumber)
			req.ErrorIs(err, errors.ErrValidation)
		})
	}
}

func TestNewPhoneNumber_Accepts_Digits_From_Ten_Characters(t *testing.T) {
	for _, raw := range []string{
		"0976312904",
		"00000000000",
		strings.Repeat("9", 40),
	} {
		t.Run(raw, func(t *testing.T) {
			req := require.New(t)
			phone, err := NewPhoneNumber(raw)
			req.NoError(err)
			req.Equal(raw, phone.String())
		})
	}
}

func TestPhoneNumber_Equals_Compares_Literal_Value(t *testing.T) {
	req := require.New(t)
	a, err := NewPhoneNumber("0976312904")
	req.NoError(err)
	b, err := NewPhoneNumber("0976312904")
	req.NoError(err)
	c, err := NewPhoneNumber("00976312904")
	req.NoError(err)

	req.True(a.Equals(b))
	req.False(a.Equals(c))
}

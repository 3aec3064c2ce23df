package value_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"okved_game/internal/domain"
	"okved_game/internal/domain/value"
	"okved_game/pkg/errcodes"
)

func TestParsePhone(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name    string
		raw     string
		digits  string
		display string
		invalid bool
	}{
		{
			name:    "10 digits get country code prepended",
			raw:     "9123456789",
			digits:  "79123456789",
			display: "+79123456789",
		},
		{
			name:    "leading 8 replaced with 7",
			raw:     "89123456789",
			digits:  "79123456789",
			display: "+79123456789",
		},
		{
			name:    "leading 7 kept as is",
			raw:     "79123456789",
			digits:  "79123456789",
			display: "+79123456789",
		},
		{
			name:    "formatting stripped",
			raw:     "8 (912) 345-67-89",
			digits:  "79123456789",
			display: "+79123456789",
		},
		{
			name:    "plus seven with spaces",
			raw:     "+7 912 345 67 89",
			digits:  "79123456789",
			display: "+79123456789",
		},
		{
			name:    "too short",
			raw:     "123",
			invalid: true,
		},
		{
			name:    "too long",
			raw:     "791234567890",
			invalid: true,
		},
		{
			name:    "11 digits with wrong prefix",
			raw:     "19123456789",
			invalid: true,
		},
		{
			name:    "no digits at all",
			raw:     "hello",
			invalid: true,
		},
		{
			name:    "empty input",
			raw:     "",
			invalid: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			phone, err := value.ParsePhone(tc.raw)

			if tc.invalid {
				rq.Error(err)

				code, ok := domain.GetCode(err)
				rq.True(ok)
				rq.Equal(errcodes.InvalidPhoneFormat, code)
				rq.True(phone.IsZero())

				return
			}

			rq.NoError(err)
			rq.Equal(tc.digits, phone.Digits())
			rq.Equal(tc.display, phone.String())
			rq.False(phone.IsZero())
		})
	}
}

func TestParsePhoneAllTenDigitInputs(t *testing.T) {
	rq := require.New(t)

	// Для любых 10 цифр d: normalize(d) == "7" + d.
	for _, d := range []string{"0000000000", "9876543210", "1234567890"} {
		phone, err := value.ParsePhone(d)
		rq.NoError(err)
		rq.Equal("7"+d, phone.Digits())
	}
}

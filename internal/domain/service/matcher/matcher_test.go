package matcher_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"okved_game/internal/domain"
	"okved_game/internal/domain/entity"
	"okved_game/internal/domain/service/matcher"
	"okved_game/internal/domain/value"
	"okved_game/pkg/errcodes"
)

func mustPhone(t *testing.T, raw string) value.Phone {
	t.Helper()

	phone, err := value.ParsePhone(raw)
	require.NoError(t, err)

	return phone
}

func TestSuffixLength(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name   string
		a, b   string
		length int
	}{
		{name: "two digit overlap", a: "79123456789", b: "89", length: 2},
		{name: "no overlap", a: "79123456789", b: "45", length: 0},
		{name: "code longer than phone", a: "789", b: "123456789", length: 3},
		{name: "full equality", a: "6201", b: "6201", length: 4},
		{name: "empty code", a: "79123456789", b: "", length: 0},
		{name: "stops at first mismatch", a: "7000111", b: "9111", length: 3},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			rq.Equal(tc.length, matcher.SuffixLength(tc.a, tc.b))
		})
	}
}

func TestFindBestMatch(t *testing.T) {
	rq := require.New(t)

	phone := mustPhone(t, "79123456789")

	t.Run("longest suffix wins", func(*testing.T) {
		catalog := []entity.OkvedItem{
			{Code: "45", Name: "A"},
			{Code: "89", Name: "B"},
		}

		match, err := matcher.FindBestMatch(phone, catalog)
		rq.NoError(err)
		rq.Equal("89", match.Item.Code)
		rq.Equal(2, match.MatchLength)
		rq.False(match.Fallback)
		rq.Equal(phone, match.Phone)
	})

	t.Run("tie broken by catalog order", func(*testing.T) {
		catalog := []entity.OkvedItem{
			{Code: "189", Name: "first"},
			{Code: "289", Name: "second"},
		}

		match, err := matcher.FindBestMatch(phone, catalog)
		rq.NoError(err)
		rq.Equal("189", match.Item.Code)
		rq.Equal(2, match.MatchLength)
	})

	t.Run("zero length match still returned", func(*testing.T) {
		catalog := []entity.OkvedItem{
			{Code: "11", Name: "A"},
			{Code: "22", Name: "B"},
		}

		match, err := matcher.FindBestMatch(phone, catalog)
		rq.NoError(err)
		rq.Equal("11", match.Item.Code)
		rq.Zero(match.MatchLength)
		rq.True(match.Fallback)
	})

	t.Run("empty catalog fails", func(*testing.T) {
		_, err := matcher.FindBestMatch(phone, nil)
		rq.Error(err)

		code, ok := domain.GetCode(err)
		rq.True(ok)
		rq.Equal(errcodes.EmptyCatalog, code)
	})

	t.Run("repeated calls yield the same result", func(*testing.T) {
		catalog := []entity.OkvedItem{
			{Code: "6789", Name: "A"},
			{Code: "789", Name: "B"},
			{Code: "9", Name: "C"},
		}

		first, err := matcher.FindBestMatch(phone, catalog)
		rq.NoError(err)

		for range 10 {
			again, err := matcher.FindBestMatch(phone, catalog)
			rq.NoError(err)
			rq.Equal(first, again)
		}

		rq.Equal("6789", first.Item.Code)
		rq.Equal(4, first.MatchLength)
	})

	t.Run("catalog not mutated", func(*testing.T) {
		catalog := []entity.OkvedItem{
			{Code: "45", Name: "A"},
			{Code: "89", Name: "B"},
		}
		snapshot := append([]entity.OkvedItem(nil), catalog...)

		_, err := matcher.FindBestMatch(phone, catalog)
		rq.NoError(err)
		rq.Equal(snapshot, catalog)
	})
}

package matcher

import (
	"github.com/samber/lo"

	"okved_game/internal/domain"
	"okved_game/internal/domain/entity"
	"okved_game/internal/domain/value"
	"okved_game/pkg/errcodes"
)

type candidate struct {
	item   entity.OkvedItem
	length int
}

// FindBestMatch находит запись справочника с самым длинным общим окончанием
// с номером. При равной длине побеждает запись, встретившаяся раньше:
// lo.MaxBy со строгим сравнением не заменяет текущий максимум на равный.
// Совпадение нулевой длины — тоже результат: запись возвращается с
// выставленным флагом Fallback, решение «считать ли это промахом» остаётся
// за слоем отображения.
func FindBestMatch(phone value.Phone, items []entity.OkvedItem) (entity.MatchResult, error) {
	if len(items) == 0 {
		return entity.MatchResult{}, domain.NewError(errcodes.EmptyCatalog, "справочник ОКВЭД пуст")
	}

	digits := phone.Digits()

	candidates := lo.Map(items, func(item entity.OkvedItem, _ int) candidate {
		return candidate{
			item:   item,
			length: SuffixLength(digits, item.Code),
		}
	})

	best := lo.MaxBy(candidates, func(a, b candidate) bool {
		return a.length > b.length
	})

	return entity.MatchResult{
		Phone:       phone,
		Item:        best.item,
		MatchLength: best.length,
		Fallback:    best.length == 0,
	}, nil
}

// SuffixLength возвращает число совпавших цифр при сравнении двух строк
// с конца. Сравнение останавливается на первом несовпадении или когда одна
// из строк закончилась.
func SuffixLength(a, b string) int {
	i := 1
	maxLen := min(len(a), len(b))
	for i <= maxLen && a[len(a)-i] == b[len(b)-i] {
		i++
	}
	return i - 1
}

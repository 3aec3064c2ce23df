package value

import (
	"strings"

	"okved_game/internal/domain"
	"okved_game/pkg/errcodes"
)

const phoneDigits = 11

// Phone — российский мобильный номер в каноническом виде: ровно 11 цифр,
// первая — «7». Значение конструируется только через ParsePhone, поэтому
// инвариант держится на всём времени жизни.
type Phone struct {
	digits string
}

// ParsePhone нормализует произвольно введённый номер.
// Из строки берутся только цифры; 10 цифр считаются номером без кода страны,
// 11 цифр принимаются с ведущей «7» или «8» (восьмёрка заменяется на семёрку).
// Всё остальное — ошибка InvalidPhoneFormat.
func ParsePhone(raw string) (Phone, error) {
	digits := onlyDigits(raw)

	switch {
	case len(digits) == phoneDigits-1:
		digits = "7" + digits
	case len(digits) == phoneDigits && digits[0] == '8':
		digits = "7" + digits[1:]
	case len(digits) == phoneDigits && digits[0] == '7':
		// уже канонический вид
	default:
		return Phone{}, domain.NewError(
			errcodes.InvalidPhoneFormat,
			"номер не распознан как российский мобильный",
		)
	}

	return Phone{digits: digits}, nil
}

// Digits возвращает 11 цифр номера без знака «+».
func (p Phone) Digits() string {
	return p.digits
}

// String возвращает номер в формате +7XXXXXXXXXX.
func (p Phone) String() string {
	if p.digits == "" {
		return ""
	}
	return "+" + p.digits
}

func (p Phone) IsZero() bool {
	return p.digits == ""
}

func onlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

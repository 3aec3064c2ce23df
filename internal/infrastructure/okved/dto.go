package okved

import (
	"strings"

	"okved_game/internal/domain/entity"
)

// itemSchema — запись массива okved.json как её отдаёт источник.
// Коды там публикуются с точками («62.01»), имена бывают пустыми.
type itemSchema struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// toDomain приводит запись к доменному инварианту: код — непустая строка из
// одних цифр. Непригодные записи отбрасываются.
func (s itemSchema) toDomain() (entity.OkvedItem, bool) {
	code := codeDigits(s.Code)
	name := strings.TrimSpace(s.Name)

	if code == "" || name == "" {
		return entity.OkvedItem{}, false
	}

	return entity.OkvedItem{Code: code, Name: name}, true
}

func codeDigits(code string) string {
	var b strings.Builder
	for _, r := range code {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

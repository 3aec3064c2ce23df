package server

import (
	"okved_game/internal/domain/entity"
	"okved_game/pkg/rest"
)

func newRESTMatchResult(match entity.MatchResult) rest.MatchResult {
	return rest.MatchResult{
		NormalizedPhone: match.Phone.String(),
		OkvedCode:       match.Item.Code,
		OkvedName:       match.Item.Name,
		MatchLength:     match.MatchLength,
		Fallback:        match.Fallback,
	}
}

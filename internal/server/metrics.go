package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"okved_game/internal/domain/entity"
)

//nolint:gochecknoglobals
var (
	roundsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "okved_game",
		Name:      "rounds_total",
		Help:      "Сыгранные раунды по исходам.",
	}, []string{"outcome"})

	matchLengths = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "okved_game",
		Name:      "match_length_digits",
		Help:      "Длина совпавшего окончания в успешных раундах.",
		Buckets:   prometheus.LinearBuckets(0, 1, 12),
	})
)

func observeRound(result entity.GameResult) {
	if result.Succeeded() {
		roundsTotal.WithLabelValues("success").Inc()
		matchLengths.Observe(float64(result.Match.MatchLength))

		return
	}

	outcome := "error"
	if result.Err != nil {
		outcome = result.Err.Code.String()
	}

	roundsTotal.WithLabelValues(outcome).Inc()
}

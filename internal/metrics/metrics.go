package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	PromptsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "lingobot_prompts_total",
		Help: "Practice cards presented to learners.",
	})

	AnswersTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "lingobot_answers_total",
		Help: "Graded practice answers by result.",
	}, []string{"result"})

	DistractorShortfallTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "lingobot_distractor_shortfall_total",
		Help: "Cards that could not be built because the locale had too few translations.",
	})

	StorageRetriesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "lingobot_storage_retries_total",
		Help: "Storage operations retried after a transient failure.",
	}, []string{"op"})

	TranslationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "lingobot_translations_total",
		Help: "Free text translation requests by result.",
	}, []string{"result"})
)

func MustRegister(reg prometheus.Registerer) {
	reg.MustRegister(
		PromptsTotal,
		AnswersTotal,
		DistractorShortfallTotal,
		StorageRetriesTotal,
		TranslationsTotal,
	)
}

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Label values
const (
	ResultOK     = "ok"
	ResultFailed = "failed"
	AnswerRight  = "correct"
	AnswerWrong  = "wrong"
)

// Recorder collects screen and quiz counters in its own registry. It satisfies
// screen.Observer so it can be handed to the navigator directly.
type Recorder struct {
	registry    *prometheus.Registry
	loads       *prometheus.CounterVec
	navigations *prometheus.CounterVec
	answers     *prometheus.CounterVec
	answerTime  *prometheus.HistogramVec
}

// NewRecorder creates a recorder with all counters registered
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		loads: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "frogquiz_screen_loads_total",
				Help: "Screen constructions by screen and result",
			},
			[]string{"screen", "result"},
		),
		navigations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "frogquiz_navigations_total",
				Help: "Navigation requests by target screen and result",
			},
			[]string{"screen", "result"},
		),
		answers: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "frogquiz_quiz_answers_total",
				Help: "Mystery frog answers by frog and outcome",
			},
			[]string{"frog", "outcome"},
		),
		answerTime: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "frogquiz_quiz_answer_seconds",
				Help:    "Time from the start of a mystery round to its first answer",
				Buckets: []float64{1, 2, 5, 10, 20, 30, 60, 120},
			},
			[]string{"outcome"},
		),
	}
	r.registry.MustRegister(r.loads, r.navigations, r.answers, r.answerTime)
	return r
}

// Registry returns the prometheus registry holding the counters
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// ScreenLoaded counts one screen construction
func (r *Recorder) ScreenLoaded(name string, err error) {
	r.loads.WithLabelValues(name, result(err)).Inc()
}

// Navigated counts one navigation request
func (r *Recorder) Navigated(name string, err error) {
	r.navigations.WithLabelValues(name, result(err)).Inc()
}

// QuizAnswered counts one mystery frog answer and how long it took
func (r *Recorder) QuizAnswered(frogID string, correct bool, elapsed time.Duration) {
	outcome := AnswerWrong
	if correct {
		outcome = AnswerRight
	}
	r.answers.WithLabelValues(frogID, outcome).Inc()
	r.answerTime.WithLabelValues(outcome).Observe(elapsed.Seconds())
}

func result(err error) string {
	if err != nil {
		return ResultFailed
	}
	return ResultOK
}

package model

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
)

// Quiz constants
const (
	MaxQuizOptions = 8
	QuizIDPrefix   = "quiz-"
)

// ErrNoFrogs is returned when a quiz round is requested without any frogs
var ErrNoFrogs = errors.New("no frogs to quiz on")

// Outcome is the result of answering a quiz round
type Outcome struct {
	Correct  bool
	Answer   Frog
	Selected Frog
}

// QuizRound is one mystery frog question
type QuizRound struct {
	ID       string
	answer   Frog
	options  []Frog
	outcome  *Outcome
	Started  time.Time
	Answered time.Time
}

// NewQuizRound picks a random answer from frogs and builds a shuffled option
// list holding the answer and up to MaxQuizOptions-1 other frogs.
func NewQuizRound(frogs []Frog, rng *rand.Rand) (*QuizRound, error) {
	if len(frogs) == 0 {
		return nil, ErrNoFrogs
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	}

	answer := frogs[rng.IntN(len(frogs))]

	others := make([]Frog, 0, len(frogs)-1)
	for _, f := range frogs {
		if f.ID != answer.ID {
			others = append(others, f)
		}
	}
	rng.Shuffle(len(others), func(i, j int) { others[i], others[j] = others[j], others[i] })
	if len(others) > MaxQuizOptions-1 {
		others = others[:MaxQuizOptions-1]
	}

	options := append(others, answer)
	rng.Shuffle(len(options), func(i, j int) { options[i], options[j] = options[j], options[i] })

	return &QuizRound{
		ID:      generateQuizID(),
		answer:  answer,
		options: options,
		Started: time.Now(),
	}, nil
}

// Answer returns the frog to guess
func (q *QuizRound) Answer() Frog {
	return q.answer
}

// Options returns the answer choices in display order
func (q *QuizRound) Options() []Frog {
	return append([]Frog(nil), q.options...)
}

// Revealed reports whether the round has been answered
func (q *QuizRound) Revealed() bool {
	return q.outcome != nil
}

// Outcome returns the recorded outcome, if any
func (q *QuizRound) Outcome() (Outcome, bool) {
	if q.outcome == nil {
		return Outcome{}, false
	}
	return *q.outcome, true
}

// Guess records the first answer for the round. Later guesses return the
// first outcome unchanged.
func (q *QuizRound) Guess(frogID string) (Outcome, error) {
	if q.outcome != nil {
		return *q.outcome, nil
	}

	var selected Frog
	found := false
	for _, f := range q.options {
		if f.ID == frogID {
			selected = f
			found = true
			break
		}
	}
	if !found {
		return Outcome{}, fmt.Errorf("frog is not an option in this round: %s", frogID)
	}

	q.outcome = &Outcome{
		Correct:  selected.ID == q.answer.ID,
		Answer:   q.answer,
		Selected: selected,
	}
	q.Answered = time.Now()
	return *q.outcome, nil
}

// Elapsed returns how long the round took to answer, zero while unanswered
func (q *QuizRound) Elapsed() time.Duration {
	if q.outcome == nil {
		return 0
	}
	return q.Answered.Sub(q.Started)
}

// generateQuizID generates a unique, time ordered round ID using UUID v7
func generateQuizID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Sprintf(QuizIDPrefix+"%d", time.Now().UnixNano())
	}
	return QuizIDPrefix + id.String()
}

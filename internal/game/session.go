package game

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"
)

const (
	// DefaultAttempts is granted on every session open, unconditionally.
	DefaultAttempts = 3

	// OptionCount is the fixed size of the choice set: 4 distractors plus
	// the correct answer.
	OptionCount     = 5
	distractorCount = OptionCount - 1

	// UnknownName is the comparison target when an item has no person name.
	UnknownName = "Unknown Guest"
)

var (
	ErrNoSelection = errors.New("no selection submitted")
	ErrRevealed    = errors.New("session already revealed")
)

type State int

const (
	StateReady State = iota
	StateSubmitted
	StateRevealed
)

// Session is one ephemeral guessing round for a single item. Opening a new
// session for the same item always starts from scratch: attempts are never
// tied to server-persisted per-user-per-item state.
type Session struct {
	mu           sync.Mutex
	correct      string
	options      []string
	attemptsLeft int
	state        State
	guesses      []string
}

// Result describes the outcome of one submitted guess.
type Result struct {
	Correct      bool
	AttemptsLeft int
	Revealed     bool
	CorrectName  string // set only once revealed
}

// NewSession builds a Ready session for the given correct name, generating
// the option set from the name directory.
func NewSession(correctName string, directory []string) *Session {
	if correctName == "" {
		correctName = UnknownName
	}

	return &Session{
		correct:      correctName,
		options:      BuildOptions(correctName, directory),
		attemptsLeft: DefaultAttempts,
		state:        StateReady,
	}
}

// BuildOptions assembles the 5-way choice set: up to 4 shuffled distractors
// drawn from the directory (minus the correct name), padded with synthetic
// placeholders when the directory is too small, plus the correct name, in
// shuffled display order. Visual fairness only; math/rand is enough.
func BuildOptions(correctName string, directory []string) []string {
	distractors := make([]string, 0, len(directory))
	seen := make(map[string]struct{}, len(directory))
	for _, name := range directory {
		if name == "" || name == correctName {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		distractors = append(distractors, name)
	}

	rand.Shuffle(len(distractors), func(i, j int) {
		distractors[i], distractors[j] = distractors[j], distractors[i]
	})

	if len(distractors) > distractorCount {
		distractors = distractors[:distractorCount]
	}
	for i := len(distractors); i < distractorCount; i++ {
		distractors = append(distractors, fmt.Sprintf("%s %d", UnknownName, i+1))
	}

	options := append(distractors, correctName)
	rand.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	return options
}

func (s *Session) Options() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]string, len(s.options))
	copy(out, s.options)
	return out
}

func (s *Session) AttemptsLeft() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.attemptsLeft
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Session) Guesses() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]string, len(s.guesses))
	copy(out, s.guesses)
	return out
}

// Submit evaluates one selection: decrements the attempt counter, records
// the guess, and transitions the session. A correct guess reveals
// immediately without further decrementing; exhausting attempts reveals the
// correct name.
func (s *Session) Submit(selection string) (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if selection == "" {
		return Result{}, ErrNoSelection
	}
	if s.state == StateRevealed {
		return Result{}, ErrRevealed
	}

	s.attemptsLeft--
	s.guesses = append(s.guesses, selection)
	s.state = StateSubmitted

	correct := selection == s.correct

	res := Result{
		Correct:      correct,
		AttemptsLeft: s.attemptsLeft,
	}

	if correct || s.attemptsLeft == 0 {
		s.state = StateRevealed
		res.Revealed = true
		res.CorrectName = s.correct
	} else {
		// wrong guess with attempts remaining: back to Ready
		s.state = StateReady
	}

	return res, nil
}

// Package state holds the state of an interactive maze browsing session.
package state

import (
	"math/rand"

	"labyrinth/pkg/game/generator"
)

const maxMessages = 5

// Session represents one browse through seeds of a single generator
type Session struct {
	Generator generator.MazeGenerator

	Seed   int64
	Result generator.Result

	Messages []string

	history []int64 // seeds left behind, most recent last
	rng     *rand.Rand
}

// NewSession creates a session starting at seed. rng picks random seeds.
func NewSession(g generator.MazeGenerator, seed int64, rng *rand.Rand) *Session {
	return &Session{
		Generator: g,
		Seed:      seed,
		Messages:  make([]string, 0),
		rng:       rng,
	}
}

// Generate (re)generates the maze for the current seed
func (s *Session) Generate() generator.Result {
	s.Result = s.Generator.Generate(s.Seed)
	return s.Result
}

// NextSeed moves to the following seed
func (s *Session) NextSeed() generator.Result {
	return s.jump(s.Seed + 1)
}

// RandomSeed moves to a seed picked by the session's random source
func (s *Session) RandomSeed() generator.Result {
	return s.jump(s.rng.Int63())
}

// PrevSeed goes back to the seed shown before the current one. It returns
// false and leaves the maze alone when there is no history.
func (s *Session) PrevSeed() (generator.Result, bool) {
	if len(s.history) == 0 {
		return s.Result, false
	}
	last := len(s.history) - 1
	s.Seed = s.history[last]
	s.history = s.history[:last]
	return s.Generate(), true
}

func (s *Session) jump(seed int64) generator.Result {
	s.history = append(s.history, s.Seed)
	s.Seed = seed
	return s.Generate()
}

// HistoryLen returns how many seeds PrevSeed can step back through
func (s *Session) HistoryLen() int {
	return len(s.history)
}

// AddMessage adds a message to the session's message log
func (s *Session) AddMessage(msg string) {
	s.Messages = append(s.Messages, msg)

	// Keep only the last maxMessages
	if len(s.Messages) > maxMessages {
		s.Messages = s.Messages[len(s.Messages)-maxMessages:]
	}
}

// ClearMessages clears all messages
func (s *Session) ClearMessages() {
	s.Messages = make([]string, 0)
}

// Package highscore keeps the ten best finished sessions in a key-value
// Backend.
package highscore

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sort"
	"time"
)

const (
	// Key is the backend key the score table is stored under.
	Key = "blockfall_high_scores"

	// MaxEntries is the number of scores kept.
	MaxEntries = 10
)

// Entry is one recorded session.
type Entry struct {
	Name  string    `json:"name"`
	Score int       `json:"score"`
	Level int       `json:"level"`
	Lines int       `json:"lines"`
	Date  time.Time `json:"date"`
}

// Store reads and writes the score table. It satisfies tetris.ScoreRecorder.
type Store struct {
	backend Backend
	now     func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithClock replaces the clock used to timestamp new entries.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

func NewStore(backend Backend, options ...Option) *Store {
	s := &Store{
		backend: backend,
		now:     time.Now,
	}
	for _, opt := range options {
		opt(s)
	}
	return s
}

// Scores returns the table sorted best first. Missing or unreadable data
// yields an empty table.
func (s *Store) Scores() []Entry {
	data, err := s.backend.Get(Key)
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	if err != nil {
		log.Printf("highscore: loading scores: %v", err)
		return nil
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		log.Printf("highscore: discarding malformed score table: %v", err)
		return nil
	}
	return rank(entries)
}

// rank sorts entries best first, keeping the order of equal scores, and
// drops everything past MaxEntries.
func rank(entries []Entry) []Entry {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})
	if len(entries) > MaxEntries {
		entries = entries[:MaxEntries]
	}
	return entries
}

// IsHighScore reports whether score would enter the table.
func (s *Store) IsHighScore(score int) bool {
	entries := s.Scores()
	if len(entries) < MaxEntries {
		return true
	}
	return score > entries[MaxEntries-1].Score
}

// HighestScore returns the best recorded score, or 0 for an empty table.
func (s *Store) HighestScore() int {
	entries := s.Scores()
	if len(entries) == 0 {
		return 0
	}
	return entries[0].Score
}

// SaveScore adds a session to the table, keeping the best MaxEntries. Equal
// scores keep their insertion order.
func (s *Store) SaveScore(score, level, lines int, name string) error {
	entries := rank(append(s.Scores(), Entry{
		Name:  name,
		Score: score,
		Level: level,
		Lines: lines,
		Date:  s.now(),
	}))

	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("highscore: encoding scores: %w", err)
	}
	if err := s.backend.Set(Key, data); err != nil {
		return fmt.Errorf("highscore: saving scores: %w", err)
	}
	return nil
}

// Clear removes every recorded score.
func (s *Store) Clear() error {
	if err := s.backend.Delete(Key); err != nil {
		return fmt.Errorf("highscore: clearing scores: %w", err)
	}
	return nil
}

package tetris

import "github.com/kamstrup/intmap"

// Stats counts what happened during a session.
type Stats struct {
	spawned  *intmap.Map[PieceType, int]
	clears   *intmap.Map[int, int]
	locks    int
	maxCombo int
}

// NewStats creates empty statistics.
func NewStats() *Stats {
	return &Stats{
		spawned: intmap.New[PieceType, int](PieceTypeCount),
		clears:  intmap.New[int, int](len(baseScores)),
	}
}

func (s *Stats) recordSpawn(t PieceType) {
	n, _ := s.spawned.Get(t)
	s.spawned.Put(t, n+1)
}

func (s *Stats) recordLock(cleared, combo int) {
	s.locks++
	if cleared > 0 {
		n, _ := s.clears.Get(cleared)
		s.clears.Put(cleared, n+1)
	}
	s.maxCombo = max(s.maxCombo, combo)
}

// Spawned returns how many pieces of type t entered play.
func (s *Stats) Spawned(t PieceType) int {
	n, _ := s.spawned.Get(t)
	return n
}

// TotalSpawned returns the number of pieces that entered play.
func (s *Stats) TotalSpawned() int {
	total := 0
	for _, t := range PieceTypes {
		total += s.Spawned(t)
	}
	return total
}

// Clears returns how many locks cleared exactly rows lines at once.
func (s *Stats) Clears(rows int) int {
	n, _ := s.clears.Get(rows)
	return n
}

// Locks returns the number of pieces locked into the board.
func (s *Stats) Locks() int { return s.locks }

// MaxCombo returns the longest run of consecutive clearing locks.
func (s *Stats) MaxCombo() int { return s.maxCombo }

// Reset forgets everything recorded so far.
func (s *Stats) Reset() {
	s.spawned.Clear()
	s.clears.Clear()
	s.locks = 0
	s.maxCombo = 0
}

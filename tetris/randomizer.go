package tetris

import (
	"fmt"
	"math/rand/v2"
)

// Randomizer produces the sequence of piece types for a session.
type Randomizer interface {
	Next() PieceType
}

// UniformRandomizer draws every piece independently and uniformly from the
// seven types. Repeats and droughts are possible.
type UniformRandomizer struct {
	rng *rand.Rand
}

// NewUniformRandomizer creates a uniform randomizer seeded with seed.
func NewUniformRandomizer(seed uint64) *UniformRandomizer {
	return &UniformRandomizer{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (r *UniformRandomizer) Next() PieceType {
	return PieceTypes[r.rng.IntN(PieceTypeCount)]
}

// BagRandomizer deals the seven types in shuffled bags so every type appears
// exactly once per seven draws.
type BagRandomizer struct {
	rng *rand.Rand
	bag []PieceType
}

// NewBagRandomizer creates a 7-bag randomizer seeded with seed.
func NewBagRandomizer(seed uint64) *BagRandomizer {
	return &BagRandomizer{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (r *BagRandomizer) Next() PieceType {
	if len(r.bag) == 0 {
		r.bag = append(r.bag[:0], PieceTypes[:]...)
		r.rng.Shuffle(len(r.bag), func(i, j int) {
			r.bag[i], r.bag[j] = r.bag[j], r.bag[i]
		})
	}

	next := r.bag[0]
	r.bag = r.bag[1:]
	return next
}

const (
	RandomizerUniform = "uniform"
	RandomizerBag     = "bag"
)

// NewRandomizer builds a randomizer by name.
func NewRandomizer(kind string, seed uint64) (Randomizer, error) {
	switch kind {
	case "", RandomizerUniform:
		return NewUniformRandomizer(seed), nil
	case RandomizerBag:
		return NewBagRandomizer(seed), nil
	default:
		return nil, fmt.Errorf("unknown randomizer %q", kind)
	}
}

// SequenceRandomizer replays a fixed list of types, cycling when exhausted.
// It makes sessions fully scripted, for replays and tests.
type SequenceRandomizer struct {
	seq []PieceType
	pos int
}

// NewSequenceRandomizer creates a randomizer that cycles through seq.
func NewSequenceRandomizer(seq ...PieceType) *SequenceRandomizer {
	if len(seq) == 0 {
		seq = PieceTypes[:]
	}
	return &SequenceRandomizer{seq: seq}
}

func (r *SequenceRandomizer) Next() PieceType {
	next := r.seq[r.pos%len(r.seq)]
	r.pos++
	return next
}

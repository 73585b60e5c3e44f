package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func draw(r Randomizer, n int) []PieceType {
	out := make([]PieceType, n)
	for i := range out {
		out[i] = r.Next()
	}
	return out
}

func TestUniformRandomizerIsSeeded(t *testing.T) {
	a := draw(NewUniformRandomizer(42), 200)
	b := draw(NewUniformRandomizer(42), 200)
	c := draw(NewUniformRandomizer(43), 200)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)

	seen := map[PieceType]bool{}
	for _, typ := range a {
		require.True(t, typ.Valid())
		seen[typ] = true
	}
	assert.Len(t, seen, PieceTypeCount)
}

func TestBagRandomizerDealsEveryTypeOncePerBag(t *testing.T) {
	r := NewBagRandomizer(7)

	for bag := range 20 {
		seen := map[PieceType]int{}
		for _, typ := range draw(r, PieceTypeCount) {
			seen[typ]++
		}
		require.Len(t, seen, PieceTypeCount, "bag %d", bag)
		for typ, n := range seen {
			assert.Equal(t, 1, n, "bag %d dealt %s %d times", bag, typ, n)
		}
	}
}

func TestSequenceRandomizerCycles(t *testing.T) {
	r := NewSequenceRandomizer(I, O)
	assert.Equal(t, []PieceType{I, O, I, O, I}, draw(r, 5))

	all := NewSequenceRandomizer()
	assert.Equal(t, PieceTypes[:], draw(all, PieceTypeCount))
}

func TestNewRandomizer(t *testing.T) {
	r, err := NewRandomizer("", 1)
	require.NoError(t, err)
	assert.IsType(t, &UniformRandomizer{}, r)

	r, err = NewRandomizer(RandomizerBag, 1)
	require.NoError(t, err)
	assert.IsType(t, &BagRandomizer{}, r)

	_, err = NewRandomizer("fair", 1)
	assert.Error(t, err)
}

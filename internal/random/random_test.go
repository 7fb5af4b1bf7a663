package random

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_IsDeterministic(t *testing.T) {
	a, b := New(42), New(42)
	for i := 0; i < 50; i++ {
		assert.Equal(t, a.IntN(1000), b.IntN(1000))
	}
}

func TestIntRange_StaysInBounds(t *testing.T) {
	src := New(7)
	seen := map[int]bool{}
	for i := 0; i < 500; i++ {
		v := IntRange(src, 1, 5)
		assert.GreaterOrEqual(t, v, 1)
		assert.LessOrEqual(t, v, 5)
		seen[v] = true
	}
	assert.Len(t, seen, 5)
}

func TestSequence_WrapsAndReduces(t *testing.T) {
	src := Sequence(1, 7)
	assert.Equal(t, 1, src.IntN(3))
	assert.Equal(t, 1, src.IntN(3)) // 7 % 3
	assert.Equal(t, 1, src.IntN(4))
}

func TestPick(t *testing.T) {
	items := []string{"a", "b", "c"}
	assert.Equal(t, "c", Pick(Sequence(2), items))
	assert.Contains(t, items, Pick(Default(), items))
}

package sortable_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/amp-labs/sortedseq/compare"
	"github.com/amp-labs/sortedseq/sortable"
)

func TestInt(t *testing.T) {
	t.Parallel()

	t.Run("equals", func(t *testing.T) {
		t.Parallel()

		assert.True(t, sortable.Int(5).Equals(sortable.Int(5)))
		assert.False(t, sortable.Int(5).Equals(sortable.Int(6)))
	})

	t.Run("less than", func(t *testing.T) {
		t.Parallel()

		assert.True(t, sortable.Int(-1).LessThan(sortable.Int(0)))
		assert.False(t, sortable.Int(0).LessThan(sortable.Int(0)))
		assert.False(t, sortable.Int(1).LessThan(sortable.Int(0)))
	})
}

func TestByte(t *testing.T) {
	t.Parallel()

	assert.True(t, sortable.Byte('a').LessThan(sortable.Byte('b')))
	assert.True(t, sortable.Byte('x').Equals(sortable.Byte('x')))
	assert.False(t, sortable.Byte('b').LessThan(sortable.Byte('a')))
}

func TestString(t *testing.T) {
	t.Parallel()

	assert.True(t, sortable.String("apple").LessThan(sortable.String("banana")))
	assert.True(t, sortable.String("").Equals(sortable.String("")))
	assert.False(t, sortable.String("b").LessThan(sortable.String("a")))
}

type priority struct {
	Rank int
	Name string
}

func (p priority) Equals(other priority) bool {
	return p.Rank == other.Rank && p.Name == other.Name
}

func (p priority) LessThan(other priority) bool {
	if p.Rank != other.Rank {
		return p.Rank < other.Rank
	}

	return p.Name < other.Name
}

func TestComparator(t *testing.T) {
	t.Parallel()

	t.Run("bridges a primitive wrapper", func(t *testing.T) {
		t.Parallel()

		cmp := sortable.Comparator[sortable.Int]()

		assert.Equal(t, compare.Less, cmp(sortable.Int(1), sortable.Int(2)))
		assert.Equal(t, compare.Equal, cmp(sortable.Int(2), sortable.Int(2)))
		assert.Equal(t, compare.Greater, cmp(sortable.Int(3), sortable.Int(2)))
	})

	t.Run("bridges a custom type", func(t *testing.T) {
		t.Parallel()

		cmp := sortable.Comparator[priority]()

		low := priority{Rank: 1, Name: "a"}
		high := priority{Rank: 2, Name: "a"}
		sameRank := priority{Rank: 1, Name: "b"}

		assert.Equal(t, compare.Less, cmp(low, high))
		assert.Equal(t, compare.Greater, cmp(high, low))
		assert.Equal(t, compare.Less, cmp(low, sameRank))
		assert.Equal(t, compare.Equal, cmp(low, low))
	})

	t.Run("always produces a valid ordering", func(t *testing.T) {
		t.Parallel()

		cmp := sortable.Comparator[sortable.String]()

		pairs := [][2]sortable.String{
			{"a", "b"}, {"b", "a"}, {"a", "a"}, {"", "z"},
		}

		for _, pair := range pairs {
			assert.True(t, cmp(pair[0], pair[1]).Valid())
		}
	})
}

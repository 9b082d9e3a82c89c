package compare_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amp-labs/sortedseq/compare"
	"github.com/amp-labs/sortedseq/sortable"
	"github.com/amp-labs/sortedseq/sorted"
)

// caseFoldedTag compares equal regardless of letter case, standing in for
// element types whose equality is looser than ==.
type caseFoldedTag string

func (t caseFoldedTag) Equals(other caseFoldedTag) bool {
	return strings.EqualFold(string(t), string(other))
}

func TestEquals(t *testing.T) {
	t.Parallel()

	t.Run("delegates to the type's own equality", func(t *testing.T) {
		t.Parallel()

		assert.True(t, compare.Equals(caseFoldedTag("Alpha"), caseFoldedTag("alpha")))
		assert.False(t, compare.Equals(caseFoldedTag("alpha"), caseFoldedTag("beta")))
	})

	t.Run("works through the sortable wrappers", func(t *testing.T) {
		t.Parallel()

		assert.True(t, compare.Equals(sortable.Int(7), sortable.Int(7)))
		assert.False(t, compare.Equals(sortable.Int(7), sortable.Int(8)))
		assert.True(t, compare.Equals(sortable.String("pear"), sortable.String("pear")))
		assert.False(t, compare.Equals(sortable.Byte('a'), sortable.Byte('b')))
	})
}

func TestComparable_DrivesTieDetection(t *testing.T) {
	t.Parallel()

	// A container ordered through a Sortable bridge resolves ties with the
	// type's Equals, so custom equality semantics carry into placement.
	c := sorted.New(sortable.Comparator[sortable.Int]())

	require.NoError(t, c.Push(sortable.Int(2), sortable.Int(1), sortable.Int(2)))

	assert.Equal(t, []sortable.Int{1, 2, 2}, c.Entries())
}

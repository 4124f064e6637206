package set_test

import (
	"hash"
	"testing"

	"github.com/amp-labs/objectgraph/errors"
	"github.com/amp-labs/objectgraph/hashing"
	"github.com/amp-labs/objectgraph/set"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type collidingElem struct {
	id int
}

func (c collidingElem) UpdateHash(h hash.Hash) error {
	_, err := h.Write([]byte("same"))

	return err
}

func (c collidingElem) Equals(other collidingElem) bool {
	return c.id == other.id
}

func TestOrderedSet_Add(t *testing.T) {
	t.Parallel()

	t.Run("keeps first insertion order", func(t *testing.T) {
		t.Parallel()

		s := set.NewOrderedSet[hashing.HashableString](hashing.Xxh3)
		require.NoError(t, s.AddAll("small", "medium", "small", "large", "medium"))

		assert.Equal(t, 3, s.Size())
		assert.Equal(t, []hashing.HashableString{"small", "medium", "large"}, s.Entries())
	})

	t.Run("collision is an error", func(t *testing.T) {
		t.Parallel()

		s := set.NewOrderedSet[collidingElem](hashing.Sha256)
		require.NoError(t, s.Add(collidingElem{id: 1}))
		require.NoError(t, s.Add(collidingElem{id: 1}))
		require.ErrorIs(t, s.Add(collidingElem{id: 2}), errors.ErrHashCollision)

		_, err := s.Contains(collidingElem{id: 2})
		require.ErrorIs(t, err, errors.ErrHashCollision)
	})
}

func TestOrderedSet_Seq(t *testing.T) {
	t.Parallel()

	s, err := set.Strings(hashing.XxHash64, "1", "2", "3")
	require.NoError(t, err)

	var seen []string

	for i, elem := range s.Seq() {
		assert.Equal(t, len(seen), i)

		seen = append(seen, elem.String())
	}

	assert.Equal(t, []string{"1", "2", "3"}, seen)

	contains, err := s.Contains("2")
	require.NoError(t, err)
	assert.True(t, contains)

	contains, err = s.Contains("9")
	require.NoError(t, err)
	assert.False(t, contains)
}

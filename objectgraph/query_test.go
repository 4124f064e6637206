package objectgraph_test

import (
	"math"
	"testing"

	"github.com/amp-labs/objectgraph/objectgraph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGraph_ValuesOf(t *testing.T) {
	t.Parallel()

	g := newShirtGraph(t)

	t.Run("distinct values in first seen order", func(t *testing.T) {
		t.Parallel()

		sizes, err := g.ValuesOf("size")
		require.NoError(t, err)
		assert.Equal(t, []any{"small", "medium", "large"}, sizes)

		colors, err := g.ValuesOf("color")
		require.NoError(t, err)
		assert.Equal(t, []any{"red", "yellow", "green", "blue"}, colors)
	})

	t.Run("restricted to keys", func(t *testing.T) {
		t.Parallel()

		colors, err := g.ValuesOf("color", "8", "3", "42")
		require.NoError(t, err)
		assert.Equal(t, []any{"yellow", "blue"}, colors)
	})

	t.Run("unknown field", func(t *testing.T) {
		t.Parallel()

		values, err := g.ValuesOf("sleeve")
		require.NoError(t, err)
		assert.Equal(t, []any{nil}, values, "missing everywhere still yields one nil entry")
	})

	t.Run("empty key list means the whole graph", func(t *testing.T) {
		t.Parallel()

		var keys []string

		sizes, err := g.ValuesOf("size", keys...)
		require.NoError(t, err)
		assert.Len(t, sizes, 3)
	})

	t.Run("empty field", func(t *testing.T) {
		t.Parallel()

		_, err := g.ValuesOf("")
		require.ErrorIs(t, err, objectgraph.ErrInvalidArgument)
	})

	t.Run("dynamic records", func(t *testing.T) {
		t.Parallel()

		records := []objectgraph.Fields{
			{"id": 1, "price": 10, "tags": []any{"a"}},
			{"id": 2, "price": 10.0, "tags": []any{"a"}},
			{"id": 3, "price": "10"},
			{"id": 4},
		}

		g, err := objectgraph.New(records, objectgraph.KeyByField[objectgraph.Fields]("id"),
			objectgraph.WithReporter(nil))
		require.NoError(t, err)

		prices, err := g.ValuesOf("price")
		require.NoError(t, err)
		assert.Equal(t, []any{10, 10.0, "10", nil}, prices, "values of different types stay distinct")

		tags, err := g.ValuesOf("tags")
		require.NoError(t, err)
		assert.Equal(t, []any{[]any{"a"}, nil}, tags)
	})

	t.Run("nested values differing only in element type", func(t *testing.T) {
		t.Parallel()

		records := []objectgraph.Fields{
			{"id": "a", "tags": []any{1}, "dims": map[string]any{"w": 2}},
			{"id": "b", "tags": []any{1.0}, "dims": map[string]any{"w": 2.0}},
			{"id": "c", "tags": []any{1}, "dims": map[string]any{"w": 2}},
			{"id": "d", "tags": []any{math.NaN()}, "dims": map[string]any{"w": nil}},
			{"id": "e", "tags": []any{math.NaN()}, "dims": map[string]any{}},
		}

		g, err := objectgraph.New(records, objectgraph.KeyByField[objectgraph.Fields]("id"),
			objectgraph.WithReporter(nil))
		require.NoError(t, err)

		tags, err := g.ValuesOf("tags")
		require.NoError(t, err)
		require.Len(t, tags, 3)
		assert.Equal(t, []any{1}, tags[0])
		assert.Equal(t, []any{1.0}, tags[1])

		dims, err := g.ValuesOf("dims")
		require.NoError(t, err)
		assert.Equal(t, []any{
			map[string]any{"w": 2},
			map[string]any{"w": 2.0},
			map[string]any{"w": nil},
			map[string]any{},
		}, dims)
	})
}

func TestGraph_Match(t *testing.T) {
	t.Parallel()

	g := newShirtGraph(t)

	t.Run("empty shape matches everything", func(t *testing.T) {
		t.Parallel()

		all, err := g.Match(objectgraph.Shape{})
		require.NoError(t, err)
		assert.Equal(t, []string{"1", "2", "3", "4", "5", "6", "7", "8"}, skus(all))
	})

	t.Run("single value", func(t *testing.T) {
		t.Parallel()

		blue, err := g.Match(objectgraph.Shape{"color": objectgraph.Is("blue")})
		require.NoError(t, err)
		assert.Equal(t, []string{"6", "7", "8"}, skus(blue))
	})

	t.Run("alternatives per field", func(t *testing.T) {
		t.Parallel()

		matched, err := g.Match(objectgraph.ShapeOf(map[string]any{
			"color": []string{"red", "blue"},
			"size":  []string{"small", "medium"},
		}))
		require.NoError(t, err)
		assert.Equal(t, []string{"1", "2", "6", "7"}, skus(matched))
	})

	t.Run("no match", func(t *testing.T) {
		t.Parallel()

		matched, err := g.Match(objectgraph.Shape{"color": objectgraph.Is("purple")})
		require.NoError(t, err)
		assert.NotNil(t, matched)
		assert.Empty(t, matched)
	})

	t.Run("missing field never equals a value", func(t *testing.T) {
		t.Parallel()

		matched, err := g.Match(objectgraph.Shape{"sleeve": objectgraph.Is("long")})
		require.NoError(t, err)
		assert.Empty(t, matched)

		matched, err = g.Match(objectgraph.Shape{"sleeve": objectgraph.Is(nil)})
		require.NoError(t, err)
		assert.Len(t, matched, 8)
	})

	t.Run("nil shape", func(t *testing.T) {
		t.Parallel()

		_, err := g.Match(nil)
		require.ErrorIs(t, err, objectgraph.ErrInvalidArgument)
	})

	t.Run("does not modify the graph", func(t *testing.T) {
		t.Parallel()

		source := newShirtGraph(t)

		_, err := source.Match(objectgraph.Shape{"size": objectgraph.Is("large")})
		require.NoError(t, err)
		assert.Equal(t, 8, source.Size())
	})
}

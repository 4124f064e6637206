package objectgraph_test

import (
	"math"
	"testing"

	"github.com/amp-labs/objectgraph/objectgraph"
	"github.com/stretchr/testify/assert"
)

func TestIs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		want  any
		value any
		match bool
	}{
		{name: "equal strings", want: "red", value: "red", match: true},
		{name: "different strings", want: "red", value: "blue", match: false},
		{name: "int and float", want: 1, value: 1.0, match: false},
		{name: "int and string", want: 1, value: "1", match: false},
		{name: "both nil", want: nil, value: nil, match: true},
		{name: "nil and value", want: nil, value: "red", match: false},
		{name: "NaN", want: math.NaN(), value: math.NaN(), match: true},
		{name: "slices", want: []any{"a", 1}, value: []any{"a", 1}, match: true},
		{name: "different slices", want: []any{"a"}, value: []any{"b"}, match: false},
		{name: "maps", want: map[string]any{"k": "v"}, value: map[string]any{"k": "v"}, match: true},
		{name: "bytes", want: []byte("x"), value: []byte("x"), match: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.match, objectgraph.Is(tt.want).Match(tt.value))
		})
	}
}

func TestIn(t *testing.T) {
	t.Parallel()

	m := objectgraph.In("red", "blue")
	assert.True(t, m.Match("red"))
	assert.True(t, m.Match("blue"))
	assert.False(t, m.Match("green"))
	assert.False(t, m.Match(nil))

	assert.False(t, objectgraph.In().Match("red"), "no candidates matches nothing")
}

func TestAnything(t *testing.T) {
	t.Parallel()

	assert.True(t, objectgraph.Anything().Match(nil))
	assert.True(t, objectgraph.Anything().Match("red"))
}

func TestShape_Matches(t *testing.T) {
	t.Parallel()

	record := objectgraph.Fields{"color": "red", "size": "small"}

	assert.True(t, objectgraph.Shape{}.Matches(record))
	assert.True(t, objectgraph.Shape{"color": nil}.Matches(record))
	assert.True(t, objectgraph.Shape{"color": objectgraph.Is("red")}.Matches(record))
	assert.False(t, objectgraph.Shape{
		"color": objectgraph.Is("red"),
		"size":  objectgraph.Is("large"),
	}.Matches(record))

	custom := objectgraph.MatcherFunc(func(value any) bool {
		s, ok := value.(string)

		return ok && len(s) > 3
	})
	assert.True(t, objectgraph.Shape{"size": custom}.Matches(record))
	assert.False(t, objectgraph.Shape{"color": custom}.Matches(record))
}

func TestShapeOf(t *testing.T) {
	t.Parallel()

	record := objectgraph.Fields{"color": "red", "size": "small", "blob": []byte("x")}

	assert.Nil(t, objectgraph.ShapeOf(nil))

	tests := []struct {
		name        string
		constraints map[string]any
		match       bool
	}{
		{name: "empty", constraints: map[string]any{}, match: true},
		{name: "scalar", constraints: map[string]any{"color": "red"}, match: true},
		{name: "scalar mismatch", constraints: map[string]any{"color": "blue"}, match: false},
		{name: "nil is unconstrained", constraints: map[string]any{"color": nil}, match: true},
		{name: "slice means any of", constraints: map[string]any{"color": []any{"blue", "red"}}, match: true},
		{name: "array means any of", constraints: map[string]any{"size": [2]string{"small", "large"}}, match: true},
		{name: "empty slice matches nothing", constraints: map[string]any{"color": []string{}}, match: false},
		{name: "bytes are a scalar", constraints: map[string]any{"blob": []byte("x")}, match: true},
		{name: "matcher as is", constraints: map[string]any{"size": objectgraph.In("small")}, match: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.match, objectgraph.ShapeOf(tt.constraints).Matches(record))
		})
	}
}

package objectgraph

import (
	"fmt"
	"hash"
	"io"

	"github.com/amp-labs/objectgraph/set"
)

// fieldValue wraps a projected field value so it can live in a set.OrderedSet.
type fieldValue struct {
	value any
}

// UpdateHash hashes the canonical rendering, the same string Equals compares.
func (f fieldValue) UpdateHash(h hash.Hash) error {
	_, err := io.WriteString(h, canonical(f.value))

	return err
}

func (f fieldValue) Equals(other fieldValue) bool {
	return valuesEqual(f.value, other.value)
}

// ValuesOf returns the distinct values of field across the graph, in the order
// they are first seen. A record without the field contributes nil, as in
// Match, so a field missing anywhere shows up once as a nil entry.
//
// If keys are given, only the records under those keys are considered (see
// Subgraph). Since keys is variadic, passing none (including an empty
// slice spread with keys...) means the whole graph rather than an empty
// Subgraph error. An empty field name is ErrInvalidArgument.
func (g *Graph[V]) ValuesOf(field string, keys ...string) ([]any, error) {
	if field == "" {
		return nil, fmt.Errorf("%w: field must not be empty", ErrInvalidArgument)
	}

	source := g

	if len(keys) > 0 {
		sub, err := g.Subgraph(keys)
		if err != nil {
			return nil, err
		}

		source = sub
	}

	distinct := set.NewOrderedSet[fieldValue](g.hash)

	for _, entry := range source.nodes.Seq() {
		value, _ := entry.Value.Field(field)

		if err := distinct.Add(fieldValue{value: value}); err != nil {
			return nil, fmt.Errorf("values of %q: %w", field, err)
		}
	}

	values := make([]any, 0, distinct.Size())
	for _, fv := range distinct.Seq() {
		values = append(values, fv.value)
	}

	return values, nil
}

// Match returns the records that satisfy shape, in graph order. A nil shape
// is ErrInvalidArgument; an empty one matches everything.
func (g *Graph[V]) Match(shape Shape) ([]V, error) {
	if shape == nil {
		return nil, fmt.Errorf("%w: shape must not be nil", ErrInvalidArgument)
	}

	matched := make([]V, 0)

	for _, entry := range g.nodes.Seq() {
		if shape.Matches(entry.Value) {
			matched = append(matched, entry.Value)
		}
	}

	return matched, nil
}

// Package set provides an insertion-ordered hash set.
package set

import (
	"iter"

	"github.com/amp-labs/objectgraph/collectable"
	"github.com/amp-labs/objectgraph/hashing"
	"github.com/amp-labs/objectgraph/maps"
)

// OrderedSet is a collection of unique elements that remembers the order in
// which elements were first added. Uniqueness is determined by the HashFunc
// the set was created with together with the elements' Equals method; two
// distinct elements with the same hash yield ErrHashCollision.
type OrderedSet[T collectable.Collectable[T]] interface {
	// Add adds an element. Adding an element already in the set is a no-op
	// and does not move it.
	Add(element T) error

	// AddAll adds elements in order, stopping at the first error.
	AddAll(elements ...T) error

	// Contains reports whether the element is in the set.
	Contains(element T) (bool, error)

	// Size returns the number of elements in the set.
	Size() int

	// Entries returns the elements in insertion order.
	Entries() []T

	// Seq ranges over the elements in insertion order.
	Seq() iter.Seq2[int, T]
}

// NewOrderedSet creates an empty OrderedSet using the provided hash function.
func NewOrderedSet[T collectable.Collectable[T]](hash hashing.HashFunc) OrderedSet[T] {
	return &orderedSet[T]{
		elements: maps.NewOrderedHashMap[T, struct{}](hash),
	}
}

type orderedSet[T collectable.Collectable[T]] struct {
	elements maps.OrderedMap[T, struct{}]
}

func (s *orderedSet[T]) Add(element T) error {
	contains, err := s.elements.Contains(element)
	if err != nil || contains {
		return err
	}

	return s.elements.Add(element, struct{}{})
}

func (s *orderedSet[T]) AddAll(elements ...T) error {
	for _, elem := range elements {
		if err := s.Add(elem); err != nil {
			return err
		}
	}

	return nil
}

func (s *orderedSet[T]) Contains(element T) (bool, error) {
	return s.elements.Contains(element)
}

func (s *orderedSet[T]) Size() int {
	return s.elements.Size()
}

func (s *orderedSet[T]) Entries() []T {
	return s.elements.Keys()
}

func (s *orderedSet[T]) Seq() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, entry := range s.elements.Seq() {
			if !yield(i, entry.Key) {
				return
			}
		}
	}
}

// Strings builds an OrderedSet of the given strings, in order.
func Strings(hash hashing.HashFunc, values ...string) (OrderedSet[hashing.HashableString], error) {
	s := NewOrderedSet[hashing.HashableString](hash)

	for _, v := range values {
		if err := s.Add(hashing.HashableString(v)); err != nil {
			return nil, err
		}
	}

	return s, nil
}

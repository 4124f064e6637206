// Package collectable defines the constraint shared by map keys and set
// elements: hashable for bucketing, comparable for resolving collisions.
package collectable

import "github.com/amp-labs/objectgraph/hashing"

// Collectable is implemented by values that can be stored in a maps.OrderedMap
// or a set.OrderedSet. Uniqueness is decided by the hash value; two values that
// hash alike but are not Equal are a collision.
type Collectable[T any] interface {
	hashing.Hashable

	Equals(other T) bool
}

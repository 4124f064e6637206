// Package maps provides the insertion-ordered hash map that backs a graph's
// key to record mapping.
package maps

import (
	"iter"

	"github.com/amp-labs/objectgraph/collectable"
	errors2 "github.com/amp-labs/objectgraph/errors"
	"github.com/amp-labs/objectgraph/hashing"
)

// KeyValuePair is a single entry yielded by OrderedMap.Seq.
type KeyValuePair[K any, V any] struct {
	Key   K
	Value V
}

// OrderedMap is a hash map that remembers the order in which keys were first
// added. Keys are bucketed by the map's hash function and compared with
// Equals to detect collisions, in which case ErrHashCollision is returned.
//
// Thread-safety: implementations are not thread-safe. Mutating the map while
// ranging over Seq is undefined; take a Keys snapshot first if you need to.
type OrderedMap[K collectable.Collectable[K], V any] interface {
	// Get returns the value stored under key. found is false if the key is absent.
	Get(key K) (value V, found bool, err error)

	// Add inserts or replaces a value. A replaced key keeps its position;
	// a new key is appended to the end of the order.
	Add(key K, value V) error

	// Remove deletes the key. Removing an absent key is a no-op.
	Remove(key K) error

	// Contains reports whether the key is stored.
	Contains(key K) (bool, error)

	// Size returns the number of stored keys.
	Size() int

	// Seq ranges over the entries in insertion order, yielding each entry's
	// position alongside it.
	Seq() iter.Seq2[int, KeyValuePair[K, V]]

	// Keys returns a fresh slice of the keys in insertion order.
	Keys() []K

	// Clone returns a shallow copy: a new structure holding the same keys and values.
	Clone() OrderedMap[K, V]

	// Filter returns a new map holding the entries for which predicate is true,
	// in the same relative order.
	Filter(predicate func(key K, value V) bool) OrderedMap[K, V]

	// HashFunction returns the hash function used by this map, so callers can
	// build compatible maps and sets.
	HashFunction() hashing.HashFunc
}

// NewOrderedHashMap creates an empty OrderedMap using the provided hash function.
//
// Example:
//
//	m := maps.NewOrderedHashMap[hashing.HashableString, Shirt](hashing.Xxh3)
//	_ = m.Add("1", redShirt)
//	_ = m.Add("2", blueShirt)
//	// Seq yields "1" then "2"
func NewOrderedHashMap[K collectable.Collectable[K], V any](hash hashing.HashFunc) OrderedMap[K, V] {
	return NewOrderedHashMapWithSize[K, V](hash, 0)
}

// NewOrderedHashMapWithSize is NewOrderedHashMap with a capacity hint for the
// expected number of entries.
func NewOrderedHashMapWithSize[K collectable.Collectable[K], V any](
	hash hashing.HashFunc, size int,
) OrderedMap[K, V] {
	return &orderedHashMap[K, V]{
		hash:        hash,
		orderedKeys: make([]string, 0, size),
		data:        make(map[string]KeyValuePair[K, V], size),
	}
}

// orderedHashMap stores entries in a Go map indexed by hash value, plus a
// slice of the same hash values in insertion order. Iteration walks the
// slice, so order is deterministic. Removal is O(n) in the slice.
type orderedHashMap[K collectable.Collectable[K], V any] struct {
	hash        hashing.HashFunc
	orderedKeys []string                      // hash values in insertion order
	data        map[string]KeyValuePair[K, V] // entries indexed by hash value
}

var _ OrderedMap[hashing.HashableString, any] = (*orderedHashMap[hashing.HashableString, any])(nil)

// lookup hashes the key and returns the stored entry, if any. A stored entry
// whose key is not Equal to the requested one is a collision.
func (o *orderedHashMap[K, V]) lookup(key K) (string, KeyValuePair[K, V], bool, error) {
	hashVal, err := o.hash(key)
	if err != nil {
		return "", KeyValuePair[K, V]{}, false, err
	}

	prev, ok := o.data[hashVal]
	if ok && !key.Equals(prev.Key) {
		return hashVal, KeyValuePair[K, V]{}, false, errors2.ErrHashCollision
	}

	return hashVal, prev, ok, nil
}

func (o *orderedHashMap[K, V]) Get(key K) (V, bool, error) {
	_, entry, ok, err := o.lookup(key)
	if err != nil || !ok {
		var zero V

		return zero, false, err
	}

	return entry.Value, true, nil
}

func (o *orderedHashMap[K, V]) Add(key K, value V) error {
	hashVal, _, ok, err := o.lookup(key)
	if err != nil {
		return err
	}

	if !ok {
		o.orderedKeys = append(o.orderedKeys, hashVal)
	}

	o.data[hashVal] = KeyValuePair[K, V]{Key: key, Value: value}

	return nil
}

func (o *orderedHashMap[K, V]) Remove(key K) error {
	hashVal, _, ok, err := o.lookup(key)
	if err != nil || !ok {
		return err
	}

	for i, h := range o.orderedKeys {
		if h == hashVal {
			o.orderedKeys = append(o.orderedKeys[:i], o.orderedKeys[i+1:]...)

			break
		}
	}

	delete(o.data, hashVal)

	return nil
}

func (o *orderedHashMap[K, V]) Contains(key K) (bool, error) {
	_, _, ok, err := o.lookup(key)

	return ok, err
}

func (o *orderedHashMap[K, V]) Size() int {
	return len(o.data)
}

func (o *orderedHashMap[K, V]) Seq() iter.Seq2[int, KeyValuePair[K, V]] {
	return func(yield func(int, KeyValuePair[K, V]) bool) {
		for i, hashVal := range o.orderedKeys {
			if !yield(i, o.data[hashVal]) {
				return
			}
		}
	}
}

func (o *orderedHashMap[K, V]) Keys() []K {
	keys := make([]K, 0, len(o.orderedKeys))

	for _, entry := range o.Seq() {
		keys = append(keys, entry.Key)
	}

	return keys
}

// Clone copies the hash index and the order slice directly; the hash values
// are already known, so nothing is rehashed.
func (o *orderedHashMap[K, V]) Clone() OrderedMap[K, V] {
	if o == nil {
		return nil
	}

	data := make(map[string]KeyValuePair[K, V], len(o.data))
	for hashVal, entry := range o.data {
		data[hashVal] = entry
	}

	orderedKeys := make([]string, len(o.orderedKeys))
	copy(orderedKeys, o.orderedKeys)

	return &orderedHashMap[K, V]{
		hash:        o.hash,
		orderedKeys: orderedKeys,
		data:        data,
	}
}

func (o *orderedHashMap[K, V]) Filter(predicate func(key K, value V) bool) OrderedMap[K, V] {
	result := &orderedHashMap[K, V]{
		hash: o.hash,
		data: make(map[string]KeyValuePair[K, V]),
	}

	for _, hashVal := range o.orderedKeys {
		entry := o.data[hashVal]
		if predicate(entry.Key, entry.Value) {
			result.orderedKeys = append(result.orderedKeys, hashVal)
			result.data[hashVal] = entry
		}
	}

	return result
}

func (o *orderedHashMap[K, V]) HashFunction() hashing.HashFunc {
	return o.hash
}

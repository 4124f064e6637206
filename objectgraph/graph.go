// Package objectgraph provides Graph, an in-memory keyed collection of
// homogeneous records. Each record's key is derived by a KeyFunc supplied at
// construction; keys are unique and iteration follows insertion order.
//
// Despite the name there are no edges: a Graph is a typed, keyed set of
// records with copy-on-write variants of every mutation and a few query
// helpers (Subgraph, ValuesOf, Match).
//
// A Graph has no internal locking. Concurrent use with at least one writer
// is undefined; hand each writer its own Copy instead.
//
// Example:
//
//	shirts, err := objectgraph.New(records, objectgraph.KeyByField[objectgraph.Fields]("sku"))
//	if err != nil {
//	    return err
//	}
//
//	blue, _ := shirts.Match(objectgraph.Shape{"color": objectgraph.Is("blue")})
package objectgraph

import (
	"fmt"
	"iter"

	"facette.io/natsort"
	errors2 "github.com/amp-labs/objectgraph/errors"
	"github.com/amp-labs/objectgraph/hashing"
	"github.com/amp-labs/objectgraph/maps"
	"github.com/amp-labs/objectgraph/set"
)

type key = hashing.HashableString

// Graph is a keyed collection of records of type V. Use New to create one.
type Graph[V Record] struct {
	nodes    maps.OrderedMap[key, V]
	keyFunc  KeyFunc[V]
	reporter Reporter
	hash     hashing.HashFunc
}

// New builds a Graph from records, keying each one with keyFunc.
//
// records may be empty but not nil, and keyFunc must not be nil. Every record
// must be present (non-nil) and must produce a non-empty key. When two records
// share a key the later one wins and takes the earlier one's position.
func New[V Record](records []V, keyFunc KeyFunc[V], opts ...Option) (*Graph[V], error) {
	if records == nil {
		return nil, fmt.Errorf("%w: records must not be nil", ErrInvalidArgument)
	}

	if keyFunc == nil {
		return nil, fmt.Errorf("%w: key func must not be nil", ErrInvalidArgument)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	g := &Graph[V]{
		nodes:    maps.NewOrderedHashMapWithSize[key, V](o.hash, len(records)),
		keyFunc:  keyFunc,
		reporter: o.reporter,
		hash:     o.hash,
	}

	for i, record := range records {
		k, err := g.keyOf(record)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}

		if err := g.nodes.Add(key(k), record); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
	}

	return g, nil
}

// MustNew is like New but panics on error. Intended for fixtures and tests.
func MustNew[V Record](records []V, keyFunc KeyFunc[V], opts ...Option) *Graph[V] {
	g, err := New(records, keyFunc, opts...)
	if err != nil {
		panic(err)
	}

	return g
}

func (g *Graph[V]) keyOf(record V) (string, error) {
	if isAbsent(record) {
		return "", fmt.Errorf("%w: record must not be nil", ErrInvalidArgument)
	}

	k := g.keyFunc(record)
	if k == "" {
		return "", fmt.Errorf("%w: key func returned an empty key", ErrInvalidArgument)
	}

	return k, nil
}

func validateKey(k string) error {
	if k == "" {
		return fmt.Errorf("%w: key must not be empty", ErrInvalidArgument)
	}

	return nil
}

// report builds the error for a presence failure and hands it to the reporter.
func (g *Graph[V]) report(op Operation, k string, sentinel error) error {
	err := fmt.Errorf("%w: %s %q", sentinel, op, k)

	g.reporter.Report(Event{Op: op, Key: k, Err: err})

	return err
}

// Size returns the number of records (equivalently, of distinct keys).
func (g *Graph[V]) Size() int {
	return g.nodes.Size()
}

// Keys returns the keys in insertion order. The sequence ranges over a
// snapshot taken when Keys is called.
func (g *Graph[V]) Keys() iter.Seq[string] {
	keys := g.nodes.Keys()

	return func(yield func(string) bool) {
		for _, k := range keys {
			if !yield(string(k)) {
				return
			}
		}
	}
}

// Values returns the records in insertion order, snapshotted like Keys.
func (g *Graph[V]) Values() iter.Seq[V] {
	values := g.All()

	return func(yield func(V) bool) {
		for _, v := range values {
			if !yield(v) {
				return
			}
		}
	}
}

// Seq returns key/record pairs in insertion order, snapshotted like Keys.
func (g *Graph[V]) Seq() iter.Seq2[string, V] {
	entries := make([]maps.KeyValuePair[key, V], 0, g.nodes.Size())
	for _, entry := range g.nodes.Seq() {
		entries = append(entries, entry)
	}

	return func(yield func(string, V) bool) {
		for _, entry := range entries {
			if !yield(string(entry.Key), entry.Value) {
				return
			}
		}
	}
}

// All returns a new slice holding every record in insertion order.
func (g *Graph[V]) All() []V {
	values := make([]V, 0, g.nodes.Size())
	for _, entry := range g.nodes.Seq() {
		values = append(values, entry.Value)
	}

	return values
}

// SortedKeys returns the keys in natural order, so "2" sorts before "10".
func (g *Graph[V]) SortedKeys() []string {
	keys := make([]string, 0, g.nodes.Size())
	for k := range g.Keys() {
		keys = append(keys, k)
	}

	natsort.Sort(keys)

	return keys
}

// Get returns the record stored under k. An empty key is ErrInvalidArgument;
// a missing one is ErrNotFound.
func (g *Graph[V]) Get(k string) (V, error) {
	var zero V

	if err := validateKey(k); err != nil {
		return zero, err
	}

	value, found, err := g.nodes.Get(key(k))
	if err != nil {
		return zero, err
	}

	if !found {
		return zero, g.report(OpGet, k, ErrNotFound)
	}

	return value, nil
}

// Contains reports whether a record is stored under k.
func (g *Graph[V]) Contains(k string) bool {
	if k == "" {
		return false
	}

	found, err := g.nodes.Contains(key(k))

	return err == nil && found
}

// Copy returns a graph with the same key func, reporter and entries whose
// mapping is independent of g. Records themselves are shared, not cloned.
func (g *Graph[V]) Copy() *Graph[V] {
	return g.with(g.nodes.Clone())
}

func (g *Graph[V]) with(nodes maps.OrderedMap[key, V]) *Graph[V] {
	return &Graph[V]{
		nodes:    nodes,
		keyFunc:  g.keyFunc,
		reporter: g.reporter,
		hash:     g.hash,
	}
}

// Subgraph returns a new graph holding only the records whose keys appear in
// keys, in g's order. Keys not in g are skipped. keys must not be empty.
func (g *Graph[V]) Subgraph(keys []string) (*Graph[V], error) {
	if len(keys) == 0 {
		return nil, fmt.Errorf("%w: keys must not be empty", ErrInvalidArgument)
	}

	wanted, err := set.Strings(g.hash, keys...)
	if err != nil {
		return nil, err
	}

	var lookupErr error

	nodes := g.nodes.Filter(func(k key, _ V) bool {
		contains, err := wanted.Contains(k)
		if err != nil {
			lookupErr = err

			return false
		}

		return contains
	})

	if lookupErr != nil {
		return nil, lookupErr
	}

	return g.with(nodes), nil
}

// Filter returns a new graph holding the records for which predicate is true.
func (g *Graph[V]) Filter(predicate func(key string, record V) bool) *Graph[V] {
	return g.with(g.nodes.Filter(func(k key, record V) bool {
		return predicate(string(k), record)
	}))
}

// Add inserts a record. It fails with ErrInvalidArgument for a nil record or
// an empty key, and with ErrAlreadyExists if the key is taken.
func (g *Graph[V]) Add(record V) error {
	k, err := g.keyOf(record)
	if err != nil {
		return err
	}

	exists, err := g.nodes.Contains(key(k))
	if err != nil {
		return err
	}

	if exists {
		return g.report(OpAdd, k, ErrAlreadyExists)
	}

	return g.nodes.Add(key(k), record)
}

// AddAll inserts every record, or none of them. All records are validated
// first; the returned error joins one error per rejected record. A key that
// repeats within the batch counts as ErrAlreadyExists.
func (g *Graph[V]) AddAll(records ...V) error {
	var errs errors2.Collection

	keys := make([]string, len(records))
	firstIndex := make(map[string]int, len(records))

	for i, record := range records {
		k, err := g.keyOf(record)
		if err != nil {
			errs.Add(fmt.Errorf("record %d: %w", i, err))

			continue
		}

		if j, repeated := firstIndex[k]; repeated {
			errs.Add(fmt.Errorf("record %d: %w (same key as record %d)", i, g.report(OpAdd, k, ErrAlreadyExists), j))

			continue
		}

		firstIndex[k] = i
		keys[i] = k

		exists, err := g.nodes.Contains(key(k))
		if err != nil {
			errs.Add(fmt.Errorf("record %d: %w", i, err))
		} else if exists {
			errs.Add(fmt.Errorf("record %d: %w", i, g.report(OpAdd, k, ErrAlreadyExists)))
		}
	}

	if errs.HasError() {
		return errs.GetError()
	}

	next := g.nodes.Clone()

	for i, record := range records {
		if err := next.Add(key(keys[i]), record); err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}
	}

	g.nodes = next

	return nil
}

// Update replaces the record stored under record's key, keeping its position.
// It fails with ErrInvalidArgument for a nil record or an empty key, and with
// ErrNotFound if nothing is stored under the key.
func (g *Graph[V]) Update(record V) error {
	k, err := g.keyOf(record)
	if err != nil {
		return err
	}

	exists, err := g.nodes.Contains(key(k))
	if err != nil {
		return err
	}

	if !exists {
		return g.report(OpUpdate, k, ErrNotFound)
	}

	return g.nodes.Add(key(k), record)
}

// Remove deletes the record stored under k. It fails with ErrInvalidArgument
// for an empty key and with ErrNotFound if nothing is stored under it.
func (g *Graph[V]) Remove(k string) error {
	if err := validateKey(k); err != nil {
		return err
	}

	exists, err := g.nodes.Contains(key(k))
	if err != nil {
		return err
	}

	if !exists {
		return g.report(OpRemove, k, ErrNotFound)
	}

	return g.nodes.Remove(key(k))
}

// ToAdded returns a copy of g with record added. g is left unchanged.
func (g *Graph[V]) ToAdded(record V) (*Graph[V], error) {
	next := g.Copy()
	if err := next.Add(record); err != nil {
		return nil, err
	}

	return next, nil
}

// ToUpdated returns a copy of g with record updated. g is left unchanged.
func (g *Graph[V]) ToUpdated(record V) (*Graph[V], error) {
	next := g.Copy()
	if err := next.Update(record); err != nil {
		return nil, err
	}

	return next, nil
}

// ToRemoved returns a copy of g without the record stored under k.
// g is left unchanged.
func (g *Graph[V]) ToRemoved(k string) (*Graph[V], error) {
	next := g.Copy()
	if err := next.Remove(k); err != nil {
		return nil, err
	}

	return next, nil
}

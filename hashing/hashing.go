// Package hashing defines the hash functions used to index graph keys and
// deduplicate projected field values.
package hashing

import (
	"crypto/sha256"
	"encoding/hex"
	"hash"

	"github.com/OneOfOne/xxhash"
	"github.com/zeebo/xxh3"
)

// HashFunc is a function that takes a Hashable object
// and returns a string representation of its hash.
// Sha256, Xxh3 and XxHash64 are all HashFuncs.
type HashFunc func(hashable Hashable) (string, error)

// Hashable is an interface that allows an object to update
// a hash.Hash with its contents.
type Hashable interface {
	UpdateHash(h hash.Hash) error
}

// Sha256 returns the SHA256 hash of the given Hashable
// as a hex-encoded string.
func Sha256(hashable Hashable) (string, error) {
	return sum(sha256.New(), hashable)
}

// Xxh3 returns the 128-bit XXH3 hash of the given Hashable as a
// hex-encoded string. It is the default HashFunc for graphs: fast, and
// wide enough that collisions between distinct keys are not a practical
// concern.
func Xxh3(hashable Hashable) (string, error) {
	h := xxh3.New()

	if err := hashable.UpdateHash(h); err != nil {
		return "", err
	}

	digest := h.Sum128().Bytes()

	return hex.EncodeToString(digest[:]), nil
}

// XxHash64 returns the 64-bit xxHash of the given Hashable as a
// hex-encoded string.
func XxHash64(hashable Hashable) (string, error) {
	return sum(xxhash.New64(), hashable)
}

func sum(h hash.Hash, hashable Hashable) (string, error) {
	if err := hashable.UpdateHash(h); err != nil {
		return "", err
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}

// HashableString is a string usable as a map key or set element.
type HashableString string

func (s HashableString) String() string {
	return string(s)
}

func (s HashableString) UpdateHash(h hash.Hash) error {
	_, err := h.Write([]byte(s))

	return err
}

func (s HashableString) Equals(other HashableString) bool {
	return s == other
}

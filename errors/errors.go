// Package errors holds the error taxonomy shared by the graph and its
// supporting collections.
package errors

import "errors"

var (
	// ErrInvalidArgument is returned when a required argument is missing or
	// malformed: a nil record, an empty key, an empty key list.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotFound is returned when an operation targets a key that is not stored.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists is returned when adding a record whose key is already stored.
	ErrAlreadyExists = errors.New("already exists")

	// ErrHashCollision is returned when two distinct (non-equal) values
	// produce the same hash value.
	ErrHashCollision = errors.New("hashing collision")
)

// Collection is a thread-unsafe utility for accumulating multiple errors.
// Batch operations use it to validate every input before applying any of them.
type Collection struct {
	errors []error
}

// Add appends an error to the collection. Nil errors are ignored.
func (c *Collection) Add(err error) {
	if err != nil {
		c.errors = append(c.errors, err)
	}
}

// Len returns the number of collected errors.
func (c *Collection) Len() int {
	return len(c.errors)
}

// HasError returns true if the collection contains at least one error.
func (c *Collection) HasError() bool {
	return len(c.errors) > 0
}

// GetError returns nil if the collection is empty, the single error if there's
// only one, or the errors joined with errors.Join otherwise.
func (c *Collection) GetError() error {
	switch len(c.errors) {
	case 0:
		return nil
	case 1:
		return c.errors[0]
	default:
		return errors.Join(c.errors...)
	}
}

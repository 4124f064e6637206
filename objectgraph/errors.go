package objectgraph

import errors2 "github.com/amp-labs/objectgraph/errors"

// Every error returned by a Graph wraps one of these; test with errors.Is.
var (
	ErrInvalidArgument = errors2.ErrInvalidArgument
	ErrNotFound        = errors2.ErrNotFound
	ErrAlreadyExists   = errors2.ErrAlreadyExists
	ErrHashCollision   = errors2.ErrHashCollision
)

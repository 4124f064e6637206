package objectgraph

import "github.com/amp-labs/objectgraph/hashing"

// Option configures a Graph at construction time.
type Option func(*options)

type options struct {
	reporter Reporter
	hash     hashing.HashFunc
}

func defaultOptions() options {
	return options{
		reporter: LogReporter(nil),
		hash:     hashing.Xxh3,
	}
}

// WithReporter sets the diagnostic sink for misses and duplicates.
// A nil reporter disables reporting.
func WithReporter(reporter Reporter) Option {
	return func(o *options) {
		if reporter == nil {
			reporter = NopReporter()
		}

		o.reporter = reporter
	}
}

// WithHashFunction sets the hash function used to index keys and to
// deduplicate projected values. Defaults to hashing.Xxh3; nil keeps the default.
func WithHashFunction(hash hashing.HashFunc) Option {
	return func(o *options) {
		if hash != nil {
			o.hash = hash
		}
	}
}

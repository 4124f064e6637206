package objectgraph

import (
	"log/slog"

	"github.com/amp-labs/objectgraph/logger"
)

// Operation names the graph operation that produced an Event.
type Operation string

const (
	OpGet    Operation = "get"
	OpAdd    Operation = "add"
	OpUpdate Operation = "update"
	OpRemove Operation = "remove"
)

// Event describes a lookup that failed because of the key's presence or
// absence: a miss on get, update or remove, or a duplicate on add. Err is the
// error returned to the caller and wraps ErrNotFound or ErrAlreadyExists.
type Event struct {
	Op  Operation
	Key string
	Err error
}

// Reporter is the diagnostic side channel of a Graph. It observes misses and
// duplicates; it cannot change the outcome of the operation.
type Reporter interface {
	Report(event Event)
}

// ReporterFunc adapts a function to the Reporter interface.
type ReporterFunc func(event Event)

func (f ReporterFunc) Report(event Event) {
	f(event)
}

// NopReporter returns a Reporter that ignores every event.
func NopReporter() Reporter {
	return ReporterFunc(func(Event) {})
}

// LogReporter returns a Reporter that writes each event to l at debug level.
// With a nil logger, logger.Get() is consulted on every event, so the
// reporter follows later changes to the default logger.
func LogReporter(l *slog.Logger) Reporter {
	return ReporterFunc(func(event Event) {
		log := l
		if log == nil {
			log = logger.Get()
		}

		log.Debug("object graph lookup failed",
			"op", string(event.Op),
			"key", event.Key,
			"error", event.Err)
	})
}

// MultiReporter fans events out to every non-nil reporter.
func MultiReporter(reporters ...Reporter) Reporter {
	return ReporterFunc(func(event Event) {
		for _, r := range reporters {
			if r != nil {
				r.Report(event)
			}
		}
	})
}

package objectgraph

import (
	"fmt"
	"reflect"
)

// Record is the structural bound on values stored in a Graph: anything that
// can report the value of a named field. The graph never inspects records
// except through Field and the graph's KeyFunc.
type Record interface {
	// Field returns the value of the named field, and false if the record has
	// no such field.
	Field(name string) (any, bool)
}

// Fields is a dynamic record: a plain map from field name to value. It is
// what recordio decodes YAML documents into.
type Fields map[string]any

// Field implements Record.
func (f Fields) Field(name string) (any, bool) {
	value, ok := f[name]

	return value, ok
}

// KeyFunc derives a record's key. It must be deterministic and must return a
// non-empty string for every record stored in the graph.
type KeyFunc[V Record] func(record V) string

// KeyByField returns a KeyFunc that renders the named field with fmt.Sprint.
// Records without the field (or with a nil value) get an empty key, which the
// graph rejects.
func KeyByField[V Record](name string) KeyFunc[V] {
	return func(record V) string {
		value, ok := record.Field(name)
		if !ok || value == nil {
			return ""
		}

		return fmt.Sprint(value)
	}
}

// isAbsent reports whether a record is nil: a nil interface, pointer, map,
// slice, channel or func. Zero-valued structs are real records.
func isAbsent(record any) bool {
	if record == nil {
		return true
	}

	rv := reflect.ValueOf(record)

	switch rv.Kind() { //nolint:exhaustive
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
		return rv.IsNil()
	default:
		return false
	}
}

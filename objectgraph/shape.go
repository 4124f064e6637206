package objectgraph

import "reflect"

// Matcher decides whether a single field value is acceptable. Missing fields
// are presented as nil.
type Matcher interface {
	Match(value any) bool
}

// MatcherFunc adapts a function to the Matcher interface.
type MatcherFunc func(value any) bool

func (f MatcherFunc) Match(value any) bool {
	return f(value)
}

// Is matches values equal to want.
func Is(want any) Matcher {
	return MatcherFunc(func(value any) bool {
		return valuesEqual(value, want)
	})
}

// In matches values equal to any of the candidates. With no candidates it
// matches nothing.
func In(candidates ...any) Matcher {
	return MatcherFunc(func(value any) bool {
		for _, c := range candidates {
			if valuesEqual(value, c) {
				return true
			}
		}

		return false
	})
}

// Anything matches every value, including a missing field.
func Anything() Matcher {
	return MatcherFunc(func(any) bool {
		return true
	})
}

// Shape is a partial description of a record: field name to Matcher. A record
// matches when every field's matcher accepts the record's value for that
// field. Fields absent from the shape are unconstrained, as are fields mapped
// to a nil Matcher. The empty shape matches every record.
type Shape map[string]Matcher

// Matches reports whether record satisfies every constraint in s.
func (s Shape) Matches(record Record) bool {
	for field, matcher := range s {
		if matcher == nil {
			continue
		}

		value, _ := record.Field(field)
		if !matcher.Match(value) {
			return false
		}
	}

	return true
}

// ShapeOf builds a Shape from loosely typed constraints: a nil value imposes
// no constraint, a slice or array means In its elements, a Matcher is used
// as is, and anything else means Is. Byte slices are treated as scalars.
func ShapeOf(constraints map[string]any) Shape {
	if constraints == nil {
		return nil
	}

	shape := make(Shape, len(constraints))

	for field, constraint := range constraints {
		shape[field] = matcherFor(constraint)
	}

	return shape
}

func matcherFor(constraint any) Matcher {
	if constraint == nil {
		return nil
	}

	if m, ok := constraint.(Matcher); ok {
		return m
	}

	if _, ok := constraint.([]byte); ok {
		return Is(constraint)
	}

	rv := reflect.ValueOf(constraint)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return Is(constraint)
	}

	candidates := make([]any, rv.Len())
	for i := range rv.Len() {
		candidates[i] = rv.Index(i).Interface()
	}

	return In(candidates...)
}

// valuesEqual compares field values. Values of different dynamic types are
// never equal; otherwise they are equal when their canonical renderings are,
// which makes NaN equal to itself at any depth and compares pointers nested
// in containers by address.
func valuesEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}

	return canonical(a) == canonical(b)
}

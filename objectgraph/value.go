package objectgraph

import (
	"math"
	"reflect"
	"slices"
	"strconv"
	"strings"
)

// canonical renders value as a type-tagged string that recurses into
// containers: every element carries its own dynamic type, map entries are
// sorted, and floats are normalized so that NaN renders as NaN and -0 as 0.
// Pointers, channels and funcs render as addresses and are not followed.
//
// Field values are equal exactly when their renderings are equal, so the
// same string serves as hash input and as equality.
func canonical(value any) string {
	c := canonicalizer{path: map[visit]struct{}{}}
	c.write(reflect.ValueOf(value))

	return c.b.String()
}

type visit struct {
	ptr uintptr
	typ reflect.Type
}

type canonicalizer struct {
	b    strings.Builder
	path map[visit]struct{} // containers being rendered, to cut cycles
}

func (c *canonicalizer) write(v reflect.Value) {
	if !v.IsValid() {
		c.b.WriteString("nil")

		return
	}

	c.b.WriteString(v.Type().String())
	c.b.WriteByte('(')

	switch v.Kind() { //nolint:exhaustive
	case reflect.Bool:
		c.b.WriteString(strconv.FormatBool(v.Bool()))
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		c.b.WriteString(strconv.FormatInt(v.Int(), 10))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		c.b.WriteString(strconv.FormatUint(v.Uint(), 10))
	case reflect.Float32, reflect.Float64:
		c.float(v.Float())
	case reflect.Complex64, reflect.Complex128:
		c.float(real(v.Complex()))
		c.b.WriteByte(',')
		c.float(imag(v.Complex()))
	case reflect.String:
		c.b.WriteString(strconv.Quote(v.String()))
	case reflect.Interface:
		if v.IsNil() {
			c.b.WriteString("nil")
		} else {
			c.write(v.Elem())
		}
	case reflect.Pointer, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		c.address(v)
	case reflect.Array:
		c.elements(v)
	case reflect.Slice:
		if v.IsNil() {
			c.b.WriteString("nil")
		} else if c.enter(v) {
			c.elements(v)
			c.leave(v)
		}
	case reflect.Map:
		if v.IsNil() {
			c.b.WriteString("nil")
		} else if c.enter(v) {
			c.entries(v)
			c.leave(v)
		}
	case reflect.Struct:
		for i := range v.NumField() {
			c.b.WriteString(v.Type().Field(i).Name)
			c.b.WriteByte(':')
			c.write(v.Field(i))
			c.b.WriteByte(',')
		}
	}

	c.b.WriteByte(')')
}

func (c *canonicalizer) float(f float64) {
	switch {
	case math.IsNaN(f):
		c.b.WriteString("NaN")
	case f == 0:
		c.b.WriteString("0")
	default:
		c.b.WriteString(strconv.FormatFloat(f, 'g', -1, 64))
	}
}

func (c *canonicalizer) address(v reflect.Value) {
	if v.Kind() != reflect.UnsafePointer && v.IsNil() {
		c.b.WriteString("nil")

		return
	}

	c.b.WriteString("0x")
	c.b.WriteString(strconv.FormatUint(uint64(v.Pointer()), 16))
}

func (c *canonicalizer) elements(v reflect.Value) {
	for i := range v.Len() {
		c.write(v.Index(i))
		c.b.WriteByte(',')
	}
}

func (c *canonicalizer) entries(v reflect.Value) {
	type entry struct{ key, value string }

	rendered := make([]entry, 0, v.Len())

	iter := v.MapRange()
	for iter.Next() {
		k := canonicalizer{path: c.path}
		k.write(iter.Key())

		val := canonicalizer{path: c.path}
		val.write(iter.Value())

		rendered = append(rendered, entry{key: k.b.String(), value: val.b.String()})
	}

	slices.SortFunc(rendered, func(a, b entry) int {
		return strings.Compare(a.key, b.key)
	})

	for _, e := range rendered {
		c.b.WriteString(e.key)
		c.b.WriteByte(':')
		c.b.WriteString(e.value)
		c.b.WriteByte(',')
	}
}

// enter marks a slice or map as being rendered. A container that is already
// on the path is a cycle and renders as "cycle".
func (c *canonicalizer) enter(v reflect.Value) bool {
	key := visit{ptr: v.Pointer(), typ: v.Type()}
	if _, ok := c.path[key]; ok {
		c.b.WriteString("cycle")

		return false
	}

	c.path[key] = struct{}{}

	return true
}

func (c *canonicalizer) leave(v reflect.Value) {
	delete(c.path, visit{ptr: v.Pointer(), typ: v.Type()})
}

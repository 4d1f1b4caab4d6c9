package spec

import (
	"fmt"
	"reflect"
)

// Kind tells the variants of a Unit apart.
type Kind int

const (
	// KindInvalid is the zero Kind: the unit is neither a type nor the callable marker.
	KindInvalid Kind = iota
	// KindType units match values whose dynamic type is the unit's type (or implements it).
	KindType
	// KindCallable units match any invocable value.
	KindCallable
	// KindNil units match a nil value. They make Optional possible.
	KindNil
)

func (k Kind) String() string {
	switch k {
	case KindType:
		return "type"
	case KindCallable:
		return "callable"
	case KindNil:
		return "nil"
	case KindInvalid:
		return "invalid"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Unit is a single matchable unit: a concrete type, the callable marker or the nil type.
// The zero Unit is invalid; matching against it is a usage error.
type Unit struct {
	kind Kind
	typ  reflect.Type
	raw  any
}

var (
	// Callable is the marker unit meaning "the value must be invocable".
	Callable = Unit{kind: KindCallable} //nolint:gochecknoglobals

	// Nil is the unit matched only by a nil value.
	Nil = Unit{kind: KindNil} //nolint:gochecknoglobals
)

// Type returns the unit for t. A nil t yields an invalid unit.
func Type(t reflect.Type) Unit {
	if t == nil {
		return Unit{}
	}

	return Unit{kind: KindType, typ: t}
}

// TypeFor returns the unit for T. For interface types, use TypeFor[io.Reader]() and
// the like; the unit then matches any value implementing the interface.
func TypeFor[T any]() Unit {
	return Type(reflect.TypeFor[T]())
}

// invalid wraps something that is not a unit, keeping it for error messages.
func invalid(raw any) Unit {
	return Unit{raw: raw}
}

// Kind returns which variant u is.
func (u Unit) Kind() Kind {
	return u.kind
}

// ReflectType returns the type of a KindType unit, nil otherwise.
func (u Unit) ReflectType() reflect.Type {
	return u.typ
}

// Raw returns the value an invalid unit was built from.
func (u Unit) Raw() any {
	return u.raw
}

// Name returns the human-readable name used in error messages.
func (u Unit) Name() string {
	switch u.kind {
	case KindType:
		return typeName(u.typ)
	case KindCallable:
		return "callable"
	case KindNil:
		return "nil"
	case KindInvalid:
		return fmt.Sprintf("%v", u.raw)
	default:
		return u.kind.String()
	}
}

func (u Unit) String() string {
	return u.Name()
}

// TypeName returns the name of v's dynamic type, or "nil".
func TypeName(v any) string {
	if v == nil {
		return "nil"
	}

	return typeName(reflect.TypeOf(v))
}

func typeName(t reflect.Type) string {
	if name := t.Name(); name != "" {
		return name
	}

	return t.String()
}

func sameUnit(a, b Unit) bool {
	if a.kind == KindInvalid || b.kind == KindInvalid {
		return false
	}

	return a.kind == b.kind && a.typ == b.typ
}

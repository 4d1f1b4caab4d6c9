package spec

import (
	"iter"
	"reflect"
	"strings"
)

// Union is a set of alternative units. Build one with OneOf or Optional.
type Union struct {
	members []Unit
}

var _ Iterable = Union{}

// OneOf builds a union of members. Members may be reflect.Type values, Units or other
// Unions; nested unions are merged in, and repeated members are kept once, at their
// first position. Any other member is kept as an invalid unit so that the mistake is
// reported (as errors.ErrMalformedUnit) when a value is matched against the union.
//
// A single member is not collapsed: OneOf(t) is still a Union (IsUnion reports true),
// though it matches exactly the values t matches.
func OneOf(members ...any) Union {
	var u Union

	for _, m := range members {
		switch v := m.(type) {
		case Union:
			for _, nested := range v.members {
				u.add(nested)
			}
		case Unit:
			u.add(v)
		case reflect.Type:
			u.add(Type(v))
		default:
			u.add(invalid(m))
		}
	}

	return u
}

// Optional is OneOf(member, Nil).
func Optional(member any) Union {
	return OneOf(member, Nil)
}

func (u *Union) add(unit Unit) {
	for _, existing := range u.members {
		if sameUnit(existing, unit) {
			return
		}
	}

	u.members = append(u.members, unit)
}

// Members returns a copy of the union's units in order.
func (u Union) Members() []Unit {
	out := make([]Unit, len(u.members))
	copy(out, u.members)

	return out
}

// Len returns the number of members.
func (u Union) Len() int {
	return len(u.members)
}

// All yields the members, which makes a Union iterable like any other specification.
func (u Union) All() iter.Seq[any] {
	return func(yield func(any) bool) {
		for _, m := range u.members {
			if !yield(m) {
				return
			}
		}
	}
}

func (u Union) String() string {
	names := make([]string, len(u.members))
	for i, m := range u.members {
		names[i] = m.Name()
	}

	return "OneOf[" + strings.Join(names, ", ") + "]"
}

// IsUnion reports whether s is a union descriptor, including Optional ones.
func IsUnion(s any) bool {
	_, ok := s.(Union)

	return ok
}

package spec

import (
	"context"
	"reflect"
	"strings"

	"github.com/amp-labs/vval/envutil"
	"github.com/amp-labs/vval/lazy"
)

// UnionsAreGenericEnv names the environment variable holding the default GenericPolicy.
const UnionsAreGenericEnv = "VVAL_UNIONS_ARE_GENERIC"

// GenericPolicy decides whether a Union counts as a generic type.
type GenericPolicy int

const (
	// UnionsAreNotGeneric treats a union as a plain descriptor.
	UnionsAreNotGeneric GenericPolicy = iota
	// UnionsAreGeneric treats a union like any other parameterized type.
	UnionsAreGeneric
)

func (p GenericPolicy) String() string {
	if p == UnionsAreGeneric {
		return "unions-are-generic"
	}

	return "unions-are-not-generic"
}

var defaultPolicy = lazy.New(func() GenericPolicy { //nolint:gochecknoglobals
	return PolicyFromEnv(context.Background())
})

// PolicyFromEnv reads VVAL_UNIONS_ARE_GENERIC (a bool, default false). A value that
// does not parse is logged and ignored.
func PolicyFromEnv(ctx context.Context) GenericPolicy {
	if envutil.Bool(ctx, UnionsAreGenericEnv).ValueOrElse(false) {
		return UnionsAreGeneric
	}

	return UnionsAreNotGeneric
}

// DefaultPolicy is the policy used by IsGeneric. It is read from the environment once.
func DefaultPolicy() GenericPolicy {
	return defaultPolicy.Get()
}

// IsGeneric reports whether s is a parameterized type, using DefaultPolicy for unions.
func IsGeneric(s any) bool {
	return IsGenericWith(s, DefaultPolicy())
}

// IsGenericWith reports whether s is a parameterized type: an instantiated generic named
// type such as Box[int], or a pointer to one. s may be a reflect.Type or a Unit; a Union
// is generic only under UnionsAreGeneric. Everything else is not generic.
func IsGenericWith(s any, policy GenericPolicy) bool {
	switch v := s.(type) {
	case Union:
		return policy == UnionsAreGeneric
	case Unit:
		return v.kind == KindType && isGenericType(v.typ)
	case reflect.Type:
		return isGenericType(v)
	default:
		return false
	}
}

func isGenericType(t reflect.Type) bool {
	if t == nil {
		return false
	}

	if t.Kind() == reflect.Pointer && t.Name() == "" {
		t = t.Elem()
	}

	// reflect names instantiations with their type arguments, e.g. "Box[int]".
	return strings.Contains(t.Name(), "[")
}

package spec

import (
	"iter"
	"reflect"

	"github.com/amp-labs/vval/utils"
)

// Iterable is implemented by values that can hand out their elements one at a time.
// Union implements it.
type Iterable interface {
	All() iter.Seq[any]
}

// IsIterable reports whether an iterator can be obtained from obj without side effects:
// slices, arrays (and pointers to them), maps, strings, range-over-func functions and
// Iterable values. Channels are not iterable here, since reading one consumes it.
func IsIterable(obj any) bool {
	_, ok := Elements(obj)

	return ok
}

// Elements returns an iterator over obj. Maps yield their keys, strings their runes and
// two-argument range functions their first argument. Nothing is read from obj until the
// iterator is ranged over, and a nil pointer or func is never iterable.
func Elements(obj any) (iter.Seq[any], bool) { //nolint:cyclop
	switch o := obj.(type) {
	case nil:
		return nil, false
	case Iterable:
		if utils.IsNilish(obj) {
			return nil, false
		}

		return func(yield func(any) bool) {
			for v := range o.All() {
				if !yield(v) {
					return
				}
			}
		}, true
	case iter.Seq[any]:
		if o == nil {
			return nil, false
		}

		return o, true
	}

	rv := reflect.ValueOf(obj)

	switch rv.Kind() { //nolint:exhaustive
	case reflect.Slice, reflect.Array:
		return indexSeq(rv), true
	case reflect.Pointer:
		if rv.IsNil() || rv.Elem().Kind() != reflect.Array {
			return nil, false
		}

		return indexSeq(rv.Elem()), true
	case reflect.Map:
		return mapKeySeq(rv), true
	case reflect.String:
		return runeSeq(rv.String()), true
	case reflect.Func:
		if rv.IsNil() || !isRangeFunc(rv.Type()) {
			return nil, false
		}

		return funcSeq(rv), true
	default:
		return nil, false
	}
}

// IsCallable reports whether obj can be invoked, which in Go means a non-nil func.
func IsCallable(obj any) bool {
	if utils.IsNilish(obj) {
		return false
	}

	return reflect.TypeOf(obj).Kind() == reflect.Func
}

// IsInstance reports whether value is an instance of t: its dynamic type is t, or t is
// an interface that the dynamic type implements. A nil value is an instance of nothing.
func IsInstance(value any, t reflect.Type) bool {
	if value == nil || t == nil {
		return false
	}

	vt := reflect.TypeOf(value)

	if t.Kind() == reflect.Interface {
		return vt.Implements(t)
	}

	return vt == t
}

func indexSeq(rv reflect.Value) iter.Seq[any] {
	return func(yield func(any) bool) {
		for i := range rv.Len() {
			if !yield(rv.Index(i).Interface()) {
				return
			}
		}
	}
}

func mapKeySeq(rv reflect.Value) iter.Seq[any] {
	return func(yield func(any) bool) {
		it := rv.MapRange()
		for it.Next() {
			if !yield(it.Key().Interface()) {
				return
			}
		}
	}
}

func runeSeq(s string) iter.Seq[any] {
	return func(yield func(any) bool) {
		for _, r := range s {
			if !yield(r) {
				return
			}
		}
	}
}

// isRangeFunc matches func(yield func() bool), func(yield func(K) bool) and
// func(yield func(K, V) bool).
func isRangeFunc(t reflect.Type) bool {
	if t.NumIn() != 1 || t.NumOut() != 0 || t.IsVariadic() {
		return false
	}

	yield := t.In(0)

	return yield.Kind() == reflect.Func &&
		yield.NumIn() <= 2 &&
		!yield.IsVariadic() &&
		yield.NumOut() == 1 &&
		yield.Out(0).Kind() == reflect.Bool
}

func funcSeq(rv reflect.Value) iter.Seq[any] {
	yieldType := rv.Type().In(0)
	boolType := yieldType.Out(0)

	return func(yield func(any) bool) {
		fn := reflect.MakeFunc(yieldType, func(args []reflect.Value) []reflect.Value {
			var elem any
			if len(args) > 0 {
				elem = args[0].Interface()
			}

			return []reflect.Value{reflect.ValueOf(yield(elem)).Convert(boolType)}
		})

		rv.Call([]reflect.Value{fn})
	}
}

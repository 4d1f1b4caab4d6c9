package validate_test

import (
	"context"
	"io"
	"reflect"
	"strings"
	"testing"

	"github.com/amp-labs/vval/errors"
	"github.com/amp-labs/vval/logger"
	"github.com/amp-labs/vval/spec"
	"github.com/amp-labs/vval/validate"
	"github.com/neilotoole/slogt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type box[T any] struct {
	v T
}

var (
	intT    = reflect.TypeFor[int]()
	stringT = reflect.TypeFor[string]()
	floatT  = reflect.TypeFor[float64]()
	boolT   = reflect.TypeFor[bool]()
	readerT = reflect.TypeFor[io.Reader]()
	boxT    = reflect.TypeFor[box[int]]()
)

func testContext(t *testing.T) context.Context {
	t.Helper()

	return logger.WithLogger(t.Context(), slogt.New(t))
}

func TestValidate_MatchesType(t *testing.T) {
	t.Parallel()

	ctx := testContext(t)

	ok, err := validate.Validate(ctx, 5, intT)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = validate.Validate(ctx, 5, stringT)
	require.ErrorIs(t, err, errors.ErrValidation)
	assert.False(t, ok)
	assert.Equal(t, "validation failed: Expected 'string' for 'value', got: 'int'.", err.Error())
}

func TestValidate_Union(t *testing.T) {
	t.Parallel()

	ctx := testContext(t)
	number := spec.OneOf(intT, floatT)

	for _, value := range []any{5, 2.5} {
		ok, err := validate.Validate(ctx, value, number)
		require.NoError(t, err)
		assert.True(t, ok)
	}

	_, err := validate.Validate(ctx, "5", number, validate.Name("count"))
	require.ErrorIs(t, err, errors.ErrValidation)
	assert.Contains(t, err.Error(), "Expected 'int, float64' for 'count', got: 'string'.")
}

func TestValidate_NestedSpecification(t *testing.T) {
	t.Parallel()

	ctx := testContext(t)

	specs := []any{
		[]any{intT, []any{stringT, spec.OneOf(boolT)}},
		[]any{[]any{spec.OneOf(boolT), stringT}, intT},
	}

	for _, typ := range specs {
		for _, value := range []any{1, "one", true} {
			ok, err := validate.Validate(ctx, value, typ)
			require.NoError(t, err)
			assert.True(t, ok)
		}

		_, err := validate.Validate(ctx, 1.5, typ)
		require.ErrorIs(t, err, errors.ErrValidation)
	}
}

func TestValidate_InterfaceTypes(t *testing.T) {
	t.Parallel()

	ctx := testContext(t)

	ok, err := validate.Validate(ctx, strings.NewReader("abc"), readerT)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = validate.Validate(ctx, "abc", spec.TypeFor[io.Reader]())
	require.ErrorIs(t, err, errors.ErrValidation)
	assert.Contains(t, err.Error(), "Expected 'Reader' for 'value', got: 'string'.")
}

func TestValidate_Callable(t *testing.T) {
	t.Parallel()

	ctx := testContext(t)

	ok, err := validate.Validate(ctx, strings.ToUpper, spec.Callable)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = validate.Validate(ctx, 5, []any{spec.Callable, stringT})
	require.ErrorIs(t, err, errors.ErrValidation)
	assert.False(t, ok)
	assert.Contains(t, err.Error(), "Expected 'callable, string'")
}

func TestValidate_Optional(t *testing.T) {
	t.Parallel()

	ctx := testContext(t)
	maybeInt := spec.Optional(intT)

	for _, value := range []any{nil, 7} {
		ok, err := validate.Validate(ctx, value, maybeInt)
		require.NoError(t, err)
		assert.True(t, ok)
	}

	_, err := validate.Validate(ctx, "7", maybeInt)
	require.ErrorIs(t, err, errors.ErrValidation)
	assert.Contains(t, err.Error(), "Expected 'int, nil' for 'value', got: 'string'.")

	_, err = validate.Validate(ctx, nil, intT)
	require.ErrorIs(t, err, errors.ErrValidation)
	assert.Contains(t, err.Error(), "got: 'nil'.")
}

func TestValidate_MalformedSpec(t *testing.T) {
	t.Parallel()

	ctx := testContext(t)

	for _, typ := range []any{5, nil, "int", []any{intT, 5}, []any{[]any{"string"}}} {
		ok, err := validate.Validate(ctx, 5, typ)
		require.ErrorIs(t, err, errors.ErrMalformedSpec, "typ %v", typ)
		assert.NotErrorIs(t, err, errors.ErrValidation)
		assert.False(t, ok)
	}
}

func TestValidate_MalformedUnit(t *testing.T) {
	t.Parallel()

	ctx := testContext(t)

	_, err := validate.Validate(ctx, 5, spec.OneOf(42))
	require.ErrorIs(t, err, errors.ErrMalformedUnit)
	assert.NotErrorIs(t, err, errors.ErrMalformedSpec)

	_, err = validate.Validate(ctx, 5, strings.ToUpper)
	require.ErrorIs(t, err, errors.ErrMalformedUnit)

	// The first matching unit wins before the bad one is reached.
	ok, err := validate.Validate(ctx, 5, spec.OneOf(intT, 42))
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestValidate_Generic(t *testing.T) {
	t.Parallel()

	ctx := testContext(t)

	_, err := validate.Validate(ctx, box[int]{v: 1}, boxT)
	require.ErrorIs(t, err, errors.ErrUnsupportedGeneric)
	assert.NotErrorIs(t, err, errors.ErrValidation)

	ok, err := validate.Validate(ctx, 5, []any{intT, boxT})
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = validate.Validate(ctx, "5", []any{intT, boxT})
	require.ErrorIs(t, err, errors.ErrUnsupportedGeneric)
}

func TestValidate_Idempotent(t *testing.T) {
	t.Parallel()

	ctx := testContext(t)

	for range 3 {
		ok, err := validate.Validate(ctx, 5, spec.OneOf(stringT, intT))
		require.NoError(t, err)
		assert.True(t, ok)
	}
}

func TestValidate_NilContext(t *testing.T) {
	t.Parallel()

	ok, err := validate.Validate(nil, 5, intT) //nolint:staticcheck
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestValidateSingle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		value   any
		unit    spec.Unit
		want    bool
		wantErr error
	}{
		{name: "same type", value: 5, unit: spec.Type(intT), want: true},
		{name: "other type", value: int64(5), unit: spec.Type(intT), want: false},
		{name: "interface", value: strings.NewReader(""), unit: spec.Type(readerT), want: true},
		{name: "callable", value: strings.ToLower, unit: spec.Callable, want: true},
		{name: "not callable", value: "f", unit: spec.Callable, want: false},
		{name: "nil matches nil", value: nil, unit: spec.Nil, want: true},
		{name: "zero is not nil", value: 0, unit: spec.Nil, want: false},
		{name: "generic", value: box[int]{}, unit: spec.Type(boxT), wantErr: errors.ErrUnsupportedGeneric},
		{name: "generic rejects anything", value: 5, unit: spec.Type(boxT), wantErr: errors.ErrUnsupportedGeneric},
		{name: "malformed", value: 5, unit: spec.Unit{}, wantErr: errors.ErrMalformedUnit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := validate.ValidateSingle(tt.value, tt.unit)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.False(t, got)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

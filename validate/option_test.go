package validate_test

import (
	"strings"
	"testing"

	"github.com/amp-labs/vval/errors"
	"github.com/amp-labs/vval/validate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type caseless string

func (c caseless) Equals(other any) bool {
	s, ok := other.(string)

	return ok && strings.EqualFold(string(c), s)
}

func TestValidateOption(t *testing.T) {
	t.Parallel()

	ctx := testContext(t)
	fruits := []string{"apple", "banana", "cherry"}

	require.NoError(t, validate.ValidateOption(ctx, "apple", fruits))

	err := validate.ValidateOption(ctx, "orange", fruits, validate.Name("fruit"))
	require.ErrorIs(t, err, errors.ErrValidation)
	assert.Equal(t,
		"validation failed: Expected one of 'apple, banana, cherry' for 'fruit', got: 'orange'.",
		err.Error())
}

func TestValidateOption_EmptyOptions(t *testing.T) {
	t.Parallel()

	ctx := testContext(t)

	err := validate.ValidateOption(ctx, "apple", []string{})
	require.ErrorIs(t, err, errors.ErrValidation)

	err = validate.ValidateOption(ctx, "apple", nil)
	require.ErrorIs(t, err, errors.ErrValidation)
}

func TestValidateOption_NotIterable(t *testing.T) {
	t.Parallel()

	err := validate.ValidateOption(testContext(t), 1, 1)
	require.ErrorIs(t, err, errors.ErrValidation)
	assert.Contains(t, err.Error(), "Expected an iterable of options for 'value', got: 'int'.")
}

func TestValidateOption_NilIterable(t *testing.T) {
	t.Parallel()

	var options *valueList

	assert.NotPanics(t, func() {
		err := validate.ValidateOption(testContext(t), 1, options)
		require.ErrorIs(t, err, errors.ErrValidation)
	})
}

func TestValidateOption_Equality(t *testing.T) {
	t.Parallel()

	ctx := testContext(t)

	require.NoError(t, validate.ValidateOption(ctx, []int{1, 2}, []any{[]int{1, 2}, []int{3}}))
	require.ErrorIs(t, validate.ValidateOption(ctx, 1, []any{1.0}), errors.ErrValidation)
	require.NoError(t, validate.ValidateOption(ctx, caseless("APPLE"), []string{"apple"}))
	require.NoError(t, validate.ValidateOption(ctx, 'b', "abc"))
}

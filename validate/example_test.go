package validate_test

import (
	"context"
	"fmt"
	"reflect"

	"github.com/amp-labs/vval/spec"
	"github.com/amp-labs/vval/validate"
)

func ExampleValidate() {
	ctx := context.Background()
	number := spec.OneOf(reflect.TypeFor[int](), reflect.TypeFor[float64]())

	ok, err := validate.Validate(ctx, 2.5, number, validate.Name("ratio"))
	fmt.Println(ok, err)

	ok, err = validate.Validate(ctx, "2.5", number, validate.Name("ratio"))
	fmt.Println(ok, err)
	// Output:
	// true <nil>
	// false validation failed: Expected 'int, float64' for 'ratio', got: 'string'.
}

func ExampleValidateOption() {
	err := validate.ValidateOption(context.Background(), "orange", []string{"apple", "banana", "cherry"})
	fmt.Println(err)
	// Output: validation failed: Expected one of 'apple, banana, cherry' for 'value', got: 'orange'.
}

func ExampleValidateFilter() {
	isPositive := func(n int) bool { return n > 0 }

	fmt.Println(validate.ValidateFilter(context.Background(), 5, isPositive))
	fmt.Println(validate.ValidateFilter(context.Background(), -3, isPositive))
	// Output:
	// <nil>
	// validation failed: 'value' did not satisfy the filter, got: '-3'.
}

package validate

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/amp-labs/vval/compare"
	"github.com/amp-labs/vval/contexts"
	"github.com/amp-labs/vval/spec"
)

// ValidateOption returns nil if value equals one of options. Equality is compare.Equal:
// an Equals method when the value has one, deep equality otherwise (so 1 and 1.0
// differ). options must be a non-empty iterable; anything else is a rejection, as is a
// value that is not among them.
func ValidateOption(ctx context.Context, value any, options any, opts ...Option) error {
	ctx = contexts.EnsureContext(ctx) //nolint:contextcheck
	cfg := newConfig(ctx, opts)

	_, err := run(ctx, opValidateOption, cfg, func(context.Context) (struct{}, error) {
		return struct{}{}, checkOption(value, options, cfg.name)
	})

	return err
}

func checkOption(value any, options any, name string) error {
	elems, ok := spec.Elements(options)
	if !ok {
		actual := spec.TypeName(options)

		return rejected("iterable", name, actual,
			"Expected an iterable of options for '%s', got: '%s'.", name, actual)
	}

	allowed := slices.Collect(elems)
	actual := fmt.Sprintf("%v", value)

	if len(allowed) == 0 {
		return rejected("", name, actual, "No options to choose from for '%s', got: '%s'.", name, actual)
	}

	if slices.ContainsFunc(allowed, func(option any) bool {
		return compare.Equal(value, option)
	}) {
		return nil
	}

	names := make([]string, len(allowed))
	for i, option := range allowed {
		names[i] = fmt.Sprintf("%v", option)
	}

	expected := strings.Join(names, ", ")

	return rejected(expected, name, actual,
		"Expected one of '%s' for '%s', got: '%s'.", expected, name, actual)
}

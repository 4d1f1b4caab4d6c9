package utils //nolint:revive // utils is an appropriate package name for utility functions

import (
	"fmt"

	"github.com/amp-labs/vval/errors"
)

// GetPanicRecoveryError turns a value obtained from recover() into an error wrapping
// errors.ErrPanicRecovery. Error values are wrapped so errors.Is still reaches them;
// anything else is formatted with %v. A non-nil stack is appended to the message.
// Returns nil for a nil panic value.
func GetPanicRecoveryError(recovered any, stack []byte) error {
	if recovered == nil {
		return nil
	}

	var err error

	if cause, ok := recovered.(error); ok {
		err = fmt.Errorf("%w: %w", errors.ErrPanicRecovery, cause)
	} else {
		err = fmt.Errorf("%w: %v", errors.ErrPanicRecovery, recovered)
	}

	if stack != nil {
		return fmt.Errorf("%w\nstack trace:\n%s", err, string(stack))
	}

	return err
}

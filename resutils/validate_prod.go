//go:build !debug_res_utils

package resutils

import (
	"github.com/cockroachdb/errors"
)

// DebugChecks is true when the package is built with the debug_res_utils build tag
const DebugChecks bool = false

// DebugValidate will call Validate on the provided object and panics if any errors are returned. This
// method no-ops unless the debug_res_utils build tag is present
func DebugValidate(validatable Validatable) {
}

// ContractViolation reports an internal contract failure, such as unbalanced acquire and release
// calls. With the debug_res_utils build tag present it panics. Otherwise it returns the error marked
// as an assertion failure so the caller can log it and carry on.
func ContractViolation(err error) error {
	if err == nil {
		return nil
	}
	if errors.IsAssertionFailure(err) {
		return err
	}
	return errors.NewAssertionErrorWithWrappedErrf(err, "display resource contract violated")
}

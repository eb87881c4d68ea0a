// Provides exit code functionality
//
// Every validation failure maps to one fixed process exit code. The mapping
// walks the error chain with errors.Is, so callers may wrap freely.
//
// Note: too-long words and words with a disallowed character share
// ExitFieldInvalid. The causes are distinct errors (apperr.ErrFieldTooLong,
// apperr.ErrFieldCharset) if a caller needs to tell them apart.
package app

import (
	"errors"

	"github.com/chriscorrea/madlib/internal/apperr"
)

// exit codes for validation failures
const (
	ExitOK                 = 0
	ExitError              = 1
	ExitFieldMissing       = 101
	ExitFieldInvalid       = 102
	ExitLineTooLong        = 103
	ExitInvalidPlaceholder = 104
)

// exitCodes is checked in order; the first sentinel found in the chain wins
var exitCodes = []struct {
	err  error
	code int
}{
	{apperr.ErrFieldMissing, ExitFieldMissing},
	{apperr.ErrFieldInvalid, ExitFieldInvalid},
	{apperr.ErrLineTooLong, ExitLineTooLong},
	{apperr.ErrInvalidPlaceholder, ExitInvalidPlaceholder},
}

// ExitCode returns the process exit code for err: ExitOK for nil, the
// matching validation code for a known sentinel, ExitError otherwise
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	for _, ec := range exitCodes {
		if errors.Is(err, ec.err) {
			return ec.code
		}
	}
	return ExitError
}

// IsValidationError reports whether err maps to one of the validation codes
func IsValidationError(err error) bool {
	code := ExitCode(err)
	return code != ExitOK && code != ExitError
}

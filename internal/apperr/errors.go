// Package apperr holds the sentinel errors shared by the reader, the
// substitution engine and the exit code mapping in internal/app.
//
// Wrap sentinels with context at the call site:
//
//	return fmt.Errorf("line %d: %w", n, apperr.ErrLineTooLong)
//
// errors.Is keeps working through the wrapping, which is what
// app.ExitCode relies on.
package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrFieldMissing indicates an empty vocabulary word (or input that ended
	// before all five words were read).
	ErrFieldMissing = errors.New("replacement word missing")

	// ErrFieldInvalid is the parent of ErrFieldTooLong and ErrFieldCharset.
	// Both causes share one exit code.
	ErrFieldInvalid = errors.New("invalid replacement word")

	// ErrFieldTooLong indicates a vocabulary word longer than the field bound.
	ErrFieldTooLong = fmt.Errorf("%w: too long", ErrFieldInvalid)

	// ErrFieldCharset indicates a vocabulary word with a disallowed character.
	ErrFieldCharset = fmt.Errorf("%w: disallowed character", ErrFieldInvalid)

	// ErrLineTooLong indicates a template line over the line bound, either as
	// read or after a substitution.
	ErrLineTooLong = errors.New("line too long")

	// ErrInvalidPlaceholder indicates a bracketed name outside the vocabulary.
	ErrInvalidPlaceholder = errors.New("invalid placeholder")

	// ErrRecursiveWord indicates a replacement word that contains the marker it
	// replaces. Words from the reader can never trigger it.
	ErrRecursiveWord = errors.New("replacement word contains its own marker")
)

package io

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chriscorrea/madlib/internal/apperr"
	"github.com/chriscorrea/madlib/internal/vocabulary"
)

// Reader splits a madlib input stream into the vocabulary and the template lines
// that follow it. Every value it returns has already been validated.
type Reader struct {
	r    *bufio.Reader
	line int // template lines read so far
}

// NewReader wraps r for byte-at-a-time reading
func NewReader(r io.Reader) *Reader {
	return &Reader{r: bufio.NewReader(r)}
}

// LineNumber returns the 1-based number of the last template line read
func (r *Reader) LineNumber() int {
	return r.line
}

// ReadWord reads one replacement word up to a newline or end of input.
//
// Accumulation stops as soon as the word exceeds vocabulary.FieldMax, so an
// oversized line is never buffered. Checks run in order: length, emptiness,
// character set.
func (r *Reader) ReadWord() (string, error) {
	var word strings.Builder

	for {
		c, err := r.r.ReadByte()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", fmt.Errorf("failed to read word: %w", err)
		}
		if c == '\n' {
			break
		}
		if word.Len() == vocabulary.FieldMax {
			return "", fmt.Errorf("longer than %d characters: %w", vocabulary.FieldMax, apperr.ErrFieldTooLong)
		}
		word.WriteByte(c)
	}

	w := word.String()
	if w == "" {
		return "", apperr.ErrFieldMissing
	}

	for i := 0; i < len(w); i++ {
		if !vocabulary.IsWordChar(w[i]) {
			return "", fmt.Errorf("%q at position %d: %w", w[i], i+1, apperr.ErrFieldCharset)
		}
	}

	return w, nil
}

// ReadVocabulary reads the five replacement words in role order
func (r *Reader) ReadVocabulary() (vocabulary.Vocabulary, error) {
	var words [len(vocabulary.Roles)]string

	for i, role := range vocabulary.Roles {
		w, err := r.ReadWord()
		if err != nil {
			return vocabulary.Vocabulary{}, fmt.Errorf("reading %s: %w", role, err)
		}
		words[i] = w
	}

	return vocabulary.New(words[0], words[1], words[2], words[3], words[4]), nil
}

// ReadLine reads the next template line.
//
// ok is false (with a nil error) once the input is exhausted. An empty line
// that is followed by more input is returned as a valid, empty line.
//
// Placeholders are validated in the same pass: '<' opens a name, '>' closes
// it and the name must be a known role. Bytes outside brackets discard any
// unterminated name. A line that is too long wins over a bad placeholder
// found earlier in the same line.
func (r *Reader) ReadLine() (line string, ok bool, err error) {
	var (
		buf            strings.Builder
		name           strings.Builder
		inBrackets     bool
		terminated     bool
		placeholderErr error
	)
	number := r.line + 1

	for {
		c, err := r.r.ReadByte()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", false, fmt.Errorf("failed to read line %d: %w", number, err)
		}
		if c == '\n' {
			terminated = true
			break
		}
		if buf.Len() == vocabulary.LineMax {
			return "", false, fmt.Errorf("line %d: longer than %d characters: %w", number, vocabulary.LineMax, apperr.ErrLineTooLong)
		}
		buf.WriteByte(c)

		switch {
		case c == vocabulary.OpenMarker:
			inBrackets = true
		case c == vocabulary.CloseMarker:
			if _, known := vocabulary.ParseRole(name.String()); !known && placeholderErr == nil {
				placeholderErr = fmt.Errorf("line %d: <%s>: %w", number, name.String(), apperr.ErrInvalidPlaceholder)
			}
			name.Reset()
			inBrackets = false
		case inBrackets:
			name.WriteByte(c)
		default:
			name.Reset()
		}
	}

	if buf.Len() == 0 && !terminated {
		return "", false, nil
	}

	r.line = number
	if placeholderErr != nil {
		return "", false, placeholderErr
	}
	return buf.String(), true, nil
}

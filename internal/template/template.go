package template

import (
	"fmt"
	"strings"

	"github.com/chriscorrea/madlib/internal/apperr"
	"github.com/chriscorrea/madlib/internal/vocabulary"
)

// NotFound is returned by FindMarker when the marker does not occur
const NotFound = -1

// FindMarker returns the index of the first occurrence of marker in line,
// or NotFound. Matching is plain byte equality.
func FindMarker(line, marker string) int {
	if marker == "" {
		return NotFound
	}
	return strings.Index(line, marker)
}

// ResultLength returns the length of line after one occurrence of marker is
// replaced by word
func ResultLength(line, word, marker string) int {
	return len(line) - len(marker) + len(word)
}

// ReplaceAll replaces every occurrence of marker in line with word.
//
// The length bound is checked before each replacement, so the first
// replacement that would push the line past vocabulary.LineMax fails with
// apperr.ErrLineTooLong. Scanning resumes after the inserted word; together
// with the check that word does not contain marker this guarantees the loop
// ends once the markers to the right are used up.
func ReplaceAll(line, word, marker string) (string, error) {
	result, _, err := replaceAll(line, word, marker)
	return result, err
}

// replaceAll is ReplaceAll that also reports how many markers were replaced
func replaceAll(line, word, marker string) (string, int, error) {
	if marker == "" {
		return line, 0, nil
	}
	if strings.Contains(word, marker) {
		return "", 0, fmt.Errorf("%q in %q: %w", marker, word, apperr.ErrRecursiveWord)
	}

	count := 0
	offset := 0
	for {
		idx := FindMarker(line[offset:], marker)
		if idx == NotFound {
			return line, count, nil
		}
		idx += offset

		if n := ResultLength(line, word, marker); n > vocabulary.LineMax {
			return "", count, fmt.Errorf("replacing %s gives %d characters, limit is %d: %w", marker, n, vocabulary.LineMax, apperr.ErrLineTooLong)
		}

		line = line[:idx] + word + line[idx+len(marker):]
		offset = idx + len(word)
		count++
	}
}

// Fill substitutes every role of vocab into line in role order and returns the
// filled line along with the number of replacements made
func Fill(line string, vocab vocabulary.Vocabulary) (string, int, error) {
	total := 0
	for _, role := range vocabulary.Roles {
		var (
			n   int
			err error
		)
		line, n, err = replaceAll(line, vocab.Word(role), role.Marker())
		if err != nil {
			return "", total, err
		}
		total += n
	}
	return line, total, nil
}

// HasPlaceholder checks if a line contains any role marker
func HasPlaceholder(line string) bool {
	for _, role := range vocabulary.Roles {
		if FindMarker(line, role.Marker()) != NotFound {
			return true
		}
	}
	return false
}

// Package vocabulary defines the five placeholder roles, their bracketed
// marker form and the word set read at the start of every run.
package vocabulary

const (
	// FieldMax is the longest allowed replacement word, in bytes.
	FieldMax = 24

	// LineMax is the longest allowed template line, before and after each
	// substitution, in bytes.
	LineMax = 100

	// OpenMarker and CloseMarker delimit a placeholder name in a template line.
	OpenMarker  = '<'
	CloseMarker = '>'
)

// Role is one of the five fixed placeholder kinds
type Role int

const (
	Noun1 Role = iota
	Noun2
	Verb
	Adjective
	Adverb

	roleCount
)

// Roles lists every role in input order, which is also substitution order
var Roles = [roleCount]Role{Noun1, Noun2, Verb, Adjective, Adverb}

var roleNames = [roleCount]string{
	Noun1:     "noun1",
	Noun2:     "noun2",
	Verb:      "verb",
	Adjective: "adjective",
	Adverb:    "adverb",
}

// String returns the placeholder name, e.g. "noun1"
func (r Role) String() string {
	if !r.Valid() {
		return "unknown"
	}
	return roleNames[r]
}

// Marker returns the bracketed form of the role, e.g. "<noun1>"
func (r Role) Marker() string {
	return string(OpenMarker) + r.String() + string(CloseMarker)
}

// Valid reports whether r is one of the five roles
func (r Role) Valid() bool {
	return r >= Noun1 && r < roleCount
}

// ParseRole resolves a placeholder name (case-sensitive)
func ParseRole(name string) (Role, bool) {
	for _, r := range Roles {
		if roleNames[r] == name {
			return r, true
		}
	}
	return 0, false
}

// Vocabulary binds a word to every role. The zero value is never handed out
// by the reader; use New or io.Reader.ReadVocabulary.
type Vocabulary struct {
	words [roleCount]string
}

// New builds a Vocabulary from words given in role order. It does not
// validate the words; the reader does that while reading.
func New(noun1, noun2, verb, adjective, adverb string) Vocabulary {
	return Vocabulary{words: [roleCount]string{noun1, noun2, verb, adjective, adverb}}
}

// Word returns the word bound to role
func (v Vocabulary) Word(role Role) string {
	if !role.Valid() {
		return ""
	}
	return v.words[role]
}

// IsWordChar reports whether b may appear in a replacement word:
// letters, digits, space, apostrophe and hyphen.
func IsWordChar(b byte) bool {
	switch {
	case b == ' ', b == '\'', b == '-':
		return true
	case b >= '0' && b <= '9':
		return true
	case b >= 'A' && b <= 'Z':
		return true
	case b >= 'a' && b <= 'z':
		return true
	}
	return false
}

package statement

import (
	"strings"

	"github.com/cognicore/bizonto/pkg/bizonto/ident"
)

// Statement is a verb-object[-preposition-complement] tuple. Object and
// Complement are PascalCase identifiers; the *Text fields keep the phrase
// they were built from.
type Statement struct {
	Verb           string
	Object         string
	Preposition    string
	Complement     string
	ObjectText     string
	ComplementText string
	Original       string
}

// HasComplement reports whether the statement carries a prepositional complement.
func (s Statement) HasComplement() bool {
	return s.Preposition != "" && s.Complement != ""
}

// Text renders the statement back as a lowercase phrase.
func (s Statement) Text() string {
	parts := []string{s.Verb, s.ObjectText}
	if s.HasComplement() {
		parts = append(parts, s.Preposition, s.ComplementText)
	}
	return strings.Join(parts, " ")
}

// TaskID is the Wikipedia-style identifier of the statement text.
func (s Statement) TaskID() string {
	return ident.ToWikipediaStyle(s.Text())
}

func (s Statement) key() string {
	return s.Verb + "\x00" + s.Object + "\x00" + s.Preposition + "\x00" + s.Complement
}

// ExpansionSet holds the statements parsed from one source phrase, in
// verb-major order.
type ExpansionSet []Statement

// Objects returns the distinct object identifiers in first-seen order.
func (set ExpansionSet) Objects() []string {
	seen := make(map[string]bool, len(set))
	var out []string
	for _, st := range set {
		if !seen[st.Object] {
			seen[st.Object] = true
			out = append(out, st.Object)
		}
	}
	return out
}

// Verbs returns the distinct verbs in first-seen order.
func (set ExpansionSet) Verbs() []string {
	seen := make(map[string]bool, len(set))
	var out []string
	for _, st := range set {
		if !seen[st.Verb] {
			seen[st.Verb] = true
			out = append(out, st.Verb)
		}
	}
	return out
}

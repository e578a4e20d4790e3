// Package ident canonicalizes phrases into stable identifiers.
//
// Known acronyms keep their canonical spelling (ERP, HR, SaaS) instead of
// being title-cased, so "it security policy" becomes "ITSecurityPolicy".
package ident

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/cognicore/bizonto/pkg/bizonto/lexicon"
)

var (
	identStripPattern = regexp.MustCompile(`[^\p{L}\p{N}_\s-]+`)
	identSplitPattern = regexp.MustCompile(`[\s_-]+`)
)

// Canonicalizer turns phrases into identifiers using an acronym table.
type Canonicalizer struct {
	lex *lexicon.Lexicon
}

// New creates a canonicalizer. A nil lexicon uses the built-in tables.
func New(lex *lexicon.Lexicon) *Canonicalizer {
	if lex == nil {
		lex = lexicon.Default()
	}
	return &Canonicalizer{lex: lex}
}

var defaultCanonicalizer = New(nil)

// ToPascalCase joins cased words with no separator.
func ToPascalCase(text string) string { return defaultCanonicalizer.ToPascalCase(text) }

// ToCamelCase is PascalCase with the first word fully lowercased.
func ToCamelCase(text string) string { return defaultCanonicalizer.ToCamelCase(text) }

// ToWikipediaStyle is PascalCase for up to three words, otherwise cased
// words joined with underscores.
func ToWikipediaStyle(text string) string { return defaultCanonicalizer.ToWikipediaStyle(text) }

// ToShortName returns a compact lowercase abbreviation of at most 8 chars.
func ToShortName(text string) string { return defaultCanonicalizer.ToShortName(text) }

// SplitWords strips everything outside [word, whitespace, hyphen] and splits
// on whitespace, hyphens and underscores.
func SplitWords(text string) []string {
	s := identStripPattern.ReplaceAllString(text, "")
	var words []string
	for _, w := range identSplitPattern.Split(s, -1) {
		if w != "" {
			words = append(words, w)
		}
	}
	return words
}

// CaseWord returns the acronym spelling for known acronyms, otherwise the
// word with its first letter upper-cased and the rest lowercased.
func (c *Canonicalizer) CaseWord(word string) string {
	if word == "" {
		return ""
	}
	if acronym, ok := c.lex.Acronym(word); ok {
		return acronym
	}
	lower := strings.ToLower(word)
	runes := []rune(lower)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// ToPascalCase joins cased words with no separator.
func (c *Canonicalizer) ToPascalCase(text string) string {
	words := SplitWords(text)
	var b strings.Builder
	for _, w := range words {
		b.WriteString(c.CaseWord(w))
	}
	return b.String()
}

// ToCamelCase is PascalCase with the first word fully lowercased.
func (c *Canonicalizer) ToCamelCase(text string) string {
	words := SplitWords(text)
	if len(words) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(strings.ToLower(words[0]))
	for _, w := range words[1:] {
		b.WriteString(c.CaseWord(w))
	}
	return b.String()
}

// ToWikipediaStyle is PascalCase for up to three words, otherwise cased
// words joined with underscores. Long task descriptions stay readable.
func (c *Canonicalizer) ToWikipediaStyle(text string) string {
	words := SplitWords(text)
	if len(words) <= 3 {
		return c.ToPascalCase(text)
	}
	cased := make([]string, len(words))
	for i, w := range words {
		cased[i] = c.CaseWord(w)
	}
	return strings.Join(cased, "_")
}

// shortNameMax caps every short name.
const shortNameMax = 8

// ToShortName abbreviates text:
//   - one word: the word itself when it has at most 6 chars, else its first 4
//   - up to four words: first 2 chars of each word
//   - more words: the initial of each word
//
// The result is lowercase and capped at 8 chars.
func (c *Canonicalizer) ToShortName(text string) string {
	words := SplitWords(text)
	var out string
	switch {
	case len(words) == 0:
		return ""
	case len(words) == 1:
		w := []rune(words[0])
		if len(w) > 6 {
			w = w[:4]
		}
		out = string(w)
	case len(words) <= 4:
		var b strings.Builder
		for _, w := range words {
			b.WriteString(prefix(w, 2))
		}
		out = b.String()
	default:
		var b strings.Builder
		for _, w := range words {
			b.WriteString(prefix(w, 1))
		}
		out = b.String()
	}
	return prefix(strings.ToLower(out), shortNameMax)
}

func prefix(s string, n int) string {
	r := []rune(s)
	if len(r) > n {
		r = r[:n]
	}
	return string(r)
}

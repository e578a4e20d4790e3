// Package clean normalizes raw phrases before matching.
//
// Clean is the matching form (lowercase, punctuation stripped, parentheticals
// removed). Flatten keeps display casing and parenthetical text but drops the
// brackets themselves, which is what the noun-phrase expander works on.
package clean

import (
	"regexp"
	"strings"
)

var (
	possessivePattern  = regexp.MustCompile(`(?i)(\w)['’]s\b`)
	apostrophePattern  = regexp.MustCompile(`['’]`)
	parentheticPattern = regexp.MustCompile(`\([^()]*\)`)
	nonWordPattern     = regexp.MustCompile(`[^\w\s,]+`)
	spacePattern       = regexp.MustCompile(`\s+`)
	commaSpacePattern  = regexp.MustCompile(`\s*,\s*`)
)

// Clean lowercases text for matching, strips possessives and parenthetical
// content, replaces every character outside [word, whitespace, comma] with a
// space and collapses whitespace. Empty input returns "".
func Clean(text string) string {
	if text == "" {
		return ""
	}
	s := strings.ToLower(text)
	s = possessivePattern.ReplaceAllString(s, "$1")
	s = apostrophePattern.ReplaceAllString(s, "")
	s = StripParens(s)
	s = nonWordPattern.ReplaceAllString(s, " ")
	s = commaSpacePattern.ReplaceAllString(s, ", ")
	s = collapse(s)
	return strings.Trim(s, ", ")
}

// StripParens removes parenthetical content, including nested groups.
func StripParens(text string) string {
	s := text
	for {
		next := parentheticPattern.ReplaceAllString(s, " ")
		if next == s {
			break
		}
		s = next
	}
	// Unbalanced brackets are dropped rather than left dangling.
	s = strings.NewReplacer("(", " ", ")", " ").Replace(s)
	return collapse(s)
}

// Flatten keeps parenthetical words but removes the brackets, preserving
// case: "Vegetables (Non Leaf)" -> "Vegetables Non Leaf".
func Flatten(text string) string {
	s := strings.NewReplacer("(", " ", ")", " ", "[", " ", "]", " ").Replace(text)
	return collapse(s)
}

// Tokens splits cleaned text on whitespace, emitting commas as separate
// tokens so coordination boundaries stay visible to the parser.
func Tokens(text string) []string {
	var tokens []string
	for _, field := range strings.Fields(text) {
		for {
			idx := strings.IndexByte(field, ',')
			if idx < 0 {
				break
			}
			if idx > 0 {
				tokens = append(tokens, field[:idx])
			}
			tokens = append(tokens, ",")
			field = field[idx+1:]
		}
		if field != "" {
			tokens = append(tokens, field)
		}
	}
	return tokens
}

func collapse(s string) string {
	return strings.TrimSpace(spacePattern.ReplaceAllString(s, " "))
}

package ident

import (
	"regexp"
	"strings"
	"unicode"
)

// AcronymPair is a technology or software name split into its expanded and
// abbreviated forms. Acronym is empty when none was detected.
type AcronymPair struct {
	FullName string
	Acronym  string
}

// HasAcronym reports whether an acronym was detected.
func (p AcronymPair) HasAcronym() bool {
	return p.Acronym != ""
}

// acronymRule is one step of the extraction chain.
type acronymRule struct {
	name  string
	match func(name string) (AcronymPair, bool)
}

// Evaluated in order, first match wins.
var acronymRules = []acronymRule{
	{name: "parenthetical", match: matchParenthetical},
	{name: "generic-noun", match: matchBeforeGenericNoun},
	{name: "trailing", match: matchTrailing},
	{name: "mid-phrase", match: matchMidPhrase},
}

var (
	parenAcronymPattern  = regexp.MustCompile(`^(.+?)\s*\(([^()\s]{2,12})\)\s*(.*)$`)
	genericNounPattern   = regexp.MustCompile(`(?:^|\s)(\S+)\s+(?i:software|systems?|platforms?|tools?|applications?|suites?|solutions?|databases?|frameworks?|packages?|programs?)$`)
	trailingTokenPattern = regexp.MustCompile(`^(.+?)\s+(\S+)$`)
)

var acronymStopTokens = map[string]bool{
	"AND": true, "OR": true, "THE": true, "OF": true, "FOR": true,
	"TO": true, "IN": true, "ON": true, "WITH": true,
}

// ExtractAcronym splits a name into {FullName, Acronym}. Detection order:
// a parenthesized acronym ("Cascading Style Sheets (CSS)"), an acronym
// before a generic noun ("Oracle ERP software"), a trailing acronym
// ("Cascading Style Sheets CSS"), then any other acronym-shaped token.
// Parenthesized and trailing acronyms are removed from FullName; embedded
// ones stay since they are part of the product name.
func ExtractAcronym(name string) AcronymPair {
	name = strings.Join(strings.Fields(name), " ")
	if name == "" {
		return AcronymPair{}
	}
	for _, rule := range acronymRules {
		if pair, ok := rule.match(name); ok {
			return pair
		}
	}
	return AcronymPair{FullName: name}
}

func matchParenthetical(name string) (AcronymPair, bool) {
	m := parenAcronymPattern.FindStringSubmatch(name)
	if m == nil || !looksLikeAcronym(m[2]) {
		return AcronymPair{}, false
	}
	full := strings.TrimSpace(strings.TrimSpace(m[1]) + " " + strings.TrimSpace(m[3]))
	return AcronymPair{FullName: full, Acronym: m[2]}, true
}

func matchBeforeGenericNoun(name string) (AcronymPair, bool) {
	m := genericNounPattern.FindStringSubmatch(name)
	if m == nil || !isUpperAcronym(m[1]) {
		return AcronymPair{}, false
	}
	return AcronymPair{FullName: name, Acronym: m[1]}, true
}

func matchTrailing(name string) (AcronymPair, bool) {
	m := trailingTokenPattern.FindStringSubmatch(name)
	if m == nil || !isUpperAcronym(m[2]) || !hasLower(m[1]) {
		return AcronymPair{}, false
	}
	return AcronymPair{FullName: m[1], Acronym: m[2]}, true
}

func matchMidPhrase(name string) (AcronymPair, bool) {
	tokens := strings.Fields(name)
	if len(tokens) < 2 {
		return AcronymPair{}, false
	}
	for _, tok := range tokens[:len(tokens)-1] {
		if looksLikeAcronym(tok) {
			return AcronymPair{FullName: name, Acronym: tok}, true
		}
	}
	return AcronymPair{}, false
}

// looksLikeAcronym accepts 2-10 char tokens with at least two upper-case
// letters and no more lower-case than upper-case letters (ERP, SaaS, IoT, B2B).
func looksLikeAcronym(tok string) bool {
	if len(tok) < 2 || len(tok) > 10 || acronymStopTokens[tok] {
		return false
	}
	upper, lower := 0, 0
	for _, r := range tok {
		switch {
		case unicode.IsUpper(r):
			upper++
		case unicode.IsLower(r):
			lower++
		case unicode.IsDigit(r), r == '&', r == '+', r == '.', r == '/', r == '-':
		default:
			return false
		}
	}
	return upper >= 2 && lower <= upper
}

// isUpperAcronym is the strict form: upper-case letters and digits only.
func isUpperAcronym(tok string) bool {
	if !looksLikeAcronym(tok) {
		return false
	}
	for _, r := range tok {
		if unicode.IsLower(r) {
			return false
		}
	}
	return true
}

func hasLower(s string) bool {
	for _, r := range s {
		if unicode.IsLower(r) {
			return true
		}
	}
	return false
}

// Package concept validates and deduplicates canonical identifiers.
//
// The validator rejects identifiers that carry the fingerprints of a failed
// parse: a leading preposition ("ToFundOperations"), an unsplit
// conjunction ("ReviewOrApproveChanges"), the pronoun "it" read as the
// acronym IT, a bare suffix fragment, or an unstripped infinitive. The
// registry keeps the first occurrence of every accepted identifier.
package concept

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/cognicore/bizonto/pkg/bizonto/lexicon"
)

// Reason explains why an identifier was rejected. The empty Reason means
// the identifier is valid.
type Reason string

const (
	Valid                   Reason = ""
	ReasonLength            Reason = "length"
	ReasonNumeric           Reason = "numeric"
	ReasonShape             Reason = "shape"
	ReasonLeadingFunction   Reason = "leading-function-word"
	ReasonEmbeddedConj      Reason = "embedded-conjunction"
	ReasonTrailingConj      Reason = "trailing-conjunction"
	ReasonPronounArtifact   Reason = "pronoun-artifact"
	ReasonTruncatedFragment Reason = "truncated-fragment"
	ReasonLeadingVerb       Reason = "leading-verb"
)

// Reasons lists every rejection reason in check order.
var Reasons = []Reason{
	ReasonLength,
	ReasonNumeric,
	ReasonShape,
	ReasonLeadingFunction,
	ReasonEmbeddedConj,
	ReasonTrailingConj,
	ReasonPronounArtifact,
	ReasonTruncatedFragment,
	ReasonLeadingVerb,
}

const (
	MinLength = 3
	MaxLength = 60
)

var (
	numericPattern      = regexp.MustCompile(`^[0-9]+$`)
	shapePattern        = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9]*$`)
	embeddedConjPattern = regexp.MustCompile(`[a-z](?:And|Or)[A-Z]`)
	trailingConjPattern = regexp.MustCompile(`(?:^|[a-z])(?:And|Or)$`)
	leadingItPattern    = regexp.MustCompile(`^(?:IT|It)[A-Z]`)
	embeddedItPattern   = regexp.MustCompile(`[a-z](?:IT|It)(?:[A-Z]|$)`)
	fragmentPattern     = regexp.MustCompile(`^(?i:mation|tion|sion|ness|ment|ance|ence|ity)(?:[A-Z]|$)`)
)

// articles join the lexicon's prepositions and conjunctions as words that
// must not open an identifier. "A" is handled separately so acronyms such
// as API are not mistaken for an article.
var articles = []string{"the", "an"}

// Validator checks identifiers against the artifact rules.
type Validator struct {
	lex           *lexicon.Lexicon
	functionWords []string // capitalized, longest first
}

// NewValidator creates a validator. A nil lexicon uses the built-in tables.
func NewValidator(lex *lexicon.Lexicon) *Validator {
	if lex == nil {
		lex = lexicon.Default()
	}
	v := &Validator{lex: lex}
	words := append([]string{}, articles...)
	words = append(words, "and", "or", "nor")
	words = append(words, lex.Prepositions()...)
	seen := make(map[string]bool, len(words))
	for _, w := range words {
		if w == "" || seen[w] {
			continue
		}
		seen[w] = true
		v.functionWords = append(v.functionWords, strings.ToUpper(w[:1])+w[1:])
	}
	return v
}

var defaultValidator = NewValidator(nil)

// IsValid reports whether id passes every rule of the default validator.
func IsValid(id string) bool {
	return defaultValidator.Check(id) == Valid
}

// IsValid reports whether id passes every rule.
func (v *Validator) IsValid(id string) bool {
	return v.Check(id) == Valid
}

// Check returns the first rule id violates, or Valid.
func (v *Validator) Check(id string) Reason {
	switch {
	case len(id) < MinLength || len(id) > MaxLength:
		return ReasonLength
	case numericPattern.MatchString(id):
		return ReasonNumeric
	case !shapePattern.MatchString(id):
		return ReasonShape
	case v.leadingFunctionWord(id):
		return ReasonLeadingFunction
	case embeddedConjPattern.MatchString(id):
		return ReasonEmbeddedConj
	case trailingConjPattern.MatchString(id):
		return ReasonTrailingConj
	case leadingItPattern.MatchString(id) || embeddedItPattern.MatchString(id):
		return ReasonPronounArtifact
	case fragmentPattern.MatchString(id):
		return ReasonTruncatedFragment
	case v.leadingVerb(id):
		return ReasonLeadingVerb
	}
	return Valid
}

// leadingFunctionWord matches "ToX", "forX", "TheX" and the article "A"
// followed by a capitalized word ("ABudget" but not "APIs").
func (v *Validator) leadingFunctionWord(id string) bool {
	for _, w := range v.functionWords {
		for _, form := range [2]string{w, strings.ToLower(w)} {
			if strings.HasPrefix(id, form) && len(id) > len(form) && isUpper(id[len(form)]) {
				return true
			}
		}
	}
	return len(id) > 2 && (id[0] == 'A' || id[0] == 'a') && isUpper(id[1]) && isLower(id[2])
}

func (v *Validator) leadingVerb(id string) bool {
	words := SplitIdentifier(id)
	return len(words) > 1 && v.lex.IsCommonVerb(words[0])
}

// SplitIdentifier splits a Pascal/camelCase identifier into its words,
// keeping acronym runs together: "ITSecurityPolicy" -> [IT Security Policy].
func SplitIdentifier(id string) []string {
	runes := []rune(id)
	var words []string
	start := 0
	for i := 1; i < len(runes); i++ {
		prev, cur := runes[i-1], runes[i]
		boundary := false
		switch {
		case unicode.IsUpper(cur) && (unicode.IsLower(prev) || unicode.IsDigit(prev)):
			boundary = true
		case unicode.IsUpper(prev) && unicode.IsUpper(cur) && i+1 < len(runes) && unicode.IsLower(runes[i+1]):
			// "ITSecurity": the S starts a new word.
			boundary = true
		}
		if boundary {
			words = append(words, string(runes[start:i]))
			start = i
		}
	}
	if start < len(runes) {
		words = append(words, string(runes[start:]))
	}
	return words
}

func isUpper(c byte) bool { return c >= 'A' && c <= 'Z' }
func isLower(c byte) bool { return c >= 'a' && c <= 'z' }

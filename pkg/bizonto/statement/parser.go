// Package statement parses short imperative task descriptions into
// verb/object/preposition/complement tuples.
//
//	"Direct or coordinate financial activities to fund operations"
//	  -> direct     FinancialActivities to FundOperations
//	  -> coordinate FinancialActivities to FundOperations
//
// A verb position is a vocabulary verb that opens the text or follows a
// conjunction or comma. Each verb owns the tokens up to the next verb
// position; verbs separated only by conjunctions share the span of the last
// one. Objects and complements are further split on and/or boundaries and
// the parser emits the cartesian product.
package statement

import (
	"strings"

	"github.com/cognicore/bizonto/pkg/bizonto/clean"
	"github.com/cognicore/bizonto/pkg/bizonto/expand"
	"github.com/cognicore/bizonto/pkg/bizonto/ident"
	"github.com/cognicore/bizonto/pkg/bizonto/lexicon"
)

// VerbSet is the vocabulary consulted for verb positions. Sets that also
// implement Lemma (see verbs.InflectedSet) have matched verbs normalized to
// their base form.
type VerbSet interface {
	Contains(word string) bool
}

type lemmatizer interface {
	Lemma(word string) (string, bool)
}

// WordSet is a plain VerbSet over lowercase words.
type WordSet map[string]struct{}

// Words builds a WordSet.
func Words(words ...string) WordSet {
	s := make(WordSet, len(words))
	for _, w := range words {
		s[strings.ToLower(strings.TrimSpace(w))] = struct{}{}
	}
	return s
}

// Contains reports whether word is in the set.
func (s WordSet) Contains(word string) bool {
	_, ok := s[strings.ToLower(word)]
	return ok
}

// Options configures a Parser. Zero values use the built-in tables.
type Options struct {
	Lexicon       *lexicon.Lexicon
	Expander      *expand.Expander
	Canonicalizer *ident.Canonicalizer
}

// Parser holds the tables used for parsing. It is safe for concurrent use.
type Parser struct {
	lex   *lexicon.Lexicon
	exp   *expand.Expander
	canon *ident.Canonicalizer
}

// NewParser creates a parser.
func NewParser(opts Options) *Parser {
	lex := opts.Lexicon
	if lex == nil {
		lex = lexicon.Default()
	}
	exp := opts.Expander
	if exp == nil {
		exp = expand.New(expand.Preset(expand.Objects, lex))
	}
	canon := opts.Canonicalizer
	if canon == nil {
		canon = ident.New(lex)
	}
	return &Parser{lex: lex, exp: exp, canon: canon}
}

var defaultParser = NewParser(Options{})

// clauseBreaks turns semicolons into commas so the verb after them opens a
// new clause.
var clauseBreaks = strings.NewReplacer(";", ",")

// Parse parses text with the default tables.
func Parse(text string, verbs VerbSet) ExpansionSet {
	return defaultParser.Parse(text, verbs)
}

// Parse returns one statement per verb and coordinated object/complement
// variant. Text with no verb position, or whose verbs have no object,
// yields an empty set.
func (p *Parser) Parse(text string, verbs VerbSet) ExpansionSet {
	if verbs == nil {
		return nil
	}
	tokens := clean.Tokens(clean.Clean(clauseBreaks.Replace(text)))
	positions := p.verbPositions(tokens, verbs)
	if len(positions) == 0 {
		return nil
	}

	var (
		out     ExpansionSet
		pending []string
		seen    = make(map[string]bool)
	)
	for k, pos := range positions {
		end := len(tokens)
		if k+1 < len(positions) {
			end = positions[k+1]
		}
		pending = append(pending, baseVerb(tokens[pos], verbs))

		span := p.trim(tokens[pos+1 : end])
		if len(span) == 0 {
			// Verbs with nothing between them share the next verb's object.
			continue
		}
		for _, st := range p.statements(pending, span, text) {
			if key := st.key(); !seen[key] {
				seen[key] = true
				out = append(out, st)
			}
		}
		pending = pending[:0]
	}
	return out
}

// verbPositions returns indexes of tokens that start a verb clause.
func (p *Parser) verbPositions(tokens []string, verbs VerbSet) []int {
	var positions []int
	for i, tok := range tokens {
		if tok == "," || !verbs.Contains(tok) {
			continue
		}
		if i == 0 {
			positions = append(positions, i)
			continue
		}
		if prev := tokens[i-1]; prev == "," || p.lex.IsConjunction(prev) {
			positions = append(positions, i)
		}
	}
	return positions
}

// statements splits one span at its first preposition and expands the
// object and complement for every pending verb.
func (p *Parser) statements(verbs []string, span []string, original string) []Statement {
	objectTokens, prep, complementTokens := span, "", []string(nil)
	for j := 1; j < len(span); j++ {
		if !p.lex.IsPreposition(span[j]) {
			continue
		}
		objectTokens = p.trim(span[:j])
		if rest := p.trim(span[j+1:]); len(rest) > 0 {
			prep, complementTokens = span[j], rest
		}
		break
	}
	if len(objectTokens) == 0 {
		return nil
	}

	objects := p.variants(objectTokens)
	complements := []string{""}
	if prep != "" {
		if cs := p.variants(complementTokens); len(cs) > 0 {
			complements = cs
		}
	}

	var out []Statement
	for _, verb := range verbs {
		for _, obj := range objects {
			objID := p.canon.ToPascalCase(obj)
			if objID == "" {
				continue
			}
			for _, comp := range complements {
				st := Statement{
					Verb:       verb,
					Object:     objID,
					ObjectText: obj,
					Original:   original,
				}
				if compID := p.canon.ToPascalCase(comp); compID != "" {
					st.Preposition = prep
					st.Complement = compID
					st.ComplementText = comp
				}
				out = append(out, st)
			}
		}
	}
	return out
}

// variants splits a phrase on and/or boundaries and trims each variant,
// so "it and the board" yields "it" and "board".
func (p *Parser) variants(tokens []string) []string {
	var out []string
	for _, v := range p.exp.ExpandCoordination(join(tokens)) {
		if t := p.trim(clean.Tokens(v)); len(t) > 0 {
			out = append(out, join(t))
		}
	}
	return out
}

// trim drops leading and trailing stop-words, conjunctions, commas and
// one-letter tokens.
func (p *Parser) trim(tokens []string) []string {
	start, end := 0, len(tokens)
	for start < end && p.filler(tokens[start]) {
		start++
	}
	for end > start && p.filler(tokens[end-1]) {
		end--
	}
	return tokens[start:end]
}

func (p *Parser) filler(tok string) bool {
	return tok == "," || len(tok) < 2 || p.lex.IsStopword(tok) || p.lex.IsConjunction(tok)
}

func baseVerb(tok string, verbs VerbSet) string {
	if l, ok := verbs.(lemmatizer); ok {
		if base, ok := l.Lemma(tok); ok {
			return base
		}
	}
	return strings.ToLower(tok)
}

func join(tokens []string) string {
	return strings.ReplaceAll(strings.Join(tokens, " "), " ,", ",")
}

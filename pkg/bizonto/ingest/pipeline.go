// Package ingest runs source phrases through the normalization chain:
// phrase → expansion → parse → canonical identifier → validation → registry.
package ingest

import (
	"log/slog"
	"unicode"

	"github.com/cognicore/bizonto/pkg/bizonto/concept"
	"github.com/cognicore/bizonto/pkg/bizonto/expand"
	"github.com/cognicore/bizonto/pkg/bizonto/ident"
	"github.com/cognicore/bizonto/pkg/bizonto/lexicon"
	"github.com/cognicore/bizonto/pkg/bizonto/statement"
	"github.com/cognicore/bizonto/pkg/bizonto/verbs"
)

// Kind says where an accepted concept came from.
type Kind string

const (
	KindObject     Kind = "object"
	KindComplement Kind = "complement"
	KindName       Kind = "name"
	KindAcronym    Kind = "acronym"
)

// Concept is an identifier accepted into the registry.
type Concept struct {
	ID      string
	Label   string // phrase the id was built from
	Kind    Kind
	Domain  expand.Domain
	Source  string // original input phrase
	Related string // cross-linked id (acronym <-> full name)
}

// Rejection records an identifier the validator refused.
type Rejection struct {
	ID     string
	Label  string
	Reason concept.Reason
}

// TaskResult is the outcome of one task description.
type TaskResult struct {
	Original   string
	Statements statement.ExpansionSet // statements whose object passed validation
	Concepts   []Concept              // newly registered ids, in order
	Rejected   []Rejection
}

// NameResult is the outcome of one title or product name.
type NameResult struct {
	Original string
	Variants []string
	Concepts []Concept
	Rejected []Rejection
}

// Options configures a Pipeline. Nil fields get built-in defaults.
type Options struct {
	Lexicon   *lexicon.Lexicon
	Verbs     statement.VerbSet
	Parser    *statement.Parser
	Expanders map[expand.Domain]*expand.Expander
	Validator *concept.Validator
	Registry  *concept.Registry
	Stats     *concept.Stats
	Logger    *slog.Logger // Optional, uses slog.Default() if nil
}

// Pipeline orchestrates the normalization flow for one corpus run. It owns
// the run's registry and counters and is meant to be driven from a single
// goroutine in stable input order.
type Pipeline struct {
	lex       *lexicon.Lexicon
	verbs     statement.VerbSet
	parser    *statement.Parser
	expanders map[expand.Domain]*expand.Expander
	canon     *ident.Canonicalizer
	validator *concept.Validator
	registry  *concept.Registry
	stats     *concept.Stats
	logger    *slog.Logger
}

// NewPipeline creates a pipeline with the given components.
func NewPipeline(opts Options) *Pipeline {
	lex := opts.Lexicon
	if lex == nil {
		lex = lexicon.Default()
	}
	p := &Pipeline{
		lex:       lex,
		verbs:     opts.Verbs,
		parser:    opts.Parser,
		expanders: make(map[expand.Domain]*expand.Expander, len(expand.Domains)),
		canon:     ident.New(lex),
		validator: opts.Validator,
		registry:  opts.Registry,
		stats:     opts.Stats,
		logger:    opts.Logger,
	}
	if p.verbs == nil {
		p.verbs = verbs.Default()
	}
	if p.parser == nil {
		p.parser = statement.NewParser(statement.Options{Lexicon: lex, Canonicalizer: p.canon})
	}
	for d, e := range opts.Expanders {
		p.expanders[d] = e
	}
	if p.validator == nil {
		p.validator = concept.NewValidator(lex)
	}
	if p.registry == nil {
		p.registry = concept.NewRegistry()
	}
	if p.stats == nil {
		p.stats = concept.NewStats()
	}
	if p.logger == nil {
		p.logger = slog.Default()
	}
	return p
}

// Registry returns the run registry.
func (p *Pipeline) Registry() *concept.Registry { return p.registry }

// Stats returns the run counters.
func (p *Pipeline) Stats() *concept.Stats { return p.stats }

// Reset starts a new corpus run with an empty registry and zeroed counters.
func (p *Pipeline) Reset() {
	p.registry = concept.NewRegistry()
	p.stats = concept.NewStats()
}

// ProcessTask parses an imperative task description. Coordinated objects
// and complements are expanded inside the parser, so the phrase itself is
// not pre-split. A rejected complement is dropped from its statement.
func (p *Pipeline) ProcessTask(text string) TaskResult {
	res := TaskResult{Original: text}
	seen := make(map[statement.Statement]bool)
	for _, st := range p.parser.Parse(text, p.verbs) {
		c, ok := p.accept(st.Object, st.ObjectText, KindObject, expand.Objects, text, &res.Rejected)
		if !ok {
			continue
		}
		if c != nil {
			res.Concepts = append(res.Concepts, *c)
		}
		if st.HasComplement() {
			c, ok := p.accept(st.Complement, st.ComplementText, KindComplement, expand.Objects, text, &res.Rejected)
			switch {
			case !ok:
				// Statements only reference accepted ids.
				st.Preposition, st.Complement, st.ComplementText = "", "", ""
			case c != nil:
				res.Concepts = append(res.Concepts, *c)
			}
		}
		if !seen[st] {
			seen[st] = true
			res.Statements = append(res.Statements, st)
		}
	}
	return res
}

// ProcessName expands a title or product name with the domain's expander
// and registers every valid variant.
func (p *Pipeline) ProcessName(domain expand.Domain, text string) NameResult {
	res := NameResult{Original: text}
	res.Variants = p.expander(domain).Expand(text)
	for _, variant := range res.Variants {
		id := p.canon.ToPascalCase(variant)
		if c, ok := p.accept(id, variant, KindName, domain, text, &res.Rejected); ok && c != nil {
			res.Concepts = append(res.Concepts, *c)
		}
	}
	return res
}

// ProcessTechnology registers a technology or software name. When an
// acronym is detected both the full name and the acronym are registered
// and cross-linked.
func (p *Pipeline) ProcessTechnology(text string) NameResult {
	res := NameResult{Original: text}
	pair := ident.ExtractAcronym(text)
	if pair.FullName == "" {
		return res
	}
	res.Variants = []string{pair.FullName}

	fullID := p.canon.ToPascalCase(pair.FullName)
	var acronymID string
	if pair.HasAcronym() {
		acronymID = pair.Acronym
		if !isIdentifier(acronymID) {
			acronymID = p.canon.ToPascalCase(acronymID)
		}
		if acronymID != fullID {
			res.Variants = append(res.Variants, pair.Acronym)
		} else {
			acronymID = ""
		}
	}

	if c, ok := p.accept(fullID, pair.FullName, KindName, "", text, &res.Rejected); ok && c != nil {
		c.Related = acronymID
		res.Concepts = append(res.Concepts, *c)
	}
	if acronymID == "" {
		return res
	}
	if c, ok := p.accept(acronymID, pair.Acronym, KindAcronym, "", text, &res.Rejected); ok && c != nil {
		c.Related = fullID
		res.Concepts = append(res.Concepts, *c)
	}
	return res
}

// accept validates id and registers it. ok is false when the validator
// rejected the id; c is nil when the id was valid but already registered.
func (p *Pipeline) accept(id, label string, kind Kind, domain expand.Domain, source string, rejected *[]Rejection) (c *Concept, ok bool) {
	reason := p.validator.Check(id)
	p.stats.Observe(reason)
	if reason != concept.Valid {
		*rejected = append(*rejected, Rejection{ID: id, Label: label, Reason: reason})
		p.logger.Debug("concept rejected", "id", id, "reason", string(reason), "source", source)
		return nil, false
	}
	if !p.registry.Register(id) {
		p.stats.ObserveDuplicate()
		return nil, true
	}
	return &Concept{ID: id, Label: label, Kind: kind, Domain: domain, Source: source}, true
}

func (p *Pipeline) expander(domain expand.Domain) *expand.Expander {
	if e, ok := p.expanders[domain]; ok {
		return e
	}
	e := expand.New(expand.Preset(domain, p.lex))
	p.expanders[domain] = e
	return e
}

// isIdentifier reports whether s can be used verbatim as an id ("AWS", "SaaS").
func isIdentifier(s string) bool {
	if s == "" || !unicode.IsLetter(rune(s[0])) {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

package lexicon

import (
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Lexicon stores the closed word tables the normalization engine consults:
//   - Acronyms: abbreviations kept verbatim when casing identifiers (ERP, HR, SaaS)
//   - Stopwords: articles/conjunctions stripped from object spans
//   - Prepositions: the closed set that splits an object from its complement
//   - Conjunctions: coordination markers (and, or)
//   - Common verbs: infinitives that must never lead a concept identifier
//   - Suffixes: per-domain vocabulary of shared trailing words
//     ("Supervisors", "Manufacturing") used by coordination expansion
//
// Tables are loaded once at start and treated as read-only afterwards.
type Lexicon struct {
	// UPPER-cased key -> canonical spelling
	// Example: "SAAS" -> "SaaS", "ERP" -> "ERP"
	acronyms map[string]string

	stopwords    map[string]struct{}
	prepositions map[string]struct{}
	conjunctions map[string]struct{}
	commonVerbs  map[string]struct{}

	// domain -> suffix phrases in display case, longest first
	suffixes map[string][]string
}

// New creates an empty lexicon.
func New() *Lexicon {
	return &Lexicon{
		acronyms:     make(map[string]string),
		stopwords:    make(map[string]struct{}),
		prepositions: make(map[string]struct{}),
		conjunctions: make(map[string]struct{}),
		commonVerbs:  make(map[string]struct{}),
		suffixes:     make(map[string][]string),
	}
}

// Default returns a lexicon populated with the built-in tables.
func Default() *Lexicon {
	l := New()
	for _, a := range defaultAcronyms {
		l.AddAcronym(a)
	}
	for _, w := range defaultStopwords {
		l.AddStopword(w)
	}
	for _, w := range defaultPrepositions {
		l.AddPreposition(w)
	}
	for _, w := range defaultConjunctions {
		l.conjunctions[w] = struct{}{}
	}
	for _, w := range defaultCommonVerbs {
		l.AddCommonVerb(w)
	}
	for domain, words := range defaultSuffixes {
		l.AddSuffixes(domain, words)
	}
	return l
}

// LoadFromYAML loads a lexicon overlay on top of the built-in tables.
//
// Expected format:
//
//	acronyms: [ERP, SaaS]
//	stopwords: [the, a]
//	prepositions: [to, for]
//	common_verbs: [ensure, provide]
//	suffixes:
//	  roles: [Supervisors, Managers]
//	  industries: [Manufacturing]
//
// Entries are merged, never removed: the overlay can only grow the defaults.
func LoadFromYAML(path string) (*Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var config struct {
		Acronyms     []string            `yaml:"acronyms"`
		Stopwords    []string            `yaml:"stopwords"`
		Prepositions []string            `yaml:"prepositions"`
		CommonVerbs  []string            `yaml:"common_verbs"`
		Suffixes     map[string][]string `yaml:"suffixes"`
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	lex := Default()
	for _, a := range config.Acronyms {
		lex.AddAcronym(a)
	}
	for _, w := range config.Stopwords {
		lex.AddStopword(w)
	}
	for _, w := range config.Prepositions {
		lex.AddPreposition(w)
	}
	for _, w := range config.CommonVerbs {
		lex.AddCommonVerb(w)
	}
	for domain, words := range config.Suffixes {
		lex.AddSuffixes(domain, words)
	}

	return lex, nil
}

// AddAcronym registers an acronym under its upper-cased key, keeping the
// given spelling as canonical ("SaaS" stays "SaaS").
func (l *Lexicon) AddAcronym(acronym string) {
	acronym = strings.TrimSpace(acronym)
	if acronym == "" {
		return
	}
	l.acronyms[strings.ToUpper(acronym)] = acronym
}

// Acronym returns the canonical spelling of word if it is a known acronym.
func (l *Lexicon) Acronym(word string) (string, bool) {
	canonical, ok := l.acronyms[strings.ToUpper(word)]
	return canonical, ok
}

// AddStopword adds a word to the stopword set.
func (l *Lexicon) AddStopword(word string) {
	addWord(l.stopwords, word)
}

// IsStopword reports whether word is in the stopword set.
func (l *Lexicon) IsStopword(word string) bool {
	return hasWord(l.stopwords, word)
}

// AddPreposition adds a word to the preposition set.
func (l *Lexicon) AddPreposition(word string) {
	addWord(l.prepositions, word)
}

// IsPreposition reports whether word is in the closed preposition set.
func (l *Lexicon) IsPreposition(word string) bool {
	return hasWord(l.prepositions, word)
}

// Prepositions returns the preposition set, sorted.
func (l *Lexicon) Prepositions() []string {
	out := make([]string, 0, len(l.prepositions))
	for w := range l.prepositions {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

// IsConjunction reports whether word is a coordination marker.
func (l *Lexicon) IsConjunction(word string) bool {
	return hasWord(l.conjunctions, word)
}

// AddCommonVerb adds an infinitive to the common-verb list.
func (l *Lexicon) AddCommonVerb(word string) {
	addWord(l.commonVerbs, word)
}

// IsCommonVerb reports whether word is in the common-verb list.
func (l *Lexicon) IsCommonVerb(word string) bool {
	return hasWord(l.commonVerbs, word)
}

// AddSuffixes appends suffix phrases for a domain. Duplicates (case-insensitive)
// are ignored and the list is kept sorted longest-phrase first so callers can
// take the first match.
func (l *Lexicon) AddSuffixes(domain string, words []string) {
	domain = strings.ToLower(domain)
	existing := l.suffixes[domain]
	seen := make(map[string]bool, len(existing))
	for _, w := range existing {
		seen[strings.ToLower(w)] = true
	}
	for _, w := range words {
		w = strings.Join(strings.Fields(w), " ")
		if w == "" || seen[strings.ToLower(w)] {
			continue
		}
		seen[strings.ToLower(w)] = true
		existing = append(existing, w)
	}
	sort.SliceStable(existing, func(i, j int) bool {
		return len(strings.Fields(existing[i])) > len(strings.Fields(existing[j]))
	})
	l.suffixes[domain] = existing
}

// Suffixes returns the suffix vocabulary for a domain (nil if unknown).
func (l *Lexicon) Suffixes(domain string) []string {
	src := l.suffixes[strings.ToLower(domain)]
	if len(src) == 0 {
		return nil
	}
	out := make([]string, len(src))
	copy(out, src)
	return out
}

// Domains returns the names of all domains with a suffix vocabulary, sorted.
func (l *Lexicon) Domains() []string {
	out := make([]string, 0, len(l.suffixes))
	for d := range l.suffixes {
		out = append(out, d)
	}
	sort.Strings(out)
	return out
}

// Stats returns statistics about the lexicon contents.
func (l *Lexicon) Stats() LexiconStats {
	total := 0
	for _, words := range l.suffixes {
		total += len(words)
	}
	return LexiconStats{
		Acronyms:     len(l.acronyms),
		Stopwords:    len(l.stopwords),
		Prepositions: len(l.prepositions),
		CommonVerbs:  len(l.commonVerbs),
		Domains:      len(l.suffixes),
		Suffixes:     total,
	}
}

// LexiconStats holds statistics about lexicon contents.
type LexiconStats struct {
	Acronyms     int
	Stopwords    int
	Prepositions int
	CommonVerbs  int
	Domains      int // Number of domains with a suffix vocabulary
	Suffixes     int // Total suffix phrases across all domains
}

func addWord(set map[string]struct{}, word string) {
	word = strings.ToLower(strings.TrimSpace(word))
	if word == "" {
		return
	}
	set[word] = struct{}{}
}

func hasWord(set map[string]struct{}, word string) bool {
	_, ok := set[strings.ToLower(word)]
	return ok
}

// Package expand splits coordinated noun phrases into their variants.
//
// "Farm, Ranch, and Aquaculture Supervisors" names three roles and
// "Meat/Poultry/Other Animals Unprocessed" three products. The expander
// runs an ordered chain of rules over a phrase; the first rule that fires
// produces the variants, and a phrase no rule accepts comes back unchanged.
package expand

import (
	"regexp"
	"strings"

	"github.com/cognicore/bizonto/pkg/bizonto/clean"
	"github.com/cognicore/bizonto/pkg/bizonto/verbs"
)

// Rule is one step of the expansion chain. Apply reports false when the
// rule does not match or would produce an over-long segment.
type Rule struct {
	Name  string
	Apply func(e *Expander, phrase string) ([]string, bool)
}

// Rule names as reported by Explain.
const (
	RuleHyphen           = "hyphen-modifier"
	RuleVerbCoordination = "verb-coordination"
	RuleCommaList        = "comma-list"
	RuleSlash            = "slash-alternatives"
	RuleSharedSuffix     = "shared-suffix"
	RuleConjunction      = "conjunction-split"
	RuleFallback         = "none"
)

// phraseRules is the precedence order for titles and names.
var phraseRules = []Rule{
	{Name: RuleHyphen, Apply: (*Expander).expandHyphen},
	{Name: RuleVerbCoordination, Apply: (*Expander).expandVerbCoordination},
	{Name: RuleCommaList, Apply: (*Expander).expandCommaList},
	{Name: RuleSlash, Apply: (*Expander).expandSlash},
	{Name: RuleSharedSuffix, Apply: (*Expander).expandSharedSuffix},
}

// coordinationRules is the precedence order for statement objects, which
// only split on and/or/comma boundaries.
var coordinationRules = []Rule{
	{Name: RuleSharedSuffix, Apply: (*Expander).expandSharedSuffix},
	{Name: RuleCommaList, Apply: (*Expander).expandCommaList},
	{Name: RuleConjunction, Apply: (*Expander).expandConjunction},
}

var (
	andOrPattern       = regexp.MustCompile(`(?i)\band\s*/\s*or\b`)
	conjSplitPattern   = regexp.MustCompile(`(?i)\s+(?:and|or)\s+`)
	leadingConjPattern = regexp.MustCompile(`(?i)^(?:and|or)\s+`)
)

// Expander applies the rule chain with one domain configuration.
type Expander struct {
	cfg      Config
	suffixes [][]string // lowercased suffix words, longest first
}

// New creates an expander for cfg.
func New(cfg Config) *Expander {
	cfg = cfg.withDefaults()
	e := &Expander{cfg: cfg}
	for _, s := range cfg.Suffixes {
		words := strings.Fields(strings.ToLower(s))
		if len(words) > 0 {
			e.suffixes = append(e.suffixes, words)
		}
	}
	// Longest suffix first so "Merchant Wholesalers" beats "Wholesalers".
	for i := 1; i < len(e.suffixes); i++ {
		for j := i; j > 0 && len(e.suffixes[j]) > len(e.suffixes[j-1]); j-- {
			e.suffixes[j], e.suffixes[j-1] = e.suffixes[j-1], e.suffixes[j]
		}
	}
	return e
}

// Config returns the expander configuration.
func (e *Expander) Config() Config {
	return e.cfg
}

// Expand returns the variants named by a title or name phrase; one variant
// means no coordination was detected. Empty input returns nil.
func (e *Expander) Expand(phrase string) []string {
	_, out := e.Explain(phrase)
	return out
}

// Explain is Expand that also reports which rule fired.
func (e *Expander) Explain(phrase string) (string, []string) {
	return e.run(phraseRules, phrase)
}

// ExpandCoordination splits a statement object on and/or/comma boundaries,
// distributing a shared suffix when one is recognized.
func (e *Expander) ExpandCoordination(phrase string) []string {
	_, out := e.run(coordinationRules, phrase)
	return out
}

func (e *Expander) run(rules []Rule, phrase string) (string, []string) {
	p := normalizeSpace(andOrPattern.ReplaceAllString(phrase, "or"))
	if p == "" {
		return RuleFallback, nil
	}
	for _, rule := range rules {
		variants, ok := rule.Apply(e, p)
		if !ok {
			continue
		}
		if out := dedupe(variants); len(out) > 0 {
			return rule.Name, out
		}
	}
	return RuleFallback, []string{p}
}

// expandHyphen handles "Base - Alt1/Alt2 (Note)": the base keeps its
// parenthetical words, each modifier section drops them, and every section
// contributes its slash alternatives to a cartesian product.
func (e *Expander) expandHyphen(p string) ([]string, bool) {
	if !strings.Contains(p, " - ") {
		return nil, false
	}
	sections := strings.Split(p, " - ")
	base := clean.Flatten(sections[0])
	if base == "" {
		return nil, false
	}

	combos := []string{base}
	for _, section := range sections[1:] {
		tail := clean.StripParens(section)
		if tail == "" {
			continue
		}
		alts, ok := e.slashAlternatives(tail)
		if !ok {
			alts = []string{tail}
		}
		for _, alt := range alts {
			if wordCount(alt) > e.cfg.MaxModifierWords {
				return nil, false
			}
		}
		combos = cartesian(combos, alts)
	}
	return combos, true
}

// expandVerbCoordination handles "V1, V2 and V3 Object" where every Vi is a
// verb: each verb gets its own copy of the shared object.
func (e *Expander) expandVerbCoordination(p string) ([]string, bool) {
	words := strings.Fields(p)
	var heads []string
	linked := true
	sawConj := false
	i := 0
	for i < len(words) {
		raw := words[i]
		w := strings.TrimSuffix(raw, ",")
		if len(heads) > 0 && isConj(w) {
			linked, sawConj = true, true
			i++
			continue
		}
		if !linked || !e.isVerb(w) {
			break
		}
		heads = append(heads, w)
		linked = strings.HasSuffix(raw, ",")
		i++
	}
	if len(heads) < 2 || !sawConj || linked || i >= len(words) {
		return nil, false
	}
	// "Clothing and Clothing Accessories Stores" repeats a noun, not a verb.
	seen := make(map[string]bool, len(heads))
	for _, h := range heads {
		key := strings.ToLower(h)
		if seen[key] {
			return nil, false
		}
		seen[key] = true
	}

	object := strings.Join(words[i:], " ")
	out := make([]string, len(heads))
	for k, head := range heads {
		out[k] = head + " " + object
	}
	return out, true
}

// expandCommaList handles "A, B, and C" where every item is short. It
// defers to the shared-suffix rule when only the last item carries a
// vocabulary suffix ("Farm, Ranch, and Aquaculture Supervisors").
// Qualifier items ("Except Farm Products") are not variants.
func (e *Expander) expandCommaList(p string) ([]string, bool) {
	if !strings.Contains(p, ",") {
		return nil, false
	}
	var items []string
	for _, item := range splitList(p) {
		if !isQualifier(item) {
			items = append(items, item)
		}
	}
	if len(items) < 2 {
		return nil, false
	}
	if e.sharedSuffix(items) > 0 {
		return nil, false
	}
	for _, item := range items {
		if item == "" || wordCount(item) > e.cfg.MaxListWords {
			return nil, false
		}
	}
	return items, true
}

// expandSlash handles "Meat/Poultry/Other Animals Unprocessed".
func (e *Expander) expandSlash(p string) ([]string, bool) {
	return e.slashAlternatives(p)
}

// expandSharedSuffix handles "A and B Suffix" / "A, B, and C Suffix" where
// Suffix is in the domain vocabulary: the suffix is appended to every
// segment, and a segment that already carries it is not doubled.
func (e *Expander) expandSharedSuffix(p string) ([]string, bool) {
	words := strings.Fields(p)
	n := e.matchSuffix(words)
	if n == 0 || n >= len(words) {
		return nil, false
	}
	suffix := words[len(words)-n:]
	items := splitCoordinated(strings.Join(words[:len(words)-n], " "))
	if len(items) < 2 {
		return nil, false
	}

	out := make([]string, 0, len(items))
	for _, item := range items {
		itemWords := strings.Fields(item)
		if hasSuffixFold(itemWords, suffix) {
			itemWords = itemWords[:len(itemWords)-len(suffix)]
		}
		if len(itemWords) == 0 || len(itemWords) > e.cfg.MaxSuffixSegmentWords {
			return nil, false
		}
		out = append(out, strings.Join(itemWords, " ")+" "+strings.Join(suffix, " "))
	}
	return out, true
}

// expandConjunction splits plain "X and Y" objects when every part is short.
func (e *Expander) expandConjunction(p string) ([]string, bool) {
	items := splitCoordinated(p)
	if len(items) < 2 {
		return nil, false
	}
	for _, item := range items {
		if item == "" || wordCount(item) > e.cfg.MaxListWords {
			return nil, false
		}
	}
	return items, true
}

// slashAlternatives splits on "/" and redistributes a shared prefix and
// suffix. The suffix is the vocabulary suffix of the last part, or its last
// word when that part is longer than every other part; the prefix is all
// but the last word of the first part when it is longer than every other part.
func (e *Expander) slashAlternatives(text string) ([]string, bool) {
	if !strings.Contains(text, "/") {
		return nil, false
	}
	raw := strings.Split(text, "/")
	parts := make([][]string, len(raw))
	for i, r := range raw {
		parts[i] = strings.Fields(r)
		if len(parts[i]) == 0 {
			return nil, false
		}
	}

	last := len(parts) - 1
	var suffix []string
	if lw := parts[last]; len(lw) > 1 {
		if n := e.matchSuffix(lw); n > 0 && n < len(lw) {
			suffix = lw[len(lw)-n:]
		} else if len(lw) > maxLen(parts[:last]) {
			suffix = lw[len(lw)-1:]
		}
		parts[last] = lw[:len(lw)-len(suffix)]
	}

	var prefix []string
	if fw := parts[0]; len(fw) > 1 && len(fw) > maxLen(parts[1:]) {
		prefix = fw[:len(fw)-1]
		parts[0] = fw[len(fw)-1:]
	}

	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if len(part) > e.cfg.MaxSlashWords {
			return nil, false
		}
		words := make([]string, 0, len(prefix)+len(part)+len(suffix))
		words = append(words, prefix...)
		words = append(words, part...)
		words = append(words, suffix...)
		out = append(out, strings.Join(words, " "))
	}
	return out, true
}

// sharedSuffix returns the suffix length carried by the last item alone.
func (e *Expander) sharedSuffix(items []string) int {
	lastWords := strings.Fields(items[len(items)-1])
	n := e.matchSuffix(lastWords)
	if n == 0 || n >= len(lastWords) {
		return 0
	}
	suffix := lastWords[len(lastWords)-n:]
	for _, item := range items[:len(items)-1] {
		if hasSuffixFold(strings.Fields(item), suffix) {
			return 0
		}
	}
	return n
}

// matchSuffix returns how many trailing words match the longest vocabulary suffix.
func (e *Expander) matchSuffix(words []string) int {
	for _, suffix := range e.suffixes {
		if hasSuffixFold(words, suffix) {
			return len(suffix)
		}
	}
	return 0
}

// gerundVerbs backs isVerb when the config carries no vocabulary, so
// "-ing" nouns such as "Clothing" and "Housing" are not taken for verbs.
var gerundVerbs = verbs.Default()

func (e *Expander) isVerb(word string) bool {
	lower := strings.ToLower(word)
	isGerund := len(lower) > 5 && strings.HasSuffix(lower, "ing")
	if e.cfg.Verbs == nil {
		return isGerund && gerundVerbs.Contains(verbs.GerundToBase(lower))
	}
	if e.cfg.Verbs.Contains(lower) {
		return true
	}
	return isGerund && e.cfg.Verbs.Contains(verbs.GerundToBase(lower))
}

// isQualifier reports whether a list item restricts the title rather than
// naming a variant.
func isQualifier(item string) bool {
	first, _, _ := strings.Cut(strings.ToLower(item), " ")
	return first == "except" || first == "including"
}

// splitList splits "A, B, and C" / "A, B and C" into items.
func splitList(p string) []string {
	raw := strings.Split(p, ",")
	items := make([]string, 0, len(raw)+1)
	for i, r := range raw {
		item := leadingConjPattern.ReplaceAllString(strings.TrimSpace(r), "")
		if i == len(raw)-1 {
			items = append(items, conjSplitPattern.Split(item, -1)...)
			continue
		}
		items = append(items, item)
	}
	for i := range items {
		items[i] = strings.TrimSpace(items[i])
	}
	return items
}

// splitCoordinated splits on commas and every and/or.
func splitCoordinated(p string) []string {
	var items []string
	for _, part := range strings.Split(p, ",") {
		part = leadingConjPattern.ReplaceAllString(strings.TrimSpace(part), "")
		for _, item := range conjSplitPattern.Split(part, -1) {
			items = append(items, strings.TrimSpace(item))
		}
	}
	return items
}

func isConj(w string) bool {
	switch strings.ToLower(w) {
	case "and", "or":
		return true
	}
	return false
}

func hasSuffixFold(words, suffix []string) bool {
	if len(suffix) == 0 || len(words) < len(suffix) {
		return false
	}
	offset := len(words) - len(suffix)
	for i, s := range suffix {
		if !strings.EqualFold(words[offset+i], s) {
			return false
		}
	}
	return true
}

func cartesian(left, right []string) []string {
	out := make([]string, 0, len(left)*len(right))
	for _, l := range left {
		for _, r := range right {
			out = append(out, l+" "+r)
		}
	}
	return out
}

func maxLen(parts [][]string) int {
	m := 0
	for _, p := range parts {
		if len(p) > m {
			m = len(p)
		}
	}
	return m
}

func wordCount(s string) int {
	return len(strings.Fields(s))
}

func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// dedupe drops empty and case-insensitive duplicate variants, keeping order.
func dedupe(variants []string) []string {
	seen := make(map[string]bool, len(variants))
	out := make([]string, 0, len(variants))
	for _, v := range variants {
		v = normalizeSpace(v)
		key := strings.ToLower(v)
		if v == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, v)
	}
	return out
}

package verbs

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/surgebase/porter2"
)

// minStemLength mirrors the stemmer default: shorter words are never stemmed.
const minStemLength = 3

// Vocabulary is the set of known verbs with their conjugations.
//
// Contains answers on base forms only, which is what statement parsing scans
// for. Lemma additionally resolves past tense, gerund and third-person forms
// back to their base.
type Vocabulary struct {
	forms     map[string]VerbForms
	inflected map[string]string // past tense / gerund -> base
	stems     map[string]string // porter2 stem -> base, first registration wins
	order     []string
}

// NewVocabulary builds a vocabulary from explicit conjugation triples.
// Missing past/gerund columns are filled in by the conjugation rules.
func NewVocabulary(entries []VerbForms) *Vocabulary {
	v := &Vocabulary{
		forms:     make(map[string]VerbForms, len(entries)),
		inflected: make(map[string]string, len(entries)*2),
		stems:     make(map[string]string, len(entries)),
	}
	for _, e := range entries {
		v.Add(e)
	}
	return v
}

// Default returns the built-in fallback vocabulary.
func Default() *Vocabulary {
	entries := make([]VerbForms, 0, len(defaultVerbs))
	for _, base := range defaultVerbs {
		entries = append(entries, Forms(base))
	}
	return NewVocabulary(entries)
}

// Add registers one verb. Re-adding a base replaces its forms.
func (v *Vocabulary) Add(e VerbForms) {
	base := normalize(e.Base)
	if base == "" || strings.ContainsAny(base, " \t") {
		return
	}
	past := normalize(e.PastTense)
	if past == "" {
		past = PastTense(base)
	}
	gerund := normalize(e.Gerund)
	if gerund == "" {
		gerund = Gerund(base)
	}

	if _, exists := v.forms[base]; !exists {
		v.order = append(v.order, base)
	}
	v.forms[base] = VerbForms{Base: base, PastTense: past, Gerund: gerund}

	// Inflections never shadow another verb's base form ("read" -> "read").
	for _, form := range []string{past, gerund} {
		if form == base {
			continue
		}
		if _, isBase := v.forms[form]; isBase {
			continue
		}
		v.inflected[form] = base
	}
	if len(base) >= minStemLength {
		stem := porter2.Stem(base)
		if _, taken := v.stems[stem]; !taken {
			v.stems[stem] = base
		}
	}
}

// Contains reports whether word is a known base verb.
func (v *Vocabulary) Contains(word string) bool {
	_, ok := v.forms[normalize(word)]
	return ok
}

// Forms returns the conjugation triple for a base verb.
func (v *Vocabulary) Forms(base string) (VerbForms, bool) {
	f, ok := v.forms[normalize(base)]
	return f, ok
}

// Lemma resolves word to a base verb in the vocabulary. Third-person forms
// ("manages", "processes") are matched through their porter2 stem, but only
// when the word is the base plus "s"/"es", so nouns like "operations" never
// resolve to "operate".
func (v *Vocabulary) Lemma(word string) (string, bool) {
	w := normalize(word)
	if w == "" {
		return "", false
	}
	if _, ok := v.forms[w]; ok {
		return w, true
	}
	if base, ok := v.inflected[w]; ok {
		return base, true
	}
	if len(w) < minStemLength || !strings.HasSuffix(w, "s") {
		return "", false
	}
	base, ok := v.stems[porter2.Stem(w)]
	if !ok {
		return "", false
	}
	if extra := len(w) - len(base); extra < 1 || extra > 2 {
		return "", false
	}
	return base, true
}

// Len returns the number of base verbs.
func (v *Vocabulary) Len() int {
	return len(v.order)
}

// Bases returns base verbs in registration order.
func (v *Vocabulary) Bases() []string {
	out := make([]string, len(v.order))
	copy(out, v.order)
	return out
}

// Inflected wraps the vocabulary so membership also accepts inflected forms.
func (v *Vocabulary) Inflected() InflectedSet {
	return InflectedSet{vocab: v}
}

// InflectedSet is a verb set that matches any form Lemma can resolve.
type InflectedSet struct {
	vocab *Vocabulary
}

// Contains reports whether word resolves to a known verb.
func (s InflectedSet) Contains(word string) bool {
	_, ok := s.vocab.Lemma(word)
	return ok
}

// Lemma resolves word to its base verb.
func (s InflectedSet) Lemma(word string) (string, bool) {
	return s.vocab.Lemma(word)
}

// LoadTSV loads a verb table from a tab-separated file.
//
// Format: base<TAB>past<TAB>gerund, one verb per row. A header row whose
// first cell is "base" or "verb" is skipped; rows starting with "#" are
// comments. Past and gerund columns may be empty or absent.
func LoadTSV(path string) (*Vocabulary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	vocab, err := ReadTSV(f)
	if err != nil {
		return nil, fmt.Errorf("read verb table %s: %w", path, err)
	}
	return vocab, nil
}

// ReadTSV parses a verb table from r. See LoadTSV for the format.
func ReadTSV(r io.Reader) (*Vocabulary, error) {
	reader := csv.NewReader(r)
	reader.Comma = '\t'
	reader.Comment = '#'
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	vocab := NewVocabulary(nil)
	first := true
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(record) == 0 {
			continue
		}
		if first {
			first = false
			if h := normalize(record[0]); h == "base" || h == "verb" {
				continue
			}
		}

		entry := VerbForms{Base: record[0]}
		if len(record) > 1 {
			entry.PastTense = record[1]
		}
		if len(record) > 2 {
			entry.Gerund = record[2]
		}
		vocab.Add(entry)
	}
	return vocab, nil
}

package autotune

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// overlay mirrors the suffix section of the lexicon YAML format.
type overlay struct {
	Suffixes map[string][]string `yaml:"suffixes"`
}

// WriteOverlay renders approved candidates as a lexicon overlay that
// lexicon.LoadFromYAML accepts.
func WriteOverlay(w io.Writer, domain string, cands []Candidate) error {
	if w == nil {
		return fmt.Errorf("overlay export: nil writer")
	}
	words := make([]string, 0, len(cands))
	for _, c := range cands {
		words = append(words, c.Word)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(overlay{Suffixes: map[string][]string{domain: words}}); err != nil {
		return fmt.Errorf("encode overlay: %w", err)
	}
	return enc.Close()
}

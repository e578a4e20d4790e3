package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/bizonto/pkg/bizonto/expand"
	"github.com/cognicore/bizonto/pkg/bizonto/internalerr"
)

// Config is the engine configuration file.
//
//	lexicon: lexicon.yaml
//	verbs: verbs.tsv
//	match_inflected: true
//	store: bizonto.db
//	similarity: 0.92
//	domains:
//	  roles:
//	    suffixes: [Stewards]
//	    max_list_words: 4
type Config struct {
	Lexicon        string                  `yaml:"lexicon"`
	Verbs          string                  `yaml:"verbs"`
	MatchInflected bool                    `yaml:"match_inflected"`
	Store          string                  `yaml:"store"`
	Similarity     float64                 `yaml:"similarity"`
	Domains        map[string]DomainConfig `yaml:"domains"`
}

// DomainConfig overrides one expander preset. Zero thresholds keep the
// preset value; suffixes extend the lexicon's vocabulary.
type DomainConfig struct {
	Suffixes              []string `yaml:"suffixes"`
	MaxModifierWords      int      `yaml:"max_modifier_words"`
	MaxListWords          int      `yaml:"max_list_words"`
	MaxSlashWords         int      `yaml:"max_slash_words"`
	MaxSuffixSegmentWords int      `yaml:"max_suffix_segment_words"`
	UseVerbs              bool     `yaml:"use_verbs"`
}

// LoadConfig loads a config file. Relative lexicon, verbs and store paths
// are resolved against the file's directory.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", internalerr.ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	dir := filepath.Dir(path)
	cfg.Lexicon = resolve(dir, cfg.Lexicon)
	cfg.Verbs = resolve(dir, cfg.Verbs)
	cfg.Store = resolve(dir, cfg.Store)
	return &cfg, nil
}

// Validate checks domain names and thresholds.
func (c *Config) Validate() error {
	if c.Similarity < 0 || c.Similarity > 1 {
		return fmt.Errorf("%w: similarity %v outside [0, 1]", internalerr.ErrInvalidConfig, c.Similarity)
	}
	for name, d := range c.Domains {
		if !knownDomain(name) {
			return fmt.Errorf("%w: unknown domain %q", internalerr.ErrInvalidConfig, name)
		}
		for _, n := range []int{d.MaxModifierWords, d.MaxListWords, d.MaxSlashWords, d.MaxSuffixSegmentWords} {
			if n < 0 {
				return fmt.Errorf("%w: domain %q has a negative threshold", internalerr.ErrInvalidConfig, name)
			}
		}
	}
	return nil
}

func knownDomain(name string) bool {
	for _, d := range expand.Domains {
		if string(d) == name {
			return true
		}
	}
	return false
}

func resolve(dir, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dir, p)
}

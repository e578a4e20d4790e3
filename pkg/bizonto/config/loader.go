package config

import (
	"fmt"
	"log/slog"

	"github.com/cognicore/bizonto/pkg/bizonto/concept"
	"github.com/cognicore/bizonto/pkg/bizonto/expand"
	"github.com/cognicore/bizonto/pkg/bizonto/ident"
	"github.com/cognicore/bizonto/pkg/bizonto/ingest"
	"github.com/cognicore/bizonto/pkg/bizonto/lexicon"
	"github.com/cognicore/bizonto/pkg/bizonto/statement"
	"github.com/cognicore/bizonto/pkg/bizonto/verbs"
)

// Loader loads all configuration files and constructs components.
// LexiconPath and VerbsPath override the paths named in the config file.
type Loader struct {
	ConfigPath  string
	LexiconPath string
	VerbsPath   string
}

// Components holds all loaded configuration components
type Components struct {
	Config    *Config
	Lexicon   *lexicon.Lexicon
	Verbs     *verbs.Vocabulary
	VerbSet   statement.VerbSet
	Expanders map[expand.Domain]*expand.Expander
	Validator *concept.Validator
}

// Load reads all configuration files and returns initialized components.
// Empty paths fall back to the built-in tables.
func (l *Loader) Load() (*Components, error) {
	cfg := &Config{}
	if l.ConfigPath != "" {
		loaded, err := LoadConfig(l.ConfigPath)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}
	if l.LexiconPath != "" {
		cfg.Lexicon = l.LexiconPath
	}
	if l.VerbsPath != "" {
		cfg.Verbs = l.VerbsPath
	}

	comp := &Components{Config: cfg}

	// Load lexicon
	if cfg.Lexicon != "" {
		lex, err := lexicon.LoadFromYAML(cfg.Lexicon)
		if err != nil {
			return nil, fmt.Errorf("load lexicon: %w", err)
		}
		comp.Lexicon = lex
	} else {
		comp.Lexicon = lexicon.Default()
	}

	// Load verb table
	if cfg.Verbs != "" {
		vocab, err := verbs.LoadTSV(cfg.Verbs)
		if err != nil {
			return nil, fmt.Errorf("load verbs: %w", err)
		}
		comp.Verbs = vocab
	} else {
		comp.Verbs = verbs.Default()
	}
	comp.VerbSet = comp.Verbs
	if cfg.MatchInflected {
		comp.VerbSet = comp.Verbs.Inflected()
	}

	for name, d := range cfg.Domains {
		comp.Lexicon.AddSuffixes(name, d.Suffixes)
	}
	comp.Expanders = make(map[expand.Domain]*expand.Expander, len(expand.Domains))
	for _, domain := range expand.Domains {
		comp.Expanders[domain] = expand.New(buildPreset(domain, comp, cfg.Domains[string(domain)]))
	}

	comp.Validator = concept.NewValidator(comp.Lexicon)
	return comp, nil
}

// NewPipeline wires the loaded components into a pipeline. Statement
// objects are split with the objects-domain expander.
func (c *Components) NewPipeline(logger *slog.Logger) *ingest.Pipeline {
	parser := statement.NewParser(statement.Options{
		Lexicon:       c.Lexicon,
		Expander:      c.Expanders[expand.Objects],
		Canonicalizer: ident.New(c.Lexicon),
	})
	return ingest.NewPipeline(ingest.Options{
		Lexicon:   c.Lexicon,
		Verbs:     c.VerbSet,
		Parser:    parser,
		Expanders: c.Expanders,
		Validator: c.Validator,
		Logger:    logger,
	})
}

// buildPreset applies domain overrides. Process titles always get the
// verb vocabulary so "Repair and maintain X" shares its object.
func buildPreset(domain expand.Domain, comp *Components, d DomainConfig) expand.Config {
	preset := expand.Preset(domain, comp.Lexicon)
	if d.MaxModifierWords > 0 {
		preset.MaxModifierWords = d.MaxModifierWords
	}
	if d.MaxListWords > 0 {
		preset.MaxListWords = d.MaxListWords
	}
	if d.MaxSlashWords > 0 {
		preset.MaxSlashWords = d.MaxSlashWords
	}
	if d.MaxSuffixSegmentWords > 0 {
		preset.MaxSuffixSegmentWords = d.MaxSuffixSegmentWords
	}
	if d.UseVerbs || domain == expand.Processes {
		preset.Verbs = comp.Verbs
	}
	return preset
}

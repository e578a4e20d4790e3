package expand

import "github.com/cognicore/bizonto/pkg/bizonto/lexicon"

// Domain names a family of source phrases with its own suffix vocabulary
// and length thresholds.
type Domain string

const (
	Roles      Domain = "roles"
	Industries Domain = "industries"
	Products   Domain = "products"
	Services   Domain = "services"
	Processes  Domain = "processes"
	Objects    Domain = "objects"
)

// Domains lists every built-in preset.
var Domains = []Domain{Roles, Industries, Products, Services, Processes, Objects}

// VerbSet answers whether a lowercase word is a known base verb.
type VerbSet interface {
	Contains(word string) bool
}

// Config parameterizes one expander. The thresholds were tuned against
// NAICS/ONET titles and are word counts per produced segment; a rule whose
// output would exceed its threshold does not fire.
type Config struct {
	Domain Domain

	// Suffixes is the common-suffix vocabulary ("Supervisors", "Manufacturing").
	Suffixes []string

	// MaxModifierWords bounds each alternative in a " - " modifier group.
	MaxModifierWords int
	// MaxListWords bounds each item of a comma list or plain and/or split.
	MaxListWords int
	// MaxSlashWords bounds each slash alternative after prefix/suffix removal.
	MaxSlashWords int
	// MaxSuffixSegmentWords bounds each coordinated segment before a shared suffix.
	MaxSuffixSegmentWords int

	// Verbs recognizes coordinated verbs ("Repair and maintain X"). When nil,
	// only "-ing" words whose base form is in the default vocabulary are
	// treated as verbs.
	Verbs VerbSet
}

const (
	defaultMaxModifierWords      = 4
	defaultMaxListWords          = 4
	defaultMaxSlashWords         = 3
	defaultMaxSuffixSegmentWords = 3
)

// Preset returns the configuration for a domain using the suffix vocabulary
// from lex (nil lex uses the built-in tables).
func Preset(domain Domain, lex *lexicon.Lexicon) Config {
	if lex == nil {
		lex = lexicon.Default()
	}
	cfg := Config{
		Domain:                domain,
		Suffixes:              lex.Suffixes(string(domain)),
		MaxModifierWords:      defaultMaxModifierWords,
		MaxListWords:          defaultMaxListWords,
		MaxSlashWords:         defaultMaxSlashWords,
		MaxSuffixSegmentWords: defaultMaxSuffixSegmentWords,
	}
	if domain == Products {
		cfg.MaxListWords = 3
	}
	return cfg
}

func (c Config) withDefaults() Config {
	if c.MaxModifierWords <= 0 {
		c.MaxModifierWords = defaultMaxModifierWords
	}
	if c.MaxListWords <= 0 {
		c.MaxListWords = defaultMaxListWords
	}
	if c.MaxSlashWords <= 0 {
		c.MaxSlashWords = defaultMaxSlashWords
	}
	if c.MaxSuffixSegmentWords <= 0 {
		c.MaxSuffixSegmentWords = defaultMaxSuffixSegmentWords
	}
	return c
}

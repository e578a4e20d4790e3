package expand

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cognicore/bizonto/pkg/bizonto/verbs"
)

func preset(d Domain) *Expander {
	return New(Preset(d, nil))
}

func TestExpandRules(t *testing.T) {
	tests := []struct {
		name   string
		domain Domain
		in     string
		rule   string
		want   []string
	}{
		{
			name:   "hyphen modifier with slash alternatives",
			domain: Products,
			in:     "Vegetables (Non Leaf) - Unprepared/Unprocessed (Fresh)",
			rule:   RuleHyphen,
			want:   []string{"Vegetables Non Leaf Unprepared", "Vegetables Non Leaf Unprocessed"},
		},
		{
			name:   "hyphen cartesian over sections",
			domain: Products,
			in:     "Fish - Fresh/Frozen - Whole/Filleted",
			rule:   RuleHyphen,
			want:   []string{"Fish Fresh Whole", "Fish Fresh Filleted", "Fish Frozen Whole", "Fish Frozen Filleted"},
		},
		{
			name:   "gerund coordination shares the object",
			domain: Processes,
			in:     "Repairing and Maintaining Mechanical Equipment",
			rule:   RuleVerbCoordination,
			want:   []string{"Repairing Mechanical Equipment", "Maintaining Mechanical Equipment"},
		},
		{
			name:   "gerund list",
			domain: Processes,
			in:     "Planning, Organizing, and Directing Work",
			rule:   RuleVerbCoordination,
			want:   []string{"Planning Work", "Organizing Work", "Directing Work"},
		},
		{
			name:   "comma list",
			domain: Products,
			in:     "Cattle, Sheep, and Goats",
			rule:   RuleCommaList,
			want:   []string{"Cattle", "Sheep", "Goats"},
		},
		{
			name:   "comma list without oxford comma",
			domain: Roles,
			in:     "Actors, Producers and Directors",
			rule:   RuleCommaList,
			want:   []string{"Actors", "Producers", "Directors"},
		},
		{
			name:   "slash with shared suffix",
			domain: Products,
			in:     "Meat/Poultry/Other Animals Unprocessed",
			rule:   RuleSlash,
			want:   []string{"Meat Unprocessed", "Poultry Unprocessed", "Other Animals Unprocessed"},
		},
		{
			name:   "slash with shared prefix",
			domain: Roles,
			in:     "Sales Manager/Director",
			rule:   RuleSlash,
			want:   []string{"Sales Manager", "Sales Director"},
		},
		{
			name:   "comma list defers to shared suffix",
			domain: Roles,
			in:     "Farm, Ranch, and Aquaculture Supervisors",
			rule:   RuleSharedSuffix,
			want:   []string{"Farm Supervisors", "Ranch Supervisors", "Aquaculture Supervisors"},
		},
		{
			name:   "and with shared suffix",
			domain: Industries,
			in:     "Oil and Gas Extraction",
			rule:   RuleSharedSuffix,
			want:   []string{"Oil Extraction", "Gas Extraction"},
		},
		{
			name:   "duplicated suffix is not doubled",
			domain: Industries,
			in:     "Oil Manufacturing and Gas Manufacturing",
			rule:   RuleSharedSuffix,
			want:   []string{"Oil Manufacturing", "Gas Manufacturing"},
		},
		{
			name:   "multi-word suffix wins over its tail",
			domain: Industries,
			in:     "Lumber and Plywood Merchant Wholesalers",
			rule:   RuleSharedSuffix,
			want:   []string{"Lumber Merchant Wholesalers", "Plywood Merchant Wholesalers"},
		},
		{
			name:   "repeated -ing noun is not verb coordination",
			domain: Industries,
			in:     "Clothing and Clothing Accessories Stores",
			rule:   RuleSharedSuffix,
			want:   []string{"Clothing Stores", "Clothing Accessories Stores"},
		},
		{
			name:   "-ing noun outside the verb vocabulary",
			domain: Industries,
			in:     "Housing and Housing Finance Agencies",
			rule:   RuleSharedSuffix,
			want:   []string{"Housing Agencies", "Housing Finance Agencies"},
		},
		{
			name:   "qualifier is not a list item",
			domain: Roles,
			in:     "Wholesale and Retail Buyers, Except Farm Products",
			rule:   RuleFallback,
			want:   []string{"Wholesale and Retail Buyers, Except Farm Products"},
		},
		{
			name:   "no coordination",
			domain: Roles,
			in:     "Chief Executives",
			rule:   RuleFallback,
			want:   []string{"Chief Executives"},
		},
		{
			name:   "unknown suffix is not distributed",
			domain: Roles,
			in:     "Chief Executives and Legislators",
			rule:   RuleFallback,
			want:   []string{"Chief Executives and Legislators"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule, got := preset(tt.domain).Explain(tt.in)
			assert.Equal(t, tt.rule, rule)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExpandSuppressesLongSegments(t *testing.T) {
	e := preset(Roles)

	// Last comma item has five words: the list is left intact.
	in := "Plan, direct, or coordinate the operations of public or private sector organizations"
	rule, got := e.Explain(in)
	assert.Equal(t, RuleFallback, rule)
	assert.Equal(t, []string{in}, got)

	// Segment before the suffix exceeds the threshold.
	in = "Heating Ventilation Air Conditioning and Farm Supervisors"
	rule, got = e.Explain(in)
	assert.Equal(t, RuleFallback, rule)
	assert.Equal(t, []string{in}, got)
}

func TestExpandVerbCoordinationNeedsObject(t *testing.T) {
	e := preset(Industries)
	assert.Equal(t, []string{"Mining and Logging"}, e.Expand("Mining and Logging"))

	// "Grounds" breaks the verb run, so this is not verb coordination.
	rule, _ := e.Explain("Building and Grounds Cleaning")
	assert.NotEqual(t, RuleVerbCoordination, rule)
}

func TestExpandImperativeWithVocabulary(t *testing.T) {
	cfg := Preset(Processes, nil)
	cfg.Verbs = verbs.Default()
	e := New(cfg)

	got := e.Expand("Review and approve budget changes")
	assert.Equal(t, []string{"Review budget changes", "approve budget changes"}, got)

	got = e.Expand("Repairing and Maintaining Mechanical Equipment")
	assert.Equal(t, []string{"Repairing Mechanical Equipment", "Maintaining Mechanical Equipment"}, got)
}

func TestExpandEmptyAndWhitespace(t *testing.T) {
	e := preset(Products)
	assert.Nil(t, e.Expand(""))
	assert.Nil(t, e.Expand("   "))
	assert.Equal(t, []string{"Sugar Cane"}, e.Expand("  Sugar   Cane "))
}

func TestExpandAndOrTreatedAsOr(t *testing.T) {
	e := preset(Objects)
	assert.Equal(t, []string{"budgets", "forecasts"}, e.ExpandCoordination("budgets and/or forecasts"))
}

func TestExpandCoordination(t *testing.T) {
	e := preset(Objects)

	tests := []struct {
		in   string
		want []string
	}{
		{"financial activities", []string{"financial activities"}},
		{"budgets and forecasts", []string{"budgets", "forecasts"}},
		{"research and development activities", []string{"research activities", "development activities"}},
		{"invoices, receipts, and statements", []string{"invoices", "receipts", "statements"}},
		{"", nil},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, e.ExpandCoordination(tt.in), "ExpandCoordination(%q)", tt.in)
	}
}

func TestExpandDeduplicatesVariants(t *testing.T) {
	e := preset(Products)
	assert.Equal(t, []string{"Apples", "Pears"}, e.Expand("Apples, Pears, and apples"))
}

func TestPresetThresholds(t *testing.T) {
	p := Preset(Products, nil)
	assert.Equal(t, 3, p.MaxListWords)
	assert.Contains(t, p.Suffixes, "Unprocessed")

	r := Preset(Roles, nil)
	assert.Equal(t, 4, r.MaxListWords)
	assert.Equal(t, 3, r.MaxSlashWords)
	assert.Equal(t, 3, r.MaxSuffixSegmentWords)
	assert.Equal(t, 4, r.MaxModifierWords)

	zero := New(Config{}).Config()
	assert.Equal(t, 4, zero.MaxListWords)
}

package lexicon

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLexiconNew(t *testing.T) {
	lex := New()
	if lex == nil {
		t.Fatal("New() returned nil")
	}

	stats := lex.Stats()
	if stats.Acronyms != 0 || stats.Domains != 0 {
		t.Errorf("New lexicon should be empty, got %+v", stats)
	}
}

func TestAcronymCanonicalSpelling(t *testing.T) {
	lex := New()
	lex.AddAcronym("SaaS")
	lex.AddAcronym("ERP")

	tests := []struct {
		input string
		want  string
		ok    bool
	}{
		{"saas", "SaaS", true},
		{"SAAS", "SaaS", true},
		{"erp", "ERP", true},
		{"crm", "", false},
	}
	for _, tt := range tests {
		got, ok := lex.Acronym(tt.input)
		if got != tt.want || ok != tt.ok {
			t.Errorf("Acronym(%q) = (%q, %v), want (%q, %v)", tt.input, got, ok, tt.want, tt.ok)
		}
	}
}

func TestDefaultTables(t *testing.T) {
	lex := Default()

	if !lex.IsPreposition("to") || !lex.IsPreposition("Using") {
		t.Error("expected to/using in preposition set")
	}
	if lex.IsPreposition("operations") {
		t.Error("operations is not a preposition")
	}
	if !lex.IsStopword("the") {
		t.Error("expected 'the' to be a stopword")
	}
	if !lex.IsConjunction("and") || !lex.IsConjunction("OR") {
		t.Error("expected and/or to be conjunctions")
	}
	if !lex.IsCommonVerb("ensure") {
		t.Error("expected 'ensure' in common verbs")
	}
	if got, ok := lex.Acronym("it"); !ok || got != "IT" {
		t.Errorf("Acronym(it) = %q, want IT", got)
	}
}

func TestSuffixesLongestFirst(t *testing.T) {
	lex := New()
	lex.AddSuffixes("Industries", []string{"Wholesalers", "Merchant Wholesalers", "wholesalers", "  "})

	got := lex.Suffixes("industries")
	if len(got) != 2 {
		t.Fatalf("Suffixes() = %v, want 2 entries", got)
	}
	if got[0] != "Merchant Wholesalers" {
		t.Errorf("first suffix = %q, want the two-word phrase", got[0])
	}

	// Returned slice is a copy.
	got[0] = "mutated"
	if lex.Suffixes("industries")[0] != "Merchant Wholesalers" {
		t.Error("Suffixes() exposed internal storage")
	}

	if lex.Suffixes("unknown") != nil {
		t.Error("unknown domain should return nil")
	}
}

func TestDomains(t *testing.T) {
	lex := Default()
	domains := lex.Domains()
	want := []string{"industries", "objects", "processes", "products", "roles", "services"}
	if len(domains) != len(want) {
		t.Fatalf("Domains() = %v, want %v", domains, want)
	}
	for i := range want {
		if domains[i] != want[i] {
			t.Errorf("Domains()[%d] = %q, want %q", i, domains[i], want[i])
		}
	}
}

func TestLoadFromYAML(t *testing.T) {
	tmpDir := t.TempDir()
	yamlPath := filepath.Join(tmpDir, "lexicon.yaml")

	yamlContent := `acronyms:
  - NAICS
  - ONET
stopwords:
  - etc
prepositions:
  - amid
common_verbs:
  - oversee
suffixes:
  roles:
    - Stewards
    - Supervisors
  tasks:
    - Reviews
`
	if err := os.WriteFile(yamlPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("Failed to write test YAML: %v", err)
	}

	lex, err := LoadFromYAML(yamlPath)
	if err != nil {
		t.Fatalf("LoadFromYAML failed: %v", err)
	}

	if got, ok := lex.Acronym("naics"); !ok || got != "NAICS" {
		t.Errorf("Acronym(naics) = %q, want NAICS", got)
	}
	// Defaults survive the overlay.
	if _, ok := lex.Acronym("erp"); !ok {
		t.Error("overlay dropped built-in acronym ERP")
	}
	if !lex.IsStopword("etc") || !lex.IsStopword("the") {
		t.Error("stopwords were not merged")
	}
	if !lex.IsPreposition("amid") {
		t.Error("preposition overlay not applied")
	}
	if !lex.IsCommonVerb("oversee") {
		t.Error("common verb overlay not applied")
	}

	roles := lex.Suffixes("roles")
	count := 0
	for _, s := range roles {
		if s == "Supervisors" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("Supervisors appears %d times, want 1", count)
	}
	if got := lex.Suffixes("tasks"); len(got) != 1 || got[0] != "Reviews" {
		t.Errorf("Suffixes(tasks) = %v", got)
	}
}

func TestLoadFromYAMLErrors(t *testing.T) {
	if _, err := LoadFromYAML(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("acronyms: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFromYAML(bad); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

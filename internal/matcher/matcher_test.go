package matcher

import "testing"

func renderString(s *string) string { return *s }

func TestFuzzyMatchSmartCase(t *testing.T) {
	indices, ok := fuzzyMatch("abc", "xaybzc", Config{})
	if !ok {
		t.Fatal("expected a match")
	}
	want := []int{1, 3, 5}
	if len(indices) != len(want) {
		t.Fatalf("indices = %v, want %v", indices, want)
	}
	for i := range want {
		if indices[i] != want[i] {
			t.Fatalf("indices = %v, want %v", indices, want)
		}
	}
}

func TestFuzzyMatchNoMatch(t *testing.T) {
	if _, ok := fuzzyMatch("xyz", "abc", Config{}); ok {
		t.Fatal("expected no match")
	}
}

func TestFuzzyMatchCaseSensitiveWhenUppercaseInQuery(t *testing.T) {
	if _, ok := fuzzyMatch("ABC", "abc", Config{}); ok {
		t.Fatal("uppercase query should not match lowercase text")
	}
	if _, ok := fuzzyMatch("ABC", "ABCDEF", Config{}); !ok {
		t.Fatal("uppercase query should match exact-case text")
	}
}

func TestFuzzyMatchCaseRespectIgnoresQueryCase(t *testing.T) {
	if _, ok := fuzzyMatch("abc", "ABC", Config{CaseMatching: CaseRespect}); ok {
		t.Fatal("CaseRespect should not fold case even for a lowercase query")
	}
}

func TestFuzzyMatchCaseIgnoreAlwaysFolds(t *testing.T) {
	if _, ok := fuzzyMatch("ABC", "abc", Config{CaseMatching: CaseIgnore}); !ok {
		t.Fatal("CaseIgnore should match regardless of case")
	}
}

func TestFuzzyMatchNormalizationSmartFoldsAccents(t *testing.T) {
	if _, ok := fuzzyMatch("cafe", "café", Config{}); !ok {
		t.Fatal("expected accent-folded match under NormalizationSmart")
	}
}

func TestFuzzyMatchNormalizationNeverRequiresExactAccent(t *testing.T) {
	if _, ok := fuzzyMatch("cafe", "café", Config{Normalization: NormalizationNever}); ok {
		t.Fatal("NormalizationNever should not fold accents")
	}
}

func TestFuzzyMatchNormalizationSmartSkipsFoldingForAccentedQuery(t *testing.T) {
	if _, ok := fuzzyMatch("café", "cafe", Config{}); ok {
		t.Fatal("an accented query should be treated as intentional and not matched against plain ASCII")
	}
}

func TestMatcherTickIsIncremental(t *testing.T) {
	m := New(renderString, Config{})
	items := []string{"apple", "banana", "cherry", "date"}
	for i := range items {
		m.Push(&items[i])
	}
	m.SetQuery("a")

	settled := m.Tick(2)
	if settled {
		t.Fatal("expected not settled after partial tick")
	}
	if got := len(m.Snapshot()); got == 0 {
		t.Fatal("expected at least one match from the first two items")
	}

	settled = m.Tick(10)
	if !settled {
		t.Fatal("expected settled after draining remaining items")
	}
	snap := m.Snapshot()
	if len(snap) != 3 { // apple, banana, date contain 'a'; cherry does not
		t.Fatalf("snapshot len = %d, want 3: %+v", len(snap), snap)
	}
}

func TestMatcherSetQueryResetsProgress(t *testing.T) {
	m := New(renderString, Config{})
	items := []string{"alpha", "beta"}
	for i := range items {
		m.Push(&items[i])
	}
	m.SetQuery("a")
	m.Tick(10)
	if len(m.Snapshot()) != 2 {
		t.Fatalf("expected both items to match 'a'")
	}

	if !m.SetQuery("beta") {
		t.Fatal("expected query change to report true")
	}
	m.Tick(10)
	snap := m.Snapshot()
	if len(snap) != 1 || snap[0].Rendered != "beta" {
		t.Fatalf("snapshot = %+v, want exactly [beta]", snap)
	}
}

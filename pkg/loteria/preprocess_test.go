package loteria

import "testing"

func TestPreprocessNormalizesLineEndings(t *testing.T) {
	cfg := NewDefaultConfig()
	out, err := Preprocess("05 10 con 20\r\n\r\n\r\nTotal: 40", cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if containsCRLF(out) {
		t.Errorf("expected no CR in output, got %q", out)
	}
}

func containsCRLF(s string) bool {
	for _, r := range s {
		if r == '\r' {
			return true
		}
	}
	return false
}

func TestPreprocessRetainsAccentedNameLetters(t *testing.T) {
	cfg := NewDefaultConfig()
	out, err := Preprocess("Andrés\n05 10 con 20", cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !contains(out, "Andrés") {
		t.Errorf("expected accented name to survive final cleanup, got %q", out)
	}
}

func TestPreprocessKeepsPlainNameIntact(t *testing.T) {
	cfg := NewDefaultConfig()
	out, err := Preprocess("Juan\n05 10 con 20\nTotal: 40", cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !contains(out, "Juan") {
		t.Errorf("expected player name Juan to survive preprocessing, got %q", out)
	}
}

func contains(s, sub string) bool {
	return len(s) >= len(sub) && indexOf(s, sub) >= 0
}

func indexOf(s, sub string) int {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return i
		}
	}
	return -1
}

func TestPreprocessIsIdempotent(t *testing.T) {
	cfg := NewDefaultConfig()
	inputs := []string{
		"Juan\n05 10 con 20\nTotal: 40",
		"05 10 con $20,5 pesos",
		"10 v con 5",
	}
	for _, in := range inputs {
		once, err := Preprocess(in, cfg)
		if err != nil {
			t.Fatalf("Preprocess(%q): %v", in, err)
		}
		twice, err := Preprocess(once, cfg)
		if err != nil {
			t.Fatalf("Preprocess(Preprocess(%q)): %v", in, err)
		}
		if once != twice {
			t.Errorf("preprocessing not idempotent for %q: %q vs %q", in, once, twice)
		}
	}
}

func TestNormalizeMonetaryStripsCurrencySymbolsAndTrailingUnit(t *testing.T) {
	out := normalizeMonetary("05 10 con $20 pesos", ".")
	if contains(out, "$") || contains(out, "pesos") {
		t.Errorf("expected currency symbol and unit word stripped, got %q", out)
	}
}

func TestLooksLikeNameRejectsReservedWords(t *testing.T) {
	if looksLikeName("con total", 0.6) {
		t.Error("expected reserved-word line to not look like a name")
	}
}

func TestLooksLikeNameRejectsDigitStart(t *testing.T) {
	if looksLikeName("05 10 con 20", 0.6) {
		t.Error("expected digit-leading line to not look like a name")
	}
}

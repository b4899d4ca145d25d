package loteria

import (
	"reflect"
	"testing"
)

func TestExpandVolteo(t *testing.T) {
	got, err := ExpandVolteo("10")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"10", "01"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExpandVolteo(10) = %v, want %v", got, want)
	}
}

func TestExpandVolteoNonNumeric(t *testing.T) {
	if _, err := ExpandVolteo("ab"); err == nil {
		t.Error("expected an error for a non-numeric volteo base")
	}
}

func TestExpandRangoSwapsOutOfOrderBounds(t *testing.T) {
	got, err := ExpandRango("05", "03")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"03", "04", "05"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExpandRango(05,03) = %v, want %v", got, want)
	}
}

func TestExpandDecena(t *testing.T) {
	got := ExpandDecena(0)
	want := []string{"00", "10", "20", "30", "40", "50", "60", "70", "80", "90"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExpandDecena(0) = %v, want %v", got, want)
	}
}

func TestExpandTerminal(t *testing.T) {
	got := ExpandTerminal(5)
	want := []string{"50", "51", "52", "53", "54", "55", "56", "57", "58", "59"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExpandTerminal(5) = %v, want %v", got, want)
	}
}

func TestExpandParesRelativosCapsAtMax(t *testing.T) {
	got, err := ExpandParesRelativos("10", 500)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != MaxParesRelativos {
		t.Fatalf("expected %d entries, got %d", MaxParesRelativos, len(got))
	}
	if got[0] != "1001" {
		t.Errorf("expected first entry 1001, got %s", got[0])
	}
}

func TestExpandCentenasTodas(t *testing.T) {
	got := ExpandCentenasTodas([]string{"05"})
	if len(got) != 10 {
		t.Fatalf("expected 10 entries, got %d", len(got))
	}
	if got[0] != "005" || got[9] != "905" {
		t.Errorf("unexpected boundary values: first=%s last=%s", got[0], got[9])
	}
}

func TestExpandRepeticion(t *testing.T) {
	got := ExpandRepeticion(3, "05")
	want := []string{"05", "05", "05"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExpandRepeticion(3,05) = %v, want %v", got, want)
	}
}

func TestSplitFourDigit(t *testing.T) {
	a, b := SplitFourDigit("1234")
	if a != "12" || b != "34" {
		t.Errorf("SplitFourDigit(1234) = (%s, %s), want (12, 34)", a, b)
	}
}

func TestCapNumbersRejectsOverCap(t *testing.T) {
	if err := capNumbers("tok", 101, 100); err == nil {
		t.Error("expected an ExpansionError when count exceeds cap")
	}
}

func TestCapNumbersAllowsZeroCapAsUnbounded(t *testing.T) {
	if err := capNumbers("tok", 100000, 0); err != nil {
		t.Errorf("expected zero cap to mean unbounded, got error %v", err)
	}
}

func TestExpandInPlaceRewritesVolteo(t *testing.T) {
	got, err := ExpandInPlace("10v con 5", 1000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "10 01 con 5" {
		t.Errorf("ExpandInPlace = %q, want \"10 01 con 5\"", got)
	}
}

func TestExpandInPlaceKeepsCentenasTodasStake(t *testing.T) {
	got, err := ExpandInPlace("05 por todas las centenas con 2", 1000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !containsSub(got, "905") || !containsSub(got, "con 2") {
		t.Errorf("expected expanded centenas and the stake clause preserved, got %q", got)
	}
}

func containsSub(s, sub string) bool {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return true
		}
	}
	return false
}

func TestExpandInPlaceRejectsOverCapExpansion(t *testing.T) {
	if _, err := ExpandInPlace("10 pr 100", 50); err == nil {
		t.Error("expected an ExpansionError when the expansion exceeds the cap")
	}
}

func TestNormalizeShorthandSpacingTightensVolteo(t *testing.T) {
	got := normalizeShorthandSpacing("10 v con 5")
	if got != "10v con 5" {
		t.Errorf("normalizeShorthandSpacing(\"10 v con 5\") = %q, want \"10v con 5\"", got)
	}
}

package loteria

import "testing"

func TestValidateSyntaxErrorsOnLineWithNoNumbers(t *testing.T) {
	result := ValidateSyntax("con")
	if result.Valid {
		t.Error("expected a line with no bet numbers to be invalid")
	}
}

func TestValidateSyntaxAcceptsShorthandOnlyLine(t *testing.T) {
	result := ValidateSyntax("d0 con 5")
	if len(result.Errors) != 0 {
		t.Errorf("expected a shorthand-only line to produce no errors, got %v", result.Errors)
	}
}

func TestValidateSyntaxWarnsOnMissingAmount(t *testing.T) {
	result := ValidateSyntax("05 10")
	if len(result.Warnings) == 0 {
		t.Error("expected a warning for a bet line with no declared amount")
	}
}

func TestValidateSyntaxWarnsOnDuplicateNumbers(t *testing.T) {
	result := ValidateSyntax("05 05 con 20")
	found := false
	for _, w := range result.Warnings {
		if w != "" {
			found = true
		}
	}
	if !found {
		t.Error("expected at least one warning for the duplicated number")
	}
}

func TestValidateSyntaxSkipsNameAndTotalLines(t *testing.T) {
	result := ValidateSyntax("Juan\n05 10 con 20\nTotal: 40")
	if !result.Valid {
		t.Errorf("expected a well-formed ticket to validate cleanly, got errors: %v", result.Errors)
	}
}

func TestValidateGlobalWarnsOnMultipleTotalLines(t *testing.T) {
	cfg := NewDefaultConfig()
	blocks := []BlockInfo{{
		PlayerName: "Desconocido",
		Lines:      []string{"Total: 40", "Total: 50"},
	}}
	result := validateGlobal(blocks, cfg, nil)
	if len(result.Warnings) == 0 {
		t.Error("expected a warning for multiple total-lines in one block")
	}
}

func TestValidateGlobalErrorsOnTooManyJugadores(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.MaxJugadores = 1
	blocks := []BlockInfo{{PlayerName: "a"}, {PlayerName: "b"}}
	result := validateGlobal(blocks, cfg, nil)
	if result.Valid {
		t.Error("expected exceeding max_jugadores to invalidate the global result")
	}
}

func TestValidateGlobalWarnsOnUnclassifiedLines(t *testing.T) {
	cfg := NewDefaultConfig()
	result := validateGlobal(nil, cfg, []int{3})
	if len(result.Warnings) == 0 {
		t.Error("expected a warning for an unclassified line")
	}
}

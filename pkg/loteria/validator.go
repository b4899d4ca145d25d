package loteria

import (
	"fmt"
	"strings"

	"github.com/lediergzl/loteria-parser/pkg/loteriabet"
)

// ValidationResult is the output of both the pre-parse syntax check and
// the post-parse global checks that fold jugada-level validation in.
type ValidationResult struct {
	Valid    bool
	Errors   []string
	Warnings []string
}

func (v *ValidationResult) addError(format string, args ...interface{}) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
	v.Valid = false
}

func (v *ValidationResult) addWarning(format string, args ...interface{}) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}

// ValidateSyntax is the cheap, pre-parse line classification pass: it
// never expands shorthand or computes amounts, only looks at each
// line's shape.
func ValidateSyntax(text string) ValidationResult {
	result := ValidationResult{Valid: true}
	lines := strings.Split(text, "\n")

	for i, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		lineNo := i + 1

		if isTotalLine(line) || looksLikeName(line, 0.6) {
			continue
		}

		hasShorthand := Patterns.Volteo.MatchString(line) || Patterns.Rango.MatchString(line) ||
			Patterns.Decena.MatchString(line) || Patterns.Terminal.MatchString(line) ||
			Patterns.ParesRelativos.MatchString(line) || Patterns.CentenasTodas.MatchString(line) ||
			Patterns.ParleExplicito.MatchString(line) || Patterns.ParleInline.MatchString(line) ||
			Patterns.Candado.MatchString(line)

		// Shorthand like "d0" or "t5" carries no 2-digit literal of its
		// own, so the missing-numbers error only applies to lines with
		// neither a literal nor a shorthand token.
		hasNumber := Patterns.Number2or3.MatchString(line) || Patterns.Number4.MatchString(line)
		if !hasNumber && !hasShorthand {
			result.addError("line %d: no recognizable bet numbers", lineNo)
			continue
		}

		fc := Patterns.ConClause.FindStringSubmatch(line)
		if fc == nil && !hasShorthand {
			result.addWarning("line %d: no declared amount, default stake will apply", lineNo)
		} else if fc != nil && fc[1] != "" {
			if mustDecimal(fc[1]).IsZero() {
				result.addWarning("line %d: declared amount is zero", lineNo)
			}
		}

		seen := make(map[string]int)
		for _, n := range harvestNumbers(line, true) {
			seen[n]++
		}
		for n, c := range seen {
			if c > 1 {
				result.addWarning("line %d: number %q repeated %d times", lineNo, n, c)
			}
		}

		for _, n := range harvestNumbers(line, true) {
			if !loteriabet.IsCanonicalNumber(n) {
				result.addError("line %d: %q is out of canonical range for its length", lineNo, n)
			}
		}
	}

	return result
}

// ValidateJugadaResult runs the post-parse jugada checks via loteriabet
// and reshapes them into a ValidationResult.
func ValidateJugadaResult(j loteriabet.Jugada, cfg *Config) ValidationResult {
	dv := loteriabet.ValidateJugada(j, cfg.AllowNegative, cfg.MaxMonto, cfg.ValidateTotals)
	result := ValidationResult{Valid: len(dv.Errors) == 0, Errors: dv.Errors, Warnings: dv.Warnings}
	return result
}

// validateGlobal runs checks across an entire parse: jugador count,
// multiple total-lines per block, unclassified lines.
func validateGlobal(blocks []BlockInfo, cfg *Config, unclassifiedLines []int) ValidationResult {
	result := ValidationResult{Valid: true}

	if len(blocks) > cfg.MaxJugadores {
		result.addError("jugador count %d exceeds max_jugadores %d", len(blocks), cfg.MaxJugadores)
	}

	for _, b := range blocks {
		totalCount := 0
		for _, line := range b.Lines {
			if isTotalLine(line) {
				totalCount++
			}
		}
		if totalCount > 1 {
			result.addWarning("player %q has %d total-lines, using the first", b.PlayerName, totalCount)
		}
	}

	for _, lineNo := range unclassifiedLines {
		result.addWarning("line %d: no recognizer claimed this line", lineNo)
	}

	return result
}

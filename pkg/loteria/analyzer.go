package loteria

import "github.com/lediergzl/loteria-parser/pkg/loteriabet"

// AnalysisResult is the Analyzer's output: diagnostics that Parse appends
// to ParseResult.Metadata.Warnings but are never required for a
// successful parse.
type AnalysisResult struct {
	ComplexityScores map[string]float64 // player name -> score
	NumberFrequency  map[string]int
	PatternCoverage  map[string]bool
	Diagnostics      []string
}

// complexityScore derives a single summary number from a jugada's shape:
// distinct pattern types used, detail count, and number count, each
// weighted.
func complexityScore(j loteriabet.Jugada) float64 {
	patterns := make(map[loteriabet.PatternType]struct{})
	numbers := 0
	for _, d := range j.Details {
		numbers += len(d.Numbers)
		if d.Expansion != nil {
			patterns[d.Expansion.PatternType] = struct{}{}
		}
	}
	return float64(len(patterns))*2 + float64(len(j.Details))*1 + float64(numbers)*0.1
}

// Analyze computes complexity scores, a number-frequency distribution,
// and pattern coverage across a set of jugadas, plus diagnostics such
// as "no special patterns used despite volteo-shaped tokens present".
func Analyze(jugadas []loteriabet.Jugada) AnalysisResult {
	result := AnalysisResult{
		ComplexityScores: make(map[string]float64),
		NumberFrequency:  make(map[string]int),
		PatternCoverage:  make(map[string]bool),
	}

	for _, kind := range []loteriabet.BetKind{
		loteriabet.Fijo, loteriabet.Corrido, loteriabet.Parle,
		loteriabet.Centena, loteriabet.Candado, loteriabet.Especial,
	} {
		result.PatternCoverage[kind.String()] = false
	}

	for _, j := range jugadas {
		result.ComplexityScores[j.PlayerName] = complexityScore(j)
		for _, d := range j.Details {
			result.PatternCoverage[d.Kind.String()] = true
			for _, n := range d.Numbers {
				result.NumberFrequency[n]++
			}
		}
	}

	if !result.PatternCoverage[loteriabet.Especial.String()] {
		volteoShaped := 0
		for _, j := range jugadas {
			for _, line := range j.OriginalLines {
				if Patterns.Volteo.MatchString(line) {
					volteoShaped++
				}
			}
		}
		if volteoShaped > 0 {
			result.Diagnostics = append(result.Diagnostics,
				"no special patterns used despite volteo-shaped tokens present")
		}
	}

	return result
}

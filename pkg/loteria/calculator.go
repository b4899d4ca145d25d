package loteria

import "github.com/lediergzl/loteria-parser/pkg/loteriabet"

// buildSummary recalculates every jugada, aggregates the ParseResult
// summary, and fills in Confidence with the syntax-validation counts the
// loteriabet package doesn't have visibility into.
func buildSummary(jugadas []loteriabet.Jugada, syntaxErrors, syntaxWarnings int) loteriabet.Summary {
	for i := range jugadas {
		jugadas[i].Recalculate()
	}
	summary := loteriabet.ComputeSummary(jugadas)
	summary.Confidence = loteriabet.Confidence(syntaxErrors, syntaxWarnings, jugadas)
	return summary
}

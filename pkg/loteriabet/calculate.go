package loteriabet

import "github.com/shopspring/decimal"

// Tolerance is the |calculated-declared| difference below which a
// reconciliation is treated as exact.
var Tolerance = decimal.NewFromFloat(0.01)

// WarnTolerance is the difference under which a mismatch is a warning
// rather than an error.
var WarnTolerance = decimal.NewFromFloat(1.00)

// AmountFor computes a detail row's amount from its kind, unit amount and
// number/combination count. Candado is not computed here: its amount is
// the declared total_candado itself (see CandadoUnitAmount), not a
// unit×count product.
func AmountFor(kind BetKind, unit decimal.Decimal, numberCount, combinations int) decimal.Decimal {
	switch kind {
	case Parle:
		return unit.Mul(decimal.NewFromInt(int64(combinations)))
	default: // Fijo, Corrido, Centena, Especial
		return unit.Mul(decimal.NewFromInt(int64(numberCount)))
	}
}

// CandadoUnitAmount divides a declared candado total evenly across its
// combinations in decimal arithmetic, rounded to 8 decimal places; the
// result may be non-integer.
func CandadoUnitAmount(total decimal.Decimal, combinations int) decimal.Decimal {
	if combinations <= 0 {
		return decimal.Zero
	}
	return total.DivRound(decimal.NewFromInt(int64(combinations)), 8)
}

// Recalculate sums a Jugada's details into TotalCalculated and sets
// IsValid against TotalDeclared within Tolerance. It is safe to call
// repeatedly; the result is deterministic given the same Details slice.
func (j *Jugada) Recalculate() {
	total := decimal.Zero
	for _, d := range j.Details {
		total = total.Add(d.Amount)
	}
	j.TotalCalculated = total

	if j.TotalDeclared == nil {
		j.IsValid = true
		return
	}
	diff := total.Sub(*j.TotalDeclared).Abs()
	j.IsValid = diff.LessThan(Tolerance)
}

// Difference returns |TotalCalculated - TotalDeclared|, or zero when no
// total was declared.
func (j *Jugada) Difference() decimal.Decimal {
	if j.TotalDeclared == nil {
		return decimal.Zero
	}
	return j.TotalCalculated.Sub(*j.TotalDeclared).Abs()
}

// ComputeSummary aggregates a slice of Jugadas into a ParseResult Summary.
// Confidence is left at zero here; the parser package fills it in once it
// knows the syntax-validation error/warning counts, since those live in a
// different package from Jugada itself.
func ComputeSummary(jugadas []Jugada) Summary {
	s := Summary{TotalJugadas: len(jugadas)}
	calc := decimal.Zero
	declared := decimal.Zero
	anyDeclared := false
	allValid := true

	for _, j := range jugadas {
		calc = calc.Add(j.TotalCalculated)
		if j.TotalDeclared != nil {
			declared = declared.Add(*j.TotalDeclared)
			anyDeclared = true
		}
		if !j.IsValid {
			allValid = false
		}
	}

	s.TotalCalculated = calc
	s.TotalDeclared = declared
	if anyDeclared {
		s.Difference = calc.Sub(declared).Abs()
	} else {
		s.Difference = decimal.Zero
	}
	s.IsValid = allValid
	return s
}

// Confidence scores overall parse quality in [0,1]. syntaxErrors/Warnings
// come from syntax validation; jugadas is the final parsed set.
func Confidence(syntaxErrors, syntaxWarnings int, jugadas []Jugada) float64 {
	score := 1.0
	score -= 0.1 * float64(syntaxErrors)
	score -= 0.05 * float64(syntaxWarnings)

	total := len(jugadas)
	if total > 0 {
		invalid := 0
		exact := 0
		for _, j := range jugadas {
			if !j.IsValid {
				invalid++
			}
			if j.TotalDeclared != nil && j.Difference().IsZero() {
				exact++
			}
		}
		score -= 0.3 * (float64(invalid) / float64(total))
		score += 0.2 * (float64(exact) / float64(total))
	}

	if score < 0 {
		score = 0
	}
	if score > 1 {
		score = 1
	}
	return score
}

// ComputeStats counts detail rows by kind across all Jugadas.
func ComputeStats(jugadas []Jugada) Stats {
	var s Stats
	for _, j := range jugadas {
		for _, d := range j.Details {
			s.TotalApuestas++
			s.TotalNumeros += len(d.Numbers)
			switch d.Kind {
			case Fijo:
				s.Fijos++
			case Corrido:
				s.Corridos++
			case Parle:
				s.Parles++
			case Centena:
				s.Centenas++
			case Candado:
				s.Candados++
			case Especial:
				s.Especiales++
			}
		}
	}
	return s
}

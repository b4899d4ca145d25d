package loteriabet

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// DetalleValidation is the outcome of validating one DetalleApuesta:
// errors are invariant violations, warnings are suspicious-but-legal
// values.
type DetalleValidation struct {
	Errors   []string
	Warnings []string
}

// ValidateDetalle checks one detail row against the domain invariants
// and the per-detalle rules.
func ValidateDetalle(d DetalleApuesta, allowNegative bool, maxMonto decimal.Decimal) DetalleValidation {
	var v DetalleValidation

	if err := d.ValidateShape(); err != nil {
		v.Errors = append(v.Errors, fmt.Sprintf("shape: %s", err.Error()))
	}

	for _, n := range d.Numbers {
		if !IsCanonicalNumber(n) {
			v.Errors = append(v.Errors, fmt.Sprintf("number %q is not canonical (expected 2-3 digits)", n))
			continue
		}
		if d.Kind == Centena && len(n) != 3 {
			v.Errors = append(v.Errors, fmt.Sprintf("centena number %q must have 3 digits", n))
		}
	}

	if seen := make(map[string]int, len(d.Numbers)); true {
		for _, n := range d.Numbers {
			seen[n]++
		}
		for n, c := range seen {
			if c > 1 {
				v.Warnings = append(v.Warnings, fmt.Sprintf("number %q repeated %d times in one line", n, c))
			}
		}
	}

	if (d.Kind == Parle || d.Kind == Candado) && len(d.Numbers) >= 2 {
		want := Combinations(len(d.Numbers))
		if d.Combinations != want {
			v.Errors = append(v.Errors, fmt.Sprintf("%s combinations=%d, expected C(%d,2)=%d", d.Kind, d.Combinations, len(d.Numbers), want))
		}
	}

	if !allowNegative && d.Amount.IsNegative() {
		v.Errors = append(v.Errors, ValidationError{Field: "amount", Message: "negative amount not allowed", Value: d.Amount.String()}.Error())
	}
	if !maxMonto.IsZero() && d.Amount.GreaterThan(maxMonto) {
		v.Warnings = append(v.Warnings, fmt.Sprintf("amount %s exceeds max_monto %s", d.Amount.String(), maxMonto.String()))
	}

	return v
}

// TotalsClassification is the three-way outcome of comparing a Jugada's
// calculated and declared totals: exact, warning-range, or error-range
// mismatch.
type TotalsClassification int

const (
	TotalsExact TotalsClassification = iota
	TotalsWarn
	TotalsError
)

// ClassifyTotals buckets |calculated-declared| into the three ranges the
// Validator reports on. It does not change Jugada.IsValid, which is
// strictly governed by Tolerance per invariant 5.
func ClassifyTotals(j Jugada) TotalsClassification {
	if j.TotalDeclared == nil {
		return TotalsExact
	}
	diff := j.Difference()
	switch {
	case diff.LessThan(Tolerance):
		return TotalsExact
	case diff.LessThan(WarnTolerance):
		return TotalsWarn
	default:
		return TotalsError
	}
}

// ValidateJugada runs per-detalle validation over every detail in j and
// returns the aggregated errors/warnings; it does not mutate j.
func ValidateJugada(j Jugada, allowNegative bool, maxMonto decimal.Decimal, validateTotals bool) DetalleValidation {
	var agg DetalleValidation
	for _, d := range j.Details {
		dv := ValidateDetalle(d, allowNegative, maxMonto)
		agg.Errors = append(agg.Errors, dv.Errors...)
		agg.Warnings = append(agg.Warnings, dv.Warnings...)
	}

	if validateTotals && j.TotalDeclared != nil {
		switch ClassifyTotals(j) {
		case TotalsWarn:
			agg.Warnings = append(agg.Warnings, fmt.Sprintf(
				"total mismatch: calculated %s vs declared %s (diff %s)",
				j.TotalCalculated.String(), j.TotalDeclared.String(), j.Difference().String()))
		case TotalsError:
			agg.Errors = append(agg.Errors, fmt.Sprintf(
				"total mismatch: calculated %s vs declared %s (diff %s)",
				j.TotalCalculated.String(), j.TotalDeclared.String(), j.Difference().String()))
		}
	}

	return agg
}

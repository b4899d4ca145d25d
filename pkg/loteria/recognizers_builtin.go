package loteria

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/lediergzl/loteria-parser/pkg/loteriabet"
)

// builtinRecognizers returns the six built-in recognizers at their
// default priorities: AutoCorrect(100), SpecialPatterns(90), Candado(80),
// Centena(70), Parle(60), BasicBet(50).
func builtinRecognizers() []Recognizer {
	return []Recognizer{
		autoCorrectRecognizer(),
		specialPatternsRecognizer(),
		candadoRecognizer(),
		centenaRecognizer(),
		parleRecognizer(),
		basicBetRecognizer(),
	}
}

// ---- shared helpers -------------------------------------------------

var (
	reConWord    = regexp.MustCompile(`(?i)\bcon\b`)
	reDigitRun   = regexp.MustCompile(`\d+`)
	reHyphenDigs = regexp.MustCompile(`(\d)-(\d)`)
	reYMedia     = regexp.MustCompile(`(?i)(\d+)\s*y\s*media\b`)
	rePesosWord  = regexp.MustCompile(`(?i)\bpesos\b`)
	reParleColon = regexp.MustCompile(`(?i)\bparle\s*:`)
	reParleCon   = regexp.MustCompile(`(?i)\bparle\s*con\s*(\d+(?:\.\d+)?)\b`)
	reParleOrP   = regexp.MustCompile(`(?i)\bparle\b|\bp\d`)
	rePorTodas   = regexp.MustCompile(`(?i)\bpor\s*todas\b`)
)

func beforeKeyword(line string, re *regexp.Regexp) string {
	loc := re.FindStringIndex(line)
	if loc == nil {
		return line
	}
	return line[:loc[0]]
}

// harvestNumbers pulls canonical bet numbers out of a string: 2-digit
// runs as-is, 3-digit runs only when includeLen3 (centena context), and
// 4-digit runs split into two 2-digit numbers at extraction.
func harvestNumbers(s string, includeLen3 bool) []string {
	var out []string
	for _, r := range reDigitRun.FindAllString(s, -1) {
		switch len(r) {
		case 2:
			out = append(out, r)
		case 3:
			if includeLen3 {
				out = append(out, r)
			}
		case 4:
			a, b := SplitFourDigit(r)
			out = append(out, a, b)
		}
	}
	return out
}

// numbersBeforeCon extracts 2-digit (and split-4-digit) bet numbers from
// the portion of the line before the first "con" keyword boundary, so
// amount tokens after "con" are never harvested as bet numbers.
func numbersBeforeCon(line string) []string {
	return harvestNumbers(beforeKeyword(line, reConWord), false)
}

// centenaNumbersBeforeCon is numbersBeforeCon restricted to 3-digit runs.
func centenaNumbersBeforeCon(line string) []string {
	var out []string
	for _, r := range reDigitRun.FindAllString(beforeKeyword(line, reConWord), -1) {
		if len(r) == 3 {
			out = append(out, r)
		}
	}
	return out
}

func mustDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

func lastTwoDigits(centenaNumbers []string) []string {
	out := make([]string, len(centenaNumbers))
	for i, n := range centenaNumbers {
		out[i] = n[1:]
	}
	return out
}

// ---- AutoCorrect (priority 100, pass-through) ------------------------

func autoCorrectRecognizer() Recognizer {
	return Recognizer{
		Name:        "AutoCorrect",
		Priority:    100,
		PassThrough: true,
		CanProcess:  func(ctx *LineContext) bool { return true },
		Process: func(ctx *LineContext) ([]loteriabet.DetalleApuesta, error) {
			line := ctx.Line
			line = reHyphenDigs.ReplaceAllString(line, "$1 $2")
			line = reYMedia.ReplaceAllString(line, "$1.5")
			line = reParleColon.ReplaceAllString(line, "parle con")
			line = rePesosWord.ReplaceAllString(line, "")
			line = trimFields(line)
			ctx.Line = line
			return nil, nil
		},
	}
}

// ---- SpecialPatterns (priority 90) -----------------------------------

func specialPatternsRecognizer() Recognizer {
	return Recognizer{
		Name:     "SpecialPatterns",
		Priority: 90,
		CanProcess: func(ctx *LineContext) bool {
			l := ctx.Line
			return Patterns.Volteo.MatchString(l) ||
				Patterns.Rango.MatchString(l) ||
				Patterns.Decena.MatchString(l) ||
				Patterns.Terminal.MatchString(l) ||
				Patterns.ParesRelativos.MatchString(l) ||
				Patterns.CentenasTodas.MatchString(l)
		},
		Process: processSpecialPatterns,
	}
}

// processSpecialPatterns emits one Especial detail per shorthand match,
// walking the patterns in expansion order: volteo, rango, decena,
// terminal, pares relativos, centenas todas.
func processSpecialPatterns(ctx *LineContext) ([]loteriabet.DetalleApuesta, error) {
	line := ctx.Line

	unit := ctx.DefaultMonto()
	if fc := Patterns.ConClause.FindStringSubmatch(line); fc != nil && fc[1] != "" {
		unit = mustDecimal(fc[1])
	}

	emit := func(token string, numbers []string, ptype loteriabet.PatternType, u decimal.Decimal) loteriabet.DetalleApuesta {
		return loteriabet.DetalleApuesta{
			Kind: loteriabet.Especial, Numbers: numbers, UnitAmount: u,
			Amount:       loteriabet.AmountFor(loteriabet.Especial, u, len(numbers), 0),
			OriginalLine: ctx.OriginalLine, LineNumber: ctx.LineNumber,
			Expansion:    &loteriabet.Expansion{OriginalToken: token, ExpandedList: numbers, PatternType: ptype},
		}
	}

	var details []loteriabet.DetalleApuesta

	for _, m := range Patterns.Volteo.FindAllStringSubmatch(line, -1) {
		nums, err := ExpandVolteo(m[1])
		if err != nil {
			return nil, err
		}
		details = append(details, emit(m[0], nums, loteriabet.Volteo, unit))
	}

	for _, m := range Patterns.Rango.FindAllStringSubmatch(line, -1) {
		nums, err := ExpandRango(m[1], m[2])
		if err != nil {
			return nil, err
		}
		if err := capNumbers(m[0], len(nums), ctx.Config.ExpansionCap); err != nil {
			return nil, err
		}
		details = append(details, emit(m[0], nums, loteriabet.Rango, unit))
	}

	for _, m := range Patterns.Decena.FindAllStringSubmatch(line, -1) {
		x := int(m[1][0] - '0')
		details = append(details, emit(m[0], ExpandDecena(x), loteriabet.Decena, unit))
	}

	for _, m := range Patterns.Terminal.FindAllStringSubmatch(line, -1) {
		x := int(m[1][0] - '0')
		details = append(details, emit(m[0], ExpandTerminal(x), loteriabet.Terminal, unit))
	}

	for _, m := range Patterns.ParesRelativos.FindAllStringSubmatch(line, -1) {
		k := int(mustDecimal(m[2]).IntPart())
		nums4, err := ExpandParesRelativos(m[1], k)
		if err != nil {
			return nil, err
		}
		if err := capNumbers(m[0], len(nums4), ctx.Config.ExpansionCap); err != nil {
			return nil, err
		}
		// Interpretation (documented in DESIGN.md): each 4-digit output is
		// split into two 2-digit canonical numbers at extraction.
		var split []string
		for _, n4 := range nums4 {
			a, b := SplitFourDigit(n4)
			split = append(split, a, b)
		}
		details = append(details, emit(m[0], split, loteriabet.ParesRelativos, unit))
	}

	if m := Patterns.CentenasTodas.FindStringSubmatch(line); m != nil {
		// "10 20 por todas las centenas" expands every 2-digit number
		// before the keyword, not just the one the regex anchors on.
		base := harvestNumbers(beforeKeyword(line, rePorTodas), false)
		if len(base) == 0 {
			base = []string{m[1]}
		}
		nums := ExpandCentenasTodas(base)
		if err := capNumbers(m[0], len(nums), ctx.Config.ExpansionCap); err != nil {
			return nil, err
		}
		u := unit
		if m[2] != "" {
			u = mustDecimal(m[2])
		}
		details = append(details, emit(m[0], nums, loteriabet.CentenasTodas, u))
	}

	lineTotal := 0
	for _, d := range details {
		lineTotal += len(d.Numbers)
	}
	if err := capNumbers(line, lineTotal, ctx.Config.ExpansionCap); err != nil {
		return nil, err
	}

	return details, nil
}

// ---- Candado (priority 80) -------------------------------------------

func candadoRecognizer() Recognizer {
	return Recognizer{
		Name:       "Candado",
		Priority:   80,
		CanProcess: func(ctx *LineContext) bool { return Patterns.Candado.MatchString(ctx.Line) },
		Process: func(ctx *LineContext) ([]loteriabet.DetalleApuesta, error) {
			line := ctx.Line
			total := mustDecimal(Patterns.Candado.FindStringSubmatch(line)[1])
			numbers := numbersBeforeCon(line)
			count := len(numbers)

			// The fijo/corrido prefix must be anchored on "con F [y C]
			// candado", never on the candado's own "candado con M" clause;
			// a bare "05 10 candado con 100" has no prefix stake at all.
			var details []loteriabet.DetalleApuesta
			if fc := Patterns.CandadoPrefix.FindStringSubmatch(line); fc != nil && fc[1] != "" {
				unitF := mustDecimal(fc[1])
				details = append(details, loteriabet.DetalleApuesta{
					Kind: loteriabet.Fijo, Numbers: numbers, UnitAmount: unitF,
					Amount:       loteriabet.AmountFor(loteriabet.Fijo, unitF, count, 0),
					OriginalLine: ctx.OriginalLine, LineNumber: ctx.LineNumber,
				})
				ctx.recordFijo(unitF)

				if fc[2] != "" {
					unitC := mustDecimal(fc[2])
					details = append(details, loteriabet.DetalleApuesta{
						Kind: loteriabet.Corrido, Numbers: numbers, UnitAmount: unitC,
						Amount:       loteriabet.AmountFor(loteriabet.Corrido, unitC, count, 0),
						OriginalLine: ctx.OriginalLine, LineNumber: ctx.LineNumber,
					})
					ctx.recordCorrido(unitC)
				}
			}

			combos := loteriabet.Combinations(count)
			unitCandado := loteriabet.CandadoUnitAmount(total, combos)
			details = append(details, loteriabet.DetalleApuesta{
				Kind: loteriabet.Candado, Numbers: numbers, UnitAmount: unitCandado,
				Amount: total, Combinations: combos, Pairs: loteriabet.AllPairs(numbers),
				OriginalLine: ctx.OriginalLine, LineNumber: ctx.LineNumber,
			})
			return details, nil
		},
	}
}

// ---- Centena (priority 70) -------------------------------------------

var reThreeDigit = regexp.MustCompile(`\b\d{3}\b`)

func centenaRecognizer() Recognizer {
	return Recognizer{
		Name:     "Centena",
		Priority: 70,
		CanProcess: func(ctx *LineContext) bool {
			l := ctx.Line
			if strings.Contains(l, "candado") || strings.Contains(l, "parle") {
				return false
			}
			if Patterns.ParleExplicito.MatchString(l) {
				return false
			}
			if !reThreeDigit.MatchString(beforeKeyword(l, reConWord)) {
				return false
			}
			if Patterns.CentenaCompuesta.MatchString(l) {
				return true
			}
			return Patterns.ConClause.MatchString(l)
		},
		// Note: CentenasTodas could in principle be claimed here too, but
		// SpecialPatterns (priority 90) always matches it first, so that
		// branch is unreachable under the fixed priority order and is
		// intentionally not duplicated here.
		Process: func(ctx *LineContext) ([]loteriabet.DetalleApuesta, error) {
			line := ctx.Line
			numbers := centenaNumbersBeforeCon(line)
			count := len(numbers)

			if composite := Patterns.CentenaCompuesta.FindStringSubmatch(line); composite != nil {
				unitC := mustDecimal(composite[1])
				unitF := mustDecimal(composite[2])
				unitCo := mustDecimal(composite[3])
				lastTwo := lastTwoDigits(numbers)

				ctx.recordFijo(unitF)
				ctx.recordCorrido(unitCo)

				return []loteriabet.DetalleApuesta{
					{Kind: loteriabet.Centena, Numbers: numbers, UnitAmount: unitC,
						Amount: loteriabet.AmountFor(loteriabet.Centena, unitC, count, 0),
						OriginalLine: ctx.OriginalLine, LineNumber: ctx.LineNumber},
					{Kind: loteriabet.Fijo, Numbers: lastTwo, UnitAmount: unitF,
						Amount: loteriabet.AmountFor(loteriabet.Fijo, unitF, count, 0),
						OriginalLine: ctx.OriginalLine, LineNumber: ctx.LineNumber},
					{Kind: loteriabet.Corrido, Numbers: lastTwo, UnitAmount: unitCo,
						Amount: loteriabet.AmountFor(loteriabet.Corrido, unitCo, count, 0),
						OriginalLine: ctx.OriginalLine, LineNumber: ctx.LineNumber},
				}, nil
			}

			unit := ctx.DefaultMonto()
			if fc := Patterns.ConClause.FindStringSubmatch(line); fc != nil && fc[1] != "" {
				unit = mustDecimal(fc[1])
			}
			return []loteriabet.DetalleApuesta{{
				Kind: loteriabet.Centena, Numbers: numbers, UnitAmount: unit,
				Amount:       loteriabet.AmountFor(loteriabet.Centena, unit, count, 0),
				OriginalLine: ctx.OriginalLine, LineNumber: ctx.LineNumber,
			}}, nil
		},
	}
}

// ---- Parle (priority 60) ----------------------------------------------

func parleRecognizer() Recognizer {
	return Recognizer{
		Name:     "Parle",
		Priority: 60,
		CanProcess: func(ctx *LineContext) bool {
			l := ctx.Line
			return Patterns.ParleExplicito.MatchString(l) ||
				Patterns.ParleInline.MatchString(l) ||
				reParleCon.MatchString(l)
		},
		Process: processParle,
	}
}

func processParle(ctx *LineContext) ([]loteriabet.DetalleApuesta, error) {
	line := ctx.Line

	if m := Patterns.ParleExplicito.FindStringSubmatch(line); m != nil {
		a, b := m[1], m[2]
		unit := ctx.DefaultMonto()
		if pc := reParleCon.FindStringSubmatch(line); pc != nil {
			unit = mustDecimal(pc[1])
		} else if fc := Patterns.ConClause.FindStringSubmatch(line); fc != nil && fc[1] != "" {
			unit = mustDecimal(fc[1])
		}
		return []loteriabet.DetalleApuesta{{
			Kind: loteriabet.Parle, Numbers: []string{a, b}, Pairs: []loteriabet.Pair{{A: a, B: b}},
			Combinations: 1, UnitAmount: unit,
			Amount:       loteriabet.AmountFor(loteriabet.Parle, unit, 0, 1),
			OriginalLine: ctx.OriginalLine, LineNumber: ctx.LineNumber,
		}}, nil
	}

	numbers := numbersBeforeCon(line)
	count := len(numbers)
	var details []loteriabet.DetalleApuesta

	if fc := Patterns.ConClause.FindStringSubmatch(beforeKeyword(line, reParleOrP)); fc != nil && fc[1] != "" {
		unitF := mustDecimal(fc[1])
		details = append(details, loteriabet.DetalleApuesta{
			Kind: loteriabet.Fijo, Numbers: numbers, UnitAmount: unitF,
			Amount:       loteriabet.AmountFor(loteriabet.Fijo, unitF, count, 0),
			OriginalLine: ctx.OriginalLine, LineNumber: ctx.LineNumber,
		})
		ctx.recordFijo(unitF)
		if fc[2] != "" {
			unitC := mustDecimal(fc[2])
			details = append(details, loteriabet.DetalleApuesta{
				Kind: loteriabet.Corrido, Numbers: numbers, UnitAmount: unitC,
				Amount:       loteriabet.AmountFor(loteriabet.Corrido, unitC, count, 0),
				OriginalLine: ctx.OriginalLine, LineNumber: ctx.LineNumber,
			})
			ctx.recordCorrido(unitC)
		}
	}

	var parleUnit decimal.Decimal
	switch {
	case reParleCon.MatchString(line):
		parleUnit = mustDecimal(reParleCon.FindStringSubmatch(line)[1])
	case Patterns.ParleInline.MatchString(line):
		parleUnit = mustDecimal(Patterns.ParleInline.FindStringSubmatch(line)[1])
	default:
		parleUnit = ctx.DefaultMonto()
	}

	combos := loteriabet.Combinations(count)
	details = append(details, loteriabet.DetalleApuesta{
		Kind: loteriabet.Parle, Numbers: numbers, Combinations: combos, UnitAmount: parleUnit,
		Amount:       loteriabet.AmountFor(loteriabet.Parle, parleUnit, 0, combos),
		OriginalLine: ctx.OriginalLine, LineNumber: ctx.LineNumber,
	})
	return details, nil
}

// ---- BasicBet (priority 50, fallback) ----------------------------------

func basicBetRecognizer() Recognizer {
	return Recognizer{
		Name:     "BasicBet",
		Priority: 50,
		CanProcess: func(ctx *LineContext) bool {
			return len(genericNumbers(ctx.Line)) > 0
		},
		Process: func(ctx *LineContext) ([]loteriabet.DetalleApuesta, error) {
			line := ctx.Line
			numbers := genericNumbers(line)
			count := len(numbers)

			unit := ctx.DefaultMonto()
			var corridoUnit *decimal.Decimal
			if fc := Patterns.ConClause.FindStringSubmatch(line); fc != nil {
				if fc[1] != "" {
					unit = mustDecimal(fc[1])
				}
				if fc[2] != "" {
					c := mustDecimal(fc[2])
					corridoUnit = &c
				}
			} else if c := ctx.DefaultMontoCorrido(); c.IsPositive() {
				// Bare-number line: the corrido stake carries over from the
				// block (or default_monto_corrido) the same way the fijo
				// stake does.
				corridoUnit = &c
			}

			details := []loteriabet.DetalleApuesta{{
				Kind: loteriabet.Fijo, Numbers: numbers, UnitAmount: unit,
				Amount:       loteriabet.AmountFor(loteriabet.Fijo, unit, count, 0),
				OriginalLine: ctx.OriginalLine, LineNumber: ctx.LineNumber,
			}}
			ctx.recordFijo(unit)

			if corridoUnit != nil {
				details = append(details, loteriabet.DetalleApuesta{
					Kind: loteriabet.Corrido, Numbers: numbers, UnitAmount: *corridoUnit,
					Amount:       loteriabet.AmountFor(loteriabet.Corrido, *corridoUnit, count, 0),
					OriginalLine: ctx.OriginalLine, LineNumber: ctx.LineNumber,
				})
				ctx.recordCorrido(*corridoUnit)
			}
			return details, nil
		},
	}
}

// genericNumbers extracts bet numbers whether or not the line has a
// "con" clause: before it if present, from the whole line otherwise.
func genericNumbers(line string) []string {
	if reConWord.MatchString(line) {
		return numbersBeforeCon(line)
	}
	return harvestNumbers(line, false)
}

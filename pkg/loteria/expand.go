package loteria

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/lediergzl/loteria-parser/pkg/loteriabet"
)

var (
	reSpacedVolteo   = regexp.MustCompile(`(?i)\b(\d{2})\s+v\b`)
	reSpacedDecena   = regexp.MustCompile(`(?i)\bd\s+(\d)\b`)
	reSpacedTerminal = regexp.MustCompile(`(?i)\bt\s+(\d)\b`)
	reSpacedPares    = regexp.MustCompile(`(?i)\b(\d{2})\s+pr\s+(\d{1,3})\b`)
)

// This file is the pattern expander: pure, value-mode expansion functions
// that turn one shorthand token's captured arguments into an explicit
// number list, plus the bookkeeping needed to keep expansion bounded.
//
// Design decision: the preprocessor's shorthand pre-expansion pass does
// not destructively replace shorthand tokens with their expanded number
// lists in the working text. If it did, the SpecialPatterns recognizer
// would never see the original token and could never tag a row as
// PatternType Especial once auto_expand is on — e.g. "10v con 10" must
// still produce one Especial detail under the default config, where
// auto_expand is true. Instead, the pre-expansion pass normalizes a
// shorthand token's formatting (collapsing stray whitespace so later
// regex matching is reliable) and runs a dry-run bounds check so an
// oversized expansion is rejected as early and as cheaply as possible;
// the actual value-mode expansion — and the decision to tag a detail as
// Especial — always happens once, in the SpecialPatterns recognizer,
// regardless of auto_expand. auto_expand instead governs whether that
// early normalization/bounds pass runs at all.

// ExpandVolteo returns [nn, reverse(nn)], both 2-digit zero-padded.
func ExpandVolteo(nn string) ([]string, error) {
	n, err := strconv.Atoi(nn)
	if err != nil {
		return nil, &ExpansionError{Token: nn, Message: "volteo base is not numeric", Cause: err}
	}
	padded := loteriabet.PadNumber(n)
	reversed := string([]byte{padded[1], padded[0]})
	return []string{padded, reversed}, nil
}

// ExpandRango returns the inclusive 2-digit range [a,b] (swapped if
// a>b). Fails if either bound is non-numeric.
func ExpandRango(aStr, bStr string) ([]string, error) {
	a, errA := strconv.Atoi(aStr)
	b, errB := strconv.Atoi(bStr)
	if errA != nil || errB != nil {
		return nil, &ExpansionError{Token: aStr + " al " + bStr, Message: "range bound is not numeric"}
	}
	if a > b {
		a, b = b, a
	}
	out := make([]string, 0, b-a+1)
	for n := a; n <= b; n++ {
		out = append(out, loteriabet.PadNumber(n))
	}
	return out, nil
}

// ExpandDecena returns the ten numbers ending in digit x: 0x,1x,...,9x.
func ExpandDecena(x int) []string {
	out := make([]string, 0, 10)
	for d := 0; d <= 9; d++ {
		out = append(out, loteriabet.PadNumber(d*10+(x%10)))
	}
	return out
}

// ExpandTerminal returns the ten numbers starting with digit x: x0,...,x9.
func ExpandTerminal(x int) []string {
	out := make([]string, 0, 10)
	for u := 0; u <= 9; u++ {
		out = append(out, loteriabet.PadNumber((x%10)*10+u))
	}
	return out
}

// MaxParesRelativos is the hard cap on K in "NN pr K".
const MaxParesRelativos = 100

// ExpandParesRelativos returns NN01, NN02, ..., NN{min(K,100)} as 4-digit
// strings — downstream extractors split each into two 2-digit numbers
// (see the ParesRelativos interpretation note in DESIGN.md).
func ExpandParesRelativos(nn string, k int) ([]string, error) {
	n, err := strconv.Atoi(nn)
	if err != nil {
		return nil, &ExpansionError{Token: nn, Message: "pares relativos base is not numeric", Cause: err}
	}
	if k > MaxParesRelativos {
		k = MaxParesRelativos
	}
	if k < 1 {
		k = 1
	}
	base := loteriabet.PadNumber(n)
	out := make([]string, 0, k)
	for i := 1; i <= k; i++ {
		out = append(out, base+loteriabet.PadNumber(i))
	}
	return out, nil
}

// ExpandCentenasTodas returns, for each 2-digit number, the ten 3-digit
// strings sharing it as a suffix: 0NN, 1NN, ..., 9NN.
func ExpandCentenasTodas(numbers []string) []string {
	out := make([]string, 0, len(numbers)*10)
	for _, nn := range numbers {
		for c := 0; c <= 9; c++ {
			out = append(out, strconv.Itoa(c)+nn)
		}
	}
	return out
}

// ExpandRepeticion returns nn repeated k times.
func ExpandRepeticion(k int, nn string) []string {
	if k < 1 {
		k = 1
	}
	out := make([]string, k)
	for i := range out {
		out[i] = nn
	}
	return out
}

// SplitFourDigit splits a 4-digit string into two 2-digit canonical
// numbers at extraction time.
func SplitFourDigit(s string) (string, string) {
	return s[:2], s[2:]
}

// capNumbers enforces the expansion-factor safety cap: a line whose
// expanded form exceeds cap numbers is rejected.
func capNumbers(token string, n, cap int) error {
	if cap > 0 && n > cap {
		return &ExpansionError{Token: token, Message: "expansion exceeds configured cap"}
	}
	return nil
}

// ExpandInPlace is the text-mode expander: it rewrites every shorthand
// token in line with its explicit number list, in expansion order
// (volteo, rango, decena, terminal, pares relativos, centenas todas).
// The pipeline itself expands inside the SpecialPatterns recognizer so
// rows keep their Expansion metadata; this entry point is for consumers
// that want the flattened text form directly.
func ExpandInPlace(line string, cap int) (string, error) {
	var expErr error

	replace := func(re *regexp.Regexp, expand func(m []string) ([]string, error)) {
		if expErr != nil {
			return
		}
		line = re.ReplaceAllStringFunc(line, func(tok string) string {
			if expErr != nil {
				return tok
			}
			m := re.FindStringSubmatch(tok)
			nums, err := expand(m)
			if err != nil {
				expErr = err
				return tok
			}
			if err := capNumbers(tok, len(nums), cap); err != nil {
				expErr = err
				return tok
			}
			return strings.Join(nums, " ")
		})
	}

	replace(Patterns.Volteo, func(m []string) ([]string, error) {
		return ExpandVolteo(m[1])
	})
	replace(Patterns.Rango, func(m []string) ([]string, error) {
		return ExpandRango(m[1], m[2])
	})
	replace(Patterns.Decena, func(m []string) ([]string, error) {
		return ExpandDecena(int(m[1][0] - '0')), nil
	})
	replace(Patterns.Terminal, func(m []string) ([]string, error) {
		return ExpandTerminal(int(m[1][0] - '0')), nil
	})
	replace(Patterns.ParesRelativos, func(m []string) ([]string, error) {
		k, _ := strconv.Atoi(m[2])
		return ExpandParesRelativos(m[1], k)
	})
	if expErr == nil {
		line = Patterns.CentenasTodas.ReplaceAllStringFunc(line, func(tok string) string {
			if expErr != nil {
				return tok
			}
			m := Patterns.CentenasTodas.FindStringSubmatch(tok)
			nums := ExpandCentenasTodas([]string{m[1]})
			if err := capNumbers(tok, len(nums), cap); err != nil {
				expErr = err
				return tok
			}
			out := strings.Join(nums, " ")
			if m[2] != "" {
				out += " con " + m[2]
			}
			return out
		})
	}

	if expErr != nil {
		return "", expErr
	}
	return line, nil
}

// normalizeShorthandSpacing tightens the whitespace inside shorthand
// tokens (e.g. "10 v" -> "10v", "d 0" -> "d0") so the SpecialPatterns
// recognizer's anchored regexes match reliably regardless of how loosely
// the author typed them. It never changes the set of numbers present.
func normalizeShorthandSpacing(line string) string {
	line = reSpacedVolteo.ReplaceAllString(line, "${1}v")
	line = reSpacedDecena.ReplaceAllString(line, "d$1")
	line = reSpacedTerminal.ReplaceAllString(line, "t$1")
	line = reSpacedPares.ReplaceAllString(line, "${1}pr$2")
	return line
}

// prevalidateExpansions dry-runs every shorthand match in a line against
// the configured expansion cap, returning the first violation. It does
// not modify the line.
func prevalidateExpansions(line string, cap int) error {
	for _, m := range Patterns.Volteo.FindAllStringSubmatch(line, -1) {
		nums, err := ExpandVolteo(m[1])
		if err != nil {
			return err
		}
		if err := capNumbers(m[0], len(nums), cap); err != nil {
			return err
		}
	}
	for _, m := range Patterns.Rango.FindAllStringSubmatch(line, -1) {
		nums, err := ExpandRango(m[1], m[2])
		if err != nil {
			return err
		}
		if err := capNumbers(m[0], len(nums), cap); err != nil {
			return err
		}
	}
	for _, m := range Patterns.ParesRelativos.FindAllStringSubmatch(line, -1) {
		k, _ := strconv.Atoi(m[2])
		nums, err := ExpandParesRelativos(m[1], k)
		if err != nil {
			return err
		}
		if err := capNumbers(m[0], len(nums), cap); err != nil {
			return err
		}
	}
	for _, m := range Patterns.CentenasTodas.FindAllStringSubmatch(line, -1) {
		nums := ExpandCentenasTodas([]string{m[1]})
		if err := capNumbers(m[0], len(nums), cap); err != nil {
			return err
		}
	}
	return nil
}

// trimFields joins non-empty whitespace-separated fields back together
// with single spaces, used by several preprocessing passes.
func trimFields(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

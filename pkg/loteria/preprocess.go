package loteria

import (
	"regexp"
	"strings"
	"unicode"
)

// Preprocess runs the normalization steps below, in order, and returns
// the canonicalized text ready for block segmentation. It is a pure
// function of (text, cfg): same input always yields the same output.
func Preprocess(text string, cfg *Config) (string, error) {
	text = normalizeLineEndings(text)
	text = normalizeWhitespace(text)
	text = normalizeOperatorSpacing(text)
	text = normalizeConfusables(text)
	text = foldCase(text)

	if cfg.AutoExpand {
		if err := prevalidateAndNormalizeShorthand(&text, cfg.ExpansionCap); err != nil {
			return "", err
		}
	}

	text = normalizeMonetary(text, cfg.DecimalSeparator)
	text = finalCleanup(text)
	return text, nil
}

var reMultiNewline = regexp.MustCompile(`\n{3,}`)

func normalizeLineEndings(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return reMultiNewline.ReplaceAllString(text, "\n\n")
}

// spaceClass also matches NBSP and thin space, which strings.Fields alone
// would not treat as separators.
var spaceClass = regexp.MustCompile(`[\t\x{00A0}\x{2009}\x{200A}\x{202F}]`)

func normalizeWhitespace(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		line = spaceClass.ReplaceAllString(line, " ")
		line = trimFields(line)
		lines[i] = strings.TrimSpace(line)
	}
	return strings.Join(lines, "\n")
}

var reOperatorSpacing = regexp.MustCompile(`\s*([*x×\-+.])\s*`)

func normalizeOperatorSpacing(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		line = reOperatorSpacing.ReplaceAllString(line, "$1")
		line = strings.ReplaceAll(line, "×", "x")
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

var confusableReplacer = strings.NewReplacer(
	"o", "0", "O", "0", "ø", "0", "Ø", "0", "ο", "0", "Ο", "0",
	"l", "1", "I", "1", "|", "1",
)

var quoteReplacer = strings.NewReplacer("'", "", "\"", "", "`", "", "´", "")

// reConfusableToken matches a whitespace-delimited token made up only of
// digits and confusable characters — a number typed with letter
// look-alikes (e.g. "1o" for "10", "ll" for "11"). Applying the
// replacement only inside such tokens, rather than across whole lines,
// keeps keywords like "con"/"total"/"volteo" intact: a blind line-wide
// substitution would turn "con" into "c0n".
var reConfusableToken = regexp.MustCompile(`^[0-9oOøØοΟlI|]+$`)

func normalizeConfusables(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		line = quoteReplacer.Replace(line)
		fields := strings.Fields(line)
		for j, f := range fields {
			if reConfusableToken.MatchString(f) {
				fields[j] = confusableReplacer.Replace(f)
			}
		}
		lines[i] = strings.Join(fields, " ")
	}
	return strings.Join(lines, "\n")
}

func foldCase(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if i == 0 && looksLikeName(line, 0.7) {
			continue
		}
		lines[i] = strings.ToLower(line)
	}
	return strings.Join(lines, "\n")
}

func prevalidateAndNormalizeShorthand(text *string, cap int) error {
	lines := strings.Split(*text, "\n")
	for i, line := range lines {
		line = normalizeShorthandSpacing(line)
		if err := prevalidateExpansions(line, cap); err != nil {
			return err
		}
		lines[i] = line
	}
	*text = strings.Join(lines, "\n")
	return nil
}

var (
	reDigitComma     = regexp.MustCompile(`(\d),(\d)`)
	reConDigit       = regexp.MustCompile(`(?i)\bcon(\d)`)
	reYBetweenDigits = regexp.MustCompile(`(\d)y(\d)`)
	reCurrencySymbol = regexp.MustCompile(`[$€£]`)
	reTrailingUnit   = regexp.MustCompile(`(?i)(\d)\s*(pesos|bss|bs)\b`)
)

func normalizeMonetary(text, decimalSeparator string) string {
	text = reDigitComma.ReplaceAllString(text, "$1"+decimalSeparator+"$2")
	text = reConDigit.ReplaceAllString(text, "con $1")
	text = reYBetweenDigits.ReplaceAllString(text, "$1 y $2")
	text = reCurrencySymbol.ReplaceAllString(text, "")
	text = reTrailingUnit.ReplaceAllString(text, "$1")
	return text
}

// finalCleanup retains digits, all letters (ASCII and accented),
// whitespace, and the punctuation .,-* as a conservative final filter.
//
// Design decision: a narrower filter that keeps only the ASCII letters
// spelling out the reserved keywords (x,c,o,n,y,p,d,e,a,l,t,r,v) would
// strip valid player-name letters — e.g. "Juan" would lose its J and u.
// Keeping all Unicode letters preserves names intact; see DESIGN.md.
func finalCleanup(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch {
		case unicode.IsDigit(r), r == '\n', r == ' ', unicode.IsLetter(r):
			b.WriteRune(r)
		case r == '.' || r == ',' || r == '-' || r == '*':
			b.WriteRune(r)
		}
	}
	lines := strings.Split(b.String(), "\n")
	out := lines[:0]
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}

// looksLikeName is the shared core of the name-line heuristic: length in
// [2,35], doesn't start with a digit, contains none of
// the reserved tokens, and a letter-to-length ratio above the threshold
// the caller supplies (the preprocessor uses 0.7 to decide case
// preservation, the segmenter uses 0.6 to decide block boundaries).
func looksLikeName(line string, letterRatio float64) bool {
	trimmed := strings.TrimSpace(line)
	if len(trimmed) < 2 || len(trimmed) > 35 {
		return false
	}
	if trimmed[0] >= '0' && trimmed[0] <= '9' {
		return false
	}
	lower := strings.ToLower(trimmed)
	for _, word := range strings.Fields(lower) {
		if _, reserved := ReservedWords[word]; reserved {
			return false
		}
	}
	letters := 0
	total := 0
	for _, r := range trimmed {
		if unicode.IsSpace(r) {
			continue
		}
		total++
		if unicode.IsLetter(r) {
			letters++
		}
	}
	if total == 0 {
		return false
	}
	return float64(letters)/float64(total) > letterRatio
}

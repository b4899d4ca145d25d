package loteria

import "regexp"

// Patterns is the process-wide, read-only-after-init catalog of named
// regular expressions that define the domain grammar. Other components
// in this package consume these; helper expressions specific to one pass
// (spacing, monetary and auto-correct rewrites) are compiled in the files
// that use them.
var Patterns = struct {
	Volteo           *regexp.Regexp
	Rango            *regexp.Regexp
	Decena           *regexp.Regexp
	Terminal         *regexp.Regexp
	ParesRelativos   *regexp.Regexp
	CentenasTodas    *regexp.Regexp
	ParleExplicito   *regexp.Regexp
	ParleInline      *regexp.Regexp
	Candado          *regexp.Regexp
	CandadoPrefix    *regexp.Regexp
	CentenaCompuesta *regexp.Regexp
	ConClause        *regexp.Regexp
	Total            *regexp.Regexp
	Repeticion       *regexp.Regexp
	Number2or3       *regexp.Regexp
	Number4          *regexp.Regexp
}{}

// ReservedWords is the closed set of tokens a player-name line must
// never contain.
var ReservedWords = map[string]struct{}{
	"con": {}, "parle": {}, "candado": {}, "total": {}, "fijo": {},
	"corrido": {}, "al": {}, "pr": {}, "v": {}, "d": {}, "t": {},
}

func init() {
	Patterns.Volteo = regexp.MustCompile(`(?i)\b(\d{2})\s*v\b`)
	Patterns.Rango = regexp.MustCompile(`(?i)\b(\d{1,3})\s*al\s*(\d{1,3})\b`)
	Patterns.Decena = regexp.MustCompile(`(?i)\bd\s*(\d)\b`)
	Patterns.Terminal = regexp.MustCompile(`(?i)\bt\s*(\d)\b`)
	Patterns.ParesRelativos = regexp.MustCompile(`(?i)\b(\d{2})\s*pr\s*(\d{1,3})\b`)
	Patterns.CentenasTodas = regexp.MustCompile(`(?i)\b(\d{2})\s*por\s*todas\s*las\s*centenas(?:\s*con\s*(\d+(?:\.\d+)?))?\b`)
	Patterns.ParleExplicito = regexp.MustCompile(`\b(\d{2,3})\s*[*x]\s*(\d{2,3})\b`)
	Patterns.ParleInline = regexp.MustCompile(`(?i)\bp\s*(\d+(?:\.\d+)?)\b`)
	Patterns.Candado = regexp.MustCompile(`(?i)\bcandado\s*con\s*(\d+(?:\.\d+)?)\b`)
	Patterns.CandadoPrefix = regexp.MustCompile(`(?i)\bcon\s*(\d+(?:\.\d+)?)(?:\s*y\s*(\d+(?:\.\d+)?))?\s*candado\b`)
	Patterns.CentenaCompuesta = regexp.MustCompile(`(?i)\bcon\s*(\d+(?:\.\d+)?)c\s*y\s*(\d+(?:\.\d+)?)f\s*y\s*(\d+(?:\.\d+)?)co\b`)
	Patterns.ConClause = regexp.MustCompile(`(?i)\bcon\s*(\d+(?:\.\d+)?)(?:\s*y\s*(\d+(?:\.\d+)?))?\b`)
	Patterns.Total = regexp.MustCompile(`(?i)^\s*total\b\s*[:=]?\s*(\d+(?:\.\d+)?)`)
	Patterns.Repeticion = regexp.MustCompile(`(?i)\b(\d{2,3})\s*rep\s*(\d{1,3})\b`)
	Patterns.Number2or3 = regexp.MustCompile(`\b\d{2,3}\b`)
	Patterns.Number4 = regexp.MustCompile(`\b\d{4}\b`)
}

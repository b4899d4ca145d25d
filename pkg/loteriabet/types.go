// Package loteriabet holds the domain model for a parsed lottery ticket:
// typed bet rows (DetalleApuesta), a player's full ticket (Jugada), and the
// monetary math that turns one into the other. It has no knowledge of text,
// regular expressions, or the parsing pipeline — that lives in pkg/loteria.
package loteriabet

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BetKind is the closed set of bet row types a ticket line can produce.
type BetKind int

const (
	Fijo BetKind = iota
	Corrido
	Parle
	Centena
	Candado
	Especial
)

func (k BetKind) String() string {
	switch k {
	case Fijo:
		return "fijo"
	case Corrido:
		return "corrido"
	case Parle:
		return "parle"
	case Centena:
		return "centena"
	case Candado:
		return "candado"
	case Especial:
		return "especial"
	default:
		return "desconocido"
	}
}

// PatternType names the domain shorthand a detail row was expanded from,
// or Simple when no shorthand was involved.
type PatternType int

const (
	Simple PatternType = iota
	Volteo
	Rango
	Decena
	Terminal
	ParesRelativos
	CentenasTodas
	Repeticion
)

func (p PatternType) String() string {
	switch p {
	case Volteo:
		return "volteo"
	case Rango:
		return "rango"
	case Decena:
		return "decena"
	case Terminal:
		return "terminal"
	case ParesRelativos:
		return "pares_relativos"
	case CentenasTodas:
		return "centenas_todas"
	case Repeticion:
		return "repeticion"
	default:
		return "simple"
	}
}

// Pair is an unordered pair of canonical numbers, used by explicit Parle.
type Pair struct {
	A string
	B string
}

// Expansion records how a shorthand token became an explicit number list,
// so a caller can see the original token alongside the expansion.
type Expansion struct {
	OriginalToken string
	ExpandedList  []string
	PatternType   PatternType
}

// DetalleApuesta is one typed row of a parsed bet. The validate tags
// cover the struct-level shape invariants; the semantic invariants that
// depend on config (allow_negative, max_monto) or on BetKind-specific
// rules stay in ValidateDetalle, which validator.v9 struct tags alone
// cannot express.
type DetalleApuesta struct {
	Kind         BetKind         `validate:"gte=0,lte=5"`
	Numbers      []string        `validate:"required,min=1,dive,len=2|len=3,numeric"`
	Amount       decimal.Decimal `validate:"-"`
	UnitAmount   decimal.Decimal `validate:"-"`
	Combinations int             `validate:"gte=0"`
	Pairs        []Pair          `validate:"-"`
	OriginalLine string          `validate:"-"`
	LineNumber   int             `validate:"gte=0"`
	Expansion    *Expansion      `validate:"-"`
}

// DetalleMetadata carries per-jugada processing facts that are not part of
// the bet ledger itself.
type DetalleMetadata struct {
	Timestamp        time.Time
	ProcessingTimeMs float64
	LineCount        int
	NumberCount      int
	BetTypesSet      map[BetKind]struct{}
}

// Jugada is one player's complete parsed ticket.
type Jugada struct {
	PlayerName      string
	TotalCalculated decimal.Decimal
	TotalDeclared   *decimal.Decimal
	OriginalLines   []string
	Details         []DetalleApuesta
	IsValid         bool
	Warnings        []string
	Errors          []string
	Metadata        DetalleMetadata
}

// Summary aggregates a ParseResult's totals and reconciliation outcome.
type Summary struct {
	TotalJugadas    int
	TotalCalculated decimal.Decimal
	TotalDeclared   decimal.Decimal
	Difference      decimal.Decimal
	IsValid         bool
	Confidence      float64
}

// Stats counts bet rows emitted across a ParseResult, by kind.
type Stats struct {
	Fijos         int
	Corridos      int
	Parles        int
	Centenas      int
	Candados      int
	Especiales    int
	TotalApuestas int
	TotalNumeros  int
}

// ResultMetadata carries parse-level diagnostics that are not part of the
// bet ledger: timing, warnings/errors, cache behavior, and a correlation id.
type ResultMetadata struct {
	ParseID         uuid.UUID
	ParseTimeMs     float64
	OriginalLength  int
	ProcessedLength int
	Warnings        []string
	Errors          []string
	CacheStats      *CacheStats
}

// CacheStats mirrors pkg/loteria's cache statistics without importing it
// (avoids an import cycle; pkg/loteria.Cache.Stats returns this type).
type CacheStats struct {
	Hits      int
	Misses    int
	Size      int
	Evictions int
	HitRate   float64
}

// ParseResult is the deterministic output of a full parse.
type ParseResult struct {
	Success  bool
	Jugadas  []Jugada
	Summary  Summary
	Metadata ResultMetadata
	Stats    Stats
}

package loteria

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/lediergzl/loteria-parser/pkg/loteriabet"
)

// Parser is the core pipeline: Preprocess -> Segment -> per-block
// dispatch -> Validate -> Calculate -> Cache. It is not safe for
// concurrent Parse calls beyond what *Cache already serializes
// internally, since the cache is the only shared mutable state.
type Parser struct {
	cfg        *Config
	dispatcher *Dispatcher
	cache      *Cache
	logger     *zap.Logger
}

// NewParser builds a Parser with the six built-in recognizers
// registered, validating cfg (or filling in defaults when nil).
func NewParser(cfg *Config, opts ...Option) (*Parser, error) {
	cfg, err := withDefaults(cfg)
	if err != nil {
		return nil, err
	}
	p := &Parser{cfg: cfg, dispatcher: NewDispatcher(), logger: zap.NewNop()}
	for _, opt := range opts {
		opt(p)
	}
	if p.cache == nil && cfg.Cache.Enabled {
		p.cache = NewCache(cfg.Cache.MaxSize)
	}
	return p, nil
}

// RegisterRecognizer is the extension hook for adding custom bet shapes.
func (p *Parser) RegisterRecognizer(r Recognizer) {
	p.dispatcher.Register(r)
}

// Parse runs the full pipeline. It never panics or returns a Go error —
// failures are always encoded as ParseResult{Success: false} with the
// cause in Metadata.Errors.
func (p *Parser) Parse(text string) loteriabet.ParseResult {
	start := time.Now()
	parseID := uuid.New()

	if strings.TrimSpace(text) == "" {
		return p.failureResult(parseID, start, text, &ParserError{Message: "Empty text"})
	}

	if p.cache != nil && p.cfg.Cache.Enabled {
		key := CacheKey(text, p.cfg)
		if cached, ok := p.cache.Get(key); ok {
			stats := p.cache.Stats()
			cached.Metadata.CacheStats = &stats
			return cached
		}
	}

	syntaxResult := ValidateSyntax(text)

	processed, err := Preprocess(text, p.cfg)
	if err != nil {
		return p.failureResult(parseID, start, text, err)
	}

	blocks, err := Segment(processed, p.cfg)
	if err != nil {
		return p.failureResult(parseID, start, text, err)
	}

	var jugadas []loteriabet.Jugada
	var unclassified []int
	for _, block := range blocks {
		if time.Since(start) > p.cfg.Timeout() {
			return p.failureResult(parseID, start, text,
				&TimeoutError{Budget: p.cfg.Timeout(), Stage: "block dispatch"})
		}
		j, unc, err := p.processBlock(block)
		if err != nil {
			return p.failureResult(parseID, start, text, err)
		}
		jugadas = append(jugadas, j)
		unclassified = append(unclassified, unc...)
	}

	globalResult := validateGlobal(blocks, p.cfg, unclassified)

	for i := range jugadas {
		jv := ValidateJugadaResult(jugadas[i], p.cfg)
		jugadas[i].Errors = jv.Errors
		jugadas[i].Warnings = jv.Warnings
	}

	syntaxErrorCount := len(syntaxResult.Errors) + len(globalResult.Errors)
	syntaxWarningCount := len(syntaxResult.Warnings) + len(globalResult.Warnings)
	summary := buildSummary(jugadas, syntaxErrorCount, syntaxWarningCount)
	stats := loteriabet.ComputeStats(jugadas)

	// Analyzer diagnostics ride along as warnings but never feed the
	// confidence score, which is fixed by the syntax/global counts above.
	analysis := Analyze(jugadas)

	result := loteriabet.ParseResult{
		Success: true,
		Jugadas: jugadas,
		Summary: summary,
		Stats:   stats,
		Metadata: loteriabet.ResultMetadata{
			ParseID:         parseID,
			ParseTimeMs:     elapsedMs(start),
			OriginalLength:  len(text),
			ProcessedLength: len(processed),
			Warnings:        concatStrings(syntaxResult.Warnings, globalResult.Warnings, analysis.Diagnostics),
			Errors:          concatStrings(syntaxResult.Errors, globalResult.Errors),
		},
	}

	if p.cache != nil && p.cfg.Cache.Enabled {
		key := CacheKey(text, p.cfg)
		p.cache.Set(key, result, p.cfg.Cache.TTL)
		stats := p.cache.Stats()
		result.Metadata.CacheStats = &stats
	}

	p.logger.Debug("parse complete",
		zap.String("parse_id", parseID.String()),
		zap.Int("jugadas", len(jugadas)),
		zap.Float64("confidence", summary.Confidence),
	)
	return result
}

// Validate runs the syntax check alone: the cheap, pre-parse entry point
// callers can use without running the full pipeline.
func (p *Parser) Validate(text string) ValidationResult {
	return ValidateSyntax(text)
}

// ExtractStructure exposes segmentation only, with no bet recognition.
func (p *Parser) ExtractStructure(text string) ([]BlockInfo, error) {
	processed, err := Preprocess(text, p.cfg)
	if err != nil {
		return nil, err
	}
	return Segment(processed, p.cfg)
}

func (p *Parser) processBlock(block BlockInfo) (loteriabet.Jugada, []int, error) {
	blockStart := time.Now()
	blk := &blockContext{}
	j := loteriabet.Jugada{PlayerName: block.PlayerName, OriginalLines: block.Lines}

	var unclassified []int
	var declaredTotal *decimal.Decimal

	for idx, line := range block.Lines {
		lineNo := block.LineNumbers[idx]

		if totalStr, ok := TotalLine(line); ok {
			if declaredTotal == nil {
				d := mustDecimal(totalStr)
				declaredTotal = &d
			}
			continue
		}

		ctx := &LineContext{Line: line, OriginalLine: line, LineNumber: lineNo, Config: p.cfg, block: blk}
		details, claimant, err := p.dispatcher.Dispatch(ctx)
		if err != nil {
			if p.cfg.StrictMode {
				return loteriabet.Jugada{}, nil, err
			}
			j.Warnings = append(j.Warnings, err.Error())
			continue
		}
		if claimant == "" {
			unclassified = append(unclassified, lineNo)
			continue
		}
		j.Details = append(j.Details, details...)
	}

	j.TotalDeclared = declaredTotal
	// Totals must be settled before jugada-level validation reads them.
	j.Recalculate()
	j.Metadata = buildDetalleMetadata(j, len(block.Lines))
	j.Metadata.ProcessingTimeMs = elapsedMs(blockStart)
	return j, unclassified, nil
}

func buildDetalleMetadata(j loteriabet.Jugada, lineCount int) loteriabet.DetalleMetadata {
	betTypes := make(map[loteriabet.BetKind]struct{})
	numberCount := 0
	for _, d := range j.Details {
		betTypes[d.Kind] = struct{}{}
		numberCount += len(d.Numbers)
	}
	return loteriabet.DetalleMetadata{
		Timestamp:   time.Now(),
		LineCount:   lineCount,
		NumberCount: numberCount,
		BetTypesSet: betTypes,
	}
}

func (p *Parser) failureResult(parseID uuid.UUID, start time.Time, text string, err error) loteriabet.ParseResult {
	p.logger.Warn("parse failed", zap.String("parse_id", parseID.String()), zap.Error(err))
	return loteriabet.ParseResult{
		Success: false,
		Metadata: loteriabet.ResultMetadata{
			ParseID:        parseID,
			ParseTimeMs:    elapsedMs(start),
			OriginalLength: len(text),
			Errors:         []string{err.Error()},
		},
	}
}

func elapsedMs(start time.Time) float64 {
	return float64(time.Since(start).Microseconds()) / 1000.0
}

func concatStrings(slices ...[]string) []string {
	var out []string
	for _, s := range slices {
		out = append(out, s...)
	}
	return out
}

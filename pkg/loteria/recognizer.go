package loteria

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/lediergzl/loteria-parser/pkg/loteriabet"
)

// blockContext carries the stake-carryover state for one block. It is
// constructed fresh per block and dropped at the end.
type blockContext struct {
	hasLastFijo      bool
	lastFijoMonto    decimal.Decimal
	hasLastCorrido   bool
	lastCorridoMonto decimal.Decimal
}

// LineContext is what a Recognizer inspects and, for AutoCorrect-style
// pass-through recognizers, rewrites. One is constructed per bet line.
type LineContext struct {
	Line         string
	OriginalLine string
	LineNumber   int
	Config       *Config
	block        *blockContext
}

// DefaultMonto resolves the stake-carryover rule: a previous Fijo stake
// in this block overrides config.default_monto_fijo.
func (c *LineContext) DefaultMonto() decimal.Decimal {
	if c.block.hasLastFijo {
		return c.block.lastFijoMonto
	}
	return c.Config.DefaultMontoFijo
}

// DefaultMontoCorrido is the corrido counterpart of DefaultMonto: a
// previous Corrido stake in this block wins over
// config.default_monto_corrido.
func (c *LineContext) DefaultMontoCorrido() decimal.Decimal {
	if c.block.hasLastCorrido {
		return c.block.lastCorridoMonto
	}
	return c.Config.DefaultMontoCorr
}

func (c *LineContext) recordFijo(amount decimal.Decimal) {
	c.block.hasLastFijo = true
	c.block.lastFijoMonto = amount
}

func (c *LineContext) recordCorrido(amount decimal.Decimal) {
	c.block.hasLastCorrido = true
	c.block.lastCorridoMonto = amount
}

// Recognizer is the open-extension shape the dispatcher operates on: a
// capability probe, a producer, and a priority. Built-in kinds are
// expressed as Recognizer values too, rather than as a separate closed
// variant, so a caller-registered recognizer slots into the same
// priority-ordered chain as the built-ins.
type Recognizer struct {
	Name        string
	Priority    int
	CanProcess  func(ctx *LineContext) bool
	Process     func(ctx *LineContext) ([]loteriabet.DetalleApuesta, error)
	PassThrough bool // true for AutoCorrect-style rewrite-and-continue recognizers
}

// Dispatcher holds recognizers sorted by descending priority and claims
// each non-name, non-total line with the first one that matches.
type Dispatcher struct {
	recognizers []Recognizer
}

// NewDispatcher builds a dispatcher with the six built-in recognizers
// registered at their default priorities.
func NewDispatcher() *Dispatcher {
	d := &Dispatcher{}
	for _, r := range builtinRecognizers() {
		d.Register(r)
	}
	return d
}

// Register adds a recognizer and keeps the list sorted by descending
// priority; this is the extension hook callers use to add custom bet
// shapes without touching the built-in chain.
func (d *Dispatcher) Register(r Recognizer) {
	d.recognizers = append(d.recognizers, r)
	sort.SliceStable(d.recognizers, func(i, j int) bool {
		return d.recognizers[i].Priority > d.recognizers[j].Priority
	})
}

// Dispatch runs ctx through the recognizer chain. Pass-through
// recognizers (AutoCorrect) rewrite ctx.Line and never stop the chain;
// the first non-pass-through match claims the line and its details (if
// any) are returned, along with the claimant's name for diagnostics.
func (d *Dispatcher) Dispatch(ctx *LineContext) ([]loteriabet.DetalleApuesta, string, error) {
	for _, r := range d.recognizers {
		if !r.CanProcess(ctx) {
			continue
		}
		details, err := r.Process(ctx)
		if err != nil {
			return nil, r.Name, err
		}
		if r.PassThrough {
			continue
		}
		return details, r.Name, nil
	}
	return nil, "", nil
}

package loteria

import (
	"reflect"
	"testing"

	"github.com/shopspring/decimal"
)

func TestHarvestNumbersSplitsFourDigitRuns(t *testing.T) {
	got := harvestNumbers("1234 05 999", false)
	want := []string{"12", "34", "05"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("harvestNumbers = %v, want %v", got, want)
	}
}

func TestHarvestNumbersIncludesThreeDigitWhenRequested(t *testing.T) {
	got := harvestNumbers("123 05", true)
	want := []string{"123", "05"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("harvestNumbers(includeLen3) = %v, want %v", got, want)
	}
}

func TestNumbersBeforeConExcludesAmountTokens(t *testing.T) {
	got := numbersBeforeCon("05 10 con 20")
	want := []string{"05", "10"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("numbersBeforeCon = %v, want %v", got, want)
	}
}

func TestBeforeKeywordReturnsWholeLineWhenKeywordAbsent(t *testing.T) {
	got := beforeKeyword("05 10 15", reConWord)
	if got != "05 10 15" {
		t.Errorf("beforeKeyword with no match = %q, want unchanged line", got)
	}
}

func newLineContext(line string) *LineContext {
	return &LineContext{Line: line, OriginalLine: line, LineNumber: 1, Config: NewDefaultConfig(), block: &blockContext{}}
}

func TestCandadoRecognizerSplitsFijoCorridoAndCandado(t *testing.T) {
	r := candadoRecognizer()
	ctx := newLineContext("05 10 con 20 y 30 candado con 100")
	if !r.CanProcess(ctx) {
		t.Fatal("expected candado recognizer to claim this line")
	}
	details, err := r.Process(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(details) != 3 {
		t.Fatalf("expected 3 details (fijo, corrido, candado), got %d", len(details))
	}
	candado := details[2]
	if !candado.Amount.Equal(decimal.NewFromInt(100)) {
		t.Errorf("candado amount = %s, want 100", candado.Amount.String())
	}
	if candado.Combinations != 1 {
		t.Errorf("candado combinations = %d, want 1 (C(2,2))", candado.Combinations)
	}
}

func TestCentenaCompuestaSplitsIntoThreeDetails(t *testing.T) {
	r := centenaRecognizer()
	ctx := newLineContext("123 con 5c y 10f y 15co")
	if !r.CanProcess(ctx) {
		t.Fatal("expected centena recognizer to claim this line")
	}
	details, err := r.Process(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(details) != 3 {
		t.Fatalf("expected 3 details, got %d", len(details))
	}
	if !details[1].Amount.Equal(decimal.NewFromInt(10)) {
		t.Errorf("fijo amount = %s, want 10", details[1].Amount.String())
	}
	if details[1].Numbers[0] != "23" {
		t.Errorf("fijo numbers should be the last two digits of the centena, got %v", details[1].Numbers)
	}
}

func TestBasicBetRecognizerAppliesStakeCarryover(t *testing.T) {
	blk := &blockContext{}
	ctx1 := &LineContext{Line: "05 con 20", OriginalLine: "05 con 20", LineNumber: 1, Config: NewDefaultConfig(), block: blk}
	r := basicBetRecognizer()
	if _, err := r.Process(ctx1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ctx2 := &LineContext{Line: "10", OriginalLine: "10", LineNumber: 2, Config: NewDefaultConfig(), block: blk}
	details, err := r.Process(ctx2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !details[0].UnitAmount.Equal(decimal.NewFromInt(20)) {
		t.Errorf("expected carried-over stake of 20, got %s", details[0].UnitAmount.String())
	}
}

func TestSpecialPatternsEmitsOneDetailPerMatch(t *testing.T) {
	ctx := newLineContext("10v 25v con 5")
	details, err := processSpecialPatterns(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(details) != 2 {
		t.Fatalf("expected one detail per volteo match, got %d", len(details))
	}
	if !reflect.DeepEqual(details[1].Numbers, []string{"25", "52"}) {
		t.Errorf("second volteo numbers = %v, want [25 52]", details[1].Numbers)
	}
}

func TestSpecialPatternsCentenasTodasExpandsEveryBaseNumber(t *testing.T) {
	ctx := newLineContext("10 20 por todas las centenas con 2")
	details, err := processSpecialPatterns(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(details) != 1 {
		t.Fatalf("expected one centenas-todas detail, got %d", len(details))
	}
	if len(details[0].Numbers) != 20 {
		t.Errorf("expected 10 centenas per base number (20 total), got %d", len(details[0].Numbers))
	}
	if !details[0].UnitAmount.Equal(decimal.NewFromInt(2)) {
		t.Errorf("unit amount = %s, want 2", details[0].UnitAmount.String())
	}
}

func TestCandadoRecognizerBareFormEmitsNoPrefixStake(t *testing.T) {
	r := candadoRecognizer()
	ctx := newLineContext("05 10 candado con 100")
	if !r.CanProcess(ctx) {
		t.Fatal("expected candado recognizer to claim this line")
	}
	details, err := r.Process(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(details) != 1 {
		t.Fatalf("expected only the candado detail without a con-prefix, got %d details", len(details))
	}
	if !details[0].Amount.Equal(decimal.NewFromInt(100)) {
		t.Errorf("candado amount = %s, want 100", details[0].Amount.String())
	}
}

func TestBasicBetRecognizerCarriesCorridoStakeOver(t *testing.T) {
	blk := &blockContext{}
	r := basicBetRecognizer()
	ctx1 := &LineContext{Line: "05 con 20 y 30", OriginalLine: "05 con 20 y 30", LineNumber: 1, Config: NewDefaultConfig(), block: blk}
	if _, err := r.Process(ctx1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ctx2 := &LineContext{Line: "10", OriginalLine: "10", LineNumber: 2, Config: NewDefaultConfig(), block: blk}
	details, err := r.Process(ctx2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(details) != 2 {
		t.Fatalf("expected carried-over fijo and corrido, got %d details", len(details))
	}
	if !details[1].UnitAmount.Equal(decimal.NewFromInt(30)) {
		t.Errorf("expected carried-over corrido stake of 30, got %s", details[1].UnitAmount.String())
	}
}

func TestAutoCorrectRecognizerNormalizesLine(t *testing.T) {
	r := autoCorrectRecognizer()
	ctx := newLineContext("05-10 con 20 pesos")
	if _, err := r.Process(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "05 10 con 20"
	if ctx.Line != want {
		t.Errorf("AutoCorrect result = %q, want %q", ctx.Line, want)
	}
}

// Package loteria implements the lottery-ticket parsing pipeline: text
// in, a typed, decimal-exact ParseResult out. Domain types live in the
// sibling pkg/loteriabet package, which has no knowledge of text or
// regular expressions.
package loteria

import "github.com/lediergzl/loteria-parser/pkg/loteriabet"

// Parse constructs a throwaway *Parser from cfg (nil for defaults) and
// runs it once.
func Parse(text string, cfg *Config) loteriabet.ParseResult {
	p, err := NewParser(cfg)
	if err != nil {
		return loteriabet.ParseResult{
			Success:  false,
			Metadata: loteriabet.ResultMetadata{Errors: []string{err.Error()}},
		}
	}
	return p.Parse(text)
}

// Validate runs the cheap pre-parse syntax check without building a
// full Parser's recognizer chain.
func Validate(text string, cfg *Config) (ValidationResult, error) {
	if _, err := withDefaults(cfg); err != nil {
		return ValidationResult{}, err
	}
	return ValidateSyntax(text), nil
}

// ExtractStructure segments text into blocks with no bet recognition,
// using a throwaway *Parser for its Preprocess/Segment configuration.
func ExtractStructure(text string, cfg *Config) ([]BlockInfo, error) {
	p, err := NewParser(cfg)
	if err != nil {
		return nil, err
	}
	return p.ExtractStructure(text)
}

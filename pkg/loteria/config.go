package loteria

import (
	"time"

	en "github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/shopspring/decimal"
	validator "gopkg.in/go-playground/validator.v9"
	enTranslations "gopkg.in/go-playground/validator.v9/translations/en"
)

// CacheConfig controls the in-process parse-result cache.
type CacheConfig struct {
	Enabled bool          `validate:"-"`
	TTL     time.Duration `validate:"gte=0"`
	MaxSize int           `validate:"gte=0"`
}

// Config holds every tunable the pipeline reads.
type Config struct {
	StrictMode       bool            `validate:"-"`
	AutoExpand       bool            `validate:"-"`
	ValidateTotals   bool            `validate:"-"`
	MaxJugadores     int             `validate:"gt=0"`
	CurrencySymbol   string          `validate:"required"`
	DecimalSeparator string          `validate:"required,len=1"`
	AllowNegative    bool            `validate:"-"`
	MaxMonto         decimal.Decimal `validate:"-"`
	DefaultMontoFijo decimal.Decimal `validate:"-"`
	DefaultMontoCorr decimal.Decimal `validate:"-"`
	TimeoutMs        int             `validate:"gt=0"`
	Cache            CacheConfig     `validate:"-"`
	ExpansionCap     int             `validate:"gt=0"`
}

// NewDefaultConfig returns a Config populated with conservative defaults.
func NewDefaultConfig() *Config {
	return &Config{
		StrictMode:       false,
		AutoExpand:       true,
		ValidateTotals:   true,
		MaxJugadores:     100,
		CurrencySymbol:   "$",
		DecimalSeparator: ".",
		AllowNegative:    false,
		MaxMonto:         decimal.NewFromInt(1_000_000),
		DefaultMontoFijo: decimal.NewFromInt(1),
		DefaultMontoCorr: decimal.Zero,
		TimeoutMs:        5000,
		Cache: CacheConfig{
			Enabled: true,
			TTL:     300 * time.Second,
			MaxSize: 1000,
		},
		ExpansionCap: 1000,
	}
}

// Timeout returns TimeoutMs as a time.Duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutMs) * time.Millisecond
}

var (
	structValidator  = validator.New()
	configTranslator ut.Translator
)

func init() {
	englishLocale := en.New()
	uni := ut.New(englishLocale, englishLocale)
	configTranslator, _ = uni.GetTranslator("en")
	_ = enTranslations.RegisterDefaultTranslations(structValidator, configTranslator)
}

// Validate checks the config's struct-tag invariants via validator.v9,
// translating field errors into human-readable messages.
func (c *Config) Validate() error {
	err := structValidator.Struct(c)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	messages := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		messages = append(messages, fe.Translate(configTranslator))
	}
	return &ValidationError{Messages: messages, Cause: err}
}

// withDefaults fills in a nil config with NewDefaultConfig and validates
// a supplied one, returning a usable, non-nil *Config either way.
func withDefaults(cfg *Config) (*Config, error) {
	if cfg == nil {
		return NewDefaultConfig(), nil
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

package loteria

import "go.uber.org/zap"

// Option configures a *Parser at construction time.
type Option func(*Parser)

// WithLogger attaches a diagnostic zap.Logger. Parsers default to
// zap.NewNop() — logging is purely diagnostic and never affects control
// flow or ParseResult contents.
func WithLogger(logger *zap.Logger) Option {
	return func(p *Parser) {
		p.logger = logger
	}
}

// WithCache attaches a pre-built *Cache, letting callers share one cache
// across several parsers. Parsers otherwise build their own from
// cfg.Cache.
func WithCache(cache *Cache) Option {
	return func(p *Parser) {
		p.cache = cache
	}
}

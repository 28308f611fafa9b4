package humanize

import (
	"fmt"
	"time"
)

// Humanizer renders millisecond durations as phrases. The zero value is not
// usable; build one with NewHumanizer. A Humanizer is immutable and safe for
// concurrent use.
type Humanizer struct {
	cfg *Config
}

var defaultHumanizer = &Humanizer{cfg: defaultConfig()}

// NewHumanizer builds a Humanizer whose defaults are opts applied over the
// package defaults.
func NewHumanizer(opts ...Option) (*Humanizer, error) {
	cfg, err := NewConfig(opts...)
	if err != nil {
		return nil, err
	}
	return &Humanizer{cfg: cfg}, nil
}

// With derives a Humanizer with opts baked into its defaults
func (h *Humanizer) With(opts ...Option) (*Humanizer, error) {
	cfg, err := h.config().Clone().apply(opts...)
	if err != nil {
		return nil, err
	}
	return &Humanizer{cfg: cfg}, nil
}

// Config returns a copy of the humanizer defaults
func (h *Humanizer) Config() *Config {
	return h.config().Clone()
}

func (h *Humanizer) config() *Config {
	if h == nil || h.cfg == nil {
		return defaultHumanizer.cfg
	}
	return h.cfg
}

// Humanize renders ms with the humanizer defaults overridden by opts. The
// sign of ms only selects the past or future adverb.
func (h *Humanizer) Humanize(ms float64, opts ...Option) (string, error) {
	cfg, err := h.config().Clone().apply(opts...)
	if err != nil {
		return "", err
	}

	ctx := &HookContext{
		Milliseconds: ms,
		Language:     cfg.Language,
	}

	for _, hook := range cfg.Hooks {
		hook.BeforeHumanize(ctx)
	}
	cfg.Language = normalizeLanguage(ctx.Language)

	result, pieces, err := humanize(cfg, ctx.Milliseconds)

	ctx.Pieces = pieces
	ctx.Result = result
	ctx.Error = err

	for _, hook := range cfg.Hooks {
		hook.AfterHumanize(ctx)
	}

	return ctx.Result, ctx.Error
}

// HumanizeDuration renders d, keeping sub-millisecond precision as a
// fractional millisecond count.
func (h *Humanizer) HumanizeDuration(d time.Duration, opts ...Option) (string, error) {
	return h.Humanize(durationMilliseconds(d), opts...)
}

// Humanize renders ms using the package defaults overridden by opts
func Humanize(ms float64, opts ...Option) (string, error) {
	return defaultHumanizer.Humanize(ms, opts...)
}

// HumanizeDuration renders d using the package defaults overridden by opts
func HumanizeDuration(d time.Duration, opts ...Option) (string, error) {
	return defaultHumanizer.HumanizeDuration(d, opts...)
}

func humanize(cfg *Config, ms float64) (string, []Piece, error) {
	if len(cfg.Units) == 0 {
		return "", nil, fmt.Errorf("%w: units must not be empty", ErrInvalidOption)
	}

	chain, err := resolveDictionaries(cfg)
	if err != nil {
		return "", nil, err
	}

	parts, err := decompose(ms, cfg.Units, cfg.UnitMeasures, cfg.MaxDecimalPoints)
	if err != nil {
		return "", nil, err
	}

	if cfg.Round {
		parts.round(cfg.UnitMeasures, cfg.Largest)
	}

	pieces := parts.retained(cfg.Largest)

	result, err := renderer{chain: chain, cfg: cfg}.render(pieces, ms)
	if err != nil {
		return "", pieces, err
	}
	return result, pieces, nil
}

func durationMilliseconds(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

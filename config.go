package humanize

import (
	"fmt"
	"maps"
)

// Config captures every humanizer setting. It is built once from defaults
// and cloned for every call that supplies overrides.
type Config struct {
	Language         string
	Fallbacks        []string
	Units            []Unit
	UnitMeasures     map[Unit]float64
	Round            bool
	Largest          int
	MaxDecimalPoints int
	Spacer           string
	Conjunction      string
	SerialComma      bool
	Decimal          string
	Delimiter        string
	Languages        Dictionaries
	TimeAdverb       bool
	Hooks            []Hook
	Store            Store
	Resolver         FallbackResolver
	ParentFallback   bool

	hasDecimal   bool
	hasDelimiter bool
}

// Option mutates Config during construction
type Option func(*Config) error

var defaultUnits = []Unit{UnitYear, UnitMonth, UnitWeek, UnitDay, UnitHour, UnitMinute, UnitSecond}

func defaultConfig() *Config {
	return &Config{
		Language:         "en",
		Units:            append([]Unit(nil), defaultUnits...),
		UnitMeasures:     maps.Clone(DefaultUnitMeasures),
		MaxDecimalPoints: -1,
		Spacer:           " ",
		SerialComma:      true,
	}
}

// NewConfig builds Config by applying opts over the defaults
func NewConfig(opts ...Option) (*Config, error) {
	return defaultConfig().apply(opts...)
}

func (cfg *Config) apply(opts ...Option) (*Config, error) {
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// Clone returns a deep copy safe to mutate
func (cfg *Config) Clone() *Config {
	if cfg == nil {
		return defaultConfig()
	}

	out := *cfg
	out.Fallbacks = append([]string(nil), cfg.Fallbacks...)
	out.Units = append([]Unit(nil), cfg.Units...)
	out.UnitMeasures = maps.Clone(cfg.UnitMeasures)
	out.Hooks = append([]Hook(nil), cfg.Hooks...)
	if cfg.Languages != nil {
		out.Languages = make(Dictionaries, len(cfg.Languages))
		for code, dict := range cfg.Languages {
			out.Languages[code] = dict
		}
	}
	return &out
}

// WithLanguage selects the dictionary language
func WithLanguage(language string) Option {
	return func(c *Config) error {
		c.Language = normalizeLanguage(language)
		return nil
	}
}

// WithFallbacks sets the languages tried, in order, when the primary
// language is not registered. An empty list is rejected.
func WithFallbacks(languages ...string) Option {
	return func(c *Config) error {
		normalized := make([]string, 0, len(languages))
		for _, language := range languages {
			if language = normalizeLanguage(language); language != "" {
				normalized = append(normalized, language)
			}
		}
		if len(normalized) == 0 {
			return ErrInvalidFallbacks
		}
		c.Fallbacks = normalized
		return nil
	}
}

// WithUnits replaces the unit list used for decomposition
func WithUnits(units ...Unit) Option {
	return func(c *Config) error {
		if len(units) == 0 {
			return fmt.Errorf("%w: units must not be empty", ErrInvalidOption)
		}
		c.Units = append([]Unit(nil), units...)
		return nil
	}
}

// WithUnitMeasures overrides the weight of the given units
func WithUnitMeasures(measures map[Unit]float64) Option {
	return func(c *Config) error {
		if c.UnitMeasures == nil {
			c.UnitMeasures = make(map[Unit]float64, len(measures))
		}
		for unit, weight := range measures {
			if weight <= 0 {
				return fmt.Errorf("%w: measure for %q must be positive", ErrInvalidOption, unit)
			}
			c.UnitMeasures[unit] = weight
		}
		return nil
	}
}

func WithRound(round bool) Option {
	return func(c *Config) error {
		c.Round = round
		return nil
	}
}

// WithLargest caps the number of rendered units. Zero removes the cap.
func WithLargest(n int) Option {
	return func(c *Config) error {
		if n < 0 {
			return fmt.Errorf("%w: largest must not be negative", ErrInvalidOption)
		}
		c.Largest = n
		return nil
	}
}

// WithMaxDecimalPoints truncates the smallest unit to n fractional digits
func WithMaxDecimalPoints(n int) Option {
	return func(c *Config) error {
		if n < 0 {
			return fmt.Errorf("%w: max decimal points must not be negative", ErrInvalidOption)
		}
		c.MaxDecimalPoints = n
		return nil
	}
}

func WithSpacer(spacer string) Option {
	return func(c *Config) error {
		c.Spacer = spacer
		return nil
	}
}

func WithConjunction(conjunction string) Option {
	return func(c *Config) error {
		c.Conjunction = conjunction
		return nil
	}
}

func WithSerialComma(enabled bool) Option {
	return func(c *Config) error {
		c.SerialComma = enabled
		return nil
	}
}

// WithDecimal overrides the dictionary decimal separator
func WithDecimal(decimal string) Option {
	return func(c *Config) error {
		c.Decimal = decimal
		c.hasDecimal = true
		return nil
	}
}

// WithDelimiter overrides the dictionary delimiter
func WithDelimiter(delimiter string) Option {
	return func(c *Config) error {
		c.Delimiter = delimiter
		c.hasDelimiter = true
		return nil
	}
}

// WithTimeAdverb wraps results in the dictionary past/future templates
func WithTimeAdverb(enabled bool) Option {
	return func(c *Config) error {
		c.TimeAdverb = enabled
		return nil
	}
}

// WithDictionary registers dict for language, taking precedence over the store
func WithDictionary(language string, dict *Dictionary) Option {
	return func(c *Config) error {
		language = normalizeLanguage(language)
		if language == "" || dict == nil {
			return fmt.Errorf("%w: dictionary requires a language and a value", ErrInvalidOption)
		}
		clone := dict.Clone()
		if clone.Language == "" {
			clone.Language = language
		}
		if c.Languages == nil {
			c.Languages = make(Dictionaries)
		}
		c.Languages[language] = clone
		return nil
	}
}

// WithDictionaries registers every dictionary in dicts
func WithDictionaries(dicts Dictionaries) Option {
	return func(c *Config) error {
		for language, dict := range dicts {
			if err := WithDictionary(language, dict)(c); err != nil {
				return err
			}
		}
		return nil
	}
}

// WithLoader loads dictionaries and registers them like WithDictionaries
func WithLoader(loader Loader) Option {
	return func(c *Config) error {
		if loader == nil {
			return nil
		}
		dicts, err := loader.Load()
		if err != nil {
			return err
		}
		return WithDictionaries(dicts)(c)
	}
}

// WithStore replaces the built-in dictionary store
func WithStore(store Store) Option {
	return func(c *Config) error {
		c.Store = store
		return nil
	}
}

// WithFallbackResolver consults resolver after the explicit fallbacks
func WithFallbackResolver(resolver FallbackResolver) Option {
	return func(c *Config) error {
		c.Resolver = resolver
		return nil
	}
}

// WithParentFallback appends the parent tags of the language and of each
// fallback (pt-BR to pt) to the lookup chain, after every named language.
func WithParentFallback(enabled bool) Option {
	return func(c *Config) error {
		c.ParentFallback = enabled
		return nil
	}
}

// WithFallback records a fallback chain for one language on the static resolver
func WithFallback(language string, fallbacks ...string) Option {
	return func(c *Config) error {
		if language == "" {
			return nil
		}
		resolver, ok := c.Resolver.(*StaticFallbackResolver)
		if !ok {
			if c.Resolver != nil {
				return fmt.Errorf("%w: fallback resolver is not static", ErrInvalidOption)
			}
			resolver = NewStaticFallbackResolver()
		}
		// configs share resolvers across clones
		resolver = resolver.clone()
		resolver.Set(language, fallbacks...)
		c.Resolver = resolver
		return nil
	}
}

func WithHooks(hooks ...Hook) Option {
	return func(c *Config) error {
		for _, hook := range hooks {
			if hook == nil {
				continue
			}
			c.Hooks = append(c.Hooks, hook)
		}
		return nil
	}
}

func (cfg *Config) store() Store {
	if cfg.Store != nil {
		return cfg.Store
	}
	return BuiltinStore()
}

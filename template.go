package humanize

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// HelperConfig configures template helper exports
type HelperConfig struct {
	// LanguageKey is the template data key humanize_duration_in reads the
	// language from when given a map instead of a language code.
	LanguageKey string
	// OnError renders the helper output when humanizing fails. By default
	// the error text is returned.
	OnError func(value any, err error) string
}

// TemplateHelpers exposes h as text/template and html/template functions:
//
//	{{ humanize_duration .Elapsed }}
//	{{ humanize_duration_in "de" .Elapsed }}
//	{{ humanize_duration_in . .Elapsed }}
//	{{ humanize_largest 2 .Elapsed }}
//
// Values may be integers or floats (milliseconds), time.Duration, or
// numeric strings.
func TemplateHelpers(h *Humanizer, cfg HelperConfig) map[string]any {
	if h == nil {
		h = defaultHumanizer
	}

	languageKey := cfg.LanguageKey
	if languageKey == "" {
		languageKey = "language"
	}

	render := func(value any, opts ...Option) string {
		ms, err := toMilliseconds(value)
		if err == nil {
			var out string
			if out, err = h.Humanize(ms, opts...); err == nil {
				return out
			}
		}
		if cfg.OnError != nil {
			return cfg.OnError(value, err)
		}
		return err.Error()
	}

	return map[string]any{
		"humanize_duration": func(value any) string {
			return render(value)
		},
		"humanize_duration_in": func(lang any, value any) string {
			return render(value, WithLanguage(languageFromContext(lang, languageKey)))
		},
		"humanize_largest": func(n int, value any) string {
			return render(value, WithLargest(n), WithRound(true))
		},
	}
}

func languageFromContext(value any, key string) string {
	switch v := value.(type) {
	case string:
		return v
	case map[string]any:
		if lang, ok := v[key].(string); ok {
			return lang
		}
	case map[string]string:
		return v[key]
	case fmt.Stringer:
		return v.String()
	}
	return ""
}

func toMilliseconds(value any) (float64, error) {
	switch v := value.(type) {
	case time.Duration:
		return durationMilliseconds(v), nil
	case int:
		return float64(v), nil
	case int32:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case uint:
		return float64(v), nil
	case uint32:
		return float64(v), nil
	case uint64:
		return float64(v), nil
	case float32:
		return float64(v), nil
	case float64:
		return v, nil
	case string:
		ms, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q is not a millisecond count", ErrInvalidOption, v)
		}
		return ms, nil
	default:
		return 0, fmt.Errorf("%w: unsupported duration value %T", ErrInvalidOption, value)
	}
}

package humanize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "en", cfg.Language)
	assert.Equal(t, []Unit{UnitYear, UnitMonth, UnitWeek, UnitDay, UnitHour, UnitMinute, UnitSecond}, cfg.Units)
	assert.Equal(t, DefaultUnitMeasures, cfg.UnitMeasures)
	assert.Equal(t, " ", cfg.Spacer)
	assert.Empty(t, cfg.Conjunction)
	assert.True(t, cfg.SerialComma)
	assert.False(t, cfg.Round)
	assert.Zero(t, cfg.Largest)
	assert.Equal(t, -1, cfg.MaxDecimalPoints)
	assert.Same(t, BuiltinStore(), cfg.store())
}

func TestConfigCloneIsDeep(t *testing.T) {
	cfg, err := NewConfig(
		WithFallbacks("de"),
		WithDictionary("xx", &Dictionary{}),
		WithUnitMeasures(map[Unit]float64{UnitSecond: 1000}),
	)
	require.NoError(t, err)

	clone := cfg.Clone()
	clone.Fallbacks[0] = "fr"
	clone.Units[0] = UnitMillisecond
	clone.UnitMeasures[UnitSecond] = 1
	clone.Languages["yy"] = &Dictionary{}

	assert.Equal(t, []string{"de"}, cfg.Fallbacks)
	assert.Equal(t, UnitYear, cfg.Units[0])
	assert.Equal(t, 1000.0, cfg.UnitMeasures[UnitSecond])
	assert.NotContains(t, cfg.Languages, "yy")

	assert.NotNil(t, (*Config)(nil).Clone())
}

func TestWithUnitMeasuresDoesNotTouchDefaults(t *testing.T) {
	_, err := NewConfig(WithUnitMeasures(map[Unit]float64{UnitMonth: 30 * 86400000}))
	require.NoError(t, err)

	assert.Equal(t, 2629800000.0, DefaultUnitMeasures[UnitMonth])
}

func TestWithDictionaryValidation(t *testing.T) {
	_, err := NewConfig(WithDictionary("", &Dictionary{}))
	assert.ErrorIs(t, err, ErrInvalidOption)

	_, err = NewConfig(WithDictionary("xx", nil))
	assert.ErrorIs(t, err, ErrInvalidOption)

	cfg, err := NewConfig(WithDictionary("xx_YY", &Dictionary{}))
	require.NoError(t, err)
	assert.Equal(t, "xx-YY", cfg.Languages["xx-YY"].Language)
}

func TestWithLanguageNormalizes(t *testing.T) {
	cfg, err := NewConfig(WithLanguage(" zh_TW "))
	require.NoError(t, err)
	assert.Equal(t, "zh-TW", cfg.Language)
}

func TestWithFallbackDoesNotShareResolver(t *testing.T) {
	base, err := NewConfig(WithFallback("xx", "de"))
	require.NoError(t, err)

	derived, err := base.Clone().apply(WithFallback("xx", "fr"))
	require.NoError(t, err)

	assert.Equal(t, []string{"de"}, base.Resolver.Resolve("xx"))
	assert.Equal(t, []string{"fr"}, derived.Resolver.Resolve("xx"))
}

func TestWithFallbackRequiresStaticResolver(t *testing.T) {
	custom := fallbackResolverFunc(func(string) []string { return nil })

	_, err := NewConfig(WithFallbackResolver(custom), WithFallback("xx", "de"))
	assert.ErrorIs(t, err, ErrInvalidOption)
}

type fallbackResolverFunc func(string) []string

func (fn fallbackResolverFunc) Resolve(language string) []string {
	return fn(language)
}

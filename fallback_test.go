package humanize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticFallbackResolver(t *testing.T) {
	resolver := NewStaticFallbackResolver()
	resolver.Set("pt_BR", "pt-PT", "pt_BR", "", "es", "es")

	assert.Equal(t, []string{"pt-PT", "es"}, resolver.Resolve("pt-BR"))
	assert.Nil(t, resolver.Resolve("fr"))

	chain := resolver.Resolve("pt-BR")
	chain[0] = "mutated"
	assert.Equal(t, []string{"pt-PT", "es"}, resolver.Resolve("pt-BR"))

	var nilResolver *StaticFallbackResolver
	assert.Nil(t, nilResolver.Resolve("pt-BR"))
}

func TestCandidateLanguages(t *testing.T) {
	assert.Equal(t, []string{"es-MX", "en", "es"}, candidateLanguages("es-MX", []string{"en", "es"}, false))
	assert.Equal(t, []string{"es-MX", "en", "es", "es-419"}, candidateLanguages("es_MX", []string{"en", "es"}, true))
	assert.Equal(t, []string{"pt-BR", "de-AT", "pt", "de"}, candidateLanguages("pt-BR", []string{"de-AT"}, true))
	assert.Equal(t, []string{"xx", "de"}, candidateLanguages("xx", []string{"de"}, false))
}

func TestResolveDictionariesOrder(t *testing.T) {
	user := &Dictionary{Language: "de"}
	cfg, err := NewConfig(
		WithLanguage("de"),
		WithFallbacks("en"),
		WithDictionary("de", user),
	)
	require.NoError(t, err)

	chain, err := resolveDictionaries(cfg)
	require.NoError(t, err)
	require.Len(t, chain, 2)
	assert.Equal(t, "de", chain[0].Language)
	assert.Empty(t, chain[0].Units)
	assert.Equal(t, "en", chain[1].Language)
}

func TestResolveDictionariesRegionalLanguage(t *testing.T) {
	cfg, err := NewConfig(WithLanguage("de-CH"), WithFallbacks("en"))
	require.NoError(t, err)

	chain, err := resolveDictionaries(cfg)
	require.NoError(t, err)
	require.Len(t, chain, 1)
	assert.Equal(t, "en", chain[0].Language)

	cfg.ParentFallback = true
	chain, err = resolveDictionaries(cfg)
	require.NoError(t, err)
	require.Len(t, chain, 2)
	assert.Equal(t, "en", chain[0].Language)
	assert.Equal(t, "de", chain[1].Language)
}

func TestResolveDictionariesUsesResolver(t *testing.T) {
	cfg, err := NewConfig(WithLanguage("xx"), WithFallback("xx", "sv"))
	require.NoError(t, err)

	chain, err := resolveDictionaries(cfg)
	require.NoError(t, err)
	assert.Equal(t, "sv", chain[0].Language)

	got, err := Humanize(95000, WithLanguage("xx"), WithFallback("xx", "sv"))
	require.NoError(t, err)
	assert.Equal(t, "1 minut, 35 sekunder", got)
}

func TestResolveDictionariesErrors(t *testing.T) {
	cfg, err := NewConfig(WithLanguage("xx"))
	require.NoError(t, err)

	_, err = resolveDictionaries(cfg)
	assert.ErrorIs(t, err, ErrNoLanguage)
	assert.Contains(t, err.Error(), `"xx"`)
}

func TestNormalizeLanguage(t *testing.T) {
	assert.Equal(t, "zh-CN", normalizeLanguage(" zh_CN "))
	assert.Empty(t, normalizeLanguage("  "))
}

func TestLanguageParentChain(t *testing.T) {
	assert.Equal(t, []string{"es-419", "es"}, languageParentChain("es-MX"))
	assert.Equal(t, []string{"pt"}, languageParentChain("pt-BR"))
	assert.Nil(t, languageParentChain("en"))
	assert.Nil(t, languageParentChain(""))
}

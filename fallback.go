package humanize

import "fmt"

// FallbackResolver resolves fallback language chains
type FallbackResolver interface {
	Resolve(language string) []string
}

// StaticFallbackResolver holds explicit chains set per language
type StaticFallbackResolver struct {
	chains map[string][]string
}

var _ FallbackResolver = &StaticFallbackResolver{}

func NewStaticFallbackResolver() *StaticFallbackResolver {
	return &StaticFallbackResolver{chains: make(map[string][]string)}
}

// Set records the fallback chain for language, dropping duplicates
func (s *StaticFallbackResolver) Set(language string, fallbacks ...string) {
	language = normalizeLanguage(language)
	if s == nil || language == "" {
		return
	}
	if s.chains == nil {
		s.chains = make(map[string][]string)
	}
	s.chains[language] = sanitizeFallbacks(language, fallbacks)
}

func (s *StaticFallbackResolver) Resolve(language string) []string {
	if s == nil || s.chains == nil {
		return nil
	}
	chain := s.chains[normalizeLanguage(language)]
	if len(chain) == 0 {
		return nil
	}
	return append([]string(nil), chain...)
}

func (s *StaticFallbackResolver) clone() *StaticFallbackResolver {
	out := NewStaticFallbackResolver()
	if s == nil {
		return out
	}
	for language, chain := range s.chains {
		out.chains[language] = append([]string(nil), chain...)
	}
	return out
}

// candidateLanguages returns the ordered lookup chain: the language, then
// every fallback. With parents set, the parent tags of those languages follow
// in the same order.
func candidateLanguages(language string, fallbacks []string, parents bool) []string {
	seen := make(map[string]struct{}, 4)
	candidates := make([]string, 0, 4)

	appendLanguage := func(value string) {
		if value == "" {
			return
		}
		if _, ok := seen[value]; ok {
			return
		}
		seen[value] = struct{}{}
		candidates = append(candidates, value)
	}

	named := append([]string{language}, fallbacks...)
	for i, lang := range named {
		named[i] = normalizeLanguage(lang)
		appendLanguage(named[i])
	}

	if parents {
		for _, lang := range named {
			for _, parent := range languageParentChain(lang) {
				appendLanguage(parent)
			}
		}
	}

	return candidates
}

// resolveDictionaries returns every dictionary found along the candidate
// chain, call level dictionaries first, then the store.
func resolveDictionaries(cfg *Config) ([]*Dictionary, error) {
	store := cfg.store()

	fallbacks := cfg.Fallbacks
	if cfg.Resolver != nil {
		fallbacks = append(append([]string(nil), fallbacks...), cfg.Resolver.Resolve(cfg.Language)...)
	}

	var chain []*Dictionary
	for _, candidate := range candidateLanguages(cfg.Language, fallbacks, cfg.ParentFallback) {
		if dict, ok := cfg.Languages[candidate]; ok && dict != nil {
			chain = append(chain, dict)
			continue
		}
		if store == nil {
			continue
		}
		if dict, ok := store.Dictionary(candidate); ok {
			chain = append(chain, dict)
		}
	}

	if len(chain) == 0 {
		return nil, fmt.Errorf("%w: %q (fallbacks %v)", ErrNoLanguage, cfg.Language, cfg.Fallbacks)
	}
	return chain, nil
}

func sanitizeFallbacks(language string, fallbacks []string) []string {
	if len(fallbacks) == 0 {
		return nil
	}

	seen := map[string]struct{}{
		normalizeLanguage(language): {},
	}

	result := make([]string, 0, len(fallbacks))
	for _, candidate := range fallbacks {
		normalized := normalizeLanguage(candidate)
		if normalized == "" {
			continue
		}
		if _, exists := seen[normalized]; exists {
			continue
		}
		seen[normalized] = struct{}{}
		result = append(result, normalized)
	}
	if len(result) == 0 {
		return nil
	}
	return result
}

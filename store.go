package humanize

import (
	"sort"
	"strings"
	"sync"
)

// Store exposes read only access to language dictionaries
type Store interface {
	// Dictionary returns the dictionary for language and ok=false if missing
	Dictionary(language string) (*Dictionary, bool)
	// Languages returns the languages known to the store, without aliases
	Languages() []string
}

// Loader retrieves the dictionaries used to seed a Store
type Loader interface {
	Load() (Dictionaries, error)
}

// LoaderFunc adapters allow bare functions to implement Loader interface
type LoaderFunc func() (Dictionaries, error)

// Load implements Loader for LoaderFunc
func (fn LoaderFunc) Load() (Dictionaries, error) {
	return fn()
}

// StaticStore is an in memory store, read only after construction. It hands
// out shared dictionaries; callers must Clone before mutating one.
type StaticStore struct {
	dictionaries Dictionaries
	aliases      map[string]string
	languages    []string
}

var _ Store = &StaticStore{}

// StaticStoreOption configures a StaticStore
type StaticStoreOption func(*StaticStore)

// WithAlias serves target's dictionary under alias without listing alias
// in Languages.
func WithAlias(alias, target string) StaticStoreOption {
	return func(s *StaticStore) {
		alias, target = normalizeLanguage(alias), normalizeLanguage(target)
		if alias == "" || target == "" {
			return
		}
		if s.aliases == nil {
			s.aliases = make(map[string]string)
		}
		s.aliases[alias] = target
	}
}

// NewStaticStore builds an immutable snapshot from the given dictionaries
func NewStaticStore(data Dictionaries, opts ...StaticStoreOption) *StaticStore {
	store := &StaticStore{dictionaries: make(Dictionaries, len(data))}

	for identifier, dict := range data {
		identifier = strings.TrimSpace(identifier)
		language := normalizeLanguage(identifier)
		if language == "" || dict == nil {
			continue
		}
		clone := dict.Clone()
		if clone.Language == "" {
			clone.Language = language
		}
		if _, exists := store.dictionaries[language]; !exists {
			// listed as registered, zh_CN stays zh_CN
			store.languages = append(store.languages, identifier)
		}
		store.dictionaries[language] = clone
	}

	for _, opt := range opts {
		if opt != nil {
			opt(store)
		}
	}

	// make languages deterministic
	sort.Strings(store.languages)

	return store
}

// NewStaticStoreFromLoader hydrates a StaticStore using the provided loader
func NewStaticStoreFromLoader(loader Loader, opts ...StaticStoreOption) (*StaticStore, error) {
	if loader == nil {
		return NewStaticStore(nil, opts...), nil
	}

	dicts, err := loader.Load()
	if err != nil {
		return nil, err
	}

	return NewStaticStore(dicts, opts...), nil
}

// Dictionary returns the shared dictionary registered for language
func (s *StaticStore) Dictionary(language string) (*Dictionary, bool) {
	if s == nil {
		return nil, false
	}

	language = normalizeLanguage(language)
	if target, ok := s.aliases[language]; ok {
		language = target
	}

	dict, ok := s.dictionaries[language]
	if !ok || dict == nil {
		return nil, false
	}
	return dict, true
}

// Languages returns every registered identifier, spelled as registered
func (s *StaticStore) Languages() []string {
	if s == nil || len(s.languages) == 0 {
		return nil
	}
	out := make([]string, len(s.languages))
	copy(out, s.languages)
	return out
}

var builtinStore = sync.OnceValue(func() *StaticStore {
	dicts, err := newEmbeddedLoader().Load()
	if err != nil {
		panic("humanize: load built-in dictionaries: " + err.Error())
	}
	for language, dict := range goDictionaries() {
		dicts[language] = dict
	}
	return NewStaticStore(dicts, WithAlias("gr", "el"))
})

// BuiltinStore returns the store holding every bundled language
func BuiltinStore() *StaticStore {
	return builtinStore()
}

// SupportedLanguages returns the identifiers of every bundled language, such
// as zh_CN. Lookups accept either separator.
func SupportedLanguages() []string {
	return BuiltinStore().Languages()
}

package humanize

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed data/languages.yaml
var builtinLanguagesYAML []byte

// rawDictionary is the file representation of a Dictionary. Unit values are
// either a constant string or a mapping of plural category to form, with an
// optional "rule" key overriding the dictionary rule for that unit.
type rawDictionary struct {
	Rule        string         `json:"rule" yaml:"rule"`
	Numerals    string         `json:"numerals" yaml:"numerals"`
	Decimal     string         `json:"decimal" yaml:"decimal"`
	Delimiter   string         `json:"delimiter" yaml:"delimiter"`
	Future      string         `json:"future" yaml:"future"`
	Past        string         `json:"past" yaml:"past"`
	NumberFirst bool           `json:"number_first" yaml:"number_first"`
	Units       map[string]any `json:"units" yaml:"units"`
}

// FileLoader reads dictionaries from JSON or YAML files. Later files
// override languages defined by earlier ones.
type FileLoader struct {
	paths []string
}

var _ Loader = &FileLoader{}

func NewFileLoader(paths ...string) *FileLoader {
	return &FileLoader{paths: append([]string(nil), paths...)}
}

func (l *FileLoader) Load() (Dictionaries, error) {
	if l == nil || len(l.paths) == 0 {
		return nil, errors.New("humanize: no loader paths configured")
	}

	result := make(Dictionaries)
	for _, path := range l.paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("humanize: read %s: %w", path, err)
		}

		dicts, err := decodeDictionaryFile(path, data)
		if err != nil {
			return nil, fmt.Errorf("humanize: decode %s: %w", path, err)
		}
		for language, dict := range dicts {
			putDictionary(result, language, dict)
		}
	}
	return result, nil
}

// putDictionary stores dict under identifier, replacing any entry spelled
// with the other separator.
func putDictionary(dst Dictionaries, identifier string, dict *Dictionary) {
	normalized := normalizeLanguage(identifier)
	for existing := range dst {
		if existing != identifier && normalizeLanguage(existing) == normalized {
			delete(dst, existing)
		}
	}
	dst[identifier] = dict
}

func newEmbeddedLoader() Loader {
	return LoaderFunc(func() (Dictionaries, error) {
		return decodeDictionariesYAML("data/languages.yaml", builtinLanguagesYAML)
	})
}

func decodeDictionaryFile(path string, data []byte) (Dictionaries, error) {
	ext := strings.ToLower(filepath.Ext(path))

	switch ext {
	case ".json":
		return decodeDictionariesJSON(path, data)
	case ".yaml", ".yml":
		return decodeDictionariesYAML(path, data)
	default:
		return nil, fmt.Errorf("unsupported extension %s", ext)
	}
}

func decodeDictionariesJSON(path string, data []byte) (Dictionaries, error) {
	var raw map[string]rawDictionary
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return buildDictionaries(path, raw)
}

func decodeDictionariesYAML(path string, data []byte) (Dictionaries, error) {
	var raw map[string]rawDictionary
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("yaml parse error: %w", err)
	}
	if len(raw) == 0 {
		return nil, errors.New("empty dictionaries yaml")
	}
	return buildDictionaries(path, raw)
}

func buildDictionaries(path string, raw map[string]rawDictionary) (Dictionaries, error) {
	languages := make([]string, 0, len(raw))
	for language := range raw {
		languages = append(languages, language)
	}
	sort.Strings(languages)

	result := make(Dictionaries, len(raw))
	for _, language := range languages {
		normalized := normalizeLanguage(language)
		if normalized == "" {
			return nil, fmt.Errorf("empty language in %s", path)
		}
		dict, err := buildDictionary(normalized, raw[language])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", normalized, err)
		}
		putDictionary(result, strings.TrimSpace(language), dict)
	}
	return result, nil
}

func buildDictionary(language string, raw rawDictionary) (*Dictionary, error) {
	rule := OneOtherRule
	if raw.Rule != "" {
		found, ok := LookupPluralRule(raw.Rule)
		if !ok {
			return nil, fmt.Errorf("unknown plural rule %q", raw.Rule)
		}
		rule = found
	}

	dict := &Dictionary{
		Language:    language,
		Units:       make(map[Unit]Word, len(raw.Units)),
		Decimal:     raw.Decimal,
		Delimiter:   raw.Delimiter,
		Future:      raw.Future,
		Past:        raw.Past,
		NumberFirst: raw.NumberFirst,
	}

	if raw.Numerals != "" {
		formatter, ok := LookupNumeralSystem(raw.Numerals)
		if !ok {
			return nil, fmt.Errorf("unknown numeral system %q", raw.Numerals)
		}
		dict.FormatCount = formatter
	}

	for key, value := range raw.Units {
		unit, err := ParseUnit(key)
		if err != nil {
			return nil, err
		}
		word, err := buildWord(rule, value)
		if err != nil {
			return nil, fmt.Errorf("unit %s: %w", unit, err)
		}
		dict.Units[unit] = word
	}

	return dict, nil
}

func buildWord(rule PluralRule, value any) (Word, error) {
	switch v := value.(type) {
	case string:
		return Constant(v), nil
	case map[string]any:
		forms := make(map[PluralCategory]string, len(v))
		for key, raw := range v {
			text, ok := raw.(string)
			if !ok {
				return Word{}, fmt.Errorf("form %q must be a string", key)
			}
			if key == "rule" {
				override, found := LookupPluralRule(text)
				if !found {
					return Word{}, fmt.Errorf("unknown plural rule %q", text)
				}
				rule = override
				continue
			}
			category, err := parsePluralCategory(key)
			if err != nil {
				return Word{}, err
			}
			forms[category] = text
		}
		if _, ok := forms[PluralOther]; !ok {
			return Word{}, errors.New("missing other form")
		}
		return Forms(rule, forms), nil
	default:
		return Word{}, fmt.Errorf("unsupported word payload %T", value)
	}
}

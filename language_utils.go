package humanize

import (
	"strings"

	"golang.org/x/text/language"
)

func languageParentTag(lang string) string {
	if lang == "" {
		return ""
	}

	tag, err := language.Parse(lang)
	if err == nil {
		parent := tag.Parent()
		if parent == language.Und {
			return ""
		}
		value := parent.String()
		if value == "" || value == "und" {
			return ""
		}
		return value
	}

	if idx := strings.LastIndex(lang, "-"); idx > 0 {
		return lang[:idx]
	}

	return ""
}

// languageParentChain returns the parents of lang from closest to root,
// e.g. es-MX yields es-419 and es.
func languageParentChain(lang string) []string {
	if lang == "" {
		return nil
	}

	var chain []string
	seen := map[string]struct{}{lang: {}}

	if tag, err := language.Parse(lang); err == nil {
		for parent := tag.Parent(); parent != language.Und; parent = parent.Parent() {
			parentValue := parent.String()
			if parentValue == "" || parentValue == "und" {
				break
			}
			if _, exists := seen[parentValue]; exists {
				break
			}
			seen[parentValue] = struct{}{}
			chain = append(chain, parentValue)
		}
	}

	for current := languageParentTag(lang); current != ""; current = languageParentTag(current) {
		if _, exists := seen[current]; exists {
			continue
		}
		seen[current] = struct{}{}
		chain = append(chain, current)
	}

	return chain
}

// normalizeLanguage trims lang and replaces underscores with hyphens, so
// zh_CN and zh-CN address the same dictionary.
func normalizeLanguage(lang string) string {
	return strings.ReplaceAll(strings.TrimSpace(lang), "_", "-")
}

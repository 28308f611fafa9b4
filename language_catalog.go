package humanize

import (
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// LanguageInfo describes a bundled language
type LanguageInfo struct {
	Code   string
	Name   string
	Native string
}

// Languages returns display metadata for every bundled language, in the
// order of SupportedLanguages. Names are empty when the code is not a
// valid BCP 47 tag.
func Languages() []LanguageInfo {
	codes := SupportedLanguages()
	out := make([]LanguageInfo, 0, len(codes))
	for _, code := range codes {
		out = append(out, describeLanguage(code))
	}
	return out
}

func describeLanguage(code string) LanguageInfo {
	info := LanguageInfo{Code: code}

	tag, err := language.Parse(normalizeLanguage(code))
	if err != nil {
		return info
	}

	info.Name = display.English.Tags().Name(tag)
	info.Native = display.Self.Name(tag)
	return info
}

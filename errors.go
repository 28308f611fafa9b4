package humanize

import "errors"

// ErrNoLanguage indicates that neither the language nor any fallback resolved to a dictionary.
var ErrNoLanguage = errors.New("humanize: no language found")

// ErrInvalidFallbacks indicates a fallback list that is present but empty
var ErrInvalidFallbacks = errors.New("humanize: fallbacks must contain at least one language")

// ErrUnknownUnit indicates a unit without a weight or without a dictionary word
var ErrUnknownUnit = errors.New("humanize: unknown unit")

// ErrInvalidOption marks option values that cannot be applied
var ErrInvalidOption = errors.New("humanize: invalid option")

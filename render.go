package humanize

import (
	"fmt"
	"strings"
)

const (
	defaultDecimal   = "."
	defaultDelimiter = ", "
)

// renderer formats pieces with a resolved dictionary chain. The first
// dictionary supplies formatting metadata, the rest only fill missing words.
type renderer struct {
	chain []*Dictionary
	cfg   *Config
}

func (r renderer) primary() *Dictionary {
	return r.chain[0]
}

func (r renderer) decimal() string {
	if r.cfg.hasDecimal {
		return r.cfg.Decimal
	}
	if d := r.primary().Decimal; d != "" {
		return d
	}
	return defaultDecimal
}

func (r renderer) delimiter() string {
	if r.cfg.hasDelimiter {
		return r.cfg.Delimiter
	}
	if d := r.primary().Delimiter; d != "" {
		return d
	}
	return defaultDelimiter
}

func (r renderer) word(unit Unit) (Word, error) {
	for _, dict := range r.chain {
		if word, ok := dict.Word(unit); ok {
			return word, nil
		}
	}
	return Word{}, fmt.Errorf("%w: %q has no word in language %q", ErrUnknownUnit, unit, r.primary().Language)
}

func (r renderer) renderPiece(piece Piece) (string, error) {
	word, err := r.word(piece.Unit)
	if err != nil {
		return "", err
	}

	dict := r.primary()

	var count string
	if dict.FormatCount != nil {
		count = dict.FormatCount(piece.Count, r.decimal())
	} else {
		count = FormatLatinCount(piece.Count, r.decimal())
	}

	if dict.NumberFirst {
		return word.Resolve(piece.Count) + r.cfg.Spacer + count, nil
	}
	return count + r.cfg.Spacer + word.Resolve(piece.Count), nil
}

// render joins the retained pieces and wraps them in the time adverb. With
// no pieces it renders a zero count of the smallest configured unit.
func (r renderer) render(pieces []Piece, ms float64) (string, error) {
	if len(pieces) == 0 {
		return r.renderPiece(Piece{Unit: r.cfg.Units[len(r.cfg.Units)-1]})
	}

	items := make([]string, 0, len(pieces))
	for _, piece := range pieces {
		item, err := r.renderPiece(piece)
		if err != nil {
			return "", err
		}
		items = append(items, item)
	}

	result := r.join(items)

	if adverb := r.adverb(ms); adverb != "" {
		result = strings.Replace(adverb, "%s", result, 1)
	}
	return result, nil
}

func (r renderer) join(items []string) string {
	delimiter := r.delimiter()
	conjunction := r.cfg.Conjunction

	switch {
	case conjunction == "" || len(items) == 1:
		return strings.Join(items, delimiter)
	case len(items) == 2:
		return items[0] + conjunction + items[1]
	default:
		var builder strings.Builder
		builder.WriteString(strings.Join(items[:len(items)-1], delimiter))
		if r.cfg.SerialComma {
			builder.WriteString(",")
		}
		builder.WriteString(conjunction)
		builder.WriteString(items[len(items)-1])
		return builder.String()
	}
}

func (r renderer) adverb(ms float64) string {
	if !r.cfg.TimeAdverb || ms == 0 {
		return ""
	}
	if ms < 0 {
		return r.primary().Past
	}
	return r.primary().Future
}

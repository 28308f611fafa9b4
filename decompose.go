package humanize

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// decomposition is the owned result of a single decomposition pass
type decomposition struct {
	pieces        []Piece
	firstOccupied int
}

// decompose splits ms across units. Every unit but the last receives a whole
// count; the last one keeps the fractional remainder, truncated to
// maxDecimalPoints digits when that is not negative.
func decompose(ms float64, units []Unit, measures map[Unit]float64, maxDecimalPoints int) (decomposition, error) {
	remaining := math.Abs(ms)
	pieces := make([]Piece, 0, len(units))

	for i, unit := range units {
		weight, ok := measures[unit]
		if !ok || weight <= 0 {
			return decomposition{}, fmt.Errorf("%w: no measure for %q", ErrUnknownUnit, unit)
		}

		var count float64
		if i == len(units)-1 {
			count = remaining / weight
			if maxDecimalPoints >= 0 {
				count = truncateDecimals(count, maxDecimalPoints)
			}
		} else {
			count = math.Floor(remaining / weight)
		}

		pieces = append(pieces, Piece{Unit: unit, Count: count})
		remaining -= count * weight
	}

	result := decomposition{pieces: pieces}
	for i, piece := range pieces {
		if piece.Count != 0 {
			result.firstOccupied = i
			break
		}
	}
	return result, nil
}

// truncateDecimals drops every digit after places without rounding
func truncateDecimals(value float64, places int) float64 {
	truncated, _ := decimal.NewFromFloat(value).Truncate(int32(places)).Float64()
	return truncated
}

// round walks the pieces from smallest to largest, rounding each count and
// carrying it into the next larger unit when it fills that unit exactly or
// when largest leaves it outside the retained window.
func (d *decomposition) round(measures map[Unit]float64, largest int) {
	for i := len(d.pieces) - 1; i >= 0; i-- {
		piece := &d.pieces[i]
		piece.Count = roundHalfUp(piece.Count)

		if i == 0 {
			break
		}

		previous := &d.pieces[i-1]
		ratio := measures[previous.Unit] / measures[piece.Unit]

		if math.Mod(piece.Count, ratio) == 0 || (largest > 0 && largest-1 < i-d.firstOccupied) {
			previous.Count += piece.Count / ratio
			piece.Count = 0
		}
	}
}

// retained returns the non-zero pieces in order, at most largest of them
func (d decomposition) retained(largest int) []Piece {
	out := make([]Piece, 0, len(d.pieces))
	for _, piece := range d.pieces {
		if piece.Count != 0 {
			out = append(out, piece)
		}
		if largest > 0 && len(out) == largest {
			break
		}
	}
	return out
}

func roundHalfUp(value float64) float64 {
	return math.Floor(value + 0.5)
}

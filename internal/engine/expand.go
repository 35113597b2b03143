package engine

import (
	"math"
	"sort"

	"github.com/piwi3910/cutstock/internal/model"
)

// sortByLengthDesc stable-sorts expanded 1D pieces descending by length.
func sortByLengthDesc(pieces []model.ExpandedPiece1D) {
	sort.SliceStable(pieces, func(i, j int) bool {
		return pieces[i].Length > pieces[j].Length
	})
}

// sortByAreaDesc stable-sorts expanded 2D pieces descending by area; this
// is the default 2D sort strategy.
func sortByAreaDesc(pieces []model.ExpandedPiece2D) {
	sort.SliceStable(pieces, func(i, j int) bool {
		return pieces[i].Area() > pieces[j].Area()
	})
}

// sortPieces2D orders expanded 2D pieces by the given strategy, stably.
func sortPieces2D(pieces []model.ExpandedPiece2D, strategy model.SortStrategy) {
	key := func(p model.ExpandedPiece2D) float64 {
		switch strategy {
		case model.ShortSide:
			return math.Min(p.Width, p.Height)
		case model.LongSide:
			return math.Max(p.Width, p.Height)
		case model.Perimeter:
			return 2 * (p.Width + p.Height)
		case model.Difference:
			return math.Abs(p.Width - p.Height)
		default: // AreaDesc
			return p.Area()
		}
	}
	sort.SliceStable(pieces, func(i, j int) bool {
		return key(pieces[i]) > key(pieces[j])
	})
}

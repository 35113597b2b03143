package engine

import (
	"sort"

	"github.com/piwi3910/cutstock/internal/model"
)

// candidatePositionsBottomLeft returns the origin plus, for every current
// placement, the position just past its right edge (same row) and just
// past its bottom edge (same column) — each offset by kerf so the next
// piece never has to be pulled back off an existing one.
func candidatePositionsBottomLeft(sheet *model.ActiveSheet, kerf float64) []model.Point {
	positions := []model.Point{{X: 0, Y: 0}}
	for _, p := range sheet.Placements {
		positions = append(positions, model.Point{X: p.Right() + kerf, Y: p.Y})
		positions = append(positions, model.Point{X: p.X, Y: p.Bottom() + kerf})
	}
	return positions
}

// tryPlaceBottomLeft attempts to place a piece on sheet. For each allowed
// orientation (in getOrientations order), candidate positions are sorted
// lowest-row-then-leftmost and tried in turn; the first that fits wins.
// Only if no candidate fits any orientation does it return false.
func tryPlaceBottomLeft(sheet *model.ActiveSheet, piece model.ExpandedPiece2D, kerf float64, allowRotation, respectGrain bool) (model.Placement, bool) {
	orientations := getOrientations(piece.Width, piece.Height, piece.CanRotate, allowRotation, piece.Grain, respectGrain)

	for _, o := range orientations {
		if !satisfiesGrain(o, piece.Grain, respectGrain) {
			continue
		}
		candidates := candidatePositionsBottomLeft(sheet, kerf)
		sort.SliceStable(candidates, func(i, j int) bool {
			if candidates[i].Y != candidates[j].Y {
				return candidates[i].Y < candidates[j].Y
			}
			return candidates[i].X < candidates[j].X
		})

		w, h := o.w+kerf, o.h+kerf
		for _, pos := range candidates {
			if !isWithinBounds(pos.X, pos.Y, w, h, sheet.Width, sheet.Height) {
				continue
			}
			if overlapsAny(sheet, pos.X, pos.Y, w, h) {
				continue
			}
			return model.Placement{
				PieceID:     piece.ID,
				OrderItemID: piece.OrderItemID,
				X:           pos.X,
				Y:           pos.Y,
				Width:       o.w,
				Height:      o.h,
				Rotated:     o.rotated,
			}, true
		}
	}
	return model.Placement{}, false
}

func overlapsAny(sheet *model.ActiveSheet, x, y, w, h float64) bool {
	for _, p := range sheet.Placements {
		if rectanglesOverlap(x, y, w, h, p.X, p.Y, p.Width, p.Height) {
			return true
		}
	}
	return false
}

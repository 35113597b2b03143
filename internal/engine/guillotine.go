package engine

import "github.com/piwi3910/cutstock/internal/model"

// tryPlaceGuillotine attempts to place a piece into the best-short-side-fit
// free rectangle of sheet, splitting that rectangle into a right strip and
// a top strip once placed (a straight guillotine cut never crosses either
// strip's full span). It returns the Placement and true on success.
func tryPlaceGuillotine(sheet *model.ActiveSheet, piece model.ExpandedPiece2D, kerf float64, allowRotation, respectGrain bool, sliverThreshold float64) (model.Placement, bool) {
	orientations := getOrientations(piece.Width, piece.Height, piece.CanRotate, allowRotation, piece.Grain, respectGrain)

	bestIdx := -1
	var bestOrientation orientation
	bestShortSideGap := 0.0

	for _, o := range orientations {
		if !satisfiesGrain(o, piece.Grain, respectGrain) {
			continue
		}
		w, h := o.w+kerf, o.h+kerf
		for i, fr := range sheet.FreeRects {
			if w > fr.Width+1e-9 || h > fr.Height+1e-9 {
				continue
			}
			leftoverW := fr.Width - w
			leftoverH := fr.Height - h
			shortSideGap := leftoverW
			if leftoverH < shortSideGap {
				shortSideGap = leftoverH
			}
			if bestIdx == -1 || shortSideGap < bestShortSideGap {
				bestIdx = i
				bestOrientation = o
				bestShortSideGap = shortSideGap
			}
		}
	}
	if bestIdx == -1 {
		return model.Placement{}, false
	}

	fr := sheet.FreeRects[bestIdx]
	w, h := bestOrientation.w+kerf, bestOrientation.h+kerf

	placement := model.Placement{
		PieceID:     piece.ID,
		OrderItemID: piece.OrderItemID,
		X:           fr.X,
		Y:           fr.Y,
		Width:       bestOrientation.w,
		Height:      bestOrientation.h,
		Rotated:     bestOrientation.rotated,
	}

	// Remove the consumed rect and split it into a right strip (full
	// remaining height) and a top strip (width of the placed piece only):
	// two guillotine cuts, never three-way.
	sheet.FreeRects = append(sheet.FreeRects[:bestIdx:bestIdx], sheet.FreeRects[bestIdx+1:]...)

	rightStrip := model.FreeRect{X: fr.X + w, Y: fr.Y, Width: fr.Width - w, Height: fr.Height}
	topStrip := model.FreeRect{X: fr.X, Y: fr.Y + h, Width: bestOrientation.w, Height: fr.Height - h}

	if rightStrip.Width > sliverThreshold && rightStrip.Height > sliverThreshold {
		sheet.FreeRects = append(sheet.FreeRects, rightStrip)
	}
	if topStrip.Width > sliverThreshold && topStrip.Height > sliverThreshold {
		sheet.FreeRects = append(sheet.FreeRects, topStrip)
	}

	return placement, true
}

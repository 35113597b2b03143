package engine

import "github.com/piwi3910/cutstock/internal/model"

// canFit1D reports whether a piece of the given length still fits on an
// open bar, accounting for the kerf consumed ahead of every cut after the
// first.
func canFit1D(bar *model.ActiveBar, length, kerf float64) bool {
	needed := length
	if len(bar.Cuts) > 0 {
		needed += kerf
	}
	return needed <= bar.RemainingLength+1e-9
}

// placePiece1D appends a cut to an open bar and advances its cursor,
// consuming kerf ahead of the piece when it isn't the first cut.
func placePiece1D(bar *model.ActiveBar, piece model.ExpandedPiece1D, kerf float64) {
	if len(bar.Cuts) > 0 {
		bar.CurrentPosition += kerf
		bar.RemainingLength -= kerf
	}
	bar.Cuts = append(bar.Cuts, model.Cut{
		PieceID:     piece.ID,
		OrderItemID: piece.OrderItemID,
		Position:    bar.CurrentPosition,
		Length:      piece.Length,
	})
	bar.CurrentPosition += piece.Length
	bar.RemainingLength -= piece.Length
}

// findFirstFitBar returns the index of the first open bar (in the order
// bars were opened) that can still fit the piece.
func findFirstFitBar(bars []*model.ActiveBar, length, kerf float64) (int, bool) {
	for i, b := range bars {
		if canFit1D(b, length, kerf) {
			return i, true
		}
	}
	return 0, false
}

// findBestFitBar returns the index of the open bar that can fit the piece
// while leaving the least remaining length afterward (tightest fit).
// Ties favor the earliest-opened bar.
func findBestFitBar(bars []*model.ActiveBar, length, kerf float64) (int, bool) {
	best := -1
	var bestLeftover float64
	for i, b := range bars {
		if !canFit1D(b, length, kerf) {
			continue
		}
		consumed := length
		if len(b.Cuts) > 0 {
			consumed += kerf
		}
		leftover := b.RemainingLength - consumed
		if best == -1 || leftover < bestLeftover {
			best = i
			bestLeftover = leftover
		}
	}
	if best == -1 {
		return 0, false
	}
	return best, true
}

// finishBar1D closes an open bar into its BarResult. A usable offcut is
// annotated when remainingLength-kerf is positive and >= minUsableWaste: extracting the
// offcut as its own piece requires one more separating cut, which
// consumes an additional kerf's worth of material.
func finishBar1D(bar *model.ActiveBar, kerf, minUsableWaste float64) model.BarResult {
	waste := bar.RemainingLength
	pct := 0.0
	if bar.StockLength > 0 {
		pct = (waste / bar.StockLength) * 100.0
	}
	res := model.BarResult{
		StockID:         bar.StockID,
		StockLength:     bar.StockLength,
		Cuts:            bar.Cuts,
		Waste:           waste,
		WastePercentage: pct,
	}
	usable := waste - kerf
	if usable > 0 && usable >= minUsableWaste {
		res.Offcut = &model.UsableOffcut1D{
			Position: bar.CurrentPosition + kerf,
			Length:   usable,
		}
	}
	return res
}

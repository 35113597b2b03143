package engine

import "github.com/piwi3910/cutstock/internal/model"

// Optimize2D packs a set of required rectangular pieces onto available
// stock sheets using Bottom-Left, Guillotine, or MAXRECTS placement, with
// an optional deterministic multi-pass rebalancing step. The function is
// pure: identical inputs always yield a structurally identical result.
func Optimize2D(pieces []model.Piece2D, stocks []model.Stock2D, opts model.Options2D) (model.Result2D, error) {
	if err := validate2D(pieces, stocks, opts); err != nil {
		return model.Result2D{}, err
	}

	expanded := model.Expand2D(pieces)
	if len(expanded) == 0 {
		return model.Result2D{Success: true}, nil
	}
	sortPieces2D(expanded, opts.SortStrategy)

	result := runSinglePass2D(expanded, stocks, pieces, opts)

	if opts.MultiPass {
		if alt := runMultiPass2D(expanded, stocks, pieces, opts); alt != nil && betterResult2D(*alt, result) {
			result = *alt
		}
	}

	return result, nil
}

// runSinglePass2D executes one deterministic greedy pass under opts.
func runSinglePass2D(expanded []model.ExpandedPiece2D, stocks []model.Stock2D, originals []model.Piece2D, opts model.Options2D) model.Result2D {
	mgr := newStockManager2D(stocks)
	var sheets []*model.ActiveSheet
	var unplaced []model.ExpandedPiece2D

	sliver := opts.EffectiveSliverThreshold()

	isMaxRects := opts.Algorithm == model.MaxRects || opts.Algorithm == model.MaxRectsBest

	for _, piece := range expanded {
		placed := false
		if isMaxRects {
			heuristic := opts.Heuristic
			if opts.Algorithm == model.MaxRectsBest {
				heuristic = model.Best
			}
			if idx, cand, ok := selectBestSheet(sheets, piece, opts.Kerf, opts.AllowRotation, opts.RespectGrainDirection, heuristic); ok {
				pl := commitMaxRects(sheets[idx], piece, opts.Kerf, cand, sliver)
				sheets[idx].Placements = append(sheets[idx].Placements, pl)
				placed = true
			}
		} else {
			for _, sheet := range sheets {
				if pl, ok := placeOnSheet(sheet, piece, opts, sliver); ok {
					sheet.Placements = append(sheet.Placements, pl)
					placed = true
					break
				}
			}
		}
		if placed {
			continue
		}

		required := piece.Width
		requiredH := piece.Height
		stock, found := mgr.findAvailableStock(required, requiredH)
		if !found {
			unplaced = append(unplaced, piece)
			continue
		}
		mgr.consume(stock.ID)
		sheet := model.NewActiveSheet(stock.ID, stock.Width, stock.Height)
		if opts.Algorithm == model.BottomLeft {
			// Bottom-Left does not maintain free rectangles; offcut
			// detection recovers them from the placements instead.
			sheet.FreeRects = nil
		}
		if pl, ok := placeOnSheet(sheet, piece, opts, sliver); ok {
			sheet.Placements = append(sheet.Placements, pl)
			sheets = append(sheets, sheet)
		} else {
			unplaced = append(unplaced, piece)
		}
	}

	return buildResult2D(sheets, unplaced, originals, stocks)
}

// placeOnSheet dispatches to the configured placement algorithm.
func placeOnSheet(sheet *model.ActiveSheet, piece model.ExpandedPiece2D, opts model.Options2D, sliver float64) (model.Placement, bool) {
	switch opts.Algorithm {
	case model.Guillotine:
		return tryPlaceGuillotine(sheet, piece, opts.Kerf, opts.AllowRotation, opts.RespectGrainDirection, sliver)
	case model.BottomLeft:
		return tryPlaceBottomLeft(sheet, piece, opts.Kerf, opts.AllowRotation, opts.RespectGrainDirection)
	default: // MAXRECTS, MAXRECTS_BEST
		heuristic := opts.Heuristic
		if opts.Algorithm == model.MaxRectsBest {
			heuristic = model.Best
		}
		return tryPlaceMaxRects(sheet, piece, opts.Kerf, opts.AllowRotation, opts.RespectGrainDirection, heuristic, sliver)
	}
}

func validate2D(pieces []model.Piece2D, stocks []model.Stock2D, opts model.Options2D) error {
	for _, p := range pieces {
		if p.Width <= 0 || p.Height <= 0 {
			return invalidInputf("piece %q has non-positive dimensions %vx%v", p.ID, p.Width, p.Height)
		}
		if p.Quantity < 0 {
			return invalidInputf("piece %q has negative quantity %d", p.ID, p.Quantity)
		}
	}
	for _, s := range stocks {
		if s.Width <= 0 || s.Height <= 0 {
			return invalidInputf("stock %q has non-positive dimensions %vx%v", s.ID, s.Width, s.Height)
		}
		if s.Available < 0 {
			return invalidInputf("stock %q has negative availability %d", s.ID, s.Available)
		}
	}
	if opts.Kerf < 0 {
		return invalidInputf("kerf %v must not be negative", opts.Kerf)
	}
	switch opts.Algorithm {
	case model.BottomLeft, model.Guillotine, model.MaxRects, model.MaxRectsBest:
	default:
		return invalidInputf("unknown algorithm %q", opts.Algorithm)
	}
	switch opts.Heuristic {
	case "", model.BSSF, model.BLSF, model.BAF, model.BL, model.CP, model.Best:
	default:
		return invalidInputf("unknown heuristic %q", opts.Heuristic)
	}
	switch opts.SortStrategy {
	case "", model.AreaDesc, model.ShortSide, model.LongSide, model.Perimeter, model.Difference:
	default:
		return invalidInputf("unknown sortStrategy %q", opts.SortStrategy)
	}
	return nil
}

// betterResult2D reports whether candidate strictly improves on current:
// fewer unplaced pieces, or equal unplaced pieces with fewer sheets used,
// or equal on both with lower total waste area.
func betterResult2D(candidate, current model.Result2D) bool {
	if len(candidate.UnplacedPieces) != len(current.UnplacedPieces) {
		return len(candidate.UnplacedPieces) < len(current.UnplacedPieces)
	}
	if candidate.StockUsedCount != current.StockUsedCount {
		return candidate.StockUsedCount < current.StockUsedCount
	}
	return candidate.TotalWasteArea < current.TotalWasteArea
}

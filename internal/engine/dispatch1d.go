package engine

import "github.com/piwi3910/cutstock/internal/model"

// Optimize1D packs a set of required cut lengths onto available stock
// bars using FFD, BFD, or BRANCH_BOUND (an alias of BFD — see
// SPEC_FULL.md §2). The function is pure: no field of pieces, stocks, or
// opts is mutated, and identical inputs always yield a structurally
// identical result.
func Optimize1D(pieces []model.Piece1D, stocks []model.Stock1D, opts model.Options1D) (model.Result1D, error) {
	if err := validate1D(pieces, stocks, opts); err != nil {
		return model.Result1D{}, err
	}

	expanded := model.Expand1D(pieces)
	if len(expanded) == 0 {
		return model.Result1D{Success: true}, nil
	}
	sortByLengthDesc(expanded)

	desc := opts.Algorithm == model.FFD
	mgr := newStockManager1D(stocks, desc)

	var bars []*model.ActiveBar
	var unplacedExpanded []model.ExpandedPiece1D

	for _, piece := range expanded {
		idx, ok := -1, false
		switch opts.Algorithm {
		case model.BFD, model.BranchBound:
			idx, ok = findBestFitBar(bars, piece.Length, opts.Kerf)
		default: // FFD
			idx, ok = findFirstFitBar(bars, piece.Length, opts.Kerf)
		}
		if ok {
			placePiece1D(bars[idx], piece, opts.Kerf)
			continue
		}

		stock, found := mgr.findAvailableStock(piece.Length)
		if !found {
			unplacedExpanded = append(unplacedExpanded, piece)
			continue
		}
		mgr.consume(stock.ID)
		bar := model.NewActiveBar(stock.ID, stock.Length)
		placePiece1D(bar, piece, opts.Kerf)
		bars = append(bars, bar)
	}

	return buildResult1D(bars, unplacedExpanded, pieces, opts), nil
}

func validate1D(pieces []model.Piece1D, stocks []model.Stock1D, opts model.Options1D) error {
	for _, p := range pieces {
		if p.Length <= 0 {
			return invalidInputf("piece %q has non-positive length %v", p.ID, p.Length)
		}
		if p.Quantity < 0 {
			return invalidInputf("piece %q has negative quantity %d", p.ID, p.Quantity)
		}
	}
	for _, s := range stocks {
		if s.Length <= 0 {
			return invalidInputf("stock %q has non-positive length %v", s.ID, s.Length)
		}
		if s.Available < 0 {
			return invalidInputf("stock %q has negative availability %d", s.ID, s.Available)
		}
	}
	if opts.Kerf < 0 {
		return invalidInputf("kerf %v must not be negative", opts.Kerf)
	}
	if opts.MinUsableWaste < 0 {
		return invalidInputf("minUsableWaste %v must not be negative", opts.MinUsableWaste)
	}
	switch opts.Algorithm {
	case model.FFD, model.BFD, model.BranchBound:
	default:
		return invalidInputf("unknown algorithm %q", opts.Algorithm)
	}
	return nil
}

package engine

import "github.com/piwi3910/cutstock/internal/model"

// buildResult1D closes every open bar and assembles the final Result1D,
// including aggregate statistics and re-grouped unplaced pieces.
func buildResult1D(bars []*model.ActiveBar, unplacedExpanded []model.ExpandedPiece1D, originals []model.Piece1D, opts model.Options1D) model.Result1D {
	barResults := make([]model.BarResult, 0, len(bars))
	var totalStock, totalUsed, totalWaste float64
	for _, b := range bars {
		br := finishBar1D(b, opts.Kerf, opts.MinUsableWaste)
		barResults = append(barResults, br)
		totalStock += br.StockLength
		totalWaste += br.Waste
		totalUsed += br.StockLength - br.Waste
	}

	wastePct := 0.0
	if totalStock > 0 {
		wastePct = (totalWaste / totalStock) * 100.0
	}
	efficiency := 0.0
	if totalStock > 0 {
		efficiency = (totalUsed / totalStock) * 100.0
	}

	totalExpanded := 0
	for _, p := range originals {
		totalExpanded += p.Quantity
	}
	totalPieces := totalExpanded - len(unplacedExpanded)

	return model.Result1D{
		Success:              len(unplacedExpanded) == 0,
		Bars:                 barResults,
		TotalWaste:           totalWaste,
		TotalWastePercentage: wastePct,
		StockUsedCount:       len(barResults),
		UnplacedPieces:       collectUnplaced1D(unplacedExpanded, originals),
		Statistics: model.Statistics1D{
			TotalPieces:      totalPieces,
			TotalStockLength: totalStock,
			TotalUsedLength:  totalUsed,
			Efficiency:       efficiency,
		},
	}
}

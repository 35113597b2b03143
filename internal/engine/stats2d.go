package engine

import "github.com/piwi3910/cutstock/internal/model"

// buildResult2D closes every open sheet and assembles the final
// Result2D, including usable-offcut detection and aggregate statistics.
func buildResult2D(sheets []*model.ActiveSheet, unplacedExpanded []model.ExpandedPiece2D, originals []model.Piece2D, stocks []model.Stock2D) model.Result2D {
	stockByID := make(map[string]model.Stock2D, len(stocks))
	for _, s := range stocks {
		stockByID[s.ID] = s
	}

	sheetResults := make([]model.SheetResult, 0, len(sheets))
	var totalStockArea, totalUsedArea, totalWasteArea float64

	for _, sheet := range sheets {
		used := sheet.UsedArea()
		total := sheet.Width * sheet.Height
		waste := total - used
		pct := 0.0
		if total > 0 {
			pct = (waste / total) * 100.0
		}
		sheetResults = append(sheetResults, model.SheetResult{
			StockID:         sheet.StockID,
			Width:           sheet.Width,
			Height:          sheet.Height,
			Placements:      sheet.Placements,
			UsedArea:        used,
			WasteArea:       waste,
			WastePercentage: pct,
			Offcuts:         detectOffcuts2D(sheet),
		})
		totalStockArea += total
		totalUsedArea += used
		totalWasteArea += waste
	}

	wastePct := 0.0
	efficiency := 0.0
	if totalStockArea > 0 {
		wastePct = (totalWasteArea / totalStockArea) * 100.0
		efficiency = (totalUsedArea / totalStockArea) * 100.0
	}

	totalExpanded := 0
	for _, p := range originals {
		totalExpanded += p.Quantity
	}
	totalPieces := totalExpanded - len(unplacedExpanded)

	return model.Result2D{
		Success:              len(unplacedExpanded) == 0,
		Sheets:               sheetResults,
		TotalWasteArea:       totalWasteArea,
		TotalWastePercentage: wastePct,
		StockUsedCount:       len(sheetResults),
		UnplacedPieces:       collectUnplaced2D(unplacedExpanded, originals),
		Statistics: model.Statistics2D{
			TotalPieces:    totalPieces,
			TotalStockArea: totalStockArea,
			TotalUsedArea:  totalUsedArea,
			Efficiency:     efficiency,
		},
	}
}

package export

import (
	"fmt"

	"github.com/piwi3910/cutstock/internal/model"
	"github.com/xuri/excelize/v2"
)

// ExportExcel writes a cut list workbook for a 2D result: one "Summary"
// sheet with per-sheet statistics, followed by one sheet per stock sheet
// listing its placements.
func ExportExcel(path string, result model.Result2D) error {
	f := excelize.NewFile()
	defer f.Close()

	const summarySheet = "Summary"
	f.SetSheetName("Sheet1", summarySheet)

	writeExcelRow(f, summarySheet, 1, "Sheet", "Stock ID", "Width", "Height", "Pieces", "Used Area", "Waste %")
	for i, sheet := range result.Sheets {
		row := i + 2
		writeExcelRow(f, summarySheet, row,
			i+1, sheet.StockID, sheet.Width, sheet.Height, len(sheet.Placements), sheet.UsedArea, sheet.WastePercentage)
	}

	for i, sheet := range result.Sheets {
		name := fmt.Sprintf("Sheet %d", i+1)
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("create sheet tab %q: %w", name, err)
		}
		writeExcelRow(f, name, 1, "Piece ID", "Order Item", "X", "Y", "Width", "Height", "Rotated")
		for j, p := range sheet.Placements {
			writeExcelRow(f, name, j+2, p.PieceID, p.OrderItemID, p.X, p.Y, p.Width, p.Height, p.Rotated)
		}
	}

	if len(result.UnplacedPieces) > 0 {
		const unplacedSheet = "Unplaced"
		if _, err := f.NewSheet(unplacedSheet); err != nil {
			return fmt.Errorf("create unplaced sheet tab: %w", err)
		}
		writeExcelRow(f, unplacedSheet, 1, "Piece ID", "Width", "Height", "Quantity")
		for i, p := range result.UnplacedPieces {
			writeExcelRow(f, unplacedSheet, i+2, p.ID, p.Width, p.Height, p.Quantity)
		}
	}

	f.SetActiveSheet(0)
	return f.SaveAs(path)
}

// writeExcelRow writes one row of values starting at column A.
func writeExcelRow(f *excelize.File, sheet string, row int, values ...any) {
	for i, v := range values {
		cell, _ := excelize.CoordinatesToCellName(i+1, row)
		f.SetCellValue(sheet, cell, v)
	}
}

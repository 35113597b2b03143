package export

import (
	"fmt"

	"github.com/piwi3910/cutstock/internal/model"
	"github.com/yofu/dxf"
)

// ExportDXF writes one DXF drawing per sheet in a 2D result, each
// containing the sheet boundary and every placement as a closed
// rectangle, for import into CAD/CAM software. path is treated as a
// printf pattern taking the 1-based sheet number, e.g. "layout-%d.dxf".
func ExportDXF(pathPattern string, result model.Result2D) error {
	if len(result.Sheets) == 0 {
		return fmt.Errorf("no sheets to export")
	}
	for i, sheet := range result.Sheets {
		path := fmt.Sprintf(pathPattern, i+1)
		if err := exportSheetDXF(path, sheet); err != nil {
			return fmt.Errorf("sheet %d: %w", i+1, err)
		}
	}
	return nil
}

func exportSheetDXF(path string, sheet model.SheetResult) error {
	d := dxf.NewDrawing()
	d.Header().LtScale = 1.0

	d.Layer("BOUNDARY", dxf.DefaultColor, true)
	drawRectDXF(d, 0, 0, sheet.Width, sheet.Height)

	d.Layer("PIECES", 5, true)
	for _, p := range sheet.Placements {
		drawRectDXF(d, p.X, p.Y, p.Width, p.Height)
	}

	d.Layer("OFFCUTS", 3, true)
	for _, o := range sheet.Offcuts {
		drawRectDXF(d, o.X, o.Y, o.Width, o.Height)
	}

	return d.SaveAs(path)
}

// drawRectDXF emits the four edges of an axis-aligned rectangle as LINE
// entities on the drawing's current layer.
func drawRectDXF(d *dxf.Drawing, x, y, w, h float64) {
	d.Line(x, y, 0, x+w, y, 0)
	d.Line(x+w, y, 0, x+w, y+h, 0)
	d.Line(x+w, y+h, 0, x, y+h, 0)
	d.Line(x, y+h, 0, x, y, 0)
}

package engine

import "github.com/piwi3910/cutstock/internal/model"

// minUsableOffcutArea is the minimum rectangle area reported as a usable
// offcut; smaller remnants are treated as unusable trim.
const minUsableOffcutArea = 1e-6

// detectOffcuts2D reports the maximal empty rectangles left on a finished
// sheet that are large enough to be worth stocking as smaller sheets.
// Guillotine and MAXRECTS sheets already maintain FreeRects incrementally;
// Bottom-Left leaves it empty, so the free space is recovered here from
// the X/Y edges of the placements actually made.
func detectOffcuts2D(sheet *model.ActiveSheet) []model.UsableOffcut2D {
	free := sheet.FreeRects
	if len(free) == 0 {
		free = freeRectsFromPlacements(sheet)
	}

	var out []model.UsableOffcut2D
	for _, r := range free {
		if r.Area() < minUsableOffcutArea {
			continue
		}
		out = append(out, model.UsableOffcut2D{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height})
	}
	return out
}

// freeRectsFromPlacements recovers the maximal empty rectangles of a
// sheet from its placements alone, by probing every grid cell formed by
// placement edges and growing each empty cell as far right and down as
// it can go without overlapping a placement or leaving the sheet.
func freeRectsFromPlacements(sheet *model.ActiveSheet) []model.FreeRect {
	xs := map[float64]bool{0: true, sheet.Width: true}
	ys := map[float64]bool{0: true, sheet.Height: true}
	for _, p := range sheet.Placements {
		xs[p.X] = true
		xs[p.Right()] = true
		ys[p.Y] = true
		ys[p.Bottom()] = true
	}
	xsSorted := sortedKeys(xs)
	ysSorted := sortedKeys(ys)

	var candidates []model.FreeRect
	for i := 0; i < len(xsSorted)-1; i++ {
		for j := 0; j < len(ysSorted)-1; j++ {
			x0, x1 := xsSorted[i], xsSorted[i+1]
			y0, y1 := ysSorted[j], ysSorted[j+1]
			if cellOccupied(sheet, x0, y0, x1-x0, y1-y0) {
				continue
			}
			x1g := growRight(sheet, x0, y0, x1, y1, xsSorted)
			y1g := growDown(sheet, x0, y0, x1g, y1, ysSorted)
			candidates = append(candidates, model.FreeRect{X: x0, Y: y0, Width: x1g - x0, Height: y1g - y0})
		}
	}
	return pruneContained(candidates)
}

func cellOccupied(sheet *model.ActiveSheet, x, y, w, h float64) bool {
	cx, cy := x+w/2, y+h/2
	for _, p := range sheet.Placements {
		if cx >= p.X && cx <= p.Right() && cy >= p.Y && cy <= p.Bottom() {
			return true
		}
	}
	return false
}

func growRight(sheet *model.ActiveSheet, x0, y0, x1, y1 float64, xsSorted []float64) float64 {
	for _, x := range xsSorted {
		if x <= x1 {
			continue
		}
		if cellOccupied(sheet, x1, y0, x-x1, y1-y0) {
			break
		}
		x1 = x
	}
	return x1
}

func growDown(sheet *model.ActiveSheet, x0, y0, x1, y1 float64, ysSorted []float64) float64 {
	for _, y := range ysSorted {
		if y <= y1 {
			continue
		}
		if cellOccupied(sheet, x0, y1, x1-x0, y-y1) {
			break
		}
		y1 = y
	}
	return y1
}

func sortedKeys(m map[float64]bool) []float64 {
	out := make([]float64, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j-1] > out[j]; j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	return out
}

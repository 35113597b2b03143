package engine

import "github.com/piwi3910/cutstock/internal/model"

// collectUnplaced1D re-aggregates unplaced expanded 1D units back into
// (id, qty) groups, preserving each original piece's declared attributes.
// Groups appear in the order their first unit appears in expanded (the
// sorted placement order), not in input order.
func collectUnplaced1D(expanded []model.ExpandedPiece1D, originals []model.Piece1D) []model.Piece1D {
	if len(expanded) == 0 {
		return nil
	}
	byID := make(map[string]model.Piece1D, len(originals))
	for _, p := range originals {
		byID[p.ID] = p
	}
	counts := make(map[string]int)
	var order []string
	for _, e := range expanded {
		if counts[e.OriginalID] == 0 {
			order = append(order, e.OriginalID)
		}
		counts[e.OriginalID]++
	}
	out := make([]model.Piece1D, 0, len(order))
	for _, id := range order {
		orig := byID[id]
		orig.Quantity = counts[id]
		out = append(out, orig)
	}
	return out
}

// collectUnplaced2D is the 2D analogue of collectUnplaced1D.
func collectUnplaced2D(expanded []model.ExpandedPiece2D, originals []model.Piece2D) []model.Piece2D {
	if len(expanded) == 0 {
		return nil
	}
	byID := make(map[string]model.Piece2D, len(originals))
	for _, p := range originals {
		byID[p.ID] = p
	}
	counts := make(map[string]int)
	var order []string
	for _, e := range expanded {
		if counts[e.OriginalID] == 0 {
			order = append(order, e.OriginalID)
		}
		counts[e.OriginalID]++
	}
	out := make([]model.Piece2D, 0, len(order))
	for _, id := range order {
		orig := byID[id]
		orig.Quantity = counts[id]
		out = append(out, orig)
	}
	return out
}

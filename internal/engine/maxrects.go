package engine

import "github.com/piwi3910/cutstock/internal/model"

// maxRectsScore scores a candidate (freeRect, orientation) pair under one
// heuristic as a (primary, secondary) tuple, compared lexicographically so
// lower is always better — except CP (contact point), where higher contact
// is better and both components are negated before comparison. Only BL
// uses the secondary component; every other heuristic leaves it at 0.
func maxRectsScore(fr model.FreeRect, o orientation, heuristic model.Heuristic, sheet *model.ActiveSheet) (primary, secondary float64, ok bool) {
	w, h := o.w, o.h
	if w > fr.Width+1e-9 || h > fr.Height+1e-9 {
		return 0, 0, false
	}
	leftoverW := fr.Width - w
	leftoverH := fr.Height - h

	switch heuristic {
	case model.BLSF:
		long := leftoverW
		if leftoverH > long {
			long = leftoverH
		}
		return long, 0, true
	case model.BAF:
		return fr.Area() - w*h, 0, true
	case model.BL:
		return fr.Y + h, fr.X, true
	case model.CP:
		return -contactScore(sheet, fr.X, fr.Y, w, h), 0, true
	default: // BSSF
		short := leftoverW
		if leftoverH < short {
			short = leftoverH
		}
		return short, 0, true
	}
}

// scoreLess reports whether (p1, s1) sorts before (p2, s2) lexicographically.
func scoreLess(p1, s1, p2, s2 float64) bool {
	if p1 != p2 {
		return p1 < p2
	}
	return s1 < s2
}

// contactScore sums the length of edges a placement at (x,y,w,h) would
// share with the sheet boundary or with already-placed pieces — the
// Contact Point heuristic favors tight, corner-hugging placements.
func contactScore(sheet *model.ActiveSheet, x, y, w, h float64) float64 {
	var score float64
	if x == 0 {
		score += h
	}
	if y == 0 {
		score += w
	}
	if x+w == sheet.Width {
		score += h
	}
	if y+h == sheet.Height {
		score += w
	}
	for _, p := range sheet.Placements {
		if x == p.Right() || x+w == p.X {
			score += overlapLength(y, y+h, p.Y, p.Bottom())
		}
		if y == p.Bottom() || y+h == p.Y {
			score += overlapLength(x, x+w, p.X, p.Right())
		}
	}
	return score
}

func overlapLength(aStart, aEnd, bStart, bEnd float64) float64 {
	lo := aStart
	if bStart > lo {
		lo = bStart
	}
	hi := aEnd
	if bEnd < hi {
		hi = bEnd
	}
	if hi > lo {
		return hi - lo
	}
	return 0
}

// maxRectsCandidate is the best-scoring (freeRect, orientation) pair for
// one piece on one sheet, used both to rank sheets in selectBestSheet and
// to commit the placement once a sheet is chosen.
type maxRectsCandidate struct {
	score          float64
	scoreSecondary float64
	rectIdx        int
	orientation    orientation
}

// bestMaxRectsCandidate finds the lowest-scoring (freeRect, orientation)
// pair for piece on sheet under heuristic, without mutating the sheet.
func bestMaxRectsCandidate(sheet *model.ActiveSheet, piece model.ExpandedPiece2D, kerf float64, allowRotation, respectGrain bool, heuristic model.Heuristic) (maxRectsCandidate, bool) {
	orientations := getOrientations(piece.Width, piece.Height, piece.CanRotate, allowRotation, piece.Grain, respectGrain)

	heuristics := []model.Heuristic{heuristic}
	if heuristic == model.Best {
		heuristics = []model.Heuristic{model.BSSF, model.BLSF, model.BAF, model.BL, model.CP}
	}

	found := false
	var best maxRectsCandidate

	for _, h := range heuristics {
		for _, o := range orientations {
			if !satisfiesGrain(o, piece.Grain, respectGrain) {
				continue
			}
			padded := orientation{w: o.w + kerf, h: o.h + kerf, rotated: o.rotated}
			for i, fr := range sheet.FreeRects {
				score, secondary, ok := maxRectsScore(fr, padded, h, sheet)
				if !ok {
					continue
				}
				if !found || scoreLess(score, secondary, best.score, best.scoreSecondary) {
					found = true
					best = maxRectsCandidate{score: score, scoreSecondary: secondary, rectIdx: i, orientation: o}
				}
			}
		}
	}
	return best, found
}

// commitMaxRects places piece on sheet at the given candidate, splitting
// the consumed free rect and pruning contained remnants.
func commitMaxRects(sheet *model.ActiveSheet, piece model.ExpandedPiece2D, kerf float64, cand maxRectsCandidate, sliverThreshold float64) model.Placement {
	fr := sheet.FreeRects[cand.rectIdx]
	placement := model.Placement{
		PieceID:     piece.ID,
		OrderItemID: piece.OrderItemID,
		X:           fr.X,
		Y:           fr.Y,
		Width:       cand.orientation.w,
		Height:      cand.orientation.h,
		Rotated:     cand.orientation.rotated,
	}
	placeW, placeH := cand.orientation.w+kerf, cand.orientation.h+kerf
	splitMaxRects(sheet, fr.X, fr.Y, placeW, placeH, sliverThreshold)
	return placement
}

// tryPlaceMaxRects attempts to place a piece into the free rectangle and
// orientation that minimizes the configured heuristic's score on one
// sheet, splitting on success and pruning contained rectangles.
func tryPlaceMaxRects(sheet *model.ActiveSheet, piece model.ExpandedPiece2D, kerf float64, allowRotation, respectGrain bool, heuristic model.Heuristic, sliverThreshold float64) (model.Placement, bool) {
	cand, ok := bestMaxRectsCandidate(sheet, piece, kerf, allowRotation, respectGrain, heuristic)
	if !ok {
		return model.Placement{}, false
	}
	return commitMaxRects(sheet, piece, kerf, cand, sliverThreshold), true
}

// selectBestSheet ranks every active sheet's best candidate for piece
// under heuristic and returns the sheet index with the globally lowest
// score, ties broken by sheet insertion order (spec §4.8).
func selectBestSheet(sheets []*model.ActiveSheet, piece model.ExpandedPiece2D, kerf float64, allowRotation, respectGrain bool, heuristic model.Heuristic) (int, maxRectsCandidate, bool) {
	bestSheet := -1
	var best maxRectsCandidate
	for i, sheet := range sheets {
		cand, ok := bestMaxRectsCandidate(sheet, piece, kerf, allowRotation, respectGrain, heuristic)
		if !ok {
			continue
		}
		if bestSheet == -1 || scoreLess(cand.score, cand.scoreSecondary, best.score, best.scoreSecondary) {
			bestSheet = i
			best = cand
		}
	}
	return bestSheet, best, bestSheet != -1
}

// splitMaxRects replaces every free rect overlapping the newly placed
// piece with up to four remainder rects (the classic MAXRECTS split),
// discards slivers, and prunes rects that became subsets of another.
func splitMaxRects(sheet *model.ActiveSheet, px, py, pw, ph, sliverThreshold float64) {
	var next []model.FreeRect
	for _, fr := range sheet.FreeRects {
		if !rectanglesOverlap(fr.X, fr.Y, fr.Width, fr.Height, px, py, pw, ph) {
			next = append(next, fr)
			continue
		}
		if px > fr.X {
			next = appendIfUsable(next, model.FreeRect{X: fr.X, Y: fr.Y, Width: px - fr.X, Height: fr.Height}, sliverThreshold)
		}
		if px+pw < fr.X+fr.Width {
			next = appendIfUsable(next, model.FreeRect{X: px + pw, Y: fr.Y, Width: fr.X + fr.Width - (px + pw), Height: fr.Height}, sliverThreshold)
		}
		if py > fr.Y {
			next = appendIfUsable(next, model.FreeRect{X: fr.X, Y: fr.Y, Width: fr.Width, Height: py - fr.Y}, sliverThreshold)
		}
		if py+ph < fr.Y+fr.Height {
			next = appendIfUsable(next, model.FreeRect{X: fr.X, Y: py + ph, Width: fr.Width, Height: fr.Y + fr.Height - (py + ph)}, sliverThreshold)
		}
	}
	sheet.FreeRects = pruneContained(next)
}

func appendIfUsable(rects []model.FreeRect, r model.FreeRect, sliverThreshold float64) []model.FreeRect {
	if r.Width > sliverThreshold && r.Height > sliverThreshold {
		return append(rects, r)
	}
	return rects
}

package engine

import "github.com/piwi3910/cutstock/internal/model"

// orientation is one candidate (width, height, rotated) a piece can be
// placed at.
type orientation struct {
	w, h    float64
	rotated bool
}

// getOrientations returns the allowed orientations for a piece, honoring
// per-piece rotation, the global allowRotation flag, and optional grain
// direction. Square pieces and grain-locked pieces yield one orientation.
func getOrientations(w, h float64, canRotate, allowRotation bool, grain model.Grain, respectGrain bool) []orientation {
	normal := orientation{w: w, h: h, rotated: false}

	if respectGrain && grain != model.GrainNone {
		// Grain-locked pieces may not rotate regardless of canRotate/allowRotation.
		return []orientation{normal}
	}

	if !canRotate || !allowRotation || w == h {
		return []orientation{normal}
	}

	return []orientation{normal, {w: h, h: w, rotated: true}}
}

// satisfiesGrain reports whether placing a piece at the given orientation
// honors its grain constraint: HORIZONTAL requires the longer axis along
// X, VERTICAL requires it along Y. NONE (or respectGrain=false) never
// constrains.
func satisfiesGrain(o orientation, grain model.Grain, respectGrain bool) bool {
	if !respectGrain || grain == model.GrainNone {
		return true
	}
	switch grain {
	case model.GrainHorizontal:
		return o.w >= o.h
	case model.GrainVertical:
		return o.h >= o.w
	default:
		return true
	}
}

// rectanglesOverlap reports strict overlap on both axes; touching edges
// do not overlap.
func rectanglesOverlap(ax, ay, aw, ah, bx, by, bw, bh float64) bool {
	return ax < bx+bw && ax+aw > bx && ay < by+bh && ay+ah > by
}

// isWithinBounds reports whether a rectangle lies fully inside [0,W]x[0,H].
func isWithinBounds(x, y, w, h, W, H float64) bool {
	return x >= 0 && y >= 0 && x+w <= W && y+h <= H
}

// rectContains reports whether outer fully contains inner.
func rectContains(outer, inner model.FreeRect) bool {
	return outer.X <= inner.X && outer.Y <= inner.Y &&
		outer.X+outer.Width >= inner.X+inner.Width &&
		outer.Y+outer.Height >= inner.Y+inner.Height
}

// pruneContained removes every free rect that is a proper/improper subset
// of another, keeping the set maximal.
func pruneContained(rects []model.FreeRect) []model.FreeRect {
	if len(rects) <= 1 {
		return rects
	}
	kept := make([]model.FreeRect, 0, len(rects))
	for i, a := range rects {
		contained := false
		for j, b := range rects {
			if i == j {
				continue
			}
			if rectContains(b, a) && !(rectContains(a, b) && i < j) {
				contained = true
				break
			}
		}
		if !contained {
			kept = append(kept, a)
		}
	}
	return kept
}

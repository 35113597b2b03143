// Package cutstock optimizes the layout of required pieces onto
// available stock material, either as 1D bars or 2D sheets. Every
// exported entry point is a pure function: identical inputs always
// produce a structurally identical result, and no argument is mutated.
package cutstock

import (
	"github.com/piwi3910/cutstock/internal/engine"
	"github.com/piwi3910/cutstock/internal/model"
)

// Re-exported model types so callers never need to import
// internal/model directly.
type (
	Grain       = model.Grain
	Piece1D     = model.Piece1D
	Piece2D     = model.Piece2D
	Stock1D     = model.Stock1D
	Stock2D     = model.Stock2D
	Options1D   = model.Options1D
	Options2D   = model.Options2D
	Algorithm1D = model.Algorithm1D
	Algorithm2D = model.Algorithm2D
	Heuristic   = model.Heuristic
	Result1D    = model.Result1D
	Result2D    = model.Result2D
)

const (
	GrainNone       = model.GrainNone
	GrainHorizontal = model.GrainHorizontal
	GrainVertical   = model.GrainVertical

	FFD         = model.FFD
	BFD         = model.BFD
	BranchBound = model.BranchBound

	BottomLeft   = model.BottomLeft
	Guillotine   = model.Guillotine
	MaxRects     = model.MaxRects
	MaxRectsBest = model.MaxRectsBest

	BSSF = model.BSSF
	BLSF = model.BLSF
	BAF  = model.BAF
	BL   = model.BL
	CP   = model.CP
	Best = model.Best
)

// DefaultOptions1D returns FFD with zero kerf and a zero minimum
// usable-offcut length, so every positive remnant is reported.
func DefaultOptions1D() Options1D { return model.DefaultOptions1D() }

// DefaultOptions2D returns MAXRECTS/BSSF with rotation allowed and no
// grain constraint.
func DefaultOptions2D() Options2D { return model.DefaultOptions2D() }

// Optimize1D packs required cut lengths onto available stock bars.
// See internal/engine.Optimize1D for algorithm details.
func Optimize1D(pieces []Piece1D, stocks []Stock1D, opts Options1D) (Result1D, error) {
	return engine.Optimize1D(pieces, stocks, opts)
}

// Optimize2D packs required rectangular pieces onto available stock
// sheets. See internal/engine.Optimize2D for algorithm details.
func Optimize2D(pieces []Piece2D, stocks []Stock2D, opts Options2D) (Result2D, error) {
	return engine.Optimize2D(pieces, stocks, opts)
}

package engine

import (
	"testing"

	"github.com/piwi3910/cutstock/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// S5 — 2D Bottom-Left tiling.
func TestOptimize2D_BottomLeftTiling(t *testing.T) {
	pieces := []model.Piece2D{{ID: "p1", Width: 500, Height: 500, Quantity: 2, CanRotate: false}}
	stocks := []model.Stock2D{{ID: "s1", Width: 1000, Height: 1000, Available: 1}}

	res, err := Optimize2D(pieces, stocks, model.Options2D{Algorithm: model.BottomLeft, SortStrategy: model.AreaDesc})
	require.NoError(t, err)
	require.Len(t, res.Sheets, 1)
	require.Len(t, res.Sheets[0].Placements, 2)
	assert.Equal(t, 1, res.StockUsedCount)
	assert.Equal(t, 0.0, res.Sheets[0].Placements[0].X)
	assert.Equal(t, 0.0, res.Sheets[0].Placements[0].Y)
	assert.Equal(t, 500.0, res.Sheets[0].Placements[1].X)
	assert.Equal(t, 0.0, res.Sheets[0].Placements[1].Y)
}

// S6 — 2D rotation required.
func TestOptimize2D_RotationRequired(t *testing.T) {
	pieces := []model.Piece2D{{ID: "p1", Width: 50, Height: 100, Quantity: 1, CanRotate: true}}
	stocks := []model.Stock2D{{ID: "s1", Width: 100, Height: 50, Available: 1}}

	res, err := Optimize2D(pieces, stocks, model.Options2D{Algorithm: model.MaxRects, AllowRotation: true, Heuristic: model.BSSF})
	require.NoError(t, err)
	require.Len(t, res.Sheets, 1)
	require.Len(t, res.Sheets[0].Placements, 1)
	pl := res.Sheets[0].Placements[0]
	assert.True(t, pl.Rotated)
	assert.Equal(t, 100.0, pl.Width)
	assert.Equal(t, 50.0, pl.Height)
}

// S7 — 2D multi-sheet.
func TestOptimize2D_MultiSheet(t *testing.T) {
	pieces := []model.Piece2D{{ID: "p1", Width: 80, Height: 80, Quantity: 2, CanRotate: false}}
	stocks := []model.Stock2D{{ID: "s1", Width: 100, Height: 100, Available: 2}}

	res, err := Optimize2D(pieces, stocks, model.Options2D{Algorithm: model.MaxRects, Heuristic: model.BSSF})
	require.NoError(t, err)
	assert.Equal(t, 2, res.StockUsedCount)
	require.Len(t, res.Sheets, 2)
	assert.Len(t, res.Sheets[0].Placements, 1)
	assert.Len(t, res.Sheets[1].Placements, 1)
}

// S8 — 2D guillotine placement.
func TestOptimize2D_GuillotinePlacement(t *testing.T) {
	pieces := []model.Piece2D{{ID: "p1", Width: 100, Height: 100, Quantity: 2, CanRotate: false}}
	stocks := []model.Stock2D{{ID: "s1", Width: 1000, Height: 1000, Available: 1}}

	res, err := Optimize2D(pieces, stocks, model.Options2D{Algorithm: model.Guillotine})
	require.NoError(t, err)
	assert.True(t, res.Success)
	require.Len(t, res.Sheets, 1)
	assert.Len(t, res.Sheets[0].Placements, 2)
}

func TestOptimize2D_RejectsNonPositiveDimensions(t *testing.T) {
	pieces := []model.Piece2D{{ID: "p1", Width: 0, Height: 10, Quantity: 1}}
	stocks := []model.Stock2D{{ID: "s1", Width: 100, Height: 100, Available: 1}}

	_, err := Optimize2D(pieces, stocks, model.DefaultOptions2D())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestOptimize2D_Determinism(t *testing.T) {
	pieces := []model.Piece2D{
		{ID: "p1", Width: 300, Height: 200, Quantity: 3, CanRotate: true},
		{ID: "p2", Width: 150, Height: 150, Quantity: 2, CanRotate: true},
	}
	stocks := []model.Stock2D{{ID: "s1", Width: 1200, Height: 800, Available: 5}}
	opts := model.Options2D{Algorithm: model.MaxRects, Heuristic: model.BAF, AllowRotation: true, Kerf: 3}

	first, err := Optimize2D(pieces, stocks, opts)
	require.NoError(t, err)
	second, err := Optimize2D(pieces, stocks, opts)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestOptimize2D_MultiPassNeverWorseThanSinglePass(t *testing.T) {
	pieces := []model.Piece2D{
		{ID: "p1", Width: 300, Height: 200, Quantity: 4, CanRotate: true},
		{ID: "p2", Width: 150, Height: 150, Quantity: 3, CanRotate: true},
		{ID: "p3", Width: 400, Height: 100, Quantity: 2, CanRotate: true},
	}
	stocks := []model.Stock2D{{ID: "s1", Width: 1000, Height: 800, Available: 5}}

	single, err := Optimize2D(pieces, stocks, model.Options2D{Algorithm: model.MaxRects, Heuristic: model.BSSF, AllowRotation: true})
	require.NoError(t, err)

	multi, err := Optimize2D(pieces, stocks, model.Options2D{Algorithm: model.MaxRects, Heuristic: model.BSSF, AllowRotation: true, MultiPass: true})
	require.NoError(t, err)

	assert.LessOrEqual(t, multi.StockUsedCount, single.StockUsedCount)
	assert.LessOrEqual(t, len(multi.UnplacedPieces), len(single.UnplacedPieces))
}

package engine

import (
	"testing"

	"github.com/piwi3910/cutstock/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// S1 — 1D perfect fit (FFD).
func TestOptimize1D_PerfectFitFFD(t *testing.T) {
	pieces := []model.Piece1D{
		{ID: "p1", Length: 500, Quantity: 1},
		{ID: "p2", Length: 500, Quantity: 1},
	}
	stocks := []model.Stock1D{{ID: "s1", Length: 1000, Available: 1}}

	res, err := Optimize1D(pieces, stocks, model.Options1D{Algorithm: model.FFD})
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, 1, res.StockUsedCount)
	require.Len(t, res.Bars, 1)
	assert.Len(t, res.Bars[0].Cuts, 2)
	assert.Zero(t, res.TotalWaste)
}

// S2 — 1D kerf positioning (FFD).
func TestOptimize1D_KerfPositioning(t *testing.T) {
	pieces := []model.Piece1D{{ID: "p1", Length: 495, Quantity: 2}}
	stocks := []model.Stock1D{{ID: "s1", Length: 1000, Available: 1}}

	res, err := Optimize1D(pieces, stocks, model.Options1D{Algorithm: model.FFD, Kerf: 10})
	require.NoError(t, err)
	require.Len(t, res.Bars, 1)
	cuts := res.Bars[0].Cuts
	require.Len(t, cuts, 2)
	assert.Equal(t, 0.0, cuts[0].Position)
	assert.Equal(t, 505.0, cuts[1].Position)
	assert.Zero(t, res.Bars[0].Waste)
}

// S3 — 1D BFD tight-fit selection.
func TestOptimize1D_BFDPicksTightestStock(t *testing.T) {
	pieces := []model.Piece1D{{ID: "p1", Length: 800, Quantity: 1}}
	stocks := []model.Stock1D{
		{ID: "big", Length: 1000, Available: 1},
		{ID: "small", Length: 900, Available: 1},
	}

	res, err := Optimize1D(pieces, stocks, model.Options1D{Algorithm: model.BFD})
	require.NoError(t, err)
	require.Len(t, res.Bars, 1)
	assert.Equal(t, "small", res.Bars[0].StockID)
}

// S4 — 1D unplaced reporting.
func TestOptimize1D_UnplacedReporting(t *testing.T) {
	pieces := []model.Piece1D{{ID: "p1", Length: 1500, Quantity: 1}}
	stocks := []model.Stock1D{{ID: "s1", Length: 1000, Available: 1}}

	res, err := Optimize1D(pieces, stocks, model.Options1D{Algorithm: model.FFD})
	require.NoError(t, err)
	assert.False(t, res.Success)
	require.Len(t, res.UnplacedPieces, 1)
	assert.Equal(t, "p1", res.UnplacedPieces[0].ID)
	assert.Equal(t, 1, res.UnplacedPieces[0].Quantity)
}

func TestOptimize1D_RejectsNonPositiveLength(t *testing.T) {
	pieces := []model.Piece1D{{ID: "p1", Length: 0, Quantity: 1}}
	stocks := []model.Stock1D{{ID: "s1", Length: 1000, Available: 1}}

	_, err := Optimize1D(pieces, stocks, model.Options1D{Algorithm: model.FFD})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestOptimize1D_EmptyPiecesSucceedsTrivially(t *testing.T) {
	res, err := Optimize1D(nil, nil, model.DefaultOptions1D())
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Empty(t, res.Bars)
}

func TestOptimize1D_Determinism(t *testing.T) {
	pieces := []model.Piece1D{
		{ID: "p1", Length: 300, Quantity: 3},
		{ID: "p2", Length: 450, Quantity: 2},
	}
	stocks := []model.Stock1D{{ID: "s1", Length: 1200, Available: 5}}
	opts := model.Options1D{Algorithm: model.BFD, Kerf: 2}

	first, err := Optimize1D(pieces, stocks, opts)
	require.NoError(t, err)
	second, err := Optimize1D(pieces, stocks, opts)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

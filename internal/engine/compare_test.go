package engine

import (
	"testing"

	"github.com/piwi3910/cutstock/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompareScenarios2D_RunsEveryScenario(t *testing.T) {
	pieces := []model.Piece2D{{ID: "p1", Width: 200, Height: 150, Quantity: 3, CanRotate: true}}
	stocks := []model.Stock2D{{ID: "s1", Width: 1000, Height: 1000, Available: 2}}

	scenarios := BuildDefaultScenarios2D(model.DefaultOptions2D())
	results := CompareScenarios2D(pieces, stocks, scenarios)

	require.Len(t, results, len(scenarios))
	for _, r := range results {
		assert.NoError(t, r.Err)
	}
}

func TestBestScenario2D_PicksFewestUnplaced(t *testing.T) {
	pieces := []model.Piece2D{{ID: "p1", Width: 200, Height: 150, Quantity: 3, CanRotate: true}}
	stocks := []model.Stock2D{{ID: "s1", Width: 1000, Height: 1000, Available: 2}}

	results := CompareScenarios2D(pieces, stocks, BuildDefaultScenarios2D(model.DefaultOptions2D()))
	best, ok := BestScenario2D(results)
	require.True(t, ok)
	assert.Empty(t, best.Result.UnplacedPieces)
}

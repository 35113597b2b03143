package cutstock

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptimize1D_FacadeDelegatesToEngine(t *testing.T) {
	pieces := []Piece1D{{ID: "p1", Length: 500, Quantity: 2}}
	stocks := []Stock1D{{ID: "s1", Length: 1000, Available: 1}}

	res, err := Optimize1D(pieces, stocks, DefaultOptions1D())
	require.NoError(t, err)
	assert.True(t, res.Success)
}

func TestOptimize2D_FacadeDelegatesToEngine(t *testing.T) {
	pieces := []Piece2D{{ID: "p1", Width: 100, Height: 100, Quantity: 1}}
	stocks := []Stock2D{{ID: "s1", Width: 500, Height: 500, Available: 1}}

	res, err := Optimize2D(pieces, stocks, DefaultOptions2D())
	require.NoError(t, err)
	assert.True(t, res.Success)
}

func TestOptimize1D_InvalidInputPropagates(t *testing.T) {
	pieces := []Piece1D{{ID: "p1", Length: -5, Quantity: 1}}
	_, err := Optimize1D(pieces, nil, DefaultOptions1D())
	require.Error(t, err)
}

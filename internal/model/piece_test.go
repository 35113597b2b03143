package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpand1D_PreservesOrderAndQuantity(t *testing.T) {
	pieces := []Piece1D{
		{ID: "a", Length: 100, Quantity: 2},
		{ID: "b", Length: 200, Quantity: 1},
	}
	expanded := Expand1D(pieces)
	require.Len(t, expanded, 3)
	assert.Equal(t, "a_0", expanded[0].ID)
	assert.Equal(t, "a_1", expanded[1].ID)
	assert.Equal(t, "b_0", expanded[2].ID)
	assert.Equal(t, 100.0, expanded[0].Length)
	assert.Equal(t, 200.0, expanded[2].Length)
}

func TestExpand1D_ZeroQuantityYieldsNothing(t *testing.T) {
	pieces := []Piece1D{{ID: "a", Length: 50, Quantity: 0}}
	assert.Empty(t, Expand1D(pieces))
}

func TestExpand2D_PreservesAttributes(t *testing.T) {
	pieces := []Piece2D{
		{ID: "p1", Width: 100, Height: 50, Quantity: 2, CanRotate: true, Grain: GrainHorizontal},
	}
	expanded := Expand2D(pieces)
	require.Len(t, expanded, 2)
	for i, e := range expanded {
		assert.Equal(t, "p1", e.OriginalID)
		assert.True(t, e.CanRotate)
		assert.Equal(t, GrainHorizontal, e.Grain)
		assert.Equal(t, 100.0, e.Width)
		assert.Equal(t, 50.0, e.Height)
		_ = i
	}
}

func TestPiece2D_Area(t *testing.T) {
	p := Piece2D{Width: 10, Height: 4}
	assert.Equal(t, 40.0, p.Area())
}

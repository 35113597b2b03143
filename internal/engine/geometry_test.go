package engine

import (
	"testing"

	"github.com/piwi3910/cutstock/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestGetOrientations_SquareYieldsOne(t *testing.T) {
	orientations := getOrientations(50, 50, true, true, model.GrainNone, false)
	assert.Len(t, orientations, 1)
}

func TestGetOrientations_GrainLockedIgnoresRotation(t *testing.T) {
	orientations := getOrientations(50, 100, true, true, model.GrainHorizontal, true)
	assert.Len(t, orientations, 1)
	assert.False(t, orientations[0].rotated)
}

func TestGetOrientations_RotatableYieldsTwo(t *testing.T) {
	orientations := getOrientations(50, 100, true, true, model.GrainNone, false)
	assert.Len(t, orientations, 2)
}

func TestSatisfiesGrain_Horizontal(t *testing.T) {
	wide := orientation{w: 100, h: 50}
	tall := orientation{w: 50, h: 100}
	assert.True(t, satisfiesGrain(wide, model.GrainHorizontal, true))
	assert.False(t, satisfiesGrain(tall, model.GrainHorizontal, true))
}

func TestRectanglesOverlap_TouchingEdgesDoNotOverlap(t *testing.T) {
	assert.False(t, rectanglesOverlap(0, 0, 10, 10, 10, 0, 10, 10))
	assert.True(t, rectanglesOverlap(0, 0, 10, 10, 5, 5, 10, 10))
}

func TestPruneContained_RemovesSubsetRects(t *testing.T) {
	rects := []model.FreeRect{
		{X: 0, Y: 0, Width: 100, Height: 100},
		{X: 10, Y: 10, Width: 20, Height: 20},
	}
	pruned := pruneContained(rects)
	assert.Len(t, pruned, 1)
	assert.Equal(t, 100.0, pruned[0].Width)
}

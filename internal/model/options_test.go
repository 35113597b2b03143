package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEffectiveSliverThreshold_DefaultsToKerf(t *testing.T) {
	o := Options2D{Kerf: 3.0}
	assert.Equal(t, 3.0, o.EffectiveSliverThreshold())
}

func TestEffectiveSliverThreshold_FallsBackToEpsilonWithoutKerf(t *testing.T) {
	o := Options2D{}
	assert.Equal(t, DefaultSliverThreshold, o.EffectiveSliverThreshold())
}

func TestEffectiveSliverThreshold_ExplicitOverridesKerf(t *testing.T) {
	o := Options2D{Kerf: 3.0, SliverThreshold: 0.5}
	assert.Equal(t, 0.5, o.EffectiveSliverThreshold())
}

func TestDefaultOptions1D(t *testing.T) {
	o := DefaultOptions1D()
	assert.Equal(t, FFD, o.Algorithm)
	assert.Zero(t, o.Kerf)
}

func TestDefaultOptions2D(t *testing.T) {
	o := DefaultOptions2D()
	assert.Equal(t, MaxRects, o.Algorithm)
	assert.Equal(t, BSSF, o.Heuristic)
	assert.True(t, o.AllowRotation)
}

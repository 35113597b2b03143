package export

import (
	"testing"

	"github.com/piwi3910/cutstock/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestExportPDF_ErrorsOnEmptyResult(t *testing.T) {
	err := ExportPDF("/tmp/unused.pdf", model.Result2D{}, 3.0)
	assert.Error(t, err)
}

func TestLabelFontSize_ScalesWithRectSize(t *testing.T) {
	assert.Equal(t, 8.0, labelFontSize(50, 50))
	assert.Equal(t, 7.0, labelFontSize(25, 25))
	assert.Equal(t, 6.0, labelFontSize(10, 10))
}

func TestCountPlacements(t *testing.T) {
	res := sampleResult2D()
	assert.Equal(t, 2, countPlacements(res))
}

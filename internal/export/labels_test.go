package export

import (
	"testing"

	"github.com/piwi3910/cutstock/internal/model"
	"github.com/stretchr/testify/assert"
)

func sampleResult2D() model.Result2D {
	return model.Result2D{
		Success: true,
		Sheets: []model.SheetResult{
			{
				StockID: "s1",
				Width:   1000,
				Height:  1000,
				Placements: []model.Placement{
					{PieceID: "p1_0", X: 0, Y: 0, Width: 500, Height: 300},
					{PieceID: "p1_1", X: 500, Y: 0, Width: 300, Height: 500, Rotated: true},
				},
			},
		},
	}
}

func TestCollectLabelInfos(t *testing.T) {
	labels := CollectLabelInfos(sampleResult2D())
	assert.Len(t, labels, 2)
	assert.Equal(t, "p1_0", labels[0].PieceID)
	assert.Equal(t, 1, labels[0].SheetIndex)
	assert.True(t, labels[1].Rotated)
}

func TestExportLabels_ErrorsOnEmptyResult(t *testing.T) {
	err := ExportLabels("/tmp/unused.pdf", model.Result2D{})
	assert.Error(t, err)
}

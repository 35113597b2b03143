package model

// Placement is one piece placed on an ActiveSheet. Width/Height are the
// placed (post-rotation) dimensions.
type Placement struct {
	PieceID     string
	OrderItemID string
	X           float64
	Y           float64
	Width       float64
	Height      float64
	Rotated     bool
}

// Right returns the placement's right edge.
func (p Placement) Right() float64 { return p.X + p.Width }

// Bottom returns the placement's bottom edge.
func (p Placement) Bottom() float64 { return p.Y + p.Height }

// FreeRect is an axis-aligned empty rectangle on a sheet.
type FreeRect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Area returns the free rectangle's area.
func (r FreeRect) Area() float64 { return r.Width * r.Height }

// ActiveSheet is a stock sheet currently open for further placements
// during one optimization run. FreeRects is populated and maintained by
// the guillotine/MAXRECTS managers; the bottom-left manager ignores it
// and derives candidate positions directly from Placements.
type ActiveSheet struct {
	StockID   string
	Width     float64
	Height    float64
	Placements []Placement
	FreeRects []FreeRect
}

// NewActiveSheet opens a fresh sheet for the given stock dimensions.
func NewActiveSheet(stockID string, width, height float64) *ActiveSheet {
	return &ActiveSheet{
		StockID: stockID,
		Width:   width,
		Height:  height,
		FreeRects: []FreeRect{{X: 0, Y: 0, Width: width, Height: height}},
	}
}

// UsedArea returns the total area covered by placements.
func (s ActiveSheet) UsedArea() float64 {
	var total float64
	for _, p := range s.Placements {
		total += p.Width * p.Height
	}
	return total
}

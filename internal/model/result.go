package model

// UsableOffcut1D is a remnant on a finished bar long enough to be stocked
// as a shorter bar for future jobs.
type UsableOffcut1D struct {
	Position float64
	Length   float64
}

// BarResult is one finished bar in a Result1D.
type BarResult struct {
	StockID         string
	StockLength     float64
	Cuts            []Cut
	Waste           float64
	WastePercentage float64
	Offcut          *UsableOffcut1D
}

// Statistics1D summarizes a 1D optimization.
type Statistics1D struct {
	TotalPieces     int
	TotalStockLength float64
	TotalUsedLength float64
	Efficiency      float64
}

// Result1D is the immutable output of optimize1D.
type Result1D struct {
	Success              bool
	Bars                 []BarResult
	TotalWaste           float64
	TotalWastePercentage float64
	StockUsedCount       int
	UnplacedPieces       []Piece1D
	Statistics           Statistics1D
}

// UsableOffcut2D is a remnant rectangle on a finished sheet large enough
// to be stocked as a smaller sheet for future jobs.
type UsableOffcut2D struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// SheetResult is one finished sheet in a Result2D.
type SheetResult struct {
	StockID         string
	Width           float64
	Height          float64
	Placements      []Placement
	UsedArea        float64
	WasteArea       float64
	WastePercentage float64
	Offcuts         []UsableOffcut2D
}

// Statistics2D summarizes a 2D optimization.
type Statistics2D struct {
	TotalPieces    int
	TotalStockArea float64
	TotalUsedArea  float64
	Efficiency     float64
}

// Result2D is the immutable output of optimize2D.
type Result2D struct {
	Success              bool
	Sheets               []SheetResult
	TotalWasteArea       float64
	TotalWastePercentage float64
	StockUsedCount       int
	UnplacedPieces       []Piece2D
	Statistics           Statistics2D
}

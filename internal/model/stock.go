package model

// Stock1D is an available stock bar type.
type Stock1D struct {
	ID        string
	Length    float64
	Available int
	UnitPrice float64
}

// Stock2D is an available stock sheet type.
type Stock2D struct {
	ID        string
	Width     float64
	Height    float64
	Available int
	UnitPrice float64
}

// Area returns the sheet's area.
func (s Stock2D) Area() float64 {
	return s.Width * s.Height
}

package model

// Point is a 2D coordinate in the sheet's coordinate system.
type Point struct {
	X float64
	Y float64
}

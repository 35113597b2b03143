package model

import "strconv"

// Piece1D is a required cut length with a multiplicity, as supplied by the caller.
type Piece1D struct {
	ID          string
	Length      float64
	Quantity    int
	OrderItemID string
}

// Piece2D is a required rectangular piece with a multiplicity, as supplied by the caller.
type Piece2D struct {
	ID          string
	Width       float64
	Height      float64
	Quantity    int
	OrderItemID string
	CanRotate   bool
	Grain       Grain
}

// Area returns the piece's bounding-box area.
func (p Piece2D) Area() float64 {
	return p.Width * p.Height
}

// ExpandedPiece1D is one unit of a Piece1D, unrolled from its quantity.
type ExpandedPiece1D struct {
	ID          string // "<originalID>_<i>", unique within one optimize call
	OriginalID  string
	OrderItemID string
	Length      float64
}

// ExpandedPiece2D is one unit of a Piece2D, unrolled from its quantity.
type ExpandedPiece2D struct {
	ID          string
	OriginalID  string
	OrderItemID string
	Width       float64
	Height      float64
	CanRotate   bool
	Grain       Grain
}

// Area returns the expanded piece's bounding-box area.
func (p ExpandedPiece2D) Area() float64 {
	return p.Width * p.Height
}

// Expand1D unrolls each Piece1D of quantity n into n ExpandedPiece1D units,
// preserving input order across groups and ascending index within each group.
func Expand1D(pieces []Piece1D) []ExpandedPiece1D {
	var out []ExpandedPiece1D
	for _, p := range pieces {
		for i := 0; i < p.Quantity; i++ {
			out = append(out, ExpandedPiece1D{
				ID:          idFor(p.ID, i),
				OriginalID:  p.ID,
				OrderItemID: p.OrderItemID,
				Length:      p.Length,
			})
		}
	}
	return out
}

// Expand2D unrolls each Piece2D of quantity n into n ExpandedPiece2D units,
// preserving input order across groups and ascending index within each group.
func Expand2D(pieces []Piece2D) []ExpandedPiece2D {
	var out []ExpandedPiece2D
	for _, p := range pieces {
		for i := 0; i < p.Quantity; i++ {
			out = append(out, ExpandedPiece2D{
				ID:          idFor(p.ID, i),
				OriginalID:  p.ID,
				OrderItemID: p.OrderItemID,
				Width:       p.Width,
				Height:      p.Height,
				CanRotate:   p.CanRotate,
				Grain:       p.Grain,
			})
		}
	}
	return out
}

func idFor(inputID string, i int) string {
	return inputID + "_" + strconv.Itoa(i)
}

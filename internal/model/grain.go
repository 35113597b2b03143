package model

// Grain represents the grain-direction constraint for a 2D piece.
type Grain int

const (
	GrainNone       Grain = iota // No grain constraint, piece may be rotated freely
	GrainHorizontal              // Longer axis must run along X
	GrainVertical                // Longer axis must run along Y
)

func (g Grain) String() string {
	switch g {
	case GrainHorizontal:
		return "Horizontal"
	case GrainVertical:
		return "Vertical"
	default:
		return "None"
	}
}

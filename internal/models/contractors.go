package models

// ContractorShape identifies which contractor variant a contract requires
type ContractorShape string

const (
	// ShapeSolo is exactly one contractor
	ShapeSolo ContractorShape = "solo"

	// ShapeTeam is exactly two distinct contractors
	ShapeTeam ContractorShape = "team"

	// ShapeOther is the remaining players, each carrying explicit points
	ShapeOther ContractorShape = "other"
)

// PlayerScore pairs a player with an explicit point value
type PlayerScore struct {
	ID     PlayerID
	Points int
}

// Contractors identifies the player or players accountable for a hand's
// outcome. It is a closed variant: exactly the fields matching Shape are
// meaningful, and every consumer switches exhaustively on Shape.
type Contractors struct {
	// Shape tags which variant this value carries
	Shape ContractorShape

	// Solo is the single contractor, set when Shape == ShapeSolo
	Solo PlayerID

	// Team holds the two contractors, set when Shape == ShapeTeam
	Team [2]PlayerID

	// Other holds the named players and their points, set when Shape == ShapeOther
	Other []PlayerScore
}

// SoloContractors builds a Solo variant
func SoloContractors(id PlayerID) Contractors {
	return Contractors{Shape: ShapeSolo, Solo: id}
}

// TeamContractors builds a Team variant
func TeamContractors(a, b PlayerID) Contractors {
	return Contractors{Shape: ShapeTeam, Team: [2]PlayerID{a, b}}
}

// OtherContractors builds an Other variant from explicit per-player points
func OtherContractors(scores []PlayerScore) Contractors {
	return Contractors{Shape: ShapeOther, Other: scores}
}

// Named returns the player IDs this variant names, in order
func (c Contractors) Named() []PlayerID {
	switch c.Shape {
	case ShapeSolo:
		return []PlayerID{c.Solo}
	case ShapeTeam:
		return []PlayerID{c.Team[0], c.Team[1]}
	case ShapeOther:
		ids := make([]PlayerID, 0, len(c.Other))
		for _, ps := range c.Other {
			ids = append(ids, ps.ID)
		}
		return ids
	default:
		return nil
	}
}

// Names reports whether the variant names the given player
func (c Contractors) Names(id PlayerID) bool {
	for _, named := range c.Named() {
		if named == id {
			return true
		}
	}
	return false
}

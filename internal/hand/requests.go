package hand

// RequestKind identifies what kind of input the builder still needs
type RequestKind string

const (
	// RequestContractorsSolo asks for exactly one contractor
	RequestContractorsSolo RequestKind = "contractors_solo"

	// RequestContractorsTeam asks for exactly two contractors
	RequestContractorsTeam RequestKind = "contractors_team"

	// RequestContractorsOther asks for the remaining players with their points
	RequestContractorsOther RequestKind = "contractors_other"

	// RequestBid asks for a bid inside the contract's range
	RequestBid RequestKind = "bid"

	// RequestTricks asks for the number of tricks taken
	RequestTricks RequestKind = "tricks"
)

// Trick counts come from a standard 13-trick deal.
const (
	TricksMin = 0
	TricksMax = 13
)

// InputRequest describes one piece of input the builder needs. Min and Max
// carry the legal range for bid and tricks requests.
type InputRequest struct {
	Kind RequestKind
	Min  int
	Max  int
}

// PlayerCount returns how many player selections a contractor request needs,
// and 0 for non-contractor requests.
func (r InputRequest) PlayerCount() int {
	switch r.Kind {
	case RequestContractorsSolo:
		return 1
	case RequestContractorsTeam:
		return 2
	case RequestContractorsOther:
		return otherSize
	default:
		return 0
	}
}

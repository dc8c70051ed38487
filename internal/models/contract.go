package models

// GameRules selects a rule set. The set of values is closed; the rule
// catalog maps each one to a fixed contract list.
type GameRules string

const (
	// GameRulesDutch is the basic rule set
	GameRulesDutch GameRules = "dutch"

	// GameRulesFrench is the variant rule set with abondance contracts
	GameRulesFrench GameRules = "french"
)

// Gamemode names a scoring mode within a rule set
type Gamemode string

const (
	// GamemodeSolo is a single contractor committing to a bid number of tricks
	GamemodeSolo Gamemode = "solo"

	// GamemodeAsk is a two-player team committing to a shared bid
	GamemodeAsk Gamemode = "ask"

	// GamemodeMisere is a single contractor committing to win zero tricks
	GamemodeMisere Gamemode = "misere"

	// GamemodeAbondance is a high-commitment solo contract with a raised base
	GamemodeAbondance Gamemode = "abondance"

	// GamemodeAlliance is a free contract where points are entered per player
	GamemodeAlliance Gamemode = "alliance"
)

// BidRange is an inclusive range of legal bid values
type BidRange struct {
	Min int
	Max int
}

// Contains reports whether v falls inside the range
func (r BidRange) Contains(v int) bool {
	return v >= r.Min && v <= r.Max
}

// Contract describes one playable scoring mode: which contractor shape it
// requires, whether it carries a bid, and its scoring base unit. Contracts
// are produced read-only by the rule catalog.
type Contract struct {
	// Mode is the scoring mode this contract plays under
	Mode Gamemode

	// Shape is the contractor shape the mode requires
	Shape ContractorShape

	// Bid is the legal bid range, nil when the mode has no bid
	Bid *BidRange

	// Base is the scoring base unit for the mode
	Base int
}

// HasBid reports whether the contract requires a bid
func (c *Contract) HasBid() bool {
	return c.Bid != nil
}

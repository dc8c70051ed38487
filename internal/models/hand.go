package models

// Hand is the immutable result of a successfully built hand: the contract it
// was played under and the validated inputs. It is produced once by the hand
// builder and consumed by scoring.
type Hand struct {
	// Contract is the contract the hand was played under
	Contract *Contract

	// Contractors identifies the accountable player(s)
	Contractors Contractors

	// Bid is the committed bid, nil for modes without one
	Bid *int

	// Tricks is the number of tricks the contractors took
	Tricks int
}

// HandRecap is the ledger projection of a completed hand: what was played
// and the per-seat score delta it produced.
type HandRecap struct {
	// GamemodeName is the display name of the mode played
	GamemodeName string

	// Bid is the committed bid, nil for modes without one
	Bid *int

	// Tricks is the number of tricks the contractors took
	Tricks int

	// Contractors identifies the accountable player(s)
	Contractors Contractors

	// Scores holds the per-player delta, indexed by PlayerID
	Scores [MaxPlayers]int
}

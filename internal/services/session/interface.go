package session

import "context"

// Service defines the interface for running a whist scoring session: rule
// selection, roster setup, the hand entry protocol, and the score ledger.
type Service interface {
	// CreateSession starts a new session under the given rule set
	CreateSession(ctx context.Context, input *CreateSessionInput) (*CreateSessionOutput, error)

	// LoadSession restores a persisted session into memory
	LoadSession(ctx context.Context, input *LoadSessionInput) (*LoadSessionOutput, error)

	// EndSession discards a session and its persisted snapshot
	EndSession(ctx context.Context, input *EndSessionInput) (*EndSessionOutput, error)

	// AddPlayer adds a player to the session roster
	AddPlayer(ctx context.Context, input *AddPlayerInput) (*AddPlayerOutput, error)

	// ListContracts returns the session's contract list and selected index
	ListContracts(ctx context.Context, input *ListContractsInput) (*ListContractsOutput, error)

	// SelectContract changes the currently selected contract
	SelectContract(ctx context.Context, input *SelectContractInput) (*SelectContractOutput, error)

	// StartHand begins entering a hand under the selected contract
	StartHand(ctx context.Context, input *StartHandInput) (*StartHandOutput, error)

	// SubmitContractors answers the contractor request by player names
	SubmitContractors(ctx context.Context, input *SubmitContractorsInput) (*SubmitContractorsOutput, error)

	// SubmitBid answers the bid request
	SubmitBid(ctx context.Context, input *SubmitBidInput) (*SubmitBidOutput, error)

	// SubmitTricks answers the tricks request
	SubmitTricks(ctx context.Context, input *SubmitTricksInput) (*SubmitTricksOutput, error)

	// CancelHand discards the in-flight hand entry
	CancelHand(ctx context.Context, input *CancelHandInput) (*CancelHandOutput, error)

	// CompleteHand builds, scores, and records the in-flight hand
	CompleteHand(ctx context.Context, input *CompleteHandInput) (*CompleteHandOutput, error)

	// UndoLastHand removes the most recent hand and reverts its scores
	UndoLastHand(ctx context.Context, input *UndoLastHandInput) (*UndoLastHandOutput, error)

	// GetStandings returns the current roster with running scores
	GetStandings(ctx context.Context, input *GetStandingsInput) (*GetStandingsOutput, error)

	// GetHistory returns every recorded hand with its cumulative snapshot
	GetHistory(ctx context.Context, input *GetHistoryInput) (*GetHistoryOutput, error)
}

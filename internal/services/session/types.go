package session

import (
	"github.com/Eterniance/whist-points/internal/common/clock"
	"github.com/Eterniance/whist-points/internal/common/uuid"
	"github.com/Eterniance/whist-points/internal/hand"
	"github.com/Eterniance/whist-points/internal/models"
	sessionRepo "github.com/Eterniance/whist-points/internal/repositories/session"
)

// Config holds configuration for the session service
type Config struct {
	// Repository dependencies
	SessionRepo sessionRepo.Repository

	// Service dependencies
	Clock clock.Clock
	UUID  uuid.UUID
}

// CreateSessionInput contains parameters for creating a session
type CreateSessionInput struct {
	Rules models.GameRules
}

// CreateSessionOutput contains the result of creating a session
type CreateSessionOutput struct {
	SessionID string
	Contracts []*models.Contract
}

// LoadSessionInput contains parameters for restoring a session
type LoadSessionInput struct {
	SessionID string
}

// LoadSessionOutput contains the restored session state
type LoadSessionOutput struct {
	Rules     models.GameRules
	Players   []models.Player
	HandCount int
}

// EndSessionInput contains parameters for ending a session
type EndSessionInput struct {
	SessionID string
}

// EndSessionOutput contains the result of ending a session
type EndSessionOutput struct{}

// AddPlayerInput contains parameters for adding a player
type AddPlayerInput struct {
	SessionID string
	Name      string
}

// AddPlayerOutput contains the result of adding a player
type AddPlayerOutput struct {
	PlayerID    models.PlayerID
	PlayerCount int
	RosterFull  bool
}

// ListContractsInput contains parameters for listing contracts
type ListContractsInput struct {
	SessionID string
}

// ListContractsOutput contains the session's contracts
type ListContractsOutput struct {
	Contracts []*models.Contract
	Selected  int
}

// SelectContractInput contains parameters for selecting a contract
type SelectContractInput struct {
	SessionID string
	Index     int
}

// SelectContractOutput contains the result of selecting a contract
type SelectContractOutput struct {
	Contract *models.Contract
}

// StartHandInput contains parameters for starting a hand
type StartHandInput struct {
	SessionID string
}

// StartHandOutput contains the input requests the hand needs, in order
type StartHandOutput struct {
	Contract *models.Contract
	Requests []hand.InputRequest
}

// SubmitContractorsInput contains the selected contractor names, with
// per-player points for the alliance case
type SubmitContractorsInput struct {
	SessionID string
	Names     []string
	Points    []int
}

// SubmitContractorsOutput contains the resolved contractors
type SubmitContractorsOutput struct {
	Contractors models.Contractors
}

// SubmitBidInput contains parameters for submitting a bid
type SubmitBidInput struct {
	SessionID string
	Bid       int
}

// SubmitBidOutput contains the result of submitting a bid
type SubmitBidOutput struct{}

// SubmitTricksInput contains parameters for submitting a trick count
type SubmitTricksInput struct {
	SessionID string
	Tricks    int
}

// SubmitTricksOutput contains the result of submitting a trick count
type SubmitTricksOutput struct{}

// CancelHandInput contains parameters for cancelling the in-flight hand
type CancelHandInput struct {
	SessionID string
}

// CancelHandOutput contains the result of cancelling the in-flight hand
type CancelHandOutput struct{}

// CompleteHandInput contains parameters for completing the in-flight hand
type CompleteHandInput struct {
	SessionID string
}

// CompleteHandOutput contains the recorded hand and the new totals
type CompleteHandOutput struct {
	Recap  models.HandRecap
	Totals [models.MaxPlayers]int
}

// UndoLastHandInput contains parameters for undoing the last hand
type UndoLastHandInput struct {
	SessionID string
}

// UndoLastHandOutput contains the removed hand and the restored totals
type UndoLastHandOutput struct {
	Removed models.HandRecap
	Totals  [models.MaxPlayers]int
}

// GetStandingsInput contains parameters for reading the standings
type GetStandingsInput struct {
	SessionID string
}

// GetStandingsOutput contains the roster with running scores
type GetStandingsOutput struct {
	Players []models.Player
}

// GetHistoryInput contains parameters for reading the hand history
type GetHistoryInput struct {
	SessionID string
}

// HistoryEntry pairs a recap with the cumulative snapshot after it
type HistoryEntry struct {
	Recap    models.HandRecap
	Snapshot [models.MaxPlayers]int
}

// GetHistoryOutput contains the recorded hands in chronological order
type GetHistoryOutput struct {
	Entries []HistoryEntry
}

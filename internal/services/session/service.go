package session

import (
	"context"
	"fmt"
	"time"

	"github.com/Eterniance/whist-points/internal/common/clock"
	"github.com/Eterniance/whist-points/internal/common/uuid"
	"github.com/Eterniance/whist-points/internal/hand"
	"github.com/Eterniance/whist-points/internal/historic"
	"github.com/Eterniance/whist-points/internal/models"
	"github.com/Eterniance/whist-points/internal/players"
	sessionRepo "github.com/Eterniance/whist-points/internal/repositories/session"
	"github.com/Eterniance/whist-points/internal/rules"
	"github.com/Eterniance/whist-points/internal/scoring"
)

// sessionState is the in-memory state of one session. The hand builder lives
// here and only here; snapshots sent to the repository never include it.
type sessionState struct {
	id        string
	rules     models.GameRules
	contracts []*models.Contract
	selected  int
	registry  *players.Registry
	historic  *historic.Historic
	builder   *hand.Builder
	createdAt time.Time
}

// service implements the Service interface
type service struct {
	repo     sessionRepo.Repository
	clock    clock.Clock
	uuid     uuid.UUID
	sessions map[string]*sessionState
}

// NewService creates a new session service
func NewService(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.SessionRepo == nil {
		return nil, ErrNilRepository
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUID == nil {
		return nil, ErrNilUUIDGenerator
	}

	return &service{
		repo:     cfg.SessionRepo,
		clock:    cfg.Clock,
		uuid:     cfg.UUID,
		sessions: make(map[string]*sessionState),
	}, nil
}

// CreateSession starts a new session under the given rule set
func (s *service) CreateSession(ctx context.Context, input *CreateSessionInput) (*CreateSessionOutput, error) {
	contracts := rules.SelectRules(input.Rules)
	if contracts == nil {
		return nil, ErrUnknownRules
	}

	st := &sessionState{
		id:        s.uuid.NewUUID(),
		rules:     input.Rules,
		contracts: contracts,
		registry:  players.New(),
		historic:  historic.New(),
		createdAt: s.clock.Now(),
	}

	if err := s.persist(ctx, st); err != nil {
		return nil, err
	}

	s.sessions[st.id] = st

	return &CreateSessionOutput{
		SessionID: st.id,
		Contracts: contracts,
	}, nil
}

// LoadSession restores a persisted session into memory
func (s *service) LoadSession(ctx context.Context, input *LoadSessionInput) (*LoadSessionOutput, error) {
	out, err := s.repo.GetSession(ctx, &sessionRepo.GetSessionInput{
		SessionID: input.SessionID,
	})
	if err != nil {
		return nil, err
	}

	sess := out.Session

	contracts := rules.SelectRules(sess.Rules)
	if contracts == nil {
		return nil, ErrUnknownRules
	}

	registry, err := players.Restore(sess.Players)
	if err != nil {
		return nil, fmt.Errorf("failed to restore session %s: %w", sess.ID, err)
	}

	selected := sess.SelectedContract
	if selected < 0 || selected >= len(contracts) {
		selected = 0
	}

	st := &sessionState{
		id:        sess.ID,
		rules:     sess.Rules,
		contracts: contracts,
		selected:  selected,
		registry:  registry,
		historic:  historic.Restore(sess.Hands),
		createdAt: sess.CreatedAt,
	}

	s.sessions[st.id] = st

	return &LoadSessionOutput{
		Rules:     st.rules,
		Players:   st.registry.Players(),
		HandCount: st.historic.Len(),
	}, nil
}

// EndSession discards a session and its persisted snapshot
func (s *service) EndSession(ctx context.Context, input *EndSessionInput) (*EndSessionOutput, error) {
	if _, err := s.state(input.SessionID); err != nil {
		return nil, err
	}

	if err := s.repo.DeleteSession(ctx, &sessionRepo.DeleteSessionInput{
		SessionID: input.SessionID,
	}); err != nil {
		return nil, err
	}

	delete(s.sessions, input.SessionID)

	return &EndSessionOutput{}, nil
}

// AddPlayer adds a player to the session roster
func (s *service) AddPlayer(ctx context.Context, input *AddPlayerInput) (*AddPlayerOutput, error) {
	st, err := s.state(input.SessionID)
	if err != nil {
		return nil, err
	}

	count, err := st.registry.AddPlayer(input.Name)
	if err != nil {
		return nil, err
	}

	if err := s.persist(ctx, st); err != nil {
		return nil, err
	}

	return &AddPlayerOutput{
		PlayerID:    models.PlayerID(count - 1),
		PlayerCount: count,
		RosterFull:  st.registry.Full(),
	}, nil
}

// ListContracts returns the session's contract list and selected index
func (s *service) ListContracts(ctx context.Context, input *ListContractsInput) (*ListContractsOutput, error) {
	st, err := s.state(input.SessionID)
	if err != nil {
		return nil, err
	}

	return &ListContractsOutput{
		Contracts: st.contracts,
		Selected:  st.selected,
	}, nil
}

// SelectContract changes the currently selected contract
func (s *service) SelectContract(ctx context.Context, input *SelectContractInput) (*SelectContractOutput, error) {
	st, err := s.state(input.SessionID)
	if err != nil {
		return nil, err
	}

	if input.Index < 0 || input.Index >= len(st.contracts) {
		return nil, ErrContractOutOfRange
	}

	st.selected = input.Index

	if err := s.persist(ctx, st); err != nil {
		return nil, err
	}

	return &SelectContractOutput{
		Contract: st.contracts[st.selected],
	}, nil
}

// StartHand begins entering a hand under the selected contract. Any previous
// in-flight entry is discarded.
func (s *service) StartHand(ctx context.Context, input *StartHandInput) (*StartHandOutput, error) {
	st, err := s.state(input.SessionID)
	if err != nil {
		return nil, err
	}

	if !st.registry.Full() {
		return nil, ErrRosterIncomplete
	}

	contract := st.contracts[st.selected]

	builder, err := hand.NewBuilder(contract)
	if err != nil {
		return nil, err
	}
	st.builder = builder

	return &StartHandOutput{
		Contract: contract,
		Requests: builder.AllRequests(),
	}, nil
}

// SubmitContractors answers the contractor request by player names
func (s *service) SubmitContractors(ctx context.Context, input *SubmitContractorsInput) (*SubmitContractorsOutput, error) {
	st, err := s.state(input.SessionID)
	if err != nil {
		return nil, err
	}

	if st.builder == nil {
		return nil, ErrNoHandInProgress
	}

	contractors, err := hand.ContractorsFromNames(st.registry, input.Names, input.Points)
	if err != nil {
		return nil, err
	}

	if err := st.builder.SetContractors(contractors); err != nil {
		return nil, err
	}

	return &SubmitContractorsOutput{
		Contractors: contractors,
	}, nil
}

// SubmitBid answers the bid request
func (s *service) SubmitBid(ctx context.Context, input *SubmitBidInput) (*SubmitBidOutput, error) {
	st, err := s.state(input.SessionID)
	if err != nil {
		return nil, err
	}

	if st.builder == nil {
		return nil, ErrNoHandInProgress
	}

	if err := st.builder.SetBid(input.Bid); err != nil {
		return nil, err
	}

	return &SubmitBidOutput{}, nil
}

// SubmitTricks answers the tricks request
func (s *service) SubmitTricks(ctx context.Context, input *SubmitTricksInput) (*SubmitTricksOutput, error) {
	st, err := s.state(input.SessionID)
	if err != nil {
		return nil, err
	}

	if st.builder == nil {
		return nil, ErrNoHandInProgress
	}

	if err := st.builder.SetTricks(input.Tricks); err != nil {
		return nil, err
	}

	return &SubmitTricksOutput{}, nil
}

// CancelHand discards the in-flight hand entry
func (s *service) CancelHand(ctx context.Context, input *CancelHandInput) (*CancelHandOutput, error) {
	st, err := s.state(input.SessionID)
	if err != nil {
		return nil, err
	}

	st.builder = nil

	return &CancelHandOutput{}, nil
}

// CompleteHand builds, scores, and records the in-flight hand. Scores and
// ledger move together: if persisting the snapshot fails, both are reverted
// and the session looks untouched to the caller.
func (s *service) CompleteHand(ctx context.Context, input *CompleteHandInput) (*CompleteHandOutput, error) {
	st, err := s.state(input.SessionID)
	if err != nil {
		return nil, err
	}

	if st.builder == nil {
		return nil, ErrNoHandInProgress
	}

	h, err := st.builder.Build()
	if err != nil {
		return nil, err
	}

	recap := scoring.Recap(h)

	st.registry.ApplyScores(recap.Scores)
	st.historic.Push(recap)

	if err := s.persist(ctx, st); err != nil {
		st.historic.RemoveLast()
		st.registry.ApplyScores(negate(recap.Scores))
		return nil, err
	}

	st.builder = nil

	return &CompleteHandOutput{
		Recap:  recap,
		Totals: st.historic.Totals(),
	}, nil
}

// UndoLastHand removes the most recent hand and reverts its scores
func (s *service) UndoLastHand(ctx context.Context, input *UndoLastHandInput) (*UndoLastHandOutput, error) {
	st, err := s.state(input.SessionID)
	if err != nil {
		return nil, err
	}

	removed, ok := st.historic.Last()
	if !ok {
		return nil, ErrNoHandsRecorded
	}

	st.historic.RemoveLast()
	st.registry.ApplyScores(negate(removed.Scores))

	if err := s.persist(ctx, st); err != nil {
		st.historic.Push(removed)
		st.registry.ApplyScores(removed.Scores)
		return nil, err
	}

	return &UndoLastHandOutput{
		Removed: removed,
		Totals:  st.historic.Totals(),
	}, nil
}

// GetStandings returns the current roster with running scores
func (s *service) GetStandings(ctx context.Context, input *GetStandingsInput) (*GetStandingsOutput, error) {
	st, err := s.state(input.SessionID)
	if err != nil {
		return nil, err
	}

	return &GetStandingsOutput{
		Players: st.registry.Players(),
	}, nil
}

// GetHistory returns every recorded hand with its cumulative snapshot
func (s *service) GetHistory(ctx context.Context, input *GetHistoryInput) (*GetHistoryOutput, error) {
	st, err := s.state(input.SessionID)
	if err != nil {
		return nil, err
	}

	entries := make([]HistoryEntry, 0, st.historic.Len())
	for recap, snapshot := range st.historic.All() {
		entries = append(entries, HistoryEntry{
			Recap:    recap,
			Snapshot: snapshot,
		})
	}

	return &GetHistoryOutput{
		Entries: entries,
	}, nil
}

func (s *service) state(id string) (*sessionState, error) {
	st, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return st, nil
}

func (s *service) persist(ctx context.Context, st *sessionState) error {
	return s.repo.SaveSession(ctx, &sessionRepo.SaveSessionInput{
		Session: &models.Session{
			ID:               st.id,
			Rules:            st.rules,
			SelectedContract: st.selected,
			Players:          st.registry.Players(),
			Hands:            st.historic.Recaps(),
			CreatedAt:        st.createdAt,
			UpdatedAt:        s.clock.Now(),
		},
	})
}

func negate(deltas [models.MaxPlayers]int) [models.MaxPlayers]int {
	var out [models.MaxPlayers]int
	for i, d := range deltas {
		out[i] = -d
	}
	return out
}

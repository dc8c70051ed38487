package hand

import (
	"fmt"

	"github.com/Eterniance/whist-points/internal/models"
)

// otherSize is how many players an Other variant names: everyone except the
// one player who stays out of the alliance. Derived from the table size, not
// a literal, so a player-count policy change cannot silently break it.
const otherSize = models.MaxPlayers - 1

// Builder is a single-use accumulator that turns a contract plus a sequence
// of validated answers into a Hand. Setters may be retried after a rejected
// value; previously accepted fields are kept. A builder that has produced a
// Hand is spent and refuses a second Build.
type Builder struct {
	contract    *models.Contract
	contractors *models.Contractors
	bid         *int
	tricks      *int
	built       bool
}

// NewBuilder creates a builder for the given contract
func NewBuilder(contract *models.Contract) (*Builder, error) {
	if contract == nil {
		return nil, ErrNilContract
	}
	return &Builder{contract: contract}, nil
}

// Contract returns the contract the builder was created from
func (b *Builder) Contract() *models.Contract {
	return b.contract
}

// AllRequests returns the ordered inputs this contract needs. The sequence
// is computed from the contract alone, so it is stable across calls: the
// contractor request first, the bid request when the contract carries one,
// and the tricks request last.
func (b *Builder) AllRequests() []InputRequest {
	requests := make([]InputRequest, 0, 3)

	switch b.contract.Shape {
	case models.ShapeSolo:
		requests = append(requests, InputRequest{Kind: RequestContractorsSolo})
	case models.ShapeTeam:
		requests = append(requests, InputRequest{Kind: RequestContractorsTeam})
	case models.ShapeOther:
		requests = append(requests, InputRequest{Kind: RequestContractorsOther})
	}

	if b.contract.HasBid() {
		requests = append(requests, InputRequest{Kind: RequestBid, Min: b.contract.Bid.Min, Max: b.contract.Bid.Max})
	}

	requests = append(requests, InputRequest{Kind: RequestTricks, Min: TricksMin, Max: TricksMax})

	return requests
}

// SetContractors validates and stores the contractors for this hand
func (b *Builder) SetContractors(c models.Contractors) error {
	if c.Shape != b.contract.Shape {
		return ErrShapeMismatch
	}

	seen := make(map[models.PlayerID]bool)
	for _, id := range c.Named() {
		if id < 0 || int(id) >= models.MaxPlayers {
			return fmt.Errorf("%w: player id %d out of range", ErrInvalidInput, id)
		}
		if seen[id] {
			return fmt.Errorf("%w: player %d named twice", ErrInvalidInput, id)
		}
		seen[id] = true
	}

	if c.Shape == models.ShapeOther && len(c.Other) != otherSize {
		return ErrShapeMismatch
	}

	b.contractors = &c
	return nil
}

// SetBid validates and stores the bid. Contracts without a bid reject the
// call outright rather than ignoring it, keeping the state machine strict.
func (b *Builder) SetBid(value int) error {
	if !b.contract.HasBid() {
		return ErrUnexpectedBid
	}

	if !b.contract.Bid.Contains(value) {
		return ErrBidOutOfRange
	}

	b.bid = &value
	return nil
}

// SetTricks validates and stores the trick count
func (b *Builder) SetTricks(value int) error {
	if value < TricksMin || value > TricksMax {
		return ErrTricksOutOfRange
	}

	b.tricks = &value
	return nil
}

// Build consumes the builder and returns the completed hand. It fails if any
// required field was never set validly, and fails on every call after the
// first success.
func (b *Builder) Build() (*models.Hand, error) {
	if b.built {
		return nil, ErrAlreadyBuilt
	}

	if b.contractors == nil {
		return nil, ErrMissingContractors
	}

	if b.contract.HasBid() && b.bid == nil {
		return nil, ErrMissingBid
	}

	if b.tricks == nil {
		return nil, ErrMissingTricks
	}

	b.built = true

	return &models.Hand{
		Contract:    b.contract,
		Contractors: *b.contractors,
		Bid:         b.bid,
		Tricks:      *b.tricks,
	}, nil
}

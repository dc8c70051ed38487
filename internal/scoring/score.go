package scoring

import (
	"github.com/Eterniance/whist-points/internal/models"
)

// Score computes the per-seat deltas for a completed hand. It is pure:
// identical hands always produce identical deltas, and every one of the four
// seats gets a value.
//
// Bid modes score around a unit of base + |tricks − bid|. A solo contractor
// wins or loses three units against one unit for each opponent; a team
// splits the same stake two against two. Misere succeeds on zero tricks for
// three base units. An alliance hand uses the entered points directly, with
// the single unnamed player absorbing the negated sum so the hand stays
// zero-sum.
func Score(h *models.Hand) [models.MaxPlayers]int {
	var deltas [models.MaxPlayers]int

	switch h.Contractors.Shape {
	case models.ShapeSolo:
		unit, success := soloOutcome(h)
		contractorDelta := 3 * unit
		opponentDelta := -unit
		if !success {
			contractorDelta = -contractorDelta
			opponentDelta = -opponentDelta
		}
		for i := range deltas {
			if models.PlayerID(i) == h.Contractors.Solo {
				deltas[i] = contractorDelta
			} else {
				deltas[i] = opponentDelta
			}
		}

	case models.ShapeTeam:
		diff := h.Tricks - *h.Bid
		unit := h.Contract.Base + abs(diff)
		if diff < 0 {
			unit = -unit
		}
		for i := range deltas {
			if h.Contractors.Names(models.PlayerID(i)) {
				deltas[i] = unit
			} else {
				deltas[i] = -unit
			}
		}

	case models.ShapeOther:
		sum := 0
		for _, ps := range h.Contractors.Other {
			deltas[ps.ID] = ps.Points
			sum += ps.Points
		}
		for i := range deltas {
			if !h.Contractors.Names(models.PlayerID(i)) {
				deltas[i] = -sum
			}
		}
	}

	return deltas
}

// Recap projects a completed hand and its deltas into a ledger entry
func Recap(h *models.Hand) models.HandRecap {
	return models.HandRecap{
		GamemodeName: string(h.Contract.Mode),
		Bid:          h.Bid,
		Tricks:       h.Tricks,
		Contractors:  h.Contractors,
		Scores:       Score(h),
	}
}

func soloOutcome(h *models.Hand) (unit int, success bool) {
	if h.Contract.HasBid() {
		diff := h.Tricks - *h.Bid
		return h.Contract.Base + abs(diff), diff >= 0
	}

	// No-bid solo modes are misere style: the contract is won on zero tricks.
	return h.Contract.Base, h.Tricks == 0
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

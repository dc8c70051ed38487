package historic

import (
	"fmt"
	"iter"

	"github.com/Eterniance/whist-points/internal/models"
)

// Historic is the append-only ledger of completed hands. Next to each hand
// it keeps the cumulative per-seat score snapshot after that hand, so
// snapshot[i] is always the element-wise sum of the first i+1 recaps. The
// only removal is undoing the most recent entry.
type Historic struct {
	list   []models.HandRecap
	scores [][models.MaxPlayers]int
}

// New creates an empty ledger
func New() *Historic {
	return &Historic{}
}

// Restore rebuilds a ledger from persisted recaps, recomputing every
// cumulative snapshot so the invariant holds regardless of what was stored.
func Restore(recaps []models.HandRecap) *Historic {
	h := New()
	for _, r := range recaps {
		h.Push(r)
	}
	return h
}

// Push appends a recap and the cumulative snapshot it produces
func (h *Historic) Push(recap models.HandRecap) {
	if len(h.scores) == 0 {
		h.scores = append(h.scores, recap.Scores)
	} else {
		prev := h.scores[len(h.scores)-1]
		var next [models.MaxPlayers]int
		for i := range next {
			next[i] = prev[i] + recap.Scores[i]
		}
		h.scores = append(h.scores, next)
	}

	h.list = append(h.list, recap)
}

// RemoveLast undoes the most recent push, reporting whether anything was
// removed. Calling it on an empty ledger is a no-op.
func (h *Historic) RemoveLast() bool {
	h.checkLengths()

	if len(h.list) == 0 {
		return false
	}

	h.list = h.list[:len(h.list)-1]
	h.scores = h.scores[:len(h.scores)-1]
	return true
}

// Last returns the most recent recap, if any
func (h *Historic) Last() (models.HandRecap, bool) {
	if len(h.list) == 0 {
		return models.HandRecap{}, false
	}
	return h.list[len(h.list)-1], true
}

// Len returns the number of recorded hands
func (h *Historic) Len() int {
	h.checkLengths()
	return len(h.list)
}

// Totals returns the latest cumulative snapshot, all zeros when no hand has
// been recorded yet
func (h *Historic) Totals() [models.MaxPlayers]int {
	if len(h.scores) == 0 {
		return [models.MaxPlayers]int{}
	}
	return h.scores[len(h.scores)-1]
}

// Recaps returns a copy of the recorded hands in chronological order
func (h *Historic) Recaps() []models.HandRecap {
	out := make([]models.HandRecap, len(h.list))
	copy(out, h.list)
	return out
}

// All iterates the ledger in chronological order, yielding each recap with
// the cumulative snapshot at that point. The sequence is restartable.
func (h *Historic) All() iter.Seq2[models.HandRecap, [models.MaxPlayers]int] {
	return func(yield func(models.HandRecap, [models.MaxPlayers]int) bool) {
		h.checkLengths()
		for i := range h.list {
			if !yield(h.list[i], h.scores[i]) {
				return
			}
		}
	}
}

// A length difference would imply a misuse of the struct, not bad input.
func (h *Historic) checkLengths() {
	if len(h.list) != len(h.scores) {
		panic(fmt.Sprintf("historic: %d recaps but %d snapshots", len(h.list), len(h.scores)))
	}
}

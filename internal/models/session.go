package models

import (
	"time"
)

// Session is the durable snapshot of one scoring session: the rule set, the
// roster, and every completed hand. The in-flight hand builder is deliberately
// excluded; a paused entry form is not durable state.
type Session struct {
	// ID is the unique identifier for the session
	ID string

	// Rules is the rule set the session plays under
	Rules GameRules

	// SelectedContract is the index of the currently selected contract
	SelectedContract int

	// Players is the roster in seat order
	Players []Player

	// Hands holds the completed hands in chronological order
	Hands []HandRecap

	// CreatedAt is when the session was created
	CreatedAt time.Time

	// UpdatedAt is when the session was last updated
	UpdatedAt time.Time
}

package models

// MaxPlayers is the fixed table size for a whist session.
const MaxPlayers = 4

// PlayerID identifies a player by seat order, assigned sequentially from 0
type PlayerID int

// Player represents one of the four participants in a session
type Player struct {
	// ID is the stable, 0-based identifier assigned when the player joined
	ID PlayerID

	// Name is the display name, unique within a registry
	Name string

	// Score is the running cumulative score
	Score int
}

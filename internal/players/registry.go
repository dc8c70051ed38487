package players

import (
	"errors"
	"fmt"

	"github.com/Eterniance/whist-points/internal/models"
)

// Define errors
var (
	ErrDuplicateName = errors.New("player name already taken")
	ErrRegistryFull  = errors.New("registry already has four players")
	ErrEmptyName     = errors.New("player name cannot be empty")
)

// Registry owns the roster of up to four players and their running scores.
// Players are never removed individually; the registry is reset as a whole.
type Registry struct {
	list []models.Player
}

// New creates an empty registry
func New() *Registry {
	return &Registry{}
}

// Restore rebuilds a registry from a persisted roster. IDs are reassigned
// sequentially so a snapshot taken with Players always round-trips.
func Restore(roster []models.Player) (*Registry, error) {
	r := New()
	for _, p := range roster {
		if _, err := r.AddPlayer(p.Name); err != nil {
			return nil, fmt.Errorf("failed to restore roster: %w", err)
		}
		r.list[len(r.list)-1].Score = p.Score
	}
	return r, nil
}

// AddPlayer appends a player with the next sequential ID and returns the new
// roster size. Names must be non-empty and unique; a full registry rejects
// further additions.
func (r *Registry) AddPlayer(name string) (int, error) {
	if name == "" {
		return 0, ErrEmptyName
	}

	// Duplicate names are reported even when the roster is already full.
	for _, p := range r.list {
		if p.Name == name {
			return 0, ErrDuplicateName
		}
	}

	if len(r.list) >= models.MaxPlayers {
		return 0, ErrRegistryFull
	}

	r.list = append(r.list, models.Player{
		ID:   models.PlayerID(len(r.list)),
		Name: name,
	})

	return len(r.list), nil
}

// GetID looks up a player's ID by name
func (r *Registry) GetID(name string) (models.PlayerID, bool) {
	for _, p := range r.list {
		if p.Name == name {
			return p.ID, true
		}
	}
	return 0, false
}

// Names returns the player names in seat order
func (r *Registry) Names() []string {
	names := make([]string, len(r.list))
	for i, p := range r.list {
		names[i] = p.Name
	}
	return names
}

// Len returns the current roster size
func (r *Registry) Len() int {
	return len(r.list)
}

// Full reports whether the registry holds four players
func (r *Registry) Full() bool {
	return len(r.list) == models.MaxPlayers
}

// Players returns a copy of the roster in seat order
func (r *Registry) Players() []models.Player {
	out := make([]models.Player, len(r.list))
	copy(out, r.list)
	return out
}

// UpdateScore adds score to every player the contractors variant names
func (r *Registry) UpdateScore(c models.Contractors, score int) {
	for _, id := range c.Named() {
		if int(id) < len(r.list) {
			r.list[id].Score += score
		}
	}
}

// ApplyScores adds each of the four deltas to the matching player's running
// score. Every seat gets a delta, including non-contractors.
func (r *Registry) ApplyScores(deltas [models.MaxPlayers]int) {
	for i := range r.list {
		r.list[i].Score += deltas[i]
	}
}

// Reset clears the roster
func (r *Registry) Reset() {
	r.list = nil
}

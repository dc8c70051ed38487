package hand

import (
	"fmt"

	"github.com/Eterniance/whist-points/internal/models"
	"github.com/Eterniance/whist-points/internal/players"
)

// ContractorsFromNames resolves a caller's selected player names into a
// Contractors value, choosing the variant by count: one name is a solo, two
// a team, and three an alliance carrying the supplied per-player points.
// Points are required for the alliance case only and must line up with the
// names, one point value per named player.
func ContractorsFromNames(registry *players.Registry, names []string, points []int) (models.Contractors, error) {
	ids := make([]models.PlayerID, 0, len(names))
	for _, name := range names {
		id, ok := registry.GetID(name)
		if !ok {
			return models.Contractors{}, fmt.Errorf("%w: player ID mismatch for %q", ErrInvalidInput, name)
		}
		ids = append(ids, id)
	}

	switch len(ids) {
	case 1:
		return models.SoloContractors(ids[0]), nil
	case 2:
		return models.TeamContractors(ids[0], ids[1]), nil
	case otherSize:
		if len(points) != otherSize {
			return models.Contractors{}, fmt.Errorf("%w: expected %d point values, got %d", ErrInvalidInput, otherSize, len(points))
		}
		scores := make([]models.PlayerScore, otherSize)
		for i, id := range ids {
			scores[i] = models.PlayerScore{ID: id, Points: points[i]}
		}
		return models.OtherContractors(scores), nil
	default:
		return models.Contractors{}, ErrTooManyPlayers
	}
}

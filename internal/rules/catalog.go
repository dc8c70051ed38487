package rules

import (
	"github.com/Eterniance/whist-points/internal/models"
)

// SelectRules maps a rule set to its fixed contract list. The mapping is
// pure and deterministic: the same rule set always yields the same contracts
// in the same order, so a selected index stays stable across redraws.
func SelectRules(rules models.GameRules) []*models.Contract {
	switch rules {
	case models.GameRulesDutch:
		return []*models.Contract{
			{Mode: models.GamemodeSolo, Shape: models.ShapeSolo, Bid: &models.BidRange{Min: 1, Max: 13}, Base: 2},
			{Mode: models.GamemodeAsk, Shape: models.ShapeTeam, Bid: &models.BidRange{Min: 8, Max: 13}, Base: 2},
			{Mode: models.GamemodeMisere, Shape: models.ShapeSolo, Base: 5},
			{Mode: models.GamemodeAlliance, Shape: models.ShapeOther},
		}
	case models.GameRulesFrench:
		return []*models.Contract{
			{Mode: models.GamemodeSolo, Shape: models.ShapeSolo, Bid: &models.BidRange{Min: 6, Max: 13}, Base: 2},
			{Mode: models.GamemodeAsk, Shape: models.ShapeTeam, Bid: &models.BidRange{Min: 8, Max: 13}, Base: 2},
			{Mode: models.GamemodeAbondance, Shape: models.ShapeSolo, Bid: &models.BidRange{Min: 9, Max: 13}, Base: 4},
			{Mode: models.GamemodeMisere, Shape: models.ShapeSolo, Base: 5},
			{Mode: models.GamemodeAlliance, Shape: models.ShapeOther},
		}
	default:
		return nil
	}
}

// AllRules returns the known rule sets in display order
func AllRules() []models.GameRules {
	return []models.GameRules{models.GameRulesDutch, models.GameRulesFrench}
}

package scoring

import (
	"testing"

	"github.com/Eterniance/whist-points/internal/models"
	"github.com/Eterniance/whist-points/internal/rules"
	"github.com/stretchr/testify/suite"
)

type ScoringTestSuite struct {
	suite.Suite
	contracts []*models.Contract
}

func (s *ScoringTestSuite) SetupTest() {
	s.contracts = rules.SelectRules(models.GameRulesDutch)
	s.Require().Len(s.contracts, 4)
}

func TestScoringTestSuite(t *testing.T) {
	suite.Run(t, new(ScoringTestSuite))
}

func bid(v int) *int {
	return &v
}

func (s *ScoringTestSuite) TestSoloMadeExactly() {
	h := &models.Hand{
		Contract:    s.contracts[0],
		Contractors: models.SoloContractors(1),
		Bid:         bid(5),
		Tricks:      5,
	}

	// unit = 2 + 0: contractor wins 6, each opponent loses 2
	s.Equal([models.MaxPlayers]int{-2, 6, -2, -2}, Score(h))
}

func (s *ScoringTestSuite) TestSoloOvertricksRaiseTheUnit() {
	h := &models.Hand{
		Contract:    s.contracts[0],
		Contractors: models.SoloContractors(0),
		Bid:         bid(5),
		Tricks:      7,
	}

	// unit = 2 + 2
	s.Equal([models.MaxPlayers]int{12, -4, -4, -4}, Score(h))
}

func (s *ScoringTestSuite) TestSoloFailed() {
	h := &models.Hand{
		Contract:    s.contracts[0],
		Contractors: models.SoloContractors(2),
		Bid:         bid(8),
		Tricks:      5,
	}

	// unit = 2 + 3: contractor loses 15, each opponent wins 5
	s.Equal([models.MaxPlayers]int{5, 5, -15, 5}, Score(h))
}

func (s *ScoringTestSuite) TestTeamMade() {
	h := &models.Hand{
		Contract:    s.contracts[1],
		Contractors: models.TeamContractors(0, 2),
		Bid:         bid(8),
		Tricks:      9,
	}

	// unit = 2 + 1
	s.Equal([models.MaxPlayers]int{3, -3, 3, -3}, Score(h))
}

func (s *ScoringTestSuite) TestTeamFailed() {
	h := &models.Hand{
		Contract:    s.contracts[1],
		Contractors: models.TeamContractors(1, 3),
		Bid:         bid(10),
		Tricks:      8,
	}

	// unit = 2 + 2
	s.Equal([models.MaxPlayers]int{4, -4, 4, -4}, Score(h))
}

func (s *ScoringTestSuite) TestMisereWonOnZeroTricks() {
	h := &models.Hand{
		Contract:    s.contracts[2],
		Contractors: models.SoloContractors(3),
		Tricks:      0,
	}

	s.Equal([models.MaxPlayers]int{-5, -5, -5, 15}, Score(h))
}

func (s *ScoringTestSuite) TestMisereLostOnAnyTrick() {
	h := &models.Hand{
		Contract:    s.contracts[2],
		Contractors: models.SoloContractors(3),
		Tricks:      1,
	}

	s.Equal([models.MaxPlayers]int{5, 5, 5, -15}, Score(h))
}

func (s *ScoringTestSuite) TestAllianceUsesEnteredPoints() {
	h := &models.Hand{
		Contract: s.contracts[3],
		Contractors: models.OtherContractors([]models.PlayerScore{
			{ID: 0, Points: 4},
			{ID: 1, Points: -1},
			{ID: 3, Points: 2},
		}),
		Tricks: 6,
	}

	// The unnamed seat absorbs the negated sum.
	s.Equal([models.MaxPlayers]int{4, -1, -5, 2}, Score(h))
}

func (s *ScoringTestSuite) TestEveryModeIsZeroSum() {
	hands := []*models.Hand{
		{Contract: s.contracts[0], Contractors: models.SoloContractors(1), Bid: bid(7), Tricks: 4},
		{Contract: s.contracts[1], Contractors: models.TeamContractors(0, 1), Bid: bid(8), Tricks: 13},
		{Contract: s.contracts[2], Contractors: models.SoloContractors(0), Tricks: 2},
		{Contract: s.contracts[3], Contractors: models.OtherContractors([]models.PlayerScore{
			{ID: 1, Points: 7},
			{ID: 2, Points: -2},
			{ID: 3, Points: -2},
		}), Tricks: 5},
	}

	for _, h := range hands {
		deltas := Score(h)
		sum := 0
		for _, d := range deltas {
			sum += d
		}
		s.Equal(0, sum, "mode %s", h.Contract.Mode)
	}
}

func (s *ScoringTestSuite) TestScoreIsDeterministic() {
	h := &models.Hand{
		Contract:    s.contracts[0],
		Contractors: models.SoloContractors(1),
		Bid:         bid(5),
		Tricks:      5,
	}

	s.Equal(Score(h), Score(h))
}

func (s *ScoringTestSuite) TestRecapProjectsHand() {
	h := &models.Hand{
		Contract:    s.contracts[0],
		Contractors: models.SoloContractors(1),
		Bid:         bid(5),
		Tricks:      5,
	}

	recap := Recap(h)
	s.Equal("solo", recap.GamemodeName)
	s.Equal(h.Bid, recap.Bid)
	s.Equal(5, recap.Tricks)
	s.Equal(Score(h), recap.Scores)
}

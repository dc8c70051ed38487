package hand

import (
	"testing"

	"github.com/Eterniance/whist-points/internal/models"
	"github.com/Eterniance/whist-points/internal/players"
	"github.com/stretchr/testify/suite"
)

type ContractorsTestSuite struct {
	suite.Suite
	registry *players.Registry
}

func (s *ContractorsTestSuite) SetupTest() {
	s.registry = players.New()
	for _, name := range []string{"Alice", "Bob", "Carol", "Dave"} {
		_, err := s.registry.AddPlayer(name)
		s.Require().NoError(err)
	}
}

func TestContractorsTestSuite(t *testing.T) {
	suite.Run(t, new(ContractorsTestSuite))
}

func (s *ContractorsTestSuite) TestSoloFromOneName() {
	c, err := ContractorsFromNames(s.registry, []string{"Bob"}, nil)
	s.Require().NoError(err)
	s.Equal(models.SoloContractors(1), c)
}

func (s *ContractorsTestSuite) TestTeamFromTwoNames() {
	c, err := ContractorsFromNames(s.registry, []string{"Alice", "Dave"}, nil)
	s.Require().NoError(err)
	s.Equal(models.TeamContractors(0, 3), c)
}

func (s *ContractorsTestSuite) TestOtherFromThreeNamesWithPoints() {
	c, err := ContractorsFromNames(s.registry, []string{"Alice", "Bob", "Carol"}, []int{4, -1, -3})
	s.Require().NoError(err)
	s.Equal(models.ShapeOther, c.Shape)
	s.Equal([]models.PlayerScore{
		{ID: 0, Points: 4},
		{ID: 1, Points: -1},
		{ID: 2, Points: -3},
	}, c.Other)
}

func (s *ContractorsTestSuite) TestOtherMissingPoints() {
	_, err := ContractorsFromNames(s.registry, []string{"Alice", "Bob", "Carol"}, []int{4, -1})
	s.ErrorIs(err, ErrInvalidInput)
}

func (s *ContractorsTestSuite) TestUnknownName() {
	_, err := ContractorsFromNames(s.registry, []string{"Eve"}, nil)
	s.ErrorIs(err, ErrInvalidInput)
}

func (s *ContractorsTestSuite) TestTooManyNames() {
	_, err := ContractorsFromNames(s.registry, []string{"Alice", "Bob", "Carol", "Dave"}, nil)
	s.ErrorIs(err, ErrTooManyPlayers)
}

package historic

import (
	"testing"

	"github.com/Eterniance/whist-points/internal/models"
	"github.com/stretchr/testify/suite"
)

type HistoricTestSuite struct {
	suite.Suite
	historic *Historic
}

func (s *HistoricTestSuite) SetupTest() {
	s.historic = New()
}

func TestHistoricTestSuite(t *testing.T) {
	suite.Run(t, new(HistoricTestSuite))
}

func recap(scores [models.MaxPlayers]int) models.HandRecap {
	return models.HandRecap{
		GamemodeName: "solo",
		Tricks:       5,
		Contractors:  models.SoloContractors(0),
		Scores:       scores,
	}
}

func (s *HistoricTestSuite) TestPushAccumulatesSnapshots() {
	s.historic.Push(recap([models.MaxPlayers]int{3, -1, -1, -1}))
	s.Equal([models.MaxPlayers]int{3, -1, -1, -1}, s.historic.Totals())

	s.historic.Push(recap([models.MaxPlayers]int{1, -1, 2, -2}))
	s.Equal([models.MaxPlayers]int{4, -2, 1, -3}, s.historic.Totals())

	s.Equal(2, s.historic.Len())
}

func (s *HistoricTestSuite) TestSnapshotsAreRunningSums() {
	deltas := [][models.MaxPlayers]int{
		{3, -1, -1, -1},
		{-4, 4, -4, 4},
		{0, 0, 0, 0},
		{7, -5, -1, -1},
	}
	for _, d := range deltas {
		s.historic.Push(recap(d))
	}

	var want [models.MaxPlayers]int
	i := 0
	for r, snapshot := range s.historic.All() {
		for j := range want {
			want[j] += deltas[i][j]
		}
		s.Equal(deltas[i], r.Scores)
		s.Equal(want, snapshot)
		i++
	}
	s.Equal(len(deltas), i)
}

func (s *HistoricTestSuite) TestIterationIsRestartable() {
	s.historic.Push(recap([models.MaxPlayers]int{1, 1, -1, -1}))
	s.historic.Push(recap([models.MaxPlayers]int{2, -2, 2, -2}))

	count := func() int {
		n := 0
		for range s.historic.All() {
			n++
		}
		return n
	}

	s.Equal(2, count())
	s.Equal(2, count())
}

func (s *HistoricTestSuite) TestRemoveLastRestoresPreviousState() {
	s.historic.Push(recap([models.MaxPlayers]int{3, -1, -1, -1}))
	s.historic.Push(recap([models.MaxPlayers]int{1, -1, 2, -2}))

	s.True(s.historic.RemoveLast())
	s.Equal(1, s.historic.Len())
	s.Equal([models.MaxPlayers]int{3, -1, -1, -1}, s.historic.Totals())
}

func (s *HistoricTestSuite) TestRemoveLastOnEmptyIsNoOp() {
	s.False(s.historic.RemoveLast())
	s.Equal(0, s.historic.Len())
}

func (s *HistoricTestSuite) TestLastReturnsMostRecent() {
	_, ok := s.historic.Last()
	s.False(ok)

	s.historic.Push(recap([models.MaxPlayers]int{1, -1, 1, -1}))
	last, ok := s.historic.Last()
	s.True(ok)
	s.Equal([models.MaxPlayers]int{1, -1, 1, -1}, last.Scores)
}

func (s *HistoricTestSuite) TestRestoreRecomputesSnapshots() {
	s.historic.Push(recap([models.MaxPlayers]int{3, -1, -1, -1}))
	s.historic.Push(recap([models.MaxPlayers]int{1, -1, 2, -2}))

	restored := Restore(s.historic.Recaps())
	s.Equal(s.historic.Len(), restored.Len())
	s.Equal(s.historic.Totals(), restored.Totals())
}

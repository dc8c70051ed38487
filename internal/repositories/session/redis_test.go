package session

import (
	"context"
	"testing"
	"time"

	"github.com/Eterniance/whist-points/internal/models"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	ctx     context.Context
	testNow time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	// Create a new miniredis server for each test
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	// Create a Redis client connected to the miniredis server
	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	// Create the repository
	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo

	s.ctx = context.Background()
	s.testNow = time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) testSession() *models.Session {
	bid := 5
	return &models.Session{
		ID:    "test-session-id",
		Rules: models.GameRulesDutch,
		Players: []models.Player{
			{ID: 0, Name: "Alice", Score: 3},
			{ID: 1, Name: "Bob", Score: -1},
			{ID: 2, Name: "Carol", Score: -1},
			{ID: 3, Name: "Dave", Score: -1},
		},
		Hands: []models.HandRecap{
			{
				GamemodeName: "solo",
				Bid:          &bid,
				Tricks:       5,
				Contractors:  models.SoloContractors(0),
				Scores:       [models.MaxPlayers]int{3, -1, -1, -1},
			},
		},
		CreatedAt: s.testNow,
		UpdatedAt: s.testNow,
	}
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetSession() {
	sess := s.testSession()

	err := s.repo.SaveSession(s.ctx, &SaveSessionInput{Session: sess})
	s.Require().NoError(err)

	out, err := s.repo.GetSession(s.ctx, &GetSessionInput{SessionID: sess.ID})
	s.Require().NoError(err)
	s.Equal(sess, out.Session)
}

func (s *RedisRepositoryTestSuite) TestGetSessionNotFound() {
	_, err := s.repo.GetSession(s.ctx, &GetSessionInput{SessionID: "missing"})
	s.ErrorIs(err, ErrSessionNotFound)
}

func (s *RedisRepositoryTestSuite) TestSaveSessionRequiresID() {
	sess := s.testSession()
	sess.ID = ""

	err := s.repo.SaveSession(s.ctx, &SaveSessionInput{Session: sess})
	s.Error(err)
}

func (s *RedisRepositoryTestSuite) TestSaveOverwritesExistingSnapshot() {
	sess := s.testSession()
	s.Require().NoError(s.repo.SaveSession(s.ctx, &SaveSessionInput{Session: sess}))

	sess.Players[0].Score = 10
	sess.Hands = nil
	s.Require().NoError(s.repo.SaveSession(s.ctx, &SaveSessionInput{Session: sess}))

	out, err := s.repo.GetSession(s.ctx, &GetSessionInput{SessionID: sess.ID})
	s.Require().NoError(err)
	s.Equal(10, out.Session.Players[0].Score)
	s.Empty(out.Session.Hands)
}

func (s *RedisRepositoryTestSuite) TestDeleteSession() {
	sess := s.testSession()
	s.Require().NoError(s.repo.SaveSession(s.ctx, &SaveSessionInput{Session: sess}))

	err := s.repo.DeleteSession(s.ctx, &DeleteSessionInput{SessionID: sess.ID})
	s.Require().NoError(err)

	_, err = s.repo.GetSession(s.ctx, &GetSessionInput{SessionID: sess.ID})
	s.ErrorIs(err, ErrSessionNotFound)

	out, err := s.repo.ListSessionIDs(s.ctx, &ListSessionIDsInput{})
	s.Require().NoError(err)
	s.Empty(out.SessionIDs)
}

func (s *RedisRepositoryTestSuite) TestListSessionIDs() {
	first := s.testSession()
	second := s.testSession()
	second.ID = "other-session-id"

	s.Require().NoError(s.repo.SaveSession(s.ctx, &SaveSessionInput{Session: first}))
	s.Require().NoError(s.repo.SaveSession(s.ctx, &SaveSessionInput{Session: second}))

	out, err := s.repo.ListSessionIDs(s.ctx, &ListSessionIDsInput{})
	s.Require().NoError(err)
	s.ElementsMatch([]string{first.ID, second.ID}, out.SessionIDs)
}

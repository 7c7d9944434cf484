package repository_test

import (
	"context"
	"testing"

	"github.com/lshigami/answerboard/internal/model"
	"github.com/lshigami/answerboard/internal/repository"
	"github.com/lshigami/answerboard/internal/testutil"
	"github.com/stretchr/testify/suite"
)

type AnswerRepositorySuite struct {
	suite.Suite
	ctx  context.Context
	repo repository.AnswerRepository
}

func (s *AnswerRepositorySuite) SetupTest() {
	s.ctx = context.Background()
	s.repo = repository.NewAnswerRepository(testutil.NewDB(s.T()))
}

func (s *AnswerRepositorySuite) create(questionID, userID uint, body string) *model.Answer {
	a := &model.Answer{Body: body, QuestionID: questionID, UserID: userID}
	s.Require().NoError(s.repo.Create(s.ctx, a))
	return a
}

func (s *AnswerRepositorySuite) TestCreateAssignsID() {
	a := s.create(7, 3, "42")
	s.NotZero(a.ID)

	found, err := s.repo.FindByID(s.ctx, a.ID)
	s.Require().NoError(err)
	s.Equal("42", found.Body)
	s.Equal(uint(7), found.QuestionID)
	s.Equal(uint(3), found.UserID)
}

func (s *AnswerRepositorySuite) TestFindByIDMissing() {
	_, err := s.repo.FindByID(s.ctx, 12345)
	s.ErrorIs(err, repository.ErrNotFound)
}

func (s *AnswerRepositorySuite) TestFindByQuestionIDFilters() {
	a1 := s.create(7, 1, "a")
	s.create(8, 1, "b")
	a3 := s.create(7, 2, "c")

	answers, err := s.repo.FindByQuestionID(s.ctx, 7)
	s.Require().NoError(err)

	ids := make([]uint, 0, len(answers))
	for _, a := range answers {
		s.Equal(uint(7), a.QuestionID)
		ids = append(ids, a.ID)
	}
	s.ElementsMatch([]uint{a1.ID, a3.ID}, ids)
}

func (s *AnswerRepositorySuite) TestFindByQuestionIDEmpty() {
	answers, err := s.repo.FindByQuestionID(s.ctx, 99)
	s.Require().NoError(err)
	s.NotNil(answers)
	s.Empty(answers)
}

func (s *AnswerRepositorySuite) TestUpdateKeepsIdentity() {
	a := s.create(7, 3, "old")
	a.Body = "new"
	a.QuestionID = 8
	s.Require().NoError(s.repo.Update(s.ctx, a))

	found, err := s.repo.FindByID(s.ctx, a.ID)
	s.Require().NoError(err)
	s.Equal("new", found.Body)
	s.Equal(uint(8), found.QuestionID)
	s.Equal(uint(3), found.UserID)
}

func (s *AnswerRepositorySuite) TestDelete() {
	a := s.create(7, 3, "bye")
	s.Require().NoError(s.repo.Delete(s.ctx, a))

	_, err := s.repo.FindByID(s.ctx, a.ID)
	s.ErrorIs(err, repository.ErrNotFound)
}

func TestAnswerRepositorySuite(t *testing.T) {
	suite.Run(t, new(AnswerRepositorySuite))
}

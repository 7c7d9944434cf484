package service

import (
	"context"

	"github.com/jinzhu/copier"
	"github.com/lshigami/answerboard/internal/apperror"
	"github.com/lshigami/answerboard/internal/dto"
	"github.com/lshigami/answerboard/internal/model"
	"github.com/lshigami/answerboard/internal/repository"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// AnswerService holds the persistence side of the answer pages. Input is
// validated by the caller; ownership is checked here.
type AnswerService interface {
	ListByQuestion(ctx context.Context, questionID uint) ([]dto.AnswerView, error)
	EnsureQuestion(ctx context.Context, questionID uint) error
	Create(ctx context.Context, questionID uint, user *model.User, form dto.AnswerForm) (*model.Answer, error)
	// GetOwned loads an answer and checks that user wrote it.
	GetOwned(ctx context.Context, id uint, user *model.User) (*model.Answer, error)
	Update(ctx context.Context, answer *model.Answer, form dto.AnswerForm) error
	Delete(ctx context.Context, answer *model.Answer) error
}

type answerService struct {
	repo         repository.AnswerRepository
	questionRepo repository.QuestionRepository
}

func NewAnswerService(repo repository.AnswerRepository, questionRepo repository.QuestionRepository) AnswerService {
	return &answerService{repo: repo, questionRepo: questionRepo}
}

func (s *answerService) ListByQuestion(ctx context.Context, questionID uint) ([]dto.AnswerView, error) {
	answers, err := s.repo.FindByQuestionID(ctx, questionID)
	if err != nil {
		return nil, err
	}
	views := []dto.AnswerView{}
	if err := copier.Copy(&views, &answers); err != nil {
		return nil, errors.Wrap(err, "copy answers")
	}
	return views, nil
}

func (s *answerService) EnsureQuestion(ctx context.Context, questionID uint) error {
	ok, err := s.questionRepo.Exists(ctx, questionID)
	if err != nil {
		return err
	}
	if !ok {
		return apperror.NotFound("Question not found.", nil)
	}
	return nil
}

func (s *answerService) Create(ctx context.Context, questionID uint, user *model.User, form dto.AnswerForm) (*model.Answer, error) {
	if err := s.EnsureQuestion(ctx, questionID); err != nil {
		return nil, err
	}
	answer := &model.Answer{
		Body:       form.Body,
		QuestionID: questionID,
		UserID:     user.ID,
	}
	if err := s.repo.Create(ctx, answer); err != nil {
		log.Ctx(ctx).Error().Err(err).Uint("questionID", questionID).Msg("Failed to create answer")
		return nil, err
	}
	log.Ctx(ctx).Info().Uint("answerID", answer.ID).Uint("questionID", questionID).Uint("userID", user.ID).Msg("Answer created")
	return answer, nil
}

func (s *answerService) GetOwned(ctx context.Context, id uint, user *model.User) (*model.Answer, error) {
	answer, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperror.NotFound("Answer not found.", err)
	}
	if err != nil {
		return nil, err
	}
	if err := CheckOwnership(answer, user); err != nil {
		log.Ctx(ctx).Warn().Uint("answerID", id).Uint("ownerID", answer.UserID).Msg("Rejected access to another user's answer")
		return nil, err
	}
	return answer, nil
}

func (s *answerService) Update(ctx context.Context, answer *model.Answer, form dto.AnswerForm) error {
	questionID := form.QuestionID
	if questionID == 0 {
		questionID = answer.QuestionID
	}
	if questionID != answer.QuestionID {
		if err := s.EnsureQuestion(ctx, questionID); err != nil {
			return err
		}
	}
	answer.Body = form.Body
	answer.QuestionID = questionID
	if err := s.repo.Update(ctx, answer); err != nil {
		log.Ctx(ctx).Error().Err(err).Uint("answerID", answer.ID).Msg("Failed to update answer")
		return err
	}
	return nil
}

func (s *answerService) Delete(ctx context.Context, answer *model.Answer) error {
	if err := s.repo.Delete(ctx, answer); err != nil {
		log.Ctx(ctx).Error().Err(err).Uint("answerID", answer.ID).Msg("Failed to delete answer")
		return err
	}
	log.Ctx(ctx).Info().Uint("answerID", answer.ID).Uint("questionID", answer.QuestionID).Msg("Answer deleted")
	return nil
}

package service

import (
	"context"
	"strings"

	"github.com/jinzhu/copier"
	"github.com/lshigami/answerboard/internal/apperror"
	"github.com/lshigami/answerboard/internal/dto"
	"github.com/lshigami/answerboard/internal/model"
	"github.com/lshigami/answerboard/internal/repository"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

type QuestionService interface {
	CreateQuestion(ctx context.Context, user *model.User, form dto.QuestionForm) (*dto.QuestionView, error)
	GetQuestion(ctx context.Context, id uint) (*dto.QuestionView, error)
	GetAllQuestions(ctx context.Context) ([]dto.QuestionView, error)
}

type questionService struct {
	repo repository.QuestionRepository
}

func NewQuestionService(repo repository.QuestionRepository) QuestionService {
	return &questionService{repo: repo}
}

func (s *questionService) CreateQuestion(ctx context.Context, user *model.User, form dto.QuestionForm) (*dto.QuestionView, error) {
	question := model.Question{
		Title:  strings.TrimSpace(form.Title),
		Body:   form.Body,
		UserID: user.ID,
	}
	if err := s.repo.Create(ctx, &question); err != nil {
		log.Error().Err(err).Msg("Failed to create question in service")
		return nil, err
	}
	var resp dto.QuestionView
	if err := copier.Copy(&resp, &question); err != nil {
		return nil, errors.Wrap(err, "copy question")
	}
	return &resp, nil
}

// GetQuestion returns the question together with its answers.
func (s *questionService) GetQuestion(ctx context.Context, id uint) (*dto.QuestionView, error) {
	question, err := s.repo.FindByIDWithAnswers(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperror.NotFound("Question not found.", err)
	}
	if err != nil {
		return nil, err
	}
	var resp dto.QuestionView
	if err := copier.Copy(&resp, question); err != nil {
		return nil, errors.Wrap(err, "copy question")
	}
	return &resp, nil
}

func (s *questionService) GetAllQuestions(ctx context.Context) ([]dto.QuestionView, error) {
	questions, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	resp := []dto.QuestionView{}
	if err := copier.Copy(&resp, &questions); err != nil {
		return nil, errors.Wrap(err, "copy questions")
	}
	return resp, nil
}

package repository

import (
	"context"

	"github.com/lshigami/answerboard/internal/model"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type QuestionRepository interface {
	Create(ctx context.Context, question *model.Question) error
	FindByID(ctx context.Context, id uint) (*model.Question, error)
	FindByIDWithAnswers(ctx context.Context, id uint) (*model.Question, error)
	FindAll(ctx context.Context) ([]model.Question, error)
	Exists(ctx context.Context, id uint) (bool, error)
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) Create(ctx context.Context, question *model.Question) error {
	return errors.Wrap(r.db.WithContext(ctx).Create(question).Error, "create question")
}

func (r *questionRepository) FindByID(ctx context.Context, id uint) (*model.Question, error) {
	var question model.Question
	if err := r.db.WithContext(ctx).First(&question, id).Error; err != nil {
		return nil, translate(err)
	}
	return &question, nil
}

func (r *questionRepository) FindByIDWithAnswers(ctx context.Context, id uint) (*model.Question, error) {
	var question model.Question
	err := r.db.WithContext(ctx).
		Preload("Answers", func(db *gorm.DB) *gorm.DB {
			return db.Order("answers.created_at ASC")
		}).
		First(&question, id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &question, nil
}

func (r *questionRepository) FindAll(ctx context.Context) ([]model.Question, error) {
	questions := []model.Question{}
	if err := r.db.WithContext(ctx).Order("created_at desc").Find(&questions).Error; err != nil {
		return nil, errors.Wrap(err, "list questions")
	}
	return questions, nil
}

func (r *questionRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Question{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, errors.Wrapf(err, "check question %d", id)
	}
	return count > 0, nil
}

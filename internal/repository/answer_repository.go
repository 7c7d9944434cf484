package repository

import (
	"context"

	"github.com/lshigami/answerboard/internal/model"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type AnswerRepository interface {
	Create(ctx context.Context, answer *model.Answer) error
	FindByID(ctx context.Context, id uint) (*model.Answer, error)
	FindByQuestionID(ctx context.Context, questionID uint) ([]model.Answer, error)
	Update(ctx context.Context, answer *model.Answer) error
	Delete(ctx context.Context, answer *model.Answer) error
}

type answerRepository struct {
	db *gorm.DB
}

func NewAnswerRepository(db *gorm.DB) AnswerRepository {
	return &answerRepository{db: db}
}

func (r *answerRepository) Create(ctx context.Context, answer *model.Answer) error {
	return errors.Wrap(r.db.WithContext(ctx).Create(answer).Error, "create answer")
}

func (r *answerRepository) FindByID(ctx context.Context, id uint) (*model.Answer, error) {
	var answer model.Answer
	if err := r.db.WithContext(ctx).First(&answer, id).Error; err != nil {
		return nil, translate(err)
	}
	return &answer, nil
}

// FindByQuestionID returns the answers of a question in store order.
func (r *answerRepository) FindByQuestionID(ctx context.Context, questionID uint) ([]model.Answer, error) {
	answers := []model.Answer{}
	if err := r.db.WithContext(ctx).Where("question_id = ?", questionID).Find(&answers).Error; err != nil {
		return nil, errors.Wrapf(err, "list answers of question %d", questionID)
	}
	return answers, nil
}

func (r *answerRepository) Update(ctx context.Context, answer *model.Answer) error {
	// Save writes every column; UserID is carried over from the loaded row.
	return errors.Wrapf(r.db.WithContext(ctx).Save(answer).Error, "update answer %d", answer.ID)
}

func (r *answerRepository) Delete(ctx context.Context, answer *model.Answer) error {
	return errors.Wrapf(r.db.WithContext(ctx).Delete(answer).Error, "delete answer %d", answer.ID)
}

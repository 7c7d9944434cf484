package dto

import "time"

// AnswerForm is the body of the create and edit submissions. QuestionID is
// only read on edit; create takes the question from the path.
type AnswerForm struct {
	Body       string `form:"body" validate:"notblank"`
	QuestionID uint   `form:"questionId"`
}

func (AnswerForm) ValidationMessages() map[string]string {
	return map[string]string{
		"body.notblank": "Please provide an answer",
	}
}

type AnswerView struct {
	ID         uint
	Body       string
	QuestionID uint
	UserID     uint
	CreatedAt  time.Time
}

// AnswerFormView backs answer-create and answer-edit. On a failed submission
// Answer holds the attempted values, not the stored ones.
type AnswerFormView struct {
	Page
	Answer     AnswerView
	QuestionID uint
	Errors     []string
}

type AnswerListView struct {
	Page
	QuestionID uint
	Answers    []AnswerView
}

type AnswerDeleteView struct {
	Page
	Answer AnswerView
}

package dto

import "time"

type QuestionForm struct {
	Title string `form:"title" validate:"notblank,max=255"`
	Body  string `form:"body"`
}

func (QuestionForm) ValidationMessages() map[string]string {
	return map[string]string{
		"title.notblank": "Please provide a title",
		"title.max":      "Title must not be more than 255 characters long",
	}
}

type QuestionView struct {
	ID        uint
	Title     string
	Body      string
	UserID    uint
	CreatedAt time.Time
	Answers   []AnswerView
}

type QuestionListView struct {
	Page
	Questions []QuestionView
}

type QuestionShowView struct {
	Page
	Question QuestionView
}

type QuestionFormView struct {
	Page
	Question QuestionForm
	Errors   []string
}

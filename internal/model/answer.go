package model

import "time"

// Answer is a user's reply to a Question. Rows are hard-deleted.
type Answer struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	Body       string    `json:"body" gorm:"type:text;not null"`
	QuestionID uint      `json:"question_id" gorm:"not null;index"`
	UserID     uint      `json:"user_id" gorm:"not null;index"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

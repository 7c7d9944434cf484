package service

import (
	"github.com/lshigami/answerboard/internal/apperror"
	"github.com/lshigami/answerboard/internal/model"
)

// CheckOwnership fails with a Forbidden error unless user wrote answer.
func CheckOwnership(answer *model.Answer, user *model.User) error {
	if user == nil || answer.UserID != user.ID {
		return apperror.Forbidden("Illegal operation.")
	}
	return nil
}

package validation_test

import (
	"testing"

	"github.com/lshigami/answerboard/internal/dto"
	"github.com/lshigami/answerboard/internal/validation"
	"github.com/stretchr/testify/assert"
)

func TestValidate_AnswerForm(t *testing.T) {
	v := validation.New()

	tests := []struct {
		name string
		body string
		want []string
	}{
		{name: "valid", body: "42", want: nil},
		{name: "empty", body: "", want: []string{"Please provide an answer"}},
		{name: "whitespace only", body: "  \t\n", want: []string{"Please provide an answer"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := v.Validate(dto.AnswerForm{Body: tt.body})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidate_RegisterFormOrder(t *testing.T) {
	v := validation.New()

	got := v.Validate(dto.RegisterForm{
		Username:        "",
		Email:           "nope",
		Password:        "short",
		ConfirmPassword: "other",
	})
	assert.Equal(t, []string{
		"Please provide a username",
		"Email address is not a valid email",
		"Password must be at least 8 characters long",
		"Confirm password must match password",
	}, got)
}

type plainForm struct {
	Name string `form:"name" validate:"required"`
}

func TestValidate_FallbackMessage(t *testing.T) {
	v := validation.New()
	assert.Equal(t, []string{"name is invalid"}, v.Validate(plainForm{}))
}

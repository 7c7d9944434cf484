package service

import (
	"context"
	"strings"

	"github.com/lshigami/answerboard/internal/apperror"
	"github.com/lshigami/answerboard/internal/dto"
	"github.com/lshigami/answerboard/internal/model"
	"github.com/lshigami/answerboard/internal/repository"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUsernameTaken      = errors.New("username already taken")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

type UserService interface {
	Register(ctx context.Context, form dto.RegisterForm) (*model.User, error)
	Authenticate(ctx context.Context, username, password string) (*model.User, error)
	FindByID(ctx context.Context, id uint) (*model.User, error)
}

type userService struct {
	repo       repository.UserRepository
	bcryptCost int
}

func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo, bcryptCost: bcrypt.DefaultCost}
}

// NewUserServiceWithCost is NewUserService with a custom bcrypt cost.
func NewUserServiceWithCost(repo repository.UserRepository, cost int) UserService {
	return &userService{repo: repo, bcryptCost: cost}
}

func (s *userService) Register(ctx context.Context, form dto.RegisterForm) (*model.User, error) {
	username := strings.TrimSpace(form.Username)
	email := strings.ToLower(strings.TrimSpace(form.Email))

	taken, err := s.repo.UsernameTaken(ctx, username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrUsernameTaken
	}
	taken, err = s.repo.EmailTaken(ctx, email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(form.Password), s.bcryptCost)
	if err != nil {
		return nil, errors.Wrap(err, "hash password")
	}
	user := &model.User{Username: username, Email: email, HashedPassword: hashed}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	log.Ctx(ctx).Info().Uint("userID", user.ID).Str("username", username).Msg("User registered")
	return user, nil
}

func (s *userService) Authenticate(ctx context.Context, username, password string) (*model.User, error) {
	user, err := s.repo.FindByUsername(ctx, strings.TrimSpace(username))
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword(user.HashedPassword, []byte(password)); err != nil {
		log.Ctx(ctx).Info().Str("username", username).Msg("Login rejected")
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

func (s *userService) FindByID(ctx context.Context, id uint) (*model.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperror.NotFound("User not found.", err)
	}
	return user, err
}

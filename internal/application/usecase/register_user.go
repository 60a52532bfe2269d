package usecase

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/4ak45h/Legacy-Planner/internal/application/dto"
	"github.com/4ak45h/Legacy-Planner/internal/domain/event"
	"github.com/4ak45h/Legacy-Planner/internal/domain/model"
	"github.com/4ak45h/Legacy-Planner/internal/domain/port"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// TokenIssuer signs access tokens for authenticated users.
type TokenIssuer interface {
	GenerateToken(userID uuid.UUID, email string) (string, error)
}

// RegisterUserUseCase creates accounts and issues their first token.
type RegisterUserUseCase struct {
	users     port.UserRepository
	tokens    TokenIssuer
	publisher port.EventPublisher
}

// NewRegisterUserUseCase wires dependencies.
func NewRegisterUserUseCase(users port.UserRepository, tokens TokenIssuer, publisher port.EventPublisher) *RegisterUserUseCase {
	return &RegisterUserUseCase{users: users, tokens: tokens, publisher: publisher}
}

// Execute validates credentials, stores the bcrypt hash, and returns a token.
func (uc *RegisterUserUseCase) Execute(ctx context.Context, req dto.RegisterRequest) (dto.AuthResponse, error) {
	if !emailPattern.MatchString(req.Email) {
		return dto.AuthResponse{}, ErrInvalidEmail
	}
	if !passwordStrongEnough(req.Password) {
		return dto.AuthResponse{}, ErrWeakPassword
	}

	if _, err := uc.users.FindByEmail(ctx, req.Email); err == nil {
		return dto.AuthResponse{}, ErrEmailTaken
	} else if !errors.Is(err, port.ErrNotFound) {
		return dto.AuthResponse{}, fmt.Errorf("lookup email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return dto.AuthResponse{}, fmt.Errorf("hash password: %w", err)
	}

	user, err := model.NewUser(req.Email, string(hash), time.Now().UTC())
	if err != nil {
		return dto.AuthResponse{}, fmt.Errorf("create user: %w", err)
	}

	if err := uc.users.Save(ctx, user); err != nil {
		return dto.AuthResponse{}, fmt.Errorf("save user: %w", err)
	}

	if err := uc.publisher.Publish(ctx, event.NewUserRegistered(user.ID, user.Email)); err != nil {
		return dto.AuthResponse{}, fmt.Errorf("publish events: %w", err)
	}

	token, err := uc.tokens.GenerateToken(user.ID, user.Email)
	if err != nil {
		return dto.AuthResponse{}, fmt.Errorf("sign token: %w", err)
	}

	return dto.AuthResponse{Token: token, UserID: user.ID, Email: user.Email}, nil
}

// passwordStrongEnough requires at least 8 characters with an uppercase
// letter, a lowercase letter, and a digit.
func passwordStrongEnough(password string) bool {
	if len(password) < 8 {
		return false
	}
	var upper, lower, digit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	return upper && lower && digit
}

package usecase

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/4ak45h/Legacy-Planner/internal/application/dto"
	"github.com/4ak45h/Legacy-Planner/internal/domain/port"
)

// LoginUserUseCase authenticates an account and issues a token.
type LoginUserUseCase struct {
	users  port.UserRepository
	tokens TokenIssuer
}

// NewLoginUserUseCase wires dependencies.
func NewLoginUserUseCase(users port.UserRepository, tokens TokenIssuer) *LoginUserUseCase {
	return &LoginUserUseCase{users: users, tokens: tokens}
}

// Execute verifies credentials. Unknown email and wrong password produce the
// same error so the response does not reveal which one failed.
func (uc *LoginUserUseCase) Execute(ctx context.Context, req dto.LoginRequest) (dto.AuthResponse, error) {
	user, err := uc.users.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, port.ErrNotFound) {
			return dto.AuthResponse{}, ErrInvalidCredentials
		}
		return dto.AuthResponse{}, fmt.Errorf("lookup email: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return dto.AuthResponse{}, ErrInvalidCredentials
	}

	token, err := uc.tokens.GenerateToken(user.ID, user.Email)
	if err != nil {
		return dto.AuthResponse{}, fmt.Errorf("sign token: %w", err)
	}

	return dto.AuthResponse{Token: token, UserID: user.ID, Email: user.Email}, nil
}

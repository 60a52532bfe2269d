package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/4ak45h/Legacy-Planner/internal/application/dto"
	"github.com/4ak45h/Legacy-Planner/internal/application/usecase"
	"github.com/4ak45h/Legacy-Planner/internal/domain/event"
	"github.com/4ak45h/Legacy-Planner/internal/domain/model"
)

func TestRegisterUser_Success(t *testing.T) {
	users := &mockUserRepository{}
	publisher := &mockEventPublisher{}
	uc := usecase.NewRegisterUserUseCase(users, &mockTokenIssuer{}, publisher)

	resp, err := uc.Execute(context.Background(), dto.RegisterRequest{
		Email:    "asha@example.com",
		Password: "Sup3rSecret",
	})

	require.NoError(t, err)
	assert.Equal(t, "signed.jwt.token", resp.Token)
	assert.Equal(t, "asha@example.com", resp.Email)

	require.Len(t, users.savedUsers, 1)
	saved := users.savedUsers[0]
	assert.NotEqual(t, "Sup3rSecret", saved.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(saved.PasswordHash), []byte("Sup3rSecret")))

	require.Len(t, publisher.publishedEvents, 1)
	assert.Equal(t, event.TypeUserRegistered, publisher.publishedEvents[0].EventType())
}

func TestRegisterUser_RejectsBadEmail(t *testing.T) {
	uc := usecase.NewRegisterUserUseCase(&mockUserRepository{}, &mockTokenIssuer{}, &mockEventPublisher{})

	for _, email := range []string{"", "notanemail", "a b@example.com", "missing@tld"} {
		_, err := uc.Execute(context.Background(), dto.RegisterRequest{Email: email, Password: "Sup3rSecret"})
		assert.ErrorIs(t, err, usecase.ErrInvalidEmail, "email %q", email)
	}
}

func TestRegisterUser_RejectsWeakPassword(t *testing.T) {
	uc := usecase.NewRegisterUserUseCase(&mockUserRepository{}, &mockTokenIssuer{}, &mockEventPublisher{})

	for _, password := range []string{"", "short1A", "alllowercase1", "ALLUPPERCASE1", "NoDigitsHere"} {
		_, err := uc.Execute(context.Background(), dto.RegisterRequest{Email: "asha@example.com", Password: password})
		assert.ErrorIs(t, err, usecase.ErrWeakPassword, "password %q", password)
	}
}

func TestRegisterUser_DuplicateEmail(t *testing.T) {
	existing, err := model.NewUser("asha@example.com", "hash", time.Now())
	require.NoError(t, err)

	users := &mockUserRepository{
		findByEmailFunc: func(_ context.Context, _ string) (model.User, error) {
			return existing, nil
		},
	}
	uc := usecase.NewRegisterUserUseCase(users, &mockTokenIssuer{}, &mockEventPublisher{})

	_, err = uc.Execute(context.Background(), dto.RegisterRequest{
		Email:    "asha@example.com",
		Password: "Sup3rSecret",
	})
	assert.ErrorIs(t, err, usecase.ErrEmailTaken)
}

func TestLoginUser_Success(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("Sup3rSecret"), bcrypt.MinCost)
	require.NoError(t, err)
	user, err := model.NewUser("asha@example.com", string(hash), time.Now())
	require.NoError(t, err)

	users := &mockUserRepository{
		findByEmailFunc: func(_ context.Context, _ string) (model.User, error) {
			return user, nil
		},
	}
	uc := usecase.NewLoginUserUseCase(users, &mockTokenIssuer{token: "fresh.token"})

	resp, err := uc.Execute(context.Background(), dto.LoginRequest{
		Email:    "asha@example.com",
		Password: "Sup3rSecret",
	})

	require.NoError(t, err)
	assert.Equal(t, "fresh.token", resp.Token)
	assert.Equal(t, user.ID, resp.UserID)
}

func TestLoginUser_SameErrorForUnknownEmailAndBadPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("Sup3rSecret"), bcrypt.MinCost)
	require.NoError(t, err)
	user, err := model.NewUser("asha@example.com", string(hash), time.Now())
	require.NoError(t, err)

	// Unknown email.
	uc := usecase.NewLoginUserUseCase(&mockUserRepository{}, &mockTokenIssuer{})
	_, errUnknown := uc.Execute(context.Background(), dto.LoginRequest{
		Email: "nobody@example.com", Password: "Sup3rSecret",
	})
	assert.ErrorIs(t, errUnknown, usecase.ErrInvalidCredentials)

	// Wrong password for a real account.
	users := &mockUserRepository{
		findByEmailFunc: func(_ context.Context, _ string) (model.User, error) {
			return user, nil
		},
	}
	uc = usecase.NewLoginUserUseCase(users, &mockTokenIssuer{})
	_, errWrong := uc.Execute(context.Background(), dto.LoginRequest{
		Email: "asha@example.com", Password: "WrongPass1",
	})
	assert.ErrorIs(t, errWrong, usecase.ErrInvalidCredentials)

	assert.Equal(t, errUnknown.Error(), errWrong.Error())
}

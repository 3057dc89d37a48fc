package service

import (
	"context"
	"testing"
	"time"

	"delivery-market-api/internal/entity"
	"delivery-market-api/internal/token"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthFixture(existing ...*entity.User) (*AuthService, *fakeAccountRepo) {
	accounts := newFakeAccountRepo(existing...)
	repos := newTestRepositories(accounts, newFakeOfferRepo(), newFakeBidRepo(), newFakeNotificationRepo())

	return NewAuthService(repos, token.NewManager("test-secret", time.Hour)), accounts
}

func TestRegisterCreatesUserAndLogsIn(t *testing.T) {
	service, accounts := newAuthFixture()

	input := &entity.RegisterInput{
		Username: "Draven", Email: "draven@example.com",
		Password: "haslo123", Password2: "haslo123",
	}

	user, accessToken, err := service.Register(context.Background(), input)
	require.NoError(t, err)

	assert.Equal(t, "Draven", user.Username)
	assert.NotEmpty(t, accessToken)
	require.Len(t, accounts.created, 1)
	assert.NotEqual(t, "haslo123", accounts.created[0].PasswordHash)
}

func TestRegisterMismatchedPasswordsCreatesNoUser(t *testing.T) {
	service, accounts := newAuthFixture()

	input := &entity.RegisterInput{
		Username: "Draven", Email: "draven@example.com",
		Password: "haslo123", Password2: "haslo124",
	}

	_, _, err := service.Register(context.Background(), input)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Messages, "Passwords do not match.")
	assert.Empty(t, accounts.created)
}

func TestRegisterCollectsEveryFailedCheck(t *testing.T) {
	taken := &entity.User{Username: "Dr", Email: "dr@example.com"}
	service, accounts := newAuthFixture(taken)

	input := &entity.RegisterInput{
		Username: "Dr", Email: "dr@example.com",
		Password: "haslo123", Password2: "haslo124",
	}

	_, _, err := service.Register(context.Background(), input)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, []string{
		"Passwords do not match.",
		"A user with that name already exists.",
		"Username must be longer than 2 characters.",
		"That e-mail address has already been used to register.",
	}, validationErr.Messages)
	assert.Empty(t, accounts.created)
}

func TestLogin(t *testing.T) {
	service, _ := newAuthFixture()

	input := &entity.RegisterInput{
		Username: "Draven", Email: "draven@example.com",
		Password: "haslo123", Password2: "haslo123",
	}
	_, _, err := service.Register(context.Background(), input)
	require.NoError(t, err)

	accessToken, err := service.Login(context.Background(), "Draven", "haslo123")
	require.NoError(t, err)
	assert.NotEmpty(t, accessToken)

	_, err = service.Login(context.Background(), "Draven", "haslo124")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = service.Login(context.Background(), "Nobody", "haslo123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

package validation_test

import (
	"context"
	"testing"

	"delivery-market-api/internal/entity"
	"delivery-market-api/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLookup struct {
	usernameTaken bool
	emailTaken    bool
}

func (f *fakeLookup) UsernameExists(ctx context.Context, username string) (bool, error) {
	return f.usernameTaken, nil
}

func (f *fakeLookup) EmailExists(ctx context.Context, email string) (bool, error) {
	return f.emailTaken, nil
}

func registrationChecks(lookup *fakeLookup) []validation.RegistrationCheck {
	return []validation.RegistrationCheck{
		validation.PasswordsEqual,
		validation.UsernameFree(lookup),
		validation.UsernameLength,
		validation.EmailFree(lookup),
	}
}

func TestRegistrationValid(t *testing.T) {
	input := &entity.RegisterInput{
		Username:  "Draven",
		Email:     "draven@axe.com",
		Password:  "random123",
		Password2: "random123",
	}

	messages, err := validation.Registration(context.Background(), input, registrationChecks(&fakeLookup{}))

	require.NoError(t, err)
	assert.Empty(t, messages)
}

func TestRegistrationConcatenatesAllFailures(t *testing.T) {
	input := &entity.RegisterInput{
		Username:  "gb",
		Email:     "random12@wp.pl",
		Password:  "qwert",
		Password2: "zxcvb",
	}
	lookup := &fakeLookup{usernameTaken: true, emailTaken: true}

	messages, err := validation.Registration(context.Background(), input, registrationChecks(lookup))

	require.NoError(t, err)
	assert.Equal(t, []string{
		"Passwords do not match.",
		"A user with that name already exists.",
		"Username must be longer than 2 characters.",
		"That e-mail address has already been used to register.",
	}, messages)
}

func TestRegistrationSingleFailure(t *testing.T) {
	input := &entity.RegisterInput{
		Username:  "Pietaszek",
		Email:     "pietaszek@bialy.com",
		Password:  "random123",
		Password2: "random124",
	}

	messages, err := validation.Registration(context.Background(), input, registrationChecks(&fakeLookup{}))

	require.NoError(t, err)
	assert.Equal(t, []string{"Passwords do not match."}, messages)
}

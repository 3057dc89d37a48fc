package validation

import (
	"context"

	"delivery-market-api/internal/entity"
)

// AccountLookup is the slice of account storage the uniqueness checks need.
type AccountLookup interface {
	UsernameExists(ctx context.Context, username string) (bool, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}

// RegistrationCheck reports a single human-readable message when the input
// fails the check, an empty string when it passes.
type RegistrationCheck func(ctx context.Context, input *entity.RegisterInput) (string, error)

// Registration runs every check in the given order and concatenates their
// messages; checks never short-circuit each other.
func Registration(ctx context.Context, input *entity.RegisterInput, checks []RegistrationCheck) ([]string, error) {
	var messages []string
	for _, check := range checks {
		message, err := check(ctx, input)
		if err != nil {
			return nil, err
		}
		if message != "" {
			messages = append(messages, message)
		}
	}

	return messages, nil
}

func PasswordsEqual(ctx context.Context, input *entity.RegisterInput) (string, error) {
	if input.Password != input.Password2 {
		return "Passwords do not match.", nil
	}

	return "", nil
}

func UsernameLength(ctx context.Context, input *entity.RegisterInput) (string, error) {
	if len(input.Username) <= 2 {
		return "Username must be longer than 2 characters.", nil
	}

	return "", nil
}

func UsernameFree(lookup AccountLookup) RegistrationCheck {
	return func(ctx context.Context, input *entity.RegisterInput) (string, error) {
		exists, err := lookup.UsernameExists(ctx, input.Username)
		if err != nil {
			return "", err
		}
		if exists {
			return "A user with that name already exists.", nil
		}

		return "", nil
	}
}

func EmailFree(lookup AccountLookup) RegistrationCheck {
	return func(ctx context.Context, input *entity.RegisterInput) (string, error) {
		exists, err := lookup.EmailExists(ctx, input.Email)
		if err != nil {
			return "", err
		}
		if exists {
			return "That e-mail address has already been used to register.", nil
		}

		return "", nil
	}
}

package service

import (
	"context"
	"delivery-market-api/internal/entity"
	"delivery-market-api/internal/repo"
	"delivery-market-api/internal/repo/repo_errors"
	"delivery-market-api/internal/token"
	"delivery-market-api/internal/validation"
	"errors"

	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	accountRepo repo.Account
	tokens      *token.Manager
}

func NewAuthService(repos *repo.Repositories, tokens *token.Manager) *AuthService {
	return &AuthService{accountRepo: repos.Account, tokens: tokens}
}

// Register runs every registration check in order, concatenating their
// messages; no user row is written unless all of them pass.
func (s *AuthService) Register(ctx context.Context, input *entity.RegisterInput) (*entity.UserOutputModel, string, error) {
	checks := []validation.RegistrationCheck{
		validation.PasswordsEqual,
		validation.UsernameFree(s.accountRepo),
		validation.UsernameLength,
		validation.EmailFree(s.accountRepo),
	}

	messages, err := validation.Registration(ctx, input, checks)
	if err != nil {
		return nil, "", err
	}
	if len(messages) > 0 {
		return nil, "", &ValidationError{Messages: messages}
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	user := &entity.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: string(passwordHash),
	}

	if _, err = s.accountRepo.CreateUser(ctx, user); err != nil {
		return nil, "", err
	}

	user, err = s.accountRepo.GetUserByUsername(ctx, input.Username)
	if err != nil {
		return nil, "", err
	}

	// registration logs the new user straight in
	signed, err := s.tokens.Generate(user.Username)
	if err != nil {
		return nil, "", err
	}

	return mapUser(user), signed, nil
}

func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.accountRepo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return "", ErrInvalidCredentials
		}

		return "", err
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return s.tokens.Generate(user.Username)
}

package service

import (
	"context"
	"delivery-market-api/internal/entity"
	"delivery-market-api/internal/repo"
	"delivery-market-api/internal/repo/repo_errors"
	"errors"
)

type ProfileService struct {
	accountRepo repo.Account
}

func NewProfileService(repos *repo.Repositories) *ProfileService {
	return &ProfileService{accountRepo: repos.Account}
}

func (s *ProfileService) GetProfileByUsername(ctx context.Context, username string) (*entity.ProfileOutputModel, error) {
	user, err := s.accountRepo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrUserNotFound
		}

		return nil, err
	}

	profile, err := s.accountRepo.GetProfileByUserId(ctx, user.Id)
	if err != nil {
		return nil, err
	}

	return &entity.ProfileOutputModel{
		Username: user.Username,
		Email:    user.Email,
		Avatar:   profile.Avatar,
	}, nil
}

func (s *ProfileService) UpdateAvatarByUsername(ctx context.Context, username, avatar string) (*entity.ProfileOutputModel, error) {
	user, err := s.accountRepo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrUserNotFound
		}

		return nil, err
	}

	if err = s.accountRepo.UpdateAvatarByUserId(ctx, user.Id, avatar); err != nil {
		return nil, err
	}

	return s.GetProfileByUsername(ctx, username)
}

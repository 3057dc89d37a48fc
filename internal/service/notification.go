package service

import (
	"context"
	"delivery-market-api/internal/entity"
	"delivery-market-api/internal/repo"
	"delivery-market-api/internal/repo/repo_errors"
	"errors"
)

type NotificationService struct {
	notificationRepo repo.Notification
	accountRepo      repo.Account
}

func NewNotificationService(repos *repo.Repositories) *NotificationService {
	return &NotificationService{
		notificationRepo: repos.Notification,
		accountRepo:      repos.Account,
	}
}

func (s *NotificationService) GetUserNotifications(ctx context.Context, username string, pg *entity.PaginationInput) ([]entity.NotificationOutputModel, error) {
	user, err := s.accountRepo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrUserNotFound
		}

		return nil, err
	}

	notifications, err := s.notificationRepo.GetUserNotifications(ctx, user.Id, pg)
	if err != nil {
		return nil, err
	}

	return mapNotifications(notifications), nil
}

// DeleteNotificationById removes the notification only for its addressee;
// anyone else leaves the row untouched.
func (s *NotificationService) DeleteNotificationById(ctx context.Context, notificationId, username string) error {
	notification, err := s.notificationRepo.GetNotificationById(ctx, notificationId)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return ErrNotificationNotFound
		}

		return err
	}

	user, err := s.accountRepo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return ErrUserNotFound
		}

		return err
	}

	if notification.UserId != user.Id {
		return ErrUserIsNotNotificationOwner
	}

	return s.notificationRepo.DeleteNotificationById(ctx, notificationId)
}

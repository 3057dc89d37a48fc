package service

import (
	"context"
	"delivery-market-api/internal/entity"
	"delivery-market-api/internal/repo"
)

// NotificationDispatcher persists the notification events reported by state
// transitions. Keeping the writes here leaves the transitions free of I/O.
type NotificationDispatcher struct {
	notificationRepo repo.Notification
}

func NewNotificationDispatcher(repos *repo.Repositories) *NotificationDispatcher {
	return &NotificationDispatcher{notificationRepo: repos.Notification}
}

func (d *NotificationDispatcher) Dispatch(ctx context.Context, events []entity.NotificationEvent) error {
	for _, event := range events {
		if _, err := d.notificationRepo.CreateNotification(ctx, event); err != nil {
			return err
		}
	}

	return nil
}

package service

import (
	"context"
	"testing"

	"delivery-market-api/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteNotificationByAddressee(t *testing.T) {
	addressee := &entity.User{Id: uuid.New(), Username: "Draven"}
	notification := &entity.Notification{Id: uuid.New(), UserId: addressee.Id, Title: "'@Transport Drewna.' Your offer was accepted by Pietaszek."}

	notifications := newFakeNotificationRepo(notification)
	repos := newTestRepositories(newFakeAccountRepo(addressee), newFakeOfferRepo(), newFakeBidRepo(), notifications)
	service := NewNotificationService(repos)

	err := service.DeleteNotificationById(context.Background(), notification.Id.String(), addressee.Username)

	require.NoError(t, err)
	assert.Equal(t, []string{notification.Id.String()}, notifications.deleted)
}

func TestDeleteNotificationRefusedForStranger(t *testing.T) {
	addressee := &entity.User{Id: uuid.New(), Username: "Draven"}
	stranger := &entity.User{Id: uuid.New(), Username: "Pietaszek"}
	notification := &entity.Notification{Id: uuid.New(), UserId: addressee.Id}

	notifications := newFakeNotificationRepo(notification)
	repos := newTestRepositories(newFakeAccountRepo(addressee, stranger), newFakeOfferRepo(), newFakeBidRepo(), notifications)
	service := NewNotificationService(repos)

	err := service.DeleteNotificationById(context.Background(), notification.Id.String(), stranger.Username)

	assert.ErrorIs(t, err, ErrUserIsNotNotificationOwner)
	assert.Empty(t, notifications.deleted)
}

func TestDeleteMissingNotification(t *testing.T) {
	user := &entity.User{Id: uuid.New(), Username: "Draven"}
	repos := newTestRepositories(newFakeAccountRepo(user), newFakeOfferRepo(), newFakeBidRepo(), newFakeNotificationRepo())
	service := NewNotificationService(repos)

	err := service.DeleteNotificationById(context.Background(), uuid.NewString(), user.Username)

	assert.ErrorIs(t, err, ErrNotificationNotFound)
}

func TestGetUserNotificationsListsOnlyOwn(t *testing.T) {
	addressee := &entity.User{Id: uuid.New(), Username: "Draven"}
	other := &entity.User{Id: uuid.New(), Username: "Pietaszek"}

	mine := &entity.Notification{Id: uuid.New(), UserId: addressee.Id, Title: "mine"}
	theirs := &entity.Notification{Id: uuid.New(), UserId: other.Id, Title: "theirs"}

	repos := newTestRepositories(newFakeAccountRepo(addressee, other), newFakeOfferRepo(), newFakeBidRepo(), newFakeNotificationRepo(mine, theirs))
	service := NewNotificationService(repos)

	notifications, err := service.GetUserNotifications(context.Background(), addressee.Username, entity.NewPaginationInput(20, 0))

	require.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.Equal(t, "mine", notifications[0].Title)
}

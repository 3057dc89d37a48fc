package service

import (
	"errors"
	"strings"
)

var (
	ErrUserNotFound         = errors.New("user with given username not found")
	ErrOfferNotFound        = errors.New("delivery offer not found")
	ErrBidNotFound          = errors.New("bid not found")
	ErrNotificationNotFound = errors.New("notification not found")

	ErrInvalidCredentials = errors.New("wrong username or password")

	ErrUserIsNotOfferOwner        = errors.New("user doesn't own the delivery offer")
	ErrUserIsNotNotificationOwner = errors.New("user doesn't own the notification")
	ErrUserIsNotParticipant       = errors.New("user is neither owner nor contractor of the delivery offer")

	ErrOfferClosed    = errors.New("delivery offer is already closed")
	ErrBidNotForOffer = errors.New("bid belongs to another delivery offer")
	ErrNoNewChanges   = errors.New("no new values")
)

// ValidationError carries the ordered message list a form validator returned.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, " ")
}

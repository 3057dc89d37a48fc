package service

import (
	"context"
	"delivery-market-api/internal/entity"
	"delivery-market-api/internal/repo"
	"delivery-market-api/internal/token"
)

type Diagnostics interface {
	Ping() error
}

type Auth interface {
	Register(ctx context.Context, input *entity.RegisterInput) (*entity.UserOutputModel, string, error)
	Login(ctx context.Context, username, password string) (string, error)
}

type Offer interface {
	CreateOffer(ctx context.Context, input *entity.CreateOfferInput) (*entity.OfferOutputModel, error)
	GetOfferById(ctx context.Context, offerId string, pg *entity.PaginationInput) (*entity.OfferDetailOutputModel, error)
	SearchOffers(ctx context.Context, query string, pg *entity.PaginationInput) ([]entity.OfferOutputModel, error)
	GetUserOffers(ctx context.Context, username string, pg *entity.PaginationInput) ([]entity.OfferOutputModel, error)
	EditOfferById(ctx context.Context, offerId, username string, patch *entity.OfferPatch) (*entity.OfferOutputModel, error)
	DeleteOfferById(ctx context.Context, offerId, username string) error
}

type Bid interface {
	PlaceBid(ctx context.Context, offerId, username, value string) (*entity.BidOutputModel, error)
	AcceptBid(ctx context.Context, offerId, bidId, username string) (*entity.OfferOutputModel, error)
}

type Notification interface {
	GetUserNotifications(ctx context.Context, username string, pg *entity.PaginationInput) ([]entity.NotificationOutputModel, error)
	DeleteNotificationById(ctx context.Context, notificationId, username string) error
}

type Message interface {
	GetOfferMessages(ctx context.Context, offerId, username string, pg *entity.PaginationInput) ([]entity.MessageOutputModel, error)
	SendMessage(ctx context.Context, offerId, username, content string) (*entity.MessageOutputModel, error)
}

type Profile interface {
	GetProfileByUsername(ctx context.Context, username string) (*entity.ProfileOutputModel, error)
	UpdateAvatarByUsername(ctx context.Context, username, avatar string) (*entity.ProfileOutputModel, error)
}

type Services struct {
	Diagnostics  Diagnostics
	Auth         Auth
	Offer        Offer
	Bid          Bid
	Notification Notification
	Message      Message
	Profile      Profile
}

func NewServices(repos *repo.Repositories, tokens *token.Manager) *Services {
	dispatcher := NewNotificationDispatcher(repos)

	return &Services{
		Diagnostics:  NewDiagnosticsService(repos),
		Auth:         NewAuthService(repos, tokens),
		Offer:        NewOfferService(repos),
		Bid:          NewBidService(repos, dispatcher),
		Notification: NewNotificationService(repos),
		Message:      NewMessageService(repos),
		Profile:      NewProfileService(repos),
	}
}

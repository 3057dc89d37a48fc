package repo

import (
	"context"
	"delivery-market-api/internal/entity"
	"delivery-market-api/internal/repo/pgdb"
	"delivery-market-api/pkg/postgres"

	"github.com/google/uuid"
)

type Diagnostics interface {
	Ping() error
}

type Account interface {
	CreateUser(ctx context.Context, user *entity.User) (uuid.UUID, error)
	GetUserByUsername(ctx context.Context, username string) (*entity.User, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	GetProfileByUserId(ctx context.Context, userId uuid.UUID) (*entity.UserProfile, error)
	UpdateAvatarByUserId(ctx context.Context, userId uuid.UUID, avatar string) error
}

type Offer interface {
	CreateOffer(ctx context.Context, offer *entity.DeliveryOffer) (uuid.UUID, error)
	GetOfferById(ctx context.Context, id string) (*entity.DeliveryOffer, error)
	SearchOffers(ctx context.Context, query string, pg *entity.PaginationInput) ([]entity.DeliveryOffer, error)
	GetOffersByOwnerId(ctx context.Context, ownerId uuid.UUID, pg *entity.PaginationInput) ([]entity.DeliveryOffer, error)
	UpdateOfferById(ctx context.Context, id string, update *entity.OfferUpdate) error
	DeleteOfferById(ctx context.Context, id string) error
	CloseOffer(ctx context.Context, id string, contractorId uuid.UUID, finalBid float64) error
}

type Bid interface {
	CreateBid(ctx context.Context, bid *entity.UserBid) (uuid.UUID, error)
	GetBidById(ctx context.Context, id string) (*entity.UserBid, error)
	GetOfferBids(ctx context.Context, offerId string, pg *entity.PaginationInput) ([]entity.UserBid, error)
}

type Notification interface {
	CreateNotification(ctx context.Context, event entity.NotificationEvent) (uuid.UUID, error)
	GetNotificationById(ctx context.Context, id string) (*entity.Notification, error)
	GetUserNotifications(ctx context.Context, userId uuid.UUID, pg *entity.PaginationInput) ([]entity.Notification, error)
	DeleteNotificationById(ctx context.Context, id string) error
}

type Message interface {
	CreateMessage(ctx context.Context, message *entity.Message) (uuid.UUID, error)
	GetOfferMessages(ctx context.Context, offerId string, pg *entity.PaginationInput) ([]entity.Message, error)
}

type Repositories struct {
	Diagnostics
	Account
	Offer
	Bid
	Notification
	Message
}

func NewRepositories(p *postgres.Postgres) *Repositories {
	return &Repositories{
		Diagnostics:  pgdb.NewDiagnosticsRepo(p),
		Account:      pgdb.NewAccountRepo(p),
		Offer:        pgdb.NewOfferRepo(p),
		Bid:          pgdb.NewBidRepo(p),
		Notification: pgdb.NewNotificationRepo(p),
		Message:      pgdb.NewMessageRepo(p),
	}
}

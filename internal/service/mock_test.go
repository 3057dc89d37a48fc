package service

import (
	"context"

	"delivery-market-api/internal/common"
	"delivery-market-api/internal/entity"
	"delivery-market-api/internal/repo"
	"delivery-market-api/internal/repo/repo_errors"

	"github.com/google/uuid"
)

type fakeAccountRepo struct {
	users   map[string]*entity.User
	created []*entity.User
}

func newFakeAccountRepo(users ...*entity.User) *fakeAccountRepo {
	r := &fakeAccountRepo{users: make(map[string]*entity.User)}
	for _, u := range users {
		r.users[u.Username] = u
	}

	return r
}

func (r *fakeAccountRepo) CreateUser(_ context.Context, user *entity.User) (uuid.UUID, error) {
	stored := *user
	stored.Id = uuid.New()
	r.users[stored.Username] = &stored
	r.created = append(r.created, &stored)

	return stored.Id, nil
}

func (r *fakeAccountRepo) GetUserByUsername(_ context.Context, username string) (*entity.User, error) {
	user, ok := r.users[username]
	if !ok {
		return nil, repo_errors.ErrNotFound
	}

	return user, nil
}

func (r *fakeAccountRepo) UsernameExists(_ context.Context, username string) (bool, error) {
	_, ok := r.users[username]

	return ok, nil
}

func (r *fakeAccountRepo) EmailExists(_ context.Context, email string) (bool, error) {
	for _, u := range r.users {
		if u.Email == email {
			return true, nil
		}
	}

	return false, nil
}

func (r *fakeAccountRepo) GetProfileByUserId(_ context.Context, userId uuid.UUID) (*entity.UserProfile, error) {
	return &entity.UserProfile{Id: uuid.New(), UserId: userId, Avatar: "user.svg"}, nil
}

func (r *fakeAccountRepo) UpdateAvatarByUserId(context.Context, uuid.UUID, string) error {
	return nil
}

type fakeOfferRepo struct {
	offers map[uuid.UUID]*entity.DeliveryOffer
}

func newFakeOfferRepo(offers ...*entity.DeliveryOffer) *fakeOfferRepo {
	r := &fakeOfferRepo{offers: make(map[uuid.UUID]*entity.DeliveryOffer)}
	for _, o := range offers {
		r.offers[o.Id] = o
	}

	return r
}

func (r *fakeOfferRepo) CreateOffer(_ context.Context, offer *entity.DeliveryOffer) (uuid.UUID, error) {
	stored := *offer
	stored.Id = uuid.New()
	stored.IsActive = common.OfferOpen
	r.offers[stored.Id] = &stored

	return stored.Id, nil
}

func (r *fakeOfferRepo) GetOfferById(_ context.Context, id string) (*entity.DeliveryOffer, error) {
	offerId, err := uuid.Parse(id)
	if err != nil {
		return nil, repo_errors.ErrNotFound
	}
	offer, ok := r.offers[offerId]
	if !ok {
		return nil, repo_errors.ErrNotFound
	}

	copied := *offer

	return &copied, nil
}

func (r *fakeOfferRepo) SearchOffers(context.Context, string, *entity.PaginationInput) ([]entity.DeliveryOffer, error) {
	return nil, nil
}

func (r *fakeOfferRepo) GetOffersByOwnerId(context.Context, uuid.UUID, *entity.PaginationInput) ([]entity.DeliveryOffer, error) {
	return nil, nil
}

func (r *fakeOfferRepo) UpdateOfferById(context.Context, string, *entity.OfferUpdate) error {
	return nil
}

func (r *fakeOfferRepo) DeleteOfferById(_ context.Context, id string) error {
	offerId, err := uuid.Parse(id)
	if err != nil {
		return repo_errors.ErrNotFound
	}
	delete(r.offers, offerId)

	return nil
}

// CloseOffer mirrors the compare-and-set of the storage layer: only an open
// row can be closed, a second close reports the lost race.
func (r *fakeOfferRepo) CloseOffer(_ context.Context, id string, contractorId uuid.UUID, finalBid float64) error {
	offerId, err := uuid.Parse(id)
	if err != nil {
		return repo_errors.ErrNotFound
	}
	offer, ok := r.offers[offerId]
	if !ok {
		return repo_errors.ErrNotFound
	}
	if offer.IsActive == common.OfferClosed {
		return repo_errors.ErrAlreadyClosed
	}

	offer.IsActive = common.OfferClosed
	offer.ContractorId = uuid.NullUUID{UUID: contractorId, Valid: true}
	offer.FinalBid = finalBid

	return nil
}

type fakeBidRepo struct {
	bids map[uuid.UUID]*entity.UserBid
}

func newFakeBidRepo(bids ...*entity.UserBid) *fakeBidRepo {
	r := &fakeBidRepo{bids: make(map[uuid.UUID]*entity.UserBid)}
	for _, b := range bids {
		r.bids[b.Id] = b
	}

	return r
}

func (r *fakeBidRepo) CreateBid(_ context.Context, bid *entity.UserBid) (uuid.UUID, error) {
	stored := *bid
	stored.Id = uuid.New()
	r.bids[stored.Id] = &stored

	return stored.Id, nil
}

func (r *fakeBidRepo) GetBidById(_ context.Context, id string) (*entity.UserBid, error) {
	bidId, err := uuid.Parse(id)
	if err != nil {
		return nil, repo_errors.ErrNotFound
	}
	bid, ok := r.bids[bidId]
	if !ok {
		return nil, repo_errors.ErrNotFound
	}

	return bid, nil
}

func (r *fakeBidRepo) GetOfferBids(context.Context, string, *entity.PaginationInput) ([]entity.UserBid, error) {
	return nil, nil
}

type fakeNotificationRepo struct {
	events  []entity.NotificationEvent
	rows    map[uuid.UUID]*entity.Notification
	deleted []string
}

func newFakeNotificationRepo(rows ...*entity.Notification) *fakeNotificationRepo {
	r := &fakeNotificationRepo{rows: make(map[uuid.UUID]*entity.Notification)}
	for _, n := range rows {
		r.rows[n.Id] = n
	}

	return r
}

func (r *fakeNotificationRepo) CreateNotification(_ context.Context, event entity.NotificationEvent) (uuid.UUID, error) {
	r.events = append(r.events, event)

	return uuid.New(), nil
}

func (r *fakeNotificationRepo) GetNotificationById(_ context.Context, id string) (*entity.Notification, error) {
	notificationId, err := uuid.Parse(id)
	if err != nil {
		return nil, repo_errors.ErrNotFound
	}
	notification, ok := r.rows[notificationId]
	if !ok {
		return nil, repo_errors.ErrNotFound
	}

	return notification, nil
}

func (r *fakeNotificationRepo) GetUserNotifications(_ context.Context, userId uuid.UUID, _ *entity.PaginationInput) ([]entity.Notification, error) {
	var notifications []entity.Notification
	for _, n := range r.rows {
		if n.UserId == userId {
			notifications = append(notifications, *n)
		}
	}

	return notifications, nil
}

func (r *fakeNotificationRepo) DeleteNotificationById(_ context.Context, id string) error {
	r.deleted = append(r.deleted, id)

	return nil
}

func newTestRepositories(account *fakeAccountRepo, offer *fakeOfferRepo, bid *fakeBidRepo, notification *fakeNotificationRepo) *repo.Repositories {
	return &repo.Repositories{
		Account:      account,
		Offer:        offer,
		Bid:          bid,
		Notification: notification,
	}
}

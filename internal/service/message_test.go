package service

import (
	"context"
	"testing"

	"delivery-market-api/internal/common"
	"delivery-market-api/internal/entity"
	"delivery-market-api/internal/repo"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMessageRepo struct {
	messages []*entity.Message
}

func (r *fakeMessageRepo) CreateMessage(_ context.Context, message *entity.Message) (uuid.UUID, error) {
	stored := *message
	stored.Id = uuid.New()
	r.messages = append(r.messages, &stored)

	return stored.Id, nil
}

func (r *fakeMessageRepo) GetOfferMessages(_ context.Context, offerId string, _ *entity.PaginationInput) ([]entity.Message, error) {
	var messages []entity.Message
	for _, m := range r.messages {
		if m.OfferId.String() == offerId {
			messages = append(messages, *m)
		}
	}

	return messages, nil
}

func newMessageFixture() (*MessageService, *fakeMessageRepo, *entity.User, *entity.User, *entity.DeliveryOffer) {
	owner := &entity.User{Id: uuid.New(), Username: "Draven"}
	contractor := &entity.User{Id: uuid.New(), Username: "Pietaszek"}

	offer := &entity.DeliveryOffer{
		Id:           uuid.New(),
		Name:         "Transport Drewna.",
		OwnerId:      owner.Id,
		OwnerName:    owner.Username,
		ContractorId: uuid.NullUUID{UUID: contractor.Id, Valid: true},
		IsActive:     common.OfferClosed,
	}

	messages := &fakeMessageRepo{}
	repos := &repo.Repositories{
		Account: newFakeAccountRepo(owner, contractor),
		Offer:   newFakeOfferRepo(offer),
		Message: messages,
	}

	return NewMessageService(repos), messages, owner, contractor, offer
}

func TestSendMessageBetweenParties(t *testing.T) {
	service, messages, owner, contractor, offer := newMessageFixture()

	sent, err := service.SendMessage(context.Background(), offer.Id.String(), owner.Username, "Kiedy odbierzesz drewno?")
	require.NoError(t, err)

	assert.Equal(t, owner.Username, sent.FromName)
	require.Len(t, messages.messages, 1)
	assert.Equal(t, contractor.Id, messages.messages[0].ToId)
}

func TestSendMessageRefusedForOutsider(t *testing.T) {
	service, messages, _, _, offer := newMessageFixture()

	outsider := &entity.User{Id: uuid.New(), Username: "Obcy"}
	accounts := service.accountRepo.(*fakeAccountRepo)
	accounts.users[outsider.Username] = outsider

	_, err := service.SendMessage(context.Background(), offer.Id.String(), outsider.Username, "Czesc")

	assert.ErrorIs(t, err, ErrUserIsNotParticipant)
	assert.Empty(t, messages.messages)
}

func TestSendMessageRefusedWithoutContractor(t *testing.T) {
	service, messages, owner, _, offer := newMessageFixture()

	offers := service.offerRepo.(*fakeOfferRepo)
	offers.offers[offer.Id].ContractorId = uuid.NullUUID{}

	_, err := service.SendMessage(context.Background(), offer.Id.String(), owner.Username, "Czesc")

	assert.ErrorIs(t, err, ErrUserIsNotParticipant)
	assert.Empty(t, messages.messages)
}

func TestGetOfferMessagesVisibleToBothParties(t *testing.T) {
	service, _, owner, contractor, offer := newMessageFixture()

	_, err := service.SendMessage(context.Background(), offer.Id.String(), owner.Username, "Kiedy odbierzesz drewno?")
	require.NoError(t, err)
	_, err = service.SendMessage(context.Background(), offer.Id.String(), contractor.Username, "Jutro rano.")
	require.NoError(t, err)

	listed, err := service.GetOfferMessages(context.Background(), offer.Id.String(), contractor.Username, entity.NewPaginationInput(20, 0))

	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, "Kiedy odbierzesz drewno?", listed[0].Content)
}

package service

import (
	"context"
	"testing"

	"delivery-market-api/internal/common"
	"delivery-market-api/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCreateOfferInput(owner string) *entity.CreateOfferInput {
	return &entity.CreateOfferInput{
		Name:             "Transport Drewna.",
		Description:      "Okolo 3 ton drewna.",
		Wage:             "59.99",
		Distance:         "250",
		CityFrom:         "Gdansk",
		StreetFrom:       "Dluga",
		StreetFromNumber: "10",
		CityTo:           "Krakow",
		StreetTo:         "Szeroka",
		StreetToNumber:   "5",
		OwnerUsername:    owner,
	}
}

func newOfferFixture(offers ...*entity.DeliveryOffer) (*OfferService, *fakeOfferRepo, *entity.User) {
	owner := &entity.User{Id: uuid.New(), Username: "Draven"}
	offerRepo := newFakeOfferRepo(offers...)
	repos := newTestRepositories(newFakeAccountRepo(owner), offerRepo, newFakeBidRepo(), newFakeNotificationRepo())

	return NewOfferService(repos), offerRepo, owner
}

func TestCreateOffer(t *testing.T) {
	service, offers, owner := newOfferFixture()

	created, err := service.CreateOffer(context.Background(), validCreateOfferInput(owner.Username))
	require.NoError(t, err)

	assert.Equal(t, "Transport Drewna.", created.Name)
	assert.Equal(t, 59.99, created.Wage)
	assert.Equal(t, common.OfferOpen, created.IsActive)
	assert.Len(t, offers.offers, 1)
}

func TestCreateOfferWithBlankFields(t *testing.T) {
	service, offers, owner := newOfferFixture()

	input := validCreateOfferInput(owner.Username)
	input.Name = ""
	input.Description = ""
	input.Extras = ""

	_, err := service.CreateOffer(context.Background(), input)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	// description and extras are optional, a blank name alone trips the form
	assert.Equal(t, []string{"Fill in all required fields."}, validationErr.Messages)
	assert.Empty(t, offers.offers)
}

func TestEditOfferRefusedForNonOwner(t *testing.T) {
	offer := &entity.DeliveryOffer{Id: uuid.New(), Name: "Transport Drewna.", OwnerName: "Pietaszek", IsActive: common.OfferOpen}
	service, _, owner := newOfferFixture(offer)

	name := "Nowa nazwa"
	_, err := service.EditOfferById(context.Background(), offer.Id.String(), owner.Username, &entity.OfferPatch{Name: &name})

	assert.ErrorIs(t, err, ErrUserIsNotOfferOwner)
}

func TestEditClosedOfferRefused(t *testing.T) {
	service, offers, owner := newOfferFixture()

	created, err := service.CreateOffer(context.Background(), validCreateOfferInput(owner.Username))
	require.NoError(t, err)

	offerId := uuid.MustParse(created.Id)
	offers.offers[offerId].OwnerName = owner.Username
	offers.offers[offerId].IsActive = common.OfferClosed

	name := "Nowa nazwa"
	_, err = service.EditOfferById(context.Background(), created.Id, owner.Username, &entity.OfferPatch{Name: &name})

	assert.ErrorIs(t, err, ErrOfferClosed)
}

func TestEditOfferWithoutChanges(t *testing.T) {
	service, _, owner := newOfferFixture()

	_, err := service.EditOfferById(context.Background(), uuid.NewString(), owner.Username, &entity.OfferPatch{})

	assert.ErrorIs(t, err, ErrNoNewChanges)
}

func TestEditOfferRejectsBadWageFormat(t *testing.T) {
	service, offers, owner := newOfferFixture()

	created, err := service.CreateOffer(context.Background(), validCreateOfferInput(owner.Username))
	require.NoError(t, err)
	offers.offers[uuid.MustParse(created.Id)].OwnerName = owner.Username

	wage := "59.999"
	_, err = service.EditOfferById(context.Background(), created.Id, owner.Username, &entity.OfferPatch{Wage: &wage})

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, []string{"Provide a valid price format (max 2 digits after the decimal point)."}, validationErr.Messages)
}

func TestDeleteOfferRefusedForNonOwner(t *testing.T) {
	offer := &entity.DeliveryOffer{Id: uuid.New(), OwnerName: "Pietaszek", IsActive: common.OfferOpen}
	service, offers, owner := newOfferFixture(offer)

	err := service.DeleteOfferById(context.Background(), offer.Id.String(), owner.Username)

	assert.ErrorIs(t, err, ErrUserIsNotOfferOwner)
	assert.Len(t, offers.offers, 1)
}

func TestDeleteOfferByOwner(t *testing.T) {
	service, offers, owner := newOfferFixture()

	created, err := service.CreateOffer(context.Background(), validCreateOfferInput(owner.Username))
	require.NoError(t, err)
	offers.offers[uuid.MustParse(created.Id)].OwnerName = owner.Username

	err = service.DeleteOfferById(context.Background(), created.Id, owner.Username)

	require.NoError(t, err)
	assert.Empty(t, offers.offers)
}

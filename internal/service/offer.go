package service

import (
	"context"
	"delivery-market-api/internal/common"
	"delivery-market-api/internal/entity"
	"delivery-market-api/internal/repo"
	"delivery-market-api/internal/repo/repo_errors"
	"delivery-market-api/internal/validation"
	"errors"
	"strconv"
)

type OfferService struct {
	offerRepo   repo.Offer
	bidRepo     repo.Bid
	accountRepo repo.Account
}

func NewOfferService(repos *repo.Repositories) *OfferService {
	return &OfferService{
		offerRepo:   repos.Offer,
		bidRepo:     repos.Bid,
		accountRepo: repos.Account,
	}
}

func (s *OfferService) CreateOffer(ctx context.Context, input *entity.CreateOfferInput) (*entity.OfferOutputModel, error) {
	fields := map[string]string{
		"name":               input.Name,
		"description":        input.Description,
		"wage":               input.Wage,
		"distance":           input.Distance,
		"city_from":          input.CityFrom,
		"street_from":        input.StreetFrom,
		"street_from_number": input.StreetFromNumber,
		"city_to":            input.CityTo,
		"street_to":          input.StreetTo,
		"street_to_number":   input.StreetToNumber,
		"extras":             input.Extras,
	}

	if messages := validation.DeliveryOfferForm(fields); len(messages) > 0 {
		return nil, &ValidationError{Messages: messages}
	}

	owner, err := s.accountRepo.GetUserByUsername(ctx, input.OwnerUsername)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrUserNotFound
		}

		return nil, err
	}

	// the validator already guaranteed these parse
	wage, _ := strconv.ParseFloat(input.Wage, 64)
	distance, _ := strconv.ParseFloat(input.Distance, 64)
	streetFromNumber, _ := strconv.Atoi(input.StreetFromNumber)
	streetToNumber, _ := strconv.Atoi(input.StreetToNumber)

	offer := &entity.DeliveryOffer{
		Name:        input.Name,
		Description: input.Description,
		Wage:        wage,
		Distance:    distance,
		OwnerId:     owner.Id,
		IsActive:    common.OfferOpen,
		DeliveryInfo: entity.DeliveryInfo{
			CityFrom:         input.CityFrom,
			CityTo:           input.CityTo,
			StreetFrom:       input.StreetFrom,
			StreetTo:         input.StreetTo,
			StreetFromNumber: streetFromNumber,
			StreetToNumber:   streetToNumber,
			Extras:           input.Extras,
		},
	}

	id, err := s.offerRepo.CreateOffer(ctx, offer)
	if err != nil {
		return nil, err
	}

	created, err := s.offerRepo.GetOfferById(ctx, id.String())
	if err != nil {
		return nil, err
	}

	return mapOffer(created), nil
}

func (s *OfferService) GetOfferById(ctx context.Context, offerId string, pg *entity.PaginationInput) (*entity.OfferDetailOutputModel, error) {
	offer, err := s.offerRepo.GetOfferById(ctx, offerId)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrOfferNotFound
		}

		return nil, err
	}

	bids, err := s.bidRepo.GetOfferBids(ctx, offerId, pg)
	if err != nil {
		return nil, err
	}

	return &entity.OfferDetailOutputModel{
		Offer: *mapOffer(offer),
		Bids:  mapBids(bids),
	}, nil
}

func (s *OfferService) SearchOffers(ctx context.Context, query string, pg *entity.PaginationInput) ([]entity.OfferOutputModel, error) {
	offers, err := s.offerRepo.SearchOffers(ctx, query, pg)
	if err != nil {
		return nil, err
	}

	return mapOffers(offers), nil
}

func (s *OfferService) GetUserOffers(ctx context.Context, username string, pg *entity.PaginationInput) ([]entity.OfferOutputModel, error) {
	owner, err := s.accountRepo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrUserNotFound
		}

		return nil, err
	}

	offers, err := s.offerRepo.GetOffersByOwnerId(ctx, owner.Id, pg)
	if err != nil {
		return nil, err
	}

	return mapOffers(offers), nil
}

// EditOfferById applies the typed patch, owner only, refused once the offer
// left the open state.
func (s *OfferService) EditOfferById(ctx context.Context, offerId, username string, patch *entity.OfferPatch) (*entity.OfferOutputModel, error) {
	if patch.Empty() {
		return nil, ErrNoNewChanges
	}

	offer, err := s.offerRepo.GetOfferById(ctx, offerId)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrOfferNotFound
		}

		return nil, err
	}

	if offer.OwnerName != username {
		return nil, ErrUserIsNotOfferOwner
	}
	if offer.IsActive == common.OfferClosed {
		return nil, ErrOfferClosed
	}

	update, verr := parsePatch(patch)
	if verr != nil {
		return nil, verr
	}

	if err = s.offerRepo.UpdateOfferById(ctx, offerId, update); err != nil {
		return nil, err
	}

	offer, err = s.offerRepo.GetOfferById(ctx, offerId)
	if err != nil {
		return nil, err
	}

	return mapOffer(offer), nil
}

func parsePatch(patch *entity.OfferPatch) (*entity.OfferUpdate, error) {
	var messages []string
	update := &entity.OfferUpdate{
		Name:        patch.Name,
		Description: patch.Description,
		CityFrom:    patch.CityFrom,
		CityTo:      patch.CityTo,
		StreetFrom:  patch.StreetFrom,
		StreetTo:    patch.StreetTo,
		Extras:      patch.Extras,
	}

	if patch.Wage != nil {
		messages = append(messages, validation.WageFormat(*patch.Wage)...)
		if wage, err := strconv.ParseFloat(*patch.Wage, 64); err == nil {
			update.Wage = &wage
		}
	}
	if patch.Distance != nil {
		messages = append(messages, validation.DistanceFormat(*patch.Distance)...)
		if distance, err := strconv.ParseFloat(*patch.Distance, 64); err == nil {
			update.Distance = &distance
		}
	}
	if patch.StreetFromNumber != nil {
		messages = append(messages, validation.StreetNumberFormat(*patch.StreetFromNumber)...)
		if number, err := strconv.Atoi(*patch.StreetFromNumber); err == nil {
			update.StreetFromNumber = &number
		}
	}
	if patch.StreetToNumber != nil {
		messages = append(messages, validation.StreetNumberFormat(*patch.StreetToNumber)...)
		if number, err := strconv.Atoi(*patch.StreetToNumber); err == nil {
			update.StreetToNumber = &number
		}
	}

	if len(messages) > 0 {
		return nil, &ValidationError{Messages: messages}
	}

	return update, nil
}

func (s *OfferService) DeleteOfferById(ctx context.Context, offerId, username string) error {
	offer, err := s.offerRepo.GetOfferById(ctx, offerId)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return ErrOfferNotFound
		}

		return err
	}

	if offer.OwnerName != username {
		return ErrUserIsNotOfferOwner
	}

	return s.offerRepo.DeleteOfferById(ctx, offerId)
}

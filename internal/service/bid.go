package service

import (
	"context"
	"delivery-market-api/internal/entity"
	"delivery-market-api/internal/repo"
	"delivery-market-api/internal/repo/repo_errors"
	"delivery-market-api/internal/validation"
	"errors"
	"strconv"
)

type BidService struct {
	bidRepo     repo.Bid
	offerRepo   repo.Offer
	accountRepo repo.Account
	dispatcher  *NotificationDispatcher
}

func NewBidService(repos *repo.Repositories, dispatcher *NotificationDispatcher) *BidService {
	return &BidService{
		bidRepo:     repos.Bid,
		offerRepo:   repos.Offer,
		accountRepo: repos.Account,
		dispatcher:  dispatcher,
	}
}

// PlaceBid creates a bid for the requester and notifies the offer owner.
// Offers take bids whether open or closed, matching the listing behaviour
// of the detail page.
func (s *BidService) PlaceBid(ctx context.Context, offerId, username, value string) (*entity.BidOutputModel, error) {
	if messages := validation.UserBid(value); len(messages) > 0 {
		return nil, &ValidationError{Messages: messages}
	}

	offer, err := s.offerRepo.GetOfferById(ctx, offerId)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrOfferNotFound
		}

		return nil, err
	}

	bidder, err := s.accountRepo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrUserNotFound
		}

		return nil, err
	}

	// validated above
	bidValue, _ := strconv.ParseFloat(value, 64)

	bid := &entity.UserBid{
		OwnerId:   bidder.Id,
		OwnerName: bidder.Username,
		OfferId:   offer.Id,
		Value:     bidValue,
	}

	id, err := s.bidRepo.CreateBid(ctx, bid)
	if err != nil {
		return nil, err
	}

	if err = s.dispatcher.Dispatch(ctx, []entity.NotificationEvent{bid.PlacedEvent(offer)}); err != nil {
		return nil, err
	}

	created, err := s.bidRepo.GetBidById(ctx, id.String())
	if err != nil {
		return nil, err
	}

	return mapBid(created), nil
}

// AcceptBid closes the offer in favor of the chosen bid. The transition
// itself is pure; its notification events are persisted only after the
// compare-and-set on the storage row confirmed this acceptance won.
func (s *BidService) AcceptBid(ctx context.Context, offerId, bidId, username string) (*entity.OfferOutputModel, error) {
	offer, err := s.offerRepo.GetOfferById(ctx, offerId)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrOfferNotFound
		}

		return nil, err
	}

	requester, err := s.accountRepo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrUserNotFound
		}

		return nil, err
	}

	if offer.OwnerId != requester.Id {
		return nil, ErrUserIsNotOfferOwner
	}

	bid, err := s.bidRepo.GetBidById(ctx, bidId)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrBidNotFound
		}

		return nil, err
	}
	if bid.OfferId != offer.Id {
		return nil, ErrBidNotForOffer
	}

	events, err := offer.Accept(bid)
	if err != nil {
		if errors.Is(err, entity.ErrOfferAlreadyClosed) {
			return nil, ErrOfferClosed
		}

		return nil, err
	}

	err = s.offerRepo.CloseOffer(ctx, offerId, bid.OwnerId, bid.Value)
	if err != nil {
		if errors.Is(err, repo_errors.ErrAlreadyClosed) {
			return nil, ErrOfferClosed
		}

		return nil, err
	}

	if err = s.dispatcher.Dispatch(ctx, events); err != nil {
		return nil, err
	}

	return mapOffer(offer), nil
}

package service

import (
	"context"
	"delivery-market-api/internal/entity"
	"delivery-market-api/internal/repo"
	"delivery-market-api/internal/repo/repo_errors"
	"errors"
	"time"

	"github.com/google/uuid"
)

type MessageService struct {
	messageRepo repo.Message
	offerRepo   repo.Offer
	accountRepo repo.Account
}

func NewMessageService(repos *repo.Repositories) *MessageService {
	return &MessageService{
		messageRepo: repos.Message,
		offerRepo:   repos.Offer,
		accountRepo: repos.Account,
	}
}

// The message thread of an offer belongs to the owner and the assigned
// contractor, nobody else reads or writes it.
func (s *MessageService) GetOfferMessages(ctx context.Context, offerId, username string, pg *entity.PaginationInput) ([]entity.MessageOutputModel, error) {
	if _, _, _, err := s.participants(ctx, offerId, username); err != nil {
		return nil, err
	}

	messages, err := s.messageRepo.GetOfferMessages(ctx, offerId, pg)
	if err != nil {
		return nil, err
	}

	return mapMessages(messages), nil
}

func (s *MessageService) SendMessage(ctx context.Context, offerId, username, content string) (*entity.MessageOutputModel, error) {
	offer, sender, other, err := s.participants(ctx, offerId, username)
	if err != nil {
		return nil, err
	}

	message := &entity.Message{
		OfferId:  offer.Id,
		FromId:   sender.Id,
		FromName: sender.Username,
		ToId:     other,
		Content:  content,
	}

	id, err := s.messageRepo.CreateMessage(ctx, message)
	if err != nil {
		return nil, err
	}
	message.Id = id
	message.CreatedAt = time.Now().UTC().Format(time.RFC3339)

	return mapMessage(message), nil
}

// participants resolves the requester against the offer's two parties and
// returns the requester together with the opposite party's id.
func (s *MessageService) participants(ctx context.Context, offerId, username string) (*entity.DeliveryOffer, *entity.User, uuid.UUID, error) {
	offer, err := s.offerRepo.GetOfferById(ctx, offerId)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, nil, uuid.Nil, ErrOfferNotFound
		}

		return nil, nil, uuid.Nil, err
	}

	user, err := s.accountRepo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, nil, uuid.Nil, ErrUserNotFound
		}

		return nil, nil, uuid.Nil, err
	}

	if !offer.ContractorId.Valid {
		return nil, nil, uuid.Nil, ErrUserIsNotParticipant
	}

	switch user.Id {
	case offer.OwnerId:
		return offer, user, offer.ContractorId.UUID, nil
	case offer.ContractorId.UUID:
		return offer, user, offer.OwnerId, nil
	}

	return nil, nil, uuid.Nil, ErrUserIsNotParticipant
}

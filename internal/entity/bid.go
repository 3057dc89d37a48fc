package entity

import (
	"fmt"

	"github.com/google/uuid"
)

// db model
type UserBid struct {
	Id        uuid.UUID `json:"id" db:"id"`
	OwnerId   uuid.UUID `json:"ownerId" db:"owner_id"`
	OwnerName string    `json:"ownerName" db:"owner_name"`
	OfferId   uuid.UUID `json:"offerId" db:"delivery_offer_id"`
	Value     float64   `json:"value" db:"value"`
	CreatedAt string    `json:"createdAt" db:"created_at"`
}

// PlacedEvent is the notification owed to the offer owner whenever a bid is
// created, open or closed offer alike.
func (b *UserBid) PlacedEvent(offer *DeliveryOffer) NotificationEvent {
	return NotificationEvent{
		UserId:  offer.OwnerId,
		OfferId: offer.Id,
		Title:   fmt.Sprintf("\"@%s\" User %s placed a bid (%.2f zl).", offer.Name, b.OwnerName, b.Value),
	}
}

// controller model
type BidOutputModel struct {
	Id        string  `json:"id"`
	OwnerName string  `json:"ownerName"`
	Value     float64 `json:"value"`
	CreatedAt string  `json:"createdAt"`
}

package entity

import (
	"delivery-market-api/internal/common"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var ErrOfferAlreadyClosed = errors.New("offer is closed")

// db model, one row in delivery_info per offer
type DeliveryInfo struct {
	Id               uuid.UUID `json:"id" db:"id"`
	CityFrom         string    `json:"cityFrom" db:"city_from"`
	CityTo           string    `json:"cityTo" db:"city_to"`
	StreetFrom       string    `json:"streetFrom" db:"street_from"`
	StreetTo         string    `json:"streetTo" db:"street_to"`
	StreetFromNumber int       `json:"streetFromNumber" db:"street_from_number"`
	StreetToNumber   int       `json:"streetToNumber" db:"street_to_number"`
	Extras           string    `json:"extras" db:"extras"`
}

// db model
type DeliveryOffer struct {
	Id             uuid.UUID     `json:"id" db:"id"`
	Name           string        `json:"name" db:"name"`
	Description    string        `json:"description" db:"description"`
	Wage           float64       `json:"wage" db:"wage"`
	Distance       float64       `json:"distance" db:"distance"`
	OwnerId        uuid.UUID     `json:"ownerId" db:"owner_id"`
	OwnerName      string        `json:"ownerName" db:"owner_name"`
	ContractorId   uuid.NullUUID `json:"contractorId" db:"contractor_id"`
	ContractorName string        `json:"contractorName" db:"contractor_name"`
	DeliveryInfo   DeliveryInfo  `json:"deliveryInfo"`
	IsActive       int           `json:"isActive" db:"is_active"`
	FinalBid       float64       `json:"finalBid" db:"final_bid"`
	CreatedAt      string        `json:"createdAt" db:"created_at"`
}

// NotificationEvent is what a state transition reports instead of writing
// notification rows itself. The dispatcher in the service layer persists it.
type NotificationEvent struct {
	UserId  uuid.UUID
	OfferId uuid.UUID
	Title   string
}

// Accept closes the offer in favor of the given bid: the bid owner becomes
// the contractor, the bid value becomes the final price and the offer leaves
// the open state for good. Returns the notifications owed to both parties.
// Closed offers stay closed, a second acceptance is refused.
func (o *DeliveryOffer) Accept(bid *UserBid) ([]NotificationEvent, error) {
	if o.IsActive == common.OfferClosed {
		return nil, ErrOfferAlreadyClosed
	}

	o.ContractorId = uuid.NullUUID{UUID: bid.OwnerId, Valid: true}
	o.ContractorName = bid.OwnerName
	o.FinalBid = bid.Value
	o.IsActive = common.OfferClosed

	events := []NotificationEvent{
		{
			UserId:  bid.OwnerId,
			OfferId: o.Id,
			Title:   fmt.Sprintf("'@%s' Your offer was accepted by %s.", o.Name, o.OwnerName),
		},
		{
			UserId:  o.OwnerId,
			OfferId: o.Id,
			Title:   fmt.Sprintf("'@%s' You accepted the offer of %s (%.2f zl).", o.Name, bid.OwnerName, bid.Value),
		},
	}

	return events, nil
}

// service + repo input model
type CreateOfferInput struct {
	Name             string // given
	Description      string // given, not validated
	Wage             string // given, raw form value
	Distance         string // given, raw form value
	CityFrom         string // given
	StreetFrom       string // given
	StreetFromNumber string // given, raw form value
	CityTo           string // given
	StreetTo         string // given
	StreetToNumber   string // given, raw form value
	Extras           string // given, not validated
	OwnerUsername    string // taken from the authenticated identity
}

// OfferPatch enumerates the only fields an owner may change on an open offer.
// Nil means "leave as is". Numeric fields arrive raw and pass through the
// same format checks as the creation form.
type OfferPatch struct {
	Name             *string `json:"name"`
	Description      *string `json:"description"`
	Wage             *string `json:"wage"`
	Distance         *string `json:"distance"`
	CityFrom         *string `json:"cityFrom"`
	StreetFrom       *string `json:"streetFrom"`
	StreetFromNumber *string `json:"streetFromNumber"`
	CityTo           *string `json:"cityTo"`
	StreetTo         *string `json:"streetTo"`
	StreetToNumber   *string `json:"streetToNumber"`
	Extras           *string `json:"extras"`
}

func (p *OfferPatch) Empty() bool {
	return p.Name == nil && p.Description == nil && p.Wage == nil && p.Distance == nil &&
		p.CityFrom == nil && p.StreetFrom == nil && p.StreetFromNumber == nil &&
		p.CityTo == nil && p.StreetTo == nil && p.StreetToNumber == nil && p.Extras == nil
}

// repo update model with the raw values already parsed
type OfferUpdate struct {
	Name             *string
	Description      *string
	Wage             *float64
	Distance         *float64
	CityFrom         *string
	StreetFrom       *string
	StreetFromNumber *int
	CityTo           *string
	StreetTo         *string
	StreetToNumber   *int
	Extras           *string
}

// controller model
type OfferOutputModel struct {
	Id             string                  `json:"id"`
	Name           string                  `json:"name"`
	Description    string                  `json:"description"`
	Wage           float64                 `json:"wage"`
	Distance       float64                 `json:"distance"`
	OwnerName      string                  `json:"ownerName"`
	ContractorName string                  `json:"contractorName,omitempty"`
	IsActive       int                     `json:"isActive"`
	FinalBid       float64                 `json:"finalBid"`
	CreatedAt      string                  `json:"createdAt"`
	DeliveryInfo   DeliveryInfoOutputModel `json:"deliveryInfo"`
}

type DeliveryInfoOutputModel struct {
	CityFrom         string `json:"cityFrom"`
	CityTo           string `json:"cityTo"`
	StreetFrom       string `json:"streetFrom"`
	StreetTo         string `json:"streetTo"`
	StreetFromNumber int    `json:"streetFromNumber"`
	StreetToNumber   int    `json:"streetToNumber"`
	Extras           string `json:"extras"`
}

type OfferDetailOutputModel struct {
	Offer OfferOutputModel `json:"offer"`
	Bids  []BidOutputModel `json:"bids"`
}

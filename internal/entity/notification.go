package entity

import "github.com/google/uuid"

// db model
type Notification struct {
	Id        uuid.UUID `json:"id" db:"id"`
	UserId    uuid.UUID `json:"userId" db:"user_id"`
	OfferId   uuid.UUID `json:"offerId" db:"delivery_offer_id"`
	Title     string    `json:"title" db:"title"`
	CreatedAt string    `json:"createdAt" db:"created_at"`
}

// controller model
type NotificationOutputModel struct {
	Id        string `json:"id"`
	OfferId   string `json:"offerId"`
	Title     string `json:"title"`
	CreatedAt string `json:"createdAt"`
}

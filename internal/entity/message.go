package entity

import "github.com/google/uuid"

// db model
type Message struct {
	Id        uuid.UUID `json:"id" db:"id"`
	OfferId   uuid.UUID `json:"offerId" db:"delivery_offer_id"`
	FromId    uuid.UUID `json:"fromId" db:"message_from"`
	FromName  string    `json:"fromName" db:"from_name"`
	ToId      uuid.UUID `json:"toId" db:"message_to"`
	Content   string    `json:"content" db:"content"`
	CreatedAt string    `json:"createdAt" db:"created_at"`
}

// controller model
type MessageOutputModel struct {
	Id        string `json:"id"`
	FromName  string `json:"fromName"`
	Content   string `json:"content"`
	CreatedAt string `json:"createdAt"`
}

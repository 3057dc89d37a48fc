package entity

import (
	"github.com/google/uuid"
)

// db model
type User struct {
	Id           uuid.UUID `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    string    `json:"createdAt" db:"created_at"`
}

// Profile rows are created together with their user, one per user.
type UserProfile struct {
	Id     uuid.UUID `json:"id" db:"id"`
	UserId uuid.UUID `json:"userId" db:"user_id"`
	Avatar string    `json:"avatar" db:"avatar"`
}

// service + repo input model
type RegisterInput struct {
	Username  string // given
	Email     string // given
	Password  string // given
	Password2 string // given, must equal Password
}

// controller model
type UserOutputModel struct {
	Id       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type ProfileOutputModel struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Avatar   string `json:"avatar"`
}

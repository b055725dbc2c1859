package entity

import "time"

type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Password  string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

// UserLoginData is what the token middleware stores for an authenticated
// request.
type UserLoginData struct {
	ID        string
	Username  string
	Email     string
	TokenID   string
	ExpiresAt time.Time
}

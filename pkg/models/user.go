package models

import (
	"time"
)

type User struct {
	ID        int64      `db:"id"`
	Phone     string     `db:"phone"`
	Name      string     `db:"name"`
	Avatar    *string    `db:"avatar"`
	Bio       *string    `db:"bio"`
	IsOnline  bool       `db:"is_online"`
	LastSeen  *time.Time `db:"last_seen"`
	IPAddress *string    `db:"ip_address"`
	CreatedAt time.Time  `db:"created_at"`
}

// Profile is the login view of a user.
type Profile struct {
	ID       int64   `json:"id"`
	Phone    string  `json:"phone"`
	Name     string  `json:"name"`
	Avatar   *string `json:"avatar"`
	Bio      *string `json:"bio"`
	IsOnline bool    `json:"is_online"`
}

// UserSummary is how other users appear in search results.
type UserSummary struct {
	ID       int64   `json:"id" db:"id"`
	Phone    string  `json:"phone" db:"phone"`
	Name     string  `json:"name" db:"name"`
	Avatar   *string `json:"avatar" db:"avatar"`
	Bio      *string `json:"bio" db:"bio"`
	IsOnline bool    `json:"isOnline" db:"is_online"`
}

func (u *User) Profile() Profile {
	return Profile{
		ID:       u.ID,
		Phone:    u.Phone,
		Name:     u.Name,
		Avatar:   u.Avatar,
		Bio:      u.Bio,
		IsOnline: u.IsOnline,
	}
}

type LoginRequest struct {
	Phone     string `json:"phone" validate:"required,max=32"`
	Name      string `json:"name" validate:"required,max=255"`
	IPAddress string `json:"ipAddress,omitempty" validate:"omitempty,max=64"`
}

type LoginResponse struct {
	Profile
	Token string `json:"token,omitempty"`
}

type SearchResponse struct {
	Users []UserSummary `json:"users"`
}

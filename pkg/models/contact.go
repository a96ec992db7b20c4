package models

import "time"

// Contact is an entry of a user's contact list joined with the contact's profile.
type Contact struct {
	ID       int64      `json:"id" db:"id"`
	Phone    string     `json:"phone" db:"phone"`
	Name     string     `json:"name" db:"name"`
	Avatar   *string    `json:"avatar" db:"avatar"`
	Bio      *string    `json:"bio" db:"bio"`
	IsOnline bool       `json:"isOnline" db:"is_online"`
	AddedAt  *time.Time `json:"addedAt" db:"added_at"`
}

type AddContactRequest struct {
	ContactID ID `json:"contactId" validate:"required,gt=0"`
}

type ContactsResponse struct {
	Contacts []Contact `json:"contacts"`
}

type ActionResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

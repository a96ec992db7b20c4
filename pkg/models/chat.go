package models

import "errors"

var ErrChatRefMissing = errors.New("chatId or contactId is required")

// ChatRef names the chat an operation targets: either an existing chat id
// or the other participant of a direct chat. ContactID takes precedence.
type ChatRef struct {
	ChatID    int64
	ContactID int64
}

func (r ChatRef) Validate() error {
	if r.ChatID <= 0 && r.ContactID <= 0 {
		return ErrChatRefMissing
	}
	return nil
}

func (r ChatRef) ByContact() bool {
	return r.ContactID > 0
}

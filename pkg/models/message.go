package models

import (
	"errors"
	"strings"
	"time"
)

var ErrEmptyMessage = errors.New("text, voice or file is required")

// Message is a chat message as seen by a particular viewer.
type Message struct {
	ID            int64     `json:"id" db:"id"`
	ChatID        int64     `json:"-" db:"chat_id"`
	SenderID      int64     `json:"senderId" db:"sender_id"`
	Text          *string   `json:"text" db:"text"`
	IsVoice       bool      `json:"isVoice" db:"is_voice"`
	VoiceDuration *int      `json:"voiceDuration" db:"voice_duration"`
	IsFile        bool      `json:"isFile" db:"is_file"`
	FileName      *string   `json:"fileName" db:"file_name"`
	FileSize      *int64    `json:"fileSize" db:"file_size"`
	IsEdited      bool      `json:"isEdited" db:"is_edited"`
	IsForwarded   bool      `json:"isForwarded" db:"is_forwarded"`
	ForwardedFrom *string   `json:"forwardedFrom" db:"forwarded_from"`
	ReplyToID     *int64    `json:"replyToId" db:"reply_to_id"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
	SenderName    string    `json:"senderName" db:"sender_name"`
	IsOwn         bool      `json:"isOwn" db:"is_own"`
}

// MessageDraft carries the fields of a message about to be inserted.
type MessageDraft struct {
	Text          *string
	IsVoice       bool
	VoiceDuration *int
	IsFile        bool
	FileName      *string
	FileSize      *int64
	ReplyToID     *int64
	IsForwarded   bool
	ForwardedFrom *string
}

type SendMessageRequest struct {
	ChatID        ID      `json:"chatId" validate:"gte=0"`
	ContactID     ID      `json:"contactId" validate:"gte=0"`
	Text          string  `json:"text" validate:"max=10000"`
	IsVoice       bool    `json:"isVoice"`
	VoiceDuration *int    `json:"voiceDuration" validate:"omitempty,gte=0"`
	IsFile        bool    `json:"isFile"`
	FileName      *string `json:"fileName" validate:"omitempty,max=255"`
	FileSize      *int64  `json:"fileSize" validate:"omitempty,gte=0"`
	ReplyToID     *ID     `json:"replyToId" validate:"omitempty,gt=0"`
	IsForwarded   bool    `json:"isForwarded"`
	ForwardedFrom *string `json:"forwardedFrom" validate:"omitempty,max=255"`
}

func (r *SendMessageRequest) Ref() ChatRef {
	return ChatRef{ChatID: r.ChatID.Int64(), ContactID: r.ContactID.Int64()}
}

// Draft converts the request into a draft. Blank text is stored as NULL.
func (r *SendMessageRequest) Draft() (MessageDraft, error) {
	text := strings.TrimSpace(r.Text)
	if text == "" && !r.IsVoice && !r.IsFile {
		return MessageDraft{}, ErrEmptyMessage
	}
	d := MessageDraft{
		IsVoice:       r.IsVoice,
		VoiceDuration: r.VoiceDuration,
		IsFile:        r.IsFile,
		FileName:      r.FileName,
		FileSize:      r.FileSize,
		IsForwarded:   r.IsForwarded,
		ForwardedFrom: r.ForwardedFrom,
	}
	if text != "" {
		d.Text = &text
	}
	if r.ReplyToID != nil && *r.ReplyToID > 0 {
		v := r.ReplyToID.Int64()
		d.ReplyToID = &v
	}
	return d, nil
}

type SendMessageResponse struct {
	ID        int64     `json:"id"`
	ChatID    int64     `json:"chatId"`
	CreatedAt time.Time `json:"createdAt"`
}

type EditMessageRequest struct {
	MessageID ID     `json:"messageId" validate:"required,gt=0"`
	Text      string `json:"text" validate:"required,max=10000"`
}

type HistoryResponse struct {
	ChatID   int64     `json:"chatId"`
	Messages []Message `json:"messages"`
}

package models

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestSendMessageRequestDraft(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantErr  error
		wantText *string
	}{
		{name: "text", body: `{"contactId":2,"text":"  hi  "}`, wantText: strPtr("hi")},
		{name: "voice without text", body: `{"chatId":1,"isVoice":true,"voiceDuration":45}`},
		{name: "file without text", body: `{"chatId":1,"isFile":true,"fileName":"a.pdf","fileSize":10}`},
		{name: "blank text only", body: `{"chatId":1,"text":"   "}`, wantErr: ErrEmptyMessage},
		{name: "nothing", body: `{"chatId":1}`, wantErr: ErrEmptyMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req SendMessageRequest
			if err := json.Unmarshal([]byte(tt.body), &req); err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}
			d, err := req.Draft()
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Draft() error = %v, want %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			switch {
			case tt.wantText == nil && d.Text != nil:
				t.Errorf("Draft().Text = %q, want nil", *d.Text)
			case tt.wantText != nil && (d.Text == nil || *d.Text != *tt.wantText):
				t.Errorf("Draft().Text = %v, want %q", d.Text, *tt.wantText)
			}
		})
	}
}

func TestSendMessageRequestReplyTo(t *testing.T) {
	var req SendMessageRequest
	if err := json.Unmarshal([]byte(`{"chatId":"3","text":"re","replyToId":"9"}`), &req); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	d, err := req.Draft()
	if err != nil {
		t.Fatalf("Draft() error = %v", err)
	}
	if d.ReplyToID == nil || *d.ReplyToID != 9 {
		t.Errorf("ReplyToID = %v, want 9", d.ReplyToID)
	}
	if ref := req.Ref(); ref.ChatID != 3 || ref.ByContact() {
		t.Errorf("Ref() = %+v, want chat 3", ref)
	}
}

func TestChatRefValidate(t *testing.T) {
	if err := (ChatRef{}).Validate(); !errors.Is(err, ErrChatRefMissing) {
		t.Errorf("Validate() on empty ref = %v, want ErrChatRefMissing", err)
	}
	if err := (ChatRef{ContactID: 2}).Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func strPtr(s string) *string { return &s }

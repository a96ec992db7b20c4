package handlers

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/msniranjan18/chit-chat-lite/pkg/models"
	"github.com/msniranjan18/chit-chat-lite/pkg/store"
)

// memStore is an in-memory stand-in for store.Store with the same observable
// semantics, so handlers can be exercised without PostgreSQL.
type memStore struct {
	mu       sync.Mutex
	users    []*models.User
	contacts map[[2]int64]time.Time
	chats    map[int64][]int64 // chat id -> member ids
	messages []*models.Message
	nextChat int64
	nextMsg  int64
	failWith error
}

func newMemStore() *memStore {
	return &memStore{
		contacts: map[[2]int64]time.Time{},
		chats:    map[int64][]int64{},
	}
}

func (m *memStore) user(id int64) *models.User {
	for _, u := range m.users {
		if u.ID == id {
			return u
		}
	}
	return nil
}

func (m *memStore) UpsertUserByPhone(_ context.Context, phone, name, ip string) (*models.User, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, false, m.failWith
	}

	now := time.Now()
	for _, u := range m.users {
		if u.Phone == phone {
			u.Name, u.IsOnline, u.LastSeen, u.IPAddress = name, true, &now, &ip
			cp := *u
			return &cp, false, nil
		}
	}
	u := &models.User{ID: int64(len(m.users) + 1), Phone: phone, Name: name, IsOnline: true, LastSeen: &now, IPAddress: &ip}
	m.users = append(m.users, u)
	cp := *u
	return &cp, true, nil
}

func (m *memStore) SearchUsers(_ context.Context, query string, excludeID int64, limit int) ([]models.UserSummary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, m.failWith
	}

	q := strings.ToLower(query)
	var out []models.UserSummary
	for _, u := range m.users {
		if u.ID == excludeID {
			continue
		}
		bio := ""
		if u.Bio != nil {
			bio = *u.Bio
		}
		if strings.Contains(strings.ToLower(u.Name), q) || strings.Contains(strings.ToLower(u.Phone), q) ||
			strings.Contains(strings.ToLower(bio), q) {
			out = append(out, models.UserSummary{ID: u.ID, Phone: u.Phone, Name: u.Name, Bio: u.Bio, IsOnline: u.IsOnline})
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (m *memStore) AddContact(_ context.Context, userID, contactID int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return false, m.failWith
	}
	if m.user(contactID) == nil {
		return false, store.ErrNotFound
	}

	key := [2]int64{userID, contactID}
	if _, ok := m.contacts[key]; ok {
		return false, nil
	}
	m.contacts[key] = time.Now()
	return true, nil
}

func (m *memStore) GetContacts(_ context.Context, userID int64) ([]models.Contact, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, m.failWith
	}

	var out []models.Contact
	for key, added := range m.contacts {
		if key[0] != userID {
			continue
		}
		u := m.user(key[1])
		at := added
		out = append(out, models.Contact{ID: u.ID, Phone: u.Phone, Name: u.Name, IsOnline: u.IsOnline, AddedAt: &at})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].IsOnline != out[j].IsOnline {
			return out[i].IsOnline
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func (m *memStore) resolve(userID int64, ref models.ChatRef) (int64, error) {
	if err := ref.Validate(); err != nil {
		return 0, err
	}
	if !ref.ByContact() {
		return ref.ChatID, nil
	}
	if ref.ContactID == userID {
		return 0, store.ErrSelfChat
	}
	if m.user(ref.ContactID) == nil {
		return 0, store.ErrNotFound
	}

	ids := make([]int64, 0, len(m.chats))
	for id := range m.chats {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for _, id := range ids {
		members := m.chats[id]
		if contains(members, userID) && contains(members, ref.ContactID) {
			return id, nil
		}
	}

	m.nextChat++
	m.chats[m.nextChat] = []int64{userID, ref.ContactID}
	return m.nextChat, nil
}

func (m *memStore) GetChatHistory(_ context.Context, userID int64, ref models.ChatRef) (int64, []models.Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return 0, nil, m.failWith
	}

	chatID, err := m.resolve(userID, ref)
	if err != nil {
		return 0, nil, err
	}
	var out []models.Message
	for _, msg := range m.messages {
		if msg.ChatID != chatID {
			continue
		}
		cp := *msg
		cp.IsOwn = msg.SenderID == userID
		cp.SenderName = m.user(msg.SenderID).Name
		out = append(out, cp)
	}
	return chatID, out, nil
}

func (m *memStore) SendMessage(_ context.Context, userID int64, ref models.ChatRef, d models.MessageDraft) (*models.Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, m.failWith
	}

	chatID, err := m.resolve(userID, ref)
	if err != nil {
		return nil, err
	}
	if _, ok := m.chats[chatID]; !ok {
		return nil, store.ErrNotFound
	}

	m.nextMsg++
	msg := &models.Message{
		ID: m.nextMsg, ChatID: chatID, SenderID: userID, Text: d.Text,
		IsVoice: d.IsVoice, VoiceDuration: d.VoiceDuration, IsFile: d.IsFile,
		FileName: d.FileName, FileSize: d.FileSize, ReplyToID: d.ReplyToID,
		IsForwarded: d.IsForwarded, ForwardedFrom: d.ForwardedFrom, CreatedAt: time.Now(),
	}
	m.messages = append(m.messages, msg)
	cp := *msg
	return &cp, nil
}

func (m *memStore) EditMessage(_ context.Context, userID, messageID int64, text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return m.failWith
	}
	for _, msg := range m.messages {
		if msg.ID == messageID && msg.SenderID == userID {
			msg.Text, msg.IsEdited = &text, true
			return nil
		}
	}
	return store.ErrForbidden
}

func (m *memStore) DeleteMessage(_ context.Context, userID, messageID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return m.failWith
	}
	for i, msg := range m.messages {
		if msg.ID == messageID && msg.SenderID == userID {
			m.messages = append(m.messages[:i], m.messages[i+1:]...)
			return nil
		}
	}
	return store.ErrForbidden
}

func (m *memStore) chatCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.chats)
}

func contains(ids []int64, id int64) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

var errBoom = errors.New("connection refused on 10.0.0.5:5432")

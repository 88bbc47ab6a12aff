package application

import (
	"context"
	"sort"
	"sync"

	"github.com/emrebktas/modpack-assistant/internal/domain"
)

// In-memory repositories backing the service tests. They honor the same
// contracts as the gorm implementations: ownership scoping, the PENDING
// compare-and-swap, and updated_at bumps on append.

type memUserRepo struct {
	mu    sync.Mutex
	users map[string]*domain.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*domain.User)}
}

func (r *memUserRepo) Save(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *memUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *memUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *memUserRepo) ExistsByUsername(_ context.Context, username string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (r *memUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *memUserRepo) ResolveStatus(_ context.Context, id string, to domain.Status) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok || u.Status != domain.StatusPending {
		return false, nil
	}
	u.Status = to
	return true, nil
}

type memChatStore struct {
	mu            sync.Mutex
	conversations map[string]*domain.Conversation
	messages      []*domain.Message
}

func newMemChatStore() *memChatStore {
	return &memChatStore{conversations: make(map[string]*domain.Conversation)}
}

type memConversationRepo struct{ store *memChatStore }

type memMessageRepo struct{ store *memChatStore }

func (r *memConversationRepo) Create(_ context.Context, conv *domain.Conversation, first *domain.Message) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	cp := *conv
	r.store.conversations[conv.ID] = &cp
	if first != nil {
		mcp := *first
		r.store.messages = append(r.store.messages, &mcp)
	}
	return nil
}

func (r *memConversationRepo) FindByIDAndUserID(_ context.Context, id, userID string) (*domain.Conversation, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	c, ok := r.store.conversations[id]
	if !ok || c.UserID != userID {
		return nil, domain.ErrConversationNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *memConversationRepo) ListByUserID(_ context.Context, userID string) ([]*domain.Conversation, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []*domain.Conversation
	for _, c := range r.store.conversations {
		if c.UserID == userID {
			cp := *c
			out = append(out, &cp)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].UpdatedAt.After(out[j].UpdatedAt)
	})
	return out, nil
}

func (r *memConversationRepo) UpdateTitle(_ context.Context, id, userID, title string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	c, ok := r.store.conversations[id]
	if !ok || c.UserID != userID {
		return domain.ErrConversationNotFound
	}
	c.Title = title
	return nil
}

func (r *memConversationRepo) Delete(_ context.Context, id, userID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	c, ok := r.store.conversations[id]
	if !ok || c.UserID != userID {
		return domain.ErrConversationNotFound
	}
	kept := r.store.messages[:0]
	for _, m := range r.store.messages {
		if m.ConversationID != id {
			kept = append(kept, m)
		}
	}
	r.store.messages = kept
	delete(r.store.conversations, id)
	return nil
}

func (r *memMessageRepo) Append(_ context.Context, conversationID, userID string, m *domain.Message) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	c, ok := r.store.conversations[conversationID]
	if !ok || c.UserID != userID {
		return domain.ErrConversationNotFound
	}
	cp := *m
	r.store.messages = append(r.store.messages, &cp)
	c.UpdatedAt = m.CreatedAt
	return nil
}

func (r *memMessageRepo) ListByConversation(_ context.Context, conversationID, userID string) ([]*domain.Message, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	c, ok := r.store.conversations[conversationID]
	if !ok || c.UserID != userID {
		return nil, domain.ErrConversationNotFound
	}
	var out []*domain.Message
	for _, m := range r.store.messages {
		if m.ConversationID == conversationID {
			cp := *m
			out = append(out, &cp)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

type fakeNotifier struct {
	mu              sync.Mutex
	adminCalls      int
	applicantCalls  int
	lastApproved    bool
	lastApprovalTok string
}

func (n *fakeNotifier) NotifyAdmin(_ context.Context, _, _, approvalToken string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.adminCalls++
	n.lastApprovalTok = approvalToken
}

func (n *fakeNotifier) NotifyApplicant(_ context.Context, _, _ string, approved bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.applicantCalls++
	n.lastApproved = approved
}

type fakeGenerator struct {
	reply      string
	err        error
	lastPrompt string
	calls      int
}

func (g *fakeGenerator) Generate(_ context.Context, prompt string) (string, error) {
	g.calls++
	g.lastPrompt = prompt
	if g.err != nil {
		return "", g.err
	}
	return g.reply, nil
}

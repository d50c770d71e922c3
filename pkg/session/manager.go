package session

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nexlyn/storefront-backend/pkg/config"
	redisclient "github.com/nexlyn/storefront-backend/pkg/redis"
)

type sessionStore interface {
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Del(ctx context.Context, keys ...string) error
}

type sessionKeyer interface {
	SessionKey(sessionID string) string
}

// Manager stores visitor session documents in Redis with a sliding TTL.
type Manager struct {
	store sessionStore
	keyer sessionKeyer
	ttl   time.Duration
}

// NewManager constructs a session manager backed by Redis.
func NewManager(client *redisclient.Client, cfg config.SessionConfig) (*Manager, error) {
	if client == nil {
		return nil, fmt.Errorf("redis client is required")
	}
	if cfg.TTL <= 0 {
		return nil, fmt.Errorf("session ttl must be positive")
	}
	return &Manager{
		store: client,
		keyer: client,
		ttl:   cfg.TTL,
	}, nil
}

// NewSessionID produces the identifier carried by the session cookie.
func NewSessionID() string {
	return uuid.NewString()
}

// Fetch loads the state stored for the session id. A missing or unreadable
// document yields a fresh initial state: sessions are disposable and a
// corrupt one is indistinguishable from an expired one as far as the
// visitor is concerned.
func (m *Manager) Fetch(ctx context.Context, sessionID string) (*State, error) {
	if strings.TrimSpace(sessionID) == "" {
		return NewState(), nil
	}
	raw, err := m.store.Get(ctx, m.keyer.SessionKey(sessionID))
	if err != nil {
		if redisclient.IsNotFound(err) {
			return NewState(), nil
		}
		return nil, fmt.Errorf("fetching session: %w", err)
	}

	var state State
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		return NewState(), nil
	}
	if state.SelectedCategory == "" {
		state.SelectedCategory = NewState().SelectedCategory
	}
	if state.View == "" {
		state.View = NewState().View
	}
	return &state, nil
}

// Save persists the state under the session id, refreshing the TTL.
func (m *Manager) Save(ctx context.Context, sessionID string, state *State) error {
	if strings.TrimSpace(sessionID) == "" {
		return fmt.Errorf("session id is required")
	}
	if state == nil {
		return fmt.Errorf("session state is required")
	}
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encoding session: %w", err)
	}
	return m.store.Set(ctx, m.keyer.SessionKey(sessionID), string(raw), m.ttl)
}

// Delete drops the stored session document.
func (m *Manager) Delete(ctx context.Context, sessionID string) error {
	if strings.TrimSpace(sessionID) == "" {
		return nil
	}
	return m.store.Del(ctx, m.keyer.SessionKey(sessionID))
}

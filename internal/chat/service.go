// Package chat relays visitor questions to the grounded assistant and keeps
// the per-session transcript.
package chat

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/nexlyn/storefront-backend/pkg/enums"
	"github.com/nexlyn/storefront-backend/pkg/gemini"
	"github.com/nexlyn/storefront-backend/pkg/logger"
	"github.com/nexlyn/storefront-backend/pkg/metrics"
	"github.com/nexlyn/storefront-backend/pkg/session"
	"github.com/nexlyn/storefront-backend/pkg/types"
)

const (
	greeting = "Hello! I am the Nexlyn Assistant. I can help you with MikroTik® hardware specifications and network planning. What are you looking for today?"

	// fallbackText is shown in place of an answer whenever the assistant
	// call fails. The underlying cause is logged, never sent to the visitor.
	fallbackText = "I'm having trouble connecting right now. Please try again later."
)

// Service exposes the per-session chat transcript and relay.
type Service interface {
	Messages(ctx context.Context, sessionID string) ([]types.Message, error)
	Send(ctx context.Context, sessionID, text string) ([]types.Message, error)
}

type aiClient interface {
	SearchTech(ctx context.Context, prompt string) (*gemini.Answer, error)
}

type stateStore interface {
	Fetch(ctx context.Context, sessionID string) (*session.State, error)
	Save(ctx context.Context, sessionID string, state *session.State) error
}

// service guards each session with an in-flight marker so a second send
// while the assistant is still answering is dropped instead of interleaving
// transcript writes.
type service struct {
	mu       sync.Mutex
	inFlight map[string]struct{}

	sessions stateStore
	ai       aiClient
	logg     *logger.Logger
	metrics  *metrics.StorefrontMetrics
}

// NewService constructs the chat service.
func NewService(sessions stateStore, ai aiClient, logg *logger.Logger, m *metrics.StorefrontMetrics) (Service, error) {
	if sessions == nil {
		return nil, fmt.Errorf("session store required")
	}
	if ai == nil {
		return nil, fmt.Errorf("ai client required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &service{
		inFlight: map[string]struct{}{},
		sessions: sessions,
		ai:       ai,
		logg:     logg,
		metrics:  m,
	}, nil
}

// Messages returns the transcript, seeding the greeting on first access.
func (s *service) Messages(ctx context.Context, sessionID string) ([]types.Message, error) {
	state, err := s.sessions.Fetch(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if len(state.Messages) == 0 {
		state.Messages = []types.Message{{Role: enums.ChatRoleAssistant, Content: greeting}}
		if err := s.sessions.Save(ctx, sessionID, state); err != nil {
			return nil, err
		}
	}
	return state.Messages, nil
}

// Send appends the visitor's message, relays it to the assistant, and
// appends the reply. Blank input and sends that race an in-flight relay
// are dropped, returning the transcript unchanged.
func (s *service) Send(ctx context.Context, sessionID, text string) ([]types.Message, error) {
	if strings.TrimSpace(text) == "" {
		return s.Messages(ctx, sessionID)
	}
	if !s.tryAcquire(sessionID) {
		return s.Messages(ctx, sessionID)
	}
	defer s.release(sessionID)

	state, err := s.sessions.Fetch(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if len(state.Messages) == 0 {
		state.Messages = []types.Message{{Role: enums.ChatRoleAssistant, Content: greeting}}
	}

	state.Messages = append(state.Messages, types.Message{Role: enums.ChatRoleUser, Content: text})
	if err := s.sessions.Save(ctx, sessionID, state); err != nil {
		return nil, err
	}

	started := time.Now()
	answer, err := s.ai.SearchTech(ctx, text)

	var reply types.Message
	if err != nil {
		s.metrics.ObserveChatRelay("fallback", time.Since(started))
		s.logg.Error(s.logg.WithSessionID(ctx, sessionID), "assistant relay failed", err)
		reply = types.Message{Role: enums.ChatRoleAssistant, Content: fallbackText}
	} else {
		s.metrics.ObserveChatRelay("answered", time.Since(started))
		reply = types.Message{
			Role:    enums.ChatRoleAssistant,
			Content: answer.Text,
			Sources: answer.Sources,
		}
	}

	// The relay can take seconds. Other requests may have committed session
	// writes in the meantime (navigation, admin unlock), so the snapshot
	// from before the relay is stale; re-fetch and append only the reply.
	state, err = s.sessions.Fetch(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	state.Messages = append(state.Messages, reply)
	if err := s.sessions.Save(ctx, sessionID, state); err != nil {
		return nil, err
	}
	return state.Messages, nil
}

func (s *service) tryAcquire(sessionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.inFlight[sessionID]; busy {
		return false
	}
	s.inFlight[sessionID] = struct{}{}
	return true
}

func (s *service) release(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, sessionID)
}

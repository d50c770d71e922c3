package controllers

import (
	"context"

	"github.com/nexlyn/storefront-backend/pkg/session"
)

// sessionStore is the slice of the session manager the controllers use.
type sessionStore interface {
	Fetch(ctx context.Context, sessionID string) (*session.State, error)
	Save(ctx context.Context, sessionID string, state *session.State) error
}

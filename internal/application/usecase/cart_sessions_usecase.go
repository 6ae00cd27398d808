// internal/application/usecase/cart_sessions_usecase.go
package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"

	cartdom "radacycling/internal/domain/cart"
	"radacycling/internal/domain/i18n"
)

// CartSession couples one buyer's cart state with its persistence bridge.
type CartSession struct {
	State  *cartdom.State
	bridge *CartBridge
}

// CartSessionManager owns the live cart sessions of the instance, one per
// signed-in user. Sessions are created lazily on first cart access and
// hydrated from storage before the bridge starts observing.
type CartSessionManager struct {
	store CartLineStore

	mu       sync.Mutex
	sessions map[string]*CartSession
}

func NewCartSessionManager(store CartLineStore) *CartSessionManager {
	return &CartSessionManager{
		store:    store,
		sessions: map[string]*CartSession{},
	}
}

// Get returns the session for userID, creating and hydrating it on first
// use. The language is fixed at session creation.
func (m *CartSessionManager) Get(ctx context.Context, userID string, lang i18n.Lang) (*CartSession, error) {
	if m == nil || m.store == nil {
		return nil, errors.New("cart sessions: store is nil")
	}
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, errors.New("cart sessions: userID is empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.sessions[userID]; ok {
		return s, nil
	}

	bridge, err := NewCartBridge(m.store, userID)
	if err != nil {
		return nil, err
	}

	state := cartdom.NewState(lang)
	items, err := bridge.Hydrate(ctx)
	if err != nil {
		bridge.Close()
		return nil, err
	}
	state.Load(items)
	bridge.Attach(state)

	s := &CartSession{State: state, bridge: bridge}
	m.sessions[userID] = s
	return s, nil
}

// Close flushes and stops every session's bridge. Called on shutdown.
func (m *CartSessionManager) Close() {
	m.mu.Lock()
	sessions := m.sessions
	m.sessions = map[string]*CartSession{}
	m.mu.Unlock()

	for _, s := range sessions {
		s.bridge.Close()
	}
}

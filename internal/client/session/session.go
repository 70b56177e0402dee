// Package session holds the bearer credential shared by every outbound
// request.
//
// A Session has two states: absent and present. It starts absent, becomes
// present when a caller stores a token after login or registration, and goes
// back to absent on logout or when the HTTP client sees a 401. The credential
// is persisted through a Store under common.AccessTokenKey so that it
// survives restarts of the CLI.
package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/sprintpilot/internal/common"
)

// Store is the persistence the session writes through.
// metadata.Repository satisfies it.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// Session is safe for concurrent use.
type Session struct {
	mu    sync.RWMutex
	store Store
	token string
}

// New returns an absent session backed by store. A nil store keeps the
// credential in memory only.
func New(store Store) *Session {
	return &Session{store: store}
}

// Load reads a previously persisted credential, if any.
func (s *Session) Load(ctx context.Context) error {
	if s.store == nil {
		return nil
	}

	v, err := s.store.Get(ctx, common.AccessTokenKey)
	if err != nil {
		return fmt.Errorf("load credential: %w", err)
	}

	s.mu.Lock()
	s.token = string(v)
	s.mu.Unlock()
	return nil
}

// Token returns the current credential or "" when absent.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// HasCredential reports whether the session is in the present state.
func (s *Session) HasCredential() bool {
	return s.Token() != ""
}

// Set stores token, replacing any previous one.
func (s *Session) Set(ctx context.Context, token string) error {
	return s.SetTx(ctx, s.store, token)
}

// SetTx is Set persisting through st instead of the session's own store.
// Callers use it to write the credential inside a transaction together with
// other metadata.
func (s *Session) SetTx(ctx context.Context, st Store, token string) error {
	if token == "" {
		return s.Clear(ctx)
	}

	if st != nil {
		if err := st.Set(ctx, common.AccessTokenKey, []byte(token)); err != nil {
			return fmt.Errorf("persist credential: %w", err)
		}
	}

	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
	return nil
}

// Clear erases the credential. The in-memory copy is dropped even if the
// store fails, so no further request carries it. Clearing an absent session
// is a no-op.
func (s *Session) Clear(ctx context.Context) error {
	s.mu.Lock()
	s.token = ""
	s.mu.Unlock()

	if s.store == nil {
		return nil
	}
	if err := s.store.Delete(ctx, common.AccessTokenKey); err != nil {
		return fmt.Errorf("erase credential: %w", err)
	}
	return nil
}

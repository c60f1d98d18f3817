package session

import (
	"context"
	"sync"
)

// Identity describes an authenticated user as reported by the identity
// provider. The UserID is the owner reference stamped on remote rows.
type Identity struct {
	UserID string
	Email  string
}

// IdentityProvider is the controller's only source of truth for who is
// signed in.
type IdentityProvider interface {
	// Current returns the active identity, or nil when signed out.
	Current(ctx context.Context) (*Identity, error)
	// OnChange registers a callback invoked whenever the identity changes.
	OnChange(fn func(*Identity))
	// SignOut ends the provider-side session.
	SignOut(ctx context.Context) error
}

// StaticProvider is an in-process identity provider configured up front,
// e.g. from environment variables. It still supports sign-in/sign-out and
// change notification so the controller behaves the same as with a real
// auth service behind it.
type StaticProvider struct {
	mu        sync.Mutex
	identity  *Identity
	listeners []func(*Identity)
}

// NewStaticProvider returns a provider holding the given identity; pass an
// empty userID for a signed-out provider.
func NewStaticProvider(userID, email string) *StaticProvider {
	p := &StaticProvider{}
	if userID != "" {
		p.identity = &Identity{UserID: userID, Email: email}
	}
	return p
}

func (p *StaticProvider) Current(ctx context.Context) (*Identity, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.identity, nil
}

func (p *StaticProvider) OnChange(fn func(*Identity)) {
	p.mu.Lock()
	p.listeners = append(p.listeners, fn)
	p.mu.Unlock()
}

// SetIdentity signs a user in (or out, with nil) and notifies listeners.
func (p *StaticProvider) SetIdentity(id *Identity) {
	p.mu.Lock()
	p.identity = id
	listeners := append([]func(*Identity){}, p.listeners...)
	p.mu.Unlock()
	for _, fn := range listeners {
		fn(id)
	}
}

func (p *StaticProvider) SignOut(ctx context.Context) error {
	p.SetIdentity(nil)
	return nil
}

// Package session tracks who is signed in and whether the demo backend is
// active. Demo and authenticated are mutually exclusive by construction:
// the mode is a single value, never two flags.
package session

import (
	"context"
	"fmt"
	"sync"
)

// Mode is the controller's current state.
type Mode int

const (
	ModeUnauthenticated Mode = iota
	ModeDemo
	ModeAuthenticated
)

func (m Mode) String() string {
	switch m {
	case ModeDemo:
		return "demo"
	case ModeAuthenticated:
		return "authenticated"
	default:
		return "unauthenticated"
	}
}

// Controller is the session/mode state machine. Entering demo shadows any
// persisted identity rather than discarding it; leaving demo restores it.
type Controller struct {
	mu          sync.Mutex
	provider    IdentityProvider
	mode        Mode
	identity    *Identity
	authLoading bool
}

// NewController starts unauthenticated with authLoading set until the first
// Resolve call completes.
func NewController(provider IdentityProvider) *Controller {
	return &Controller{provider: provider, authLoading: true}
}

// Resolve asks the identity provider for the current session and, unless
// demo mode is active, moves the controller to the matching state. It
// returns the identity when one is present.
func (c *Controller) Resolve(ctx context.Context) (*Identity, error) {
	id, err := c.provider.Current(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.authLoading = false
	if err != nil {
		return nil, fmt.Errorf("resolve session: %w", err)
	}
	c.identity = id
	if c.mode != ModeDemo {
		if id != nil {
			c.mode = ModeAuthenticated
		} else {
			c.mode = ModeUnauthenticated
		}
	}
	return id, nil
}

// EnterDemo switches to the in-memory backend. A persisted identity is kept
// but ignored for the duration.
func (c *Controller) EnterDemo() {
	c.mu.Lock()
	c.mode = ModeDemo
	c.mu.Unlock()
}

// ExitDemo leaves demo mode. If an identity was shadowed the controller
// returns to authenticated and hands it back so the caller can reload from
// the remote store; otherwise it returns to unauthenticated.
func (c *Controller) ExitDemo() *Identity {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.mode != ModeDemo {
		return nil
	}
	if c.identity != nil {
		c.mode = ModeAuthenticated
		return c.identity
	}
	c.mode = ModeUnauthenticated
	return nil
}

// SignOut clears the identity through the provider and returns to
// unauthenticated.
func (c *Controller) SignOut(ctx context.Context) error {
	if err := c.provider.SignOut(ctx); err != nil {
		return fmt.Errorf("sign out: %w", err)
	}
	c.mu.Lock()
	c.identity = nil
	c.mode = ModeUnauthenticated
	c.mu.Unlock()
	return nil
}

// Mode returns the current state.
func (c *Controller) Mode() Mode {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mode
}

// Identity returns the current identity, which may be set even in demo mode
// (shadowed, never used for routing).
func (c *Controller) Identity() *Identity {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.identity
}

// AuthLoading reports whether the first identity check is still in flight.
func (c *Controller) AuthLoading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.authLoading
}

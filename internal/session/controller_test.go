package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveSignedOut(t *testing.T) {
	c := NewController(NewStaticProvider("", ""))
	assert.True(t, c.AuthLoading())

	id, err := c.Resolve(context.Background())
	require.NoError(t, err)
	assert.Nil(t, id)
	assert.False(t, c.AuthLoading())
	assert.Equal(t, ModeUnauthenticated, c.Mode())
}

func TestResolveSignedIn(t *testing.T) {
	c := NewController(NewStaticProvider("u1", "u1@example.com"))

	id, err := c.Resolve(context.Background())
	require.NoError(t, err)
	require.NotNil(t, id)
	assert.Equal(t, "u1", id.UserID)
	assert.Equal(t, ModeAuthenticated, c.Mode())
}

func TestDemoShadowsIdentity(t *testing.T) {
	c := NewController(NewStaticProvider("u1", "u1@example.com"))
	_, err := c.Resolve(context.Background())
	require.NoError(t, err)

	c.EnterDemo()
	assert.Equal(t, ModeDemo, c.Mode())
	// Identity survives but must not drive routing.
	assert.NotNil(t, c.Identity())

	// Resolving while in demo keeps demo active.
	_, err = c.Resolve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, ModeDemo, c.Mode())

	id := c.ExitDemo()
	require.NotNil(t, id)
	assert.Equal(t, "u1", id.UserID)
	assert.Equal(t, ModeAuthenticated, c.Mode())
}

func TestExitDemoWithoutIdentity(t *testing.T) {
	c := NewController(NewStaticProvider("", ""))
	_, err := c.Resolve(context.Background())
	require.NoError(t, err)

	c.EnterDemo()
	id := c.ExitDemo()
	assert.Nil(t, id)
	assert.Equal(t, ModeUnauthenticated, c.Mode())
}

func TestExitDemoWhenNotInDemoIsNoop(t *testing.T) {
	c := NewController(NewStaticProvider("u1", ""))
	_, err := c.Resolve(context.Background())
	require.NoError(t, err)

	assert.Nil(t, c.ExitDemo())
	assert.Equal(t, ModeAuthenticated, c.Mode())
}

func TestSignOut(t *testing.T) {
	p := NewStaticProvider("u1", "u1@example.com")
	c := NewController(p)
	_, err := c.Resolve(context.Background())
	require.NoError(t, err)

	require.NoError(t, c.SignOut(context.Background()))
	assert.Nil(t, c.Identity())
	assert.Equal(t, ModeUnauthenticated, c.Mode())

	id, err := p.Current(context.Background())
	require.NoError(t, err)
	assert.Nil(t, id, "provider session must be cleared too")
}

// Mode is a single value, so demo and authenticated can never hold at once;
// this walks a mixed call sequence and checks the invariant at each step.
func TestModeExclusivity(t *testing.T) {
	c := NewController(NewStaticProvider("u1", ""))
	steps := []func(){
		func() { _, _ = c.Resolve(context.Background()) },
		func() { c.EnterDemo() },
		func() { _, _ = c.Resolve(context.Background()) },
		func() { c.ExitDemo() },
		func() { c.EnterDemo() },
		func() { _ = c.SignOut(context.Background()) },
		func() { c.ExitDemo() },
	}
	for i, step := range steps {
		step()
		m := c.Mode()
		assert.True(t, m == ModeUnauthenticated || m == ModeDemo || m == ModeAuthenticated, "step %d", i)
	}
}

func TestProviderNotifiesEveryListener(t *testing.T) {
	p := NewStaticProvider("", "")
	var first, second, late int
	p.OnChange(func(*Identity) { first++ })
	p.OnChange(func(id *Identity) {
		second++
		// Registering from inside a notification must not deadlock or
		// affect the in-flight delivery.
		if second == 1 {
			p.OnChange(func(*Identity) { late++ })
		}
	})

	p.SetIdentity(&Identity{UserID: "u3"})
	assert.Equal(t, 1, first)
	assert.Equal(t, 1, second)
	assert.Equal(t, 0, late)

	p.SetIdentity(nil)
	assert.Equal(t, 2, first)
	assert.Equal(t, 2, second)
	assert.Equal(t, 1, late)
}

func TestProviderOnChange(t *testing.T) {
	p := NewStaticProvider("", "")
	var seen []*Identity
	p.OnChange(func(id *Identity) { seen = append(seen, id) })

	p.SetIdentity(&Identity{UserID: "u2"})
	require.NoError(t, p.SignOut(context.Background()))

	require.Len(t, seen, 2)
	assert.Equal(t, "u2", seen[0].UserID)
	assert.Nil(t, seen[1])
}

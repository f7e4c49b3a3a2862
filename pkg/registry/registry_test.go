package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nfsim/nfsim/pkg/vfs"
)

func TestRegister(t *testing.T) {
	reg := New()

	require.NoError(t, reg.Register("alice", "Smith"))
	assert.Equal(t, 1, reg.Len())

	err := reg.Register("alice", "Jones")
	require.Error(t, err)
	assert.Equal(t, vfs.ErrAlreadyExists, vfs.CodeOf(err))
	assert.Equal(t, 1, reg.Len())
}

func TestActivate(t *testing.T) {
	reg := New()
	require.NoError(t, reg.Register("alice", "Smith"))

	_, err := reg.Activate("ghost")
	require.Error(t, err)
	assert.Equal(t, vfs.ErrNotFound, vfs.CodeOf(err))
	assert.Nil(t, reg.Active())

	session, err := reg.Activate("alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", session.Username())
	assert.Equal(t, "Smith", session.Lastname())
	assert.True(t, session.LoggedIn())
	assert.Same(t, session, reg.Active())
}

func TestDeactivate(t *testing.T) {
	reg := New()

	_, err := reg.Deactivate()
	require.Error(t, err)
	assert.Equal(t, vfs.ErrNoActiveSession, vfs.CodeOf(err))

	require.NoError(t, reg.Register("alice", "Smith"))
	_, err = reg.Activate("alice")
	require.NoError(t, err)

	session, err := reg.Deactivate()
	require.NoError(t, err)
	assert.Equal(t, "alice", session.Username())
	assert.False(t, session.LoggedIn())
	assert.Nil(t, reg.Active())
}

func TestSessionStateSurvivesLogout(t *testing.T) {
	reg := New()
	require.NoError(t, reg.Register("alice", "Smith"))

	session, err := reg.Activate("alice")
	require.NoError(t, err)
	require.NoError(t, session.FS().CreateDirectory("docs", "alice"))
	require.NoError(t, session.FS().ChangeDirectory("docs"))

	_, err = reg.Deactivate()
	require.NoError(t, err)

	// Logout clears the active pointer only; the namespace and even the
	// cursor come back untouched
	session, err = reg.Activate("alice")
	require.NoError(t, err)
	assert.Equal(t, "/docs", session.FS().CurrentPath())
}

func TestNamespacesAreIsolated(t *testing.T) {
	reg := New()
	require.NoError(t, reg.Register("alice", "Smith"))
	require.NoError(t, reg.Register("bob", "Jones"))

	alice, err := reg.Activate("alice")
	require.NoError(t, err)
	require.NoError(t, alice.FS().CreateFile("secret.txt", "alice", "alice only"))

	bob, err := reg.Activate("bob")
	require.NoError(t, err)
	_, err = bob.FS().ReadFile("secret.txt")
	require.Error(t, err)
	assert.Equal(t, vfs.ErrNotFound, vfs.CodeOf(err))
	assert.Empty(t, bob.FS().List())
}

func TestActivateReplacesActiveSession(t *testing.T) {
	reg := New()
	require.NoError(t, reg.Register("alice", "Smith"))
	require.NoError(t, reg.Register("bob", "Jones"))

	_, err := reg.Activate("alice")
	require.NoError(t, err)
	bob, err := reg.Activate("bob")
	require.NoError(t, err)

	assert.Same(t, bob, reg.Active())
}

func TestSessionsSorted(t *testing.T) {
	reg := New()
	for _, u := range [][2]string{{"zoe", "Zed"}, {"alice", "Smith"}, {"mallory", "Mall"}} {
		require.NoError(t, reg.Register(u[0], u[1]))
	}

	sessions := reg.Sessions()
	require.Len(t, sessions, 3)
	assert.Equal(t, "alice", sessions[0].Username())
	assert.Equal(t, "mallory", sessions[1].Username())
	assert.Equal(t, "zoe", sessions[2].Username())
}

func TestLookup(t *testing.T) {
	reg := New()
	require.NoError(t, reg.Register("alice", "Smith"))

	session, err := reg.Lookup("alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", session.Username())
	// Lookup never logs anyone in
	assert.False(t, session.LoggedIn())
	assert.Nil(t, reg.Active())

	_, err = reg.Lookup("ghost")
	require.Error(t, err)
	assert.Equal(t, vfs.ErrNotFound, vfs.CodeOf(err))
}

func TestPrompt(t *testing.T) {
	reg := New()
	require.NoError(t, reg.Register("alice", "Smith"))

	session, err := reg.Activate("alice")
	require.NoError(t, err)
	assert.Equal(t, "Smith@filesystem:/$ ", session.Prompt())

	require.NoError(t, session.FS().CreateDirectory("docs", "alice"))
	require.NoError(t, session.FS().ChangeDirectory("docs"))
	assert.Equal(t, "Smith@filesystem:/docs$ ", session.Prompt())
}

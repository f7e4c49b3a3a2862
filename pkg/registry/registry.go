// Package registry maps usernames to their sessions and tracks which
// session, if any, is active.
package registry

import (
	"sort"
	"sync"

	"github.com/nfsim/nfsim/pkg/vfs"
)

// Registry owns every registered session and the single active-session
// pointer. Sessions are 1:1 with usernames, created once and never removed.
//
// The active pointer is explicit registry state, not a package global: the
// dispatcher asks the registry on every call, which keeps the core usable
// with several registry instances side by side (tests do exactly that).
//
// Thread Safety:
// All methods are guarded by a read-write mutex, matching how the rest of
// the system treats shared registries. The per-session Filesystem behind
// each entry is still single-caller; the lock protects the maps here, not
// the trees.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	active   *Session
}

// New creates an empty registry with no active session.
func New() *Registry {
	return &Registry{
		sessions: make(map[string]*Session),
	}
}

// Register creates a session for a new user. The session owns a fresh
// namespace rooted at "/" with the username as owner.
//
// Fails with ErrAlreadyExists if the username is taken.
func (r *Registry) Register(username, lastname string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.sessions[username]; exists {
		return &vfs.NamespaceError{
			Code:    vfs.ErrAlreadyExists,
			Message: "User '" + username + "' already exists",
			Path:    username,
		}
	}
	r.sessions[username] = newSession(username, lastname)
	return nil
}

// Activate logs the named user in and makes their session the active one.
// Any previously active session is replaced without being logged out of
// its state; its namespace is untouched.
//
// Fails with ErrNotFound if the username was never registered.
func (r *Registry) Activate(username string) (*Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, exists := r.sessions[username]
	if !exists {
		return nil, &vfs.NamespaceError{
			Code:    vfs.ErrNotFound,
			Message: "User '" + username + "' not found",
			Path:    username,
		}
	}
	session.loggedIn = true
	r.active = session
	return session, nil
}

// Deactivate logs the active user out and clears the active pointer. The
// session itself, namespace included, survives for the next login.
//
// Fails with ErrNoActiveSession if nobody is logged in.
func (r *Registry) Deactivate() (*Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.active == nil {
		return nil, &vfs.NamespaceError{
			Code:    vfs.ErrNoActiveSession,
			Message: "No user logged in",
		}
	}
	session := r.active
	session.loggedIn = false
	r.active = nil
	return session, nil
}

// Lookup returns the named session without touching login state. Used by
// startup seeding, which populates namespaces before anyone logs in.
//
// Fails with ErrNotFound if the username was never registered.
func (r *Registry) Lookup(username string) (*Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, exists := r.sessions[username]
	if !exists {
		return nil, &vfs.NamespaceError{
			Code:    vfs.ErrNotFound,
			Message: "User '" + username + "' not found",
			Path:    username,
		}
	}
	return session, nil
}

// Active returns the currently active session, or nil when none is
// logged in.
func (r *Registry) Active() *Session {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.active
}

// Sessions returns every registered session sorted by username.
func (r *Registry) Sessions() []*Session {
	r.mu.RLock()
	defer r.mu.RUnlock()

	usernames := make([]string, 0, len(r.sessions))
	for username := range r.sessions {
		usernames = append(usernames, username)
	}
	sort.Strings(usernames)

	sessions := make([]*Session, 0, len(usernames))
	for _, username := range usernames {
		sessions = append(sessions, r.sessions[username])
	}
	return sessions
}

// Len returns the number of registered sessions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

package registry

import "github.com/nfsim/nfsim/pkg/vfs"

// Session is one registered user's view of the system: an identity plus a
// private namespace with its own root and cursor.
//
// A session is created exactly once, at registration, and lives for the
// process lifetime. Logging out only clears the registry's active pointer;
// the session's namespace, including its current directory, survives and is
// picked up unchanged on the next login.
type Session struct {
	username string
	lastname string
	fs       *vfs.Filesystem
	loggedIn bool
}

func newSession(username, lastname string) *Session {
	return &Session{
		username: username,
		lastname: lastname,
		fs:       vfs.New(username),
		loggedIn: false,
	}
}

// Username is the session identifier.
func (s *Session) Username() string { return s.username }

// Lastname is the display name used in prompts and greetings.
func (s *Session) Lastname() string { return s.lastname }

// FS returns the session's namespace.
func (s *Session) FS() *vfs.Filesystem { return s.fs }

// LoggedIn reports whether this session is currently logged in.
func (s *Session) LoggedIn() bool { return s.loggedIn }

// Prompt renders the terminal prompt for this session, e.g.
// "Smith@filesystem:/docs$ ".
func (s *Session) Prompt() string {
	return s.lastname + "@filesystem:" + s.fs.CurrentPath() + "$ "
}

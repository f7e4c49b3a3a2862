package shell

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nfsim/nfsim/pkg/registry"
)

// newTestShell returns a shell wired to a buffer; tests drive it through
// Execute and inspect what it printed.
func newTestShell() (*Shell, *bytes.Buffer) {
	out := &bytes.Buffer{}
	s := New(registry.New(), strings.NewReader(""), out, Options{})
	return s, out
}

// run executes a script of input lines and returns everything printed.
func run(t *testing.T, s *Shell, out *bytes.Buffer, lines ...string) string {
	t.Helper()
	for _, line := range lines {
		s.Execute(line)
	}
	return out.String()
}

func TestUnknownCommand(t *testing.T) {
	s, out := newTestShell()
	output := run(t, s, out, "frobnicate")
	assert.Contains(t, output, "Unknown command: frobnicate. Type 'help' for available commands.")
}

func TestEmptyLineIsNoOp(t *testing.T) {
	s, out := newTestShell()
	output := run(t, s, out, "", "   ")
	assert.Empty(t, output)
}

func TestCommandNameIsCaseInsensitive(t *testing.T) {
	s, out := newTestShell()
	output := run(t, s, out, "CREATEUSER alice Smith", "LoGiN alice")
	assert.Contains(t, output, "User 'alice' created successfully")
	assert.Contains(t, output, "Welcome Smith!")
}

func TestUserLifecycle(t *testing.T) {
	s, out := newTestShell()
	output := run(t, s, out,
		"createuser alice Smith",
		"createuser alice Smith",
		"login bob",
		"login alice",
		"whoami",
		"logout",
		"logout",
	)

	assert.Contains(t, output, "User 'alice' created successfully")
	assert.Contains(t, output, "User 'alice' already exists")
	assert.Contains(t, output, "User 'bob' not found")
	assert.Contains(t, output, "Welcome Smith!")
	assert.Contains(t, output, "Current user: alice (Last name: Smith)")
	assert.Contains(t, output, "Working directory: /")
	assert.Contains(t, output, "User 'alice' logged out")
	assert.Contains(t, output, "No user logged in")
}

func TestUsersListing(t *testing.T) {
	s, out := newTestShell()
	output := run(t, s, out, "users")
	assert.Contains(t, output, "No users registered")

	out.Reset()
	output = run(t, s, out,
		"createuser bob Jones",
		"createuser alice Smith",
		"login alice",
		"users",
	)
	assert.Contains(t, output, "Registered Users:")
	assert.Contains(t, output, "[*] alice (Smith)")
	assert.Contains(t, output, "[ ] bob (Jones)")
	// Sorted by username
	assert.Less(t, strings.Index(output, "alice (Smith)"), strings.Index(output, "bob (Jones)"))
}

func TestFileCommandsRequireLogin(t *testing.T) {
	s, out := newTestShell()

	for _, line := range []string{"pwd", "ls", "cd docs", "mkdir docs", "touch f",
		"write f x", "read f", "cat f", "rm f", "mv a b", "cp a b"} {
		out.Reset()
		output := run(t, s, out, line)
		assert.Contains(t, output, "Error: No user logged in. Please login first.",
			"command %q should be gated on login", line)
	}
}

func TestFileOperationsScript(t *testing.T) {
	s, out := newTestShell()
	run(t, s, out, "createuser alice Smith", "login alice")
	out.Reset()

	output := run(t, s, out,
		"mkdir docs",
		"cd docs",
		"pwd",
		"touch notes.txt",
		"write notes.txt hello world",
		"read notes.txt",
		"cd ..",
		"rm docs",
	)

	assert.Contains(t, output, "Directory 'docs' created successfully")
	assert.Contains(t, output, "/docs\n")
	assert.Contains(t, output, "File 'notes.txt' created successfully")
	assert.Contains(t, output, "File 'notes.txt' updated successfully")
	assert.Contains(t, output, "--- Contents of 'notes.txt' ---")
	assert.Contains(t, output, "hello world")
	assert.Contains(t, output, "--- End of file ---")
	assert.Contains(t, output, "Directory 'docs' is not empty")
}

func TestWriteJoinsContentTokens(t *testing.T) {
	s, out := newTestShell()
	run(t, s, out, "createuser alice Smith", "login alice",
		"write f.txt one two   three")
	out.Reset()

	output := run(t, s, out, "cat f.txt")
	// Tokenization collapses runs of whitespace; content is re-joined with
	// single spaces
	assert.Contains(t, output, "one two three")
}

func TestCatAliasesRead(t *testing.T) {
	s, out := newTestShell()
	run(t, s, out, "createuser alice Smith", "login alice", "write f.txt data")
	out.Reset()

	readOut := run(t, s, out, "read f.txt")
	out.Reset()
	catOut := run(t, s, out, "cat f.txt")
	assert.Equal(t, readOut, catOut)
}

func TestLsFormatting(t *testing.T) {
	s, out := newTestShell()
	run(t, s, out, "createuser alice Smith", "login alice")
	out.Reset()

	output := run(t, s, out, "ls")
	assert.Contains(t, output, "(empty directory)")

	out.Reset()
	run(t, s, out, "mkdir docs", "write data.txt 12345")
	out.Reset()

	output = run(t, s, out, "ls")
	assert.Contains(t, output, "Type")
	assert.Contains(t, output, "Name")
	assert.Contains(t, output, "Owner")
	assert.Contains(t, output, "<DIR>")
	assert.Contains(t, output, "data.txt")
	assert.Contains(t, output, "docs")
	// "12345" is five bytes
	assert.Contains(t, output, "5")
}

func TestMvAndCpCommands(t *testing.T) {
	s, out := newTestShell()
	run(t, s, out, "createuser alice Smith", "login alice",
		"mkdir docs", "write report.txt contents")
	out.Reset()

	output := run(t, s, out,
		"cp report.txt report_copy.txt",
		"mv report.txt docs",
		"mv report_copy.txt report_copy.txt",
		"mv docs docs",
	)
	assert.Contains(t, output, "File copied from 'report.txt' to 'report_copy.txt'")
	assert.Contains(t, output, "Moved 'report.txt' to 'docs'")
	assert.Contains(t, output, "Destination 'report_copy.txt' is not a directory")
	assert.Contains(t, output, "Cannot move 'docs' into itself")
}

func TestUsageMessages(t *testing.T) {
	s, out := newTestShell()
	run(t, s, out, "createuser alice Smith", "login alice")
	out.Reset()

	tests := []struct {
		line  string
		usage string
	}{
		{"createuser", "Usage: createuser <username> <lastname>"},
		{"createuser bob", "Usage: createuser <username> <lastname>"},
		{"login", "Usage: login <username>"},
		{"cd", "Usage: cd <directory>"},
		{"mkdir", "Usage: mkdir <directory_name>"},
		{"touch", "Usage: touch <filename>"},
		{"write f.txt", "Usage: write <filename> <content>"},
		{"read", "Usage: read <filename>"},
		{"rm", "Usage: rm <name>"},
		{"mv onlyone", "Usage: mv <source> <destination_directory>"},
		{"cp onlyone", "Usage: cp <source_file> <destination_file>"},
	}
	for _, tt := range tests {
		out.Reset()
		output := run(t, s, out, tt.line)
		assert.Contains(t, output, tt.usage, "line %q", tt.line)
	}
}

func TestCdAtRootReportsError(t *testing.T) {
	s, out := newTestShell()
	run(t, s, out, "createuser alice Smith", "login alice")
	out.Reset()

	output := run(t, s, out, "cd ..")
	assert.Contains(t, output, "Error: Already at root directory")
}

func TestPanickingHandlerIsContained(t *testing.T) {
	s, out := newTestShell()
	s.commands["boom"] = func(s *Shell, args []string) {
		panic("kaboom")
	}

	output := run(t, s, out, "boom")
	assert.Contains(t, output, "Error executing command: kaboom")

	// The shell keeps dispatching afterwards
	out.Reset()
	output = run(t, s, out, "users")
	assert.Contains(t, output, "No users registered")
}

func TestRunLoop(t *testing.T) {
	in := strings.NewReader("createuser alice Smith\nlogin alice\nmkdir docs\nexit\n")
	out := &bytes.Buffer{}
	s := New(registry.New(), in, out, Options{Banner: true})

	s.Run()

	output := out.String()
	assert.Contains(t, output, "NETWORK FILE SYSTEM SIMULATOR")
	assert.Contains(t, output, "guest@filesystem$ ")
	assert.Contains(t, output, "Smith@filesystem:/$ ")
	assert.Contains(t, output, "Welcome Smith!")
	assert.Contains(t, output, "Exiting Network File System. Goodbye!")
}

func TestRunLoopEOF(t *testing.T) {
	in := strings.NewReader("createuser alice Smith\n")
	out := &bytes.Buffer{}
	s := New(registry.New(), in, out, Options{})

	s.Run()

	output := out.String()
	assert.Contains(t, output, "User 'alice' created successfully")
	assert.Contains(t, output, "Exiting...")
}

func TestQuitAliasesExit(t *testing.T) {
	in := strings.NewReader("quit\n")
	out := &bytes.Buffer{}
	s := New(registry.New(), in, out, Options{})

	s.Run()
	assert.Contains(t, out.String(), "Exiting Network File System. Goodbye!")
}

func TestPromptTracksWorkingDirectory(t *testing.T) {
	s, out := newTestShell()
	require.Equal(t, "guest@filesystem$ ", s.prompt())

	run(t, s, out, "createuser alice Smith", "login alice", "mkdir docs", "cd docs")
	require.Equal(t, "Smith@filesystem:/docs$ ", s.prompt())
}

// Package shell is the line-oriented front end: it tokenizes input, routes
// the leading token through a fixed command table, and prints whatever the
// namespace calls return. It holds no state of its own beyond the registry
// handle and the running flag.
package shell

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/nfsim/nfsim/internal/logger"
	"github.com/nfsim/nfsim/pkg/registry"
)

// handler executes one parsed command. Handlers print their own output,
// including usage lines for missing arguments.
type handler func(s *Shell, args []string)

// Options controls shell startup behavior.
type Options struct {
	// Banner prints the welcome banner before the first prompt
	Banner bool

	// ClearOnStart clears the screen before the banner
	ClearOnStart bool
}

// Shell runs the read-eval-print loop against a session registry.
//
// One command runs to completion before the next line is read; there is no
// background work and no partial-operation interleaving. A panicking
// handler is reported and the loop continues; a single bad command never
// takes the terminal down.
type Shell struct {
	registry *registry.Registry
	in       *bufio.Scanner
	out      io.Writer
	opts     Options
	running  bool
	commands map[string]handler
}

// New creates a shell reading commands from in and printing to out.
func New(reg *registry.Registry, in io.Reader, out io.Writer, opts Options) *Shell {
	s := &Shell{
		registry: reg,
		in:       bufio.NewScanner(in),
		out:      out,
		opts:     opts,
	}

	// Static dispatch table: exact lowercase command names, data not
	// reflection. "cat" aliases "read" and "quit" aliases "exit".
	s.commands = map[string]handler{
		"help":       (*Shell).helpCmd,
		"createuser": (*Shell).createUserCmd,
		"login":      (*Shell).loginCmd,
		"logout":     (*Shell).logoutCmd,
		"users":      (*Shell).usersCmd,
		"whoami":     (*Shell).whoamiCmd,
		"pwd":        (*Shell).pwdCmd,
		"ls":         (*Shell).lsCmd,
		"cd":         (*Shell).cdCmd,
		"mkdir":      (*Shell).mkdirCmd,
		"touch":      (*Shell).touchCmd,
		"write":      (*Shell).writeCmd,
		"read":       (*Shell).readCmd,
		"cat":        (*Shell).readCmd,
		"rm":         (*Shell).rmCmd,
		"mv":         (*Shell).mvCmd,
		"cp":         (*Shell).cpCmd,
		"clear":      (*Shell).clearCmd,
		"exit":       (*Shell).exitCmd,
		"quit":       (*Shell).exitCmd,
	}
	return s
}

// Run executes the read-eval-print loop until exit/quit or EOF.
func (s *Shell) Run() {
	s.running = true

	if s.opts.ClearOnStart {
		s.clearScreen()
	}
	if s.opts.Banner {
		s.printBanner()
	}

	for s.running {
		fmt.Fprint(s.out, s.prompt())
		if !s.in.Scan() {
			fmt.Fprintln(s.out, "\nExiting...")
			return
		}
		s.Execute(s.in.Text())
	}
}

// Execute parses and dispatches a single input line. Empty lines are
// no-ops; unknown commands print a fixed message and change no state.
func (s *Shell) Execute(line string) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(s.out, "Error executing command: %v\n", r)
		}
	}()

	parts := strings.Fields(line)
	if len(parts) == 0 {
		return
	}

	name := strings.ToLower(parts[0])
	args := parts[1:]

	cmd, known := s.commands[name]
	if !known {
		fmt.Fprintf(s.out, "Unknown command: %s. Type 'help' for available commands.\n", name)
		return
	}

	logger.Debug("dispatching command: %s (%d args)", name, len(args))
	cmd(s, args)
}

// prompt renders the active session's prompt, or the guest prompt when
// nobody is logged in.
func (s *Shell) prompt() string {
	if session := s.registry.Active(); session != nil {
		return session.Prompt()
	}
	return "guest@filesystem$ "
}

// requireSession returns the active session, printing the login reminder
// and returning nil when nobody is logged in.
func (s *Shell) requireSession() *registry.Session {
	session := s.registry.Active()
	if session == nil {
		fmt.Fprintln(s.out, "Error: No user logged in. Please login first.")
		return nil
	}
	return session
}

func (s *Shell) printBanner() {
	line := strings.Repeat("=", 60)
	fmt.Fprintln(s.out, line)
	fmt.Fprintln(s.out, "  NETWORK FILE SYSTEM SIMULATOR - Multi-User Environment")
	fmt.Fprintln(s.out, line)
	fmt.Fprintln(s.out, "Type 'help' for available commands")
	fmt.Fprintln(s.out, "Type 'createuser <username> <lastname>' to create a user")
	fmt.Fprintln(s.out, "Type 'login <username>' to login")
	fmt.Fprintln(s.out, strings.Repeat("-", 60))
}

// clearScreen emits the ANSI clear-and-home sequence rather than shelling
// out; the output writer may not be a real terminal.
func (s *Shell) clearScreen() {
	fmt.Fprint(s.out, "\033[2J\033[H")
}

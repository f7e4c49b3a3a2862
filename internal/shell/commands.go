package shell

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nfsim/nfsim/pkg/vfs"
)

const helpText = `
Available Commands:
==================

USER MANAGEMENT:
  createuser <username> <lastname>  - Create a new user account
  login <username>                  - Login as a user
  logout                            - Logout current user
  users                             - List all registered users
  whoami                            - Show current user information

FILE SYSTEM NAVIGATION:
  pwd                               - Print working directory
  ls                                - List directory contents
  cd <directory>                    - Change directory
  cd ..                             - Go to parent directory
  cd /                              - Go to root directory

FILE & DIRECTORY OPERATIONS:
  mkdir <dirname>                   - Create a new directory
  touch <filename>                  - Create an empty file
  write <filename> <content>        - Write content to a file
  read <filename>                   - Read file content
  cat <filename>                    - Read file content (alias for read)
  rm <name>                         - Delete a file or empty directory
  mv <source> <destination>         - Move file/directory to another directory
  cp <source> <destination>         - Copy a file

SYSTEM:
  clear                             - Clear the screen
  exit / quit                       - Exit the terminal

Note: Most file operations require you to be logged in as a user.
`

func (s *Shell) helpCmd(args []string) {
	fmt.Fprint(s.out, helpText)
}

func (s *Shell) createUserCmd(args []string) {
	if len(args) < 2 {
		fmt.Fprintln(s.out, "Usage: createuser <username> <lastname>")
		return
	}

	username, lastname := args[0], args[1]
	if err := s.registry.Register(username, lastname); err != nil {
		fmt.Fprintln(s.out, err.Error())
		return
	}
	fmt.Fprintf(s.out, "User '%s' created successfully\n", username)
}

func (s *Shell) loginCmd(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(s.out, "Usage: login <username>")
		return
	}

	session, err := s.registry.Activate(args[0])
	if err != nil {
		fmt.Fprintln(s.out, err.Error())
		return
	}
	fmt.Fprintf(s.out, "Welcome %s!\n", session.Lastname())
}

func (s *Shell) logoutCmd(args []string) {
	session, err := s.registry.Deactivate()
	if err != nil {
		fmt.Fprintln(s.out, err.Error())
		return
	}
	fmt.Fprintf(s.out, "User '%s' logged out\n", session.Username())
}

func (s *Shell) usersCmd(args []string) {
	sessions := s.registry.Sessions()
	if len(sessions) == 0 {
		fmt.Fprintln(s.out, "No users registered")
		return
	}

	fmt.Fprintln(s.out, "Registered Users:")
	for _, session := range sessions {
		status := " "
		if session.LoggedIn() {
			status = "*"
		}
		fmt.Fprintf(s.out, "  [%s] %s (%s)\n", status, session.Username(), session.Lastname())
	}
}

func (s *Shell) whoamiCmd(args []string) {
	session := s.registry.Active()
	if session == nil {
		fmt.Fprintln(s.out, "No user logged in")
		return
	}
	fmt.Fprintf(s.out, "Current user: %s (Last name: %s)\n", session.Username(), session.Lastname())
	fmt.Fprintf(s.out, "Working directory: %s\n", session.FS().CurrentPath())
}

func (s *Shell) pwdCmd(args []string) {
	session := s.requireSession()
	if session == nil {
		return
	}
	fmt.Fprintln(s.out, session.FS().CurrentPath())
}

const listTimeFormat = "2006-01-02 15:04:05"

func (s *Shell) lsCmd(args []string) {
	session := s.requireSession()
	if session == nil {
		return
	}

	infos := session.FS().List()
	if len(infos) == 0 {
		fmt.Fprintln(s.out, "(empty directory)")
		return
	}

	fmt.Fprintf(s.out, "%-12s %-20s %-10s %-15s %s\n", "Type", "Name", "Size", "Owner", "Modified")
	fmt.Fprintln(s.out, strings.Repeat("-", 80))

	for _, info := range infos {
		size := "<DIR>"
		timestamp := info.Created.Format(listTimeFormat)
		if info.Kind == vfs.KindFile {
			size = strconv.Itoa(info.Size)
			timestamp = info.Modified.Format(listTimeFormat)
		}
		fmt.Fprintf(s.out, "%-12s %-20s %-10s %-15s %s\n",
			info.Kind.String(), info.Name, size, info.Owner, timestamp)
	}
}

func (s *Shell) cdCmd(args []string) {
	session := s.requireSession()
	if session == nil {
		return
	}
	if len(args) < 1 {
		fmt.Fprintln(s.out, "Usage: cd <directory>")
		return
	}

	// Failures only; a successful cd is silent and shows up in the prompt
	if err := session.FS().ChangeDirectory(args[0]); err != nil {
		fmt.Fprintf(s.out, "Error: %s\n", err.Error())
	}
}

func (s *Shell) mkdirCmd(args []string) {
	session := s.requireSession()
	if session == nil {
		return
	}
	if len(args) < 1 {
		fmt.Fprintln(s.out, "Usage: mkdir <directory_name>")
		return
	}

	name := args[0]
	if err := session.FS().CreateDirectory(name, session.Username()); err != nil {
		fmt.Fprintln(s.out, err.Error())
		return
	}
	fmt.Fprintf(s.out, "Directory '%s' created successfully\n", name)
}

func (s *Shell) touchCmd(args []string) {
	session := s.requireSession()
	if session == nil {
		return
	}
	if len(args) < 1 {
		fmt.Fprintln(s.out, "Usage: touch <filename>")
		return
	}

	name := args[0]
	if err := session.FS().CreateFile(name, session.Username(), ""); err != nil {
		fmt.Fprintln(s.out, err.Error())
		return
	}
	fmt.Fprintf(s.out, "File '%s' created successfully\n", name)
}

func (s *Shell) writeCmd(args []string) {
	session := s.requireSession()
	if session == nil {
		return
	}
	if len(args) < 2 {
		fmt.Fprintln(s.out, "Usage: write <filename> <content>")
		return
	}

	name := args[0]
	content := strings.Join(args[1:], " ")
	created, err := session.FS().WriteFile(name, content, session.Username())
	if err != nil {
		fmt.Fprintln(s.out, err.Error())
		return
	}
	if created {
		fmt.Fprintf(s.out, "File '%s' created successfully\n", name)
		return
	}
	fmt.Fprintf(s.out, "File '%s' updated successfully\n", name)
}

func (s *Shell) readCmd(args []string) {
	session := s.requireSession()
	if session == nil {
		return
	}
	if len(args) < 1 {
		fmt.Fprintln(s.out, "Usage: read <filename>")
		return
	}

	name := args[0]
	content, err := session.FS().ReadFile(name)
	if err != nil {
		fmt.Fprintf(s.out, "Error: %s\n", err.Error())
		return
	}
	fmt.Fprintf(s.out, "--- Contents of '%s' ---\n", name)
	fmt.Fprintln(s.out, content)
	fmt.Fprintln(s.out, "--- End of file ---")
}

func (s *Shell) rmCmd(args []string) {
	session := s.requireSession()
	if session == nil {
		return
	}
	if len(args) < 1 {
		fmt.Fprintln(s.out, "Usage: rm <name>")
		return
	}

	name := args[0]
	if err := session.FS().Delete(name); err != nil {
		fmt.Fprintln(s.out, err.Error())
		return
	}
	fmt.Fprintf(s.out, "'%s' deleted successfully\n", name)
}

func (s *Shell) mvCmd(args []string) {
	session := s.requireSession()
	if session == nil {
		return
	}
	if len(args) < 2 {
		fmt.Fprintln(s.out, "Usage: mv <source> <destination_directory>")
		return
	}

	source, destination := args[0], args[1]
	if err := session.FS().Move(source, destination); err != nil {
		fmt.Fprintln(s.out, err.Error())
		return
	}
	fmt.Fprintf(s.out, "Moved '%s' to '%s'\n", source, destination)
}

func (s *Shell) cpCmd(args []string) {
	session := s.requireSession()
	if session == nil {
		return
	}
	if len(args) < 2 {
		fmt.Fprintln(s.out, "Usage: cp <source_file> <destination_file>")
		return
	}

	source, destination := args[0], args[1]
	if err := session.FS().CopyFile(source, destination, session.Username()); err != nil {
		fmt.Fprintln(s.out, err.Error())
		return
	}
	fmt.Fprintf(s.out, "File copied from '%s' to '%s'\n", source, destination)
}

func (s *Shell) clearCmd(args []string) {
	s.clearScreen()
}

func (s *Shell) exitCmd(args []string) {
	fmt.Fprintln(s.out, "Exiting Network File System. Goodbye!")
	s.running = false
}

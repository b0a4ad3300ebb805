package todo

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
)

// ErrInputClosed is returned by Run if the input ends before the user asks to save and quit. Nothing is saved in
// that case.
var ErrInputClosed = errors.New("input closed before save")

const menu = `
=== Todo List Manager ===
1. Add task
2. List tasks
3. Toggle task status
4. Save and quit
Choose an option: `

type sessionOption func(*Session) error

// WithInput is a session option to read the user's answers from r instead of standard input.
func WithInput(r io.Reader) sessionOption {
	return func(s *Session) error {
		s.in = bufio.NewReader(r)
		return nil
	}
}

// WithOutput is a session option to write menus, prompts and listings to w instead of standard output.
func WithOutput(w io.Writer) sessionOption {
	return func(s *Session) error {
		s.out = w
		return nil
	}
}

// WithLogEntry is a session option to log through the given entry, typically one carrying fields that identify
// the run.
func WithLogEntry(entry *log.Entry) sessionOption {
	return func(s *Session) error {
		if entry == nil {
			return errors.New("nil log entry")
		}
		s.log = entry
		return nil
	}
}

// Session is the interactive loop: it shows a menu, reads a choice, acts on the list, and repeats until the
// user chooses to save and quit. The session owns the list for its whole lifetime.
type Session struct {
	list     *List
	pathname string
	in       *bufio.Reader
	out      io.Writer
	log      *log.Entry
}

// NewSession creates a session over list which, on exit, will be saved to pathname.
func NewSession(list *List, pathname string, opts ...sessionOption) (*Session, error) {
	if list == nil {
		list = NewList()
	}
	s := &Session{
		list:     list,
		pathname: pathname,
		in:       bufio.NewReader(os.Stdin),
		out:      os.Stdout,
		log:      log.NewEntry(log.StandardLogger()),
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// List returns the list the session operates on.
func (s *Session) List() *List {
	return s.list
}

// Run loops until the user saves and quits, in which case it returns the result of saving. It also returns
// early, with ErrInputClosed, if the input runs out. Invalid menu choices are reported to the user; a task
// number that isn't a number, or doesn't refer to a task, is silently ignored.
func (s *Session) Run() error {
	for {
		_, _ = fmt.Fprint(s.out, menu)
		choice, err := s.readLine()
		if err != nil {
			return err
		}
		switch choice {
		case "1":
			if err := s.add(); err != nil {
				return err
			}
		case "2":
			s.print()
		case "3":
			if err := s.toggle(); err != nil {
				return err
			}
		case "4":
			return s.save()
		default:
			s.log.WithField("choice", choice).Debug("Invalid menu choice")
			_, _ = fmt.Fprintln(s.out, "Invalid option!")
		}
	}
}

func (s *Session) add() error {
	_, _ = fmt.Fprint(s.out, "Enter task description: ")
	description, err := s.readLine()
	if err != nil {
		return err
	}
	s.list.Add(description)
	s.log.WithField("position", s.list.Len()).Debug("Added task")
	return nil
}

func (s *Session) print() {
	for i, task := range s.list.Tasks() {
		mark := " "
		if task.Completed {
			mark = "x"
		}
		_, _ = fmt.Fprintf(s.out, "%d. [%s] %s\n", i+1, mark, task.Description)
	}
}

func (s *Session) toggle() error {
	_, _ = fmt.Fprint(s.out, "Enter task number to toggle: ")
	answer, err := s.readLine()
	if err != nil {
		return err
	}
	position, err := strconv.Atoi(answer)
	if err != nil || position < 1 {
		s.log.WithField("answer", answer).Debug("Ignoring task number that is not a positive integer")
		return nil
	}
	if !s.list.Toggle(position - 1) {
		s.log.WithFields(log.Fields{
			"position": position,
			"tasks":    s.list.Len(),
		}).Debug("Ignoring task number out of range")
	}
	return nil
}

func (s *Session) save() error {
	if err := s.list.Save(s.pathname); err != nil {
		return err
	}
	s.log.WithFields(log.Fields{
		"path":  s.pathname,
		"tasks": s.list.Len(),
	}).Info("Saved tasks")
	return nil
}

// readLine returns the next line of input without surrounding whitespace. A last line lacking the newline is
// still returned; after that, the error is ErrInputClosed.
func (s *Session) readLine() (string, error) {
	line, err := s.in.ReadString('\n')
	if err == io.EOF {
		if line == "" {
			return "", ErrInputClosed
		}
		err = nil
	}
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

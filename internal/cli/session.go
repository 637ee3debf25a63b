package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/idilsaglam/tasks/internal/store"
	"github.com/idilsaglam/tasks/internal/ui"
)

// Menu selections, numbered as shown to the user.
const (
	actionAdd = iota + 1
	actionRemove
	actionViewAll
	actionViewCompleted
	actionViewPending
	actionMarkComplete
	actionChangePriority
	actionExit
)

var menuItems = []string{
	"Add task",
	"Remove task",
	"View all tasks",
	"View completed tasks",
	"View pending tasks",
	"Mark task as complete",
	"Change task priority",
	"Exit",
}

// User-facing messages.
const (
	msgNotANumber      = "Invalid input. Please enter a number between 1-8."
	msgWrongChoice     = "Wrong Input: Try Again"
	msgNoTasks         = "No tasks found."
	msgBadTaskNumber   = "Invalid task number."
	msgBadPriority     = "Invalid priority. Must be between 1 and 5."
	msgEmptyDesc       = "Task description cannot be empty."
	msgAdded           = "Task added successfully!"
	msgRemoved         = "Task removed successfully!"
	msgCompleted       = "Task marked as completed!"
	msgPriorityUpdated = "Priority updated successfully!"
	msgExit            = "Exiting...."
)

var errInputEnded = errors.New("input ended")

// Session is one interactive menu loop over a TaskStore.
// Every bad input aborts the current operation back to the menu.
type Session struct {
	store  *store.TaskStore
	in     *bufio.Reader
	eof    bool  // input exhausted
	err    error // read error other than io.EOF
	out    io.Writer
	errOut io.Writer
	log    *log.Logger
}

// NewSession wires a session to its store and streams.
func NewSession(st *store.TaskStore, in io.Reader, out, errOut io.Writer, logger *log.Logger) *Session {
	return &Session{
		store:  st,
		in:     bufio.NewReader(in),
		out:    out,
		errOut: errOut,
		log:    logger,
	}
}

// Run loops until the user exits or input ends. Only read errors are returned.
func (s *Session) Run() error {
	for {
		s.printMenu()
		line, ok := s.readLine()
		if !ok {
			fmt.Fprintln(s.out, msgExit)
			return s.err
		}
		choice, err := strconv.Atoi(line)
		if err != nil {
			s.log.Debug("rejected menu input", "input", line)
			ui.Fail(s.errOut, msgNotANumber)
			continue
		}
		if choice == actionExit {
			fmt.Fprintln(s.out, msgExit)
			return nil
		}
		s.dispatch(choice)
	}
}

func (s *Session) dispatch(choice int) {
	switch choice {
	case actionAdd:
		s.add()
	case actionRemove:
		s.remove()
	case actionViewAll:
		s.viewAll()
	case actionViewCompleted:
		s.viewFiltered("Completed Tasks:", s.store.Completed())
	case actionViewPending:
		s.viewFiltered("Pending Tasks:", s.store.Pending())
	case actionMarkComplete:
		s.markComplete()
	case actionChangePriority:
		s.changePriority()
	default:
		s.log.Debug("rejected menu choice", "choice", choice)
		ui.Fail(s.errOut, msgWrongChoice)
	}
}

func (s *Session) printMenu() {
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, ui.C(ui.Current().Title, "Please enter your choice:"))
	for i, item := range menuItems {
		fmt.Fprintf(s.out, "%d. %s\n", i+1, item)
	}
}

func (s *Session) add() {
	fmt.Fprintln(s.out, "Enter task description:")
	desc, ok := s.readLine()
	if !ok {
		return
	}
	if desc == "" {
		s.reject("add", store.ErrEmptyDescription)
		return
	}
	fmt.Fprintln(s.out, "Enter task priority (1-5):")
	priority, err := s.readInt()
	if err != nil {
		if !errors.Is(err, errInputEnded) {
			ui.Fail(s.errOut, msgBadPriority)
		}
		return
	}
	if err := s.store.Add(desc, priority); err != nil {
		s.reject("add", err)
		return
	}
	s.log.Debug("task added", "position", s.store.Len(), "priority", priority)
	ui.OK(s.out, msgAdded)
}

func (s *Session) remove() {
	position, ok := s.pickTask("Enter the task number to remove:")
	if !ok {
		return
	}
	if err := s.store.Remove(position); err != nil {
		s.reject("remove", err)
		return
	}
	s.log.Debug("task removed", "position", position)
	ui.OK(s.out, msgRemoved)
}

func (s *Session) markComplete() {
	position, ok := s.pickTask("Enter the task number to mark as completed:")
	if !ok {
		return
	}
	if err := s.store.MarkComplete(position); err != nil {
		s.reject("mark complete", err)
		return
	}
	s.log.Debug("task completed", "position", position)
	ui.OK(s.out, msgCompleted)
}

func (s *Session) changePriority() {
	position, ok := s.pickTask("Enter the task number to change priority:")
	if !ok {
		return
	}
	// Validate the position before asking for the priority.
	if _, err := s.store.Get(position); err != nil {
		s.reject("change priority", err)
		return
	}
	fmt.Fprintln(s.out, "Enter new priority (1-5):")
	priority, err := s.readInt()
	if err != nil {
		if !errors.Is(err, errInputEnded) {
			ui.Fail(s.errOut, msgBadPriority)
		}
		return
	}
	if err := s.store.ChangePriority(position, priority); err != nil {
		s.reject("change priority", err)
		return
	}
	s.log.Debug("priority changed", "position", position, "priority", priority)
	ui.OK(s.out, msgPriorityUpdated)
}

// pickTask shows the list and reads a task number. It reports false when
// the store is empty or the input is not a number; the caller just returns.
func (s *Session) pickTask(prompt string) (int, bool) {
	if s.store.Len() == 0 {
		ui.Fail(s.errOut, message(store.ErrEmptyStore))
		return 0, false
	}
	s.viewAll()
	fmt.Fprintln(s.out, prompt)
	n, err := s.readInt()
	if err != nil {
		if !errors.Is(err, errInputEnded) {
			ui.Fail(s.errOut, msgBadTaskNumber)
		}
		return 0, false
	}
	return n, true
}

func (s *Session) reject(op string, err error) {
	s.log.Debug("rejected", "op", op, "err", err)
	ui.Fail(s.errOut, message(err))
}

// readLine returns the next trimmed line; false means input is exhausted.
// Lines have no length limit. A final line without a newline still counts.
func (s *Session) readLine() (string, bool) {
	if s.eof {
		return "", false
	}
	line, err := s.in.ReadString('\n')
	if err != nil {
		s.eof = true
		if !errors.Is(err, io.EOF) {
			s.err = err
			return "", false
		}
		if line == "" {
			return "", false
		}
	}
	return strings.TrimSpace(line), true
}

// readInt reads a line and parses it as an integer.
func (s *Session) readInt() (int, error) {
	line, ok := s.readLine()
	if !ok {
		return 0, errInputEnded
	}
	n, err := strconv.Atoi(line)
	if err != nil {
		s.log.Debug("rejected numeric input", "input", line)
		return 0, err
	}
	return n, nil
}

// message maps a store rejection to the text shown to the user.
func message(err error) string {
	switch {
	case errors.Is(err, store.ErrEmptyStore):
		return msgNoTasks
	case errors.Is(err, store.ErrIndexOutOfRange):
		return msgBadTaskNumber
	case errors.Is(err, store.ErrInvalidPriority):
		return msgBadPriority
	case errors.Is(err, store.ErrEmptyDescription):
		return msgEmptyDesc
	default:
		return err.Error()
	}
}

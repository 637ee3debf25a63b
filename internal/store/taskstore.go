// Package store holds the in-memory task list for a single session.
// Positions are 1-based and derived from the current order on every call;
// nothing caches them. Not safe for concurrent use; the owning loop is the
// only caller.
package store

import (
	"errors"
	"fmt"
	"iter"
	"slices"

	"github.com/idilsaglam/tasks/internal/model"
)

var (
	ErrEmptyStore       = errors.New("no tasks found")
	ErrIndexOutOfRange  = errors.New("task number out of range")
	ErrInvalidPriority  = errors.New("priority must be between 1 and 5")
	ErrEmptyDescription = errors.New("description cannot be empty")
)

// Entry is a task annotated with its current position.
type Entry struct {
	Position int
	Task     model.Task
}

// TaskStore holds tasks in insertion order.
type TaskStore struct {
	tasks []model.Task
}

// New returns an empty store.
func New() *TaskStore {
	return &TaskStore{}
}

// Len returns the number of tasks.
func (s *TaskStore) Len() int { return len(s.tasks) }

// Add appends a pending task. The description is trimmed first.
func (s *TaskStore) Add(description string, priority int) error {
	if !model.ValidPriority(priority) {
		return fmt.Errorf("add: %w (got %d)", ErrInvalidPriority, priority)
	}
	description = model.NormalizeDescription(description)
	if description == "" {
		return fmt.Errorf("add: %w", ErrEmptyDescription)
	}
	s.tasks = append(s.tasks, model.New(description, priority))
	return nil
}

// Remove deletes the task at position; later tasks shift down by one.
func (s *TaskStore) Remove(position int) error {
	idx, err := s.index(position)
	if err != nil {
		return fmt.Errorf("remove: %w", err)
	}
	s.tasks = slices.Delete(s.tasks, idx, idx+1)
	return nil
}

// MarkComplete sets the completed flag. Marking a completed task again is a no-op.
func (s *TaskStore) MarkComplete(position int) error {
	idx, err := s.index(position)
	if err != nil {
		return fmt.Errorf("mark complete: %w", err)
	}
	s.tasks[idx].Completed = true
	return nil
}

// ChangePriority overwrites the priority of the task at position.
func (s *TaskStore) ChangePriority(position, priority int) error {
	idx, err := s.index(position)
	if err != nil {
		return fmt.Errorf("change priority: %w", err)
	}
	if !model.ValidPriority(priority) {
		return fmt.Errorf("change priority: %w (got %d)", ErrInvalidPriority, priority)
	}
	s.tasks[idx].Priority = priority
	return nil
}

// Get returns a copy of the task at position.
func (s *TaskStore) Get(position int) (model.Task, error) {
	idx, err := s.index(position)
	if err != nil {
		return model.Task{}, err
	}
	return s.tasks[idx], nil
}

// List returns every task with its position. The slice is a copy.
func (s *TaskStore) List() []Entry {
	out := make([]Entry, 0, len(s.tasks))
	for i, t := range s.tasks {
		out = append(out, Entry{Position: i + 1, Task: t})
	}
	return out
}

// Completed yields completed tasks keyed by position, in store order.
func (s *TaskStore) Completed() iter.Seq2[int, model.Task] {
	return s.filter(true)
}

// Pending yields tasks not yet completed, keyed by position.
func (s *TaskStore) Pending() iter.Seq2[int, model.Task] {
	return s.filter(false)
}

// Stats counts completed and pending tasks.
func (s *TaskStore) Stats() (done, pending int) {
	for _, t := range s.tasks {
		if t.Completed {
			done++
		} else {
			pending++
		}
	}
	return
}

func (s *TaskStore) filter(completed bool) iter.Seq2[int, model.Task] {
	return func(yield func(int, model.Task) bool) {
		for i, t := range s.tasks {
			if t.Completed != completed {
				continue
			}
			if !yield(i+1, t) {
				return
			}
		}
	}
}

// index converts a 1-based position into a slice index.
func (s *TaskStore) index(position int) (int, error) {
	if len(s.tasks) == 0 {
		return 0, ErrEmptyStore
	}
	if position < 1 || position > len(s.tasks) {
		return 0, fmt.Errorf("%w: have %d, got %d", ErrIndexOutOfRange, len(s.tasks), position)
	}
	return position - 1, nil
}

package model

import "strings"

// Priority bounds, inclusive.
const (
	MinPriority = 1
	MaxPriority = 5
)

// Task is the domain model for a tracked task.
type Task struct {
	Description string
	Priority    int
	Completed   bool
}

// New returns a pending task. It does not validate; callers go through the store.
func New(description string, priority int) Task {
	return Task{Description: description, Priority: priority}
}

// ValidPriority reports whether p lies in [MinPriority, MaxPriority].
func ValidPriority(p int) bool {
	return p >= MinPriority && p <= MaxPriority
}

// NormalizeDescription trims surrounding whitespace.
func NormalizeDescription(s string) string {
	return strings.TrimSpace(s)
}

// Package store holds the in-memory ordered task collection that lives
// for the duration of an interactive session.
package store

import (
	"errors"
	"fmt"

	"github.com/todoz-cli/todoz/internal/task"
)

// ErrNotFound is returned when no task matches a requested id.
var ErrNotFound = errors.New("task not found")

// Store is an ordered collection of tasks. Insertion order is display
// order; removal compacts without renumbering the survivors.
type Store struct {
	tasks  []task.Task
	nextID uint64
}

// New creates an empty store.
func New() *Store {
	return &Store{nextID: 1}
}

// FromTasks builds a store over previously persisted tasks. The id
// counter seeds from the highest existing id, and removals never
// decrement it, so ids are not reused within a session.
func FromTasks(tasks []task.Task) *Store {
	s := &Store{tasks: append([]task.Task(nil), tasks...)}
	s.nextID = task.NextID(s.tasks)
	return s
}

// Add validates the description, appends a new uncompleted task with a
// fresh id, and returns it. A failed validation leaves the store unchanged.
func (s *Store) Add(description string) (task.Task, error) {
	if err := task.ValidateDescription(description); err != nil {
		return task.Task{}, err
	}
	t := task.New(s.nextID, task.TrimDescription(description))
	s.nextID++
	s.tasks = append(s.tasks, t)
	return t, nil
}

// Tasks returns a copy of the tasks in display order.
func (s *Store) Tasks() []task.Task {
	return append([]task.Task(nil), s.tasks...)
}

// Len returns the number of tasks in the store.
func (s *Store) Len() int {
	return len(s.tasks)
}

// Toggle flips the completed flag on the task with the given id and
// returns the updated task.
func (s *Store) Toggle(id uint64) (task.Task, error) {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks[i].Completed = !s.tasks[i].Completed
			return s.tasks[i], nil
		}
	}
	return task.Task{}, fmt.Errorf("task %d: %w", id, ErrNotFound)
}

// Remove deletes the task with the given id and returns it.
func (s *Store) Remove(id uint64) (task.Task, error) {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			removed := s.tasks[i]
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return removed, nil
		}
	}
	return task.Task{}, fmt.Errorf("task %d: %w", id, ErrNotFound)
}

// RemoveAll empties the store. The id counter is deliberately left
// alone so cleared ids are not handed out again in the same session.
func (s *Store) RemoveAll() {
	s.tasks = nil
}

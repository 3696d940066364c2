package cli

import (
	"fmt"
	"io"

	"github.com/todoz-cli/todoz/internal/task"
)

// Formatter renders the task list and simple messages for one output
// format.
type Formatter interface {
	// FormatTaskList renders all tasks in display order.
	FormatTaskList(w io.Writer, tasks []task.Task) error

	// FormatMessage renders a simple one-line message.
	FormatMessage(w io.Writer, msg string) error
}

// PrettyFormatter is the human-readable format used at the interactive
// prompt: one "<id> [<x| >]: <description>" line per task.
type PrettyFormatter struct{}

// FormatTaskList renders one line per task. Empty lists produce
// "No tasks in the list." instead.
func (f *PrettyFormatter) FormatTaskList(w io.Writer, tasks []task.Task) error {
	if len(tasks) == 0 {
		_, err := fmt.Fprintln(w, "No tasks in the list.")
		return err
	}
	for _, t := range tasks {
		mark := " "
		if t.Completed {
			mark = "x"
		}
		if _, err := fmt.Fprintf(w, "%d [%s]: %s\n", t.ID, mark, t.Description); err != nil {
			return err
		}
	}
	return nil
}

// FormatMessage renders the message as a plain line.
func (f *PrettyFormatter) FormatMessage(w io.Writer, msg string) error {
	_, err := fmt.Fprintln(w, msg)
	return err
}

package cli

import (
	"fmt"
	"io"

	toon "github.com/toon-format/toon-go"

	"github.com/todoz-cli/todoz/internal/task"
)

// ToonFormatter renders output in TOON (Token-Oriented Object
// Notation), a compact tabular format suited to agent consumption.
type ToonFormatter struct{}

// FormatTaskList renders tasks in TOON tabular format. Empty lists
// produce the schema header with no rows.
func (f *ToonFormatter) FormatTaskList(w io.Writer, tasks []task.Task) error {
	if len(tasks) == 0 {
		_, err := fmt.Fprintln(w, "tasks[0]{id,description,completed}:")
		return err
	}

	objects := make([]toon.Object, len(tasks))
	for i, t := range tasks {
		objects[i] = toon.NewObject(
			toon.Field{Key: "id", Value: t.ID},
			toon.Field{Key: "description", Value: t.Description},
			toon.Field{Key: "completed", Value: t.Completed},
		)
	}

	doc := toon.NewObject(
		toon.Field{Key: "tasks", Value: objects},
	)
	out, err := toon.MarshalString(doc)
	if err != nil {
		return fmt.Errorf("toon marshal error: %w", err)
	}
	_, err = fmt.Fprintln(w, out)
	return err
}

// FormatMessage renders the message as a plain line.
func (f *ToonFormatter) FormatMessage(w io.Writer, msg string) error {
	_, err := fmt.Fprintln(w, msg)
	return err
}

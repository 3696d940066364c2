package cli

import (
	"encoding/json"
	"io"

	"github.com/todoz-cli/todoz/internal/task"
)

// JSONFormatter renders output as indented JSON, matching the on-disk
// persistence format.
type JSONFormatter struct{}

// FormatTaskList renders tasks as a JSON array. Empty lists produce [].
func (f *JSONFormatter) FormatTaskList(w io.Writer, tasks []task.Task) error {
	if tasks == nil {
		tasks = []task.Task{}
	}
	return jsonWrite(w, tasks)
}

// FormatMessage renders the message as a JSON object.
func (f *JSONFormatter) FormatMessage(w io.Writer, msg string) error {
	obj := struct {
		Message string `json:"message"`
	}{Message: msg}
	return jsonWrite(w, obj)
}

// jsonWrite encodes v as 2-space indented JSON and writes it to w.
func jsonWrite(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

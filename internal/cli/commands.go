package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// cmdList prints every task in display order, or the empty-list message.
func (a *App) cmdList() {
	a.fmtr.FormatTaskList(a.Stdout, a.store.Tasks())
}

// cmdAdd appends a new task and echoes the updated list.
func (a *App) cmdAdd(arg string) error {
	t, err := a.store.Add(arg)
	if err != nil {
		return err
	}
	a.persist()
	a.say("Added task %d.", t.ID)
	a.cmdList()
	return nil
}

// cmdToggle flips completion on the task named by arg.
func (a *App) cmdToggle(arg string) error {
	id, err := parseID(arg)
	if err != nil {
		return err
	}
	t, err := a.store.Toggle(id)
	if err != nil {
		return err
	}
	a.persist()
	a.say("Task %d updated.", t.ID)
	a.cmdList()
	return nil
}

// cmdRemove deletes the task named by arg.
func (a *App) cmdRemove(arg string) error {
	id, err := parseID(arg)
	if err != nil {
		return err
	}
	t, err := a.store.Remove(id)
	if err != nil {
		return err
	}
	a.persist()
	a.say("Task %d removed.", t.ID)
	a.cmdList()
	return nil
}

// cmdRemoveAll clears the store unconditionally.
func (a *App) cmdRemoveAll() {
	a.store.RemoveAll()
	a.persist()
	a.say("All tasks removed.")
}

// cmdExport prints the full task list in a machine-readable format.
func (a *App) cmdExport(arg string) error {
	var f Formatter
	switch strings.TrimSpace(arg) {
	case "", "json":
		f = &JSONFormatter{}
	case "toon":
		f = &ToonFormatter{}
	default:
		return fmt.Errorf("unknown export format %q (want json or toon)", arg)
	}
	return f.FormatTaskList(a.Stdout, a.store.Tasks())
}

// cmdPom runs the configured focus-timer countdown. Blocks until done.
func (a *App) cmdPom() {
	focus := time.Duration(a.cfg.Pomodoro.Minutes) * time.Minute
	brk := time.Duration(a.cfg.Pomodoro.BreakMinutes) * time.Minute
	a.timer(a.Stdout, focus, brk)
}

func (a *App) cmdHelp() {
	fmt.Fprintln(a.Stdout, "Commands:")
	fmt.Fprintln(a.Stdout, "  list                Show all tasks")
	fmt.Fprintln(a.Stdout, "  add <text>          Add a task (alias: +)")
	fmt.Fprintln(a.Stdout, "  x <id>              Toggle a task's completion")
	fmt.Fprintln(a.Stdout, "  rm <id>             Remove a task")
	fmt.Fprintln(a.Stdout, "  rm-all              Remove all tasks")
	fmt.Fprintln(a.Stdout, "  export [json|toon]  Print tasks in a machine-readable format")
	fmt.Fprintln(a.Stdout, "  pom                 Start a focus timer")
	fmt.Fprintln(a.Stdout, "  help                Show this help")
	fmt.Fprintln(a.Stdout, "  quit                Save and exit")
}

// parseID parses a task id argument. The remainder is already trimmed
// by splitInput.
func parseID(arg string) (uint64, error) {
	if arg == "" {
		return 0, fmt.Errorf("a task id is required")
	}
	id, err := strconv.ParseUint(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid task id %q", arg)
	}
	return id, nil
}

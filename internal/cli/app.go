// Package cli implements the interactive todoz command interpreter.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/todoz-cli/todoz/internal/config"
	"github.com/todoz-cli/todoz/internal/pomodoro"
	"github.com/todoz-cli/todoz/internal/storage"
	"github.com/todoz-cli/todoz/internal/store"
)

const prompt = "> "

// App is the interactive todoz application. It reads commands from
// Stdin one line at a time and owns the task store for the session.
type App struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// DataPath overrides the todos file location. Empty means
	// storage.DefaultPath().
	DataPath string
	// ConfigPath overrides the settings file location. Empty means
	// config.DefaultPath().
	ConfigPath string

	store *store.Store
	path  string
	cfg   config.Config
	fmtr  Formatter

	// dirty is set when a mutation succeeded but its save did not, so
	// quit knows there is unsaved state left to flush.
	dirty bool

	// timer runs the focus countdown; replaced in tests.
	timer func(w io.Writer, focus, brk time.Duration)
}

// Run loads persisted state, then drives the prompt/read/dispatch loop
// until `quit` or end of input. Returns the process exit code.
func (a *App) Run() int {
	if a.timer == nil {
		a.timer = pomodoro.Run
	}
	if a.fmtr == nil {
		a.fmtr = &PrettyFormatter{}
	}
	a.loadState()
	a.loadSettings()
	a.printWelcome()

	scanner := bufio.NewScanner(a.Stdin)
	for {
		fmt.Fprint(a.Stdout, prompt)
		if !scanner.Scan() {
			// End of input behaves as quit.
			break
		}
		line := strings.TrimSpace(scanner.Text())
		cmd, arg := splitInput(line)
		if cmd == "quit" {
			break
		}
		a.dispatch(cmd, arg)
	}

	if a.dirty {
		a.persist()
	}
	return 0
}

// loadState resolves the todos file path and loads it into the store.
// Every failure degrades to an empty store with a one-line warning; a
// broken data file must not keep the session from starting.
func (a *App) loadState() {
	a.path = a.DataPath
	if a.path == "" {
		p, err := storage.DefaultPath()
		if err != nil {
			fmt.Fprintf(a.Stderr, "warning: %v (tasks will not be saved)\n", err)
		}
		a.path = p
	}

	tasks, err := storage.Load(a.path)
	if err != nil {
		fmt.Fprintf(a.Stderr, "warning: %v (starting with an empty list)\n", err)
		tasks = nil
	}
	a.store = store.FromTasks(tasks)
}

// loadSettings reads the optional config file, falling back to defaults
// with a warning on any failure.
func (a *App) loadSettings() {
	path := a.ConfigPath
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			a.cfg = config.Default()
			return
		}
		path = p
	}

	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(a.Stderr, "warning: %v (using default settings)\n", err)
	}
	a.cfg = cfg
}

// dispatch routes one parsed input line to its handler. Handler errors
// are printed and the loop continues; nothing here is fatal.
func (a *App) dispatch(cmd, arg string) {
	var err error
	switch cmd {
	case "", "list":
		a.cmdList()
	case "add", "+":
		err = a.cmdAdd(arg)
	case "x":
		err = a.cmdToggle(arg)
	case "rm":
		err = a.cmdRemove(arg)
	case "rm-all":
		a.cmdRemoveAll()
	case "export":
		err = a.cmdExport(arg)
	case "pom":
		a.cmdPom()
	case "help":
		a.cmdHelp()
	default:
		a.say("Unknown command %q. Type 'help' for usage.", cmd)
	}

	if err != nil {
		fmt.Fprintf(a.Stderr, "Error: %s\n", err)
	}
}

// say emits a one-line message through the session formatter.
func (a *App) say(format string, args ...any) {
	a.fmtr.FormatMessage(a.Stdout, fmt.Sprintf(format, args...))
}

// persist saves the current store to disk. A failed save is a warning,
// not a session killer: the in-memory state is kept and retried on the
// next mutation or at quit. Skipped entirely when the path could not be
// resolved; loadState already warned that tasks will not be saved.
func (a *App) persist() {
	if a.path == "" {
		return
	}
	if err := storage.Save(a.path, a.store.Tasks()); err != nil {
		fmt.Fprintf(a.Stderr, "warning: could not save tasks: %v\n", err)
		a.dirty = true
		return
	}
	a.dirty = false
}

// splitInput splits a trimmed input line into the command token and the
// untokenized remainder. The remainder may contain spaces; no quoting
// is supported.
func splitInput(line string) (cmd, arg string) {
	cmd, arg, _ = strings.Cut(line, " ")
	return cmd, strings.TrimSpace(arg)
}

func (a *App) printWelcome() {
	fmt.Fprintln(a.Stdout, "todoz: a small todo list")
	fmt.Fprintln(a.Stdout, "Type 'list' to see your tasks, or 'help' for commands.")
}

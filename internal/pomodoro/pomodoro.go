// Package pomodoro implements the blocking focus-timer countdown behind
// the interactive `pom` command.
package pomodoro

import (
	"fmt"
	"io"
	"time"
)

// Run counts down a focus session on w, then prints a completion
// message suggesting a break of the given length. It blocks until the
// session ends.
func Run(w io.Writer, focus, brk time.Duration) {
	fmt.Fprintln(w, "Focus session started. Pick one task and stay with it.")
	Countdown(w, focus, time.Second)
	fmt.Fprintf(w, "Time's up! Take a %d-minute break.\n", int(brk.Minutes()))
}

// Countdown blocks until d has elapsed, rewriting the remaining time in
// place on w once per step.
func Countdown(w io.Writer, d, step time.Duration) {
	if step <= 0 {
		step = time.Second
	}
	deadline := time.Now().Add(d)
	for {
		remaining := time.Until(deadline)
		if remaining <= 0 {
			break
		}
		fmt.Fprintf(w, "\r  %s remaining", Render(remaining))
		if remaining < step {
			step = remaining
		}
		time.Sleep(step)
	}
	fmt.Fprintf(w, "\r  %s remaining\n", Render(0))
}

// Render formats a remaining duration as MM:SS. Partial seconds round
// up so the display never reads 00:00 while time remains.
func Render(remaining time.Duration) string {
	if remaining < 0 {
		remaining = 0
	}
	secs := int((remaining + time.Second - 1) / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}

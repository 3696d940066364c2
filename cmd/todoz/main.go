// Package main is the entry point for the todoz CLI.
package main

import (
	"os"

	"github.com/todoz-cli/todoz/internal/cli"
)

func main() {
	app := &cli.App{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
	os.Exit(app.Run())
}

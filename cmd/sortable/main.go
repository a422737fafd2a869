// Command sortable lays out sortable collections and replays drag gestures
// against them.
//
// Usage:
//
//	sortable layout scene.toml      Print the slot of every item
//	sortable simulate scene.toml    Replay the scene's scripted steps
//	sortable demo                   Drag items around in the terminal
package main

import (
	"os"

	"github.com/grindlemire/go-sortable/internal/cli"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.SetVersion(version, commit, date)
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

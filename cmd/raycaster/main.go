// Package main is the raycaster command line
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "raycaster",
		Short: "First-person grid world ray casting renderer",
		Long: `raycaster renders a square grid world from a first-person viewpoint using
per-column ray casting, in a terminal or a desktop window, with a minimap overlay.`,
		SilenceUsage: true,
	}
	root.AddCommand(newRunCmd(), newValidateCmd(), newMazeCmd(), newSnapshotCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

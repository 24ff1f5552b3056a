package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/raycaster/world"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <map.yaml>",
		Short: "Check a map file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := world.LoadMap(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "ok: %s\n", args[0])
			fmt.Fprintf(out, "size: %d\n", m.World.Size())
			fmt.Fprintf(out, "open cells: %d\n", m.World.OpenCells())
			if m.Spawn != nil {
				fmt.Fprintf(out, "spawn: (%.2f, %.2f)\n", m.Spawn.X, m.Spawn.Y)
			}
			return nil
		},
	}
}

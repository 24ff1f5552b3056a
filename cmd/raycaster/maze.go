package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/raycaster/parameter"
	"github.com/lixenwraith/raycaster/world"
)

func newMazeCmd() *cobra.Command {
	var (
		cfg       world.MazeConfig
		materials []int
		out       string
	)
	cmd := &cobra.Command{
		Use:   "maze",
		Short: "Generate a maze map file",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, m := range materials {
				cfg.Materials = append(cfg.Materials, world.Cell(m))
			}
			m, err := world.GenerateMaze(cfg)
			if err != nil {
				return err
			}
			m.Name = fmt.Sprintf("maze-%d", cfg.Size)

			if out == "" {
				data, err := world.EncodeMap(m)
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := world.SaveMap(out, m); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d open cells)\n", out, m.World.OpenCells())
			return nil
		},
	}

	f := cmd.Flags()
	f.IntVar(&cfg.Size, "size", parameter.MazeDefaultSize, "grid edge length")
	f.Int64Var(&cfg.Seed, "seed", 0, "random seed, 0 for time based")
	f.Float64Var(&cfg.Braiding, "braiding", parameter.MazeDefaultBraiding, "0 keeps a perfect maze, 1 removes every dead end")
	f.IntSliceVar(&materials, "materials", []int{1, 2, 3}, "wall codes, the first is the base material")
	f.Float64Var(&cfg.AccentChance, "accent", 0.1, "chance a wall uses an accent material")
	f.StringVar(&out, "out", "", "output file (default: stdout)")
	return cmd
}

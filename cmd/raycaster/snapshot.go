package main

import (
	"fmt"
	"image/png"
	"os"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/raycaster/core"
	"github.com/lixenwraith/raycaster/logger"
	"github.com/lixenwraith/raycaster/render"
)

func newSnapshotCmd() *cobra.Command {
	var (
		configPath string
		mapPath    string
		out        string
		minimapOut string
		flat       bool
	)
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Render one frame from the starting pose to PNG",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("map") {
				cfg.World.Map = mapPath
			}
			if cmd.Flags().Changed("flat") {
				cfg.Render.Flat = flat
			}

			log, closeLog, err := logger.New(cfg.Log)
			if err != nil {
				return err
			}
			defer closeLog()

			sess, err := newSession(cfg, log)
			if err != nil {
				return err
			}

			frame, minimap := sess.renderer.Draw(sess.game)
			if minimapOut != "" && minimap != nil {
				if err := writePNG(minimapOut, minimap); err != nil {
					return err
				}
			}

			view := core.NewPixelBuffer(0, 0)
			view.CopyFrom(frame)
			render.Composite(view, minimap, cfg.Minimap.Margin)
			if err := writePNG(out, view); err != nil {
				return err
			}

			log.Infow("snapshot written", "out", out, "minimap", minimapOut)
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%dx%d)\n", out, view.Width(), view.Height())
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&out, "out", "view.png", "main view output")
	f.StringVar(&minimapOut, "minimap", "", "also write the minimap alone to this file")
	f.StringVar(&configPath, "config", "", "YAML config file")
	f.StringVar(&mapPath, "map", "", "YAML map file (default: built-in reference world)")
	f.BoolVar(&flat, "flat", false, "draw walls in flat colors instead of textures")
	return cmd
}

func writePNG(path string, buf *core.PixelBuffer) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, buf.Image()); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

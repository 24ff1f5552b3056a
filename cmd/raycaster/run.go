package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lixenwraith/raycaster/audio"
	"github.com/lixenwraith/raycaster/config"
	"github.com/lixenwraith/raycaster/engine"
	"github.com/lixenwraith/raycaster/logger"
	"github.com/lixenwraith/raycaster/network"
	"github.com/lixenwraith/raycaster/parameter"
	"github.com/lixenwraith/raycaster/terminal"
	"github.com/lixenwraith/raycaster/window"
)

type runOptions struct {
	configPath string
	mapPath    string
	presenter  string
	fps        int
	stream     string
	mute       bool
	flat       bool
}

func newRunCmd() *cobra.Command {
	opts := &runOptions{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Play in the terminal or a window",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.resolve(cmd)
			if err != nil {
				return err
			}
			return run(cfg, opts.presenter, opts.mute)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.configPath, "config", "", "YAML config file")
	f.StringVar(&opts.mapPath, "map", "", "YAML map file (default: built-in reference world)")
	f.StringVar(&opts.presenter, "presenter", "terminal", "frame presenter: terminal or window")
	f.IntVar(&opts.fps, "fps", parameter.TargetFPS, "frame rate cap, 0 for uncapped")
	f.StringVar(&opts.stream, "stream", "", "serve the spectator stream on this address")
	f.BoolVar(&opts.mute, "mute", false, "disable audio feedback")
	f.BoolVar(&opts.flat, "flat", false, "draw walls in flat colors instead of textures")
	return cmd
}

// resolve loads the config file and applies explicitly set flags over it
func (o *runOptions) resolve(cmd *cobra.Command) (config.Config, error) {
	cfg, err := loadConfig(o.configPath)
	if err != nil {
		return cfg, err
	}
	f := cmd.Flags()
	if f.Changed("map") {
		cfg.World.Map = o.mapPath
	}
	if f.Changed("fps") {
		cfg.FPS = o.fps
	}
	if f.Changed("stream") {
		cfg.Stream.Addr = o.stream
	}
	if f.Changed("flat") {
		cfg.Render.Flat = o.flat
	}
	switch o.presenter {
	case "terminal", "window":
	default:
		return cfg, fmt.Errorf("unknown presenter %q, want terminal or window", o.presenter)
	}
	return cfg, cfg.Validate()
}

// contextInput ends the session once ctx is cancelled, for loops that do not watch ctx
type contextInput struct {
	ctx context.Context
}

func (c contextInput) Poll(*engine.GameContext) bool {
	return c.ctx.Err() != nil
}

func run(cfg config.Config, presenterName string, mute bool) error {
	log, closeLog, err := logger.New(cfg.Log)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sess, err := newSession(cfg, log)
	if err != nil {
		return err
	}

	stats := &engine.Stats{}
	presenters := engine.Presenters{}
	opts := []engine.LoopOption{
		engine.WithStats(stats),
		engine.WithLogger(log),
	}

	if fb, sm := newFeedback(cfg, mute, log); fb != nil {
		defer sm.Close()
		opts = append(opts, engine.WithObserver(fb))
	}

	if cfg.Stream.Addr != "" {
		srv := network.NewServer(network.Config{
			Addr:            cfg.Stream.Addr,
			Every:           cfg.Stream.Every,
			ClientBuffer:    cfg.Stream.ClientBuffer,
			WriteTimeout:    cfg.Stream.WriteTimeout,
			ShutdownTimeout: parameter.StreamShutdownTimeout,
		}, stats, log)
		if err := srv.Start(ctx); err != nil {
			return err
		}
		defer srv.Shutdown(context.Background())
		presenters = append(presenters, network.NewStream(srv.Hub(), cfg.Stream.Every))
	}

	switch presenterName {
	case "window":
		return runWindow(ctx, cfg, sess, presenters, opts, log)
	default:
		return runTerminal(ctx, cfg, sess, presenters, opts, log)
	}
}

func runTerminal(ctx context.Context, cfg config.Config, sess *session, presenters engine.Presenters, opts []engine.LoopOption, log *zap.SugaredLogger) error {
	screen, err := terminal.Open()
	if err != nil {
		return err
	}
	defer screen.Fini()
	defer terminal.RestoreOnPanic(screen)

	input := terminal.NewInput(cfg.Terminal.Hold, nil)
	input.Start(screen)

	presenters = append(engine.Presenters{terminal.NewPresenter(screen, cfg.Minimap.Margin)}, presenters...)
	opts = append(opts, engine.WithTargetFPS(cfg.FPS))

	loop := engine.NewLoop(sess.game, input, sess.renderer, presenters, opts...)
	log.Infow("terminal session started", "map", sess.mapName)
	return loop.Run(ctx)
}

func runWindow(ctx context.Context, cfg config.Config, sess *session, presenters engine.Presenters, opts []engine.LoopOption, log *zap.SugaredLogger) error {
	view := window.NewPresenter(cfg.Minimap.Margin)
	presenters = append(engine.Presenters{view}, presenters...)
	input := engine.InputSources{window.NewInput(), contextInput{ctx: ctx}}

	loop := engine.NewLoop(sess.game, input, sess.renderer, presenters, opts...)
	game := window.NewGame(loop, view, cfg.Window.Width, cfg.Window.Height, nil)

	log.Infow("window session started", "map", sess.mapName)
	err := window.Run(game, cfg.Window.Title, cfg.FPS)
	log.Infow("window session stopped", "stats", loop.Stats().Snapshot())
	return err
}

// newFeedback returns nil when audio is muted, disabled or has no device
func newFeedback(cfg config.Config, mute bool, log *zap.SugaredLogger) (*audio.Feedback, *audio.SoundManager) {
	if mute || !cfg.Audio.Enabled {
		return nil, nil
	}
	sm := audio.NewSoundManager(cfg.Audio.Volume)
	if err := sm.Initialize(); err != nil {
		// non-fatal, play silently
		log.Warnw("audio unavailable", "error", err)
		return nil, nil
	}
	return audio.NewFeedback(sm, cfg.Audio.StepDistance, cfg.Audio.BumpCooldown), sm
}

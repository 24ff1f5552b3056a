package main

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/lixenwraith/raycaster/asset"
	"github.com/lixenwraith/raycaster/config"
	"github.com/lixenwraith/raycaster/core"
	"github.com/lixenwraith/raycaster/engine"
	"github.com/lixenwraith/raycaster/player"
	"github.com/lixenwraith/raycaster/render"
	"github.com/lixenwraith/raycaster/world"
)

// session is the game state and renderer shared by run and snapshot
type session struct {
	cfg      config.Config
	mapName  string
	game     *engine.GameContext
	renderer *render.Renderer
}

func loadConfig(path string) (config.Config, error) {
	if path == "" {
		cfg := config.Default()
		return cfg, cfg.Validate()
	}
	return config.Load(path)
}

// loadWorld returns the configured map, or the reference world when none is set
func loadWorld(path string) (*world.Map, error) {
	if path == "" {
		return &world.Map{Name: "reference", World: world.Reference()}, nil
	}
	return world.LoadMap(path)
}

func newSession(cfg config.Config, logger *zap.SugaredLogger) (*session, error) {
	m, err := loadWorld(cfg.World.Map)
	if err != nil {
		return nil, err
	}

	pcfg := cfg.PlayerConfig()
	if m.Spawn != nil {
		pcfg.Position = *m.Spawn
	}
	p, err := player.New(pcfg)
	if err != nil {
		return nil, fmt.Errorf("player: %w", err)
	}

	game, err := engine.NewGameContext(m.World, p)
	if err != nil {
		return nil, err
	}
	game.MaxTick = cfg.MaxTick

	var textures []*core.Texture
	if !cfg.Render.Flat {
		textures = asset.LoadTextures(cfg.Textures.Dir, cfg.Textures.Files, cfg.Textures.Size, logger)
	}
	renderer, err := render.New(cfg.RenderConfig(), textures)
	if err != nil {
		return nil, err
	}

	logger.Infow("session ready",
		"map", m.Name,
		"size", m.World.Size(),
		"open_cells", m.World.OpenCells(),
		"position", p.Position,
		"flat", cfg.Render.Flat,
	)
	return &session{cfg: cfg, mapName: m.Name, game: game, renderer: renderer}, nil
}

package main

import (
	"image"
	"log"

	"github.com/automoto/skyhop/assets"
	"github.com/automoto/skyhop/config"
	"github.com/automoto/skyhop/logger"
	"github.com/automoto/skyhop/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
	ApplyTuning()
}

type Game struct {
	bounds  image.Rectangle
	scene   Scene
	watcher *config.Watcher
}

func NewGame(scene Scene, watcher *config.Watcher) *Game {
	return &Game{
		bounds:  image.Rectangle{},
		scene:   scene,
		watcher: watcher,
	}
}

func (g *Game) Update() error {
	g.drainWatcher()
	g.scene.Update()
	return nil
}

// drainWatcher applies reloaded tuning between ticks. A bad file keeps the
// previous tuning.
func (g *Game) drainWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case data, ok := <-g.watcher.Data:
			if !ok {
				return
			}
			if _, err := config.ReloadTuning(data); err != nil {
				logger.Warn("tuning reload rejected", zap.Error(err))
				continue
			}
			g.scene.ApplyTuning()
		case err := <-g.watcher.Errors:
			logger.Warn("tuning reload failed", zap.Error(err))
		default:
			return
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	config.ParseFlags()

	loadErr := config.Load()
	if err := logger.Init(config.C.LogLevel, config.C.LogFile); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	if loadErr != nil {
		logger.Fatal("failed to load config", zap.Error(loadErr))
	}

	level, err := assets.LoadLevel(config.C.Level)
	if err != nil {
		names, _ := assets.LevelNames()
		logger.Fatal("failed to load level",
			zap.String("level", config.C.Level),
			zap.Strings("available", names),
			zap.Error(err),
		)
	}
	logger.Info("level loaded",
		zap.String("level", level.Name),
		zap.Int("platforms", len(level.Platforms)),
		zap.String("tuning", config.C.TuningPath),
	)

	var watcher *config.Watcher
	if config.C.Watch && config.C.TuningPath != "" {
		watcher, err = config.WatchTuning(config.C.TuningPath)
		if err != nil {
			logger.Warn("tuning watch disabled", zap.Error(err))
		} else {
			defer func() { _ = watcher.Close() }()
		}
	}

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle("skyhop")
	ebiten.SetTPS(config.C.TPS)

	if err := ebiten.RunGame(NewGame(scenes.NewPlatformerScene(level), watcher)); err != nil {
		logger.Error("game exited", zap.Error(err))
	}
}

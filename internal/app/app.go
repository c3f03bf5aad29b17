package app

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/diegok/termpong/internal/audio"
	"github.com/diegok/termpong/internal/config"
	"github.com/diegok/termpong/internal/game"
	"github.com/diegok/termpong/internal/ui"
)

// App owns the terminal, the simulation and the pacing loop that ties
// them together.
type App struct {
	cfg      *config.Config
	log      *zap.Logger
	screen   *ui.Screen
	renderer *ui.Renderer
	model    *game.Model

	paused bool
	last   game.Snapshot // state after the latest tick or resize
}

// NewApp creates a new App instance with the given configuration.
func NewApp(cfg *config.Config, log *zap.Logger) *App {
	return &App{
		cfg: cfg,
		log: log,
	}
}

// Run initializes audio and the terminal and plays until the user quits or
// the process receives SIGINT/SIGTERM.
func (a *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Sound is optional; the game runs silently without it
	if !a.cfg.Mute {
		if err := audio.Init(); err != nil {
			a.log.Warn("audio unavailable", zap.Error(err))
		}
		defer audio.Close()
	}

	screen, err := ui.InitScreen()
	if err != nil {
		return errors.Wrap(err, "initialize screen")
	}

	return a.run(ctx, screen)
}

// run plays on an already initialized screen and finalizes it on return.
func (a *App) run(ctx context.Context, screen *ui.Screen) error {
	if err := a.setup(screen); err != nil {
		screen.Fini()
		return err
	}

	a.log.Info("game started",
		zap.String("left", string(a.cfg.Left)),
		zap.String("right", string(a.cfg.Right)),
		zap.Int("fps", a.cfg.TickRate),
		zap.Bool("sound", audio.Enabled()),
		zap.Float64("width", a.model.Field.Width),
		zap.Float64("height", a.model.Field.Height),
	)

	ctx, cancel := context.WithCancel(ctx)
	g, ctx := errgroup.WithContext(ctx)
	events := make(chan tcell.Event)

	// PollEvent blocks until the screen is finalized, which the main loop
	// does on exit.
	g.Go(func() error {
		a.pollEvents(ctx, events)
		return nil
	})
	g.Go(func() error {
		defer cancel()
		defer screen.Fini()
		return a.mainLoop(ctx, events)
	})

	err := g.Wait()
	a.log.Info("game finished",
		zap.Int("left_score", a.model.LeftScore),
		zap.Int("right_score", a.model.RightScore),
		zap.Int("ticks", a.model.Ticks),
	)
	return err
}

// setup sizes the model to the screen
func (a *App) setup(screen *ui.Screen) error {
	a.screen = screen
	a.renderer = ui.NewRenderer(screen)

	w, h := screen.Size()
	model, err := game.NewModel(float64(w), float64(h), game.WithSeed(a.cfg.Seed))
	if err != nil {
		return errors.Wrap(err, "create game")
	}
	a.model = model
	a.last = model.Snapshot()
	return nil
}

func (a *App) pollEvents(ctx context.Context, events chan<- tcell.Event) {
	for {
		ev := a.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-ctx.Done():
			return
		}
	}
}

// mainLoop ticks the simulation at the configured rate and applies input
// between ticks. Everything touching the model runs here.
func (a *App) mainLoop(ctx context.Context, events <-chan tcell.Event) error {
	ticker := time.NewTicker(time.Second / time.Duration(a.cfg.TickRate))
	defer ticker.Stop()

	a.render()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-events:
			if a.handleEvent(ev) {
				return nil
			}

		case <-ticker.C:
			a.step()
			a.render()
		}
	}
}

// handleEvent processes keyboard and resize events.
// Returns true if the application should quit.
func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ui.IsQuitKey(ev.Key(), ev.Rune()) {
			return true
		}
		if ui.IsPauseKey(ev.Key(), ev.Rune()) {
			a.paused = !a.paused
			a.log.Debug("pause toggled", zap.Bool("paused", a.paused))
			a.render()
			return false
		}
		// Keys for a computer-controlled side are ignored
		side, intent, ok := ui.KeyToIntent(ev.Key(), ev.Rune())
		if ok && a.player(side) == config.Human {
			a.model.SetIntent(side, intent)
		}

	case *tcell.EventResize:
		w, h := ev.Size()
		if err := a.model.Resize(float64(w), float64(h)); err != nil {
			a.log.Warn("resize ignored", zap.Int("width", w), zap.Int("height", h), zap.Error(err))
			return false
		}
		a.log.Debug("resized", zap.Int("width", w), zap.Int("height", h))
		a.last = a.model.Snapshot()
		a.screen.Sync()
		a.render()
	}

	return false
}

// step runs one simulation tick, filling in intents for computer players
func (a *App) step() {
	if a.paused {
		return
	}

	for _, side := range []game.Side{game.SideLeft, game.SideRight} {
		if a.player(side) == config.AI {
			a.model.SetIntent(side, a.model.ComputerIntent(side))
		}
	}
	a.model.Tick()

	snap := a.model.Snapshot()
	ev := audio.Detect(a.last, snap)
	if ev.Score {
		a.log.Debug("goal",
			zap.Int("left_score", snap.LeftScore),
			zap.Int("right_score", snap.RightScore),
			zap.Int("tick", snap.Ticks),
			zap.Float64("rally_speed", a.last.Ball.Speed()),
		)
	}
	if ev.Any() {
		audio.Play(ev)
	}
	a.last = snap
}

func (a *App) render() {
	a.renderer.RenderGame(a.last, a.paused)
}

func (a *App) player(side game.Side) config.PlayerType {
	if side == game.SideLeft {
		return a.cfg.Left
	}
	return a.cfg.Right
}

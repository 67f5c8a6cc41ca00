package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

// game owns the board and everything that observes it. All methods must be
// called from a single goroutine.
type game struct {
	board      *model.Board
	stats      *utils.Stats
	metrics    *utils.Metrics
	logger     *slog.Logger
	generation int
	lastFrame  time.Time

	// interactive view state
	paused  bool
	centerX int
	centerY int
}

// newLogger builds a text logger on stderr so frames on stdout stay clean
func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}

// seedBoard builds the initial board from the configured pattern and cells
func seedBoard(config utils.Config) (*model.Board, error) {
	board := model.NewBoard()
	if config.Pattern != "" {
		rows, ok := model.Pattern(config.Pattern)
		if !ok {
			return nil, errors.Errorf("[seedBoard] unknown pattern %q, known patterns: %s",
				config.Pattern, strings.Join(model.PatternNames(), ", "))
		}
		model.Stamp(board, rows, config.OriginX, config.OriginY)
	}
	for _, c := range config.Cells {
		board.Set(c[0], c[1])
	}
	return board, nil
}

// newGame sets up the initial game state
func newGame(config utils.Config, logger *slog.Logger) (*game, error) {
	board, err := seedBoard(config)
	if err != nil {
		return nil, err
	}

	g := &game{
		board:     board,
		stats:     utils.NewStats(),
		metrics:   utils.NewMetrics(),
		logger:    logger,
		lastFrame: time.Now(),
	}
	if lo, hi, ok := board.Bounds(); ok {
		g.centerX, g.centerY = (lo.X+hi.X)/2, (lo.Y+hi.Y)/2
	}
	g.metrics.ObservePopulation(board.Population())
	return g, nil
}

// step advances one generation and updates stats and metrics
func (g *game) step() {
	g.board.Tick()
	g.generation++

	now := time.Now()
	g.stats.Update(g.generation, g.board.Population(), now.Sub(g.lastFrame))
	g.lastFrame = now
	g.metrics.ObserveTick(g.board.Population(), g.board.HistoryLen())
}

// undo restores the previous generation if there is one
func (g *game) undo() bool {
	if !g.board.Undo() {
		return false
	}
	g.generation--
	g.stats.Undos++
	g.metrics.ObserveUndo(g.board.Population(), g.board.HistoryLen())
	return true
}

// clear kills every cell
func (g *game) clear() {
	g.board.Clear()
	g.metrics.ObservePopulation(0)
}

// finished reports whether the generation limit has been reached
func (g *game) finished(maxGenerations int) bool {
	return maxGenerations > 0 && g.generation >= maxGenerations
}

// status renders the one-line summary shown under each frame
func (g *game) status() string {
	state := "Running"
	switch {
	case g.paused:
		state = "Paused"
	case g.board.Population() == 0:
		state = "Extinct"
	}
	return fmt.Sprintf("Gen: %d | Living: %d | Undo: %d | Avg Pop: %.1f | %s",
		g.generation, g.board.Population(), g.board.HistoryLen(), g.stats.AveragePopulation, state)
}

// handleKey applies one key press and reports whether the game should quit
func (g *game) handleKey(ev *tcell.EventKey) (quit bool) {
	switch ev.Key() {
	case tcell.KeyEsc, tcell.KeyCtrlC:
		return true
	case tcell.KeyUp:
		g.centerY++
	case tcell.KeyDown:
		g.centerY--
	case tcell.KeyLeft:
		g.centerX--
	case tcell.KeyRight:
		g.centerX++
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return true
		case ' ':
			g.paused = !g.paused
		case 'n':
			g.step()
		case 'u':
			if !g.undo() {
				g.logger.Debug("nothing to undo", "generation", g.generation)
			}
		case 'c':
			g.clear()
		}
	}
	return false
}

// runPlain prints a frame every tick until the context ends or the
// generation limit is reached
func runPlain(ctx context.Context, g *game, config utils.Config, renderer *model.TerminalRenderer) error {
	viewport := model.NewViewport(config.Viewport.X0, config.Viewport.X1, config.Viewport.Y0, config.Viewport.Y1)
	ticker := time.NewTicker(time.Duration(config.FrameRate))
	defer ticker.Stop()

	for {
		if config.ClearScreen {
			if err := renderer.Clear(); err != nil {
				g.logger.Warn("failed to clear terminal", "error", err)
			}
		}
		if err := renderer.Display(g.board, viewport, g.status()); err != nil {
			return errors.Wrap(err, "[runPlain] failed to display board")
		}
		if g.finished(config.MaxGenerations) {
			g.logger.Info("reached maximum generations", "limit", config.MaxGenerations)
			return nil
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			g.step()
		}
	}
}

// runInteractive drives the game on a tcell screen. Screen events are read on
// their own goroutine and handed to the loop that owns the board.
func runInteractive(ctx context.Context, g *game, config utils.Config, screen tcell.Screen) error {
	if err := screen.Init(); err != nil {
		return errors.Wrap(err, "[runInteractive] failed to initialize screen")
	}

	renderer := model.NewScreenRenderer(screen)
	events := make(chan tcell.Event, 16)
	stopped := make(chan struct{})
	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return nil
			}
			select {
			case events <- ev:
			case <-stopped:
				return nil
			case <-ctx.Done():
				return nil
			}
		}
	})

	eg.Go(func() error {
		// Fini makes PollEvent return nil, which stops the reader.
		defer screen.Fini()
		defer close(stopped)

		ticker := time.NewTicker(time.Duration(config.FrameRate))
		defer ticker.Stop()

		for {
			renderer.Draw(g.board, renderer.Viewport(g.centerX, g.centerY), g.status())
			if g.finished(config.MaxGenerations) {
				g.logger.Info("reached maximum generations", "limit", config.MaxGenerations)
				return nil
			}

			select {
			case <-ctx.Done():
				return nil
			case ev := <-events:
				switch ev := ev.(type) {
				case *tcell.EventResize:
					screen.Sync()
				case *tcell.EventKey:
					if g.handleKey(ev) {
						return nil
					}
				}
			case <-ticker.C:
				if !g.paused {
					g.step()
				}
			}
		}
	})

	return eg.Wait()
}

// logSummary writes the final stats and metrics
func logSummary(g *game) {
	summary, err := g.metrics.Summary()
	if err != nil {
		g.logger.Error("failed to gather metrics", "error", err)
	}
	g.logger.Info("final stats",
		"generations", g.generation,
		"runtime", g.stats.Runtime().Round(time.Millisecond),
		"avg_population", g.stats.AveragePopulation,
		"peak_population", g.stats.PeakPopulation,
		"undos", g.stats.Undos,
		"metrics", summary,
	)
}

// Package ui is the raylib window shell around a game panel.
package ui

import (
	"context"
	"time"

	"classic-snake/game"
	"classic-snake/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog"
)

const (
	Title     = "Snake game"
	targetFPS = 60
)

// DirectionForKey maps the arrow keys to headings. Every other key maps to
// NONE.
func DirectionForKey(key int32) types.Direction {
	switch key {
	case rl.KeyUp:
		return types.UP
	case rl.KeyDown:
		return types.DOWN
	case rl.KeyLeft:
		return types.LEFT
	case rl.KeyRight:
		return types.RIGHT
	default:
		return types.NONE
	}
}

// Window owns the raylib window and the one panel shown in it.
type Window struct {
	panel    *game.Panel
	renderer *Renderer
	log      zerolog.Logger
	open     bool
}

// NewWindow creates the panel, then opens a fixed-size window of the panel's
// natural size centred on the current monitor.
func NewWindow(settings types.Settings, log zerolog.Logger, opts ...game.Option) *Window {
	w := &Window{
		panel: game.NewPanel(settings, append([]game.Option{game.WithLogger(log)}, opts...)...),
		log:   log,
	}

	width, height := w.panel.Size()
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(int32(width), int32(height), Title)
	rl.SetExitKey(rl.KeyNull)
	rl.SetTargetFPS(targetFPS)

	monitor := rl.GetCurrentMonitor()
	rl.SetWindowPosition(
		(rl.GetMonitorWidth(monitor)-width)/2,
		(rl.GetMonitorHeight(monitor)-height)/2,
	)

	w.renderer = NewRenderer()
	w.open = true
	w.log.Debug().Int("width", width).Int("height", height).Msg("Window opened")
	return w
}

func (w *Window) Panel() *game.Panel {
	return w.panel
}

// Run pumps input, ticks and frames until the window is closed or ctx ends.
func (w *Window) Run(ctx context.Context) error {
	for !rl.WindowShouldClose() {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
			if dir := DirectionForKey(key); dir != types.NONE {
				w.panel.HandleDirectionChange(dir)
			}
		}

		if w.panel.Clock().Due(time.Now()) {
			w.panel.Tick()
		}

		rl.BeginDrawing()
		w.panel.Render(w.renderer)
		rl.EndDrawing()
	}
	w.log.Debug().Msg("Window close requested")
	return nil
}

func (w *Window) Close() error {
	if !w.open {
		return nil
	}
	rl.CloseWindow()
	w.open = false
	return nil
}

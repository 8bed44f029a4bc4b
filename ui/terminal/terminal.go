// Package terminal shows a game panel in a terminal through tcell.
package terminal

import (
	"context"
	"time"

	"classic-snake/game"
	"classic-snake/game/types"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
)

// DirectionForKey maps the arrow keys to headings. Every other key maps to
// NONE.
func DirectionForKey(ev *tcell.EventKey) types.Direction {
	switch ev.Key() {
	case tcell.KeyUp:
		return types.UP
	case tcell.KeyDown:
		return types.DOWN
	case tcell.KeyLeft:
		return types.LEFT
	case tcell.KeyRight:
		return types.RIGHT
	default:
		return types.NONE
	}
}

// isQuit reports the keys that stand in for closing the window.
func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}

// Terminal drives one panel on a tcell screen from a single loop.
type Terminal struct {
	screen tcell.Screen
	panel  *game.Panel
	canvas *Canvas
	log    zerolog.Logger
}

// New creates the panel and binds it to an initialised screen.
func New(screen tcell.Screen, settings types.Settings, log zerolog.Logger, opts ...game.Option) *Terminal {
	screen.HideCursor()
	screen.SetStyle(tcell.StyleDefault)
	return &Terminal{
		screen: screen,
		panel:  game.NewPanel(settings, append([]game.Option{game.WithLogger(log)}, opts...)...),
		canvas: NewCanvas(screen, settings.Grid),
		log:    log,
	}
}

func (t *Terminal) Panel() *game.Panel {
	return t.panel
}

// HandleEvent applies one terminal event and reports whether the user asked
// to quit.
func (t *Terminal) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if isQuit(ev) {
			return true
		}
		if dir := DirectionForKey(ev); dir != types.NONE {
			t.panel.HandleDirectionChange(dir)
		}
	case *tcell.EventResize:
		t.screen.Sync()
		t.draw()
	}
	return false
}

func (t *Terminal) draw() {
	t.screen.Clear()
	t.panel.Render(t.canvas)
	t.screen.Show()
}

// Run owns the panel until the user quits or ctx ends. Ticks come from a
// ticker that is released once the game is over.
func (t *Terminal) Run(ctx context.Context) error {
	events := make(chan tcell.Event)
	quit := make(chan struct{})
	defer close(quit)

	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	ticker := time.NewTicker(t.panel.Clock().Interval())
	defer ticker.Stop()
	ticks := ticker.C

	t.draw()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok || t.HandleEvent(ev) {
				t.log.Debug().Msg("Terminal close requested")
				return nil
			}
		case <-ticks:
			t.panel.Tick()
			if t.panel.Clock().Stopped() {
				ticker.Stop()
				ticks = nil
			}
		}

		if t.panel.Dirty() {
			t.draw()
		}
	}
}

// Close restores the terminal.
func (t *Terminal) Close() error {
	t.screen.Fini()
	return nil
}

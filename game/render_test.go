package game_test

import (
	"testing"

	"classic-snake/game"
	"classic-snake/game/types"
)

type op struct {
	kind       string
	x, y, w, h int
	text       string
	size       int
	color      types.Color
}

// recordingCanvas measures text at half the font size per rune.
type recordingCanvas struct {
	ops []op
}

func (c *recordingCanvas) Clear(bg types.Color) {
	c.ops = append(c.ops, op{kind: "clear", color: bg})
}

func (c *recordingCanvas) FillRect(x, y, w, h int, col types.Color) {
	c.ops = append(c.ops, op{kind: "rect", x: x, y: y, w: w, h: h, color: col})
}

func (c *recordingCanvas) FillOval(x, y, w, h int, col types.Color) {
	c.ops = append(c.ops, op{kind: "oval", x: x, y: y, w: w, h: h, color: col})
}

func (c *recordingCanvas) DrawText(text string, x, y, size int, col types.Color) {
	c.ops = append(c.ops, op{kind: "text", x: x, y: y, text: text, size: size, color: col})
}

func (c *recordingCanvas) MeasureText(text string, size int) int {
	return len([]rune(text)) * size / 2
}

func (c *recordingCanvas) find(kind string) []op {
	var out []op
	for _, o := range c.ops {
		if o.kind == kind {
			out = append(out, o)
		}
	}
	return out
}

func TestRenderRunning(t *testing.T) {
	p := newPanel(types.Point{X: 100, Y: 100})
	p.PlaceFood(types.Point{X: 300, Y: 300})
	p.Tick()
	p.Tick()

	if !p.Dirty() {
		t.Fatal("panel should be dirty after a tick")
	}
	c := &recordingCanvas{}
	p.Render(c)
	if p.Dirty() {
		t.Fatal("render should clear the dirty flag")
	}

	if c.ops[0].kind != "clear" {
		t.Fatalf("first op = %q, want clear", c.ops[0].kind)
	}

	ovals := c.find("oval")
	if len(ovals) != 1 || ovals[0].x != 300 || ovals[0].y != 300 || ovals[0].color != game.FoodColor {
		t.Fatalf("unexpected food ops %+v", ovals)
	}

	rects := c.find("rect")
	if len(rects) != 5 {
		t.Fatalf("drew %d cells, want 5", len(rects))
	}
	if rects[0].x != 140 || rects[0].color != game.HeadColor {
		t.Errorf("head op = %+v", rects[0])
	}
	for _, r := range rects[1:] {
		if r.color != game.BodyColor || r.w != 20 || r.h != 20 {
			t.Errorf("body op = %+v", r)
		}
	}

	texts := c.find("text")
	if len(texts) != 1 {
		t.Fatalf("drew %d strings, want 1", len(texts))
	}
	score := texts[0]
	if score.text != "Score: 0" || score.size != game.ScoreFontSize {
		t.Errorf("score op = %+v", score)
	}
	wantX := (500 - len("Score: 0")*game.ScoreFontSize/2) / 2
	if score.x != wantX {
		t.Errorf("score x = %d, want centred at %d", score.x, wantX)
	}
}

func TestRenderGameOver(t *testing.T) {
	p := newPanel(types.Point{X: 100, Y: 480})
	p.PlaceFood(types.Point{X: 100, Y: 500})
	p.HandleDirectionChange(types.DOWN)
	p.Tick() // eats on the boundary row
	p.Tick() // leaves the board

	if p.Phase() != game.GameOver {
		t.Fatalf("expected game over, got %v", p.Phase())
	}

	c := &recordingCanvas{}
	p.Render(c)

	if n := len(c.find("rect")) + len(c.find("oval")); n != 0 {
		t.Fatalf("game over screen drew %d playfield shapes", n)
	}
	texts := c.find("text")
	if len(texts) != 2 {
		t.Fatalf("drew %d strings, want 2", len(texts))
	}
	if texts[0].text != game.GameOverText || texts[0].color != game.AlertColor || texts[0].size != game.GameOverFontSize {
		t.Errorf("game over op = %+v", texts[0])
	}
	if texts[0].y != 250-game.GameOverFontSize {
		t.Errorf("game over y = %d, want %d", texts[0].y, 250-game.GameOverFontSize)
	}
	if texts[1].text != "Score: 1" {
		t.Errorf("final score text = %q, want %q", texts[1].text, "Score: 1")
	}
}

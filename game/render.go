package game

import (
	"fmt"

	"classic-snake/game/types"
)

// Canvas is the drawing surface a frontend hands to Render. Coordinates are
// logical units with the origin at the top left; text is placed by its
// top-left corner.
type Canvas interface {
	Clear(bg types.Color)
	FillRect(x, y, w, h int, c types.Color)
	FillOval(x, y, w, h int, c types.Color)
	DrawText(text string, x, y, size int, c types.Color)
	MeasureText(text string, size int) int
}

var (
	Background = types.Color{R: 64, G: 64, B: 64}
	FoodColor  = types.Color{R: 210, G: 115, B: 90}
	HeadColor  = types.Color{R: 255, G: 255, B: 255}
	BodyColor  = types.Color{R: 40, G: 200, B: 150}
	TextColor  = types.Color{R: 255, G: 255, B: 255}
	AlertColor = types.Color{R: 255, G: 0, B: 0}
)

const (
	ScoreFontSize    = 25
	GameOverFontSize = 50
	GameOverText     = "Game Over"
	scoreTop         = 2
)

// ScoreText is the score line shown at the top of the panel.
func ScoreText(score int) string {
	return fmt.Sprintf("Score: %d", score)
}

// Render draws the current state. While running that is the food, the head,
// the body and the score; once the game is over only the final message.
func (p *Panel) Render(c Canvas) {
	p.dirty = false
	c.Clear(Background)

	if p.phase != Running {
		p.drawGameOver(c)
		return
	}

	unit := p.settings.Grid.UnitSize
	food := p.foodMgr.GetFood()
	c.FillOval(food.X, food.Y, unit, unit, FoodColor)

	head := p.snake.GetHead()
	c.FillRect(head.X, head.Y, unit, unit, HeadColor)

	for _, cell := range p.snake.Occupied()[1:] {
		c.FillRect(cell.X, cell.Y, unit, unit, BodyColor)
	}

	p.drawCentered(c, ScoreText(p.score), scoreTop, ScoreFontSize, TextColor)
}

func (p *Panel) drawGameOver(c Canvas) {
	height := p.settings.Grid.Height
	p.drawCentered(c, GameOverText, height/2-GameOverFontSize, GameOverFontSize, AlertColor)
	p.drawCentered(c, ScoreText(p.score), scoreTop, ScoreFontSize, TextColor)
}

func (p *Panel) drawCentered(c Canvas, text string, y, size int, color types.Color) {
	x := (p.settings.Grid.Width - c.MeasureText(text, size)) / 2
	c.DrawText(text, x, y, size, color)
}

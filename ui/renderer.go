package ui

import (
	"classic-snake/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Renderer draws panel output with raylib. Logical units map one to one onto
// window pixels.
type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

func toColor(c types.Color) rl.Color {
	return rl.Color{R: c.R, G: c.G, B: c.B, A: 255}
}

func (r *Renderer) Clear(bg types.Color) {
	rl.ClearBackground(toColor(bg))
}

func (r *Renderer) FillRect(x, y, w, h int, c types.Color) {
	rl.DrawRectangle(int32(x), int32(y), int32(w), int32(h), toColor(c))
}

// FillOval draws the ellipse inscribed in the given box.
func (r *Renderer) FillOval(x, y, w, h int, c types.Color) {
	rl.DrawEllipse(int32(x+w/2), int32(y+h/2), float32(w)/2, float32(h)/2, toColor(c))
}

func (r *Renderer) DrawText(text string, x, y, size int, c types.Color) {
	rl.DrawText(text, int32(x), int32(y), int32(size), toColor(c))
}

func (r *Renderer) MeasureText(text string, size int) int {
	return int(rl.MeasureText(text, int32(size)))
}

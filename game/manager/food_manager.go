package manager

import (
	"classic-snake/game/types"

	"golang.org/x/exp/rand"
)

// FoodManager places the single food item on a random grid cell. Cells under
// the snake are not excluded.
type FoodManager struct {
	grid types.Grid
	rng  *rand.Rand
	food types.Point
}

func NewFoodManager(grid types.Grid, seed uint64) *FoodManager {
	return &FoodManager{
		grid: grid,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// GenerateFood moves the food to a new uniformly random cell and returns it.
func (fm *FoodManager) GenerateFood() types.Point {
	fm.food = types.Point{
		X: fm.rng.Intn(fm.grid.Columns()) * fm.grid.UnitSize,
		Y: fm.rng.Intn(fm.grid.Rows()) * fm.grid.UnitSize,
	}
	return fm.food
}

func (fm *FoodManager) GetFood() types.Point {
	return fm.food
}

// PlaceFood puts the food on p regardless of the random source.
func (fm *FoodManager) PlaceFood(p types.Point) {
	fm.food = p
}

func (fm *FoodManager) IsFoodCollision(pos types.Point) bool {
	return pos == fm.food
}

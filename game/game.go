package game

import (
	"classic-snake/game/entity"
	"classic-snake/game/manager"
	"classic-snake/game/types"

	"github.com/rs/zerolog"
)

// Phase is the lifecycle state of a game. GameOver is terminal.
type Phase int

const (
	Running Phase = iota
	GameOver
)

func (p Phase) String() string {
	if p == GameOver {
		return "game over"
	}
	return "running"
}

// Listener is notified synchronously from Tick.
type Listener interface {
	FoodEaten(s Snapshot)
	GameOver(s Snapshot, cause manager.CollisionType)
}

// Snapshot is a copy of the observable game state.
type Snapshot struct {
	Body      []types.Point
	Food      types.Point
	Direction types.Direction
	Score     int
	Length    int
	Phase     Phase
}

// Head returns the head cell of the snapshot's body.
func (s Snapshot) Head() types.Point {
	return s.Body[0]
}

// Panel owns all mutable state of one game session. It is not safe for
// concurrent use: frontends drive it from a single loop.
type Panel struct {
	settings     types.Settings
	snake        *entity.Snake
	foodMgr      *manager.FoodManager
	collisionMgr *manager.CollisionManager
	clock        *Clock
	listeners    []Listener
	log          zerolog.Logger

	score int
	phase Phase
	dirty bool
}

type Option func(*panelOptions)

type panelOptions struct {
	start  types.Point
	seed   uint64
	logger zerolog.Logger
}

// WithStart stacks the initial body on p instead of the origin.
func WithStart(p types.Point) Option {
	return func(o *panelOptions) { o.start = p }
}

// WithSeed seeds food placement.
func WithSeed(seed uint64) Option {
	return func(o *panelOptions) { o.seed = seed }
}

func WithLogger(l zerolog.Logger) Option {
	return func(o *panelOptions) { o.logger = l }
}

// NewPanel starts a game: the snake heads right, one food item is placed
// and the panel is Running.
func NewPanel(settings types.Settings, opts ...Option) *Panel {
	o := panelOptions{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}

	p := &Panel{
		settings:     settings,
		snake:        entity.NewSnake(o.start, settings.InitialLength, settings.Grid.Capacity()),
		foodMgr:      manager.NewFoodManager(settings.Grid, o.seed),
		collisionMgr: manager.NewCollisionManager(settings.Grid),
		clock:        NewClock(settings.TickInterval),
		log:          o.logger,
		phase:        Running,
		dirty:        true,
	}
	p.foodMgr.GenerateFood()
	return p
}

func (p *Panel) AddListener(l Listener) {
	p.listeners = append(p.listeners, l)
}

func (p *Panel) Settings() types.Settings {
	return p.settings
}

// Size is the panel's natural size in logical units.
func (p *Panel) Size() (width, height int) {
	return p.settings.Grid.Width, p.settings.Grid.Height
}

func (p *Panel) Clock() *Clock {
	return p.clock
}

func (p *Panel) Phase() Phase {
	return p.phase
}

func (p *Panel) Running() bool {
	return p.phase == Running
}

func (p *Panel) Score() int {
	return p.score
}

// Dirty reports whether the state changed since the last Render.
func (p *Panel) Dirty() bool {
	return p.dirty
}

// PlaceFood puts the food on a chosen cell.
func (p *Panel) PlaceFood(pos types.Point) {
	p.foodMgr.PlaceFood(pos)
	p.dirty = true
}

// HandleDirectionChange sets the heading used by the next tick. Reversing
// onto the body is ignored.
func (p *Panel) HandleDirectionChange(dir types.Direction) {
	if p.snake.SetDirection(dir) {
		p.log.Debug().Stringer("direction", dir).Msg("Heading changed")
	}
}

// Tick advances the game by one step. It does nothing once the game is over.
func (p *Panel) Tick() {
	if p.phase != Running {
		return
	}

	p.snake.Move(p.settings.Grid.UnitSize)
	p.checkFood()
	p.checkHit()
	p.dirty = true
}

func (p *Panel) checkFood() {
	if !p.foodMgr.IsFoodCollision(p.snake.GetHead()) {
		return
	}
	p.snake.Grow()
	p.score++
	food := p.foodMgr.GenerateFood()

	p.log.Debug().
		Int("score", p.score).
		Int("length", p.snake.Length).
		Int("food_x", food.X).
		Int("food_y", food.Y).
		Msg("Food eaten")

	snap := p.Snapshot()
	for _, l := range p.listeners {
		l.FoodEaten(snap)
	}
}

func (p *Panel) checkHit() {
	cause := p.collisionMgr.CheckCollision(p.snake)
	if cause == manager.NoCollision {
		return
	}
	p.phase = GameOver
	p.clock.Stop()

	head := p.snake.GetHead()
	p.log.Info().
		Int("score", p.score).
		Int("head_x", head.X).
		Int("head_y", head.Y).
		Stringer("cause", cause).
		Msg("Game over")

	snap := p.Snapshot()
	for _, l := range p.listeners {
		l.GameOver(snap, cause)
	}
}

func (p *Panel) Snapshot() Snapshot {
	body := make([]types.Point, p.snake.Length)
	copy(body, p.snake.Occupied())
	return Snapshot{
		Body:      body,
		Food:      p.foodMgr.GetFood(),
		Direction: p.snake.Direction,
		Score:     p.score,
		Length:    p.snake.Length,
		Phase:     p.phase,
	}
}

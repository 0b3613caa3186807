package game

import (
	"errors"
	"log/slog"
	"time"

	"classic-snake/game/entity"
	"classic-snake/game/manager"
	"classic-snake/game/types"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"
)

// DefaultInterval is the nominal time between two ticks.
const DefaultInterval = 100 * time.Millisecond

// ErrNotGameOver is returned by Reset while a round is still running.
var ErrNotGameOver = errors.New("game: reset requested while the round is running")

// InitialBody is the snake every round starts with, head first.
var InitialBody = []types.Point{{X: 100, Y: 100}, {X: 90, Y: 100}, {X: 80, Y: 100}}

// Config carries the knobs a frontend may set. The zero value is usable.
type Config struct {
	// Interval is advisory; the driver loop owns the clock.
	Interval   time.Duration
	FoodPolicy manager.FoodPolicy
	// Seed for food placement. Zero seeds from the clock.
	Seed uint64
	// Rand overrides Seed when set.
	Rand   manager.Source
	Logger *slog.Logger
	Now    func() time.Time
}

// Snapshot is a self-contained copy of everything a renderer needs.
type Snapshot struct {
	Snake     []types.Point
	Food      types.Point
	Score     int
	GameOver  bool
	Direction types.Direction
	Cause     types.CollisionType
	Tick      uint64
	Round     int
}

// Head returns the first snake cell.
func (s Snapshot) Head() types.Point {
	return s.Snake[0]
}

// Game is the whole simulation state for one session. It is not safe for
// concurrent use; the driver loop owns it.
type Game struct {
	UUID     string
	Grid     types.Grid
	Interval time.Duration

	snake    *entity.Snake
	pending  types.Direction
	food     types.Point
	score    int
	gameOver bool
	cause    types.CollisionType

	steps     uint64
	round     int
	roundID   string
	startTime time.Time

	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	stateMgr     *manager.StateManager

	log *slog.Logger
	now func() time.Time
}

func NewGame(cfg Config) *Game {
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultInterval
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	rng := cfg.Rand
	if rng == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = uint64(cfg.Now().UnixNano())
		}
		rng = rand.New(rand.NewSource(seed))
	}

	grid := types.DefaultGrid
	collisionMgr := manager.NewCollisionManager(grid)
	gameUUID := uuid.New().String()

	g := &Game{
		UUID:         gameUUID,
		Grid:         grid,
		Interval:     cfg.Interval,
		collisionMgr: collisionMgr,
		foodMgr:      manager.NewFoodManager(grid, rng, cfg.FoodPolicy, collisionMgr),
		stateMgr:     manager.NewStateManager(),
		log:          cfg.Logger.With("session", gameUUID),
		now:          cfg.Now,
	}
	g.startRound()
	return g
}

func (g *Game) startRound() {
	g.snake = entity.NewSnake(InitialBody, types.Right)
	g.pending = types.Right
	g.score = 0
	g.gameOver = false
	g.cause = types.NoCollision
	g.steps = 0
	g.round++
	g.roundID = uuid.New().String()
	g.startTime = g.now()
	g.food = g.foodMgr.GenerateFood(g.snake)

	g.log.Info("round started",
		"round", g.round,
		"round_id", g.roundID,
		"food", g.food,
		"food_policy", g.foodMgr.Policy().String())
}

func (g *Game) endRound(cause types.CollisionType) {
	g.gameOver = true
	g.cause = cause
	end := g.now()

	g.stateMgr.AddRound(manager.RoundRecord{
		ID:        g.roundID,
		Score:     g.score,
		StartTime: g.startTime,
		EndTime:   end,
		Cause:     cause,
	})

	g.log.Info("game over",
		"round", g.round,
		"score", g.score,
		"cause", cause.String(),
		"length", g.snake.Len(),
		"ticks", g.steps,
		"duration", end.Sub(g.startTime))
}

// Tick advances the simulation by one step and returns the resulting
// snapshot. It is a no-op once the round is over.
func (g *Game) Tick() Snapshot {
	if g.gameOver {
		return g.Snapshot()
	}

	g.snake.SetDirection(g.pending)
	newHead := g.snake.NextHead()

	if collision := g.collisionMgr.CheckCollision(newHead, g.snake); collision != types.NoCollision {
		g.endRound(collision)
		return g.Snapshot()
	}

	g.steps++
	g.snake.Move(newHead)

	if g.collisionMgr.IsFoodCollision(newHead, g.food) {
		g.score++
		g.food = g.foodMgr.GenerateFood(g.snake)
		g.log.Debug("food eaten", "score", g.score, "head", newHead, "next_food", g.food)
	} else {
		g.snake.RemoveTail()
	}

	return g.Snapshot()
}

// Reset starts a new round. It is only valid once the current round is over.
func (g *Game) Reset() error {
	if !g.gameOver {
		return ErrNotGameOver
	}
	g.startRound()
	return nil
}

// HandleKey maps key against the direction queued for the next tick.
func (g *Game) HandleKey(key Key) Intent {
	return HandleKey(g.pending, key, g.gameOver)
}

// Apply carries out an intent. It reports whether the player asked to quit.
func (g *Game) Apply(in Intent) (quit bool) {
	switch in.Kind {
	case SetDirection:
		if g.gameOver {
			return false
		}
		// Checked against the queued direction and against the heading of
		// the last move, so two quick turns inside one tick can never fold
		// the head back onto the neck.
		if g.snake.Len() > 1 && (g.pending.IsOpposite(in.Direction) || g.Heading().IsOpposite(in.Direction)) {
			g.log.Debug("turn rejected", "intent", in.Kind.String(), "direction", in.Direction.String(), "pending", g.pending.String())
			return false
		}
		g.pending = in.Direction
	case Retry:
		if err := g.Reset(); err != nil {
			g.log.Warn("retry ignored", "error", err)
		}
	case Quit:
		g.log.Info("quit requested", "round", g.round, "score", g.score)
		return true
	}
	return false
}

// Heading is the direction the snake moved in on the last tick.
func (g *Game) Heading() types.Direction {
	return g.snake.Direction
}

// Pending is the direction the next tick will move in.
func (g *Game) Pending() types.Direction {
	return g.pending
}

func (g *Game) IsGameOver() bool {
	return g.gameOver
}

func (g *Game) Score() int {
	return g.score
}

// Stats summarises finished rounds of this session.
func (g *Game) Stats() manager.Summary {
	return g.stateMgr.Summary()
}

// Snapshot copies the current state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Snake:     g.snake.Cells(),
		Food:      g.food,
		Score:     g.score,
		GameOver:  g.gameOver,
		Direction: g.pending,
		Cause:     g.cause,
		Tick:      g.steps,
		Round:     g.round,
	}
}

package manager

import (
	"classic-snake/game/entity"
	"classic-snake/game/types"
)

// FoodPolicy selects how a new food cell is drawn.
type FoodPolicy int

const (
	// FoodAnywhere draws uniformly from the whole board and may land on the snake.
	FoodAnywhere FoodPolicy = iota
	// FoodFreeCell draws uniformly from the cells the snake does not occupy.
	FoodFreeCell
)

func (p FoodPolicy) String() string {
	if p == FoodFreeCell {
		return "free-cell"
	}
	return "anywhere"
}

// Source is the random stream food placement draws from.
// *rand.Rand from golang.org/x/exp/rand satisfies it.
type Source interface {
	Intn(n int) int
}

type FoodManager struct {
	grid         types.Grid
	rng          Source
	policy       FoodPolicy
	collisionMgr *CollisionManager
}

func NewFoodManager(grid types.Grid, rng Source, policy FoodPolicy, collisionMgr *CollisionManager) *FoodManager {
	return &FoodManager{
		grid:         grid,
		rng:          rng,
		policy:       policy,
		collisionMgr: collisionMgr,
	}
}

func (fm *FoodManager) Policy() FoodPolicy {
	return fm.policy
}

// GenerateFood returns a new food cell according to the configured policy.
func (fm *FoodManager) GenerateFood(snake *entity.Snake) types.Point {
	if fm.policy == FoodFreeCell {
		if p, ok := fm.generateFree(snake); ok {
			return p
		}
	}
	return fm.randomCell()
}

func (fm *FoodManager) randomCell() types.Point {
	cols, rows := fm.grid.Cells()
	return types.Point{
		X: fm.rng.Intn(cols) * types.CellSize,
		Y: fm.rng.Intn(rows) * types.CellSize,
	}
}

// generateFree picks uniformly among unoccupied cells. It returns false when
// the snake covers the whole board.
func (fm *FoodManager) generateFree(snake *entity.Snake) (types.Point, bool) {
	cols, rows := fm.grid.Cells()
	freeSpots := make([]types.Point, 0, cols*rows)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			p := types.Point{X: x * types.CellSize, Y: y * types.CellSize}
			if fm.collisionMgr.ValidateSpawnPosition(p, snake) {
				freeSpots = append(freeSpots, p)
			}
		}
	}
	if len(freeSpots) == 0 {
		return types.Point{}, false
	}
	return freeSpots[fm.rng.Intn(len(freeSpots))], true
}

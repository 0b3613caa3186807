package game

import "classic-snake/game/types"

// Key is a toolkit-independent key code. Frontends translate their own key
// events into these before handing them to the game.
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyR
	KeyQ
)

// IntentKind enumerates what a key press asks the game to do.
type IntentKind int

const (
	Ignore IntentKind = iota
	SetDirection
	Retry
	Quit
)

func (k IntentKind) String() string {
	switch k {
	case SetDirection:
		return "set-direction"
	case Retry:
		return "retry"
	case Quit:
		return "quit"
	default:
		return "ignore"
	}
}

// Intent is the outcome of a key press. Direction is only set for SetDirection.
type Intent struct {
	Kind      IntentKind
	Direction types.Direction
}

var arrowDirections = map[Key]types.Direction{
	KeyUp:    types.Up,
	KeyDown:  types.Down,
	KeyLeft:  types.Left,
	KeyRight: types.Right,
}

// HandleKey maps a key press to an intent. While the game is over only R and
// Q do anything. While running, arrows turn the snake unless the turn would
// reverse it onto itself.
func HandleKey(current types.Direction, key Key, isGameOver bool) Intent {
	if isGameOver {
		switch key {
		case KeyR:
			return Intent{Kind: Retry}
		case KeyQ:
			return Intent{Kind: Quit}
		}
		return Intent{Kind: Ignore}
	}

	dir, ok := arrowDirections[key]
	if !ok || current.IsOpposite(dir) {
		return Intent{Kind: Ignore}
	}
	return Intent{Kind: SetDirection, Direction: dir}
}

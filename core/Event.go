package core

type EventKind int

const (
	EventWallBounce EventKind = iota // 球撞到上下牆
	EventPaddleHit                   // 球撞到球拍
	EventGoal                        // 球出界，得分
)

func (k EventKind) String() string {
	switch k {
	case EventWallBounce:
		return "wall_bounce"
	case EventPaddleHit:
		return "paddle_hit"
	case EventGoal:
		return "goal"
	}
	return "unknown"
}

// Event is raised by an entity during a tick. Player is the paddle that was hit
// for EventPaddleHit and the scoring player for EventGoal.
type Event struct {
	Kind   EventKind
	Player Player
	X, Y   float64
	SpeedX float64
	SpeedY float64
}

package core

import "math/rand"

type Ball struct {
	X, Y          float64
	Width, Height float64

	SpeedX, SpeedY float64 // 速度大小，永遠不是負數
	DirX, DirY     float64 // 方向，-1 或 1

	MaxAcceleration float64
	Color           Color

	area    PlayingArea
	tuning  Tuning
	rng     *rand.Rand
	paddles [2]*Paddle
	emit    func(Event)
	box     Rect
}

// NewBall creates a served ball. emit receives wall, paddle and goal events and may be nil.
func NewBall(area PlayingArea, tuning Tuning, paddles [2]*Paddle, rng *rand.Rand, emit func(Event)) *Ball {
	b := &Ball{
		Width:           tuning.BallSize,
		Height:          tuning.BallSize,
		MaxAcceleration: tuning.BallMaxAcceleration,
		Color:           ColorWhite,
		area:            area,
		tuning:          tuning,
		rng:             rng,
		paddles:         paddles,
		emit:            emit,
	}
	b.Serve()
	return b
}

// Serve puts the ball near the center with a fresh random speed and direction.
func (b *Ball) Serve() {
	cx, cy := b.area.Center()
	jitter := b.tuning.BallSpawnJitter

	b.X = cx + float64(b.randInt(-jitter, jitter))
	b.Y = boundsCheck(0, b.maxY(), cy+float64(b.randInt(-jitter, jitter)))
	b.SpeedX = float64(b.randInt(b.tuning.BallMinSpeedX, b.tuning.BallMaxSpeedX))
	b.SpeedY = float64(b.randInt(0, b.tuning.BallMaxSpeedY))
	b.DirX = b.randSign()
	b.DirY = b.randSign()
	b.syncBox()
}

// Place sets position, speed and direction explicitly.
func (b *Ball) Place(x, y, speedX, speedY, dirX, dirY float64) {
	b.X, b.Y = x, y
	b.SpeedX, b.SpeedY = speedX, speedY
	b.DirX, b.DirY = dirX, dirY
	b.syncBox()
}

// Update advances the ball by dt seconds and resolves walls, paddles and goals.
func (b *Ball) Update(dt float64) {
	b.Y += b.SpeedY * b.DirY * dt * (b.area.Height / 100)
	if posY := boundsCheck(0, b.maxY(), b.Y); posY != b.Y {
		//撞到上下牆，以牆為軸反射
		b.Y = boundsCheck(0, b.maxY(), 2*posY-b.Y)
		b.DirY = -b.DirY
		b.raise(EventWallBounce, b.owner())
	}

	b.X += b.SpeedX * b.DirX * dt * (b.area.Width / 100)

	paddle := b.paddles[b.owner()]
	if paddle != nil && b.outOfBoundsX(paddle) && b.touchingPaddle(paddle) {
		b.rebound(paddle)
	} else if b.X <= 0 {
		b.score(Player2)
	} else if b.X >= b.area.Width-b.Width {
		b.score(Player1)
	}

	b.syncBox()
}

func (b *Ball) Sprite() Sprite {
	return Sprite{Kind: KindBall, Box: b.box, Color: b.Color}
}

// owner is the player whose half of the field the ball is in.
func (b *Ball) owner() Player {
	if b.X < b.area.Width/2 {
		return Player1
	}
	return Player2
}

// PaddleBoundary is the x the ball must pass to reach the paddle's face.
func (b *Ball) PaddleBoundary(paddle *Paddle) float64 {
	if paddle.Player == Player1 {
		return paddle.X + paddle.Width
	}
	return paddle.X - b.Width
}

func (b *Ball) outOfBoundsX(paddle *Paddle) bool {
	boundary := b.PaddleBoundary(paddle)
	if paddle.Player == Player1 {
		return boundsCheck(boundary, b.area.Width, b.X) != b.X
	}
	return boundsCheck(0, boundary, b.X) != b.X
}

func (b *Ball) touchingPaddle(paddle *Paddle) bool {
	return paddle.Spans(b.Y)
}

func (b *Ball) rebound(paddle *Paddle) {
	// 直接指定方向，避免邊界情況下一個 tick 又反彈回去
	if paddle.Player == Player1 {
		b.DirX = 1
	} else {
		b.DirX = -1
	}

	b.SpeedX += b.tuning.BallHitJitter * (1 - b.rng.Float64())

	if b.tuning.BallSpinDivisor != 0 {
		b.SpeedY += b.DirY * paddle.Speed / b.tuning.BallSpinDivisor
	}
	if b.SpeedY < 0 {
		b.SpeedY = -b.SpeedY
		b.DirY = -b.DirY
	}

	b.raise(EventPaddleHit, paddle.Player)
}

func (b *Ball) score(scorer Player) {
	b.raise(EventGoal, scorer)
	b.Serve()
}

func (b *Ball) raise(kind EventKind, player Player) {
	if b.emit == nil {
		return
	}
	b.emit(Event{Kind: kind, Player: player, X: b.X, Y: b.Y, SpeedX: b.SpeedX, SpeedY: b.SpeedY})
}

func (b *Ball) maxY() float64 {
	return b.area.Height - b.Height
}

// randInt returns an int in [lo, hi].
func (b *Ball) randInt(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + b.rng.Intn(hi-lo+1)
}

func (b *Ball) randSign() float64 {
	if b.rng.Intn(2) == 0 {
		return -1
	}
	return 1
}

func (b *Ball) syncBox() {
	b.box = Rect{X: b.X, Y: b.Y, Width: b.Width, Height: b.Height}
}

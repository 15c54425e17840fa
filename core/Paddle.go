package core

type Paddle struct {
	Player Player
	X, Y   float64

	Length, Width float64

	Speed           float64 // 目前速度，正數往下，單位是場地高度百分比/秒
	MaxSpeed        float64
	Acceleration    float64
	Friction        float64
	PinnedThreshold float64

	Color Color

	area     PlayingArea
	controls *Controls
	box      Rect
}

// NewPaddle creates a paddle vertically centered on its side of the area.
// controls may be nil, in which case the paddle only responds to Steer.
func NewPaddle(player Player, area PlayingArea, tuning Tuning, controls *Controls) *Paddle {
	length := area.PercentY(tuning.PaddleLengthPercent)
	width := area.PercentX(tuning.PaddleWidthPercent)
	maxSpeed := tuning.PaddleMaxSpeedFactor * length

	p := &Paddle{
		Player:          player,
		X:               area.PaddleX(player, tuning.PaddleOffset, width),
		Y:               area.Height/2 - length/2,
		Length:          length,
		Width:           width,
		MaxSpeed:        maxSpeed,
		Acceleration:    tuning.PaddleAccelerationFactor * maxSpeed,
		Friction:        tuning.PaddleFriction,
		PinnedThreshold: tuning.PinnedSpeedThreshold,
		Color:           ColorGreen,
		area:            area,
		controls:        controls,
	}
	if player == Player2 {
		p.Color = ColorRed
	}
	p.syncBox()
	return p
}

func (p *Paddle) MaxY() float64 {
	return p.area.Height - p.Length
}

// Update reads this paddle's own intent from the shared controls and steers with it.
func (p *Paddle) Update(dt float64) {
	p.Steer(dt, p.controls.For(p.Player))
}

// Steer advances the paddle by dt seconds under the given intent.
func (p *Paddle) Steer(dt float64, intent Intent) {
	p.Speed = boundsCheck(-p.MaxSpeed, p.MaxSpeed, p.Speed+p.Acceleration*dt*intent.Direction())

	// 貼在牆上時不累積速度
	if p.Pinned() && abs(p.Speed) > p.PinnedThreshold {
		p.Speed = 0
	}

	// friction is a fixed amount per call, so it does not scale with dt
	if abs(p.Speed) < p.Friction {
		p.Speed = 0
	} else if p.Speed > 0 {
		p.Speed -= p.Friction
	} else {
		p.Speed += p.Friction
	}

	p.Y += p.Speed * dt * (p.area.Height / 100)
	p.Y = boundsCheck(0, p.MaxY(), p.Y)
	p.syncBox()
}

// Pinned reports whether the paddle rests against the top or bottom wall.
func (p *Paddle) Pinned() bool {
	return p.Y == 0 || p.Y == p.MaxY()
}

// Spans reports whether y lies on the paddle's vertical extent.
func (p *Paddle) Spans(y float64) bool {
	return y >= p.Y && y <= p.Y+p.Length
}

func (p *Paddle) Sprite() Sprite {
	return Sprite{Kind: KindPaddle, Box: p.box, Color: p.Color}
}

func (p *Paddle) syncBox() {
	p.box = Rect{X: p.X, Y: p.Y, Width: p.Width, Height: p.Length}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

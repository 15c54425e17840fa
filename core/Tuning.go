package core

// Tuning holds the physics constants. Speeds are in percent of the area per second.
type Tuning struct {
	PaddleLengthPercent      float64 // of area height
	PaddleWidthPercent       float64 // of area width
	PaddleOffset             float64 // gap between a paddle and its side of the area
	PaddleMaxSpeedFactor     float64 // max speed = factor * paddle length
	PaddleAccelerationFactor float64 // acceleration = factor * max speed
	PaddleFriction           float64 // speed lost on every update call, not per second
	PinnedSpeedThreshold     float64 // speed above this is dropped while pinned to a wall

	BallSize            float64
	BallSpawnJitter     int // max distance of a fresh ball from the center, per axis
	BallMinSpeedX       int
	BallMaxSpeedX       int
	BallMaxSpeedY       int
	BallHitJitter       float64 // upper bound of speedX gained per paddle hit
	BallSpinDivisor     float64 // share of paddle speed passed to speedY is 1/divisor
	BallMaxAcceleration float64
}

func DefaultTuning() Tuning {
	return Tuning{
		PaddleLengthPercent:      10,
		PaddleWidthPercent:       1.5,
		PaddleOffset:             10,
		PaddleMaxSpeedFactor:     1,
		PaddleAccelerationFactor: 2,
		PaddleFriction:           1,
		PinnedSpeedThreshold:     5,

		BallSize:            10,
		BallSpawnJitter:     50,
		BallMinSpeedX:       15,
		BallMaxSpeedX:       30,
		BallMaxSpeedY:       15,
		BallHitJitter:       2,
		BallSpinDivisor:     6,
		BallMaxAcceleration: 10,
	}
}

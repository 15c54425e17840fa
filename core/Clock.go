package core

import "time"

// Clock measures the time between loop iterations and caps the frame rate.
type Clock struct {
	frameTime time.Duration
	last      time.Time
	fps       float64

	now   func() time.Time
	sleep func(time.Duration)
}

// NewClock caps the loop at frameRate iterations per second; 0 disables the cap.
func NewClock(frameRate int) *Clock {
	return newClock(frameRate, time.Now, time.Sleep)
}

func newClock(frameRate int, now func() time.Time, sleep func(time.Duration)) *Clock {
	c := &Clock{now: now, sleep: sleep}
	if frameRate > 0 {
		c.frameTime = time.Second / time.Duration(frameRate)
	}
	c.last = now()
	return c
}

// Tick waits until a frame interval has passed since the previous Tick
// and returns the seconds elapsed since then.
func (c *Clock) Tick() float64 {
	now := c.now()
	if elapsed := now.Sub(c.last); elapsed < c.frameTime {
		c.sleep(c.frameTime - elapsed)
		now = c.now()
	}

	dt := now.Sub(c.last).Seconds()
	c.last = now
	if dt > 0 {
		// 平滑一下，不然 HUD 上的數字一直跳
		c.fps = 0.9*c.fps + 0.1/dt
	}
	return dt
}

func (c *Clock) FPS() float64 {
	return c.fps
}

func (c *Clock) FrameTime() time.Duration {
	return c.frameTime
}

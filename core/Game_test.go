package core

import (
	"math"
	"math/rand"
	"testing"
)

func newTestGame(seed int64) (*Game, *Controls) {
	controls := &Controls{}
	return NewGame(DefaultPlayingArea(), DefaultTuning(), controls, rand.New(rand.NewSource(seed))), controls
}

func TestGameEntityOrder(t *testing.T) {
	g, _ := newTestGame(1)
	entities := g.Entities()

	if len(entities) != 3 {
		t.Fatalf("expected 3 entities, got %d", len(entities))
	}
	if entities[0] != Entity(g.Player1) || entities[1] != Entity(g.Player2) || entities[2] != Entity(g.Ball) {
		t.Error("expected paddles to be updated before the ball")
	}
	if g.Paddle(Player2) != g.Player2 {
		t.Error("expected Paddle(Player2) to return the right paddle")
	}
}

// The ball must see the paddle speed of the current tick, not the previous one.
func TestGameBallUsesCurrentPaddleSpeed(t *testing.T) {
	g, controls := newTestGame(2)
	controls.Set(Player1, Intent{Down: true})
	boundary := g.Ball.PaddleBoundary(g.Player1)
	g.Ball.Place(boundary+1, 270, 20, 10, -1, 1)

	events := g.Tick(tick)

	if g.Player1.Speed == 0 {
		t.Fatal("expected the left paddle to be moving")
	}
	want := 10 + g.Player1.Speed/DefaultTuning().BallSpinDivisor
	if math.Abs(g.Ball.SpeedY-want) > 1e-9 {
		t.Errorf("expected speedY %v from this tick's paddle speed, got %v", want, g.Ball.SpeedY)
	}
	if len(events) != 1 || events[0].Kind != EventPaddleHit {
		t.Errorf("expected a single paddle hit, got %+v", events)
	}
}

func TestGameGoalIncrementsScore(t *testing.T) {
	g, _ := newTestGame(3)
	g.Player1.Y = 0
	g.Ball.Place(1, 400, 30, 0, -1, 1)

	events := g.Tick(tick)

	if g.Score() != (Score{0, 1}) {
		t.Errorf("expected score 0:1, got %v", g.Score())
	}
	if len(events) != 1 || events[0].Kind != EventGoal || events[0].Player != Player2 {
		t.Errorf("expected one goal for player two, got %+v", events)
	}
	if g.Frame().Score.Of(Player2) != 1 {
		t.Error("expected the frame to carry the score")
	}
}

func TestGameScoreNeverDecreases(t *testing.T) {
	g, controls := newTestGame(4)
	rng := rand.New(rand.NewSource(5))
	goals := 0
	var last Score

	for i := 0; i < 50000; i++ {
		controls.Set(Player1, Intent{Up: rng.Intn(4) == 0, Down: rng.Intn(4) == 0})
		controls.Set(Player2, Intent{Up: rng.Intn(4) == 0, Down: rng.Intn(4) == 0})
		for _, ev := range g.Tick(rng.Float64() / 20) {
			if ev.Kind == EventGoal {
				goals++
			}
		}

		score := g.Score()
		if score[0] < last[0] || score[1] < last[1] {
			t.Fatalf("step %d: score went from %v to %v", i, last, score)
		}
		last = score
	}

	if last[0]+last[1] != goals {
		t.Errorf("expected score total %d to match goal events, got %v", goals, last)
	}
	if goals == 0 {
		t.Error("expected at least one goal in a long random match")
	}
}

func TestGameTickZero(t *testing.T) {
	g, _ := newTestGame(6)
	g.Ball.Place(390, 200, 20, 10, 1, 1)
	g.Player1.Speed = 10
	p1Y, p2Y := g.Player1.Y, g.Player2.Y

	events := g.Tick(0)

	if len(events) != 0 {
		t.Errorf("expected no events, got %+v", events)
	}
	if g.Player1.Y != p1Y || g.Player2.Y != p2Y || g.Ball.X != 390 || g.Ball.Y != 200 {
		t.Error("expected no movement on a zero tick")
	}
	if g.Player1.Speed != 10-g.Player1.Friction {
		t.Errorf("expected friction to apply once, speed %v", g.Player1.Speed)
	}
	if g.Score() != (Score{}) {
		t.Errorf("expected score untouched, got %v", g.Score())
	}
}

func TestGameNegativeDtIsClamped(t *testing.T) {
	g, _ := newTestGame(7)
	g.Ball.Place(390, 200, 20, 10, 1, 1)

	g.Tick(-1)

	if g.Ball.X != 390 || g.Ball.Y != 200 {
		t.Errorf("expected negative dt to act as zero, ball at (%v,%v)", g.Ball.X, g.Ball.Y)
	}
}

func TestGameFrame(t *testing.T) {
	g, _ := newTestGame(8)
	frame := g.Frame()

	if len(frame.Sprites) != 3 {
		t.Fatalf("expected 3 sprites, got %d", len(frame.Sprites))
	}
	if frame.Sprites[2].Kind != KindBall || frame.Sprites[0].Kind != KindPaddle {
		t.Error("unexpected sprite order")
	}
	if frame.Area != g.Area {
		t.Error("expected the frame to carry the playing area")
	}
}

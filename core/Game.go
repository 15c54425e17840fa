package core

import "math/rand"

// Score is indexed by Player.
type Score [2]int

func (s Score) Of(player Player) int {
	return s[player]
}

// Frame is a read-only snapshot handed to the renderer.
type Frame struct {
	Area    PlayingArea
	Sprites []Sprite
	Score   Score
	Paused  bool
	Debug   string
}

type Game struct {
	Area    PlayingArea
	Player1 *Paddle
	Player2 *Paddle
	Ball    *Ball

	controls *Controls
	score    Score
	entities []Entity
	events   []Event
}

// NewGame lays out both paddles and serves the first ball.
func NewGame(area PlayingArea, tuning Tuning, controls *Controls, rng *rand.Rand) *Game {
	g := &Game{
		Area:     area,
		controls: controls,
	}
	g.Player1 = NewPaddle(Player1, area, tuning, controls)
	g.Player2 = NewPaddle(Player2, area, tuning, controls)
	g.Ball = NewBall(area, tuning, [2]*Paddle{g.Player1, g.Player2}, rng, g.record)

	// 球拍要先更新，球才會用到這一個 tick 的球拍位置與速度
	g.entities = []Entity{g.Player1, g.Player2, g.Ball}
	return g
}

// Tick advances every entity by dt seconds and returns the events raised meanwhile.
func (g *Game) Tick(dt float64) []Event {
	if dt < 0 {
		dt = 0
	}
	g.events = nil
	for _, e := range g.entities {
		e.Update(dt)
	}
	return g.events
}

func (g *Game) record(ev Event) {
	if ev.Kind == EventGoal {
		g.score[ev.Player] += 1
	}
	g.events = append(g.events, ev)
}

func (g *Game) Score() Score {
	return g.score
}

func (g *Game) Paddle(player Player) *Paddle {
	if player == Player1 {
		return g.Player1
	}
	return g.Player2
}

func (g *Game) Controls() *Controls {
	return g.controls
}

// Entities returns the entities in update order.
func (g *Game) Entities() []Entity {
	entities := make([]Entity, len(g.entities))
	copy(entities, g.entities)
	return entities
}

func (g *Game) Frame() Frame {
	sprites := make([]Sprite, 0, len(g.entities))
	for _, e := range g.entities {
		sprites = append(sprites, e.Sprite())
	}
	return Frame{Area: g.Area, Sprites: sprites, Score: g.score}
}

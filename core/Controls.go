package core

// Intent is what a player currently asks their paddle to do.
type Intent struct {
	Up, Down bool
}

// Direction is +1 for down, -1 for up and 0 when neither or both are held.
func (i Intent) Direction() float64 {
	switch {
	case i.Up && i.Down:
		return 0
	case i.Up:
		return -1
	case i.Down:
		return 1
	}
	return 0
}

// Controls is the input state of both players. The keyboard writes it, paddles read it.
type Controls struct {
	players [2]Intent
}

func (c *Controls) For(player Player) Intent {
	if c == nil {
		return Intent{}
	}
	return c.players[player]
}

func (c *Controls) Set(player Player, intent Intent) {
	c.players[player] = intent
}

func (c *Controls) Reset() {
	c.players = [2]Intent{}
}

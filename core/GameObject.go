package core

type Player int

const (
	Player1 Player = iota // 左邊球拍
	Player2               // 右邊球拍
)

func (p Player) String() string {
	if p == Player1 {
		return "Player one"
	}
	return "Player two"
}

func (p Player) Opponent() Player {
	if p == Player1 {
		return Player2
	}
	return Player1
}

type Color uint32

const (
	ColorWhite Color = 0xFFFFFF
	ColorGreen Color = 0x33CC33
	ColorRed   Color = 0xE03030
	ColorBlue  Color = 0x3366E6
	ColorGray  Color = 0x808080
)

type Kind int

const (
	KindPaddle Kind = iota
	KindBall
)

// Rect is an axis-aligned box in playing-area units, top-left origin.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

func (r Rect) Right() float64 {
	return r.X + r.Width
}

func (r Rect) Bottom() float64 {
	return r.Y + r.Height
}

// Sprite is what the renderer needs to draw one entity.
type Sprite struct {
	Kind  Kind
	Box   Rect
	Color Color
}

// Entity is anything the game advances once per tick and draws once per frame.
type Entity interface {
	Update(dt float64)
	Sprite() Sprite
}

// boundsCheck returns value, or the closest bound it exceeds.
func boundsCheck(lower, upper, value float64) float64 {
	if value > upper {
		value = upper
	}
	if value < lower {
		value = lower
	}
	return value
}

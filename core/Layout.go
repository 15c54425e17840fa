package core

// Logical window. The renderer scales it to whatever the terminal offers.
const (
	WindowWidth  = 800
	WindowHeight = 600
	WindowTitle  = "Pong"
)

const (
	MarginX        = 20 // 左右共留的邊
	MarginY        = 40 // 上下共留的邊，給分數列
	DividerSpacing = 20 // 中線虛線間距
	DividerLength  = 10
)

// PlayingArea is the field the entities move in. It never changes after start.
type PlayingArea struct {
	Width, Height float64
}

func NewPlayingArea(windowWidth, windowHeight int) PlayingArea {
	return PlayingArea{
		Width:  float64(windowWidth - MarginX),
		Height: float64(windowHeight - MarginY),
	}
}

func DefaultPlayingArea() PlayingArea {
	return NewPlayingArea(WindowWidth, WindowHeight)
}

func (a PlayingArea) Valid() bool {
	return a.Width > 0 && a.Height > 0
}

func (a PlayingArea) Center() (float64, float64) {
	return a.Width / 2, a.Height / 2
}

// PercentX converts a percentage of the area width to units.
func (a PlayingArea) PercentX(percent float64) float64 {
	return percent * a.Width / 100
}

// PercentY converts a percentage of the area height to units.
func (a PlayingArea) PercentY(percent float64) float64 {
	return percent * a.Height / 100
}

// PaddleX returns the fixed x of a player's paddle of the given width.
func (a PlayingArea) PaddleX(player Player, offset, width float64) float64 {
	if player == Player1 {
		return offset
	}
	return a.Width - (offset + width)
}

// DividerMarks returns the top y of every dash of the center line.
func (a PlayingArea) DividerMarks() []float64 {
	var marks []float64
	for y := 0.0; y+DividerLength <= a.Height; y += DividerSpacing {
		marks = append(marks, y)
	}
	return marks
}

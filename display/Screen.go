package display

import (
	"math"
	"strconv"

	"github.com/gdamore/tcell"

	"pong/core"
)

const BallSymbol = 0x25CF    // 球符號
const PaddleSymbol = 0x2588  // 球拍符號
const DividerSymbol = 0x2590 // 中線
const BorderSymbol = 0x2500  // 上邊界

const HeaderRows = 7 // 標題一行、分數五行、邊界一行
const MinColumns = 40
const MinRows = HeaderRows + 10

type Screen struct {
	screen tcell.Screen
	style  tcell.Style
}

func NewScreen(screen tcell.Screen) *Screen {
	style := tcell.StyleDefault.
		Background(tcell.ColorBlack).
		Foreground(tcell.ColorWhite)
	screen.SetStyle(style)
	return &Screen{screen: screen, style: style}
}

// Viewport maps playing-area units to terminal cells below the header.
type Viewport struct {
	Columns, Rows int
	area          core.PlayingArea
}

func NewViewport(area core.PlayingArea, columns, rows int) Viewport {
	return Viewport{Columns: columns, Rows: rows, area: area}
}

func (v Viewport) Fits() bool {
	return v.Columns >= MinColumns && v.Rows >= MinRows
}

func (v Viewport) col(x float64) float64 {
	return x * float64(v.Columns) / v.area.Width
}

func (v Viewport) row(y float64) float64 {
	return y * float64(v.Rows-HeaderRows) / v.area.Height
}

// Cells returns the column and row span of a box, at least one cell each way.
func (v Viewport) Cells(box core.Rect) (col, row, width, height int) {
	col = int(math.Floor(v.col(box.X)))
	row = int(math.Floor(v.row(box.Y)))
	right := int(math.Ceil(v.col(box.Right())))
	bottom := int(math.Ceil(v.row(box.Bottom())))

	width, height = right-col, bottom-row
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return col, row + HeaderRows, width, height
}

func (s *Screen) Size() (int, int) {
	return s.screen.Size()
}

// Draw paints a whole frame. Nothing is visible until Show.
func (s *Screen) Draw(frame core.Frame) {
	s.screen.Clear()

	windowWidth, windowHeight := s.screen.Size()
	view := NewViewport(frame.Area, windowWidth, windowHeight)
	if !view.Fits() {
		s.drawText(0, 0, "terminal too small", s.style)
		return
	}

	s.drawText(windowWidth/2-len(core.WindowTitle)/2, 0, core.WindowTitle, s.style)
	if frame.Debug != "" {
		s.drawText(0, 0, frame.Debug, s.style.Foreground(tcell.ColorGray))
	}

	//分數更新
	s.drawLetters(windowWidth/4, 1, strconv.Itoa(frame.Score.Of(core.Player1)))
	s.drawLetters((windowWidth/4)*3, 1, strconv.Itoa(frame.Score.Of(core.Player2)))

	for c := 0; c < windowWidth; c++ {
		s.screen.SetContent(c, HeaderRows-1, BorderSymbol, nil, s.style.Foreground(tcell.ColorGray))
	}

	//中線
	gray := s.style.Foreground(tcell.ColorGray)
	for _, y := range frame.Area.DividerMarks() {
		col, row, _, height := view.Cells(core.Rect{X: frame.Area.Width / 2, Y: y, Height: core.DividerLength})
		s.Print(row, col, 1, height, DividerSymbol, gray)
	}

	for _, sprite := range frame.Sprites {
		col, row, width, height := view.Cells(sprite.Box)
		symbol := rune(PaddleSymbol)
		if sprite.Kind == core.KindBall {
			symbol = BallSymbol
			width, height = 1, 1
		}
		s.Print(row, col, width, height, symbol, s.style.Foreground(Color(sprite.Color)))
	}

	if frame.Paused {
		msg := "PAUSED - press p to resume"
		s.drawText(windowWidth/2-len(msg)/2, HeaderRows+(windowHeight-HeaderRows)/2, msg, s.style.Reverse(true))
	}
}

func (s *Screen) Show() {
	s.screen.Show()
}

// Print fills a block of cells with ch, clipped to the screen.
func (s *Screen) Print(row, col, width, height int, ch rune, style tcell.Style) {
	windowWidth, windowHeight := s.screen.Size()
	for r := row; r < row+height; r++ {
		for c := col; c < col+width; c++ {
			if c < 0 || r < 0 || c >= windowWidth || r >= windowHeight {
				continue
			}
			s.screen.SetContent(c, r, ch, nil, style)
		}
	}
}

// drawLetters draws word in big glyphs centered on column x, top row y.
func (s *Screen) drawLetters(x int, y int, word string) {
	startX := x - TextWidth(word)/2

	for i, letter := range []rune(word) {
		offsetX := startX + i*(DigitWidth+1)
		for _, cell := range GetCellsFromChar(letter) {
			s.screen.SetContent(offsetX+cell[0], y+cell[1], PaddleSymbol, nil, s.style)
		}
	}
}

func (s *Screen) drawText(x, y int, text string, style tcell.Style) {
	for i, r := range []rune(text) {
		s.screen.SetContent(x+i, y, r, nil, style)
	}
}

// Color converts a core color to a terminal color.
func Color(c core.Color) tcell.Color {
	return tcell.NewHexColor(int32(c))
}

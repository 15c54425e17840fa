package display

const (
	DigitWidth  = 3
	DigitHeight = 5
)

var digitRows = map[rune][DigitHeight]string{
	'0': {"###", "# #", "# #", "# #", "###"},
	'1': {" # ", "## ", " # ", " # ", "###"},
	'2': {"###", "  #", "###", "#  ", "###"},
	'3': {"###", "  #", " ##", "  #", "###"},
	'4': {"# #", "# #", "###", "  #", "  #"},
	'5': {"###", "#  ", "###", "  #", "###"},
	'6': {"###", "#  ", "###", "# #", "###"},
	'7': {"###", "  #", "  #", "  #", "  #"},
	'8': {"###", "# #", "###", "# #", "###"},
	'9': {"###", "# #", "###", "  #", "###"},
	':': {"   ", " # ", "   ", " # ", "   "},
}

// GetCellsFromChar returns the lit (x, y) cells of a big glyph, nil for unknown characters.
func GetCellsFromChar(char rune) [][2]int {
	rows, ok := digitRows[char]
	if !ok {
		return nil
	}
	var cells [][2]int
	for y, row := range rows {
		for x, c := range row {
			if c == '#' {
				cells = append(cells, [2]int{x, y})
			}
		}
	}
	return cells
}

// TextWidth is the number of columns a big-glyph word takes, one blank column between glyphs.
func TextWidth(word string) int {
	n := len([]rune(word))
	if n == 0 {
		return 0
	}
	return n*DigitWidth + (n - 1)
}

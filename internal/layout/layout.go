// Package layout partitions the terminal into the dashboard's three regions.
package layout

// TitleHeight is the fixed height of the title region in cells. Screens
// shorter than this get whatever is available.
const TitleHeight = 2

// Rect is a rectangle of terminal cells.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Empty reports whether the rectangle has no drawable area.
func (r Rect) Empty() bool { return r.Width <= 0 || r.Height <= 0 }

// Regions are the three vertically stacked areas of the dashboard, top to
// bottom. They always tile the screen rectangle exactly: heights sum to the
// screen height and each region starts where the previous one ends.
type Regions struct {
	Title  Rect
	CPU    Rect
	Memory Rect
}

// Split partitions screen into title, CPU-gauge, and memory-gauge regions.
// The title takes TitleHeight cells (clamped to the screen height); the
// remainder is split between the gauges with the CPU gauge taking the larger
// half when the remainder is odd.
func Split(screen Rect) Regions {
	w := screen.Width
	h := screen.Height
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}

	titleH := TitleHeight
	if h < titleH {
		titleH = h
	}
	rest := h - titleH
	cpuH := (rest + 1) / 2
	memH := rest - cpuH

	return Regions{
		Title:  Rect{X: screen.X, Y: screen.Y, Width: w, Height: titleH},
		CPU:    Rect{X: screen.X, Y: screen.Y + titleH, Width: w, Height: cpuH},
		Memory: Rect{X: screen.X, Y: screen.Y + titleH + cpuH, Width: w, Height: memH},
	}
}

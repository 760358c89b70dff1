package windowsmenu

import (
	"math"

	"github.com/atomicstack/termdi/internal/mdi"
)

const (
	cascadeStepX = 2
	cascadeStepY = 1
)

// arrangeFunc lays out the visible windows of d and returns how many it moved.
type arrangeFunc func(d *mdi.Desktop) (int, error)

// TileVertically places the visible windows side by side at full height.
func TileVertically(d *mdi.Desktop) (int, error) {
	windows := d.Visible()
	if len(windows) == 0 {
		return 0, nil
	}
	width, height := d.Size()
	w := width / len(windows)
	x := 0
	for _, win := range windows {
		if err := d.SetBounds(win, mdi.Rect{X: x, Y: 0, W: w, H: height}); err != nil {
			return 0, err
		}
		x += w
	}
	return len(windows), nil
}

// TileHorizontally stacks the visible windows at full width.
func TileHorizontally(d *mdi.Desktop) (int, error) {
	windows := d.Visible()
	if len(windows) == 0 {
		return 0, nil
	}
	width, height := d.Size()
	h := height / len(windows)
	y := 0
	for _, win := range windows {
		if err := d.SetBounds(win, mdi.Rect{X: 0, Y: y, W: width, H: h}); err != nil {
			return 0, err
		}
		y += h
	}
	return len(windows), nil
}

// Tile lays the visible windows out on a near-square grid.
func Tile(d *mdi.Desktop) (int, error) {
	windows := d.Visible()
	if len(windows) == 0 {
		return 0, nil
	}
	cols, rows := gridSize(len(windows))
	width, height := d.Size()
	w := width / cols
	h := height / rows
	idx := 0
	for r := 0; r < rows; r++ {
		for c := 0; c < cols && idx < len(windows); c++ {
			if err := d.SetBounds(windows[idx], mdi.Rect{X: c * w, Y: r * h, W: w, H: h}); err != nil {
				return 0, err
			}
			idx++
		}
	}
	return len(windows), nil
}

func gridSize(n int) (cols, rows int) {
	cols = int(math.Floor(math.Sqrt(float64(n))))
	rows = cols
	if cols*rows < n {
		cols++
		if cols*rows < n {
			rows++
		}
	}
	return cols, rows
}

// Cascade stacks the visible windows at 60% of the desktop, each offset from
// the previous one, wrapping at the edges.
func Cascade(d *mdi.Desktop) (int, error) {
	windows := d.Visible()
	if len(windows) == 0 {
		return 0, nil
	}
	width, height := d.Size()
	w := int(float64(width) * 0.6)
	h := int(float64(height) * 0.6)
	x, y := 0, 0
	for _, win := range windows {
		if err := d.SetBounds(win, mdi.Rect{X: x, Y: y, W: w, H: h}); err != nil {
			return 0, err
		}
		x += cascadeStepX
		y += cascadeStepY
		if x+w > width {
			x = 0
		}
		if y+h > height {
			y = 0
		}
	}
	return len(windows), nil
}

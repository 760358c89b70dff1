package mdi

const (
	locationStepX = 4
	locationStepY = 2

	windowMarginW = 10
	windowMarginH = 5
	windowMinW    = 20
	windowMinH    = 6
)

// locationGenerator cascades new windows from the top-left corner and wraps
// back once a window would start too close to the far edges.
type locationGenerator struct {
	x, y int
}

func (g *locationGenerator) next(width, height int) (int, int) {
	g.x += locationStepX
	g.y += locationStepY
	if g.x > width-locationStepX || g.y > height-locationStepY {
		g.x = locationStepX
		g.y = locationStepY
	}
	return g.x, g.y
}

// defaultWindowSize is the container minus fixed margins, clamped to a
// minimum size.
func defaultWindowSize(width, height int) (int, int) {
	w := width - windowMarginW
	if w < windowMinW {
		w = windowMinW
	}
	h := height - windowMarginH
	if h < windowMinH {
		h = windowMinH
	}
	return w, h
}

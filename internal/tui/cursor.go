package tui

import (
	"github.com/DoyleJ11/freecell-client/internal/board"
	"github.com/DoyleJ11/freecell-client/internal/selection"
)

type direction int

const (
	dirLeft direction = iota
	dirRight
	dirUp
	dirDown
)

// point places a target on screen: the cell row is y=0 with free cells at
// x=0..3 and home cells at x=4..7; column c card p sits at x=c, y=p+1.
type point struct{ x, y int }

func pointOf(t selection.Target) point {
	switch t.Location.Kind {
	case board.KindFree:
		return point{x: t.Location.Index, y: 0}
	case board.KindHome:
		return point{x: board.FreeCells + t.Location.Index, y: 0}
	default:
		return point{x: t.Location.Index, y: t.Position + 1}
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// step returns the index of the target reached from cur by moving in dir,
// or cur when nothing lies that way.
func step(targets []selection.Target, cur int, dir direction) int {
	if cur < 0 || cur >= len(targets) {
		return 0
	}
	from := pointOf(targets[cur])
	best := cur
	bestPrimary, bestSecondary := 0, 0

	for i, t := range targets {
		if i == cur {
			continue
		}
		p := pointOf(t)
		var primary, secondary int
		switch dir {
		case dirLeft:
			if p.x >= from.x {
				continue
			}
			primary, secondary = from.x-p.x, abs(p.y-from.y)
		case dirRight:
			if p.x <= from.x {
				continue
			}
			primary, secondary = p.x-from.x, abs(p.y-from.y)
		case dirUp:
			if p.x != from.x || p.y >= from.y {
				continue
			}
			primary = from.y - p.y
		case dirDown:
			if p.x != from.x || p.y <= from.y {
				continue
			}
			primary = p.y - from.y
		}
		if best == cur || primary < bestPrimary || (primary == bestPrimary && secondary < bestSecondary) {
			best, bestPrimary, bestSecondary = i, primary, secondary
		}
	}
	return best
}

// indexOf finds a target in a freshly built list so the cursor survives redraws.
func indexOf(targets []selection.Target, t selection.Target) int {
	for i, c := range targets {
		if c.Same(t) {
			return i
		}
	}
	return -1
}

// nearest is the target closest to where t used to be.
func nearest(targets []selection.Target, t selection.Target) int {
	if len(targets) == 0 {
		return 0
	}
	if i := indexOf(targets, t); i >= 0 {
		return i
	}
	want := pointOf(t)
	best, bestDist := 0, -1
	for i, c := range targets {
		p := pointOf(c)
		d := abs(p.x-want.x)*100 + abs(p.y-want.y)
		if bestDist < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

package draw

import "github.com/lounah/diary/pkg/diary/geom"

// Gravity selects which edge of a rectangle an elevation shadow hangs from.
type Gravity int

const (
	GravityTop Gravity = iota
	GravityBottom
)

// TopRoundRect rounds only the two top corners: a rounded rectangle with a plain
// rectangle laid over its lower part.
func TopRoundRect(r geom.Rect, radius float32, c Color) []Command {
	cmds := []Command{FillRoundRect{Rect: r, Radius: radius, Color: c}}
	if r.Top+radius < r.Bottom {
		cmds = append(cmds, FillRect{
			Rect:  geom.Rect{Left: r.Left, Top: r.Top + radius, Right: r.Right, Bottom: r.Bottom},
			Color: c,
		})
	}
	return cmds
}

// Elevation draws a soft shadow of the given height next to r. With GravityTop the
// shadow rises above r's top edge, with GravityBottom it drops below r's bottom edge.
func Elevation(r geom.Rect, height float32, gravity Gravity, from, to Color) VerticalGradient {
	switch gravity {
	case GravityBottom:
		return VerticalGradient{
			Rect: geom.Rect{Left: r.Left, Top: r.Top, Right: r.Right, Bottom: r.Bottom + height},
			From: from,
			To:   to,
		}
	default:
		return VerticalGradient{
			Rect: geom.Rect{Left: r.Left, Top: r.Top - height, Right: r.Right, Bottom: r.Bottom},
			From: from,
			To:   to,
		}
	}
}

// PressedCircle is the touch feedback disc centred on target, extending extra
// pixels past half its width.
func PressedCircle(target geom.Rect, extra float32, c Color) FillCircle {
	w := target.Width()
	if w < 0 {
		w = -w
	}
	return FillCircle{
		Center: target.Center(),
		Radius: w/2 + extra,
		Color:  c,
	}
}

// Translate returns copies of cmds moved by dx, dy.
func Translate(cmds []Command, dx, dy float32) []Command {
	if dx == 0 && dy == 0 {
		return cmds
	}
	out := make([]Command, 0, len(cmds))
	for _, cmd := range cmds {
		switch c := cmd.(type) {
		case FillRect:
			c.Rect = c.Rect.Offset(dx, dy)
			out = append(out, c)
		case FillRoundRect:
			c.Rect = c.Rect.Offset(dx, dy)
			out = append(out, c)
		case FillCircle:
			c.Center = geom.Point{X: c.Center.X + dx, Y: c.Center.Y + dy}
			out = append(out, c)
		case VerticalGradient:
			c.Rect = c.Rect.Offset(dx, dy)
			out = append(out, c)
		case Icon:
			c.Rect = c.Rect.Offset(dx, dy)
			out = append(out, c)
		case Text:
			c.X += dx
			c.Baseline += dy
			out = append(out, c)
		default:
			out = append(out, cmd)
		}
	}
	return out
}

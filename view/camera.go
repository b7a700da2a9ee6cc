// Package view holds renderer-side state that never touches the engine:
// the camera and particle trails.
package view

const (
	MinZoom  = 0.1 // Limit zoom out so the plane stays visible
	MaxZoom  = 8.0
	ZoomStep = 0.1
)

// Camera maps world coordinates to screen coordinates: screen = (world - cam) * zoom
type Camera struct {
	X, Y float64
	Zoom float64
}

// NewCamera returns an identity camera
func NewCamera() Camera {
	return Camera{Zoom: 1}
}

// ToScreen converts a world position to screen pixels
func (c *Camera) ToScreen(wx, wy float64) (float64, float64) {
	return (wx - c.X) * c.Zoom, (wy - c.Y) * c.Zoom
}

// ToWorld converts screen pixels to a world position
func (c *Camera) ToWorld(sx, sy float64) (float64, float64) {
	return sx/c.Zoom + c.X, sy/c.Zoom + c.Y
}

// ZoomAt changes zoom by steps wheel notches, keeping the world point
// under (sx, sy) fixed on screen
func (c *Camera) ZoomAt(sx, sy, steps float64) {
	if steps == 0 {
		return
	}
	wx, wy := c.ToWorld(sx, sy)
	c.Zoom += steps * ZoomStep * c.Zoom
	if c.Zoom < MinZoom {
		c.Zoom = MinZoom
	} else if c.Zoom > MaxZoom {
		c.Zoom = MaxZoom
	}
	c.X = wx - sx/c.Zoom
	c.Y = wy - sy/c.Zoom
}

// Pan moves the view by a screen-space drag
func (c *Camera) Pan(dx, dy float64) {
	c.X -= dx / c.Zoom
	c.Y -= dy / c.Zoom
}

// Reset returns to the identity view
func (c *Camera) Reset() {
	*c = NewCamera()
}

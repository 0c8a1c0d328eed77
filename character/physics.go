package character

import "github.com/jakecoffman/cp"

const (
	ActionIdle = "idle"
	ActionFall = "fall"
)

// Body is the vertical physics state of a character. Screen coordinates are
// used, so positive Y points down.
type Body struct {
	Position cp.Vector
	Velocity cp.Vector
	Gravity  float64
	Grounded bool
}

// integrate performs one semi-implicit Euler step: velocity first, then
// position from the new velocity.
func (b *Body) integrate(dt float64) {
	b.Velocity.Y += b.Gravity * dt
	b.Position.Y += b.Velocity.Y * dt
}

// land clamps the body onto floorY if it reached it. It reports whether the
// body is now grounded.
func (b *Body) land(floorY float64) bool {
	if b.Position.Y < floorY {
		return false
	}
	b.Position.Y = floorY
	b.Velocity.Y = 0
	b.Grounded = true
	return true
}

// ApplyPhysics advances the body by dt seconds inside a surface boundsHeight
// pixels tall. A falling character switches to the fall action; when the
// bottom of the frame currently shown reaches the bottom of the surface it
// lands and goes idle. Nothing happens once grounded.
func (c *Character) ApplyPhysics(dt, boundsHeight float64) {
	if c.body.Grounded {
		return
	}

	c.body.integrate(dt)

	if c.body.Velocity.Y > 0 && c.cursor.Action != ActionFall {
		c.SetAction(ActionFall)
	}

	floorY := boundsHeight - float64(c.CurrentFrameImage().Bounds().Dy())
	if c.body.land(floorY) {
		c.SetAction(ActionIdle)
	}
}

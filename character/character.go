package character

import (
	"image"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/deskpet/common"
	"github.com/milk9111/deskpet/prefabs"
)

// Surface is anything a frame can be blitted onto.
type Surface interface {
	Blit(img image.Image, pos cp.Vector)
}

// Config holds the initial physics state.
type Config struct {
	Spawn   cp.Vector
	Gravity float64
}

// DefaultConfig spawns at the default position under default gravity.
func DefaultConfig() Config {
	return Config{Spawn: common.Spawn(), Gravity: common.Gravity}
}

// Character is an animated sprite with vertical physics. It is driven by the
// host once per tick: Update, then ApplyPhysics, then Draw.
type Character struct {
	name        string
	description string
	thumbnail   image.Image

	catalog *Catalog
	cursor  Cursor
	body    Body
}

// New loads the catalog and thumbnail described by spec. It fails if any
// image cannot be loaded or if the idle or fall actions are missing.
func New(spec *prefabs.CharacterSpec, loader ImageLoader, cfg Config) (*Character, error) {
	catalog, err := LoadCatalog(spec, loader)
	if err != nil {
		return nil, err
	}
	for _, name := range []string{ActionIdle, ActionFall} {
		if !catalog.Has(name) {
			return nil, &LoadError{Character: spec.Name, Action: name, Frame: -1, Err: ErrMissingAction}
		}
	}
	if spec.Thumbnail == "" {
		return nil, &LoadError{Character: spec.Name, Frame: -1, Path: "thumbnail", Err: ErrMissingField}
	}
	thumb, err := loader.LoadImage(spec.Thumbnail)
	if err != nil {
		return nil, &LoadError{Character: spec.Name, Frame: -1, Path: spec.Thumbnail, Err: err}
	}

	if cfg.Gravity <= 0 {
		cfg.Gravity = common.Gravity
	}

	return &Character{
		name:        spec.Name,
		description: spec.Description,
		thumbnail:   thumb,
		catalog:     catalog,
		cursor:      Cursor{Action: ActionIdle},
		body: Body{
			Position: cfg.Spawn,
			Gravity:  cfg.Gravity,
		},
	}, nil
}

// Name, Description and Thumbnail come from the definition document.
func (c *Character) Name() string           { return c.name }
func (c *Character) Description() string    { return c.description }
func (c *Character) Thumbnail() image.Image { return c.thumbnail }

// Catalog returns the actions loaded for this character. It must not be
// modified.
func (c *Character) Catalog() *Catalog { return c.catalog }

// Cursor returns a copy of the animation cursor.
func (c *Character) Cursor() Cursor { return c.cursor }

// CurrentAction is the name of the action playing.
func (c *Character) CurrentAction() string { return c.cursor.Action }

// Position, Velocity and Grounded expose the physics state for placement.
func (c *Character) Position() cp.Vector { return c.body.Position }
func (c *Character) Velocity() cp.Vector { return c.body.Velocity }
func (c *Character) Grounded() bool      { return c.body.Grounded }

// SetAction switches the playing action. Unknown names and the action already
// playing are ignored.
func (c *Character) SetAction(name string) {
	c.cursor.set(c.catalog, name)
}

// Update advances the animation by one tick.
func (c *Character) Update() {
	c.cursor.advance(c.currentAction())
}

// CurrentFrameImage returns the image of the frame currently shown.
func (c *Character) CurrentFrameImage() image.Image {
	return c.currentAction().Frames[c.cursor.Frame].Image
}

// Draw blits the current frame onto target at pos.
func (c *Character) Draw(target Surface, pos cp.Vector) {
	target.Blit(c.CurrentFrameImage(), pos)
}

func (c *Character) currentAction() *Action {
	a, _ := c.catalog.Action(c.cursor.Action)
	return a
}

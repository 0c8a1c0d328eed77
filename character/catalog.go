package character

import (
	"image"
	"sort"

	"github.com/milk9111/deskpet/prefabs"
)

// ImageLoader resolves an image path, relative to the character directory,
// to a decoded image.
type ImageLoader interface {
	LoadImage(path string) (image.Image, error)
}

// Frame is one still of an action and how many ticks it stays on screen.
type Frame struct {
	Image    image.Image
	Duration int
}

// Action is a named animation clip.
type Action struct {
	Name   string
	Loop   bool
	Frames []Frame
}

// Len returns the number of frames in the clip.
func (a *Action) Len() int { return len(a.Frames) }

// Catalog holds every action of one character. It is built once and never
// modified afterwards.
type Catalog struct {
	actions map[string]*Action
}

// LoadCatalog resolves every frame of every action through loader. All images
// are decoded up front; the first failure aborts the whole load.
func LoadCatalog(spec *prefabs.CharacterSpec, loader ImageLoader) (*Catalog, error) {
	if spec == nil {
		return nil, &LoadError{Frame: -1, Err: ErrMissingField}
	}

	names := make([]string, 0, len(spec.Actions))
	for name := range spec.Actions {
		names = append(names, name)
	}
	sort.Strings(names)

	c := &Catalog{actions: make(map[string]*Action, len(names))}
	for _, name := range names {
		action, err := loadAction(spec.Name, name, spec.Actions[name], loader)
		if err != nil {
			return nil, err
		}
		c.actions[name] = action
	}
	return c, nil
}

func loadAction(character, name string, spec prefabs.ActionSpec, loader ImageLoader) (*Action, error) {
	if len(spec.Frames) == 0 {
		return nil, &LoadError{Character: character, Action: name, Frame: -1, Err: ErrNoFrames}
	}

	action := &Action{
		Name:   name,
		Loop:   spec.Looping(),
		Frames: make([]Frame, 0, len(spec.Frames)),
	}
	for i, frame := range spec.Frames {
		if frame.Image == "" {
			return nil, &LoadError{Character: character, Action: name, Frame: i, Err: ErrMissingField}
		}
		ticks := frame.Ticks()
		if ticks <= 0 {
			return nil, &LoadError{Character: character, Action: name, Frame: i, Err: ErrBadDuration}
		}
		p := prefabs.SpritePath(name, frame.Image)
		img, err := loader.LoadImage(p)
		if err != nil {
			return nil, &LoadError{Character: character, Action: name, Frame: i, Path: p, Err: err}
		}
		action.Frames = append(action.Frames, Frame{Image: img, Duration: ticks})
	}
	return action, nil
}

// Action returns the clip registered under name.
func (c *Catalog) Action(name string) (*Action, bool) {
	if c == nil {
		return nil, false
	}
	a, ok := c.actions[name]
	return a, ok
}

// Has reports whether name is a known action.
func (c *Catalog) Has(name string) bool {
	_, ok := c.Action(name)
	return ok
}

// Names returns the action names in sorted order.
func (c *Catalog) Names() []string {
	if c == nil {
		return nil
	}
	names := make([]string, 0, len(c.actions))
	for name := range c.actions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

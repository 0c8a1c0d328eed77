package character

// Cursor points at the visible frame: which action is playing, which frame of
// it, and how many ticks that frame has been shown.
type Cursor struct {
	Action string
	Frame  int
	Timer  int
}

// set switches to another action and rewinds it. Requests for the action
// already playing, or for an action the catalog does not have, are ignored.
func (c *Cursor) set(catalog *Catalog, name string) bool {
	if name == c.Action || !catalog.Has(name) {
		return false
	}
	c.Action = name
	c.Frame = 0
	c.Timer = 0
	return true
}

// advance moves the cursor forward by one tick within action. Looping clips
// wrap to the first frame; others hold on the last one.
func (c *Cursor) advance(action *Action) {
	c.Timer++
	if c.Timer >= action.Frames[c.Frame].Duration {
		c.Timer = 0
		c.Frame++
	}
	if c.Frame >= action.Len() {
		if action.Loop {
			c.Frame = 0
		} else {
			c.Frame = action.Len() - 1
		}
	}
}

package main

import (
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/deskpet/character"
	"github.com/milk9111/deskpet/common"
	"github.com/milk9111/deskpet/prefabs"
	"github.com/milk9111/deskpet/render"
	"golang.org/x/image/colornames"
)

type Options struct {
	Root     string
	Required []string
	Config   character.Config
	TPS      int
	Width    int
	Height   int
	Debug    bool
	Watch    bool

	// Loader builds the image loader for one character directory. Nil
	// uploads images to the GPU.
	Loader func(fsys fs.FS) character.ImageLoader
}

type Game struct {
	opts Options

	names      []string
	characters map[string]*character.Character
	watcher    *prefabs.Watcher
	screen     *render.Screen

	width  int
	height int
}

func NewGame(opts Options) (*Game, error) {
	names, rejected, err := prefabs.Discover(os.DirFS(opts.Root), opts.Required)
	if err != nil {
		return nil, err
	}
	for _, r := range rejected {
		log.Printf("skipping character %s: %s", r.Dir, r.Reason)
	}

	if opts.Loader == nil {
		opts.Loader = func(fsys fs.FS) character.ImageLoader { return render.NewLoader(fsys) }
	}

	g := &Game{
		opts:       opts,
		names:      names,
		characters: make(map[string]*character.Character, len(names)),
		screen:     render.NewScreen(nil),
		width:      opts.Width,
		height:     opts.Height,
	}

	for _, name := range names {
		c, err := g.loadCharacter(name)
		if err != nil {
			log.Printf("failed to load character %s: %v", name, err)
			continue
		}
		g.characters[name] = c
	}
	if len(g.characters) == 0 {
		log.Printf("no characters loaded from %s", opts.Root)
	}

	if opts.Watch && len(names) > 0 {
		w, err := prefabs.NewWatcher(opts.Root, names)
		if err != nil {
			log.Printf("hot reload disabled: %v", err)
		} else {
			g.watcher = w
		}
	}

	return g, nil
}

func (g *Game) loadCharacter(name string) (*character.Character, error) {
	fsys := os.DirFS(filepath.Join(g.opts.Root, name))
	spec, err := prefabs.LoadCharacterSpec(fsys)
	if err != nil {
		return nil, err
	}
	return character.New(spec, g.opts.Loader(fsys), g.opts.Config)
}

func (g *Game) Update() error {
	g.reload()

	dt := common.TickSeconds(g.opts.TPS)
	for _, name := range g.names {
		c, ok := g.characters[name]
		if !ok {
			continue
		}
		c.Update()
		c.ApplyPhysics(dt, float64(g.height))
	}
	return nil
}

// reload drains pending change notifications without blocking the tick.
func (g *Game) reload() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			c, err := g.loadCharacter(name)
			if err != nil {
				log.Printf("reload %s: keeping previous version: %v", name, err)
				continue
			}
			log.Printf("reloaded character %s", name)
			g.characters[name] = c
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("watch: %v", err)
		default:
			return
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.screen.Target = screen
	for _, name := range g.names {
		c, ok := g.characters[name]
		if !ok {
			continue
		}
		c.Draw(g.screen, c.Position())
		if g.opts.Debug {
			g.drawDebug(screen, c)
		}
	}
}

func (g *Game) drawDebug(screen *ebiten.Image, c *character.Character) {
	pos := c.Position()
	frame := c.CurrentFrameImage().Bounds()
	floorY := float32(g.height - frame.Dy())
	x0 := float32(pos.X)
	x1 := x0 + float32(frame.Dx())
	vector.StrokeLine(screen, x0, floorY, x1, floorY, 1, colornames.Magenta, false)

	cur := c.Cursor()
	ebitenutil.DebugPrintAt(screen,
		fmt.Sprintf("%s %s[%d] grounded=%t", c.Name(), cur.Action, cur.Frame, c.Grounded()),
		int(pos.X), int(pos.Y)-16)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	return g.watcher.Close()
}

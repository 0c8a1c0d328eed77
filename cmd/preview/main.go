package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/deskpet/character"
	"github.com/milk9111/deskpet/prefabs"
	"github.com/milk9111/deskpet/render"
)

const (
	screenWidth  = 512
	screenHeight = 512
)

// previewGame plays a single character in a small window. With drop enabled
// the character falls and lands on the window floor like it does on the
// desktop; otherwise it stays centred and only animates.
type previewGame struct {
	c      *character.Character
	screen *render.Screen
	drop   bool
}

func (g *previewGame) Update() error {
	g.c.Update()
	if g.drop {
		g.c.ApplyPhysics(1.0/float64(ebiten.TPS()), screenHeight)
	}
	return nil
}

func (g *previewGame) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x20, 0x20, 0x20, 0xff})
	g.screen.Target = screen

	pos := g.c.Position()
	if !g.drop {
		b := g.c.CurrentFrameImage().Bounds()
		pos = cp.Vector{X: float64(screenWidth-b.Dx()) / 2, Y: float64(screenHeight-b.Dy()) / 2}
	}
	g.c.Draw(g.screen, pos)

	cur := g.c.Cursor()
	ebitenutil.DebugPrint(screen, fmt.Sprintf("%s  %s[%d] t=%d", g.c.Name(), cur.Action, cur.Frame, cur.Timer))
}

func (g *previewGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	dir := flag.String("dir", ".", "character directory")
	action := flag.String("action", character.ActionIdle, "action to play")
	drop := flag.Bool("drop", false, "apply gravity and land on the window floor")
	flag.Parse()

	fsys := os.DirFS(*dir)
	spec, err := prefabs.LoadCharacterSpec(fsys)
	if err != nil {
		log.Fatal(err)
	}
	cfg := character.DefaultConfig()
	cfg.Spawn = cp.Vector{X: screenWidth / 4, Y: 0}
	c, err := character.New(spec, render.NewLoader(fsys), cfg)
	if err != nil {
		log.Fatal(err)
	}
	if !c.Catalog().Has(*action) {
		log.Fatalf("%s has no action %q (have %v)", spec.Name, *action, c.Catalog().Names())
	}
	c.SetAction(*action)

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle(fmt.Sprintf("%s: %s", spec.Name, *action))
	if err := ebiten.RunGame(&previewGame{c: c, screen: render.NewScreen(nil), drop: *drop}); err != nil {
		log.Fatal(err)
	}
}

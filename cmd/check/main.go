package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/milk9111/deskpet/character"
	"github.com/milk9111/deskpet/common"
	"github.com/milk9111/deskpet/prefabs"
	"github.com/milk9111/deskpet/render"
)

// maxDropTicks bounds the landing simulation so a zero-height bounds or a
// broken frame cannot spin forever.
const maxDropTicks = 100000

type report struct {
	name      string
	actions   int
	frames    int
	images    int
	landTicks int
	err       error
}

func main() {
	dir := flag.String("dir", "characters", "directory holding one sub-directory per character")
	height := flag.Float64("height", 1080, "screen height used for the landing simulation")
	tps := flag.Int("tps", 60, "simulation ticks per second")
	required := flag.String("require", strings.Join(prefabs.RequiredActions, ","), "comma separated sprite directories every character must have")
	flag.Parse()

	names, rejected, err := prefabs.Discover(os.DirFS(*dir), prefabs.ParseRequired(*required))
	if err != nil {
		log.Fatal(err)
	}

	failed := len(rejected)
	for _, r := range rejected {
		fmt.Printf("SKIP %s: %s\n", r.Dir, r.Reason)
	}
	for _, name := range names {
		rep := checkCharacter(filepath.Join(*dir, name), *height, common.TickSeconds(*tps))
		rep.print(os.Stdout, name)
		if rep.err != nil {
			failed++
		}
	}
	if failed > 0 {
		os.Exit(1)
	}
}

// checkCharacter loads one character without a graphics context and drops it
// from the spawn point until it lands.
func checkCharacter(dir string, height, dt float64) report {
	fsys := os.DirFS(dir)
	spec, err := prefabs.LoadCharacterSpec(fsys)
	if err != nil {
		return report{err: err}
	}
	loader := render.NewDecodeLoader(fsys)
	c, err := character.New(spec, loader, character.DefaultConfig())
	if err != nil {
		return report{name: spec.Name, err: err}
	}

	rep := report{name: c.Name(), images: loader.Cached()}
	for _, n := range c.Catalog().Names() {
		a, _ := c.Catalog().Action(n)
		rep.actions++
		rep.frames += a.Len()
	}
	for rep.landTicks < maxDropTicks && !c.Grounded() {
		c.Update()
		c.ApplyPhysics(dt, height)
		rep.landTicks++
	}
	if !c.Grounded() {
		rep.err = fmt.Errorf("did not land within %d ticks", maxDropTicks)
	}
	return rep
}

func (r report) print(w io.Writer, dir string) {
	if r.err != nil {
		fmt.Fprintf(w, "FAIL %s: %v\n", dir, r.err)
		return
	}
	fmt.Fprintf(w, "OK   %s (%s): %d actions, %d frames, %d images, lands after %d ticks\n",
		dir, r.name, r.actions, r.frames, r.images, r.landTicks)
}

package main

import (
	"flag"
	"log"
	"os"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/deskpet/character"
	"github.com/milk9111/deskpet/common"
	"github.com/milk9111/deskpet/prefabs"
)

func main() {
	dir := flag.String("dir", envOr("DESKPET_DIR", "characters"), "directory holding one sub-directory per character")
	title := flag.String("title", envOr("APPLICATION_NAME", "deskpet"), "window title")
	debug := flag.Bool("debug", false, "draw character names, actions and floor lines")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	tps := flag.Int("tps", ebiten.DefaultTPS, "simulation ticks per second")
	gravity := flag.Float64("gravity", common.Gravity, "gravity in pixels per second squared")
	spawnX := flag.Float64("x", common.SpawnX, "spawn x position")
	spawnY := flag.Float64("y", common.SpawnY, "spawn y position")
	required := flag.String("require", strings.Join(prefabs.RequiredActions, ","), "comma separated sprite directories every character must have")
	watch := flag.Bool("watch", true, "reload characters when their files change")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	w, h := ebiten.Monitor().Size()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowPosition(0, 0)
	ebiten.SetWindowTitle(*title)
	ebiten.SetWindowDecorated(false)
	ebiten.SetWindowFloating(true)
	ebiten.SetWindowMousePassthrough(true)
	ebiten.SetTPS(*tps)

	game, err := NewGame(Options{
		Root:     *dir,
		Required: prefabs.ParseRequired(*required),
		Config: character.Config{
			Spawn:   cp.Vector{X: *spawnX, Y: *spawnY},
			Gravity: *gravity,
		},
		TPS:    *tps,
		Width:  w,
		Height: h,
		Debug:  *debug,
		Watch:  *watch,
	})
	if err != nil {
		log.Fatal(err)
	}
	runErr := ebiten.RunGameWithOptions(game, &ebiten.RunGameOptions{ScreenTransparent: true})
	if err := game.Close(); err != nil {
		log.Printf("close watcher: %v", err)
	}
	if runErr != nil {
		log.Fatal(runErr)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

package main

import (
	"image"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/milk9111/deskpet/character"
	"github.com/milk9111/deskpet/prefabs"
	"github.com/milk9111/deskpet/render"
)

const goodDefinition = `{
  "name": "Good",
  "thumbnail": "thumb.png",
  "actions": {
    "idle": {"frames": [{"image": "0.png"}]},
    "fall": {"frames": [{"image": "0.png"}]}
  }
}`

const brokenDefinition = `{
  "name": "Broken",
  "thumbnail": "thumb.png",
  "actions": {
    "idle": {"frames": [{"image": "missing.png"}]},
    "fall": {"frames": [{"image": "0.png"}]}
  }
}`

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, image.NewNRGBA(image.Rect(0, 0, w, h))); err != nil {
		t.Fatal(err)
	}
}

func writeDefinition(t *testing.T, dir, definition string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, "character.json"), []byte(definition), 0o644); err != nil {
		t.Fatal(err)
	}
}

func writeCharacter(t *testing.T, dir, definition string) {
	t.Helper()
	writePNG(t, filepath.Join(dir, "thumb.png"), 8, 8)
	writePNG(t, filepath.Join(dir, "sprites", "idle", "0.png"), 16, 20)
	writePNG(t, filepath.Join(dir, "sprites", "fall", "0.png"), 16, 20)
	writeDefinition(t, dir, definition)
}

func newTestGame(t *testing.T) (*Game, string) {
	t.Helper()
	root := t.TempDir()
	writeCharacter(t, filepath.Join(root, "good"), goodDefinition)
	writeCharacter(t, filepath.Join(root, "broken"), brokenDefinition)

	g, err := NewGame(Options{
		Root:     root,
		Required: []string{"idle", "fall"},
		Config:   character.DefaultConfig(),
		TPS:      60,
		Height:   600,
		Loader:   func(fsys fs.FS) character.ImageLoader { return render.NewDecodeLoader(fsys) },
	})
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	return g, root
}

// stubWatcher lets a test push change notifications into the game.
func stubWatcher(g *Game) *prefabs.Watcher {
	w := &prefabs.Watcher{Events: make(chan string, 4), Errors: make(chan error, 1)}
	g.watcher = w
	return w
}

func TestNewGameSkipsCharacterThatFailsToLoad(t *testing.T) {
	g, _ := newTestGame(t)

	if len(g.names) != 2 {
		t.Fatalf("expected both directories to be discovered, got %v", g.names)
	}
	if _, ok := g.characters["broken"]; ok {
		t.Fatalf("broken character should not be loaded")
	}
	good, ok := g.characters["good"]
	if !ok {
		t.Fatalf("good character should be loaded")
	}

	start := good.Position()
	for i := 0; i < 5; i++ {
		if err := g.Update(); err != nil {
			t.Fatalf("Update: %v", err)
		}
	}
	if good.Position().Y <= start.Y {
		t.Fatalf("good character should keep falling, y=%v", good.Position().Y)
	}
}

func TestReloadKeepsPreviousVersionOnFailure(t *testing.T) {
	g, root := newTestGame(t)
	w := stubWatcher(g)
	before := g.characters["good"]

	writeDefinition(t, filepath.Join(root, "good"), `{"actions": [`)
	w.Events <- "good"
	g.reload()

	if g.characters["good"] != before {
		t.Fatalf("failed reload replaced the running character")
	}
	if g.watcher == nil {
		t.Fatalf("watcher should stay attached after a failed reload")
	}
}

func TestReloadReplacesCharacter(t *testing.T) {
	g, root := newTestGame(t)
	w := stubWatcher(g)
	before := g.characters["good"]

	writeDefinition(t, filepath.Join(root, "broken"), goodDefinition)
	w.Events <- "broken"
	w.Events <- "good"
	g.reload()

	if _, ok := g.characters["broken"]; !ok {
		t.Fatalf("fixed character should be loaded on reload")
	}
	after := g.characters["good"]
	if after == nil || after == before {
		t.Fatalf("expected a fresh instance for good")
	}
}

func TestCloseStopsWatcher(t *testing.T) {
	g, root := newTestGame(t)
	w, err := prefabs.NewWatcher(root, g.names)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	g.watcher = w

	if err := g.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if _, ok := <-w.Events; ok {
		t.Fatalf("expected events channel to be closed")
	}
}

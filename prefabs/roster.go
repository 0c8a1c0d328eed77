package prefabs

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
)

// RequiredActions are the sprite directories every character must ship.
var RequiredActions = []string{"dragged", "fall", "idle", "run", "walk"}

// ParseRequired splits a comma separated list of action names, dropping
// blanks.
func ParseRequired(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Rejected names a character directory that was skipped and why.
type Rejected struct {
	Dir    string
	Reason string
}

// Discover lists the character directories directly under the root of fsys
// that hold a definition file and every required sprite directory. The
// accepted list is sorted.
func Discover(fsys fs.FS, required []string) ([]string, []Rejected, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, nil, fmt.Errorf("prefabs: read characters: %w", err)
	}

	var accepted []string
	var rejected []Rejected
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		dir := entry.Name()
		sub, err := fs.Sub(fsys, dir)
		if err != nil {
			return nil, nil, err
		}
		if reason := checkCharacterDir(sub, required); reason != "" {
			rejected = append(rejected, Rejected{Dir: dir, Reason: reason})
			continue
		}
		accepted = append(accepted, dir)
	}

	sort.Strings(accepted)
	return accepted, rejected, nil
}

func checkCharacterDir(fsys fs.FS, required []string) string {
	if !HasDefinition(fsys) {
		return "missing character definition"
	}
	for _, action := range required {
		info, err := fs.Stat(fsys, path.Join("sprites", action))
		if err != nil || !info.IsDir() {
			return fmt.Sprintf("missing sprites/%s", action)
		}
	}
	return ""
}

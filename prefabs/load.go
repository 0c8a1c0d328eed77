package prefabs

import (
	"errors"
	"io/fs"
	"path"
	"path/filepath"
	"strings"
)

// DefinitionFiles are the names a character definition may use, in lookup
// order.
var DefinitionFiles = []string{"character.json", "character.yaml", "character.yml"}

var ErrNoDefinition = errors.New("prefabs: no character definition")

// Load returns the name and contents of the first definition file found at
// the root of fsys.
func Load(fsys fs.FS) (string, []byte, error) {
	for _, name := range DefinitionFiles {
		data, err := fs.ReadFile(fsys, name)
		if err == nil {
			return name, data, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return name, nil, err
		}
	}
	return "", nil, ErrNoDefinition
}

// HasDefinition reports whether fsys holds a definition file.
func HasDefinition(fsys fs.FS) bool {
	for _, name := range DefinitionFiles {
		if info, err := fs.Stat(fsys, name); err == nil && !info.IsDir() {
			return true
		}
	}
	return false
}

// SpritePath is where a frame image of the given action lives, relative to
// the character directory.
func SpritePath(action, image string) string {
	return path.Join("sprites", action, cleanAssetPath(image))
}

func cleanAssetPath(p string) string {
	if p == "" {
		return ""
	}
	s := filepath.ToSlash(p)
	s = strings.TrimPrefix(s, "./")
	return path.Clean(s)
}

func isSpecFile(p string) bool {
	ext := strings.ToLower(filepath.Ext(p))
	return ext == ".json" || ext == ".yaml" || ext == ".yml"
}

func isImageFile(p string) bool {
	switch strings.ToLower(filepath.Ext(p)) {
	case ".png", ".bmp", ".webp", ".gif", ".jpg", ".jpeg":
		return true
	}
	return false
}

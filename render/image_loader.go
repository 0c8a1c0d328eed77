package render

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"path"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

var ErrEmptyPath = errors.New("render: empty image path")

// Loader decodes images from one character directory. Every path is decoded
// at most once per loader.
type Loader struct {
	fsys   fs.FS
	upload func(image.Image) image.Image
	cache  *registry
}

// NewLoader returns a loader that decodes from fsys and uploads each image to
// the GPU as an *ebiten.Image.
func NewLoader(fsys fs.FS) *Loader {
	return &Loader{
		fsys:   fsys,
		upload: toEbiten,
		cache:  newRegistry(),
	}
}

// NewDecodeLoader returns a loader that keeps decoded images on the CPU. It
// needs no graphics context, which suits tools and tests.
func NewDecodeLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys, cache: newRegistry()}
}

// LoadImage decodes the image at p, relative to the loader root.
func (l *Loader) LoadImage(p string) (image.Image, error) {
	key := cleanImagePath(p)
	if key == "" || key == "." {
		return nil, ErrEmptyPath
	}
	if img := l.cache.get(key); img != nil {
		return img, nil
	}

	b, err := fs.ReadFile(l.fsys, key)
	if err != nil {
		return nil, fmt.Errorf("render: read %s: %w", key, err)
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("render: decode %s: %w", key, err)
	}
	if l.upload != nil {
		img = l.upload(img)
	}
	l.cache.register(key, img)
	return img, nil
}

// Cached returns how many distinct images the loader has decoded.
func (l *Loader) Cached() int { return l.cache.len() }

func toEbiten(img image.Image) image.Image {
	if ei, ok := img.(*ebiten.Image); ok {
		return ei
	}
	return ebiten.NewImageFromImage(img)
}

func cleanImagePath(p string) string {
	if p == "" {
		return ""
	}
	s := filepath.ToSlash(p)
	s = strings.TrimPrefix(s, "/")
	return path.Clean(s)
}

package render

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"
)

// Screen adapts an ebiten render target to the blit surface characters draw
// on.
type Screen struct {
	Target *ebiten.Image

	// converted holds GPU copies of images that were not loaded through a
	// Loader, so a frame is uploaded once and not on every draw.
	converted map[image.Image]*ebiten.Image
}

func NewScreen(target *ebiten.Image) *Screen {
	return &Screen{Target: target}
}

// Blit draws img with its top-left corner at pos.
func (s *Screen) Blit(img image.Image, pos cp.Vector) {
	if s == nil || s.Target == nil || img == nil {
		return
	}
	src := s.source(img)

	var op ebiten.DrawImageOptions
	op.GeoM.Translate(pos.X, pos.Y)
	op.Filter = ebiten.FilterNearest
	s.Target.DrawImage(src, &op)
}

func (s *Screen) source(img image.Image) *ebiten.Image {
	if ei, ok := img.(*ebiten.Image); ok {
		return ei
	}
	if s.converted == nil {
		s.converted = make(map[image.Image]*ebiten.Image)
	}
	if ei, ok := s.converted[img]; ok {
		return ei
	}
	ei := ebiten.NewImageFromImage(img)
	s.converted[img] = ei
	return ei
}

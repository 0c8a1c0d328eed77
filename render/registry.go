package render

import "image"

// registry caches decoded images by path for a single loader.
type registry struct {
	images map[string]image.Image
}

func newRegistry() *registry {
	return &registry{images: make(map[string]image.Image)}
}

// register stores an image by key.
func (r *registry) register(key string, img image.Image) {
	if key == "" || img == nil {
		return
	}
	r.images[key] = img
}

// get returns a cached image by key.
func (r *registry) get(key string) image.Image {
	if key == "" {
		return nil
	}
	return r.images[key]
}

func (r *registry) len() int { return len(r.images) }

package prefabs

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const defaultCharacterName = "Unnamed"

// CharacterSpec is the on-disk definition of one character, either
// character.json or character.yaml.
type CharacterSpec struct {
	Name        string                `json:"name" yaml:"name"`
	Description string                `json:"description" yaml:"description"`
	Thumbnail   string                `json:"thumbnail" yaml:"thumbnail"`
	Actions     map[string]ActionSpec `json:"actions" yaml:"actions"`
}

type ActionSpec struct {
	Loop   *bool       `json:"loop" yaml:"loop"`
	Frames []FrameSpec `json:"frames" yaml:"frames"`
}

type FrameSpec struct {
	Image    string `json:"image" yaml:"image"`
	Duration int    `json:"duration" yaml:"duration"`
}

// Looping reports whether the action wraps around. Actions loop unless the
// definition says otherwise.
func (a ActionSpec) Looping() bool {
	if a.Loop == nil {
		return true
	}
	return *a.Loop
}

// Ticks returns the frame duration, defaulting to a single tick.
func (f FrameSpec) Ticks() int {
	if f.Duration == 0 {
		return 1
	}
	return f.Duration
}

// ParseCharacterSpec decodes a definition document, choosing the decoder by
// file extension. JSON duplicate keys keep the last value.
func ParseCharacterSpec(filename string, data []byte) (*CharacterSpec, error) {
	var spec CharacterSpec
	var err error
	if strings.EqualFold(filepath.Ext(filename), ".json") {
		err = json.Unmarshal(data, &spec)
	} else {
		err = yaml.Unmarshal(data, &spec)
	}
	if err != nil {
		return nil, err
	}
	if spec.Name == "" {
		spec.Name = defaultCharacterName
	}
	return &spec, nil
}

// LoadCharacterSpec reads the definition document at the root of fsys.
func LoadCharacterSpec(fsys fs.FS) (*CharacterSpec, error) {
	filename, data, err := Load(fsys)
	if err != nil {
		return nil, fmt.Errorf("prefabs: load character: %w", err)
	}

	spec, err := ParseCharacterSpec(filename, data)
	if err != nil {
		return nil, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}
	return spec, nil
}

package scene

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads and validates a scene file
func Load(path string) (Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scene{}, fmt.Errorf("scene read: %w", err)
	}
	sc, err := Parse(data)
	if err != nil {
		return Scene{}, fmt.Errorf("scene %s: %w", path, err)
	}
	return sc, nil
}

// Parse decodes YAML scene data, rejecting unknown keys, and validates the result
func Parse(data []byte) (Scene, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var sc Scene
	if err := dec.Decode(&sc); err != nil {
		if err == io.EOF {
			return Scene{}, fmt.Errorf("scene parse: empty document")
		}
		return Scene{}, fmt.Errorf("scene parse: %w", err)
	}

	if err := sc.Validate(); err != nil {
		return Scene{}, err
	}
	return sc, nil
}

// Encode writes the scene as YAML
func (s Scene) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("scene encode: %w", err)
	}
	return enc.Close()
}

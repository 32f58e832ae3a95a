package models

import (
	"bytes"
	_ "embed"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

//go:embed maps/peppers_last_stand.yaml
var defaultMap []byte

// DefaultMap returns the reference house map.
func DefaultMap() (*Map, error) {
	return DecodeMap(defaultMap)
}

// DecodeMap parses a YAML map definition. Unknown fields are rejected so
// typos in a hand-written map fail loudly.
func DecodeMap(data []byte) (*Map, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var m Map
	if err := dec.Decode(&m); err != nil {
		return nil, errors.Wrap(err, "failed to parse map YAML")
	}
	return &m, nil
}

// LoadMap reads a map from path, or the reference map when path is empty.
func LoadMap(path string) (*Map, error) {
	if path == "" {
		return DefaultMap()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read map %s", path)
	}
	m, err := DecodeMap(data)
	if err != nil {
		return nil, errors.Wrapf(err, "map %s", path)
	}
	return m, nil
}

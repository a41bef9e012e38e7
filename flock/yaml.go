package flock

import (
	"errors"
	"fmt"
	"io"

	"github.com/amp-labs/ducksort/duck"
	"gopkg.in/yaml.v3"
)

// LoadYAML decodes a flock from a YAML sequence of ducks:
//
//	- name: Daffy
//	  weight: 8
//	- name: Dewey
//	  weight: 2
//
// Unknown keys and null items are rejected. The result is validated, so a
// flock returned without error can be sorted safely. Empty input and a null
// document both yield an empty flock.
func LoadYAML(r io.Reader) (Flock, error) {
	var items []yaml.Node

	if err := yaml.NewDecoder(r).Decode(&items); err != nil {
		if errors.Is(err, io.EOF) {
			return Flock{}, nil
		}

		return nil, fmt.Errorf("decoding flock: %w", err)
	}

	f := make(Flock, 0, len(items))

	for i := range items {
		item := &items[i]

		// yaml.v3 skips custom unmarshalers for null nodes, so a null item
		// would otherwise vanish from the flock.
		if item.ShortTag() == "!!null" {
			return nil, fmt.Errorf("decoding flock: %w: item %d is null (line %d)",
				duck.ErrMissingName, i, item.Line)
		}

		var d duck.Duck

		if err := item.Decode(&d); err != nil {
			return nil, fmt.Errorf("decoding flock: item %d: %w", i, err)
		}

		f = append(f, d)
	}

	if err := Validate(f); err != nil {
		return nil, err
	}

	return f, nil
}

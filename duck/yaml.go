package duck

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

var (
	ErrMissingName   = errors.New("missing duck name")
	ErrMissingWeight = errors.New("missing duck weight")
	ErrUnknownField  = errors.New("unknown duck field")
)

type yamlDuck struct {
	Name   *string  `yaml:"name"`
	Weight *float64 `yaml:"weight"`
}

var _ yaml.Unmarshaler = (*Duck)(nil)

// UnmarshalYAML decodes a mapping with a name and a weight:
//
//	name: Daffy
//	weight: 8
//
// Both keys are required and no others are allowed. The weight is not
// validated here.
func (d *Duck) UnmarshalYAML(node *yaml.Node) error {
	var raw yamlDuck

	if node.Kind == yaml.MappingNode {
		for i := 0; i+1 < len(node.Content); i += 2 {
			switch key := node.Content[i]; key.Value {
			case "name", "weight":
			default:
				return fmt.Errorf("%w %q (line %d)", ErrUnknownField, key.Value, key.Line)
			}
		}
	}

	if err := node.Decode(&raw); err != nil {
		return err
	}

	if raw.Name == nil {
		return fmt.Errorf("%w (line %d)", ErrMissingName, node.Line)
	}

	if raw.Weight == nil {
		return fmt.Errorf("%w: duck %q (line %d)", ErrMissingWeight, *raw.Name, node.Line)
	}

	*d = New(*raw.Name, *raw.Weight)

	return nil
}

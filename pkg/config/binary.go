package config

import (
	"bytes"
	"errors"
	"fmt"

	json "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"
)

var errMissingName = errors.New("binary check requires a name")

type binaryObject struct {
	Name    string  `yaml:"name" json:"name"`
	Version *string `yaml:"version" json:"version"`
}

func (o binaryObject) toCheck() (BinaryCheck, error) {
	if o.Name == "" {
		return BinaryCheck{}, errMissingName
	}
	return WithVersion(o.Name, o.Version), nil
}

// UnmarshalTOML accepts either a string or a table with name and version.
func (b *BinaryCheck) UnmarshalTOML(data any) error {
	switch v := data.(type) {
	case string:
		*b = Simple(v)
		return nil
	case map[string]any:
		var o binaryObject
		name, ok := v["name"].(string)
		if !ok {
			return errMissingName
		}
		o.Name = name
		if raw, present := v["version"]; present {
			s, ok := raw.(string)
			if !ok {
				return fmt.Errorf("binary %s: version must be a string, got %T", name, raw)
			}
			o.Version = &s
		}
		check, err := o.toCheck()
		if err != nil {
			return err
		}
		*b = check
		return nil
	default:
		return fmt.Errorf("binary check must be a string or table, got %T", data)
	}
}

// UnmarshalYAML accepts either a scalar or a mapping with name and version.
func (b *BinaryCheck) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var name string
		if err := value.Decode(&name); err != nil {
			return err
		}
		*b = Simple(name)
		return nil
	case yaml.MappingNode:
		var o binaryObject
		if err := value.Decode(&o); err != nil {
			return err
		}
		check, err := o.toCheck()
		if err != nil {
			return fmt.Errorf("line %d: %w", value.Line, err)
		}
		*b = check
		return nil
	default:
		return fmt.Errorf("line %d: binary check must be a string or mapping", value.Line)
	}
}

// UnmarshalJSON accepts either a string or an object with name and version.
func (b *BinaryCheck) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return errors.New("empty binary check")
	}

	switch trimmed[0] {
	case '"':
		var name string
		if err := json.Unmarshal(trimmed, &name); err != nil {
			return err
		}
		*b = Simple(name)
		return nil
	case '{':
		var o binaryObject
		if err := json.Unmarshal(trimmed, &o); err != nil {
			return err
		}
		check, err := o.toCheck()
		if err != nil {
			return err
		}
		*b = check
		return nil
	default:
		return fmt.Errorf("binary check must be a string or object, got %s", trimmed)
	}
}

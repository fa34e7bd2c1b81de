// Package schema describes the editable fields of assets and components.
//
// Runtime types expose plain accessor methods. Editor tooling consumes a
// Schema instead of reflecting over struct tags, so the runtime stays
// free of any inspector annotations.
package schema

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

type Kind string

const (
	KindBool   Kind = "bool"
	KindInt    Kind = "int"
	KindFloat  Kind = "float"
	KindString Kind = "string"
	KindEnum   Kind = "enum"
	KindVec2   Kind = "vec2"
	KindColor  Kind = "color"
	KindAsset  Kind = "asset"
)

// Range restricts a numeric field. Step is a hint for slider widgets.
type Range struct {
	Min  float64 `yaml:"min"`
	Max  float64 `yaml:"max"`
	Step float64 `yaml:"step,omitempty"`
}

type Field struct {
	Name    string   `yaml:"name"`
	Kind    Kind     `yaml:"kind"`
	Range   *Range   `yaml:"range,omitempty"`
	Enum    []string `yaml:"enum,omitempty"`
	Asset   string   `yaml:"asset,omitempty"`
	Order   int      `yaml:"order,omitempty"`
	Tooltip string   `yaml:"tooltip,omitempty"`
}

type Schema struct {
	Type   string  `yaml:"type"`
	Fields []Field `yaml:"fields"`
}

// Field returns the field with the given name.
func (s Schema) Field(name string) (Field, bool) {
	for _, field := range s.Fields {
		if field.Name == name {
			return field, true
		}
	}

	return Field{}, false
}

// Validate checks the schema for duplicate names and for fields
// that are missing the information their kind requires.
func (s Schema) Validate() error {
	seen := map[string]bool{}

	for _, field := range s.Fields {
		if seen[field.Name] {
			return fmt.Errorf("%s: duplicate field %q", s.Type, field.Name)
		}

		seen[field.Name] = true

		switch {
		case field.Kind == KindEnum && len(field.Enum) == 0:
			return fmt.Errorf("%s: enum field %q has no values", s.Type, field.Name)

		case field.Kind == KindAsset && field.Asset == "":
			return fmt.Errorf("%s: asset field %q has no asset type", s.Type, field.Name)

		case field.Range != nil && field.Range.Min > field.Range.Max:
			return fmt.Errorf("%s: field %q has inverted range", s.Type, field.Name)
		}
	}

	return nil
}

// Encode writes all schemas as a yaml stream, one document per schema.
func Encode(w io.Writer, schemas ...Schema) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	for _, s := range schemas {
		if err := s.Validate(); err != nil {
			return err
		}

		if err := enc.Encode(s); err != nil {
			return fmt.Errorf("encode schema %s: %w", s.Type, err)
		}
	}

	return enc.Close()
}

// Decode reads a yaml stream written by Encode.
func Decode(r io.Reader) ([]Schema, error) {
	dec := yaml.NewDecoder(r)

	var schemas []Schema
	for {
		var s Schema

		err := dec.Decode(&s)
		if err == io.EOF {
			return schemas, nil
		}

		if err != nil {
			return nil, fmt.Errorf("decode schema: %w", err)
		}

		schemas = append(schemas, s)
	}
}

package resw

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ErrMissingKey is returned when an interchange item has no key.
var ErrMissingKey = errors.New("resource item without key")

// Document is the YAML interchange form of a resource file.
type Document struct {
	Items []Item `yaml:"items"`
}

// YAMLParser parses the YAML interchange format.
type YAMLParser struct{}

// Parse implements Parser.
func (YAMLParser) Parse(content []byte) ([]Item, error) {
	return ParseItems(content)
}

// ParseItems parses YAML interchange data into an ordered item list.
func ParseItems(data []byte) ([]Item, error) {
	var doc Document

	err := yaml.Unmarshal(data, &doc)
	if err != nil {
		return nil, fmt.Errorf("failed to parse items YAML: %w", err)
	}

	for i, item := range doc.Items {
		if item.Key == "" {
			return nil, fmt.Errorf("item %d: %w", i, ErrMissingKey)
		}
	}

	return doc.Items, nil
}

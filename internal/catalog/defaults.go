package catalog

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"tripplanner/internal/domain"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Source is the raw material a catalog is generated from.
type Source struct {
	Categories   []domain.Category `yaml:"categories"`
	Destinations []string          `yaml:"destinations"`
}

// Default returns the built-in categories and destinations.
func Default() Source {
	src, err := Parse(defaultsYAML)
	if err != nil {
		panic(fmt.Sprintf("catalog: embedded defaults: %v", err))
	}
	return src
}

// Parse decodes a catalog source from YAML.
func Parse(data []byte) (Source, error) {
	var src Source
	if err := yaml.Unmarshal(data, &src); err != nil {
		return Source{}, fmt.Errorf("decode catalog source: %w", err)
	}
	return src, nil
}

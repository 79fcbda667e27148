package config

import (
	"fmt"
	"strings"

	"github.com/kilianp07/creational/core/factory"
	"github.com/kilianp07/creational/core/prototype"
)

// Pattern names, in the order they run by default.
const (
	PatternPrototype       = "prototype"
	PatternBuilder         = "builder"
	PatternFactory         = "factory"
	PatternAbstractFactory = "abstract_factory"
)

// Patterns lists every pattern in its fixed run order.
var Patterns = []string{PatternPrototype, PatternBuilder, PatternFactory, PatternAbstractFactory}

// BiomeConfig describes an extra prototype template.
type BiomeConfig struct {
	Name   string `json:"name"`
	Kind   string `json:"kind"`
	First  string `json:"first"`
	Second string `json:"second"`
}

// DemoConfig selects which demonstrations run and with which variants.
type DemoConfig struct {
	Patterns []string `json:"patterns"`
	// Biomes are registered on top of the default templates.
	Biomes []BiomeConfig `json:"biomes"`
	// Clone lists the template names to clone. Empty clones the defaults.
	Clone     []string               `json:"clone"`
	Builders  []factory.ModuleConfig `json:"builders"`
	Reports   []string               `json:"reports"`
	Platforms []string               `json:"platforms"`
}

// SetDefaults reproduces the full demonstration when nothing is configured.
func (c *DemoConfig) SetDefaults() {
	if len(c.Patterns) == 0 {
		c.Patterns = append([]string(nil), Patterns...)
	}
	if len(c.Clone) == 0 {
		c.Clone = []string{"Forest", "Desert", "Ocean"}
	}
	if len(c.Builders) == 0 {
		c.Builders = []factory.ModuleConfig{{Type: "gaming"}, {Type: "office"}}
	}
	if len(c.Reports) == 0 {
		c.Reports = []string{"pdf", "html"}
	}
	if len(c.Platforms) == 0 {
		c.Platforms = []string{"windows", "mac"}
	}
}

// Validate rejects unknown patterns and malformed biome templates.
func (c DemoConfig) Validate() error {
	for _, p := range c.Patterns {
		if !knownPattern(p) {
			return fmt.Errorf("unknown pattern %s", p)
		}
	}
	for i, b := range c.Biomes {
		if b.Name == "" {
			return fmt.Errorf("biomes[%d]: name is required", i)
		}
		if _, err := prototype.NewTemplate(b.Kind, b.First, b.Second); err != nil {
			return fmt.Errorf("biomes[%d]: %w", i, err)
		}
	}
	for i, b := range c.Builders {
		if b.Type == "" {
			return fmt.Errorf("builders[%d]: type is required", i)
		}
	}
	return nil
}

func knownPattern(p string) bool {
	for _, known := range Patterns {
		if strings.EqualFold(p, known) {
			return true
		}
	}
	return false
}

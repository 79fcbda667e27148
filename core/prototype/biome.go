package prototype

import (
	"fmt"
	"io"
	"strings"
)

// Biome kinds understood by NewTemplate.
const (
	KindForest = "forest"
	KindDesert = "desert"
	KindOcean  = "ocean"
)

// Biome is a template that can be copied and described.
type Biome interface {
	// Clone returns an independent copy of the biome.
	Clone() Biome
	Describe() string
	Kind() string
}

// Forest is a biome defined by its trees and wildlife.
type Forest struct {
	TreeType string `json:"tree_type"`
	Wildlife string `json:"wildlife"`
}

func (f *Forest) Clone() Biome {
	c := *f
	return &c
}

func (f *Forest) Describe() string {
	return fmt.Sprintf("Forest with %s trees and %s wildlife.", f.TreeType, f.Wildlife)
}

func (f *Forest) Kind() string { return KindForest }

// Desert is a biome defined by its sand and climate.
type Desert struct {
	SandType string `json:"sand_type"`
	Climate  string `json:"climate"`
}

func (d *Desert) Clone() Biome {
	c := *d
	return &c
}

func (d *Desert) Describe() string {
	return fmt.Sprintf("Desert with %s sand and %s climate.", d.SandType, d.Climate)
}

func (d *Desert) Kind() string { return KindDesert }

// Ocean is a biome defined by its water and marine life.
type Ocean struct {
	WaterType  string `json:"water_type"`
	MarineLife string `json:"marine_life"`
}

func (o *Ocean) Clone() Biome {
	c := *o
	return &c
}

func (o *Ocean) Describe() string {
	return fmt.Sprintf("Ocean with %s water and %s marine life.", o.WaterType, o.MarineLife)
}

func (o *Ocean) Kind() string { return KindOcean }

// NewTemplate builds a biome of the given kind from its two attributes.
// The kind is matched case-insensitively.
func NewTemplate(kind, first, second string) (Biome, error) {
	switch strings.ToLower(kind) {
	case KindForest:
		return &Forest{TreeType: first, Wildlife: second}, nil
	case KindDesert:
		return &Desert{SandType: first, Climate: second}, nil
	case KindOcean:
		return &Ocean{WaterType: first, MarineLife: second}, nil
	default:
		return nil, fmt.Errorf("unknown biome kind %s", kind)
	}
}

// Print writes the biome description as a single line.
func Print(w io.Writer, b Biome) error {
	_, err := fmt.Fprintln(w, b.Describe())
	return err
}

// Package builder assembles computers step by step. A Director fixes the order
// of the steps; a ComputerBuilder fixes the parts used at each step.
package builder

import (
	"fmt"
	"strings"
)

// Builder profiles accepted by NewBuilder.
const (
	ProfileGaming = "gaming"
	ProfileOffice = "office"
)

// ComputerBuilder assembles the parts of a Computer.
type ComputerBuilder interface {
	BuildProcessor()
	BuildRAM()
	BuildStorage()
	// Computer returns the computer being assembled, complete or not.
	Computer() *Computer
}

// GamingComputerBuilder assembles a high-end configuration.
type GamingComputerBuilder struct {
	computer *Computer
}

func NewGamingComputerBuilder() *GamingComputerBuilder {
	return &GamingComputerBuilder{computer: &Computer{}}
}

func (b *GamingComputerBuilder) BuildProcessor()     { b.computer.SetProcessor("Intel i9") }
func (b *GamingComputerBuilder) BuildRAM()           { b.computer.SetRAM("32GB") }
func (b *GamingComputerBuilder) BuildStorage()       { b.computer.SetStorage("1TB SSD") }
func (b *GamingComputerBuilder) Computer() *Computer { return b.computer }

// OfficeComputerBuilder assembles a standard configuration.
type OfficeComputerBuilder struct {
	computer *Computer
}

func NewOfficeComputerBuilder() *OfficeComputerBuilder {
	return &OfficeComputerBuilder{computer: &Computer{}}
}

func (b *OfficeComputerBuilder) BuildProcessor()     { b.computer.SetProcessor("Intel i5") }
func (b *OfficeComputerBuilder) BuildRAM()           { b.computer.SetRAM("16GB") }
func (b *OfficeComputerBuilder) BuildStorage()       { b.computer.SetStorage("512GB SSD") }
func (b *OfficeComputerBuilder) Computer() *Computer { return b.computer }

// NewBuilder returns a fresh builder for the named profile.
func NewBuilder(profile string) (ComputerBuilder, error) {
	switch strings.ToLower(profile) {
	case ProfileGaming:
		return NewGamingComputerBuilder(), nil
	case ProfileOffice:
		return NewOfficeComputerBuilder(), nil
	default:
		return nil, fmt.Errorf("unknown builder profile %s", profile)
	}
}

// Director runs the assembly steps in a fixed order.
type Director struct {
	builder ComputerBuilder
}

func NewDirector(b ComputerBuilder) *Director {
	return &Director{builder: b}
}

// Construct assembles processor, RAM and storage, in that order.
func (d *Director) Construct() {
	d.builder.BuildProcessor()
	d.builder.BuildRAM()
	d.builder.BuildStorage()
}

// Parts lists the values a CustomComputerBuilder assembles.
type Parts struct {
	Processor string `json:"processor"`
	RAM       string `json:"ram"`
	Storage   string `json:"storage"`
}

// CustomComputerBuilder assembles a configuration supplied at run time.
type CustomComputerBuilder struct {
	parts    Parts
	computer *Computer
}

func NewCustomComputerBuilder(p Parts) *CustomComputerBuilder {
	return &CustomComputerBuilder{parts: p, computer: &Computer{}}
}

func (b *CustomComputerBuilder) BuildProcessor()     { b.computer.SetProcessor(b.parts.Processor) }
func (b *CustomComputerBuilder) BuildRAM()           { b.computer.SetRAM(b.parts.RAM) }
func (b *CustomComputerBuilder) BuildStorage()       { b.computer.SetStorage(b.parts.Storage) }
func (b *CustomComputerBuilder) Computer() *Computer { return b.computer }

package app

import (
	"github.com/kilianp07/creational/core/builder"
	"github.com/kilianp07/creational/core/factory"
	"github.com/kilianp07/creational/core/multimedia"
	"github.com/kilianp07/creational/core/report"
)

// Catalog resolves variant names from configuration to concrete builders,
// report creators and multimedia factories.
type Catalog struct {
	Builders  *factory.Registry[builder.ComputerBuilder]
	Reports   *factory.Registry[report.Creator]
	Platforms *factory.Registry[multimedia.Factory]
}

// NewCatalog returns a catalog holding every built-in variant.
func NewCatalog() *Catalog {
	c := &Catalog{
		Builders:  factory.NewRegistry[builder.ComputerBuilder](),
		Reports:   factory.NewRegistry[report.Creator](),
		Platforms: factory.NewRegistry[multimedia.Factory](),
	}
	for _, p := range []string{builder.ProfileGaming, builder.ProfileOffice} {
		profile := p
		c.Builders.MustRegister(profile, func(map[string]any) (builder.ComputerBuilder, error) {
			return builder.NewBuilder(profile)
		})
	}
	c.Builders.MustRegister("custom", func(conf map[string]any) (builder.ComputerBuilder, error) {
		var parts builder.Parts
		if err := factory.Decode(conf, &parts); err != nil {
			return nil, err
		}
		return builder.NewCustomComputerBuilder(parts), nil
	})

	for _, f := range []string{report.FormatPDF, report.FormatHTML} {
		format := f
		c.Reports.MustRegister(format, func(map[string]any) (report.Creator, error) {
			return report.NewCreator(format)
		})
	}

	for _, p := range []string{"windows", "mac"} {
		platform := p
		c.Platforms.MustRegister(platform, func(map[string]any) (multimedia.Factory, error) {
			return multimedia.NewFactory(platform)
		})
	}
	return c
}

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/kilianp07/creational/config"
	"github.com/kilianp07/creational/core/factory"
)

func patternCommands(opts *options) []*cobra.Command {
	prototypeCmd := &cobra.Command{
		Use:   "prototype [name...]",
		Short: "Clone biome templates from the prototype registry",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, func(c *config.Config) {
				if len(args) > 0 {
					c.Demo.Clone = args
				}
			}, config.PatternPrototype)
		},
	}

	builderCmd := &cobra.Command{
		Use:   "builder [profile...]",
		Short: "Assemble computers with the director and builder profiles",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, func(c *config.Config) {
				if len(args) == 0 {
					return
				}
				c.Demo.Builders = make([]factory.ModuleConfig, 0, len(args))
				for _, a := range args {
					c.Demo.Builders = append(c.Demo.Builders, factory.ModuleConfig{Type: a})
				}
			}, config.PatternBuilder)
		},
	}

	factoryCmd := &cobra.Command{
		Use:   "factory [format...]",
		Short: "Generate reports through report creators",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, func(c *config.Config) {
				if len(args) > 0 {
					c.Demo.Reports = args
				}
			}, config.PatternFactory)
		},
	}

	abstractCmd := &cobra.Command{
		Use:     "abstract-factory [platform...]",
		Aliases: []string{"abstract_factory"},
		Short:   "Play media with players from one platform family",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, func(c *config.Config) {
				if len(args) > 0 {
					c.Demo.Platforms = args
				}
			}, config.PatternAbstractFactory)
		},
	}

	return []*cobra.Command{prototypeCmd, builderCmd, factoryCmd, abstractCmd}
}

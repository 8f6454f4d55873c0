package cmd

import (
	"github.com/spf13/cobra"
)

// NewRootCommand returns the housebuilder command tree. Without a subcommand
// it runs the console demonstration.
func NewRootCommand() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:   "housebuilder",
		Short: "Build standard and luxury houses step by step",
		Long: "housebuilder assembles houses with interchangeable builders sequenced by a director.\n" +
			"Run without arguments to watch a standard and a luxury house being built.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(c *cobra.Command, _ []string) error {
			return RunDemo(c.OutOrStdout())
		},
	}

	serve := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the house construction job",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			config, err := LoadConfig(configPath)
			if err != nil {
				return err
			}
			return Serve(c.Context(), config)
		},
	}
	serve.Flags().StringVar(&configPath, "config", "", "path to a TOML config file (default $"+ConfigPathEnv+")")

	root.AddCommand(serve)
	return root
}

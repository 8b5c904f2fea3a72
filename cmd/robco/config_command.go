package main

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
)

func newConfigCommand(configFlag *string) *cobra.Command {
	var sample bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			if sample {
				fmt.Print(sampleConfig)
				return nil
			}

			cfg, path, err := loadConfig(*configFlag)
			if err != nil {
				return err
			}

			out, err := toml.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("marshal config: %w", err)
			}

			fmt.Printf("# %s\n%s", path, out)
			return nil
		},
	}

	cmd.Flags().BoolVar(&sample, "sample", false, "print a sample configuration file")

	return cmd
}

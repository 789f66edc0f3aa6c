package cmd

import (
	"fmt"

	"github.com/jfmyers9/tagger/internal/config"
	"github.com/spf13/cobra"
)

func newConfigCommand(opts *Options) *cobra.Command {
	var write bool

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Long: `Print the configuration tagger runs with, after applying the config
file, TAGGER_* environment variables and command-line flags.

With --write the result is saved to the config file (the --config path,
or ~/.config/tagger/config.yaml).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, opts)
			if err != nil {
				return err
			}
			defer s.close()

			cfg := s.cfg
			fmt.Fprintf(s.out, "library: %s\n", cfg.Library)
			fmt.Fprintf(s.out, "output: %s\n", cfg.Output)
			fmt.Fprintf(s.out, "log_level: %s\n", cfg.LogLevel)
			fmt.Fprintf(s.out, "workers: %d\n", cfg.Workers)
			fmt.Fprintf(s.out, "confirm_clear: %t\n", cfg.ConfirmClear)

			if !write {
				return nil
			}

			path := opts.ConfigFile
			if path == "" {
				path = config.DefaultPath()
			}
			if err := cfg.Save(path); err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}

			fmt.Fprintf(s.errOut, "✓ Configuration saved to %s\n", path)
			return nil
		},
	}

	configCmd.Flags().BoolVar(&write, "write", false, "Save the effective configuration")

	return configCmd
}

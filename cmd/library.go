package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newLibraryCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "library",
		Short: "List files with stored tags",
		Long:  `List every file the tag library holds tags for, one absolute path per line.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, opts)
			if err != nil {
				return err
			}
			defer s.close()

			lib, err := s.openLibrary()
			if err != nil {
				return err
			}
			defer lib.Close()

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			files, err := lib.Files(ctx)
			if err != nil {
				return fmt.Errorf("failed to list library: %w", err)
			}

			for _, path := range files {
				fmt.Fprintln(s.out, path)
			}
			return nil
		},
	}
}

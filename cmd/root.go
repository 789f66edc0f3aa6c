package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information (set via ldflags during build)
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

// Options holds every command-line option. It is built once per command tree
// and handed to the commands that need it.
type Options struct {
	ConfigFile string
	Library    string
	Output     string
	LogLevel   string
	LogFile    string

	Files     []string
	Get       string
	Set       string
	Clear     bool
	NoConfirm bool
}

// NewRootCommand builds the tagger command tree
func NewRootCommand() *cobra.Command {
	opts := &Options{}

	rootCmd := &cobra.Command{
		Use:   "tagger [flags] [files...]",
		Short: "Read and edit audio file tags",
		Long: `tagger reads and edits the tags of audio files.

Without --get, --set or --clear it prints every tag of every file.

Tags are given as NAME=VALUE pairs separated by ';'. A value list may
instead be one or more quoted strings, which makes a multi-valued tag:

  tagger -s 'ARTIST=Nina Simone;GENRE="Jazz" "Soul"' song.flac
  tagger -g 'ARTIST;GENRE' song.flac

Write a literal '=' in a tag name as '\='. Inside quotes a backslash
escapes the next character.`,
		Version:      fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildDate),
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTags(cmd, opts, args)
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&opts.ConfigFile, "config", "", "Config file (default: ~/.config/tagger/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&opts.Library, "library", "", "Tag library database (overrides config)")
	rootCmd.PersistentFlags().StringVarP(&opts.Output, "output", "o", "", "Output format: text, table, json (overrides config)")
	rootCmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")
	rootCmd.PersistentFlags().StringVar(&opts.LogFile, "log-file", "", "Log file path (default: stderr)")

	// Tag editing flags
	rootCmd.Flags().StringSliceVarP(&opts.Files, "file", "i", nil, "Files to operate on (in addition to arguments)")
	rootCmd.Flags().StringVarP(&opts.Get, "get", "g", "", "Print the named tags: NAME[;NAME...]")
	rootCmd.Flags().StringVarP(&opts.Set, "set", "s", "", "Set tags: NAME=VALUE[;NAME=VALUE...]")
	rootCmd.Flags().BoolVarP(&opts.Clear, "clear", "c", false, "Remove all tags")
	rootCmd.Flags().BoolVar(&opts.NoConfirm, "no-confirm", false, "Do not ask before clearing tags")

	rootCmd.AddCommand(newConfigCommand(opts))
	rootCmd.AddCommand(newLibraryCommand(opts))

	return rootCmd
}

// Execute runs the root command and exits non-zero on failure.
// This is called by main.main(). It only needs to happen once.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

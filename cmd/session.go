package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/jfmyers9/tagger/internal/config"
	"github.com/jfmyers9/tagger/internal/confirm"
	"github.com/jfmyers9/tagger/internal/library"
	"github.com/jfmyers9/tagger/internal/output"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// session bundles what a single command invocation needs: the resolved
// configuration, logger, output formatter and prompter.
type session struct {
	cfg       *config.Config
	logger    zerolog.Logger
	formatter output.Formatter
	prompter  confirm.Prompter
	out       io.Writer
	errOut    io.Writer

	closeLog func()
}

// newSession loads configuration and applies flag overrides on top of it
func newSession(cmd *cobra.Command, opts *Options) (*session, error) {
	cfg, err := config.Load(opts.ConfigFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if opts.Library != "" {
		cfg.Library = opts.Library
	}
	if opts.Output != "" {
		cfg.Output = opts.Output
	}
	if opts.LogLevel != "" {
		cfg.LogLevel = opts.LogLevel
	}

	formatter, err := output.NewFormatter(cfg.Output)
	if err != nil {
		return nil, err
	}

	logger, closeLog := setupLogger(cmd.ErrOrStderr(), opts.LogFile, cfg.LogLevel)

	return &session{
		cfg:       cfg,
		logger:    logger,
		formatter: formatter,
		prompter:  confirm.NewPrompter(cmd.InOrStdin(), cmd.ErrOrStderr()),
		out:       cmd.OutOrStdout(),
		errOut:    cmd.ErrOrStderr(),
		closeLog:  closeLog,
	}, nil
}

// openLibrary opens the tag library named by the configuration
func (s *session) openLibrary() (*library.Library, error) {
	lib, err := library.Open(s.cfg.Library, s.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to open tag library: %w", err)
	}

	s.logger.Debug().Str("library", s.cfg.Library).Msg("Opened tag library")
	return lib, nil
}

// diagnose reports a per-file problem without stopping the batch
func (s *session) diagnose(err error, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(s.errOut, msg)
	s.logger.Debug().Err(err).Msg(msg)
}

func (s *session) close() {
	if s.closeLog != nil {
		s.closeLog()
	}
}

// setupLogger creates a logger with the specified configuration. Logs go to
// logFile as JSON lines when set, otherwise to stderr in console format.
func setupLogger(stderr io.Writer, logFile, logLevel string) (zerolog.Logger, func()) {
	// Parse log level
	level := zerolog.WarnLevel
	switch logLevel {
	case "debug":
		level = zerolog.DebugLevel
	case "info":
		level = zerolog.InfoLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err == nil {
			logger := zerolog.New(f).Level(level).With().Timestamp().Logger()
			return logger, func() { _ = f.Close() }
		}
		fmt.Fprintf(stderr, "Failed to open log file: %v\n", err)
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: stderr, TimeFormat: time.RFC3339}).
		Level(level).
		With().
		Timestamp().
		Logger()

	return logger, func() {}
}

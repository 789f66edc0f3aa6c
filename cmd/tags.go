package cmd

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/jfmyers9/tagger/internal/output"
	"github.com/jfmyers9/tagger/internal/tagfile"
	"github.com/jfmyers9/tagger/internal/tagspec"
	"github.com/spf13/cobra"
)

var errNoFiles = errors.New("no files given")

func runTags(cmd *cobra.Command, opts *Options, args []string) error {
	files := append(slices.Clone(opts.Files), args...)
	if len(files) == 0 {
		fmt.Fprint(cmd.ErrOrStderr(), cmd.UsageString())
		return errNoFiles
	}

	// Parse --set before touching any file so a bad argument changes nothing
	var entries []tagspec.Entry
	if cmd.Flags().Changed("set") {
		var err error
		entries, err = tagspec.Parse(opts.Set)
		if err != nil {
			return fmt.Errorf("invalid --set argument %q: %w", opts.Set, err)
		}
	}

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

	getting := cmd.Flags().Changed("get")
	setting := cmd.Flags().Changed("set")

	if !getting && !setting && !opts.Clear {
		return showAll(ctx, s, lib, files)
	}

	if getting {
		if err := getTags(ctx, s, lib, files, tagspec.ParseNames(opts.Get)); err != nil {
			return err
		}
	}

	if setting {
		if err := setTags(ctx, s, lib, files, entries); err != nil {
			return err
		}
	}

	if opts.Clear {
		return clearTags(ctx, s, lib, files, opts.NoConfirm)
	}

	return nil
}

// forEachFile opens files and calls fn, in argument order, for each one that
// opened. Files that cannot be opened are reported and skipped.
func forEachFile(ctx context.Context, s *session, store tagfile.Store, files []string, fn func(*tagfile.File) error) error {
	opened, err := openFiles(ctx, store, files, s.cfg.Workers, s.logger)
	if err != nil {
		return err
	}

	for _, o := range opened {
		if o.err != nil {
			s.diagnose(o.err, "Error: Cannot open: [%s]", o.path)
			continue
		}
		if err := fn(o.file); err != nil {
			return err
		}
	}

	return nil
}

// showAll prints every tag of every file
func showAll(ctx context.Context, s *session, store tagfile.Store, files []string) error {
	return forEachFile(ctx, s, store, files, func(f *tagfile.File) error {
		return s.formatter.Format(s.out, output.Listing{
			File:    f.Path(),
			Header:  true,
			Entries: f.Properties.Entries(),
		})
	})
}

// getTags prints the named tags of every file. Names a file lacks are
// reported and skipped.
func getTags(ctx context.Context, s *session, store tagfile.Store, files []string, names []string) error {
	return forEachFile(ctx, s, store, files, func(f *tagfile.File) error {
		listing := output.Listing{File: f.Path()}

		for _, name := range names {
			entry, ok := f.Lookup(name)
			if !ok {
				s.diagnose(nil, "No tag found for '%s': [%s]", name, f.Path())
				continue
			}
			listing.Entries = append(listing.Entries, entry)
		}

		return s.formatter.Format(s.out, listing)
	})
}

// setTags merges entries into the tags of every file and saves them
func setTags(ctx context.Context, s *session, store tagfile.Store, files []string, entries []tagspec.Entry) error {
	return forEachFile(ctx, s, store, files, func(f *tagfile.File) error {
		f.Apply(entries...)

		if err := f.Save(ctx); err != nil {
			s.diagnose(err, "Error: Cannot write contents: [%s]", f.Path())
		}
		return nil
	})
}

// clearTags removes every tag from every file after confirmation
func clearTags(ctx context.Context, s *session, store tagfile.Store, files []string, noConfirm bool) error {
	ok, err := s.prompter.Confirm(
		fmt.Sprintf("Remove all tags from %d file(s)", len(files)),
		noConfirm || !s.cfg.ConfirmClear,
	)
	if err != nil {
		return fmt.Errorf("failed to read confirmation: %w", err)
	}
	if !ok {
		fmt.Fprintln(s.errOut, "Aborted.")
		return nil
	}

	return forEachFile(ctx, s, store, files, func(f *tagfile.File) error {
		f.Clear()

		if err := f.Save(ctx); err != nil {
			s.diagnose(err, "Error: Cannot write contents: [%s]", f.Path())
		}
		return nil
	})
}

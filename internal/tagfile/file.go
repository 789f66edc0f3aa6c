// Package tagfile edits the tags of a single file. Every front end (the
// command line today) goes through it rather than talking to the store
// directly.
package tagfile

import (
	"context"
	"fmt"

	"github.com/jfmyers9/tagger/internal/tags"
	"github.com/jfmyers9/tagger/internal/tagspec"
	"github.com/rs/zerolog"
)

// Store loads and saves the property map of a file
type Store interface {
	// Load returns the stored tags of the file at path
	Load(ctx context.Context, path string) (*tags.PropertyMap, error)

	// Store replaces the stored tags of the file at path
	Store(ctx context.Context, path string, props *tags.PropertyMap) error
}

// File is an opened file with an editable copy of its tags
type File struct {
	// Properties is the working copy. Edits are kept in memory until Save.
	Properties *tags.PropertyMap

	path   string
	store  Store
	saved  *tags.PropertyMap
	logger zerolog.Logger
}

// Open loads the tags of the file at path
func Open(ctx context.Context, store Store, path string, logger zerolog.Logger) (*File, error) {
	props, err := store.Load(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("cannot open %s for tagging: %w", path, err)
	}

	return &File{
		Properties: props.Clone(),
		path:       path,
		store:      store,
		saved:      props,
		logger:     logger.With().Str("file", path).Logger(),
	}, nil
}

// Path returns the path the file was opened with
func (f *File) Path() string {
	return f.path
}

// Lookup returns the working value of one tag
func (f *File) Lookup(name string) (tagspec.Entry, bool) {
	return f.Properties.Lookup(name)
}

// Apply merges entries into the working copy, replacing existing tags
func (f *File) Apply(entries ...tagspec.Entry) {
	f.Properties.Apply(entries...)
}

// Modified reports whether the working copy differs from the stored tags
func (f *File) Modified() bool {
	return !f.Properties.Equal(f.saved)
}

// Save writes the working copy to the store. Nothing is written when the
// tags are unchanged.
func (f *File) Save(ctx context.Context) error {
	if !f.Modified() {
		f.logger.Debug().Msg("Tags unchanged, skipping save")
		return nil
	}

	if err := f.store.Store(ctx, f.path, f.Properties); err != nil {
		return fmt.Errorf("cannot save %s: %w", f.path, err)
	}

	f.saved = f.Properties.Clone()
	f.logger.Info().Int("tags", f.saved.Len()).Msg("Saved tags")
	return nil
}

// Clear removes every tag from the working copy
func (f *File) Clear() {
	f.Properties = &tags.PropertyMap{}
}

// Reset discards unsaved edits
func (f *File) Reset() {
	f.Properties = f.saved.Clone()
}

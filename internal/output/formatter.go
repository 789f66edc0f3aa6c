package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jfmyers9/tagger/internal/tagspec"
	"github.com/mattn/go-runewidth"
)

// Listing is the set of tags printed for one file.
type Listing struct {
	File    string
	Header  bool // Print the file name before the tags
	Entries []tagspec.Entry
}

// Formatter writes a listing in a specific output format.
type Formatter interface {
	Format(w io.Writer, listing Listing) error
}

// NewFormatter returns a formatter for text, table, or json output.
func NewFormatter(format string) (Formatter, error) {
	switch strings.ToLower(format) {
	case "", "text":
		return TextFormatter{}, nil
	case "table":
		return TableFormatter{}, nil
	case "json":
		return JSONFormatter{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format %q", format)
	}
}

// TextFormatter prints one NAME = 'value' line per tag.
type TextFormatter struct{}

func (TextFormatter) Format(w io.Writer, listing Listing) error {
	if listing.Header {
		if _, err := fmt.Fprintf(w, "For [%s]:\n", listing.File); err != nil {
			return err
		}
	}

	for _, entry := range listing.Entries {
		if _, err := fmt.Fprintln(w, entry.String()); err != nil {
			return err
		}
	}

	return nil
}

// TableFormatter aligns tag names in a column, measured in display cells so
// wide characters line up.
type TableFormatter struct{}

func (TableFormatter) Format(w io.Writer, listing Listing) error {
	if listing.Header {
		if _, err := fmt.Fprintf(w, "%s\n", listing.File); err != nil {
			return err
		}
	}

	width := 0
	for _, entry := range listing.Entries {
		width = max(width, runewidth.StringWidth(entry.Name))
	}

	indent := ""
	if listing.Header {
		indent = "  "
	}

	for _, entry := range listing.Entries {
		line := indent + entry.Name
		if values := strings.Join(entry.Values, "; "); values != "" {
			line = indent + runewidth.FillRight(entry.Name, width) + "  " + values
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	return nil
}

// JSONFormatter writes one JSON object per listing.
type JSONFormatter struct{}

type jsonTag struct {
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

type jsonListing struct {
	File string    `json:"file"`
	Tags []jsonTag `json:"tags"`
}

func (JSONFormatter) Format(w io.Writer, listing Listing) error {
	out := jsonListing{File: listing.File, Tags: make([]jsonTag, 0, len(listing.Entries))}
	for _, entry := range listing.Entries {
		out.Tags = append(out.Tags, jsonTag{Name: entry.Name, Values: entry.StringList()})
	}

	return json.NewEncoder(w).Encode(out)
}

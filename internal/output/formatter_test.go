package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/jfmyers9/tagger/internal/tagspec"
)

func testListing(header bool) Listing {
	return Listing{
		File:   "song.flac",
		Header: header,
		Entries: []tagspec.Entry{
			tagspec.NewEntry("ARTIST", "Nina Simone"),
			tagspec.NewEntry("GENRE", "Jazz", "Soul"),
			tagspec.NewEntry("TITLE", "Don't Explain"),
		},
	}
}

func TestNewFormatter(t *testing.T) {
	tests := []struct {
		format  string
		want    Formatter
		wantErr bool
	}{
		{format: "", want: TextFormatter{}},
		{format: "text", want: TextFormatter{}},
		{format: "TABLE", want: TableFormatter{}},
		{format: "json", want: JSONFormatter{}},
		{format: "yaml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			got, err := NewFormatter(tt.format)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewFormatter(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("NewFormatter(%q) = %T, want %T", tt.format, got, tt.want)
			}
		})
	}
}

func TestTextFormatter(t *testing.T) {
	t.Run("with header", func(t *testing.T) {
		var buf bytes.Buffer
		if err := (TextFormatter{}).Format(&buf, testListing(true)); err != nil {
			t.Fatalf("Format() error = %v", err)
		}

		want := "For [song.flac]:\n" +
			"ARTIST = 'Nina Simone'\n" +
			"GENRE = 'Jazz' 'Soul'\n" +
			"TITLE = 'Don\\'t Explain'\n"
		if buf.String() != want {
			t.Errorf("Format() =\n%s\nwant\n%s", buf.String(), want)
		}
	})

	t.Run("without header", func(t *testing.T) {
		var buf bytes.Buffer
		listing := Listing{File: "song.flac", Entries: []tagspec.Entry{tagspec.NewEntry("ARTIST", "x")}}
		if err := (TextFormatter{}).Format(&buf, listing); err != nil {
			t.Fatalf("Format() error = %v", err)
		}

		if buf.String() != "ARTIST = 'x'\n" {
			t.Errorf("Format() = %q", buf.String())
		}
	})
}

func TestTableFormatterAlignsNames(t *testing.T) {
	var buf bytes.Buffer
	if err := (TableFormatter{}).Format(&buf, testListing(false)); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	want := "ARTIST  Nina Simone\n" +
		"GENRE   Jazz; Soul\n" +
		"TITLE   Don't Explain\n"
	if buf.String() != want {
		t.Errorf("Format() =\n%s\nwant\n%s", buf.String(), want)
	}
}

func TestTableFormatterWideNames(t *testing.T) {
	listing := Listing{
		File:   "曲.flac",
		Header: true,
		Entries: []tagspec.Entry{
			tagspec.NewEntry("曲名", "a"),
			tagspec.NewEntry("ARTIST", "b"),
			tagspec.NewEntry("EMPTY"),
		},
	}

	var buf bytes.Buffer
	if err := (TableFormatter{}).Format(&buf, listing); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	// "曲名" is four cells wide, so it pads to six like "ARTIST".
	want := "曲.flac\n" +
		"  曲名    a\n" +
		"  ARTIST  b\n" +
		"  EMPTY\n"
	if buf.String() != want {
		t.Errorf("Format() =\n%q\nwant\n%q", buf.String(), want)
	}
}

func TestJSONFormatterProducesParseableJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := (JSONFormatter{}).Format(&buf, testListing(true)); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	var got jsonListing
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("JSON unmarshal error = %v\n%s", err, buf.String())
	}

	want := jsonListing{
		File: "song.flac",
		Tags: []jsonTag{
			{Name: "ARTIST", Values: []string{"Nina Simone"}},
			{Name: "GENRE", Values: []string{"Jazz", "Soul"}},
			{Name: "TITLE", Values: []string{"Don't Explain"}},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("JSON mismatch (-want +got):\n%s", diff)
	}
}

func TestJSONFormatterEmptyListing(t *testing.T) {
	var buf bytes.Buffer
	if err := (JSONFormatter{}).Format(&buf, Listing{File: "a.mp3"}); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	if got, want := buf.String(), "{\"file\":\"a.mp3\",\"tags\":[]}\n"; got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}

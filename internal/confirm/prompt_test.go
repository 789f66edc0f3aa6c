package confirm

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestConfirm(t *testing.T) {
	tests := []struct {
		name  string
		input string
		skip  bool
		want  bool
	}{
		{name: "skip bypasses prompt", input: "n\n", skip: true, want: true},
		{name: "yes", input: "yes\n", want: true},
		{name: "short yes with spaces", input: "  Y \n", want: true},
		{name: "no", input: "no\n", want: false},
		{name: "empty answer defaults to no", input: "\n", want: false},
		{name: "end of input defaults to no", input: "", want: false},
		{name: "reprompts after invalid answer", input: "maybe\ny\n", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			prompter := NewPrompter(strings.NewReader(tt.input), &out)

			got, err := prompter.Confirm("Clear all tags of 2 files", tt.skip)
			if err != nil {
				t.Fatalf("Confirm() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Confirm() = %v, want %v", got, tt.want)
			}

			if tt.skip && out.Len() != 0 {
				t.Errorf("skipped prompt wrote %q", out.String())
			}
		})
	}
}

func TestConfirmPromptText(t *testing.T) {
	var out bytes.Buffer
	prompter := NewPrompter(strings.NewReader("maybe\nn\n"), &out)

	if _, err := prompter.Confirm("Clear all tags", false); err != nil {
		t.Fatalf("Confirm() error = %v", err)
	}

	want := "Clear all tags? [y/N]: Please answer y or n.\nClear all tags? [y/N]: "
	if out.String() != want {
		t.Errorf("prompt output = %q, want %q", out.String(), want)
	}
}

func TestConfirmReturnsErrors(t *testing.T) {
	t.Run("write error", func(t *testing.T) {
		prompter := NewPrompter(strings.NewReader("y\n"), failingWriter{})
		if _, err := prompter.Confirm("run", false); err == nil {
			t.Fatal("expected write error")
		}
	})

	t.Run("read error", func(t *testing.T) {
		prompter := NewPrompter(failingReader{}, &bytes.Buffer{})
		if _, err := prompter.Confirm("run", false); err == nil {
			t.Fatal("expected read error")
		}
	})
}

func TestNewPrompterDefaultsToStandardStreams(t *testing.T) {
	prompter := NewPrompter(nil, nil)
	if prompter.In == nil || prompter.Out == nil {
		t.Fatal("expected default stdio to be set")
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("write failed")
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("read failed")
}

package confirm

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Prompter asks yes/no questions before destructive edits.
type Prompter struct {
	In  io.Reader
	Out io.Writer
}

// NewPrompter creates a prompter, falling back to stdin and stderr for nil
// streams. Prompts go to stderr so they never mix with tag output.
func NewPrompter(in io.Reader, out io.Writer) Prompter {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stderr
	}

	return Prompter{In: in, Out: out}
}

// Confirm asks whether to go ahead with action. It returns true without
// asking when skip is set, and treats end of input as no.
func (p Prompter) Confirm(action string, skip bool) (bool, error) {
	if skip {
		return true, nil
	}

	scanner := bufio.NewScanner(p.In)
	for {
		if _, err := fmt.Fprintf(p.Out, "%s? [y/N]: ", action); err != nil {
			return false, err
		}

		if !scanner.Scan() {
			return false, scanner.Err()
		}

		switch strings.ToLower(strings.TrimSpace(scanner.Text())) {
		case "y", "yes":
			return true, nil
		case "", "n", "no":
			return false, nil
		}

		if _, err := fmt.Fprintln(p.Out, "Please answer y or n."); err != nil {
			return false, err
		}
	}
}

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/peterh/liner"

	"github.com/zephyrtronium/linecalc"
)

const prompt = "> "

// lineReader is a source of input lines. *liner.State is a lineReader.
type lineReader interface {
	// Prompt returns the next line without its line terminator. At the end
	// of input, the error is io.EOF.
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
}

// fileReader reads lines from a non-interactive source. It never prompts and
// keeps no history. Lines may be any length.
type fileReader struct {
	r *bufio.Reader
}

func newFileReader(r io.Reader) *fileReader {
	return &fileReader{r: bufio.NewReader(r)}
}

func (r *fileReader) Prompt(string) (string, error) {
	line, err := r.r.ReadString('\n')
	if err != nil && (line == "" || !errors.Is(err, io.EOF)) {
		return "", err
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}

func (r *fileReader) AppendHistory(string) {}

// run evaluates lines from in until the end of input or a line reading
// "exit". Results go to out, and errors evaluating lines go to errOut. The
// result is non-nil only if reading fails.
func run(in lineReader, out, errOut io.Writer, it *linecalc.Interpreter) error {
	for {
		line, err := in.Prompt(prompt)
		switch {
		case err == nil: // do nothing
		case errors.Is(err, liner.ErrPromptAborted):
			continue
		case errors.Is(err, io.EOF):
			return nil
		default:
			return fmt.Errorf("reading input: %w", err)
		}
		cmd := strings.TrimSpace(line)
		if cmd == "" {
			continue
		}
		in.AppendHistory(line)
		switch cmd {
		case "exit":
			return nil
		case ":vars":
			for _, v := range it.Vars() {
				fmt.Fprintf(out, "%s = %d\n", v.Name, v.Value)
			}
			continue
		}
		r, err := it.Line(line)
		if err != nil {
			fmt.Fprintf(errOut, "Error: %v\n", err)
			continue
		}
		fmt.Fprintln(out, r)
	}
}

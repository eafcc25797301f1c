package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"golang.org/x/term"
)

// ErrNoInput is returned when piped input ends before a line is read.
var ErrNoInput = errors.New("no password on input")

// ReadPassword reads a password from in. A terminal is read without echo
// after writing prompt to out; any other reader yields its first line.
func ReadPassword(prompt string, in io.Reader, out io.Writer) (string, error) {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(out, prompt)
		b, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(out) // newline after hidden input
		if err != nil {
			return "", fmt.Errorf("failed to read password: %w", err)
		}
		return string(b), nil
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	if line == "" && errors.Is(err, io.EOF) {
		return "", ErrNoInput
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// IsTerminal reports whether w is an interactive terminal.
func IsTerminal(w any) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// StartSpinner shows message with a spinner on w when w is a terminal and
// returns the function that stops it. On other writers it does nothing.
func StartSpinner(message string, w io.Writer) (stop func()) {
	if !IsTerminal(w) {
		return func() {}
	}
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(w))
	s.Suffix = " " + message
	// Unsupported color names are the only failure; run uncolored then.
	_ = s.Color("cyan")
	s.Start()
	return s.Stop
}

// Package interaction is the terminal collaborator for human-in-the-loop
// decisions. All prompts block until the operator answers; this is a
// single-user tool and an indefinite wait is fine.
package interaction

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Console reads decisions and input from a terminal.
type Console struct {
	in  *bufio.Reader
	out io.Writer
}

// New creates a console on the given streams. cmd wires os.Stdin/os.Stdout;
// tests pass buffers.
func New(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// NewStdio creates a console on the process's standard streams
func NewStdio() *Console {
	return New(os.Stdin, os.Stdout)
}

// Interactive reports whether stdin is an actual terminal. Non-interactive
// invocations (pipes, CI) should not hit blocking prompts.
func Interactive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// YesNo shows a draft under a context label and blocks for a y/n answer.
// Anything other than y/yes counts as no.
func (c *Console) YesNo(text, label string) (bool, error) {
	fmt.Fprintf(c.out, "\n=== Draft greeting for %s ===\n\n", label)
	fmt.Fprintln(c.out, text)
	fmt.Fprint(c.out, "\n========================================\n\n")
	fmt.Fprint(c.out, "Keep this greeting? (y/n): ")

	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		return false, fmt.Errorf("read answer: %w", err)
	}

	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}

// Input prompts for one line of free text
func (c *Console) Input(prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)

	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("read input: %w", err)
	}

	return strings.TrimSpace(line), nil
}

// Info prints an informational message
func (c *Console) Info(format string, args ...interface{}) {
	fmt.Fprintf(c.out, "\nℹ️  "+format+"\n", args...)
}

// Success prints a success message
func (c *Console) Success(format string, args ...interface{}) {
	fmt.Fprintf(c.out, "\n✅ "+format+"\n", args...)
}

// Failure prints a failure message
func (c *Console) Failure(format string, args ...interface{}) {
	fmt.Fprintf(c.out, "\n❌ "+format+"\n", args...)
}

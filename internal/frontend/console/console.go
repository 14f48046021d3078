// Package console provides line-oriented terminal I/O for the game.
package console

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/muesli/reflow/wordwrap"
	"golang.org/x/term"

	"github.com/cory-johannsen/escapegame/internal/config"
)

// ClearScreen erases the terminal and moves the cursor home.
const ClearScreen = "\033[2J\033[H"

// Console reads player input a line at a time and writes wrapped output.
// It is not safe for concurrent use.
type Console struct {
	reader *bufio.Reader
	out    io.Writer
	clear  bool
	width  int
}

// New wraps in and out according to cfg.
// Screen clearing is enabled only when cfg asks for it and out is a terminal.
//
// Precondition: in and out must be non-nil.
// Postcondition: Returns a Console ready for reading and writing.
func New(in io.Reader, out io.Writer, cfg config.ConsoleConfig) *Console {
	return &Console{
		reader: bufio.NewReaderSize(in, 4096),
		out:    out,
		clear:  cfg.ClearScreen && IsTerminal(out),
		width:  cfg.WrapWidth,
	}
}

// IsTerminal reports whether w is an *os.File attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// ReadLine reads the next line of input without surrounding whitespace.
// A final line lacking a newline is still returned.
//
// Postcondition: Returns the trimmed line, or io.EOF once input is exhausted.
func (c *Console) ReadLine() (string, error) {
	line, err := c.reader.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// WriteLine writes text followed by a newline, wrapped at the configured width.
//
// Postcondition: text is written, or a non-nil error is returned.
func (c *Console) WriteLine(text string) error {
	if c.width > 0 {
		text = wordwrap.String(text, c.width)
	}
	if _, err := fmt.Fprintln(c.out, text); err != nil {
		return fmt.Errorf("writing line: %w", err)
	}
	return nil
}

// Clear erases the screen when clearing is enabled. Otherwise it does nothing.
func (c *Console) Clear() error {
	if !c.clear {
		return nil
	}
	if _, err := io.WriteString(c.out, ClearScreen); err != nil {
		return fmt.Errorf("clearing screen: %w", err)
	}
	return nil
}

// Package ui provides the line-oriented terminal console: input, localised
// narration and the final summary box.
package ui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/samdwyer/textrogue/internal/game"
)

// ErrInterrupted is returned when the operator presses Ctrl-C at a key prompt.
var ErrInterrupted = errors.New("interrupted")

// Control bytes seen in raw mode.
const (
	keyCtrlC = 0x03
	keyCtrlD = 0x04
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Options configures a Console.
type Options struct {
	Lang  string // "ru" or "en"; anything else falls back to English
	Color string // ColorAuto, ColorAlways or ColorNever
}

// Console reads operator input and writes narration.
type Console struct {
	in      *bufio.Reader
	out     io.Writer
	printer *message.Printer
	lang    string
	color   bool

	fd  int  // Input file descriptor when tty is set
	tty bool // Input is an interactive terminal
}

// NewConsole creates a console over in and out.
func NewConsole(in io.Reader, out io.Writer, opts Options) *Console {
	tag, lang := language.English, "en"
	if strings.EqualFold(opts.Lang, "ru") {
		tag, lang = language.Russian, "ru"
	}

	c := &Console{
		in:      bufio.NewReader(in),
		out:     out,
		printer: message.NewPrinter(tag, message.Catalog(messages)),
		lang:    lang,
	}

	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		c.fd = int(f.Fd())
		c.tty = true
	}

	switch opts.Color {
	case ColorAlways:
		c.color = true
	case ColorNever:
		c.color = false
	default:
		c.color = isTerminal(out) && os.Getenv("NO_COLOR") == ""
	}
	return c
}

// Lang returns the narration language ("ru" or "en").
func (c *Console) Lang() string { return c.lang }

// ReadLine returns the next input line without its terminator. A final
// line without a newline is returned before io.EOF.
func (c *Console) ReadLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	line, err := c.in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// ReadKey waits for a single key press. On a terminal the key is read in
// raw mode; otherwise one line is consumed.
func (c *Console) ReadKey(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !c.tty {
		_, err := c.ReadLine(ctx)
		return err
	}

	err := c.readRawKey()
	fmt.Fprintln(c.out)
	return err
}

func (c *Console) readRawKey() error {
	state, err := term.MakeRaw(c.fd)
	if err != nil {
		return fmt.Errorf("enter raw mode: %w", err)
	}
	b, err := c.in.ReadByte()
	if rerr := term.Restore(c.fd, state); rerr != nil && err == nil {
		err = fmt.Errorf("restore terminal: %w", rerr)
	}
	// Multi-byte keys (arrows, function keys) arrive together
	_, _ = c.in.Discard(c.in.Buffered())
	if err != nil {
		return err
	}
	return keyError(b)
}

// keyError maps control bytes read in raw mode to errors.
func keyError(b byte) error {
	switch b {
	case keyCtrlC:
		return ErrInterrupted
	case keyCtrlD:
		return io.EOF
	default:
		return nil
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Ensure Console serves as the session's input
var _ game.Input = (*Console)(nil)

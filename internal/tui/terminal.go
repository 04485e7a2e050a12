package tui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/term"

	"github.com/albion-rpg/albion/internal/game/gameerr"
)

// Terminal is the interactive surface: it reads keys and lines from the
// input and writes styled output. When the input is a real TTY the select
// widget uses raw-mode arrow keys; otherwise it falls back to numbered
// entry, which also makes every flow scriptable in tests.
type Terminal struct {
	in    *bufio.Reader
	out   io.Writer
	tty   *os.File // nil when input is not a terminal
	delay time.Duration
}

// New creates a Terminal over the given reader and writer.
//
// Postcondition: raw-mode features activate only if in is a terminal
// device.
func New(in io.Reader, out io.Writer, delay time.Duration) *Terminal {
	t := &Terminal{
		in:    bufio.NewReader(in),
		out:   out,
		delay: delay,
	}
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		t.tty = f
	}
	return t
}

// Clear erases the screen and homes the cursor.
func (t *Terminal) Clear() {
	fmt.Fprint(t.out, clearScreen)
}

// Header prints a titled banner.
func (t *Terminal) Header(title string) {
	line := strings.Repeat("=", len(title)+8)
	fmt.Fprintf(t.out, "%s\n    %s\n%s\n",
		Colorize(BrightCyan, line),
		Colorize(Bold+BrightYellow, title),
		Colorize(BrightCyan, line),
	)
}

// Println writes a plain line.
func (t *Terminal) Println(text string) {
	fmt.Fprintln(t.out, text)
}

// Statusf writes one colored status line and pauses for the configured
// message delay.
func (t *Terminal) Statusf(color, format string, args ...any) {
	fmt.Fprintln(t.out, Colorf(color, format, args...))
	t.SleepSeconds(int(t.delay / time.Second))
}

// Table prints CSV-shaped rows as an aligned table.
func (t *Terminal) Table(headers []string, rows [][]string) {
	fmt.Fprint(t.out, RenderTable(headers, rows))
}

// Prompt asks for one line of free text.
//
// Postcondition: the returned string has no trailing newline.
func (t *Terminal) Prompt(label string) (string, error) {
	fmt.Fprint(t.out, Colorize(BrightWhite, label+" "))
	line, err := t.in.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// PromptInt asks for a positive integer.
//
// Postcondition: returns n >= 1 or an InvalidInput error.
func (t *Terminal) PromptInt(label string) (int, error) {
	text, err := t.Prompt(label)
	if err != nil {
		return 0, err
	}
	n, convErr := strconv.Atoi(strings.TrimSpace(text))
	if convErr != nil || n < 1 {
		return 0, gameerr.InvalidInput(text)
	}
	return n, nil
}

// Password asks for a line of text with echo disabled when the input is
// a terminal. Outside a terminal it reads a plain line.
func (t *Terminal) Password(label string) (string, error) {
	fmt.Fprint(t.out, Colorize(BrightWhite, label+" "))
	if t.tty == nil {
		return t.Prompt("")
	}
	secret, err := term.ReadPassword(int(t.tty.Fd()))
	fmt.Fprintln(t.out)
	if err != nil {
		return "", fmt.Errorf("reading password: %w", err)
	}
	return string(secret), nil
}

// Confirm asks a yes/no question. Only "y" and "yes" count as yes.
func (t *Terminal) Confirm(label string) (bool, error) {
	answer, err := t.Prompt(label + " [y/N]")
	if err != nil {
		return false, err
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}

// Pause blocks until the user presses ENTER.
func (t *Terminal) Pause() {
	fmt.Fprint(t.out, Colorize(Dim, "Press ENTER to continue..."))
	_, _ = t.in.ReadString('\n')
	fmt.Fprintln(t.out)
}

// SleepSeconds blocks for n seconds; n <= 0 is a no-op so tests and
// impatient configs run at full speed.
func (t *Terminal) SleepSeconds(n int) {
	if n > 0 {
		time.Sleep(time.Duration(n) * time.Second)
	}
}

// Select presents a titled option list and returns the chosen index.
// On a TTY the user moves with the arrow keys and confirms with ENTER;
// otherwise (and in tests) the user types the option number.
//
// Precondition: options must be non-empty.
// Postcondition: 0 <= result < len(options), or an error.
func (t *Terminal) Select(title string, options []string) (int, error) {
	if len(options) == 0 {
		return 0, gameerr.InvalidInput("no options to select from")
	}
	if t.tty == nil {
		return t.selectNumbered(title, options)
	}
	return t.selectArrows(title, options)
}

// selectNumbered is the line-oriented fallback select.
func (t *Terminal) selectNumbered(title string, options []string) (int, error) {
	fmt.Fprintln(t.out, Colorize(Bold, title))
	for i, opt := range options {
		fmt.Fprintf(t.out, "  %2d) %s\n", i+1, opt)
	}
	for {
		n, err := t.PromptInt(">")
		if err != nil {
			var invalid *gameerr.InvalidInputError
			if errors.As(err, &invalid) {
				fmt.Fprintln(t.out, Colorize(Red, "Enter a number from the list."))
				continue
			}
			return 0, err
		}
		if n >= 1 && n <= len(options) {
			return n - 1, nil
		}
		fmt.Fprintln(t.out, Colorize(Red, "Enter a number from the list."))
	}
}

// selectArrows is the raw-mode arrow-key select. Digits still work as
// direct code entry.
func (t *Terminal) selectArrows(title string, options []string) (int, error) {
	oldState, err := term.MakeRaw(int(t.tty.Fd()))
	if err != nil {
		return t.selectNumbered(title, options)
	}
	defer term.Restore(int(t.tty.Fd()), oldState)

	selected := 0
	fmt.Fprintf(t.out, "%s\r\n", Colorize(Bold, title))
	render := func() {
		for i, opt := range options {
			marker := "  "
			line := opt
			if i == selected {
				marker = Colorize(BrightGreen, "> ")
				line = Colorize(Reverse, opt)
			}
			fmt.Fprintf(t.out, "%s%s%s\r\n", eraseLine, marker, line)
		}
	}
	render()

	buf := make([]byte, 3)
	for {
		n, err := t.tty.Read(buf)
		if err != nil {
			return 0, fmt.Errorf("reading key: %w", err)
		}
		switch {
		case n == 1 && (buf[0] == '\r' || buf[0] == '\n'):
			fmt.Fprint(t.out, "\r\n")
			return selected, nil
		case n == 1 && buf[0] >= '1' && buf[0] <= '9':
			if idx := int(buf[0]-'0') - 1; idx < len(options) {
				selected = idx
			}
		case n == 3 && buf[0] == '\033' && buf[1] == '[' && buf[2] == 'A':
			if selected > 0 {
				selected--
			}
		case n == 3 && buf[0] == '\033' && buf[1] == '[' && buf[2] == 'B':
			if selected < len(options)-1 {
				selected++
			}
		}
		fmt.Fprintf(t.out, cursorUp, len(options))
		render()
	}
}

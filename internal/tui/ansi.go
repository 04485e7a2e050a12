// Package tui provides the terminal surface the game draws on: ANSI
// styling, prompts, selects, tables, and pacing.
package tui

import "fmt"

// ANSI escape code constants for terminal styling.
const (
	Reset     = "\033[0m"
	Bold      = "\033[1m"
	Dim       = "\033[2m"
	Underline = "\033[4m"
	Reverse   = "\033[7m"

	// Foreground colors
	Black   = "\033[30m"
	Red     = "\033[31m"
	Green   = "\033[32m"
	Yellow  = "\033[33m"
	Blue    = "\033[34m"
	Magenta = "\033[35m"
	Cyan    = "\033[36m"
	White   = "\033[37m"

	// Bright foreground colors
	BrightRed    = "\033[91m"
	BrightGreen  = "\033[92m"
	BrightYellow = "\033[93m"
	BrightCyan   = "\033[96m"
	BrightWhite  = "\033[97m"

	clearScreen = "\033[2J\033[H"
	cursorUp    = "\033[%dA"
	eraseLine   = "\033[2K\r"
)

// Colorize wraps text with the given ANSI color code and a reset suffix.
//
// Precondition: color must be a valid ANSI escape sequence.
// Postcondition: returns text wrapped with the color code and Reset.
func Colorize(color, text string) string {
	return color + text + Reset
}

// Colorf wraps a formatted string with the given ANSI color code.
func Colorf(color, format string, args ...any) string {
	return color + fmt.Sprintf(format, args...) + Reset
}

// StripANSI removes all ANSI escape sequences from a string.
// This is useful for measuring the printable width of styled text.
//
// Postcondition: returns text with all \033[...m sequences removed.
func StripANSI(s string) string {
	result := make([]byte, 0, len(s))
	i := 0
	for i < len(s) {
		if s[i] == '\033' && i+1 < len(s) && s[i+1] == '[' {
			// Skip past the 'm' terminator
			j := i + 2
			for j < len(s) && s[j] != 'm' {
				j++
			}
			if j < len(s) {
				i = j + 1
				continue
			}
		}
		result = append(result, s[i])
		i++
	}
	return string(result)
}

package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTerminal(input string) (*Terminal, *strings.Builder) {
	out := &strings.Builder{}
	return New(strings.NewReader(input), out, 0), out
}

func TestPrompt_TrimsNewline(t *testing.T) {
	term, _ := newTestTerminal("gareth\r\n")
	got, err := term.Prompt("Username:")
	require.NoError(t, err)
	assert.Equal(t, "gareth", got)
}

func TestPromptInt_RejectsNonPositive(t *testing.T) {
	term, _ := newTestTerminal("0\n")
	_, err := term.PromptInt("Amount:")
	assert.Error(t, err)

	term, _ = newTestTerminal("gold\n")
	_, err = term.PromptInt("Amount:")
	assert.Error(t, err)

	term, _ = newTestTerminal(" 12 \n")
	n, err := term.PromptInt("Amount:")
	require.NoError(t, err)
	assert.Equal(t, 12, n)
}

func TestConfirm(t *testing.T) {
	for input, want := range map[string]bool{
		"y\n":    true,
		"YES\n":  true,
		"n\n":    false,
		"\n":     false,
		"sure\n": false,
	} {
		term, _ := newTestTerminal(input)
		got, err := term.Confirm("Proceed?")
		require.NoError(t, err)
		assert.Equal(t, want, got, "input %q", input)
	}
}

func TestSelect_NumberedFallback(t *testing.T) {
	term, out := newTestTerminal("2\n")
	idx, err := term.Select("Choose", []string{"Wander", "Stronghold", "Logout"})
	require.NoError(t, err)
	assert.Equal(t, 1, idx)
	assert.Contains(t, out.String(), "Stronghold")
}

func TestSelect_RetriesOnBadInput(t *testing.T) {
	term, out := newTestTerminal("9\nnope\n3\n")
	idx, err := term.Select("Choose", []string{"a", "b", "c"})
	require.NoError(t, err)
	assert.Equal(t, 2, idx)
	assert.Contains(t, StripANSI(out.String()), "Enter a number from the list.")
}

func TestSelect_EmptyOptions(t *testing.T) {
	term, _ := newTestTerminal("")
	_, err := term.Select("Choose", nil)
	assert.Error(t, err)
}

func TestPassword_FallsBackToPlainRead(t *testing.T) {
	term, _ := newTestTerminal("s3cret\n")
	got, err := term.Password("Password:")
	require.NoError(t, err)
	assert.Equal(t, "s3cret", got)
}

func TestHeader_ContainsTitle(t *testing.T) {
	term, out := newTestTerminal("")
	term.Header("ALBION")
	assert.Contains(t, StripANSI(out.String()), "ALBION")
}

func TestColorize_RoundTrip(t *testing.T) {
	colored := Colorize(BrightGreen, "victory")
	assert.NotEqual(t, "victory", colored)
	assert.Equal(t, "victory", StripANSI(colored))
}

func TestRenderTable_AlignsColoredCells(t *testing.T) {
	plain := RenderTable([]string{"Item", "Qty"}, [][]string{{"Fish", "3"}})
	colored := RenderTable([]string{"Item", "Qty"}, [][]string{{Colorize(Red, "Fish"), "3"}})
	assert.Equal(t, len(StripANSI(plain)), len(StripANSI(colored)))
	assert.Contains(t, plain, "| Fish |")
}

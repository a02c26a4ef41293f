package op

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromChar(t *testing.T) {
	tests := []struct {
		ch       rune
		expected Code
	}{
		{'>', MoveRight},
		{'<', MoveLeft},
		{'+', Increment},
		{'-', Decrement},
		{'.', Output},
		{',', Input},
		{'[', LoopStart},
		{']', LoopEnd},
		{'x', Comment},
		{' ', Comment},
		{'\n', Comment},
		{'8', Comment},
		{'日', Comment},
	}
	for _, tt := range tests {
		require.Equal(t, tt.expected, FromChar(tt.ch), "char %q", tt.ch)
	}
}

func TestSymbolRoundTrip(t *testing.T) {
	codes := []Code{MoveRight, MoveLeft, Increment, Decrement, Output, Input, LoopStart, LoopEnd}
	for _, c := range codes {
		sym := c.Symbol()
		require.NotZero(t, sym)
		require.Equal(t, c, FromChar(rune(sym)))
	}
	require.Zero(t, Comment.Symbol())
	require.Zero(t, Invalid.Symbol())
}

func TestString(t *testing.T) {
	require.Equal(t, "MOVE_RIGHT", MoveRight.String())
	require.Equal(t, "LOOP_END", LoopEnd.String())
	require.Equal(t, "COMMENT", Comment.String())
	require.Equal(t, "INVALID", Code(200).String())
}

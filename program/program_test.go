package program

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cloudcmds/bft/op"
)

func TestParseRetainsEveryCharacter(t *testing.T) {
	source := "+- loop: [>.<,]\n"
	prog := Parse(source)
	require.Len(t, prog.Instructions(), len([]rune(source)))
}

func TestParsePositions(t *testing.T) {
	prog := Parse("+x\n>[", WithFilename("test.bf"))
	ins := prog.Instructions()
	require.Len(t, ins, 5)

	tests := []struct {
		index    int
		expected op.Code
		ch       rune
		line     int
		column   int
	}{
		{0, op.Increment, '+', 1, 1},
		{1, op.Comment, 'x', 1, 2},
		{2, op.Comment, '\n', 1, 3},
		{3, op.MoveRight, '>', 2, 1},
		{4, op.LoopStart, '[', 2, 2},
	}
	for _, tt := range tests {
		in := ins[tt.index]
		require.Equal(t, tt.expected, in.Op, "index %d", tt.index)
		require.Equal(t, tt.ch, in.Char, "index %d", tt.index)
		require.Equal(t, tt.line, in.Position.LineNumber(), "index %d", tt.index)
		require.Equal(t, tt.column, in.Position.ColumnNumber(), "index %d", tt.index)
		require.Equal(t, "test.bf", in.Position.File)
	}
}

func TestParseEmpty(t *testing.T) {
	prog := Parse("")
	require.Empty(t, prog.Instructions())
	require.NoError(t, prog.Validate())
}

func TestFilename(t *testing.T) {
	require.Equal(t, "", Parse("+").Filename())
	require.Equal(t, "hello.bf", Parse("+", WithFilename("hello.bf")).Filename())
}

func TestStringDropsComments(t *testing.T) {
	prog := Parse("a+b[-]c\n.,")
	require.Equal(t, "+[-].,", prog.String())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		source  string
		wantErr string
	}{
		{"", ""},
		{"+>-<.", ""},
		{"[]", ""},
		{"[[]]", ""},
		{"[[][]]", ""},
		{"[]]", "unmatched closing bracket at 1,3"},
		{"]", "unmatched closing bracket at 1,1"},
		{"[[", "unmatched opening bracket at 1,2"},
		{"[", "unmatched opening bracket at 1,1"},
		{"+[-\n]]", "unmatched closing bracket at 2,2"},
		{"\n\n[", "unmatched opening bracket at 3,1"},
	}
	for _, tt := range tests {
		err := Parse(tt.source).Validate()
		if tt.wantErr == "" {
			require.NoError(t, err, "source %q", tt.source)
		} else {
			require.Error(t, err, "source %q", tt.source)
			require.Equal(t, tt.wantErr, err.Error(), "source %q", tt.source)
		}
	}
}

func TestValidateReportsInnermostUnmatched(t *testing.T) {
	// Both brackets are unmatched; the most recently opened one is reported
	err := Parse("[ [").Validate()
	require.Error(t, err)
	require.Equal(t, "unmatched opening bracket at 1,3", err.Error())
}

func TestValidateErrorDetails(t *testing.T) {
	err := Parse("]", WithFilename("bad.bf")).Validate()
	require.Error(t, err)

	var perr *Error
	require.ErrorAs(t, err, &perr)
	require.Equal(t, "unmatched closing bracket", perr.Message())
	require.Equal(t, "bad.bf", perr.File())
	require.Equal(t, 1, perr.Position().LineNumber())
	require.Equal(t, 1, perr.Position().ColumnNumber())
	require.Equal(t, "bad.bf: unmatched closing bracket at 1,1", err.Error())
}

func TestValidateIsCached(t *testing.T) {
	prog := Parse("[]]")
	first := prog.Validate()
	require.Error(t, first)
	require.Same(t, first.(*Error), prog.Validate().(*Error))

	ok := Parse("[]")
	require.NoError(t, ok.Validate())
	require.NoError(t, ok.Validate())
}

func TestJumpTargets(t *testing.T) {
	prog := Parse("[[]]")
	require.NoError(t, prog.Validate())
	require.Equal(t, 3, prog.JumpTarget(0))
	require.Equal(t, 2, prog.JumpTarget(1))
	require.Equal(t, 1, prog.JumpTarget(2))
	require.Equal(t, 0, prog.JumpTarget(3))
}

func TestJumpTargetsWithComments(t *testing.T) {
	prog := Parse("+[ comment ]x")
	require.NoError(t, prog.Validate())
	require.Equal(t, 11, prog.JumpTarget(1))
	require.Equal(t, 1, prog.JumpTarget(11))
}

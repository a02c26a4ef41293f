package bft

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cloudcmds/bft/errz"
	"github.com/cloudcmds/bft/vm"
)

const helloWorld = `++++++++[>++++[>++>+++>+++>+<<<<-]>+>+>->>+[<]<-]>>.>---.+++++++..+++.>>.<-.<.+++.------.--------.>>+.>++.`

func TestRun(t *testing.T) {
	var output bytes.Buffer
	err := Run(",.", WithInput(bytes.NewReader([]byte{65})), WithOutput(&output))
	require.NoError(t, err)
	require.Equal(t, []byte{65}, output.Bytes())
}

func TestRunHelloWorld(t *testing.T) {
	var output bytes.Buffer
	err := Run(helloWorld, WithInput(strings.NewReader("")), WithOutput(&output))
	require.NoError(t, err)
	require.Equal(t, "Hello World!\n", output.String())
}

func TestRunBracketError(t *testing.T) {
	err := Run("[", WithFilename("x.bf"))
	require.Error(t, err)
	require.Equal(t, "x.bf: unmatched opening bracket at 1,1", err.Error())
}

func TestRunTapeOptions(t *testing.T) {
	err := Run(">>>", WithTapeSize(3), WithOutput(&bytes.Buffer{}))
	require.Error(t, err)

	var serr *errz.StructuredError
	require.ErrorAs(t, err, &serr)
	require.Equal(t, errz.ErrTapeBounds, serr.Kind)

	err = Run(">>>", WithTapeSize(3), WithExtensibleTape(), WithOutput(&bytes.Buffer{}))
	require.NoError(t, err)
}

func TestParse(t *testing.T) {
	prog := Parse("+[-]", WithFilename("p.bf"))
	require.Equal(t, "p.bf", prog.Filename())
	require.Len(t, prog.Instructions(), 4)
	require.NoError(t, prog.Validate())
}

type recordingObserver struct {
	events []vm.StepEvent
}

func (r *recordingObserver) OnStep(event vm.StepEvent) {
	r.events = append(r.events, event)
}

func TestRunObserver(t *testing.T) {
	obs := &recordingObserver{}
	var output bytes.Buffer
	err := Run("+.", WithInput(strings.NewReader("")), WithOutput(&output), WithObserver(obs))
	require.NoError(t, err)
	require.Len(t, obs.events, 2)
	require.Equal(t, byte(1), obs.events[1].Cell)
}

package main

import (
	"io"

	"github.com/gofrs/uuid"
	"github.com/rs/zerolog"

	"github.com/cloudcmds/bft/op"
	"github.com/cloudcmds/bft/vm"
)

// traceObserver logs every executed instruction. Each run carries its own
// id so traces from separate invocations can be told apart.
type traceObserver struct {
	log zerolog.Logger
}

func newTraceObserver(w io.Writer) *traceObserver {
	ctx := zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).With().Timestamp()
	if id, err := uuid.NewV4(); err == nil {
		ctx = ctx.Str("run_id", id.String())
	}
	return &traceObserver{log: ctx.Logger()}
}

func (t *traceObserver) OnStep(event vm.StepEvent) {
	if event.Instruction.Op == op.Comment {
		return
	}
	t.log.Debug().
		Int("ip", event.IP).
		Str("op", event.Instruction.Op.String()).
		Int("line", event.Instruction.Position.LineNumber()).
		Int("column", event.Instruction.Position.ColumnNumber()).
		Int("head", event.Head).
		Uint8("cell", event.Cell).
		Msg("step")
}

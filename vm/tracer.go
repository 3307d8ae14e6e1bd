package vm

import "github.com/ethereum/go-ethereum/log"

// Tracer receives a callback for every opcode the dispatcher fetches,
// before its handler runs (unrecognized opcodes included). It exists for
// debugging only; spec.md leaves its log format unspecified.
type Tracer interface {
	OnStep(pc uint64, op OpCode, stackLen int, memLen int, depth int)
}

// Config carries the interpreter's ambient, non-semantic settings.
type Config struct {
	// Tracer, when non-nil, is invoked before every opcode is executed.
	Tracer Tracer
}

// logTracer is the default Tracer, emitting one structured log line per
// opcode through go-ethereum's log package — the same logging library the
// teacher's own interpreter imports directly.
type logTracer struct{}

// NewLogTracer returns a Tracer that writes one structured trace line per
// dispatched opcode via log.Trace.
func NewLogTracer() Tracer {
	return logTracer{}
}

func (logTracer) OnStep(pc uint64, op OpCode, stackLen, memLen, depth int) {
	log.Trace("step", "pc", pc, "op", op.String(), "stackLen", stackLen, "memLen", memLen, "depth", depth)
}

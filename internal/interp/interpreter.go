package interp

import (
	"io"

	"github.com/lumascript/luma/internal/ast"
)

// Interpreter owns the single environment stack and heap for one program
// run. There is no global mutable state outside this struct; print writes
// to Out rather than capturing stdout directly, so tests can inject a
// buffer.
type Interpreter struct {
	Env  *EnvStack
	Heap *Heap
	Out  io.Writer
}

// New creates an Interpreter whose globals frame is preloaded with the
// print builtin.
func New(out io.Writer) *Interpreter {
	in := &Interpreter{
		Env:  NewEnvStack(),
		Heap: NewHeap(),
		Out:  out,
	}
	in.Env.DefineLocal("print", BuiltinValue{Name: "print"})
	return in
}

// Run executes a parsed top-level Block. A Return from the outermost
// script is normal completion; an escaping Break is reported as the "not
// inside a loop" error.
func (in *Interpreter) Run(block *ast.Block) *ErrorSignal {
	result := in.ExecBlock(block)
	switch v := result.(type) {
	case *ErrorSignal:
		return v
	case *BreakSignal:
		return NewError(v.Line, "break at line %d not inside a loop", v.Line)
	default:
		return nil
	}
}

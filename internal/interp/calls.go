package interp

import (
	"fmt"
	"strings"

	"github.com/lumascript/luma/internal/ast"
)

// evalExpressionList evaluates exprs left-to-right and applies ExpandLast:
// every element but the last is collapsed, and the last is expanded in
// place if it evaluated to a ValueList. This is the single multi-value
// rule shared by call arguments, return values, and multi-assign
// right-hand sides.
func (in *Interpreter) evalExpressionList(exprs []ast.Expression) ([]Value, Value) {
	raw := make([]Value, 0, len(exprs))
	for _, e := range exprs {
		v := in.Eval(e)
		if isSignal(v) {
			return nil, v
		}
		raw = append(raw, v)
	}
	return ExpandLast(raw, 0), nil
}

// evalCall evaluates a call expression: the callee must collapse to a
// Handle naming a Closure or to the print builtin sentinel.
func (in *Interpreter) evalCall(x *ast.CallExpression) Value {
	callee := in.Eval(x.Callee)
	if isSignal(callee) {
		return callee
	}
	callee = Collapse(callee)

	args, sig := in.evalExpressionList(x.Arguments)
	if sig != nil {
		return sig
	}

	switch c := callee.(type) {
	case BuiltinValue:
		return in.callBuiltin(x, c, args)
	case HandleValue:
		if c.Kind == "function" {
			closure, ok := in.Heap.Closure(c.Handle)
			if ok {
				return in.callClosure(x.Line(), closure, args)
			}
		}
	}
	return NewError(x.Line(), "attempt to call a %s value", callee.Type())
}

// callClosure implements the call protocol: append the closure's captured
// stack, push a fresh parameter frame, execute the body, and unwind to the
// pre-call depth on every exit path.
func (in *Interpreter) callClosure(line int, c *Closure, args []Value) Value {
	mark := in.Env.Depth()
	in.Env.AppendSnapshot(c.Captured)

	if err := in.Env.Push(); err != nil {
		in.Env.TruncateTo(mark)
		return NewError(line, "%s", err.Error())
	}

	for i, p := range c.Parameters {
		var v Value = Nil
		if i < len(args) {
			v = args[i]
		}
		in.Env.DefineLocal(p.Value, v)
	}

	result := in.ExecBlock(c.Body)

	in.Env.Pop()
	in.Env.TruncateTo(mark)

	if r, ok := isReturn(result); ok {
		return ValueList{Values: r.Values}
	}
	if b, ok := isBreak(result); ok {
		return NewError(b.Line, "break at line %d not inside a loop", b.Line)
	}
	if e, ok := isError(result); ok {
		return e
	}
	return Nil
}

// callBuiltin implements the one host-provided function, print: convert
// each argument to its display form and write them tab-separated with a
// trailing newline.
func (in *Interpreter) callBuiltin(x *ast.CallExpression, b BuiltinValue, args []Value) Value {
	if b.Name != "print" {
		return NewError(x.Line(), "attempt to call a %s value", b.Type())
	}
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = Display(a)
	}
	fmt.Fprintln(in.Out, strings.Join(parts, "\t"))
	return Nil
}

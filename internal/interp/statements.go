package interp

import (
	"github.com/lumascript/luma/internal/ast"
)

// ExecBlock executes a Block as a sequence of statements in the current
// top frame, stopping and propagating the first control-flow signal any
// statement produces.
func (in *Interpreter) ExecBlock(block *ast.Block) Value {
	for _, stmt := range block.Statements {
		result := in.Exec(stmt)
		if isSignal(result) {
			return result
		}
	}
	return Nil
}

// Exec executes a single statement for effect.
func (in *Interpreter) Exec(stmt ast.Statement) Value {
	switch x := stmt.(type) {
	case *ast.LocalAssignStatement:
		return in.execLocalAssign(x)
	case *ast.AssignStatement:
		return in.execAssign(x)
	case *ast.DoStatement:
		return in.execDo(x)
	case *ast.WhileStatement:
		return in.execWhile(x)
	case *ast.IfStatement:
		return in.execIf(x)
	case *ast.NumericForStatement:
		return in.execNumericFor(x)
	case *ast.GenericForStatement:
		return in.execGenericFor(x)
	case *ast.FunctionDeclStatement:
		return in.execFunctionDecl(x)
	case *ast.ReturnStatement:
		return in.execReturn(x)
	case *ast.BreakStatement:
		return &BreakSignal{Line: x.Line()}
	case *ast.ExpressionStatement:
		v := in.Eval(x.Expr)
		if isSignal(v) {
			return v
		}
		return Nil
	default:
		return NewError(stmt.Line(), "unsupported statement type %T", stmt)
	}
}

func (in *Interpreter) execLocalAssign(x *ast.LocalAssignStatement) Value {
	values, sig := in.evalExpressionList(x.Values)
	if sig != nil {
		return sig
	}
	for i, name := range x.Names {
		var v Value = Nil
		if i < len(values) {
			v = values[i]
		}
		in.Env.DefineLocal(name.Value, v)
	}
	return Nil
}

// assignTarget remembers where an AssignStatement target should store,
// resolved before any store happens so the right-hand side always sees
// pre-assignment state.
type assignTarget struct {
	name  string // set when the target is a plain Name
	table *Table // set when the target is a TableIndex
	key   Value
}

func (in *Interpreter) execAssign(x *ast.AssignStatement) Value {
	values, sig := in.evalExpressionList(x.Values)
	if sig != nil {
		return sig
	}

	targets := make([]assignTarget, len(x.Targets))
	for i, t := range x.Targets {
		switch target := t.(type) {
		case *ast.Name:
			targets[i] = assignTarget{name: target.Value}
		case *ast.TableIndex:
			prefix := in.Eval(target.Prefix)
			if isSignal(prefix) {
				return prefix
			}
			prefix = Collapse(prefix)
			h, ok := prefix.(HandleValue)
			if !ok || h.Kind != "table" {
				return NewError(target.Line(), "attempt to assign a %s value", prefix.Type())
			}
			table, ok := in.Heap.Table(h.Handle)
			if !ok {
				return NewError(target.Line(), "attempt to assign a %s value", prefix.Type())
			}
			key := in.Eval(target.Key)
			if isSignal(key) {
				return key
			}
			targets[i] = assignTarget{table: table, key: Collapse(key)}
		default:
			return NewError(t.Line(), "invalid assignment target %T", t)
		}
	}

	for i, target := range targets {
		var v Value = Nil
		if i < len(values) {
			v = values[i]
		}
		if target.table != nil {
			target.table.Insert(target.key, v)
		} else {
			in.Env.Assign(target.name, v)
		}
	}
	return Nil
}

func (in *Interpreter) execDo(x *ast.DoStatement) Value {
	if err := in.Env.Push(); err != nil {
		return NewError(x.Line(), "%s", err.Error())
	}
	result := in.ExecBlock(x.Body)
	in.Env.Pop()
	return result
}

func (in *Interpreter) execWhile(x *ast.WhileStatement) Value {
	for {
		cond := in.Eval(x.Condition)
		if isSignal(cond) {
			return cond
		}
		if !Truthy(Collapse(cond)) {
			return Nil
		}

		if err := in.Env.Push(); err != nil {
			return NewError(x.Line(), "%s", err.Error())
		}
		result := in.ExecBlock(x.Body)
		in.Env.Pop()

		if _, ok := isBreak(result); ok {
			return Nil
		}
		if isSignal(result) {
			return result
		}
	}
}

func (in *Interpreter) execIf(x *ast.IfStatement) Value {
	cond := in.Eval(x.Condition)
	if isSignal(cond) {
		return cond
	}
	if Truthy(Collapse(cond)) {
		return in.execBranch(x.Then, x.Line())
	}

	for _, ei := range x.ElseIfs {
		c := in.Eval(ei.Condition)
		if isSignal(c) {
			return c
		}
		if Truthy(Collapse(c)) {
			return in.execBranch(ei.Body, x.Line())
		}
	}

	if x.Else != nil {
		return in.execBranch(x.Else, x.Line())
	}
	return Nil
}

func (in *Interpreter) execBranch(body *ast.Block, line int) Value {
	if err := in.Env.Push(); err != nil {
		return NewError(line, "%s", err.Error())
	}
	result := in.ExecBlock(body)
	in.Env.Pop()
	return result
}

// execNumericFor desugars `for i = start, end, step do body end` into a
// frame binding i to start, followed by a while-loop on `i <= end` with
// body `do body end; i = i + step`. step is evaluated once, at desugar
// time; the condition is always `<=` regardless of step's sign, so a
// negative step with start > end runs zero iterations.
func (in *Interpreter) execNumericFor(x *ast.NumericForStatement) Value {
	start := in.Eval(x.Start)
	if isSignal(start) {
		return start
	}
	start = Collapse(start)

	stop := in.Eval(x.Stop)
	if isSignal(stop) {
		return stop
	}
	stop = Collapse(stop)

	var step Value = NumberValue{Value: 1}
	if x.Step != nil {
		step = in.Eval(x.Step)
		if isSignal(step) {
			return step
		}
		step = Collapse(step)
	}

	if err := in.Env.Push(); err != nil {
		return NewError(x.Line(), "%s", err.Error())
	}
	defer in.Env.Pop()

	in.Env.DefineLocal(x.Var.Value, start)

	for {
		cur := in.Env.Lookup(x.Var.Value)
		cond := evalCompare(x.Line(), "<=", cur, stop)
		if e, ok := isError(cond); ok {
			return e
		}
		if !Truthy(cond) {
			return Nil
		}

		if err := in.Env.Push(); err != nil {
			return NewError(x.Line(), "%s", err.Error())
		}
		result := in.ExecBlock(x.Body)
		in.Env.Pop()

		if _, ok := isBreak(result); ok {
			return Nil
		}
		if isSignal(result) {
			return result
		}

		next := evalArithmetic(x.Line(), "+", in.Env.Lookup(x.Var.Value), step)
		if e, ok := isError(next); ok {
			return e
		}
		in.Env.Assign(x.Var.Value, next)
	}
}

// execGenericFor iterates a table's entries in insertion order, binding
// the first two loop variables to key and value and the rest to Nil.
func (in *Interpreter) execGenericFor(x *ast.GenericForStatement) Value {
	source := in.Eval(x.Source)
	if isSignal(source) {
		return source
	}
	source = Collapse(source)

	h, ok := source.(HandleValue)
	if !ok || h.Kind != "table" {
		return NewError(x.Line(), "bad argument to 'pairs' (table expected, got %s)", source.Type())
	}
	table, ok := in.Heap.Table(h.Handle)
	if !ok {
		return NewError(x.Line(), "bad argument to 'pairs' (table expected, got %s)", source.Type())
	}

	for _, entry := range table.Entries() {
		if err := in.Env.Push(); err != nil {
			return NewError(x.Line(), "%s", err.Error())
		}
		for i, name := range x.Names {
			switch i {
			case 0:
				in.Env.DefineLocal(name.Value, entry.Key)
			case 1:
				in.Env.DefineLocal(name.Value, entry.Value)
			default:
				in.Env.DefineLocal(name.Value, Nil)
			}
		}
		result := in.ExecBlock(x.Body)
		in.Env.Pop()

		if _, ok := isBreak(result); ok {
			return Nil
		}
		if isSignal(result) {
			return result
		}
	}
	return Nil
}

func (in *Interpreter) execFunctionDecl(x *ast.FunctionDeclStatement) Value {
	h := in.Heap.Alloc(&Closure{
		Parameters: x.Literal.Parameters,
		Body:       x.Literal.Body,
		Captured:   in.Env.Snapshot(),
	})
	handle := HandleValue{Handle: h, Kind: "function"}
	if x.Local {
		in.Env.DefineLocal(x.Name.Value, handle)
	} else {
		in.Env.Assign(x.Name.Value, handle)
	}
	return Nil
}

func (in *Interpreter) execReturn(x *ast.ReturnStatement) Value {
	values, sig := in.evalExpressionList(x.Values)
	if sig != nil {
		return sig
	}
	return &ReturnSignal{Values: values}
}

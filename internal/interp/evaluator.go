package interp

import (
	"math"

	"github.com/lumascript/luma/internal/ast"
)

// Eval evaluates an expression node to a Value (or a control-flow signal,
// checked by the caller with isSignal). It never mutates the AST and, for
// a frozen environment stack, is pure: evaluating the same node twice
// yields equal values.
func (in *Interpreter) Eval(expr ast.Expression) Value {
	switch x := expr.(type) {
	case *ast.NilLiteral:
		return Nil
	case *ast.BooleanLiteral:
		return Bool(x.Value)
	case *ast.NumberLiteral:
		return NumberValue{Value: x.Value}
	case *ast.StringLiteral:
		return StringValue{Value: x.Value}
	case *ast.GroupedExpression:
		v := in.Eval(x.Inner)
		if isSignal(v) {
			return v
		}
		return Collapse(v)
	case *ast.Name:
		return in.Env.Lookup(x.Value)
	case *ast.TableIndex:
		return in.evalTableIndex(x)
	case *ast.FunctionLiteral:
		h := in.Heap.Alloc(&Closure{
			Parameters: x.Parameters,
			Body:       x.Body,
			Captured:   in.Env.Snapshot(),
		})
		return HandleValue{Handle: h, Kind: "function"}
	case *ast.CallExpression:
		return in.evalCall(x)
	case *ast.UnaryExpression:
		return in.evalUnary(x)
	case *ast.BinaryExpression:
		return in.evalBinary(x)
	case *ast.TableConstructor:
		return in.evalTableConstructor(x)
	default:
		return NewError(expr.Line(), "unsupported expression type %T", expr)
	}
}

func (in *Interpreter) evalTableIndex(x *ast.TableIndex) Value {
	prefix := in.Eval(x.Prefix)
	if isSignal(prefix) {
		return prefix
	}
	prefix = Collapse(prefix)

	h, ok := prefix.(HandleValue)
	if !ok || h.Kind != "table" {
		return NewError(x.Line(), "attempt to index a %s value", prefix.Type())
	}
	table, ok := in.Heap.Table(h.Handle)
	if !ok {
		return NewError(x.Line(), "attempt to index a %s value", prefix.Type())
	}

	key := in.Eval(x.Key)
	if isSignal(key) {
		return key
	}
	return table.Get(Collapse(key))
}

func (in *Interpreter) evalUnary(x *ast.UnaryExpression) Value {
	right := in.Eval(x.Right)
	if isSignal(right) {
		return right
	}
	right = Collapse(right)

	switch x.Operator {
	case "not":
		return Bool(!Truthy(right))
	case "-":
		n, ok := ToNumber(right)
		if !ok {
			return NewError(x.Line(), "attempt to perform arithmetic on a %s value", right.Type())
		}
		return NumberValue{Value: -n}
	case "#":
		switch v := right.(type) {
		case StringValue:
			return NumberValue{Value: float64(len(v.Value))}
		case HandleValue:
			if v.Kind == "table" {
				if t, ok := in.Heap.Table(v.Handle); ok {
					return NumberValue{Value: float64(t.Len())}
				}
			}
			return NewError(x.Line(), "attempt to get length of a %s value", right.Type())
		default:
			return NewError(x.Line(), "attempt to get length of a %s value", right.Type())
		}
	default:
		return NewError(x.Line(), "unsupported unary operator %q", x.Operator)
	}
}

var arithmeticVerb = map[string]string{
	"+": "add",
	"-": "subtract",
	"*": "mul",
	"/": "divide",
}

func (in *Interpreter) evalBinary(x *ast.BinaryExpression) Value {
	switch x.Operator {
	case "and":
		left := in.Eval(x.Left)
		if isSignal(left) {
			return left
		}
		if !Truthy(Collapse(left)) {
			return False
		}
		right := in.Eval(x.Right)
		if isSignal(right) {
			return right
		}
		return Bool(Truthy(Collapse(right)))
	case "or":
		left := in.Eval(x.Left)
		if isSignal(left) {
			return left
		}
		if Truthy(Collapse(left)) {
			return True
		}
		right := in.Eval(x.Right)
		if isSignal(right) {
			return right
		}
		return Bool(Truthy(Collapse(right)))
	}

	left := in.Eval(x.Left)
	if isSignal(left) {
		return left
	}
	left = Collapse(left)

	right := in.Eval(x.Right)
	if isSignal(right) {
		return right
	}
	right = Collapse(right)

	switch x.Operator {
	case "+", "-", "*", "/", "//", "%", "^":
		return evalArithmetic(x.Line(), x.Operator, left, right)
	case "..":
		return evalConcat(x.Line(), left, right)
	case "<", "<=", ">", ">=":
		return evalCompare(x.Line(), x.Operator, left, right)
	case "==":
		return Bool(valuesEqual(left, right))
	case "~=":
		return Bool(!valuesEqual(left, right))
	default:
		return NewError(x.Line(), "unsupported binary operator %q", x.Operator)
	}
}

// evalArithmetic performs the binary arithmetic operators. It takes a bare
// line/operator pair rather than an AST node so that the numeric-for
// desugaring can reuse it for its synthesized `i+step` step without
// fabricating AST nodes.
func evalArithmetic(line int, op string, left, right Value) Value {
	a, aok := ToNumber(left)
	b, bok := ToNumber(right)
	if !aok || !bok {
		if verb, known := arithmeticVerb[op]; known {
			return NewError(line, "attempt to %s %s with %s", verb, left.Type(), right.Type())
		}
		bad := left
		if aok {
			bad = right
		}
		return NewError(line, "attempt to perform arithmetic on a %s value", bad.Type())
	}

	switch op {
	case "+":
		return NumberValue{Value: a + b}
	case "-":
		return NumberValue{Value: a - b}
	case "*":
		return NumberValue{Value: a * b}
	case "/":
		return NumberValue{Value: a / b}
	case "//":
		return NumberValue{Value: math.Floor(a / b)}
	case "%":
		return NumberValue{Value: math.Mod(a, b)}
	case "^":
		return NumberValue{Value: math.Pow(a, b)}
	default:
		return NewError(line, "unsupported arithmetic operator %q", op)
	}
}

func evalConcat(line int, left, right Value) Value {
	ls, lok := concatOperand(left)
	rs, rok := concatOperand(right)
	if !lok || !rok {
		return NewError(line, "attempt to concat %s with %s", left.Type(), right.Type())
	}
	return StringValue{Value: ls + rs}
}

func concatOperand(v Value) (string, bool) {
	switch x := v.(type) {
	case StringValue:
		return x.Value, true
	case NumberValue:
		return formatNumber(x.Value), true
	default:
		return "", false
	}
}

// evalCompare takes a bare line/operator pair (see evalArithmetic) so the
// numeric-for desugaring can reuse the `i <= end` comparison directly.
func evalCompare(line int, op string, left, right Value) Value {
	switch op {
	case "<":
		return compareLess(line, left, right)
	case "<=":
		return compareLessEqual(line, left, right)
	case ">":
		return compareLess(line, right, left)
	case ">=":
		return compareLessEqual(line, right, left)
	default:
		return NewError(line, "unsupported comparison operator %q", op)
	}
}

func compareLess(line int, a, b Value) Value {
	switch av := a.(type) {
	case NumberValue:
		bv, ok := b.(NumberValue)
		if !ok {
			return NewError(line, "attempt to compare %s with %s", a.Type(), b.Type())
		}
		return Bool(av.Value < bv.Value)
	case StringValue:
		bv, ok := b.(StringValue)
		if !ok {
			return NewError(line, "attempt to compare %s with %s", a.Type(), b.Type())
		}
		return Bool(av.Value < bv.Value)
	default:
		return NewError(line, "attempt to compare %s with %s", a.Type(), b.Type())
	}
}

func compareLessEqual(line int, a, b Value) Value {
	switch av := a.(type) {
	case NumberValue:
		bv, ok := b.(NumberValue)
		if !ok {
			return NewError(line, "attempt to compare %s with %s", a.Type(), b.Type())
		}
		return Bool(av.Value <= bv.Value)
	case StringValue:
		bv, ok := b.(StringValue)
		if !ok {
			return NewError(line, "attempt to compare %s with %s", a.Type(), b.Type())
		}
		return Bool(av.Value <= bv.Value)
	default:
		return NewError(line, "attempt to compare %s with %s", a.Type(), b.Type())
	}
}

// valuesEqual implements equality: different types are never equal; no
// coercion; handles compare by identity.
func valuesEqual(a, b Value) bool {
	if a.Type() != b.Type() {
		return false
	}
	switch av := a.(type) {
	case NilValue:
		return true
	case BooleanValue:
		return av.Value == b.(BooleanValue).Value
	case NumberValue:
		return av.Value == b.(NumberValue).Value
	case StringValue:
		return av.Value == b.(StringValue).Value
	case HandleValue:
		bv, ok := b.(HandleValue)
		return ok && av.Handle == bv.Handle
	case BuiltinValue:
		bv, ok := b.(BuiltinValue)
		return ok && av.Name == bv.Name
	default:
		return false
	}
}

func (in *Interpreter) evalTableConstructor(tc *ast.TableConstructor) Value {
	t := NewTable()
	for i, f := range tc.Fields {
		isLast := i == len(tc.Fields)-1

		if f.Key != nil {
			key := in.Eval(f.Key)
			if isSignal(key) {
				return key
			}
			val := in.Eval(f.Value)
			if isSignal(val) {
				return val
			}
			t.Insert(Collapse(key), Collapse(val))
			continue
		}

		val := in.Eval(f.Value)
		if isSignal(val) {
			return val
		}
		if isLast {
			if list, ok := val.(ValueList); ok {
				for _, v := range list.Values {
					t.AppendPositional(v)
				}
				continue
			}
		}
		t.AppendPositional(Collapse(val))
	}

	h := in.Heap.Alloc(t)
	return HandleValue{Handle: h, Kind: "table"}
}

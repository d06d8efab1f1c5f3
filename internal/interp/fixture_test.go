package interp

import (
	"bytes"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/lumascript/luma/internal/lexer"
	"github.com/lumascript/luma/internal/parser"
)

// run lexes, parses, and executes src, returning stdout and any error.
func run(t *testing.T, src string) (string, *ErrorSignal) {
	t.Helper()
	l := lexer.New(src)
	p := parser.New(l)
	block := p.ParseProgram()
	if errs := p.Errors(); len(errs) > 0 {
		t.Fatalf("parse errors for %q: %v", src, errs)
	}

	var buf bytes.Buffer
	in := New(&buf)
	err := in.Run(block)
	return buf.String(), err
}

// TestConcreteScenarios covers eight end-to-end program -> stdout cases,
// each asserting the precise tab-separated, newline-terminated output.
func TestConcreteScenarios(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "operator precedence",
			src:  `print(1 + 2 * 3)`,
			want: "7\n",
		},
		{
			name: "table constructor and length",
			src:  `local t = {10, 20, 30}; print(t[1], t[2], t[3], #t)`,
			want: "10\t20\t30\t3\n",
		},
		{
			name: "function call",
			src:  `local function add(a,b) return a+b end; print(add(2,3))`,
			want: "5\n",
		},
		{
			name: "multi-return into multi-local-assign",
			src:  `local function f() return 1,2,3 end; local a,b,c = f(); print(a,b,c)`,
			want: "1\t2\t3\n",
		},
		{
			name: "numeric for accumulation",
			src:  `local s = 0; for i = 1, 5 do s = s + i end; print(s)`,
			want: "15\n",
		},
		{
			name: "closure capture of a mutable upvalue",
			src: `local function counter() local n = 0; return function() n = n + 1; return n end end
local c = counter()
print(c(), c(), c())`,
			want: "1\t2\t3\n",
		},
		{
			name: "table field and index assignment",
			src:  `local t = {}; t.x = 'hi'; t[2] = 7; print(t.x, t[2])`,
			want: "hi\t7\n",
		},
		{
			name: "numeric zero is truthy",
			src:  `if 0 then print('t') else print('f') end`,
			want: "t\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, tt.src)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if out != tt.want {
				t.Errorf("stdout = %q, want %q", out, tt.want)
			}
		})
	}
}

// TestErrorTaxonomy snapshot-tests the exact diagnostic strings produced
// for the documented runtime error cases.
func TestErrorTaxonomy(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"add table and number", `local t = {}; print(t + 1)`},
		{"compare number and string", `print(1 < "a")`},
		{"call a number", `local x = 5; x()`},
		{"index a number", `local x = 5; print(x.y)`},
		{"concat table", `local t = {}; print(t .. "x")`},
		{"length of a number", `print(#5)`},
		{"generic for over non-table", `for k, v in 5 do print(k) end`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.src)
			if err == nil {
				t.Fatalf("expected a runtime error, got none")
			}
			snaps.MatchSnapshot(t, err.Message)
		})
	}
}

func TestBreakOutsideLoopIsError(t *testing.T) {
	_, err := run(t, `local function f() break end; f()`)
	if err == nil {
		t.Fatalf("expected break-outside-loop to be an error")
	}
}

func TestBreakExitsLoopNormally(t *testing.T) {
	out, err := run(t, `for i = 1, 10 do if i == 3 then break end; print(i) end`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "1\n2\n" {
		t.Errorf("stdout = %q, want \"1\\n2\\n\"", out)
	}
}

func TestGenericForIteratesInsertionOrder(t *testing.T) {
	out, err := run(t, `local t = {}; t.a = 1; t.b = 2; for k, v in t do print(k, v) end`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "a\t1\nb\t2\n" {
		t.Errorf("stdout = %q, want \"a\\t1\\nb\\t2\\n\"", out)
	}
}

func TestNumericForNegativeStepTerminatesImmediately(t *testing.T) {
	out, err := run(t, `for i = 5, 1, -1 do print(i) end`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "" {
		t.Errorf("stdout = %q, want empty (documented <= -regardless-of-sign behavior)", out)
	}
}

func TestLogicalOperatorsReturnBoolean(t *testing.T) {
	out, err := run(t, `print(1 and 2); print(nil and 2); print(false or 3)`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "true\nfalse\ntrue\n" {
		t.Errorf("stdout = %q, want booleans per the resolved open question", out)
	}
}

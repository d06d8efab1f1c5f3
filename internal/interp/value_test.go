package interp

import "testing"

func TestTruthy(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want bool
	}{
		{"nil", Nil, false},
		{"false", False, false},
		{"true", True, true},
		{"zero", NumberValue{Value: 0}, true},
		{"empty string", StringValue{Value: ""}, true},
		{"handle", HandleValue{Handle: 0, Kind: "table"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truthy(tt.v); got != tt.want {
				t.Errorf("Truthy(%v) = %v, want %v", tt.v, got, tt.want)
			}
		})
	}
}

func TestCollapse(t *testing.T) {
	if got := Collapse(ValueList{Values: []Value{NumberValue{Value: 1}, NumberValue{Value: 2}}}); got != (NumberValue{Value: 1}) {
		t.Errorf("Collapse of non-empty list = %v, want first element", got)
	}
	if got := Collapse(ValueList{}); got != Nil {
		t.Errorf("Collapse of empty list = %v, want Nil", got)
	}
	if got := Collapse(NumberValue{Value: 5}); got != (NumberValue{Value: 5}) {
		t.Errorf("Collapse of plain value changed it: %v", got)
	}
}

func TestExpandLast(t *testing.T) {
	values := []Value{
		NumberValue{Value: 1},
		ValueList{Values: []Value{NumberValue{Value: 2}, NumberValue{Value: 3}}},
	}
	got := ExpandLast(values, 0)
	want := []Value{NumberValue{Value: 1}, NumberValue{Value: 2}, NumberValue{Value: 3}}
	if len(got) != len(want) {
		t.Fatalf("got %d values, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("value %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestNumberDisplayRoundTrip(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{7, "7"},
		{2.5, "2.5"},
		{-3, "-3"},
		{0, "0"},
	}
	for _, tt := range tests {
		if got := (NumberValue{Value: tt.in}).String(); got != tt.want {
			t.Errorf("NumberValue{%v}.String() = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestToNumberStringCoercion(t *testing.T) {
	tests := []struct {
		in string
		ok bool
	}{
		{"42", true},
		{"3.14", true},
		{"-5", false},
		{"inf", false},
		{"nan", false},
		{"1e10", false},
		{"5.", false},
		{".5", false},
		{"abc", false},
		{"", false},
	}
	for _, tt := range tests {
		_, ok := ToNumber(StringValue{Value: tt.in})
		if ok != tt.ok {
			t.Errorf("ToNumber(%q) ok = %v, want %v", tt.in, ok, tt.ok)
		}
	}
}

func TestTypeNameStrings(t *testing.T) {
	tests := []struct {
		v    Value
		want string
	}{
		{Nil, "nil"},
		{True, "boolean"},
		{NumberValue{}, "number"},
		{StringValue{}, "string"},
		{HandleValue{Kind: "table"}, "table"},
		{HandleValue{Kind: "function"}, "function"},
	}
	for _, tt := range tests {
		if got := tt.v.Type(); got != tt.want {
			t.Errorf("%#v.Type() = %q, want %q", tt.v, got, tt.want)
		}
	}
}

package interp

import "testing"

func TestTableInsertGetDelete(t *testing.T) {
	tbl := NewTable()
	tbl.Insert(StringValue{Value: "x"}, NumberValue{Value: 1})
	if got := tbl.Get(StringValue{Value: "x"}); got != (NumberValue{Value: 1}) {
		t.Fatalf("Get after Insert = %v, want 1", got)
	}
	if tbl.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", tbl.Len())
	}

	tbl.Insert(StringValue{Value: "x"}, Nil)
	if got := tbl.Get(StringValue{Value: "x"}); got != Nil {
		t.Fatalf("Get after nil-insert = %v, want Nil", got)
	}
	if tbl.Len() != 0 {
		t.Fatalf("Len() after delete = %d, want 0", tbl.Len())
	}
}

func TestTableAbsentKeyIsNil(t *testing.T) {
	tbl := NewTable()
	if got := tbl.Get(StringValue{Value: "missing"}); got != Nil {
		t.Fatalf("Get(missing) = %v, want Nil", got)
	}
}

func TestTableIntegralKeyIdentity(t *testing.T) {
	tbl := NewTable()
	tbl.Insert(NumberValue{Value: 2}, StringValue{Value: "two"})
	if got := tbl.Get(NumberValue{Value: 2.0}); got != (StringValue{Value: "two"}) {
		t.Fatalf("integral-double key mismatch: got %v", got)
	}
}

func TestTablePositionalAppendOrder(t *testing.T) {
	tbl := NewTable()
	tbl.AppendPositional(StringValue{Value: "a"})
	tbl.AppendPositional(StringValue{Value: "b"})
	tbl.AppendPositional(StringValue{Value: "c"})

	if got := tbl.Get(NumberValue{Value: 1}); got != (StringValue{Value: "a"}) {
		t.Errorf("index 1 = %v, want a", got)
	}
	if got := tbl.Get(NumberValue{Value: 3}); got != (StringValue{Value: "c"}) {
		t.Errorf("index 3 = %v, want c", got)
	}
	if tbl.Len() != 3 {
		t.Errorf("Len() = %d, want 3", tbl.Len())
	}
}

func TestTableEntriesInsertionOrder(t *testing.T) {
	tbl := NewTable()
	tbl.Insert(StringValue{Value: "b"}, NumberValue{Value: 2})
	tbl.Insert(StringValue{Value: "a"}, NumberValue{Value: 1})
	tbl.Insert(StringValue{Value: "c"}, NumberValue{Value: 3})

	entries := tbl.Entries()
	wantKeys := []string{"b", "a", "c"}
	if len(entries) != len(wantKeys) {
		t.Fatalf("got %d entries, want %d", len(entries), len(wantKeys))
	}
	for i, want := range wantKeys {
		if got := entries[i].Key.(StringValue).Value; got != want {
			t.Errorf("entry %d key = %q, want %q", i, got, want)
		}
	}
}

func TestTableReassignKeepsOriginalOrderPosition(t *testing.T) {
	tbl := NewTable()
	tbl.Insert(StringValue{Value: "a"}, NumberValue{Value: 1})
	tbl.Insert(StringValue{Value: "b"}, NumberValue{Value: 2})
	tbl.Insert(StringValue{Value: "a"}, NumberValue{Value: 99})

	entries := tbl.Entries()
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2 (reassignment must not duplicate)", len(entries))
	}
	if entries[0].Value != (NumberValue{Value: 99}) {
		t.Errorf("reassigned value = %v, want 99", entries[0].Value)
	}
}

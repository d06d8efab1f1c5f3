package interp

import "fmt"

// tableEntry pairs a key's original Value (for iteration results) with its
// stored Value.
type tableEntry struct {
	key   Value
	value Value
}

// Table is an ordered mapping from Value to Value: a fast map keyed by a
// canonical encoding of the key, plus a separate slice tracking
// first-assignment insertion order for traversal.
type Table struct {
	entries map[string]tableEntry
	order   []string
	next    float64 // next positional index for table-constructor appends
}

// NewTable creates an empty Table, with the next positional index starting
// at 1.
func NewTable() *Table {
	return &Table{entries: make(map[string]tableEntry), next: 1}
}

func (*Table) heapObject() {}

// encodeKey produces a canonical string encoding of a Value usable as a
// table key. Numerically integral doubles collapse to the same key
// regardless of formatting, so 2 and 2.0 name the same entry.
func encodeKey(v Value) (string, bool) {
	switch x := v.(type) {
	case NilValue:
		return "", false // nil keys are never stored
	case BooleanValue:
		return fmt.Sprintf("b:%v", x.Value), true
	case NumberValue:
		return "n:" + formatNumber(x.Value), true
	case StringValue:
		return "s:" + x.Value, true
	case HandleValue:
		return fmt.Sprintf("h:%d", x.Handle), true
	default:
		return "", false
	}
}

// Get reads the value stored at key, returning Nil for an absent key.
func (t *Table) Get(key Value) Value {
	enc, ok := encodeKey(key)
	if !ok {
		return Nil
	}
	entry, ok := t.entries[enc]
	if !ok {
		return Nil
	}
	return entry.value
}

// Insert stores value at key. Storing NilValue deletes the key.
func (t *Table) Insert(key, value Value) {
	enc, ok := encodeKey(key)
	if !ok {
		return
	}
	if _, isNil := value.(NilValue); isNil {
		t.delete(enc)
		return
	}
	if _, exists := t.entries[enc]; !exists {
		t.order = append(t.order, enc)
	}
	t.entries[enc] = tableEntry{key: key, value: value}
}

func (t *Table) delete(enc string) {
	if _, exists := t.entries[enc]; !exists {
		return
	}
	delete(t.entries, enc)
	for i, e := range t.order {
		if e == enc {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
}

// AppendPositional inserts value at the next positional integer index,
// incrementing it, for bare positional table-constructor fields. The
// counter starts at 1 and counts positional fields only; it is independent
// of any explicit numeric keys already present.
func (t *Table) AppendPositional(value Value) {
	key := NumberValue{Value: t.next}
	t.next++
	t.Insert(key, value)
}

// Len returns the total number of entries currently present, not a
// Lua-style border.
func (t *Table) Len() int { return len(t.order) }

// Entry is one (key, value) pair as seen during ordered iteration.
type Entry struct {
	Key   Value
	Value Value
}

// Entries returns the table's entries in insertion order of first
// assignment, for generic-for iteration.
func (t *Table) Entries() []Entry {
	out := make([]Entry, 0, len(t.order))
	for _, enc := range t.order {
		e := t.entries[enc]
		out = append(out, Entry{Key: e.key, Value: e.value})
	}
	return out
}

package ipfilter

import (
	"cmp"
	"fmt"
	"strings"

	"github.com/emirpasic/gods/maps/treemap"
)

// Entry is one distinct address together with the number of lines it
// appeared on.
type Entry struct {
	Address Address
	Count   int
}

// Aggregate counts occurrences of addresses, keyed by their Key and kept in
// descending key order. The zero value is not usable; call NewAggregate.
type Aggregate struct {
	// Strict makes Add reject addresses with octets outside 0-255. By
	// default such addresses are accepted and encoded as they are.
	Strict bool

	entries *treemap.Map
	index   []Key
	total   int
}

// NewAggregate returns an empty Aggregate.
func NewAggregate() *Aggregate {
	return &Aggregate{
		entries: treemap.NewWith(func(a, b interface{}) int {
			return cmp.Compare(b.(Key), a.(Key))
		}),
	}
}

// Add parses text as a dotted-quad address and counts one occurrence of it.
// If another address with the same key was added before, its count is
// incremented and the stored Address is kept.
func (a *Aggregate) Add(text string) error {
	addr, err := ParseAddress(text)
	if err != nil {
		return err
	}
	if a.Strict && !addr.Valid() {
		return &FormatError{Text: text, Err: ErrOctetRange}
	}
	k := addr.Key()
	if v, ok := a.entries.Get(k); ok {
		v.(*Entry).Count++
	} else {
		a.entries.Put(k, &Entry{Address: addr, Count: 1})
		a.index = nil
	}
	a.total++
	return nil
}

// AddLine counts the address field of a log line, as defined by Field.
func (a *Aggregate) AddLine(line string) error {
	return a.Add(Field(line))
}

// Entry returns the entry stored under k, and whether there was one.
func (a *Aggregate) Entry(k Key) (Entry, bool) {
	v, ok := a.entries.Get(k)
	if !ok {
		return Entry{}, false
	}
	return *v.(*Entry), true
}

// Entries returns a copy of every entry, in descending key order.
func (a *Aggregate) Entries() []Entry {
	entries := make([]Entry, 0, a.Len())
	for _, k := range a.Index() {
		e, _ := a.Entry(k)
		entries = append(entries, e)
	}
	return entries
}

// Index returns every key in the aggregate, sorted in descending order. The
// slice is built once and shared between calls until the next new address is
// added, so callers must not modify it.
func (a *Aggregate) Index() []Key {
	if a.index != nil || a.entries.Empty() {
		return a.index
	}
	keys := a.entries.Keys()
	a.index = make([]Key, len(keys))
	for i, k := range keys {
		a.index[i] = k.(Key)
	}
	return a.index
}

// Len returns the number of distinct addresses.
func (a *Aggregate) Len() int {
	return a.entries.Size()
}

// Total returns the number of addresses added, counting repeats. It always
// equals the sum of the counts of all entries.
func (a *Aggregate) Total() int {
	return a.total
}

// Aggregate reads log lines from the pipe and counts the address field of
// every line. Reading stops at the first line whose address is malformed: the
// pipe's error status is set to an error naming the line number, and that
// error is returned along with a nil Aggregate. Aggregate on a nil pipe
// returns an empty Aggregate.
func (p *Pipe) Aggregate() (*Aggregate, error) {
	if p == nil {
		return NewAggregate(), nil
	}
	if p.Error() != nil {
		return nil, p.Error()
	}
	agg := NewAggregate()
	var n int
	p.EachLine(func(line string, out *strings.Builder) {
		n++
		if err := agg.AddLine(line); err != nil {
			p.SetError(fmt.Errorf("line %d: %w", n, err))
		}
	})
	if p.Error() != nil {
		return nil, p.Error()
	}
	return agg, nil
}

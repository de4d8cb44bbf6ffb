package ipfilter

import (
	"io"
)

// Filter reports whether an address belongs in a report.
type Filter func(Address) bool

// All returns a Filter matching every address.
func All() Filter {
	return func(Address) bool { return true }
}

// FirstOctet returns a Filter matching addresses whose first octet is n.
func FirstOctet(n int) Filter {
	return Prefix(n)
}

// Prefix returns a Filter matching addresses that begin with the given
// octets. Prefix(46, 70) matches 46.70.*.*.
func Prefix(octets ...int) Filter {
	return func(a Address) bool {
		if len(octets) > len(a) {
			return false
		}
		for i, o := range octets {
			if a[i] != o {
				return false
			}
		}
		return true
	}
}

// AnyOctet returns a Filter matching addresses with at least one octet equal
// to n.
func AnyOctet(n int) Filter {
	return func(a Address) bool {
		for _, o := range a {
			if o == n {
				return true
			}
		}
		return false
	}
}

// Report is a named Filter.
type Report struct {
	Name   string
	Filter Filter
}

// DefaultReports are the reports written by the ipfilter command, in order.
var DefaultReports = []Report{
	{Name: "all", Filter: All()},
	{Name: "first-octet-1", Filter: FirstOctet(1)},
	{Name: "prefix-46.70", Filter: Prefix(46, 70)},
	{Name: "any-octet-46", Filter: AnyOctet(46)},
}

type flusher interface {
	Flush() error
}

// WriteReport writes every address matched by f to w, one per line, in
// descending key order. Each address is written as many times as it was
// counted. If w has a Flush method, it is called after every line. A nil
// Filter matches every address. WriteReport returns the number of bytes
// written, and stops at the first write error.
func (a *Aggregate) WriteReport(w io.Writer, f Filter) (int, error) {
	if f == nil {
		f = All()
	}
	fl, _ := w.(flusher)
	var wrote int
	for _, k := range a.Index() {
		e, _ := a.Entry(k)
		if !f(e.Address) {
			continue
		}
		line := e.Address.String() + "\n"
		for i := 0; i < e.Count; i++ {
			n, err := io.WriteString(w, line)
			wrote += n
			if err != nil {
				return wrote, err
			}
			if fl != nil {
				if err := fl.Flush(); err != nil {
					return wrote, err
				}
			}
		}
	}
	return wrote, nil
}

// WriteReports writes each report to w in turn, with nothing between them.
// It returns the total number of bytes written, and stops at the first error.
func (a *Aggregate) WriteReports(w io.Writer, reports ...Report) (int, error) {
	var wrote int
	for _, r := range reports {
		n, err := a.WriteReport(w, r.Filter)
		wrote += n
		if err != nil {
			return wrote, err
		}
	}
	return wrote, nil
}

// Reports reads every log line from the pipe, then writes the given reports
// to the pipe's standard output. Nothing is written unless every line was
// read and parsed successfully. It returns the number of bytes written, plus
// a non-nil error if reading, parsing or writing failed; a write error also
// sets the pipe's error status.
func (p *Pipe) Reports(reports ...Report) (int, error) {
	if p == nil {
		return 0, nil
	}
	agg, err := p.Aggregate()
	if err != nil {
		return 0, err
	}
	wrote, err := agg.WriteReports(p.output(), reports...)
	if err != nil {
		p.SetError(err)
	}
	return wrote, err
}

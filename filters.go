package ipfilter

import (
	"bufio"
	"math"
	"strings"
)

// Field returns the address field of a log line: everything before the first
// tab, or the whole line if it contains no tab.
func Field(line string) string {
	field, _, _ := strings.Cut(line, "\t")
	return field
}

// Addresses reads log lines from the pipe, and returns a new pipe containing
// only the address field of each line, as defined by Field. The addresses are
// not parsed. If there is an error reading the pipe, the pipe's error status
// is also set.
func (p *Pipe) Addresses() *Pipe {
	return p.EachLine(func(line string, out *strings.Builder) {
		out.WriteString(Field(line))
		out.WriteRune('\n')
	})
}

// EachLine calls the specified function for each line of input, passing it the
// line as a string, and a *strings.Builder to write its output to. The return
// value from EachLine is a pipe containing the contents of the strings.Builder.
// If process sets the pipe's error status, EachLine stops and returns the
// pipe.
func (p *Pipe) EachLine(process func(string, *strings.Builder)) *Pipe {
	if p == nil || p.Error() != nil {
		return p
	}
	scanner := newScanner(p)
	output := strings.Builder{}
	for scanner.Scan() {
		process(scanner.Text(), &output)
		if p.Error() != nil {
			return p
		}
	}
	err := scanner.Err()
	if err != nil {
		p.SetError(err)
		return p
	}
	return Echo(output.String()).WithStdout(p.stdout)
}

// newScanner returns a line scanner over the pipe that accepts lines of any
// length. Both "\n" and "\r\n" terminators are stripped.
func newScanner(p *Pipe) *bufio.Scanner {
	scanner := bufio.NewScanner(p)
	scanner.Buffer(make([]byte, 4096), math.MaxInt)
	return scanner
}

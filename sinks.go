package ipfilter

import (
	"io"
)

// String returns the contents of the pipe as a string, or an error, and closes
// the pipe after reading. If there is an error reading, the pipe's error status
// is also set.
func (p *Pipe) String() (string, error) {
	if p == nil {
		return "", nil
	}
	if p.Error() != nil {
		return "", p.Error()
	}
	defer p.Close()
	res, err := io.ReadAll(p)
	if err != nil {
		p.SetError(err)
		return "", err
	}
	return string(res), nil
}

// Stdout copies the contents of the pipe to its standard output, which is
// os.Stdout unless changed with WithStdout. It returns the number of bytes
// successfully written, plus a non-nil error if the write failed or if there
// was an error reading from the pipe. If the pipe has error status, Stdout
// returns zero plus the existing error.
func (p *Pipe) Stdout() (int, error) {
	if p == nil {
		return 0, nil
	}
	if p.Error() != nil {
		return 0, p.Error()
	}
	defer p.Close()
	wrote, err := io.Copy(p.output(), p)
	if err != nil {
		p.SetError(err)
	}
	return int(wrote), err
}

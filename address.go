package ipfilter

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrOctetCount means an address did not split into exactly four
	// dot-separated parts.
	ErrOctetCount = errors.New("want 4 dot-separated octets")

	// ErrOctetRange means an octet was outside 0-255. It is only reported
	// by an Aggregate in strict mode.
	ErrOctetRange = errors.New("octet out of range 0-255")
)

// FormatError records a malformed dotted-quad address and the reason it
// could not be parsed.
type FormatError struct {
	Text string
	Err  error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid address %q: %v", e.Text, e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// Address is an IPv4 address as four octets, most significant first. Octets
// are not range-checked when parsed, so an Address may hold values outside
// 0-255; see Valid.
type Address [4]int

// Key is the 32-bit encoding of an Address. Comparing keys numerically
// orders addresses the same way as comparing their octets left to right.
type Key uint32

// ParseAddress parses a dotted quad such as "10.0.0.1". The text must consist
// of exactly four decimal integers separated by dots, and nothing else. The
// error, if any, is a *FormatError.
func ParseAddress(text string) (Address, error) {
	var a Address
	parts := strings.Split(text, ".")
	if len(parts) != len(a) {
		return Address{}, &FormatError{Text: text, Err: ErrOctetCount}
	}
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			return Address{}, &FormatError{Text: text, Err: fmt.Errorf("octet %d: %w", i+1, err)}
		}
		a[i] = n
	}
	return a, nil
}

// Key returns a0<<24 + a1<<16 + a2<<8 + a3, truncated to 32 bits. Octets
// outside 0-255 are not rejected; they spill into neighbouring octets or
// wrap around.
func (a Address) Key() Key {
	return Key(uint32(a[0]<<24 + a[1]<<16 + a[2]<<8 + a[3]))
}

// Valid reports whether every octet of a is in the range 0-255.
func (a Address) Valid() bool {
	for _, o := range a {
		if o < 0 || o > 255 {
			return false
		}
	}
	return true
}

// String returns a in dotted-quad form, for example "10.0.0.1".
func (a Address) String() string {
	var b strings.Builder
	for i, o := range a {
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(strconv.Itoa(o))
	}
	return b.String()
}

// Address decodes k into its four octets.
func (k Key) Address() Address {
	return Address{
		int(k >> 24 & 0xff),
		int(k >> 16 & 0xff),
		int(k >> 8 & 0xff),
		int(k & 0xff),
	}
}

func (k Key) String() string {
	return k.Address().String()
}

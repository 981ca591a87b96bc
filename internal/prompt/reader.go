// internal/prompt/reader.go
//
// Line-oriented integer prompting for the CLI.
// Responsibilities:
//   - Read one line at a time, trim it, parse it as a base-10 signed
//     integer.
//   - Re-prompt indefinitely on malformed or out-of-range input, with
//     a corrective message each time.
//   - Surface an exhausted or failing stream as ErrInputClosed; that
//     is the only condition a caller cannot recover from.

package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrInputClosed reports that the input stream ended or failed before
// a valid integer was produced.
var ErrInputClosed = errors.New("input stream closed")

// Reader produces validated integers from an input stream, writing
// corrective feedback to out.
type Reader struct {
	in  *bufio.Reader
	out io.Writer
}

// New constructs a Reader over the given streams.
func New(in io.Reader, out io.Writer) *Reader {
	return &Reader{in: bufio.NewReader(in), out: out}
}

// ReadInt reads lines until one parses as a base-10 signed integer.
// Malformed lines (including empty ones) get a corrective message and
// another read; only a dead stream ends the loop early.
func (r *Reader) ReadInt() (int, error) {
	for {
		line, err := r.in.ReadString('\n')
		text := strings.TrimSpace(line)
		if err != nil {
			// A final line without a trailing newline still counts.
			if !errors.Is(err, io.EOF) || text == "" {
				return 0, fmt.Errorf("%w: %v", ErrInputClosed, err)
			}
		}
		n, perr := strconv.Atoi(text)
		if perr != nil {
			fmt.Fprintln(r.out, "Please input a number.")
			continue
		}
		return n, nil
	}
}

// ReadIntInRange reads integers until one falls inside [min, max]
// inclusive, re-prompting with a message naming the violated bound.
// The returned value always satisfies min <= v <= max.
func (r *Reader) ReadIntInRange(min, max int) (int, error) {
	for {
		n, err := r.ReadInt()
		if err != nil {
			return 0, err
		}
		switch {
		case n < min:
			fmt.Fprintf(r.out, "Your guess must be at least %d.\n", min)
		case n > max:
			fmt.Fprintf(r.out, "Your guess must be at most %d.\n", max)
		default:
			return n, nil
		}
	}
}

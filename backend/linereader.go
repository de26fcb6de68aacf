package backend

import (
	"bufio"
	"io"
)

// lineReader is a specialized reader that ensures only entire newline-delimited lines are
// read at a time. Trace files may be appended to while they are replayed, and parsing a
// half-written line would yield a bogus event. Read errors other than io.EOF are passed
// through, and the unterminated remainder is kept for the next Read either way.
type lineReader struct {
	r *bufio.Reader
	// partial holds an unterminated line seen before the last EOF.
	partial []byte
	// pending holds the remainder of a line that did not fit the caller's buffer.
	pending []byte
}

var _ io.Reader = (*lineReader)(nil)

func NewLineReader(r io.Reader) *lineReader {
	return &lineReader{
		r: bufio.NewReader(r),
	}
}

func (l *lineReader) Read(b []byte) (int, error) {
	if len(l.pending) == 0 {
		data, err := l.r.ReadBytes('\n')
		if err != nil {
			l.partial = append(l.partial, data...)
			return 0, err
		}
		if len(l.partial) > 0 {
			data = append(l.partial, data...)
			l.partial = nil
		}
		l.pending = data
	}
	n := copy(b, l.pending)
	l.pending = l.pending[n:]
	return n, nil
}

package seqio

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
)

type lineReader struct {
	sc     *bufio.Scanner
	closer *fileCloser
	line   int
	id     string
	record []byte
	err    error
}

// NewLineReader reads one record per non-empty line of r. Leading and
// trailing white space, including '\r', is stripped.
func NewLineReader(r io.Reader) Reader {
	return newLineReader(r, nil)
}

func newLineReader(r io.Reader, c *fileCloser) *lineReader {
	return &lineReader{sc: newScanner(r), closer: c}
}

func (l *lineReader) Next() bool {
	if l.err != nil {
		return false
	}
	for l.sc.Scan() {
		l.line++
		b := bytes.TrimSpace(l.sc.Bytes())
		if len(b) == 0 {
			continue
		}
		l.record = append([]byte(nil), b...)
		l.id = fmt.Sprintf("line:%d", l.line)
		return true
	}
	l.err = l.sc.Err()
	l.record = nil
	return false
}

func (l *lineReader) Identifier() string { return l.id }
func (l *lineReader) Record() []byte     { return l.record }
func (l *lineReader) Err() error         { return l.err }
func (l *lineReader) Close() error       { return l.closer.Close() }

package seqio

import (
	"bufio"
	"bytes"
	"io"
)

type fastaReader struct {
	sc     *bufio.Scanner
	closer *fileCloser

	// header of the record after the current one, already consumed
	pending    string
	hasPending bool
	started    bool

	id     string
	record []byte
	err    error
}

// NewFastaReader reads FASTA records from r. Sequence lines are joined and
// white space is stripped; the identifier is the header line without '>'.
func NewFastaReader(r io.Reader) Reader {
	return newFastaReader(r, nil)
}

func newFastaReader(r io.Reader, c *fileCloser) *fastaReader {
	return &fastaReader{sc: newScanner(r), closer: c}
}

func (f *fastaReader) Next() bool {
	if f.err != nil {
		return false
	}
	if !f.started {
		f.started = true
		if !f.readHeader() {
			return false
		}
	}
	if !f.hasPending {
		f.record = nil
		return false
	}

	f.id = f.pending
	f.hasPending = false
	seq := make([]byte, 0, 4096)
	for f.sc.Scan() {
		line := bytes.TrimSpace(f.sc.Bytes())
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			f.pending = string(bytes.TrimSpace(line[1:]))
			f.hasPending = true
			f.record = seq
			return true
		}
		seq = append(seq, line...)
	}
	f.err = f.sc.Err()
	f.record = seq
	return f.err == nil
}

// readHeader skips leading blank lines and consumes the first header.
func (f *fastaReader) readHeader() bool {
	for f.sc.Scan() {
		line := bytes.TrimSpace(f.sc.Bytes())
		if len(line) == 0 {
			continue
		}
		if line[0] != '>' {
			f.err = ErrNoFastaHeader
			return false
		}
		f.pending = string(bytes.TrimSpace(line[1:]))
		f.hasPending = true
		return true
	}
	f.err = f.sc.Err()
	return false
}

func (f *fastaReader) Identifier() string { return f.id }
func (f *fastaReader) Record() []byte     { return f.record }
func (f *fastaReader) Err() error         { return f.err }
func (f *fastaReader) Close() error       { return f.closer.Close() }

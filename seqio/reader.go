// Package seqio reads sequence records for scanning.
//
// Two record conventions are supported. Line files treat every non-empty line
// as an independent record. FASTA files join the sequence lines under each
// '>' header into one record. Example usage:
//
//	rdr, err := seqio.Open("genome.fa.gz")
//	if err != nil {
//		return err
//	}
//	defer rdr.Close()
//	for rdr.Next() {
//		fmt.Println(rdr.Identifier(), len(rdr.Record()))
//	}
//	if err := rdr.Err(); err != nil {
//		return err
//	}
package seqio

import (
	"bufio"
	"compress/gzip"
	"errors"
	"io"
	"os"
	"strings"
)

// MaxLineBytes bounds a single input line. Whole bacterial genomes are
// commonly stored on one line, so this is generous.
const MaxLineBytes = 256 << 20

var (
	ErrNoFastaHeader = errors.New("seqio: fasta data before the first '>' header")
)

// Reader is a record reader for line and FASTA files.
type Reader interface {
	// Next advances the reader to the next record. It returns false if no more
	// records are available, or an error occurs.
	Next() bool

	// Identifier returns the identifier for the current record.
	Identifier() string

	// Record returns the current record. The returned slice is not reused by
	// later calls to Next.
	Record() []byte

	// Err returns the error that stopped Next, or nil at a clean end of input.
	Err() error

	// Close releases the underlying file, if any.
	Close() error
}

type fileCloser struct {
	f  *os.File
	gz *gzip.Reader
}

func (c *fileCloser) Close() error {
	if c == nil {
		return nil
	}
	var err error
	if c.gz != nil {
		err = c.gz.Close()
	}
	if c.f != nil {
		err = errors.Join(err, c.f.Close())
	}
	return err
}

func openFile(filename string) (*bufio.Reader, *fileCloser, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, nil, err
	}
	c := &fileCloser{f: f}
	r := io.Reader(f)
	if strings.HasSuffix(filename, ".gz") {
		c.gz, err = gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, nil, err
		}
		r = c.gz
	}
	return bufio.NewReader(r), c, nil
}

// Open opens filename, transparently decompressing a ".gz" suffix, and
// returns a FASTA reader if the first byte is '>' and a line reader otherwise.
func Open(filename string) (Reader, error) {
	br, c, err := openFile(filename)
	if err != nil {
		return nil, err
	}
	bb, err := br.Peek(1)
	if err != nil && err != io.EOF {
		c.Close()
		return nil, err
	}
	if len(bb) == 1 && bb[0] == '>' {
		return newFastaReader(br, c), nil
	}
	return newLineReader(br, c), nil
}

// OpenLines opens filename as a line file.
func OpenLines(filename string) (Reader, error) {
	br, c, err := openFile(filename)
	if err != nil {
		return nil, err
	}
	return newLineReader(br, c), nil
}

// OpenFasta opens filename as a FASTA file.
func OpenFasta(filename string) (Reader, error) {
	br, c, err := openFile(filename)
	if err != nil {
		return nil, err
	}
	return newFastaReader(br, c), nil
}

func newScanner(r io.Reader) *bufio.Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), MaxLineBytes)
	return sc
}

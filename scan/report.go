package scan

import (
	"github.com/datatrails/go-datatrails-common/cbor"
)

// RecordReport is the outcome for one input record.
type RecordReport struct {
	Index  int
	ID     string
	Length int

	Windows  int
	Distinct int
	Patterns []string

	Skipped bool
	Reason  string

	flags []byte
}

// Report is the outcome of one run. Clump state is never carried across
// records; Clumps is the union of the per record results.
type Report struct {
	RunID  string
	K      int
	L      int
	T      int
	Bounds string

	Records []RecordReport
	Skipped int

	// Clumps are the patterns that clump in at least one record, in rank
	// order, and Flags is the same set as a clumpset V1 region.
	Clumps []string
	Flags  []byte

	ElapsedMS int64
}

// NewReportCodec returns the codec used to persist reports.
func NewReportCodec() (cbor.CBORCodec, error) {
	codec, err := cbor.NewCBORCodec(
		cbor.NewDeterministicEncOpts(),
		cbor.NewDeterministicDecOpts(),
	)
	if err != nil {
		return cbor.CBORCodec{}, err
	}
	return codec, nil
}

func EncodeReport(codec cbor.CBORCodec, r *Report) ([]byte, error) {
	return codec.MarshalCBOR(r)
}

func DecodeReport(codec cbor.CBORCodec, data []byte) (*Report, error) {
	var r Report
	if err := codec.UnmarshalInto(data, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

package clumpset

import "errors"

const (
	// HeaderBytesV1 is the fixed header size for HeaderV1.
	HeaderBytesV1 = 32

	MagicV1         = "KCS1"
	VersionV1 uint8 = 1

	// BitOrderLSB0 means bit 0 is the least-significant bit of byte 0.
	BitOrderLSB0 uint8 = 0
)

var (
	ErrBadRegionSize  = errors.New("clumpset: region buffer too small")
	ErrNotInitialized = errors.New("clumpset: header not initialized")
	ErrRankRange      = errors.New("clumpset: rank out of range")
	ErrKMismatch      = errors.New("clumpset: regions have different k")

	ErrBadMagic     = errors.New("clumpset: header magic invalid")
	ErrBadVersion   = errors.New("clumpset: header version invalid")
	ErrBadBitOrder  = errors.New("clumpset: header bitOrder unsupported")
	ErrBadK         = errors.New("clumpset: header k invalid")
	ErrBadRankCount = errors.New("clumpset: header rank count does not match k")
)

type HeaderV1 struct {
	BitOrder uint8
	K        uint8
	NSet     uint32
}

package dlis

import (
	"fmt"
)

// Storage unit label constants fixed by the standard.
const (
	sulLength     = 80
	sulVersion    = "V1.00"
	sulStructure  = "RECORD"
	sulIdentLen   = 60
	sulSeqLen     = 4
	sulMaxLensLen = 5

	// MinRecordLength and MaxRecordLength bound the visible record
	// length a storage unit may declare.
	MinRecordLength = 20
	MaxRecordLength = 16384

	// DefaultRecordLength is the visible record length used when none is
	// configured.
	DefaultRecordLength = 8192
)

// StorageUnitLabel is the fixed 80-byte ASCII prelude of a DLIS storage
// unit.
type StorageUnitLabel struct {
	SequenceNumber  int
	SetIdentifier   string
	MaxRecordLength int
}

func (s *StorageUnitLabel) validate() error {
	if s.SequenceNumber < 0 || len(fmt.Sprint(s.SequenceNumber)) > sulSeqLen {
		return configErr("storage unit sequence number %d does not fit %d characters", s.SequenceNumber, sulSeqLen)
	}
	if len(s.SetIdentifier) > sulIdentLen {
		return configErr("storage set identifier longer than %d characters: %q", sulIdentLen, s.SetIdentifier)
	}
	for i := 0; i < len(s.SetIdentifier); i++ {
		if s.SetIdentifier[i] < 0x20 || s.SetIdentifier[i] > 0x7E {
			return configErr("storage set identifier is not printable ASCII: %q", s.SetIdentifier)
		}
	}
	if s.MaxRecordLength < MinRecordLength || s.MaxRecordLength > MaxRecordLength {
		return configErr("visible record length must be in %d..%d; got %d", MinRecordLength, MaxRecordLength, s.MaxRecordLength)
	}
	if s.MaxRecordLength%2 != 0 {
		return configErr("visible record length must be even; got %d", s.MaxRecordLength)
	}
	return nil
}

// Bytes serialises the label: sequence number, format version, storage
// unit structure, maximum visible record length, and the storage set
// identifier, each space-padded to its fixed width.
func (s *StorageUnitLabel) Bytes() ([]byte, error) {
	if err := s.validate(); err != nil {
		return nil, err
	}
	dst := make([]byte, 0, sulLength)
	dst = appendPadded(dst, fmt.Sprint(s.SequenceNumber), sulSeqLen, false)
	dst = appendPadded(dst, sulVersion, len(sulVersion), true)
	dst = appendPadded(dst, sulStructure, len(sulStructure), false)
	dst = appendPadded(dst, fmt.Sprintf("%05d", s.MaxRecordLength), sulMaxLensLen, false)
	dst = appendPadded(dst, s.SetIdentifier, sulIdentLen, true)
	return dst, nil
}

// appendPadded space-pads s to width; left-justified when justifyLeft.
func appendPadded(dst []byte, s string, width int, justifyLeft bool) []byte {
	if justifyLeft {
		dst = append(dst, s...)
	}
	for i := len(s); i < width; i++ {
		dst = append(dst, ' ')
	}
	if !justifyLeft {
		dst = append(dst, s...)
	}
	return dst
}

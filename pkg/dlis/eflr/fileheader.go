package eflr

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samcharles93/dlis/pkg/rp66"
)

// SetTypeFileHeader is the class set type of the file header.
const SetTypeFileHeader = "FILE-HEADER"

// File header field widths fixed by the standard.
const (
	fileHeaderSequenceLen = 10
	fileHeaderIDLen       = 65

	maxFileHeaderSequence = 9_999_999_999
)

// FileHeader is the identifying label of a logical file. It serialises
// as a one-item set with fixed-width attribute values, producing a
// 120-byte logical record body (one 124-byte segment with its header).
type FileHeader struct {
	sequenceNumber int64
	id             string
	identifier     string
	originRef      uint32
}

// NewFileHeader creates a file header. The id describes the logical
// file (at most 65 characters), the identifier is the single-character
// object name, and the sequence number is the position of the logical
// file within the storage set.
func NewFileHeader(id string, identifier string, sequenceNumber int64) (*FileHeader, error) {
	if len(id) > fileHeaderIDLen {
		return nil, valueErr("ID", ErrOutOfRange, fmt.Sprintf("id length %d exceeds %d characters", len(id), fileHeaderIDLen))
	}
	if !rp66.IdentSafe(identifier) || len(identifier) != 1 {
		return nil, valueErr("ID", ErrInvalidCharset, fmt.Sprintf("identifier must be a single character; got %q", identifier))
	}
	if sequenceNumber < 1 || sequenceNumber > maxFileHeaderSequence {
		return nil, valueErr("SEQUENCE-NUMBER", ErrOutOfRange,
			fmt.Sprintf("sequence number must be a positive integer of at most 10 digits; got %d", sequenceNumber))
	}
	return &FileHeader{sequenceNumber: sequenceNumber, id: id, identifier: identifier}, nil
}

// ID returns the descriptive identification of the logical file.
func (fh *FileHeader) ID() string { return fh.id }

// SequenceNumber returns the position of the logical file in the set.
func (fh *FileHeader) SequenceNumber() int64 { return fh.sequenceNumber }

// SetOriginReference stamps the origin reference used in the header's
// object name.
func (fh *FileHeader) SetOriginReference(v uint32) { fh.originRef = v }

// LogicalRecordType implements Record.
func (fh *FileHeader) LogicalRecordType() uint8 { return LRFileHeader }

// IsEFLR implements Record.
func (fh *FileHeader) IsEFLR() bool { return true }

// Body serialises the file header with the fixed-width layout: the
// sequence number right-justified in 10 ASCII characters and the id
// left-justified in 65.
func (fh *FileHeader) Body() ([]byte, error) {
	if fh.originRef == 0 {
		return nil, &ReferenceError{Object: "FILE-HEADER", Detail: "origin reference has not been assigned"}
	}

	dst := []byte{compSet}
	dst, err := rp66.AppendASCII(dst, SetTypeFileHeader)
	if err != nil {
		return nil, err
	}

	for _, label := range []string{"SEQUENCE-NUMBER", "ID"} {
		dst = append(dst, compAttribute|attrHasLabel|attrHasCode)
		if dst, err = rp66.AppendASCII(dst, label); err != nil {
			return nil, err
		}
		dst = rp66.AppendUShort(dst, uint8(rp66.ASCII))
	}

	dst = append(dst, compObject)
	if dst, err = rp66.AppendObname(dst, fh.originRef, 0, fh.identifier); err != nil {
		return nil, err
	}

	dst = append(dst, compAttribute|attrHasValue)
	dst = rp66.AppendUShort(dst, fileHeaderSequenceLen)
	dst = append(dst, padASCII(strconv.FormatInt(fh.sequenceNumber, 10), fileHeaderSequenceLen, false)...)

	dst = append(dst, compAttribute|attrHasValue)
	dst = rp66.AppendUShort(dst, fileHeaderIDLen)
	dst = append(dst, padASCII(fh.id, fileHeaderIDLen, true)...)

	return dst, nil
}

// padASCII space-pads s to the given width, left- or right-justified.
func padASCII(s string, width int, justifyLeft bool) []byte {
	pad := strings.Repeat(" ", width-len(s))
	if justifyLeft {
		return []byte(s + pad)
	}
	return []byte(pad + s)
}

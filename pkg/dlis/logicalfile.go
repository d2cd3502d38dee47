// Package dlis writes RP66 v1 (DLIS) files: it assembles a logical
// file from metadata objects and columnar channel data, and streams a
// standards-compliant byte stream to a sink with bounded memory.
package dlis

import (
	"fmt"
	"regexp"

	"github.com/google/uuid"

	"github.com/samcharles93/dlis/internal/logger"
	"github.com/samcharles93/dlis/pkg/dlis/eflr"
	"github.com/samcharles93/dlis/pkg/dlis/frames"
)

// Handle aliases for the object classes, so callers build files against
// this package alone.
type (
	Origin                 = eflr.Origin
	Channel                = eflr.Channel
	Frame                  = eflr.Frame
	Axis                   = eflr.Axis
	Zone                   = eflr.Zone
	Parameter              = eflr.Parameter
	Equipment              = eflr.Equipment
	Tool                   = eflr.Tool
	Calibration            = eflr.Calibration
	CalibrationCoefficient = eflr.CalibrationCoefficient
	CalibrationMeasurement = eflr.CalibrationMeasurement
	Computation            = eflr.Computation
	Process                = eflr.Process
	Splice                 = eflr.Splice
	Path                   = eflr.Path
	Group                  = eflr.Group
	Message                = eflr.Message
	Comment                = eflr.Comment
	LongName               = eflr.LongName
	WellReferencePoint     = eflr.WellReferencePoint
	NoFormat               = eflr.NoFormat
)

// setOrder is the dependency-safe emission order of the set classes:
// referents always precede their referrers.
var setOrder = []string{
	eflr.SetTypeOrigin,
	eflr.SetTypeWellReferencePoint,
	eflr.SetTypeAxis,
	eflr.SetTypeLongName,
	eflr.SetTypeChannel,
	eflr.SetTypeFrame,
	eflr.SetTypeZone,
	eflr.SetTypeParameter,
	eflr.SetTypeEquipment,
	eflr.SetTypeTool,
	eflr.SetTypeCalibrationCoefficient,
	eflr.SetTypeCalibrationMeasurement,
	eflr.SetTypeCalibration,
	eflr.SetTypeComputation,
	eflr.SetTypeProcess,
	eflr.SetTypeSplice,
	eflr.SetTypePath,
	eflr.SetTypeGroup,
	eflr.SetTypeMessage,
	eflr.SetTypeComment,
	eflr.SetTypeNoFormat,
}

var hcNamePattern = regexp.MustCompile(`^[A-Z0-9_-]+$`)
var relaxedNamePattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// noFormatBlob is one pending no-format IFLR payload.
type noFormatBlob struct {
	target *eflr.NoFormat
	data   []byte
}

// LogicalFile accumulates the object graph of one DLIS logical file and
// writes it out in a single pass.
type LogicalFile struct {
	sul        StorageUnitLabel
	fileHeader *eflr.FileHeader
	log        logger.Logger
	highCompat bool

	sets       map[string][]*eflr.Set  // keyed by set type, insertion order per type
	setsByName map[string]*eflr.Set    // keyed by set type + "\x00" + set name
	copyCounts map[string]int          // keyed by set type + "\x00" + object name
	items      map[*eflr.Item]struct{} // membership of every registered object

	origins      []*eflr.Origin
	frameOrder   []*eflr.Frame
	channelOrder []*eflr.Channel
	noFormatData []noFormatBlob

	inlineData *frames.MapSource
}

// Option configures a LogicalFile at construction.
type Option func(*LogicalFile) error

// WithSetIdentifier sets the storage set identifier of the storage unit
// label.
func WithSetIdentifier(id string) Option {
	return func(lf *LogicalFile) error {
		lf.sul.SetIdentifier = id
		return nil
	}
}

// WithSULSequenceNumber sets the storage unit sequence number.
func WithSULSequenceNumber(n int) Option {
	return func(lf *LogicalFile) error {
		lf.sul.SequenceNumber = n
		return nil
	}
}

// WithMaxRecordLength sets the maximum visible record length in bytes.
func WithMaxRecordLength(n int) Option {
	return func(lf *LogicalFile) error {
		lf.sul.MaxRecordLength = n
		return nil
	}
}

// WithFileHeader replaces the default file header.
func WithFileHeader(id, identifier string, sequenceNumber int64) Option {
	return func(lf *LogicalFile) error {
		fh, err := eflr.NewFileHeader(id, identifier, sequenceNumber)
		if err != nil {
			return err
		}
		lf.fileHeader = fh
		return nil
	}
}

// WithHighCompatibility enables the stricter validation rules from the
// start: name and unit checks become errors and file set numbers
// default to the 1-based origin index.
func WithHighCompatibility() Option {
	return func(lf *LogicalFile) error {
		lf.highCompat = true
		return nil
	}
}

// WithLogger sets the logger used for validation warnings and progress.
func WithLogger(log logger.Logger) Option {
	return func(lf *LogicalFile) error {
		lf.log = log
		return nil
	}
}

// New creates an empty logical file. The default storage unit label
// carries sequence number 1, a generated storage set identifier, and an
// 8192-byte visible record length.
func New(opts ...Option) (*LogicalFile, error) {
	fh, err := eflr.NewFileHeader("FILE-HEADER", "0", 1)
	if err != nil {
		return nil, err
	}
	lf := &LogicalFile{
		sul: StorageUnitLabel{
			SequenceNumber:  1,
			MaxRecordLength: DefaultRecordLength,
		},
		fileHeader: fh,
		log:        logger.Default(),
		sets:       make(map[string][]*eflr.Set),
		setsByName: make(map[string]*eflr.Set),
		copyCounts: make(map[string]int),
		items:      make(map[*eflr.Item]struct{}),
		inlineData: frames.NewMapSource(nil),
	}
	for _, opt := range opts {
		if err := opt(lf); err != nil {
			return nil, err
		}
	}
	if lf.sul.SetIdentifier == "" {
		lf.sul.SetIdentifier = "DLSET-" + uuid.NewString()
	}
	if err := lf.sul.validate(); err != nil {
		return nil, err
	}
	return lf, nil
}

// StorageUnitLabel returns the label the file will be written with.
func (lf *LogicalFile) StorageUnitLabel() StorageUnitLabel { return lf.sul }

// FileHeader returns the file header record.
func (lf *LogicalFile) FileHeader() *eflr.FileHeader { return lf.fileHeader }

// HighCompatibility reports whether the stricter validation rules are in
// force.
func (lf *LogicalFile) HighCompatibility() bool { return lf.highCompat }

// HighCompatibilityMode turns the stricter validation rules on for a
// scope and returns the release function restoring the previous state:
//
//	defer lf.HighCompatibilityMode()()
func (lf *LogicalFile) HighCompatibilityMode() func() {
	previous := lf.highCompat
	lf.highCompat = true
	return func() { lf.highCompat = previous }
}

// Origins returns the origins in registration order; the first one is
// the defining origin.
func (lf *LogicalFile) Origins() []*eflr.Origin { return lf.origins }

// Channels returns the channels in registration order.
func (lf *LogicalFile) Channels() []*eflr.Channel { return lf.channelOrder }

// Frames returns the frames in registration order.
func (lf *LogicalFile) Frames() []*eflr.Frame { return lf.frameOrder }

// DefiningOrigin returns the first registered origin, nil when none.
func (lf *LogicalFile) DefiningOrigin() *eflr.Origin {
	if len(lf.origins) == 0 {
		return nil
	}
	return lf.origins[0]
}

// set returns the set of the given type and name, creating it on first
// use through mk.
func (lf *LogicalFile) set(setType, setName string, mk func(string) *eflr.Set) *eflr.Set {
	key := setType + "\x00" + setName
	if s, ok := lf.setsByName[key]; ok {
		return s
	}
	s := mk(setName)
	lf.setsByName[key] = s
	lf.sets[setType] = append(lf.sets[setType], s)
	return s
}

// registered finalises a new item: name audit and file-wide copy
// number. A rejected item is discarded from its set.
func (lf *LogicalFile) registered(it *eflr.Item) error {
	if err := lf.checkName(it.Name()); err != nil {
		it.Set().Discard(it)
		return err
	}
	key := it.SetType() + "\x00" + it.Name()
	it.SetCopyNumber(uint8(lf.copyCounts[key]))
	lf.copyCounts[key]++
	lf.items[it] = struct{}{}
	return nil
}

// checkName audits an object name: outside high-compatibility mode any
// printable ASCII name is accepted, with a warning when it strays from
// the portable character set; in high-compatibility mode the name must
// be uppercase letters, digits, dashes, and underscores.
func (lf *LogicalFile) checkName(name string) error {
	if name == "" {
		return &ValueError{Label: "NAME", Kind: eflr.ErrInvalidCharset, Cause: "object name must not be empty"}
	}
	if lf.highCompat {
		if !hcNamePattern.MatchString(name) {
			return &ValueError{Label: "NAME", Kind: eflr.ErrInvalidCharset,
				Cause: fmt.Sprintf("in high-compatibility mode names can contain only uppercase letters, digits, dashes, and underscores; got %q", name)}
		}
		return nil
	}
	for i := 0; i < len(name); i++ {
		if name[i] < 0x21 || name[i] > 0x7E {
			return &ValueError{Label: "NAME", Kind: eflr.ErrInvalidCharset,
				Cause: fmt.Sprintf("object name %q is not printable ASCII", name)}
		}
	}
	if !relaxedNamePattern.MatchString(name) {
		lf.log.Warn("object name strays from the portable character set", "name", name)
	}
	return nil
}

// checkUnit audits a unit symbol against the standard's list.
func (lf *LogicalFile) checkUnit(unit string) error {
	if unit == "" || eflr.KnownUnit(unit) {
		return nil
	}
	if lf.highCompat {
		return &ValueError{Label: "UNITS", Kind: eflr.ErrUnitNotRecognized,
			Cause: fmt.Sprintf("%q is not one of the standard units", unit)}
	}
	lf.log.Warn("unit is not one of the standard units", "unit", unit)
	return nil
}

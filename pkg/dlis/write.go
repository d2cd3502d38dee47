package dlis

import (
	"context"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/samcharles93/dlis/pkg/dlis/eflr"
	"github.com/samcharles93/dlis/pkg/dlis/frames"
	"github.com/samcharles93/dlis/pkg/rp66"
)

// targetChunkBytes sizes the default input chunk: roughly this many
// bytes of channel data are buffered per chunk.
const targetChunkBytes = 4 << 20

// writeConfig carries the write-time knobs.
type writeConfig struct {
	source          frames.Source
	inputChunkRows  int
	outputChunkSize int
}

// WriteOption configures one Write call.
type WriteOption func(*writeConfig) error

// WithData supplies the source the channel columns are read from. It is
// combined with any data attached to channels directly.
func WithData(source frames.Source) WriteOption {
	return func(cfg *writeConfig) error {
		cfg.source = source
		return nil
	}
}

// WithInputChunkSize sets the number of source rows loaded per chunk.
func WithInputChunkSize(rows int) WriteOption {
	return func(cfg *writeConfig) error {
		if rows < 1 {
			return configErr("input chunk size must be at least 1 row; got %d", rows)
		}
		cfg.inputChunkRows = rows
		return nil
	}
}

// WithOutputChunkSize sets the size in bytes of the output buffer; it
// must be at least the maximum visible record length.
func WithOutputChunkSize(size int) WriteOption {
	return func(cfg *writeConfig) error {
		if size < MinRecordLength {
			return configErr("output chunk size must be at least %d bytes; got %d", MinRecordLength, size)
		}
		cfg.outputChunkSize = size
		return nil
	}
}

// Write validates the object graph and streams the DLIS byte stream to
// w in one pass. The context is checked between input chunks; on
// cancellation the sink is left truncated and the caller discards it.
func (lf *LogicalFile) Write(ctx context.Context, w io.Writer, opts ...WriteOption) error {
	cfg := writeConfig{outputChunkSize: 1 << 22}
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return err
		}
	}
	if cfg.outputChunkSize < lf.sul.MaxRecordLength {
		return configErr("output chunk size %d is below the visible record length %d", cfg.outputChunkSize, lf.sul.MaxRecordLength)
	}

	source := lf.resolveSource(cfg.source)

	if err := lf.validateGraph(); err != nil {
		return err
	}
	if err := lf.setUpFromData(source); err != nil {
		return err
	}
	if err := lf.assignOriginReferences(); err != nil {
		return err
	}
	if err := lf.applyDefaults(); err != nil {
		return err
	}
	if err := lf.validateReferences(); err != nil {
		return err
	}

	bw := &byteWriter{w: w}
	out := newBufferedOutput(cfg.outputChunkSize, bw)
	packer := newVRPacker(lf.sul.MaxRecordLength, out)

	sul, err := lf.sul.Bytes()
	if err != nil {
		return err
	}
	lf.log.Debug("writing storage unit label")
	if err := bw.write(sul); err != nil {
		return err
	}

	if err := lf.writeEFLRs(packer); err != nil {
		return err
	}
	if err := lf.writeFrameData(ctx, packer, source, cfg.inputChunkRows); err != nil {
		return err
	}
	if err := lf.writeNoFormatData(packer); err != nil {
		return err
	}

	if err := packer.finish(); err != nil {
		return err
	}
	lf.log.Info("finished writing logical file", "bytes", bw.total)
	return nil
}

// WriteFile writes the logical file to path through a temporary file in
// the same directory, renaming on success so a failed write never
// leaves a truncated file under the final name.
func (lf *LogicalFile) WriteFile(ctx context.Context, path string, opts ...WriteOption) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("dlis: create temporary file: %w", err)
	}
	tmpName := tmp.Name()
	if err := lf.Write(ctx, tmp, opts...); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("dlis: close temporary file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("dlis: rename into place: %w", err)
	}
	return nil
}

// resolveSource combines the channel-attached data with the write-time
// source; channel-attached columns win on key conflicts.
func (lf *LogicalFile) resolveSource(user frames.Source) frames.Source {
	return &combinedSource{inline: lf.inlineData, user: user}
}

// columnLookup is implemented by the in-memory sources; it powers the
// data-derived setup of channels and frame indices.
type columnLookup interface {
	Lookup(key string) (frames.Column, bool)
}

// combinedSource resolves each dataset key against the inline data
// first, then the user source.
type combinedSource struct {
	inline *frames.MapSource
	user   frames.Source
}

func (s *combinedSource) Lookup(key string) (frames.Column, bool) {
	if col, ok := s.inline.Lookup(key); ok {
		return col, true
	}
	if lookup, ok := s.user.(columnLookup); ok {
		return lookup.Lookup(key)
	}
	return frames.Column{}, false
}

// exhaustive reports whether a failed Lookup proves the dataset absent.
// A cursor-only user source may still serve keys the lookup cannot see.
func (s *combinedSource) exhaustive() bool {
	if s.user == nil {
		return true
	}
	_, ok := s.user.(columnLookup)
	return ok
}

func (s *combinedSource) Select(keys []string) (frames.Cursor, error) {
	var inlineKeys, userKeys []string
	for _, key := range keys {
		if _, ok := s.inline.Lookup(key); ok {
			inlineKeys = append(inlineKeys, key)
		} else {
			userKeys = append(userKeys, key)
		}
	}
	if len(userKeys) == 0 {
		return s.inline.Select(keys)
	}
	if s.user == nil {
		return nil, &DataError{Dataset: userKeys[0], Detail: "not found in the source data"}
	}
	if len(inlineKeys) == 0 {
		return s.user.Select(keys)
	}
	a, err := s.inline.Select(inlineKeys)
	if err != nil {
		return nil, err
	}
	b, err := s.user.Select(userKeys)
	if err != nil {
		_ = a.Close()
		return nil, err
	}
	if a.Rows() != b.Rows() {
		_ = a.Close()
		_ = b.Close()
		return nil, &DataError{Dataset: userKeys[0],
			Detail: fmt.Sprintf("has %d rows; channel-attached data has %d", b.Rows(), a.Rows())}
	}
	return &mergedCursor{a: a, b: b}, nil
}

// mergedCursor zips two cursors over disjoint key sets of equal length.
type mergedCursor struct {
	a, b frames.Cursor
}

func (m *mergedCursor) Rows() int { return m.a.Rows() }

func (m *mergedCursor) Next(maxRows int) (frames.Chunk, error) {
	ca, err := m.a.Next(maxRows)
	if err != nil {
		return frames.Chunk{}, err
	}
	cb, err := m.b.Next(ca.Rows)
	if err != nil {
		return frames.Chunk{}, err
	}
	if cb.Rows != ca.Rows {
		return frames.Chunk{}, &DataError{Detail: "sources disagree on chunk length"}
	}
	return frames.MergeChunks(ca, cb), nil
}

func (m *mergedCursor) Close() error {
	errA := m.a.Close()
	errB := m.b.Close()
	if errA != nil {
		return errA
	}
	return errB
}

// setUpFromData derives the data-dependent attributes: channel
// dimensions and representation codes from the columns, and the frame
// index statistics from the index channel.
func (lf *LogicalFile) setUpFromData(source frames.Source) error {
	combined, ok := source.(*combinedSource)
	if !ok {
		return nil
	}
	for _, frame := range lf.frameOrder {
		rows := -1
		for _, ch := range frame.Channels() {
			col, found := combined.Lookup(ch.DatasetKey())
			if !found {
				if combined.exhaustive() {
					return &DataError{Dataset: ch.DatasetKey(), Detail: "not found in the source data"}
				}
				lf.log.Debug("source does not expose columns up front; skipping data-derived setup",
					"dataset", ch.DatasetKey())
				continue
			}
			if err := lf.setUpChannelFromColumn(ch, col); err != nil {
				return err
			}
			if rows == -1 {
				rows = col.Rows()
			} else if col.Rows() != rows {
				return &DataError{Dataset: ch.DatasetKey(),
					Detail: fmt.Sprintf("has %d rows; other channels of frame %q have %d", col.Rows(), frame.Name(), rows)}
			}
		}
		if rows < 0 {
			continue
		}
		if err := lf.setUpFrameIndex(frame, combined, rows); err != nil {
			return err
		}
	}
	return nil
}

func (lf *LogicalFile) setUpChannelFromColumn(ch *eflr.Channel, col frames.Column) error {
	dim := ch.Attr("DIMENSION")
	if !dim.HasValue() {
		if err := ch.SetDimension([]int{col.Width()}); err != nil {
			return err
		}
	} else if ch.Width() != col.Width() {
		return &DataError{Dataset: ch.DatasetKey(),
			Detail: fmt.Sprintf("has %d samples per row; channel %q declares %d", col.Width(), ch.Name(), ch.Width())}
	}
	if ch.RepCode() == 0 {
		if err := ch.SetRepCode(col.Code()); err != nil {
			return err
		}
	} else if ch.RepCode() != col.Code() {
		lf.log.Warn("channel representation code differs from the source data; samples will be converted",
			"channel", ch.Name(), "declared", ch.RepCode().String(), "data", col.Code().String())
	}
	return nil
}

// setUpFrameIndex fills the index attributes the caller left unset.
// Frames without an index type are indexed by row number.
func (lf *LogicalFile) setUpFrameIndex(frame *eflr.Frame, lookup columnLookup, rows int) error {
	spacing := frame.Attr("SPACING")
	indexMin := frame.Attr("INDEX-MIN")
	indexMax := frame.Attr("INDEX-MAX")

	if frame.IndexType() == "" {
		lf.log.Debug("no index type declared; frame is indexed by row number", "frame", frame.Name())
		for attr, v := range map[*eflr.Attribute]int{spacing: 1, indexMin: 1, indexMax: rows} {
			if !attr.HasValue() {
				if err := attr.SetValue(v); err != nil {
					return err
				}
			}
		}
		return nil
	}

	index := frame.IndexChannel()
	col, found := lookup.Lookup(index.DatasetKey())
	if !found {
		return nil
	}

	lo, hi := col.MinMax()
	if !indexMin.HasValue() {
		if err := indexMin.SetValue(lo); err != nil {
			return err
		}
	}
	if !indexMax.HasValue() {
		if err := indexMax.SetValue(hi); err != nil {
			return err
		}
	}
	for _, attr := range []*eflr.Attribute{indexMin, indexMax, spacing} {
		if attr.Units() == "" && index.Units() != "" {
			if err := attr.SetUnits(index.Units()); err != nil {
				return err
			}
		}
	}

	if col.Rows() < 2 {
		return nil
	}
	step, direction, uniform := indexSpacing(col)
	if !uniform {
		message := "index channel spacing is not uniform; some viewers rely on a declared spacing"
		if lf.highCompat {
			return &ValueError{Label: "SPACING", Kind: eflr.ErrOutOfRange,
				Cause: fmt.Sprintf("frame %q: %s", frame.Name(), message)}
		}
		lf.log.Warn(message, "frame", frame.Name())
	}
	if direction != "" {
		if dir := frame.Attr("DIRECTION"); !dir.HasValue() {
			if err := dir.SetValue(direction); err != nil {
				return err
			}
		}
	}
	if !uniform {
		return nil
	}
	if !spacing.HasValue() {
		if err := spacing.SetValue(step); err != nil {
			return err
		}
	}
	return nil
}

// indexSpacing derives the spacing and direction of an index column.
// Minor deviations attributable to numerical accuracy still count as
// uniform; the median difference then represents the spacing.
func indexSpacing(col frames.Column) (step float64, direction string, uniform bool) {
	n := col.Rows()
	if n < 2 {
		return 0, "", false
	}
	diffs := make([]float64, n-1)
	increasing, decreasing := true, true
	for i := 1; i < n; i++ {
		d := col.FloatAt(i, 0) - col.FloatAt(i-1, 0)
		diffs[i-1] = d
		if d > 0 {
			decreasing = false
		}
		if d < 0 {
			increasing = false
		}
	}
	switch {
	case increasing && !decreasing:
		direction = "INCREASING"
	case decreasing && !increasing:
		direction = "DECREASING"
	}

	median := medianOf(diffs)
	if median == 0 {
		return 0, direction, false
	}
	for _, d := range diffs {
		dev := 1 - d/median
		if dev*dev >= 0.001 {
			return 0, direction, false
		}
	}
	return median, direction, true
}

func medianOf(vs []float64) float64 {
	sorted := make([]float64, len(vs))
	copy(sorted, vs)
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && sorted[j] < sorted[j-1]; j-- {
			sorted[j], sorted[j-1] = sorted[j-1], sorted[j]
		}
	}
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}

// assignOriginReferences gives every origin a file set number and stamps
// the defining origin's number on every object without an explicit one.
func (lf *LogicalFile) assignOriginReferences() error {
	for i, origin := range lf.origins {
		if origin.FileSetNumber() != 0 {
			continue
		}
		var fsn uint32
		if lf.highCompat {
			fsn = uint32(i + 1)
		} else {
			fsn = randomFileSetNumber()
		}
		lf.log.Debug("assigning file set number", "origin", origin.Name(), "file_set_number", fsn)
		if err := origin.SetFileSetNumber(fsn); err != nil {
			return err
		}
	}

	defining := lf.origins[0].FileSetNumber()
	lf.fileHeader.SetOriginReference(defining)
	for _, setType := range setOrder {
		for _, set := range lf.sets[setType] {
			set.SetOriginReference(defining)
		}
	}
	return nil
}

// randomFileSetNumber draws a random file set number from the UVARI
// range, as the standard asks for "a random integer from a large range".
func randomFileSetNumber() uint32 {
	u := uuid.New()
	return binary.BigEndian.Uint32(u[0:4])%(rp66.MaxUvari-1) + 1
}

// applyDefaults fills the derivable attributes before emission.
func (lf *LogicalFile) applyDefaults() error {
	now := time.Now()
	for _, origin := range lf.origins {
		if err := origin.ApplyDefaults(now); err != nil {
			return err
		}
	}
	for _, ch := range lf.channelOrder {
		if err := ch.ApplyDefaults(); err != nil {
			return err
		}
	}
	return nil
}

// validateReferences checks that every referenced object belongs to this
// logical file and precedes its referrer in the emission order.
func (lf *LogicalFile) validateReferences() error {
	orderIndex := make(map[string]int, len(setOrder))
	for i, setType := range setOrder {
		orderIndex[setType] = i
	}
	for _, setType := range setOrder {
		for _, set := range lf.sets[setType] {
			for _, it := range set.Items() {
				for _, attr := range it.Attributes() {
					for _, ref := range attr.Refs() {
						if _, ours := lf.items[ref]; !ours {
							return &ReferenceError{Object: it.Name(),
								Detail: fmt.Sprintf("attribute %s references %s %q from outside this logical file",
									attr.Label(), ref.SetType(), ref.Name())}
						}
						refOrder, known := orderIndex[ref.SetType()]
						if !known || refOrder > orderIndex[setType] {
							return &OrderError{Detail: fmt.Sprintf(
								"%s %q references %s %q, which would be emitted later",
								setType, it.Name(), ref.SetType(), ref.Name())}
						}
					}
				}
			}
		}
	}
	return nil
}

// writeEFLRs emits the file header and every non-empty set in the
// dependency-safe order.
func (lf *LogicalFile) writeEFLRs(packer *vrPacker) error {
	maxBody := lf.sul.MaxRecordLength - vrHeaderSize - segHeaderSize

	records := []eflr.Record{lf.fileHeader}
	for _, setType := range setOrder {
		for _, set := range lf.sets[setType] {
			records = append(records, set)
		}
	}

	for _, record := range records {
		body, err := record.Body()
		if err != nil {
			return err
		}
		if len(body) == 0 {
			continue
		}
		err = forEachSegment(body, record.LogicalRecordType(), record.IsEFLR(), maxBody, packer.addSegment)
		if err != nil {
			return err
		}
	}
	return nil
}

// writeFrameData streams every frame's rows through the segmenter, one
// chunk of source rows at a time.
func (lf *LogicalFile) writeFrameData(ctx context.Context, packer *vrPacker, source frames.Source, chunkRows int) error {
	maxBody := lf.sul.MaxRecordLength - vrHeaderSize - segHeaderSize

	for _, frame := range lf.frameOrder {
		encoder, err := frames.NewRowEncoder(frame)
		if err != nil {
			return err
		}
		cursor, err := source.Select(encoder.Keys())
		if err != nil {
			return err
		}
		if err := lf.writeFrameRows(ctx, packer, frame, encoder, cursor, chunkRows, maxBody); err != nil {
			_ = cursor.Close()
			return err
		}
		if err := cursor.Close(); err != nil {
			return err
		}
	}
	return nil
}

func (lf *LogicalFile) writeFrameRows(ctx context.Context, packer *vrPacker, frame *eflr.Frame,
	encoder *frames.RowEncoder, cursor frames.Cursor, chunkRows, maxBody int) error {

	if chunkRows == 0 {
		chunkRows = defaultChunkRows(encoder.RowSize(), cursor.Rows())
	}
	lf.log.Debug("writing frame data", "frame", frame.Name(), "rows", cursor.Rows(), "chunk_rows", chunkRows)

	frameNumber := uint32(1)
	var body []byte
	validated := false
	for {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("dlis: write cancelled: %w", err)
		}
		chunk, err := cursor.Next(chunkRows)
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if !validated {
			if err := encoder.ValidateChunk(chunk); err != nil {
				return err
			}
			validated = true
		}
		for row := 0; row < chunk.Rows; row++ {
			body, err = encoder.AppendRow(body[:0], chunk, row, frameNumber)
			if err != nil {
				return err
			}
			if err := forEachSegment(body, eflr.LRFrameData, false, maxBody, packer.addSegment); err != nil {
				return err
			}
			frameNumber++
		}
	}
}

func defaultChunkRows(rowSize, totalRows int) int {
	if rowSize <= 0 {
		return totalRows
	}
	rows := targetChunkBytes / rowSize
	if rows < 1 {
		return 1
	}
	if rows > totalRows {
		return totalRows
	}
	return rows
}

// writeNoFormatData emits the queued unformatted payloads after the
// frame data they accompany.
func (lf *LogicalFile) writeNoFormatData(packer *vrPacker) error {
	maxBody := lf.sul.MaxRecordLength - vrHeaderSize - segHeaderSize
	for _, blob := range lf.noFormatData {
		body, err := frames.NoFormatBody(blob.target, blob.data)
		if err != nil {
			return err
		}
		if err := forEachSegment(body, eflr.LRNoFormatData, false, maxBody, packer.addSegment); err != nil {
			return err
		}
	}
	return nil
}

package filedesc

import (
	"fmt"
	"math"
	"math/rand"
	"strings"

	"github.com/samcharles93/dlis/internal/logger"
	"github.com/samcharles93/dlis/pkg/dlis"
	"github.com/samcharles93/dlis/pkg/dlis/frames"
	"github.com/samcharles93/dlis/pkg/rp66"
)

// defaultRows sizes synthetic columns when the description does not say.
const defaultRows = 1000

// Build turns a description into a ready-to-write logical file and the
// source holding its synthetic columns.
func Build(desc *Description, log logger.Logger) (*dlis.LogicalFile, *frames.MapSource, error) {
	var opts []dlis.Option
	if desc.Storage.SetIdentifier != "" {
		opts = append(opts, dlis.WithSetIdentifier(desc.Storage.SetIdentifier))
	}
	if desc.Storage.SequenceNumber != 0 {
		opts = append(opts, dlis.WithSULSequenceNumber(desc.Storage.SequenceNumber))
	}
	if desc.Storage.MaxRecordLength != 0 {
		opts = append(opts, dlis.WithMaxRecordLength(desc.Storage.MaxRecordLength))
	}
	if desc.FileHeader.ID != "" {
		identifier := desc.FileHeader.Identifier
		if identifier == "" {
			identifier = "0"
		}
		seq := desc.FileHeader.SequenceNumber
		if seq == 0 {
			seq = 1
		}
		opts = append(opts, dlis.WithFileHeader(desc.FileHeader.ID, identifier, seq))
	}
	if log != nil {
		opts = append(opts, dlis.WithLogger(log))
	}

	lf, err := dlis.New(opts...)
	if err != nil {
		return nil, nil, err
	}

	_, err = lf.AddOrigin(desc.Origin.Name, dlis.OriginOptions{
		FileSetNumber: desc.Origin.FileSetNumber,
		FileSetName:   desc.Origin.FileSetName,
		WellName:      desc.Origin.WellName,
		FieldName:     desc.Origin.FieldName,
		Company:       desc.Origin.Company,
		Product:       desc.Origin.Product,
	})
	if err != nil {
		return nil, nil, err
	}

	rows := desc.Rows
	if rows == 0 {
		rows = defaultRows
	}

	source := frames.NewMapSource(nil)
	channels := make(map[string]*dlis.Channel, len(desc.Channels))
	for _, entry := range desc.Channels {
		code, err := parseCode(entry.Code)
		if err != nil {
			return nil, nil, err
		}
		ch, err := lf.AddChannel(entry.Name, dlis.ChannelOptions{
			LongName:   entry.LongName,
			Units:      entry.Units,
			Code:       code,
			DatasetKey: entry.Dataset,
		})
		if err != nil {
			return nil, nil, err
		}
		channels[entry.Name] = ch

		if entry.Dataset == "" {
			col, err := synthesize(entry, rows)
			if err != nil {
				return nil, nil, err
			}
			source.Put(ch.DatasetKey(), col)
		}
	}

	for _, entry := range desc.Frames {
		frameChannels := make([]*dlis.Channel, len(entry.Channels))
		for i, name := range entry.Channels {
			frameChannels[i] = channels[name]
		}
		_, err := lf.AddFrame(entry.Name, dlis.FrameOptions{
			Channels:  frameChannels,
			IndexType: entry.IndexType,
		})
		if err != nil {
			return nil, nil, err
		}
	}

	return lf, source, nil
}

func parseCode(name string) (rp66.Code, error) {
	if name == "" {
		return 0, nil
	}
	for _, code := range []rp66.Code{
		rp66.FSHORT, rp66.FSINGL, rp66.FDOUBL,
		rp66.SSHORT, rp66.SNORM, rp66.SLONG,
		rp66.USHORT, rp66.UNORM, rp66.ULONG,
	} {
		if strings.EqualFold(code.String(), name) {
			return code, nil
		}
	}
	return 0, fmt.Errorf("filedesc: %q is not a frame data representation code", name)
}

// synthesize generates the column of a channel without a dataset. The
// generated values are doubles regardless of the declared code; the
// writer converts on encode.
func synthesize(entry Channel, rows int) (frames.Column, error) {
	width := entry.Width
	if width == 0 {
		width = 1
	}
	n := rows * width

	synth := entry.Synthetic
	if synth == nil {
		synth = &Synth{Kind: "ramp", Step: 1}
	}

	vals := make([]float64, n)
	switch synth.Kind {
	case "", "ramp":
		step := synth.Step
		if step == 0 {
			step = 1
		}
		for i := range vals {
			vals[i] = synth.Start + float64(i/width)*step
		}
	case "sine":
		amplitude := synth.Amplitude
		if amplitude == 0 {
			amplitude = 1
		}
		period := synth.Period
		if period == 0 {
			period = 64
		}
		for i := range vals {
			vals[i] = synth.Start + amplitude*math.Sin(2*math.Pi*float64(i/width)/period)
		}
	case "random":
		rng := rand.New(rand.NewSource(synth.Seed))
		amplitude := synth.Amplitude
		if amplitude == 0 {
			amplitude = 1
		}
		for i := range vals {
			vals[i] = synth.Start + amplitude*rng.Float64()
		}
	case "constant":
		for i := range vals {
			vals[i] = synth.Value
		}
	default:
		return frames.Column{}, fmt.Errorf("filedesc: unknown synthetic kind %q for channel %s", synth.Kind, entry.Name)
	}

	col := frames.Float64s(vals)
	if width > 1 {
		return col.WithWidth(width)
	}
	return col, nil
}

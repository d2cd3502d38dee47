package filedesc

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samcharles93/dlis/internal/logger"
	"github.com/samcharles93/dlis/pkg/dlis"
)

const yamlDesc = `
storage:
  set_identifier: TEST-SET
  max_record_length: 4096
file_header:
  id: TEST-LOG
origin:
  name: TEST-ORIGIN
  file_set_number: 1
  well_name: WELL-1
rows: 16
channels:
  - name: DEPTH
    units: m
    code: FDOUBL
    synthetic: {kind: ramp, start: 100, step: 0.5}
  - name: GR
    units: gAPI
    code: FSINGL
    synthetic: {kind: sine, amplitude: 50, period: 8}
frames:
  - name: MAIN
    index_type: BOREHOLE-DEPTH
    channels: [DEPTH, GR]
`

const jsonDesc = `{
  "origin": {"name": "J-ORIGIN", "file_set_number": 2},
  "rows": 4,
  "channels": [{"name": "TIME", "code": "FDOUBL", "synthetic": {"kind": "ramp"}}],
  "frames": [{"name": "F", "channels": ["TIME"]}]
}`

const tomlDesc = `
rows = 4

[origin]
name = "T-ORIGIN"
file_set_number = 3

[[channels]]
name = "DEPTH"
code = "FDOUBL"

[[frames]]
name = "F"
channels = ["DEPTH"]
`

func writeDesc(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFormats(t *testing.T) {
	t.Parallel()

	yml, err := Load(writeDesc(t, "d.yaml", yamlDesc))
	require.NoError(t, err)
	assert.Equal(t, "TEST-ORIGIN", yml.Origin.Name)
	assert.Equal(t, 4096, yml.Storage.MaxRecordLength)
	require.Len(t, yml.Channels, 2)
	assert.Equal(t, "sine", yml.Channels[1].Synthetic.Kind)

	jsn, err := Load(writeDesc(t, "d.json", jsonDesc))
	require.NoError(t, err)
	assert.Equal(t, "J-ORIGIN", jsn.Origin.Name)

	tml, err := Load(writeDesc(t, "d.toml", tomlDesc))
	require.NoError(t, err)
	assert.Equal(t, "T-ORIGIN", tml.Origin.Name)

	_, err = Load(writeDesc(t, "d.ini", "x"))
	assert.Error(t, err)
}

func TestLoadRejectsBrokenDescriptions(t *testing.T) {
	t.Parallel()

	for name, content := range map[string]string{
		"no-origin.yaml":   "channels: [{name: A}]\nframes: [{name: F, channels: [A]}]\nrows: 2",
		"no-channels.yaml": "origin: {name: O}\nframes: [{name: F, channels: [A]}]",
		"bad-frame.yaml":   "origin: {name: O}\nrows: 2\nchannels: [{name: A}]\nframes: [{name: F, channels: [B]}]",
		"no-frames.yaml":   "origin: {name: O}\nrows: 2\nchannels: [{name: A}]",
	} {
		_, err := Load(writeDesc(t, name, content))
		assert.Error(t, err, name)
	}
}

func TestBuildAndWrite(t *testing.T) {
	t.Parallel()

	desc, err := Load(writeDesc(t, "d.yaml", yamlDesc))
	require.NoError(t, err)

	lf, source, err := Build(desc, logger.Discard())
	require.NoError(t, err)
	require.Len(t, lf.Channels(), 2)
	require.Len(t, lf.Frames(), 1)

	depth, ok := source.Lookup("DEPTH")
	require.True(t, ok)
	assert.Equal(t, 16, depth.Rows())
	assert.Equal(t, 100.0, depth.FloatAt(0, 0))
	assert.Equal(t, 100.5, depth.FloatAt(1, 0))

	var buf bytes.Buffer
	require.NoError(t, lf.Write(context.Background(), &buf, dlis.WithData(source)))
	assert.Greater(t, buf.Len(), 80)
	assert.Equal(t, "04096", buf.String()[15:20])
}

func TestSynthKinds(t *testing.T) {
	t.Parallel()

	ramp, err := synthesize(Channel{Name: "R"}, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, ramp.Rows())
	assert.Equal(t, 2.0, ramp.FloatAt(2, 0))

	constant, err := synthesize(Channel{Name: "C", Synthetic: &Synth{Kind: "constant", Value: 4}}, 2)
	require.NoError(t, err)
	assert.Equal(t, 4.0, constant.FloatAt(1, 0))

	random, err := synthesize(Channel{Name: "N", Synthetic: &Synth{Kind: "random", Seed: 1}}, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, random.Rows())

	_, err = synthesize(Channel{Name: "X", Synthetic: &Synth{Kind: "sawtooth"}}, 2)
	assert.Error(t, err)

	wide, err := synthesize(Channel{Name: "W", Width: 4}, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, wide.Rows())
	assert.Equal(t, 4, wide.Width())
}

// Package filedesc loads logical-file descriptions for the dliswrite
// CLI: the storage unit, origin, channels, and frames of a DLIS file
// described in YAML, TOML, or JSON.
package filedesc

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Description is the top-level shape of a description file.
type Description struct {
	Storage    Storage    `yaml:"storage" toml:"storage" json:"storage"`
	FileHeader FileHeader `yaml:"file_header" toml:"file_header" json:"file_header"`
	Origin     Origin     `yaml:"origin" toml:"origin" json:"origin"`
	Channels   []Channel  `yaml:"channels" toml:"channels" json:"channels"`
	Frames     []Frame    `yaml:"frames" toml:"frames" json:"frames"`
	// Rows sizes the synthetic columns for channels without a dataset.
	Rows int `yaml:"rows" toml:"rows" json:"rows"`
}

// Storage describes the storage unit label.
type Storage struct {
	SetIdentifier   string `yaml:"set_identifier" toml:"set_identifier" json:"set_identifier"`
	SequenceNumber  int    `yaml:"sequence_number" toml:"sequence_number" json:"sequence_number"`
	MaxRecordLength int    `yaml:"max_record_length" toml:"max_record_length" json:"max_record_length"`
}

// FileHeader describes the file header record.
type FileHeader struct {
	ID             string `yaml:"id" toml:"id" json:"id"`
	Identifier     string `yaml:"identifier" toml:"identifier" json:"identifier"`
	SequenceNumber int64  `yaml:"sequence_number" toml:"sequence_number" json:"sequence_number"`
}

// Origin describes the defining origin.
type Origin struct {
	Name          string `yaml:"name" toml:"name" json:"name"`
	FileSetNumber uint32 `yaml:"file_set_number" toml:"file_set_number" json:"file_set_number"`
	FileSetName   string `yaml:"file_set_name" toml:"file_set_name" json:"file_set_name"`
	WellName      string `yaml:"well_name" toml:"well_name" json:"well_name"`
	FieldName     string `yaml:"field_name" toml:"field_name" json:"field_name"`
	Company       string `yaml:"company" toml:"company" json:"company"`
	Product       string `yaml:"product" toml:"product" json:"product"`
}

// Channel describes one channel and where its data comes from.
type Channel struct {
	Name      string `yaml:"name" toml:"name" json:"name"`
	LongName  string `yaml:"long_name" toml:"long_name" json:"long_name"`
	Units     string `yaml:"units" toml:"units" json:"units"`
	Code      string `yaml:"code" toml:"code" json:"code"`
	Width     int    `yaml:"width" toml:"width" json:"width"`
	Dataset   string `yaml:"dataset" toml:"dataset" json:"dataset"`
	Synthetic *Synth `yaml:"synthetic" toml:"synthetic" json:"synthetic"`
}

// Synth describes a generated column for demos and interop tests.
type Synth struct {
	Kind      string  `yaml:"kind" toml:"kind" json:"kind"` // ramp, sine, random, constant
	Start     float64 `yaml:"start" toml:"start" json:"start"`
	Step      float64 `yaml:"step" toml:"step" json:"step"`
	Amplitude float64 `yaml:"amplitude" toml:"amplitude" json:"amplitude"`
	Period    float64 `yaml:"period" toml:"period" json:"period"`
	Value     float64 `yaml:"value" toml:"value" json:"value"`
	Seed      int64   `yaml:"seed" toml:"seed" json:"seed"`
}

// Frame describes one frame over previously declared channels.
type Frame struct {
	Name      string   `yaml:"name" toml:"name" json:"name"`
	IndexType string   `yaml:"index_type" toml:"index_type" json:"index_type"`
	Channels  []string `yaml:"channels" toml:"channels" json:"channels"`
}

// Load reads a description file; the format is chosen by extension
// (.yaml/.yml, .toml, .json).
func Load(path string) (*Description, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("filedesc: read description: %w", err)
	}

	var desc Description
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(raw, &desc); err != nil {
			return nil, fmt.Errorf("filedesc: parse YAML description: %w", err)
		}
	case ".toml":
		if err := toml.Unmarshal(raw, &desc); err != nil {
			return nil, fmt.Errorf("filedesc: parse TOML description: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(raw, &desc); err != nil {
			return nil, fmt.Errorf("filedesc: parse JSON description: %w", err)
		}
	default:
		return nil, fmt.Errorf("filedesc: unsupported description format %q", filepath.Ext(path))
	}

	if err := desc.check(); err != nil {
		return nil, err
	}
	return &desc, nil
}

func (d *Description) check() error {
	if d.Origin.Name == "" {
		return fmt.Errorf("filedesc: the description must declare an origin name")
	}
	if len(d.Channels) == 0 {
		return fmt.Errorf("filedesc: the description must declare at least one channel")
	}
	declared := make(map[string]struct{}, len(d.Channels))
	for _, ch := range d.Channels {
		if ch.Name == "" {
			return fmt.Errorf("filedesc: every channel needs a name")
		}
		if _, dup := declared[ch.Name]; dup {
			return fmt.Errorf("filedesc: channel %q declared twice", ch.Name)
		}
		declared[ch.Name] = struct{}{}
		if ch.Synthetic == nil && d.Rows == 0 && ch.Dataset == "" {
			return fmt.Errorf("filedesc: channel %q has neither a dataset nor synthetic data", ch.Name)
		}
	}
	if len(d.Frames) == 0 {
		return fmt.Errorf("filedesc: the description must declare at least one frame")
	}
	for _, fr := range d.Frames {
		if len(fr.Channels) == 0 {
			return fmt.Errorf("filedesc: frame %q lists no channels", fr.Name)
		}
		for _, name := range fr.Channels {
			if _, ok := declared[name]; !ok {
				return fmt.Errorf("filedesc: frame %q references undeclared channel %q", fr.Name, name)
			}
		}
	}
	return nil
}

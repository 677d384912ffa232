// Package dataset reads member and group records from YAML.
//
// Layout:
//
//	members:
//	  - id: 1
//	    name: ann
//	    lat: 40.7
//	    lon: -74.0
//	    group_ids: [100]
//	groups:
//	  - id: 100
//	    name: go-nyc
//	    organizer_id: 1
//	    rating: 4.5
//	    member_ids: [1, 2]
//
// Unknown keys are rejected. Records are checked later by builder.Ingest.
package dataset

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/socialgraph/builder"
)

// ErrDecode wraps YAML syntax and schema errors.
var ErrDecode = errors.New("dataset: decode")

// Dataset is the decoded file.
type Dataset struct {
	Members []builder.LoadedMember `yaml:"members"`
	Groups  []builder.LoadedGroup  `yaml:"groups"`
}

// Decode reads one YAML document from r. An empty document yields an empty Dataset.
func Decode(r io.Reader) (*Dataset, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	ds := &Dataset{}
	if err := dec.Decode(ds); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	return ds, nil
}

// Load opens path and decodes it.
func Load(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: %w", err)
	}
	defer f.Close()

	ds, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return ds, nil
}

// Package static serves the board from a YAML dataset held in memory.
package static

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"contributorsboard/internal/domain"
)

//go:embed data.yaml
var defaultData []byte

// Load decodes a YAML dataset from r and validates it.
func Load(r io.Reader) (*domain.Dataset, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var ds domain.Dataset
	if err := dec.Decode(&ds); err != nil {
		return nil, fmt.Errorf("decode dataset: %w", err)
	}
	normalize(&ds)
	if err := ds.Validate(); err != nil {
		return nil, err
	}
	return &ds, nil
}

// LoadFile loads and validates the YAML dataset at path.
func LoadFile(path string) (*domain.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Default returns the embedded dataset.
func Default() (*domain.Dataset, error) {
	return Load(bytes.NewReader(defaultData))
}

// normalize replaces nil slices so JSON output and templates see empty lists.
func normalize(ds *domain.Dataset) {
	for _, c := range ds.Contributors {
		if c == nil {
			continue
		}
		if c.Roles == nil {
			c.Roles = []domain.Role{}
		}
		if c.Tweets == nil {
			c.Tweets = []string{}
		}
		if c.Gallery == nil {
			c.Gallery = []domain.GalleryItem{}
		}
	}
	for _, th := range ds.TownHalls {
		if th != nil && th.Awards == nil {
			th.Awards = []domain.Award{}
		}
	}
}

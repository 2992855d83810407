// Package content holds the site's reference data as a static catalogue.
// The embedded catalogue is what the site shows when content is served
// statically, and what `migrate seed` writes into an empty database.
package content

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/kansah/site/internal/model"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// Catalog is an immutable set of features, testimonials and statistics.
// It is safe for concurrent readers; nothing writes to it after Parse.
type Catalog struct {
	Features     []*model.Feature     `yaml:"features"`
	Testimonials []*model.Testimonial `yaml:"testimonials"`
	Stats        *model.Statistics    `yaml:"stats"`
}

var (
	defaultOnce sync.Once
	defaultCat  *Catalog
)

// Default returns the embedded catalogue, parsed once.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := Parse(defaultCatalog)
		if err != nil {
			panic(fmt.Sprintf("content: embedded catalog: %v", err))
		}
		defaultCat = c
	})
	return defaultCat
}

// Load reads a catalogue from a YAML file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("content: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML catalogue. Features and testimonials
// get 1-based ids in file order, matching what a freshly seeded table holds.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("content: decode: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	for i, f := range c.Features {
		f.ID = int64(i + 1)
	}
	for i, t := range c.Testimonials {
		t.ID = int64(i + 1)
	}
	if c.Stats == nil {
		c.Stats = model.ZeroStatistics()
	}
	return &c, nil
}

func (c *Catalog) validate() error {
	for i, f := range c.Features {
		if f == nil || f.Title == "" {
			return fmt.Errorf("content: feature %d: title is required", i+1)
		}
	}
	for i, t := range c.Testimonials {
		if t == nil || t.Name == "" || t.Text == "" {
			return fmt.Errorf("content: testimonial %d: name and text are required", i+1)
		}
		if t.Rating < 1 || t.Rating > 5 {
			return fmt.Errorf("content: testimonial %d: rating %d out of range 1-5", i+1, t.Rating)
		}
	}
	return nil
}

// ListFeatures returns the catalogue's features. Callers must not modify them.
func (c *Catalog) ListFeatures(ctx context.Context) ([]*model.Feature, error) {
	return c.Features, nil
}

// ListTestimonials returns the catalogue's testimonials. Callers must not modify them.
func (c *Catalog) ListTestimonials(ctx context.Context) ([]*model.Testimonial, error) {
	return c.Testimonials, nil
}

// GetStatistics returns a copy of the catalogue's statistics.
func (c *Catalog) GetStatistics(ctx context.Context) (*model.Statistics, error) {
	stats := *c.Stats
	return &stats, nil
}

package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/afero"
	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"

	"github.com/cjrsolutions/cjrweb/internal/domain"
)

//go:embed data/catalog.yaml
var embeddedCatalog []byte

// document is the on-disk shape of a catalog file.
type document struct {
	Services []domain.ServiceSummary         `yaml:"services"`
	Details  map[string]domain.ServiceDetail `yaml:"details"`
}

// Parse decodes a YAML catalog document, normalizes its text and validates it.
// Unknown keys are rejected so a misspelled field does not silently vanish.
func Parse(data []byte) (*Catalog, error) {
	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty catalog document", domain.ErrCatalogInconsistent)
		}
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}

	for i := range doc.Services {
		normalizeSummary(&doc.Services[i])
	}
	for slug, d := range doc.Details {
		normalizeDetail(&d)
		doc.Details[slug] = d
	}

	return New(doc.Services, doc.Details)
}

// Default returns the catalog compiled into the binary.
func Default() (*Catalog, error) {
	return Parse(embeddedCatalog)
}

// MustDefault is Default for wiring code and tests; the embedded catalog is
// validated by the test suite, so a failure here is a build defect.
func MustDefault() *Catalog {
	c, err := Default()
	if err != nil {
		panic(fmt.Sprintf("embedded catalog is invalid: %v", err))
	}
	return c
}

// Load reads the catalog at path from fs. An empty path selects the embedded catalog.
func Load(fs afero.Fs, path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", path, err)
	}

	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return c, nil
}

// Embedded returns the raw embedded catalog document.
func Embedded() []byte {
	return bytes.Clone(embeddedCatalog)
}

func normalize(s string) string {
	return strings.TrimSpace(norm.NFC.String(s))
}

func normalizeAll(items []string) {
	for i := range items {
		items[i] = normalize(items[i])
	}
}

func normalizeSummary(s *domain.ServiceSummary) {
	s.Icon = domain.IconRef(normalize(string(s.Icon)))
	s.Title = normalize(s.Title)
	s.Description = normalize(s.Description)
	s.Slug = normalize(s.Slug)
	normalizeAll(s.Features)
}

func normalizeDetail(d *domain.ServiceDetail) {
	d.Icon = domain.IconRef(normalize(string(d.Icon)))
	d.Title = normalize(d.Title)
	d.Subtitle = normalize(d.Subtitle)
	d.Description = normalize(d.Description)
	d.LongDescription = normalize(d.LongDescription)
	normalizeAll(d.Services)
	normalizeAll(d.Benefits)
	normalizeAll(d.Process)
	normalizeAll(d.Images)
}

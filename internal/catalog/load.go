package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"holoholo/internal/domain"
)

// catalogFile is the on-disk layout shared by TOML and YAML catalogs
type catalogFile struct {
	Categories []domain.Category `toml:"categories" yaml:"categories"`
	Products   []domain.Product  `toml:"products" yaml:"products"`
}

// Load reads a catalog from a .toml, .yaml or .yml file
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	return Parse(filepath.Ext(path), data)
}

// Parse decodes catalog data in the format named by ext
func Parse(ext string, data []byte) (*Catalog, error) {
	var file catalogFile

	switch strings.ToLower(ext) {
	case ".toml":
		if err := toml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("failed to parse catalog: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("failed to parse catalog: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	if len(file.Products) == 0 {
		return nil, fmt.Errorf("%w: no products", ErrInvalidCatalog)
	}

	return New(file.Categories, file.Products)
}

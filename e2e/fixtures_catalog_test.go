//go:build e2e && unix

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// CatalogOption is a function that configures catalog creation
type CatalogOption func(*catalogOptions)

type catalogOptions struct {
	format   string
	products []testProduct
}

type testProduct struct {
	name     string
	price    float64
	stock    int
	category int
}

// AsYAML writes the catalog in YAML instead of TOML
func AsYAML() CatalogOption {
	return func(opts *catalogOptions) {
		opts.format = "yaml"
	}
}

// WithProduct adds a product to the catalog
func WithProduct(name string, price float64, stock, category int) CatalogOption {
	return func(opts *catalogOptions) {
		opts.products = append(opts.products, testProduct{name: name, price: price, stock: stock, category: category})
	}
}

// CreateTestWorkspace creates a temporary directory for config, logs and catalogs
func (tf *TUITestFramework) CreateTestWorkspace() (string, error) {
	workspace, err := os.MkdirTemp("", "holoholo-e2e-*")
	if err != nil {
		return "", fmt.Errorf("failed to create workspace: %w", err)
	}
	tf.workspace = workspace
	return workspace, nil
}

// CreateTestCatalog writes a two-category catalog file into the workspace
func (tf *TUITestFramework) CreateTestCatalog(name string, options ...CatalogOption) (string, error) {
	opts := &catalogOptions{format: "toml"}
	for _, opt := range options {
		opt(opts)
	}
	if len(opts.products) == 0 {
		opts.products = []testProduct{
			{name: "Ukulele", price: 89.5, stock: 4, category: 1},
			{name: "Surfboard", price: 420, stock: 2, category: 2},
			{name: "Surf Wax", price: 6.25, stock: 30, category: 2},
		}
	}

	var b strings.Builder
	switch opts.format {
	case "yaml":
		b.WriteString("categories:\n  - {id: 1, name: Music}\n  - {id: 2, name: Beach}\nproducts:\n")
		for i, p := range opts.products {
			fmt.Fprintf(&b, "  - {id: %d, name: %q, price: %.2f, stock: %d, category_id: %d}\n", i+1, p.name, p.price, p.stock, p.category)
		}
	default:
		b.WriteString("[[categories]]\nid = 1\nname = \"Music\"\n\n[[categories]]\nid = 2\nname = \"Beach\"\n")
		for i, p := range opts.products {
			fmt.Fprintf(&b, "\n[[products]]\nid = %d\nname = %q\nprice = %.2f\nstock = %d\ncategory_id = %d\n", i+1, p.name, p.price, p.stock, p.category)
		}
	}

	if tf.workspace == "" {
		if _, err := tf.CreateTestWorkspace(); err != nil {
			return "", err
		}
	}
	path := filepath.Join(tf.workspace, name+"."+opts.format)
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return "", fmt.Errorf("failed to write catalog: %w", err)
	}
	return path, nil
}

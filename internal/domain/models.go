package domain

import "time"

// Category groups products in the catalog
type Category struct {
	ID          int    `toml:"id" yaml:"id"`
	Name        string `toml:"name" yaml:"name"`
	Description string `toml:"description" yaml:"description"`
}

// Product is a catalog item
type Product struct {
	ID          int       `toml:"id" yaml:"id"`
	Name        string    `toml:"name" yaml:"name"`
	Description string    `toml:"description" yaml:"description"`
	Price       float64   `toml:"price" yaml:"price"`
	Stock       int       `toml:"stock" yaml:"stock"`
	CategoryID  int       `toml:"category_id" yaml:"category_id"`
	ImageURL    string    `toml:"image_url" yaml:"image_url"`
	CreatedAt   time.Time `toml:"created_at" yaml:"created_at"`
	Rating      float64   `toml:"rating" yaml:"rating"`             // average review score, 0 if unrated
	ReviewCount int       `toml:"review_count" yaml:"review_count"` // number of reviews behind Rating
	Reviews     []int     `toml:"reviews" yaml:"reviews"`           // individual 1-5 scores; when set they override Rating
}

// InStock reports whether at least one unit is available
func (p Product) InStock() bool {
	return p.Stock > 0
}

// CartLine is one product entry in the shopping cart
type CartLine struct {
	ProductID int
	Quantity  int
}

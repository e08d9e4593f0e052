package catalog

import (
	"time"

	"holoholo/internal/domain"
)

var seedEpoch = time.Date(2024, time.January, 1, 9, 0, 0, 0, time.UTC)

// Seed returns the built-in demo catalog
func Seed() *Catalog {
	categories := []domain.Category{
		{ID: 1, Name: "Electronics", Description: "Electronic devices and gadgets"},
		{ID: 2, Name: "Clothing", Description: "Fashion and apparel"},
		{ID: 3, Name: "Books", Description: "Books and literature"},
		{ID: 4, Name: "Home & Garden", Description: "Home improvement and garden supplies"},
		{ID: 5, Name: "Sports", Description: "Sports equipment and accessories"},
	}

	products := []domain.Product{
		{ID: 1, Name: "Smartphone X", Description: "Latest smartphone with advanced features", Price: 599.99, Stock: 50, CategoryID: 1, Rating: 4.5, ReviewCount: 12},
		{ID: 2, Name: "Laptop Pro", Description: "High-performance laptop for professionals", Price: 1299.99, Stock: 25, CategoryID: 1, Rating: 4.8, ReviewCount: 31},
		{ID: 3, Name: "Wireless Headphones", Description: "Premium wireless headphones with noise cancellation", Price: 199.99, Stock: 100, CategoryID: 1, Rating: 4.2, ReviewCount: 18},
		{ID: 4, Name: "Men's T-Shirt", Description: "Comfortable cotton t-shirt", Price: 24.99, Stock: 200, CategoryID: 2, Rating: 3.9, ReviewCount: 7},
		{ID: 5, Name: "Women's Dress", Description: "Elegant summer dress", Price: 89.99, Stock: 75, CategoryID: 2, Rating: 4.4, ReviewCount: 9},
		{ID: 6, Name: "Running Shoes", Description: "Professional running shoes", Price: 129.99, Stock: 60, CategoryID: 5, Rating: 4.6, ReviewCount: 22},
		{ID: 7, Name: "Garden Tool Set", Description: "Complete set of garden tools", Price: 79.99, Stock: 40, CategoryID: 4, Rating: 4.0, ReviewCount: 5},
		{ID: 8, Name: "Programming Book", Description: "Learn Python programming", Price: 39.99, Stock: 80, CategoryID: 3},
	}
	for i := range products {
		products[i].CreatedAt = seedEpoch.Add(time.Duration(i) * time.Minute)
	}

	c, err := New(categories, products)
	if err != nil {
		panic(err)
	}
	return c
}

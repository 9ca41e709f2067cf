package model

import (
	"time"

	"github.com/google/uuid"
)

// Category is the book category of a product.
type Category string

// Book categories recognised by the catalogue.
const (
	CategoryFiction         Category = "Fiction"
	CategoryScience         Category = "Science"
	CategorySelfDevelopment Category = "SelfDevelopment"
	CategoryPoetry          Category = "Poetry"
	CategoryReligious       Category = "Religious"
)

// Valid reports whether c is one of the recognised book categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryFiction, CategoryScience, CategorySelfDevelopment, CategoryPoetry, CategoryReligious:
		return true
	}
	return false
}

// Product represents a book in the catalogue.
//
// InStock is derived state: it is true exactly when Quantity > 0, and the
// service layer recomputes it on every write.
type Product struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Author      string    `json:"author" db:"author"`
	Price       float64   `json:"price" db:"price"`
	Category    Category  `json:"category" db:"category"`
	Description string    `json:"description" db:"description"`
	Quantity    int       `json:"quantity" db:"quantity"`
	InStock     bool      `json:"inStock" db:"in_stock"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

// CreateProductRequest represents the payload for creating a book. An inStock
// value is accepted for compatibility with existing clients, but the stored
// value is always derived from Quantity.
type CreateProductRequest struct {
	Title       string   `json:"title"`
	Author      string   `json:"author"`
	Price       float64  `json:"price"`
	Category    Category `json:"category"`
	Description string   `json:"description"`
	Quantity    int      `json:"quantity"`
	InStock     *bool    `json:"inStock,omitempty"`
}

// UpdateProductRequest represents a partial update of a book. Nil fields are
// left unchanged.
type UpdateProductRequest struct {
	Title       *string   `json:"title,omitempty"`
	Author      *string   `json:"author,omitempty"`
	Price       *float64  `json:"price,omitempty"`
	Category    *Category `json:"category,omitempty"`
	Description *string   `json:"description,omitempty"`
	Quantity    *int      `json:"quantity,omitempty"`
	InStock     *bool     `json:"inStock,omitempty"`
}

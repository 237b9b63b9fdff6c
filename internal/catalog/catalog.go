// Package catalog holds the static gold product catalog. Products are
// defined at build time and never mutated.
package catalog

import "goldshop/internal/domain"

// Catalog answers read-only queries over the product list.
type Catalog struct {
	products []domain.Product
	byID     map[string]int
}

// New builds a catalog over the given products. The builtin shop
// assortment is available via Default.
func New(products []domain.Product) *Catalog {
	byID := make(map[string]int, len(products))
	for i, p := range products {
		byID[p.ID] = i
	}
	return &Catalog{products: products, byID: byID}
}

// Default returns the catalog of the builtin shop assortment.
func Default() *Catalog {
	return New(goldProducts)
}

// List returns all products in catalog order.
func (c *Catalog) List() []domain.Product {
	out := make([]domain.Product, len(c.products))
	copy(out, c.products)
	return out
}

// Get returns the product with the given id.
func (c *Catalog) Get(id string) (domain.Product, bool) {
	i, ok := c.byID[id]
	if !ok {
		return domain.Product{}, false
	}
	return c.products[i], true
}

// ByCategory returns products of the given category in catalog order.
func (c *Catalog) ByCategory(category domain.Category) []domain.Product {
	var out []domain.Product
	for _, p := range c.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// Featured returns the first n products, used by the quick-order view.
func (c *Catalog) Featured(n int) []domain.Product {
	if n > len(c.products) {
		n = len(c.products)
	}
	out := make([]domain.Product, n)
	copy(out, c.products[:n])
	return out
}

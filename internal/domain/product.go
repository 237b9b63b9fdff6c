package domain

// Category classifies a catalog product.
type Category string

const (
	CategoryRing     Category = "ring"
	CategoryBracelet Category = "bracelet"
	CategoryNecklace Category = "necklace"
	CategoryCoin     Category = "coin"
	CategoryEarring  Category = "earring"
	CategoryBar      Category = "bar"
)

// Valid reports whether the category is one of the fixed set.
func (c Category) Valid() bool {
	switch c {
	case CategoryRing, CategoryBracelet, CategoryNecklace, CategoryCoin, CategoryEarring, CategoryBar:
		return true
	}
	return false
}

// Purities lists the karat grades sold in the shop.
var Purities = []int{18, 21, 22, 24}

// Product is a catalog entry. Products are immutable once defined;
// prices are in rial (smallest currency unit).
type Product struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Image    string   `json:"image"`
	Weight   float64  `json:"weight"` // grams
	Purity   int      `json:"purity"` // karats
	Price    int64    `json:"price"`
	Note     string   `json:"note,omitempty"`
	Category Category `json:"category"`
}

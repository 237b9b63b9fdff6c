package domain

import "time"

// CartItem is a product the shopper intends to purchase. It is owned
// exclusively by the cart store; callers receive copies.
type CartItem struct {
	Product  Product   `json:"product"`
	Quantity int       `json:"quantity"`
	AddedAt  time.Time `json:"addedAt"`
}

// CartState is a snapshot of a cart. Items keep insertion order and the
// totals always equal the fold over the item list.
type CartState struct {
	Items      []CartItem `json:"items"`
	TotalItems int        `json:"totalItems"`
	TotalPrice int64      `json:"totalPrice"`
}

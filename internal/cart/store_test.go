package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goldshop/internal/domain"
)

var (
	ring = domain.Product{
		ID:       "p1",
		Name:     "حلقه طلای ۱۸ عیار",
		Weight:   5.2,
		Purity:   18,
		Price:    155990000,
		Category: domain.CategoryRing,
	}
	coin = domain.Product{
		ID:       "p2",
		Name:     "سکه طلای ۲۴ عیار",
		Weight:   31.1,
		Purity:   24,
		Price:    725000000,
		Category: domain.CategoryCoin,
	}
)

// assertTotalsConsistent checks the store invariant: the incrementally
// maintained totals equal a full recomputation over the item list.
func assertTotalsConsistent(t *testing.T, state domain.CartState) {
	t.Helper()
	items := 0
	var price int64
	for _, it := range state.Items {
		items += it.Quantity
		price += it.Product.Price * int64(it.Quantity)
	}
	assert.Equal(t, items, state.TotalItems)
	assert.Equal(t, price, state.TotalPrice)
}

func TestStore_AddNewAndRepeated(t *testing.T) {
	s := NewStore()

	state := s.Add(ring)
	require.Len(t, state.Items, 1)
	assert.Equal(t, 1, state.Items[0].Quantity)
	assert.Equal(t, 1, state.TotalItems)
	assert.Equal(t, ring.Price, state.TotalPrice)

	state = s.Add(ring)
	require.Len(t, state.Items, 1)
	assert.Equal(t, 2, state.Items[0].Quantity)
	assert.Equal(t, 2, state.TotalItems)
	assert.Equal(t, 2*ring.Price, state.TotalPrice)

	state = s.Add(coin)
	require.Len(t, state.Items, 2)
	assert.Equal(t, 3, state.TotalItems)
	assertTotalsConsistent(t, state)
}

func TestStore_AddKeepsInsertionOrder(t *testing.T) {
	s := NewStore()
	s.Add(coin)
	s.Add(ring)
	s.Add(coin)

	state := s.State()
	require.Len(t, state.Items, 2)
	assert.Equal(t, "p2", state.Items[0].Product.ID)
	assert.Equal(t, "p1", state.Items[1].Product.ID)
}

func TestStore_TotalItemsEqualsAddCalls(t *testing.T) {
	s := NewStore()
	for i := 0; i < 7; i++ {
		s.Add(ring)
	}
	for i := 0; i < 3; i++ {
		s.Add(coin)
	}

	state := s.State()
	assert.Equal(t, 10, state.TotalItems)
	require.Len(t, state.Items, 2)
	assert.Equal(t, 7, state.Items[0].Quantity)
	assert.Equal(t, 3, state.Items[1].Quantity)
	assertTotalsConsistent(t, state)
}

func TestStore_Remove(t *testing.T) {
	s := NewStore()
	s.Add(ring)
	s.Add(ring)
	s.Add(coin)

	state := s.Remove("p1")
	require.Len(t, state.Items, 1)
	assert.Equal(t, "p2", state.Items[0].Product.ID)
	assert.Equal(t, 1, state.TotalItems)
	assert.Equal(t, coin.Price, state.TotalPrice)
	assertTotalsConsistent(t, state)
}

func TestStore_RemoveAbsentIsNoOp(t *testing.T) {
	s := NewStore()
	s.Add(ring)
	before := s.State()

	after := s.Remove("missing")
	assert.Equal(t, before, after)
}

func TestStore_UpdateQuantity(t *testing.T) {
	s := NewStore()
	s.Add(ring)
	s.Add(coin)

	state := s.UpdateQuantity("p1", 5)
	assert.Equal(t, 5, state.Items[0].Quantity)
	assert.Equal(t, 6, state.TotalItems)
	assert.Equal(t, 5*ring.Price+coin.Price, state.TotalPrice)
	assertTotalsConsistent(t, state)

	state = s.UpdateQuantity("p1", 2)
	assert.Equal(t, 2, state.Items[0].Quantity)
	assert.Equal(t, 3, state.TotalItems)
	assertTotalsConsistent(t, state)
}

func TestStore_UpdateQuantityZeroEqualsRemove(t *testing.T) {
	a := NewStore()
	b := NewStore()
	for _, s := range []*Store{a, b} {
		s.Add(ring)
		s.Add(coin)
	}

	viaUpdate := a.UpdateQuantity("p1", 0)
	viaRemove := b.Remove("p1")

	assert.Equal(t, viaRemove.TotalItems, viaUpdate.TotalItems)
	assert.Equal(t, viaRemove.TotalPrice, viaUpdate.TotalPrice)
	require.Len(t, viaUpdate.Items, 1)
	assert.Equal(t, "p2", viaUpdate.Items[0].Product.ID)
}

func TestStore_UpdateQuantityAbsentIsNoOp(t *testing.T) {
	s := NewStore()
	s.Add(ring)
	before := s.State()

	after := s.UpdateQuantity("missing", 4)
	assert.Equal(t, before, after)
}

func TestStore_Clear(t *testing.T) {
	s := NewStore()
	s.Add(ring)
	s.Add(coin)
	s.Add(coin)

	state := s.Clear()
	assert.Empty(t, state.Items)
	assert.Equal(t, 0, state.TotalItems)
	assert.Equal(t, int64(0), state.TotalPrice)

	// Clearing an empty cart is fine too.
	state = s.Clear()
	assert.Empty(t, state.Items)
}

func TestStore_Contains(t *testing.T) {
	s := NewStore()
	assert.False(t, s.Contains("p1"))

	s.Add(ring)
	assert.True(t, s.Contains("p1"))
	assert.False(t, s.Contains("p2"))

	s.Remove("p1")
	assert.False(t, s.Contains("p1"))
}

func TestStore_InvariantAcrossMixedOperations(t *testing.T) {
	s := NewStore()

	ops := []func(){
		func() { s.Add(ring) },
		func() { s.Add(coin) },
		func() { s.Add(ring) },
		func() { s.UpdateQuantity("p2", 9) },
		func() { s.Remove("p1") },
		func() { s.Add(ring) },
		func() { s.UpdateQuantity("p1", 3) },
		func() { s.UpdateQuantity("p2", 0) },
	}

	for _, op := range ops {
		op()
		assertTotalsConsistent(t, s.State())
	}
}

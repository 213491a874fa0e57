package cartstore

import (
	"sync"
	"testing"

	"smartpos/src/checkout/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartStore_GetCreatesAndReuses(t *testing.T) {
	store := NewCartStore()

	cart := store.Get("caja-1")
	require.NotNil(t, cart)
	assert.Same(t, cart, store.Get("caja-1"), "misma terminal, mismo carrito")
	assert.NotSame(t, cart, store.Get("caja-2"), "cada terminal tiene su propio carrito")
}

func TestCartStore_ResetReplacesCart(t *testing.T) {
	store := NewCartStore()

	cart := store.Get("caja-1")
	require.NoError(t, cart.AddProduct(uuid.New(), "A", decimal.NewFromInt(10), 5, 1))

	fresh := store.Reset("caja-1")

	assert.NotSame(t, cart, fresh)
	assert.True(t, fresh.IsEmpty())
	assert.Same(t, fresh, store.Get("caja-1"))
}

func TestCartStore_ConcurrentGetSameTerminal(t *testing.T) {
	store := NewCartStore()

	const goroutines = 50
	carts := make([]*entity.Cart, goroutines)

	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			carts[i] = store.Get("caja-1")
		}(i)
	}
	wg.Wait()

	for i := 1; i < goroutines; i++ {
		assert.Same(t, carts[0], carts[i], "Get concurrente debe resolver al mismo carrito")
	}
}

package cartstore

import (
	"sync"

	"smartpos/src/checkout/domain/entity"
)

// CartStore mantiene en memoria el carrito activo de cada terminal
// Los carritos son transitorios: si el proceso se reinicia, se pierden,
// lo cual es aceptable porque un checkout abandonado no persiste nada
type CartStore struct {
	carts map[string]*entity.Cart
	mu    sync.RWMutex
}

// NewCartStore crea un store vacío
func NewCartStore() *CartStore {
	return &CartStore{
		carts: make(map[string]*entity.Cart),
	}
}

// Get retorna el carrito del terminal, creándolo si no existe
func (s *CartStore) Get(terminalID string) *entity.Cart {
	s.mu.RLock()
	cart, ok := s.carts[terminalID]
	s.mu.RUnlock()
	if ok {
		return cart
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if cart, ok := s.carts[terminalID]; ok {
		return cart
	}
	cart = entity.NewCart()
	s.carts[terminalID] = cart
	return cart
}

// Reset reemplaza el carrito del terminal por uno nuevo y lo retorna
func (s *CartStore) Reset(terminalID string) *entity.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	cart := entity.NewCart()
	s.carts[terminalID] = cart
	return cart
}

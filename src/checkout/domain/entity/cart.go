package entity

import (
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartState representa el estado del carrito dentro de un intento de checkout
type CartState string

const (
	CartIdle       CartState = "IDLE"
	CartActive     CartState = "ACTIVE"
	CartCommitting CartState = "COMMITTING"
	CartCompleted  CartState = "COMPLETED"
	CartFailed     CartState = "FAILED"
)

// CartLine representa una línea del carrito: snapshot del producto + cantidad
// El precio se captura al momento del add y NO se vuelve a leer del producto
type CartLine struct {
	ProductID   uuid.UUID       `json:"product_id"`
	ProductName string          `json:"product_name"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Quantity    int             `json:"quantity"`
}

// Subtotal calcula el subtotal de la línea
func (l CartLine) Subtotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart carrito transitorio de una sesión de caja
// Las líneas se indexan por product_id: agregar el mismo producto dos veces
// incrementa la cantidad, nunca crea una línea duplicada
// El mutex es del carrito mismo: varios handlers concurrentes pueden operar
// sobre la misma terminal
type Cart struct {
	mu    sync.Mutex
	lines []CartLine
	index map[uuid.UUID]int
	state CartState
}

// NewCart crea un carrito vacío en estado IDLE
func NewCart() *Cart {
	return &Cart{
		index: make(map[uuid.UUID]int),
		state: CartIdle,
	}
}

// AddProduct agrega un producto al carrito
// Rechaza productos sin stock solamente en el primer add; los incrementos
// posteriores son aditivos y no se recortan contra el stock vivo
func (c *Cart) AddProduct(productID uuid.UUID, name string, unitPrice decimal.Decimal, stockQuantity, qty int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == CartCompleted || c.state == CartCommitting {
		return ErrCartAlreadyCommitted
	}
	if productID == uuid.Nil {
		return ErrProductRequired
	}
	if qty <= 0 {
		return ErrInvalidQuantity
	}
	if unitPrice.LessThan(decimal.Zero) {
		return ErrInvalidPrice
	}

	if pos, ok := c.index[productID]; ok {
		c.lines[pos].Quantity += qty
		return nil
	}

	if stockQuantity <= 0 {
		return ErrProductOutOfStock
	}

	c.index[productID] = len(c.lines)
	c.lines = append(c.lines, CartLine{
		ProductID:   productID,
		ProductName: name,
		UnitPrice:   unitPrice,
		Quantity:    qty,
	})
	c.state = CartActive
	return nil
}

// Lines retorna una copia de las líneas en orden de inserción
func (c *Cart) Lines() []CartLine {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// Total calcula el total del carrito: Σ (precio × cantidad)
func (c *Cart) Total() decimal.Decimal {
	c.mu.Lock()
	defer c.mu.Unlock()

	total := decimal.Zero
	for _, l := range c.lines {
		total = total.Add(l.Subtotal())
	}
	return total
}

// IsEmpty indica si el carrito no tiene líneas
func (c *Cart) IsEmpty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.lines) == 0
}

// State retorna el estado actual del carrito
func (c *Cart) State() CartState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// BeginCommit transiciona ACTIVE → COMMITTING
// Precondición: carrito no vacío. Un segundo commit concurrente sobre la misma
// terminal se rechaza acá, no más abajo
func (c *Cart) BeginCommit() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == CartCommitting || c.state == CartCompleted {
		return ErrCartAlreadyCommitted
	}
	if len(c.lines) == 0 {
		return ErrEmptyCart
	}
	c.state = CartCommitting
	return nil
}

// Complete transiciona COMMITTING → COMPLETED y vacía el carrito
func (c *Cart) Complete() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.lines = nil
	c.index = make(map[uuid.UUID]int)
	c.state = CartCompleted
}

// Fail transiciona COMMITTING → FAILED
// Las líneas quedan intactas para permitir un reintento manual
func (c *Cart) Fail() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = CartFailed
}

// Clear descarta las líneas y vuelve a IDLE (checkout abandonado)
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.lines = nil
	c.index = make(map[uuid.UUID]int)
	c.state = CartIdle
}

package entity

import "errors"

var (
	ErrEmptyCart            = errors.New("cart must have at least one item")
	ErrProductRequired      = errors.New("product is required")
	ErrProductOutOfStock    = errors.New("product is out of stock")
	ErrInvalidQuantity      = errors.New("quantity must be greater than 0")
	ErrInvalidPrice         = errors.New("unit_price must be greater than or equal to 0")
	ErrSaleMustHaveItems    = errors.New("sale must have at least one item")
	ErrCartAlreadyCommitted = errors.New("cart was already committed")
)

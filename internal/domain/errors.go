package domain

import (
	"errors"
	"fmt"
)

var (
	ErrUserNotFound           = errors.New("user not found")
	ErrCategoryNotFound       = errors.New("category not found")
	ErrCityNotFound           = errors.New("city not found")
	ErrEventNotFound          = errors.New("event not found")
	ErrTicketCategoryNotFound = errors.New("ticket category not found")
	ErrTicketBatchNotFound    = errors.New("ticket batch not found")
	ErrTicketNotFound         = errors.New("ticket not found")
	ErrOrderNotFound          = errors.New("order not found")
)

var (
	ErrUsernameTaken      = errors.New("username is already taken")
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

var (
	ErrValidation = errors.New("validation error")
	ErrNotOwner   = errors.New("resource belongs to another seller")
)

// ErrInsufficientInventory is the errors.Is target for
// InsufficientInventoryError.
var ErrInsufficientInventory = errors.New("insufficient inventory")

// InsufficientInventoryError is returned when a purchase asks for more
// units than a batch has left. Available carries the current counter so
// the caller can retry with a smaller quantity.
type InsufficientInventoryError struct {
	Available int
}

func (e *InsufficientInventoryError) Error() string {
	return fmt.Sprintf("insufficient inventory: %d available", e.Available)
}

func (e *InsufficientInventoryError) Is(target error) bool {
	return target == ErrInsufficientInventory
}

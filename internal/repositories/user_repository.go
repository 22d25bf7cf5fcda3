package repositories

import (
	"errors"

	"github.com/Jajanan-pasar/web/internal/models"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrDatabaseOperation = errors.New("database operation failed")
)

// UserRepository defines the customer lookups this subsystem needs. The
// customer entity itself is owned by the storefront; the admin wallet panel
// only reads it and adjusts the stored balance.
type UserRepository interface {
	// GetByID retrieves a customer by their ID.
	GetByID(id uint) (*models.User, error)

	// Exists reports whether a customer with the given ID exists.
	Exists(id uint) (bool, error)
}

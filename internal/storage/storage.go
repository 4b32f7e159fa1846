// Package storage defines the Storage interface: the contract any
// database backend must satisfy to serve the employees API.
//
// Handlers depend only on this interface, so the SQLite and PostgreSQL
// backends are interchangeable and tests can pass a fake.
package storage

import (
	"context"
	"errors"

	"github.com/aanand-mishra/employees-api/internal/types"
)

// ErrNotFound is returned when no row matches the requested identifier.
var ErrNotFound = errors.New("employee not found")

// Storage is the database contract. Every method issues exactly one
// parameter-bound SQL statement.
type Storage interface {
	// CreateEmployee inserts a new employee and returns the identifier
	// generated by the store.
	CreateEmployee(ctx context.Context, employee types.Employee) (int64, error)

	// GetEmployeeByID fetches a single employee by primary key.
	// Returns ErrNotFound if no row matches.
	GetEmployeeByID(ctx context.Context, id int64) (types.Employee, error)

	// GetEmployees returns every employee. Returns an empty slice (not nil)
	// if the table is empty.
	GetEmployees(ctx context.Context) ([]types.Employee, error)

	// UpdateEmployeeByID replaces all four writable fields of the row and
	// returns the number of affected rows. A missing row is not an error.
	UpdateEmployeeByID(ctx context.Context, id int64, employee types.Employee) (int64, error)

	// DeleteEmployeeByID removes the row and returns the number of
	// affected rows.
	DeleteEmployeeByID(ctx context.Context, id int64) (int64, error)

	// Ping verifies the store is reachable.
	Ping(ctx context.Context) error

	// Close releases the connection pool.
	Close() error
}

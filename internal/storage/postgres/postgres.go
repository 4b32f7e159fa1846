// Package postgres provides a PostgreSQL implementation of
// storage.Storage on top of a pgx connection pool. The schema is
// managed by the goose migrations under migrations/.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aanand-mishra/employees-api/internal/metrics"
	"github.com/aanand-mishra/employees-api/internal/storage"
	"github.com/aanand-mishra/employees-api/internal/types"
	"github.com/jackc/pgx/v5"
)

const (
	insertEmployeeQuery = `
		INSERT INTO employees ("EmployeeName", "MobileNumber", "Department", "Salary")
		VALUES ($1, $2, $3, $4)
		RETURNING "EmployeeID";
	`
	getEmployeeByIDQuery = `SELECT "EmployeeID", "EmployeeName", "MobileNumber", "Department", "Salary" ` +
		`FROM employees WHERE "EmployeeID" = $1`
	getEmployeesQuery = `SELECT "EmployeeID", "EmployeeName", "MobileNumber", "Department", "Salary" ` +
		`FROM employees ORDER BY "EmployeeID"`
	updateEmployeeQuery = `
		UPDATE employees
		SET "EmployeeName" = $2, "MobileNumber" = $3, "Department" = $4, "Salary" = $5
		WHERE "EmployeeID" = $1;
	`
	deleteEmployeeQuery = `DELETE FROM employees WHERE "EmployeeID" = $1`
)

// Repository is the PostgreSQL-backed storage.Storage.
type Repository struct {
	db      Database
	metrics *metrics.Metrics
}

// New wraps db. m may be nil, in which case no query metrics are recorded.
func New(db Database, m *metrics.Metrics) *Repository {
	return &Repository{db: db, metrics: m}
}

func (r *Repository) observe(queryType string, start time.Time, err error) {
	if errors.Is(err, storage.ErrNotFound) {
		err = nil
	}
	r.metrics.ObserveQuery(queryType, start, err)
}

// CreateEmployee inserts a new employee and returns the generated identifier.
func (r *Repository) CreateEmployee(ctx context.Context, employee types.Employee) (id int64, err error) {
	defer func(start time.Time) { r.observe("create_employee", start, err) }(time.Now())

	err = r.db.QueryRow(ctx, insertEmployeeQuery,
		employee.EmployeeName, employee.MobileNumber, employee.Department, string(employee.Salary),
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to save employee: %w", err)
	}

	return id, nil
}

// GetEmployeeByID retrieves an employee by identifier.
func (r *Repository) GetEmployeeByID(ctx context.Context, id int64) (result types.Employee, err error) {
	defer func(start time.Time) { r.observe("get_employee_by_id", start, err) }(time.Now())

	var salary string
	err = r.db.QueryRow(ctx, getEmployeeByIDQuery, id).Scan(
		&result.EmployeeID, &result.EmployeeName, &result.MobileNumber, &result.Department, &salary)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return types.Employee{}, fmt.Errorf("no employee found with id %d: %w", id, storage.ErrNotFound)
		}
		return types.Employee{}, fmt.Errorf("failed to get employee by id: %w", err)
	}
	result.Salary = types.Salary(salary)

	return result, nil
}

// GetEmployees returns every employee ordered by identifier.
func (r *Repository) GetEmployees(ctx context.Context) (employees []types.Employee, err error) {
	defer func(start time.Time) { r.observe("get_employees", start, err) }(time.Now())

	rows, err := r.db.Query(ctx, getEmployeesQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to get employees: %w", err)
	}
	defer rows.Close()

	employees = make([]types.Employee, 0)
	for rows.Next() {
		var (
			employee types.Employee
			salary   string
		)
		if err = rows.Scan(&employee.EmployeeID, &employee.EmployeeName, &employee.MobileNumber,
			&employee.Department, &salary); err != nil {
			return nil, fmt.Errorf("failed to scan employee row: %w", err)
		}
		employee.Salary = types.Salary(salary)
		employees = append(employees, employee)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate employee rows: %w", err)
	}

	return employees, nil
}

// UpdateEmployeeByID replaces the writable fields and returns the number
// of affected rows.
func (r *Repository) UpdateEmployeeByID(ctx context.Context, id int64, employee types.Employee) (n int64, err error) {
	defer func(start time.Time) { r.observe("update_employee", start, err) }(time.Now())

	tag, err := r.db.Exec(ctx, updateEmployeeQuery,
		id, employee.EmployeeName, employee.MobileNumber, employee.Department, string(employee.Salary))
	if err != nil {
		return 0, fmt.Errorf("failed to update employee data: %w", err)
	}

	return tag.RowsAffected(), nil
}

// DeleteEmployeeByID removes an employee and returns the number of
// affected rows.
func (r *Repository) DeleteEmployeeByID(ctx context.Context, id int64) (n int64, err error) {
	defer func(start time.Time) { r.observe("delete_employee", start, err) }(time.Now())

	tag, err := r.db.Exec(ctx, deleteEmployeeQuery, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete employee: %w", err)
	}

	return tag.RowsAffected(), nil
}

// Ping checks the pool can reach the server.
func (r *Repository) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}

// Close closes the pool.
func (r *Repository) Close() error {
	r.db.Close()
	return nil
}

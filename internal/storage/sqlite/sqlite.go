// Package sqlite provides a SQLite-backed implementation of the
// storage.Storage interface using Go's standard database/sql package.
//
// The blank import below registers the sqlite3 driver with database/sql.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/aanand-mishra/employees-api/internal/metrics"
	"github.com/aanand-mishra/employees-api/internal/storage"
	"github.com/aanand-mishra/employees-api/internal/types"

	// Registers the "sqlite3" driver.
	_ "github.com/mattn/go-sqlite3"
)

// SQLite is the concrete implementation of storage.Storage.
// It holds a *sql.DB which is a connection pool managed by database/sql;
// every statement acquires a connection and releases it on return.
type SQLite struct {
	Db      *sql.DB
	metrics *metrics.Metrics
}

const createTable = `
	CREATE TABLE IF NOT EXISTS employees (
		EmployeeID   INTEGER PRIMARY KEY AUTOINCREMENT,
		EmployeeName TEXT    NOT NULL,
		MobileNumber TEXT    NOT NULL,
		Department   TEXT    NOT NULL,
		Salary       TEXT    NOT NULL
	)
`

// New opens the SQLite database at path, creates the employees table if
// it does not already exist, and returns a ready-to-use *SQLite.
// m may be nil, in which case no query metrics are recorded.
func New(path string, m *metrics.Metrics) (*SQLite, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("sqlite.New: create storage dir: %w", err)
		}
	}

	// sql.Open only validates the driver name and DSN; the first real
	// connection happens on the first query.
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite.New: open db: %w", err)
	}

	if _, err = db.Exec(createTable); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite.New: create table: %w", err)
	}

	return &SQLite{Db: db, metrics: m}, nil
}

// observe records query timing; a missing row is an answer, not a failure.
func (s *SQLite) observe(queryType string, start time.Time, err error) {
	if errors.Is(err, storage.ErrNotFound) {
		err = nil
	}
	s.metrics.ObserveQuery(queryType, start, err)
}

// ─────────────────────────────────────────────────────────────────────────────
// CreateEmployee inserts a new row into the employees table.
//
// The ? placeholders are bound by the driver, so the values are never
// spliced into the SQL text.
// ─────────────────────────────────────────────────────────────────────────────
func (s *SQLite) CreateEmployee(ctx context.Context, employee types.Employee) (lastID int64, err error) {
	defer func(start time.Time) { s.observe("create_employee", start, err) }(time.Now())

	stmt, err := s.Db.PrepareContext(ctx,
		"INSERT INTO employees (EmployeeName, MobileNumber, Department, Salary) VALUES (?, ?, ?, ?)",
	)
	if err != nil {
		return 0, fmt.Errorf("CreateEmployee: prepare: %w", err)
	}
	defer stmt.Close()

	result, err := stmt.ExecContext(ctx,
		employee.EmployeeName, employee.MobileNumber, employee.Department, string(employee.Salary))
	if err != nil {
		return 0, fmt.Errorf("CreateEmployee: exec: %w", err)
	}

	lastID, err = result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("CreateEmployee: last insert id: %w", err)
	}

	return lastID, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// GetEmployeeByID fetches exactly one employee row matched by primary key.
// sql.ErrNoRows surfaces from Scan and is translated to storage.ErrNotFound.
// ─────────────────────────────────────────────────────────────────────────────
func (s *SQLite) GetEmployeeByID(ctx context.Context, id int64) (employee types.Employee, err error) {
	defer func(start time.Time) { s.observe("get_employee_by_id", start, err) }(time.Now())

	stmt, err := s.Db.PrepareContext(ctx,
		"SELECT EmployeeID, EmployeeName, MobileNumber, Department, Salary FROM employees WHERE EmployeeID = ? LIMIT 1",
	)
	if err != nil {
		return types.Employee{}, fmt.Errorf("GetEmployeeByID: prepare: %w", err)
	}
	defer stmt.Close()

	err = stmt.QueryRowContext(ctx, id).Scan(
		&employee.EmployeeID,
		&employee.EmployeeName,
		&employee.MobileNumber,
		&employee.Department,
		&employee.Salary,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.Employee{}, fmt.Errorf("no employee found with id %d: %w", id, storage.ErrNotFound)
		}
		return types.Employee{}, fmt.Errorf("GetEmployeeByID: scan: %w", err)
	}

	return employee, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// GetEmployees returns all employee rows in identifier order.
// ─────────────────────────────────────────────────────────────────────────────
func (s *SQLite) GetEmployees(ctx context.Context) (employees []types.Employee, err error) {
	defer func(start time.Time) { s.observe("get_employees", start, err) }(time.Now())

	stmt, err := s.Db.PrepareContext(ctx,
		"SELECT EmployeeID, EmployeeName, MobileNumber, Department, Salary FROM employees ORDER BY EmployeeID",
	)
	if err != nil {
		return nil, fmt.Errorf("GetEmployees: prepare: %w", err)
	}
	defer stmt.Close()

	rows, err := stmt.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("GetEmployees: query: %w", err)
	}
	defer rows.Close()

	employees = make([]types.Employee, 0)

	for rows.Next() {
		var employee types.Employee

		if err = rows.Scan(
			&employee.EmployeeID,
			&employee.EmployeeName,
			&employee.MobileNumber,
			&employee.Department,
			&employee.Salary,
		); err != nil {
			return nil, fmt.Errorf("GetEmployees: scan row: %w", err)
		}

		employees = append(employees, employee)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("GetEmployees: rows iteration: %w", err)
	}

	return employees, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// UpdateEmployeeByID replaces all four writable fields and reports how many
// rows matched. Zero means the identifier does not exist.
// ─────────────────────────────────────────────────────────────────────────────
func (s *SQLite) UpdateEmployeeByID(ctx context.Context, id int64, employee types.Employee) (affected int64, err error) {
	defer func(start time.Time) { s.observe("update_employee", start, err) }(time.Now())

	stmt, err := s.Db.PrepareContext(ctx,
		"UPDATE employees SET EmployeeName = ?, MobileNumber = ?, Department = ?, Salary = ? WHERE EmployeeID = ?",
	)
	if err != nil {
		return 0, fmt.Errorf("UpdateEmployeeByID: prepare: %w", err)
	}
	defer stmt.Close()

	// Argument order matches the ? order in the SQL.
	result, err := stmt.ExecContext(ctx,
		employee.EmployeeName, employee.MobileNumber, employee.Department, string(employee.Salary), id)
	if err != nil {
		return 0, fmt.Errorf("UpdateEmployeeByID: exec: %w", err)
	}

	affected, err = result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("UpdateEmployeeByID: rows affected: %w", err)
	}

	return affected, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// DeleteEmployeeByID removes an employee row by primary key.
// ─────────────────────────────────────────────────────────────────────────────
func (s *SQLite) DeleteEmployeeByID(ctx context.Context, id int64) (affected int64, err error) {
	defer func(start time.Time) { s.observe("delete_employee", start, err) }(time.Now())

	stmt, err := s.Db.PrepareContext(ctx, "DELETE FROM employees WHERE EmployeeID = ?")
	if err != nil {
		return 0, fmt.Errorf("DeleteEmployeeByID: prepare: %w", err)
	}
	defer stmt.Close()

	result, err := stmt.ExecContext(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("DeleteEmployeeByID: exec: %w", err)
	}

	affected, err = result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("DeleteEmployeeByID: rows affected: %w", err)
	}

	return affected, nil
}

// Ping verifies a connection to the database file can be established.
func (s *SQLite) Ping(ctx context.Context) error {
	return s.Db.PingContext(ctx)
}

// Close closes the underlying connection pool.
func (s *SQLite) Close() error {
	return s.Db.Close()
}

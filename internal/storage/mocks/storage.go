// Package mocks provides testify mocks for the storage interfaces.
package mocks

import (
	"context"

	"github.com/aanand-mishra/employees-api/internal/types"
	"github.com/stretchr/testify/mock"
)

// Storage is a mock implementation of storage.Storage.
type Storage struct {
	mock.Mock
}

func (m *Storage) CreateEmployee(ctx context.Context, employee types.Employee) (int64, error) {
	args := m.Called(ctx, employee)
	return args.Get(0).(int64), args.Error(1)
}

func (m *Storage) GetEmployeeByID(ctx context.Context, id int64) (types.Employee, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(types.Employee), args.Error(1)
}

func (m *Storage) GetEmployees(ctx context.Context) ([]types.Employee, error) {
	args := m.Called(ctx)

	var employees []types.Employee
	if v := args.Get(0); v != nil {
		employees = v.([]types.Employee)
	}

	return employees, args.Error(1)
}

func (m *Storage) UpdateEmployeeByID(ctx context.Context, id int64, employee types.Employee) (int64, error) {
	args := m.Called(ctx, id, employee)
	return args.Get(0).(int64), args.Error(1)
}

func (m *Storage) DeleteEmployeeByID(ctx context.Context, id int64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *Storage) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *Storage) Close() error {
	return m.Called().Error(0)
}

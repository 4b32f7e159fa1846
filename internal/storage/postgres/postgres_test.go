package postgres

import (
	"context"
	"regexp"
	"testing"

	"github.com/aanand-mishra/employees-api/internal/metrics"
	"github.com/aanand-mishra/employees-api/internal/storage"
	"github.com/aanand-mishra/employees-api/internal/types"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var columns = []string{"EmployeeID", "EmployeeName", "MobileNumber", "Department", "Salary"}

var ada = types.Employee{
	EmployeeName: "Ada",
	MobileNumber: "555",
	Department:   "Eng",
	Salary:       "100",
}

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(mock.Close)

	return mock
}

func TestCreateEmployee_Success(t *testing.T) {
	t.Parallel()

	mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta(insertEmployeeQuery)).
		WithArgs("Ada", "555", "Eng", "100").
		WillReturnRows(pgxmock.NewRows([]string{"EmployeeID"}).AddRow(int64(7)))

	repo := New(mock, metrics.NewMetrics(prometheus.NewRegistry()))
	id, err := repo.CreateEmployee(context.Background(), ada)

	require.NoError(t, err)
	assert.Equal(t, int64(7), id)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateEmployee_QueryError(t *testing.T) {
	t.Parallel()

	mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta(insertEmployeeQuery)).
		WithArgs("Ada", "555", "Eng", "100").
		WillReturnError(assert.AnError)

	repo := New(mock, nil)
	_, err := repo.CreateEmployee(context.Background(), ada)

	require.EqualError(t, err, "failed to save employee: "+assert.AnError.Error())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetEmployeeByID_Success(t *testing.T) {
	t.Parallel()

	mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta(getEmployeeByIDQuery)).
		WithArgs(int64(7)).
		WillReturnRows(pgxmock.NewRows(columns).AddRow(int64(7), "Ada", "555", "Eng", "100"))

	repo := New(mock, nil)
	got, err := repo.GetEmployeeByID(context.Background(), 7)

	require.NoError(t, err)
	want := ada
	want.EmployeeID = 7
	assert.Equal(t, want, got)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetEmployeeByID_NotFound(t *testing.T) {
	t.Parallel()

	mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta(getEmployeeByIDQuery)).
		WithArgs(int64(404)).
		WillReturnRows(pgxmock.NewRows(columns))

	repo := New(mock, nil)
	got, err := repo.GetEmployeeByID(context.Background(), 404)

	require.ErrorIs(t, err, storage.ErrNotFound)
	assert.Equal(t, types.Employee{}, got)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetEmployeeByID_QueryError(t *testing.T) {
	t.Parallel()

	mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta(getEmployeeByIDQuery)).
		WithArgs(int64(7)).
		WillReturnError(assert.AnError)

	repo := New(mock, nil)
	_, err := repo.GetEmployeeByID(context.Background(), 7)

	require.EqualError(t, err, "failed to get employee by id: "+assert.AnError.Error())
	assert.NotErrorIs(t, err, storage.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetEmployees_Success(t *testing.T) {
	t.Parallel()

	mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta(getEmployeesQuery)).
		WillReturnRows(pgxmock.NewRows(columns).
			AddRow(int64(1), "Ada", "555", "Eng", "100").
			AddRow(int64(2), "Grace", "777", "Ops", "200"))

	repo := New(mock, nil)
	got, err := repo.GetEmployees(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].EmployeeID)
	assert.Equal(t, "Grace", got[1].EmployeeName)
	assert.Equal(t, types.Salary("200"), got[1].Salary)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetEmployees_Empty(t *testing.T) {
	t.Parallel()

	mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta(getEmployeesQuery)).
		WillReturnRows(pgxmock.NewRows(columns))

	repo := New(mock, nil)
	got, err := repo.GetEmployees(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetEmployees_QueryError(t *testing.T) {
	t.Parallel()

	mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta(getEmployeesQuery)).
		WillReturnError(assert.AnError)

	repo := New(mock, nil)
	_, err := repo.GetEmployees(context.Background())

	require.EqualError(t, err, "failed to get employees: "+assert.AnError.Error())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateEmployeeByID(t *testing.T) {
	t.Parallel()

	t.Run("affected", func(t *testing.T) {
		t.Parallel()

		mock := newMock(t)
		mock.ExpectExec(regexp.QuoteMeta(updateEmployeeQuery)).
			WithArgs(int64(7), "Ada", "555", "Eng", "100").
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		repo := New(mock, nil)
		n, err := repo.UpdateEmployeeByID(context.Background(), 7, ada)

		require.NoError(t, err)
		assert.Equal(t, int64(1), n)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing row is not an error", func(t *testing.T) {
		t.Parallel()

		mock := newMock(t)
		mock.ExpectExec(regexp.QuoteMeta(updateEmployeeQuery)).
			WithArgs(int64(8), "Ada", "555", "Eng", "100").
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		repo := New(mock, nil)
		n, err := repo.UpdateEmployeeByID(context.Background(), 8, ada)

		require.NoError(t, err)
		assert.Zero(t, n)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("query error", func(t *testing.T) {
		t.Parallel()

		mock := newMock(t)
		mock.ExpectExec(regexp.QuoteMeta(updateEmployeeQuery)).
			WithArgs(int64(7), "Ada", "555", "Eng", "100").
			WillReturnError(assert.AnError)

		repo := New(mock, nil)
		_, err := repo.UpdateEmployeeByID(context.Background(), 7, ada)

		require.EqualError(t, err, "failed to update employee data: "+assert.AnError.Error())
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDeleteEmployeeByID(t *testing.T) {
	t.Parallel()

	t.Run("deleted", func(t *testing.T) {
		t.Parallel()

		mock := newMock(t)
		mock.ExpectExec(regexp.QuoteMeta(deleteEmployeeQuery)).
			WithArgs(int64(7)).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		repo := New(mock, nil)
		n, err := repo.DeleteEmployeeByID(context.Background(), 7)

		require.NoError(t, err)
		assert.Equal(t, int64(1), n)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("query error", func(t *testing.T) {
		t.Parallel()

		mock := newMock(t)
		mock.ExpectExec(regexp.QuoteMeta(deleteEmployeeQuery)).
			WithArgs(int64(7)).
			WillReturnError(assert.AnError)

		repo := New(mock, nil)
		_, err := repo.DeleteEmployeeByID(context.Background(), 7)

		require.EqualError(t, err, "failed to delete employee: "+assert.AnError.Error())
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPing(t *testing.T) {
	t.Parallel()

	mock := newMock(t)
	mock.ExpectPing().WillReturnError(assert.AnError)

	repo := New(mock, nil)

	require.ErrorIs(t, repo.Ping(context.Background()), assert.AnError)
	require.NoError(t, mock.ExpectationsWereMet())
}

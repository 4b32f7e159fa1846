package types_test

import (
	"encoding/json"
	"testing"

	"github.com/aanand-mishra/employees-api/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSalary_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		want types.Salary
	}{
		{name: "string", body: `{"Salary":"100.50"}`, want: "100.50"},
		{name: "integer", body: `{"Salary":100}`, want: "100"},
		{name: "decimal", body: `{"Salary":1234.5}`, want: "1234.5"},
		{name: "exponent", body: `{"Salary":1e2}`, want: "100"},
		{name: "trailing zeros", body: `{"Salary":100.50}`, want: "100.5"},
		{name: "negative exponent", body: `{"Salary":2.5E-1}`, want: "0.25"},
		{name: "zero counts as missing", body: `{"Salary":0}`, want: ""},
		{name: "string zero is kept", body: `{"Salary":"0"}`, want: "0"},
		{name: "null", body: `{"Salary":null}`, want: ""},
		{name: "absent", body: `{}`, want: ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var e types.Employee
			require.NoError(t, json.Unmarshal([]byte(tc.body), &e))
			assert.Equal(t, tc.want, e.Salary)
		})
	}
}

func TestSalary_UnmarshalJSON_Invalid(t *testing.T) {
	t.Parallel()

	var e types.Employee
	err := json.Unmarshal([]byte(`{"Salary":true}`), &e)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "salary must be a string or a number")
}

func TestEmployee_MarshalUsesLeadingCapitalKeys(t *testing.T) {
	t.Parallel()

	e := types.Employee{
		EmployeeID:   7,
		EmployeeName: "Ada",
		MobileNumber: "555",
		Department:   "Eng",
		Salary:       "100",
	}

	out, err := json.Marshal(e)

	require.NoError(t, err)
	assert.JSONEq(t,
		`{"EmployeeID":7,"EmployeeName":"Ada","MobileNumber":"555","Department":"Eng","Salary":"100"}`,
		string(out))
}

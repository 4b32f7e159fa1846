package casing_test

import (
	"testing"

	"github.com/aanand-mishra/employees-api/internal/casing"
	"github.com/stretchr/testify/assert"
)

func TestKey(t *testing.T) {
	t.Parallel()

	for _, f := range casing.Fields {
		assert.Equal(t, f.Store, casing.Key(f.Client, casing.Store))
		assert.Equal(t, f.Client, casing.Key(f.Store, casing.Client))
	}

	assert.Equal(t, "Extra", casing.Key("extra", casing.Store))
	assert.Equal(t, "extra", casing.Key("Extra", casing.Client))
	assert.Equal(t, "_id", casing.Key("_id", casing.Store))
	assert.Empty(t, casing.Key("", casing.Store))
}

func TestConvert_ToStore(t *testing.T) {
	t.Parallel()

	in := casing.Record{
		"employeeName": "Ada",
		"mobileNumber": "555",
		"department":   "Eng",
		"salary":       "100",
	}

	got := casing.Convert(in, casing.Store)

	assert.Equal(t, casing.Record{
		"EmployeeName": "Ada",
		"MobileNumber": "555",
		"Department":   "Eng",
		"Salary":       "100",
	}, got)
	assert.Contains(t, in, "employeeName", "input must not be modified")
}

func TestConvert_RoundTrip(t *testing.T) {
	t.Parallel()

	records := []casing.Record{
		{"employeeID": int64(3), "employeeName": "Ada", "mobileNumber": "555", "department": "Eng", "salary": "100"},
		{"employeeName": "", "salary": 200.5},
		{"nickname": "A", "x": true},
		{},
	}

	for _, r := range records {
		back := casing.Convert(casing.Convert(r, casing.Store), casing.Client)
		assert.Equal(t, r, back)
	}

	stored := casing.Record{"EmployeeID": 1, "EmployeeName": "Grace", "Salary": "300"}
	assert.Equal(t, stored, casing.Convert(casing.Convert(stored, casing.Client), casing.Store))
}

func TestConvert_Nil(t *testing.T) {
	t.Parallel()

	assert.Nil(t, casing.Convert(nil, casing.Client))
	assert.Empty(t, casing.ConvertAll(nil, casing.Client))
}

func TestConvertAll(t *testing.T) {
	t.Parallel()

	got := casing.ConvertAll([]casing.Record{
		{"EmployeeID": 1, "EmployeeName": "Ada"},
		{"EmployeeID": 2, "EmployeeName": "Grace"},
	}, casing.Client)

	assert.Equal(t, []casing.Record{
		{"employeeID": 1, "employeeName": "Ada"},
		{"employeeID": 2, "employeeName": "Grace"},
	}, got)
}

func TestConvert_CollidingKeys(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   casing.Record
		to   casing.Casing
		want casing.Record
	}{
		{
			name: "table spelling wins going to store",
			in:   casing.Record{"employeeName": "client", "EmployeeName": "store"},
			to:   casing.Store,
			want: casing.Record{"EmployeeName": "client"},
		},
		{
			name: "table spelling wins going to client",
			in:   casing.Record{"EmployeeName": "store", "employeeName": "client"},
			to:   casing.Client,
			want: casing.Record{"employeeName": "store"},
		},
		{
			name: "key already in target casing beats fallback",
			in:   casing.Record{"nickname": "lower", "Nickname": "upper"},
			to:   casing.Store,
			want: casing.Record{"Nickname": "upper"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// Map iteration order varies between runs; the result must not.
			for range 50 {
				assert.Equal(t, tt.want, casing.Convert(tt.in, tt.to))
			}
		})
	}
}

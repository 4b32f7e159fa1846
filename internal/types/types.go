// Package types holds the shared data structures used across the
// application. Keeping them in one place prevents import cycles:
// handlers, storage, and the client can all import types without
// depending on each other.
package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Employee represents one row of the employees table.
//
// The JSON keys use the same leading-capital names as the table columns,
// so a row travels from the store to the wire without renaming.
//
// validate:"required" makes the four writable fields mandatory on create
// and update. EmployeeID is assigned by the store and never validated.
type Employee struct {
	EmployeeID   int64  `json:"EmployeeID"`
	EmployeeName string `json:"EmployeeName" validate:"required"`
	MobileNumber string `json:"MobileNumber" validate:"required"`
	Department   string `json:"Department"   validate:"required"`
	Salary       Salary `json:"Salary"       validate:"required"`
}

// Salary is kept as text end to end. On input it accepts either a JSON
// string ("100.50") or a JSON number (100.5); on output it is always a
// string. Numbers are stored in plain decimal form.
type Salary string

// UnmarshalJSON accepts a string or a number. A numeric zero decodes to
// the empty salary so that it fails the required check, matching how a
// falsy 0 was rejected by earlier clients of this API.
func (s *Salary) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	if bytes.Equal(data, []byte("null")) {
		*s = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return fmt.Errorf("salary: %w", err)
		}
		*s = Salary(str)
		return nil
	}

	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return fmt.Errorf("salary must be a string or a number: %w", err)
	}

	f, err := num.Float64()
	if err != nil {
		return fmt.Errorf("salary: %w", err)
	}
	if f == 0 {
		*s = ""
		return nil
	}

	// 1e2 and 100.0 are both stored as "100".
	*s = Salary(strconv.FormatFloat(f, 'f', -1, 64))
	return nil
}

// String implements fmt.Stringer.
func (s Salary) String() string { return string(s) }


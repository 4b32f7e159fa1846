package view

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/aanand-mishra/employees-api/internal/casing"
)

// Form field names, in client casing.
const (
	FieldEmployeeName = "employeeName"
	FieldMobileNumber = "mobileNumber"
	FieldDepartment   = "department"
	FieldSalary       = "salary"

	fieldEmployeeID = "employeeID"
)

// FormFields lists the editable fields in display order.
var FormFields = []string{FieldEmployeeName, FieldMobileNumber, FieldDepartment, FieldSalary}

// Form holds the values of the shared add/edit form.
type Form struct {
	EmployeeName string
	MobileNumber string
	Department   string
	Salary       string
}

// Set assigns one field by its client-casing name.
func (f *Form) Set(name, value string) error {
	switch name {
	case FieldEmployeeName:
		f.EmployeeName = value
	case FieldMobileNumber:
		f.MobileNumber = value
	case FieldDepartment:
		f.Department = value
	case FieldSalary:
		f.Salary = value
	default:
		return fmt.Errorf("unknown form field %q", name)
	}
	return nil
}

// Get reads one field by its client-casing name.
func (f Form) Get(name string) string {
	switch name {
	case FieldEmployeeName:
		return f.EmployeeName
	case FieldMobileNumber:
		return f.MobileNumber
	case FieldDepartment:
		return f.Department
	case FieldSalary:
		return f.Salary
	}
	return ""
}

// Record returns the form as a client-casing record.
func (f Form) Record() casing.Record {
	r := make(casing.Record, len(FormFields))
	for _, name := range FormFields {
		r[name] = f.Get(name)
	}
	return r
}

// Employee is one row of the collection as held by the view.
type Employee struct {
	ID int64
	Form
}

// Record returns the employee as a client-casing record.
func (e Employee) Record() casing.Record {
	r := e.Form.Record()
	r[fieldEmployeeID] = e.ID
	return r
}

// EmployeeFromRecord reads a client-casing record. Missing fields stay
// empty; numbers are rendered in their shortest decimal form.
func EmployeeFromRecord(r casing.Record) Employee {
	var e Employee
	e.ID, _ = toInt64(r[fieldEmployeeID])
	for _, name := range FormFields {
		if v, ok := r[name]; ok {
			_ = e.Form.Set(name, toText(v))
		}
	}
	return e
}

// State is the whole client view state.
type State struct {
	Employees []Employee
	Form      Form
	Editing   bool
	// EditingID is the identifier of the record being edited; zero when adding.
	EditingID int64
	// FormOpen reports whether the add/edit dialog is showing.
	FormOpen bool
}

func toText(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case json.Number:
		return t.String()
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int64:
		return strconv.FormatInt(t, 10)
	case int:
		return strconv.Itoa(t)
	default:
		return fmt.Sprint(t)
	}
}

func toInt64(v any) (int64, bool) {
	switch t := v.(type) {
	case int64:
		return t, true
	case int:
		return int64(t), true
	case float64:
		return int64(t), true
	case json.Number:
		n, err := t.Int64()
		return n, err == nil
	case string:
		n, err := strconv.ParseInt(t, 10, 64)
		return n, err == nil
	}
	return 0, false
}

// Package response provides helpers for writing the JSON envelope every
// endpoint returns.
//
// Every body carries a boolean "success" plus an operation-specific
// payload:
//
//	{ "success": true,  "empData": [...] }
//	{ "success": true,  "message": "Employee added successfully", "insertedId": 7 }
//	{ "success": false, "message": "Invalid Id" }
package response

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/aanand-mishra/employees-api/internal/types"
	"github.com/go-playground/validator/v10"
)

// Messages surfaced to API consumers.
const (
	MsgServerError     = "Server error, Try again"
	MsgInvalidID       = "Invalid Id"
	MsgFieldsRequired  = "All fields are required"
	MsgInvalidBody     = "Invalid request body"
	MsgDetailsNotFound = "Employee details not found"
	MsgNotFound        = "Employee not found"
	MsgAdded           = "Employee added successfully"
	MsgUpdated         = "Employee updated successfully"
	MsgDeleted         = "Employee deleted successfully"
)

// Response is the failure envelope. Message, EmpData and Error are
// omitted when empty; list and get failures carry their text in EmpData,
// everything else in Message.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	EmpData string `json:"empData,omitempty"`
	Error   string `json:"error,omitempty"`
}

// ListResponse is returned by GET /api/employees.
type ListResponse struct {
	Success bool             `json:"success"`
	EmpData []types.Employee `json:"empData"`
}

// ItemResponse is returned by GET /api/employees/{id}.
type ItemResponse struct {
	Success bool           `json:"success"`
	EmpData types.Employee `json:"empData"`
}

// CreatedResponse is returned by POST /api/employees.
type CreatedResponse struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	InsertedID int64  `json:"insertedId"`
}

// AffectedResponse is returned by PUT and DELETE. AffectedRows is always
// present, including when it is zero.
type AffectedResponse struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	AffectedRows int64  `json:"affectedRows"`
}

// WriteJSON writes a JSON-encoded response with the given HTTP status code.
// Header() → WriteHeader() → body, in that order.
func WriteJSON(w http.ResponseWriter, status int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	return json.NewEncoder(w).Encode(data)
}

// Fail builds a failure envelope with a static message.
func Fail(message string) Response {
	return Response{Success: false, Message: message}
}

// ServerError builds the 500 envelope for mutating operations. The
// underlying error text is passed through to the caller.
func ServerError(err error) Response {
	return Response{Success: false, Message: MsgServerError, Error: err.Error()}
}

// ReadError builds the 500 envelope for list and get, which report the
// failure text under empData.
func ReadError(err error) Response {
	return Response{Success: false, EmpData: MsgServerError, Error: err.Error()}
}

// GeneralError wraps a decoding error in the invalid body envelope.
func GeneralError(err error) Response {
	return Response{Success: false, Message: MsgInvalidBody, Error: err.Error()}
}

// ValidationError converts validator.FieldError values into the
// "All fields are required" envelope, listing every failing field:
//
//	{ "success": false, "message": "All fields are required",
//	  "error": "field EmployeeName is required, field Salary is required" }
func ValidationError(errs validator.ValidationErrors) Response {
	errMessages := make([]string, 0, len(errs))

	for _, e := range errs {
		switch e.ActualTag() {
		case "required":
			errMessages = append(errMessages,
				fmt.Sprintf("field %s is required", e.Field()))
		default:
			errMessages = append(errMessages,
				fmt.Sprintf("field %s is invalid", e.Field()))
		}
	}

	return Response{
		Success: false,
		Message: MsgFieldsRequired,
		Error:   strings.Join(errMessages, ", "),
	}
}

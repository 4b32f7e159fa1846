// Package employee contains the HTTP handlers for the Employee resource.
//
// Every handler is built by a factory that receives its dependencies
// once at startup and returns the http.HandlerFunc the router calls on
// each request:
//
//	r.Post("/api/employees", employee.New(log, storage))
package employee

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"math"
	"net/http"
	"strconv"

	"github.com/aanand-mishra/employees-api/internal/lib/logger/sl"
	"github.com/aanand-mishra/employees-api/internal/storage"
	"github.com/aanand-mishra/employees-api/internal/types"
	"github.com/aanand-mishra/employees-api/internal/utils/response"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

// validate caches struct metadata between requests; it is safe for
// concurrent use.
var validate = validator.New()

// ─────────────────────────────────────────────────────────────────────────────
// GetList handles GET /api/employees
//
// Success response (200 OK):
//
//	{ "success": true, "empData": [ { "EmployeeID": 1, "EmployeeName": "Ada", ... } ] }
//
// Error responses:
//
//	500 Internal  - { "success": false, "empData": "Server error, Try again", "error": "..." }
//
// ─────────────────────────────────────────────────────────────────────────────
func GetList(log *slog.Logger, storage storage.Storage) http.HandlerFunc {
	log = log.With(sl.Op("employee.GetList"))

	return func(w http.ResponseWriter, r *http.Request) {
		log.DebugContext(r.Context(), "getting all employees")

		employees, err := storage.GetEmployees(r.Context())
		if err != nil {
			log.ErrorContext(r.Context(), "error getting employees", sl.Err(err))
			writeJSON(log, w, http.StatusInternalServerError, response.ReadError(err))
			return
		}

		writeJSON(log, w, http.StatusOK, response.ListResponse{Success: true, EmpData: employees})
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// GetByID handles GET /api/employees/{id}
//
// Success response (200 OK):
//
//	{ "success": true, "empData": { "EmployeeID": 1, "EmployeeName": "Ada", ... } }
//
// Error responses:
//
//	400 Bad Request  - id is not a number; the store is never reached
//	404 Not Found    - no employee with that id, or a fractional id
//	500 Internal     - database error
//
// ─────────────────────────────────────────────────────────────────────────────
func GetByID(log *slog.Logger, storage storage.Storage) http.HandlerFunc {
	log = log.With(sl.Op("employee.GetByID"))

	return func(w http.ResponseWriter, r *http.Request) {
		id, matchable, ok := parseID(log, w, r)
		if !ok {
			return
		}
		if !matchable {
			writeJSON(log, w, http.StatusNotFound, response.Fail(response.MsgDetailsNotFound))
			return
		}

		employee, err := storage.GetEmployeeByID(r.Context(), id)
		if err != nil {
			if isNotFound(err) {
				log.InfoContext(r.Context(), "employee not found", slog.Int64("id", id))
				writeJSON(log, w, http.StatusNotFound, response.Fail(response.MsgDetailsNotFound))
				return
			}
			log.ErrorContext(r.Context(), "error getting employee", slog.Int64("id", id), sl.Err(err))
			writeJSON(log, w, http.StatusInternalServerError, response.ReadError(err))
			return
		}

		writeJSON(log, w, http.StatusOK, response.ItemResponse{Success: true, EmpData: employee})
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// New handles POST /api/employees
//
// Request body (JSON):
//
//	{ "EmployeeName": "Ada", "MobileNumber": "555", "Department": "Eng", "Salary": "100" }
//
// Success response (201 Created):
//
//	{ "success": true, "message": "Employee added successfully", "insertedId": 1 }
//
// Error responses:
//
//	400 Bad Request  - malformed JSON or a missing/empty field
//	500 Internal     - database error
//
// ─────────────────────────────────────────────────────────────────────────────
func New(log *slog.Logger, storage storage.Storage) http.HandlerFunc {
	log = log.With(sl.Op("employee.New"))

	return func(w http.ResponseWriter, r *http.Request) {
		log.DebugContext(r.Context(), "creating an employee")

		employee, ok := decodeEmployee(log, w, r)
		if !ok {
			return
		}

		lastID, err := storage.CreateEmployee(r.Context(), employee)
		if err != nil {
			log.ErrorContext(r.Context(), "error inserting employee", sl.Err(err))
			writeJSON(log, w, http.StatusInternalServerError, response.ServerError(err))
			return
		}

		log.InfoContext(r.Context(), "employee created", slog.Int64("id", lastID))

		writeJSON(log, w, http.StatusCreated, response.CreatedResponse{
			Success:    true,
			Message:    response.MsgAdded,
			InsertedID: lastID,
		})
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Update handles PUT /api/employees/{id}
// Replaces all four writable fields of an employee.
//
// Success response (200 OK):
//
//	{ "success": true, "message": "Employee updated successfully", "affectedRows": 1 }
//
// There is no existence check: an unknown or fractional id yields 200
// with "affectedRows": 0.
//
// Error responses:
//
//	400 Bad Request  - invalid id, malformed JSON or a missing field
//	500 Internal     - database error
//
// ─────────────────────────────────────────────────────────────────────────────
func Update(log *slog.Logger, storage storage.Storage) http.HandlerFunc {
	log = log.With(sl.Op("employee.Update"))

	return func(w http.ResponseWriter, r *http.Request) {
		id, matchable, ok := parseID(log, w, r)
		if !ok {
			return
		}

		employee, ok := decodeEmployee(log, w, r)
		if !ok {
			return
		}

		var affected int64
		if matchable {
			var err error
			affected, err = storage.UpdateEmployeeByID(r.Context(), id, employee)
			if err != nil {
				log.ErrorContext(r.Context(), "error updating employee", slog.Int64("id", id), sl.Err(err))
				writeJSON(log, w, http.StatusInternalServerError, response.ServerError(err))
				return
			}
		}

		log.InfoContext(r.Context(), "employee updated",
			slog.Int64("id", id), slog.Int64("affected_rows", affected))

		writeJSON(log, w, http.StatusOK, response.AffectedResponse{
			Success:      true,
			Message:      response.MsgUpdated,
			AffectedRows: affected,
		})
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Delete handles DELETE /api/employees/{id}
//
// Success response (200 OK):
//
//	{ "success": true, "message": "Employee deleted successfully", "affectedRows": 1 }
//
// Error responses:
//
//	400 Bad Request  - id is not a number
//	404 Not Found    - nothing was deleted
//	500 Internal     - database error
//
// ─────────────────────────────────────────────────────────────────────────────
func Delete(log *slog.Logger, storage storage.Storage) http.HandlerFunc {
	log = log.With(sl.Op("employee.Delete"))

	return func(w http.ResponseWriter, r *http.Request) {
		id, matchable, ok := parseID(log, w, r)
		if !ok {
			return
		}
		if !matchable {
			writeJSON(log, w, http.StatusNotFound, response.Fail(response.MsgNotFound))
			return
		}

		affected, err := storage.DeleteEmployeeByID(r.Context(), id)
		if err != nil {
			log.ErrorContext(r.Context(), "error deleting employee", slog.Int64("id", id), sl.Err(err))
			writeJSON(log, w, http.StatusInternalServerError, response.ServerError(err))
			return
		}

		if affected == 0 {
			writeJSON(log, w, http.StatusNotFound, response.Fail(response.MsgNotFound))
			return
		}

		log.InfoContext(r.Context(), "employee deleted", slog.Int64("id", id))

		writeJSON(log, w, http.StatusOK, response.AffectedResponse{
			Success:      true,
			Message:      response.MsgDeleted,
			AffectedRows: affected,
		})
	}
}

// parseID reads the {id} path segment. Any numeric segment is accepted:
// "1e3" is id 1000, while a fraction or a value beyond int64 ("1.5",
// "1e30") is valid but can never match a row, so matchable is false. A
// non-numeric segment gets the 400 envelope and ok is false.
func parseID(log *slog.Logger, w http.ResponseWriter, r *http.Request) (id int64, matchable, ok bool) {
	raw := chi.URLParam(r, "id")

	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return n, true, true
	}

	f, err := strconv.ParseFloat(raw, 64)
	if (err != nil && !errors.Is(err, strconv.ErrRange)) || math.IsNaN(f) {
		log.DebugContext(r.Context(), "invalid id", slog.String("id", raw))
		writeJSON(log, w, http.StatusBadRequest, response.Fail(response.MsgInvalidID))
		return 0, false, false
	}

	if f == math.Trunc(f) && f >= math.MinInt64 && f < math.MaxInt64 {
		return int64(f), true, true
	}

	return 0, false, true
}

// decodeEmployee decodes and validates the request body. An empty body
// decodes to a zero Employee and therefore fails as "all fields
// required". On failure it writes the 400 envelope and returns false.
func decodeEmployee(log *slog.Logger, w http.ResponseWriter, r *http.Request) (types.Employee, bool) {
	var employee types.Employee

	err := json.NewDecoder(r.Body).Decode(&employee)
	if err != nil && !errors.Is(err, io.EOF) {
		writeJSON(log, w, http.StatusBadRequest, response.GeneralError(err))
		return types.Employee{}, false
	}

	if err := validate.Struct(employee); err != nil {
		var validateErrs validator.ValidationErrors
		if errors.As(err, &validateErrs) {
			writeJSON(log, w, http.StatusBadRequest, response.ValidationError(validateErrs))
			return types.Employee{}, false
		}
		writeJSON(log, w, http.StatusBadRequest, response.GeneralError(err))
		return types.Employee{}, false
	}

	// The identifier always comes from the store, never from the body.
	employee.EmployeeID = 0

	return employee, true
}

func isNotFound(err error) bool {
	return errors.Is(err, storage.ErrNotFound)
}

func writeJSON(log *slog.Logger, w http.ResponseWriter, status int, data any) {
	if err := response.WriteJSON(w, status, data); err != nil {
		log.Error("failed to write response", sl.Err(err))
	}
}

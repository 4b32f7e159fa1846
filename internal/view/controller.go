// Package view implements the client side of the employee screen: a
// collection table and one shared add/edit form. Rendering, toasts and
// confirmation dialogs are supplied by the caller through small
// interfaces; the Controller owns the state and the rules for when the
// API is called.
//
// Displayed data always comes from a full re-fetch after a mutation;
// nothing is updated optimistically.
package view

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/aanand-mishra/employees-api/internal/casing"
	"github.com/aanand-mishra/employees-api/internal/client"
	"github.com/aanand-mishra/employees-api/internal/lib/logger/sl"
)

// User-facing texts.
const (
	MsgAdded         = "Employee added successfully"
	MsgUpdated       = "Employee updated successfully"
	MsgDeleted       = "Employee deleted successfully"
	MsgSaveFailed    = "Error saving employee"
	MsgDeleteFailed  = "Failed to delete employee"
	MsgConfirmDelete = "Are you sure to delete the employee data?"
)

// API is the subset of *client.Client the controller needs.
type API interface {
	List(ctx context.Context) ([]casing.Record, error)
	Get(ctx context.Context, id int64) (casing.Record, error)
	Create(ctx context.Context, record casing.Record) (client.Result, error)
	Update(ctx context.Context, id int64, record casing.Record) (client.Result, error)
	Delete(ctx context.Context, id int64) (client.Result, error)
}

// Notifier shows transient notifications.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// Confirmer asks the user a yes/no question.
type Confirmer interface {
	Confirm(prompt string) bool
}

// Controller is the explicit state container for the employee screen.
type Controller struct {
	api     API
	notify  Notifier
	confirm Confirmer
	log     *slog.Logger

	mu    sync.Mutex
	state State
}

// NewController returns a Controller with empty state.
func NewController(api API, notify Notifier, confirm Confirmer, log *slog.Logger) *Controller {
	return &Controller{
		api:     api,
		notify:  notify,
		confirm: confirm,
		log:     log.With(slog.String("division", "view")),
	}
}

// State returns a snapshot of the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := c.state
	s.Employees = append([]Employee(nil), c.state.Employees...)
	return s
}

// Mount loads the collection for the first render.
func (c *Controller) Mount(ctx context.Context) error {
	return c.Refresh(ctx)
}

// Refresh re-fetches the whole collection. Failures are logged and
// returned; the previous collection stays on screen.
func (c *Controller) Refresh(ctx context.Context) error {
	records, err := c.api.List(ctx)
	if err != nil {
		c.log.ErrorContext(ctx, "Failed to fetch employees", sl.Err(err))
		return fmt.Errorf("fetch employees: %w", err)
	}

	employees := make([]Employee, 0, len(records))
	for _, r := range casing.ConvertAll(records, casing.Client) {
		employees = append(employees, EmployeeFromRecord(r))
	}

	c.mu.Lock()
	c.state.Employees = employees
	c.mu.Unlock()

	return nil
}

// OpenAdd resets the form and opens it in add mode.
func (c *Controller) OpenAdd() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state.Form = Form{}
	c.state.Editing = false
	c.state.EditingID = 0
	c.state.FormOpen = true
}

// OpenEdit fetches one record and opens the form in edit mode for it.
func (c *Controller) OpenEdit(ctx context.Context, id int64) error {
	record, err := c.api.Get(ctx, id)
	if err != nil {
		c.log.ErrorContext(ctx, "Failed to fetch employee data", slog.Int64("id", id), sl.Err(err))
		return fmt.Errorf("fetch employee %d: %w", id, err)
	}

	employee := EmployeeFromRecord(casing.Convert(record, casing.Client))

	c.mu.Lock()
	defer c.mu.Unlock()

	c.state.Form = employee.Form
	c.state.Editing = true
	c.state.EditingID = id
	c.state.FormOpen = true

	return nil
}

// SetField updates one form field by its client-casing name.
func (c *Controller) SetField(name, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.state.Form.Set(name, value)
}

// CloseForm dismisses the dialog without saving. Field values are kept
// until the next OpenAdd or OpenEdit.
func (c *Controller) CloseForm() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state.FormOpen = false
}

// Submit sends the form: update when editing, create otherwise. On
// success it notifies, re-fetches the collection, resets the form and
// closes it. On failure it notifies with the server's message when there
// is one and leaves the form open.
func (c *Controller) Submit(ctx context.Context) error {
	c.mu.Lock()
	form := c.state.Form
	editing := c.state.Editing
	id := c.state.EditingID
	c.mu.Unlock()

	payload := casing.Convert(form.Record(), casing.Store)

	var (
		err     error
		success string
	)
	if editing {
		_, err = c.api.Update(ctx, id, payload)
		success = MsgUpdated
	} else {
		_, err = c.api.Create(ctx, payload)
		success = MsgAdded
	}

	if err != nil {
		c.log.ErrorContext(ctx, "Failed to save employee", sl.Err(err))
		msg, ok := client.ServerMessage(err)
		if !ok {
			msg = MsgSaveFailed
		}
		c.notify.Error(msg)
		return fmt.Errorf("save employee: %w", err)
	}

	c.notify.Success(success)

	// Refresh failures are logged by Refresh; the save itself succeeded.
	_ = c.Refresh(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.state.Editing = false
	c.state.EditingID = 0
	c.state.Form = Form{}
	c.state.FormOpen = false

	return nil
}

// Delete asks for confirmation and removes the record. It reports
// whether the user confirmed. The row stays in the collection until the
// re-fetch that follows a successful delete.
func (c *Controller) Delete(ctx context.Context, id int64) (bool, error) {
	if !c.confirm.Confirm(MsgConfirmDelete) {
		return false, nil
	}

	if _, err := c.api.Delete(ctx, id); err != nil {
		c.log.ErrorContext(ctx, "Failed to delete employee", slog.Int64("id", id), sl.Err(err))
		c.notify.Error(MsgDeleteFailed)
		return true, fmt.Errorf("delete employee %d: %w", id, err)
	}

	c.notify.Success(MsgDeleted)
	_ = c.Refresh(ctx)

	return true, nil
}

package main

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aanand-mishra/employees-api/internal/client"
	"github.com/aanand-mishra/employees-api/internal/http/router"
	"github.com/aanand-mishra/employees-api/internal/storage/sqlite"
	"github.com/aanand-mishra/employees-api/internal/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTerminal(input string) (*terminal, *bytes.Buffer) {
	var out bytes.Buffer
	return &terminal{in: bufio.NewScanner(strings.NewReader(input)), out: &out}, &out
}

func TestRenderTable(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	renderTable(&out, []view.Employee{
		{ID: 1, Form: view.Form{EmployeeName: "Ada", MobileNumber: "555", Department: "Eng", Salary: "100"}},
		{ID: 12, Form: view.Form{EmployeeName: "Grace Hopper", MobileNumber: "777", Department: "Ops", Salary: "200"}},
	})

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, []string{"ID", "EMPLOYEE", "NAME", "MOBILE", "NO.", "DEPARTMENT", "SALARY"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"12", "Grace", "Hopper", "777", "Ops", "200"}, strings.Fields(lines[2]))
	assert.Equal(t, strings.Index(lines[0], "SALARY"), strings.Index(lines[1], "100"))
}

func TestConfirm(t *testing.T) {
	t.Parallel()

	for input, want := range map[string]bool{
		"y\n":     true,
		"YES\n":   true,
		"n\n":     false,
		"\n":      false,
		"":        false,
		"maybe\n": false,
	} {
		ui, out := newTerminal(input)
		assert.Equal(t, want, ui.Confirm("Delete?"), "input %q", input)
		assert.Contains(t, out.String(), "Delete? [y/N]: ")
	}
}

func TestNotifications(t *testing.T) {
	t.Parallel()

	ui, out := newTerminal("")
	ui.Success("saved")
	ui.Error("failed")

	assert.Equal(t, "[ok] saved\n[error] failed\n", out.String())
}

func TestRun(t *testing.T) {
	t.Parallel()

	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	store, err := sqlite.New(filepath.Join(t.TempDir(), "employees.db"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	srv := httptest.NewServer(router.New(log, store, nil, nil))
	t.Cleanup(srv.Close)

	script := strings.Join([]string{
		"add", "Ada", "555", "Eng", "100", "y",
		"edit 1", "", "", "", "250", "y",
		"edit x",
		"delete 1", "n",
		"list",
		"bogus",
		"quit",
	}, "\n") + "\n"

	ui, out := newTerminal(script)
	ctrl := view.NewController(client.New(srv.URL+router.BasePath, srv.Client(), log), ui, ui, log)
	require.NoError(t, ctrl.Mount(context.Background()))

	(&app{ctrl: ctrl, ui: ui}).run(context.Background())

	text := out.String()
	assert.Contains(t, text, "== Add Employee ==")
	assert.Contains(t, text, "[ok] "+view.MsgAdded)
	assert.Contains(t, text, "== Edit Employee ==")
	assert.Contains(t, text, "Enter salary [100]: ")
	assert.Contains(t, text, "[ok] "+view.MsgUpdated)
	assert.Contains(t, text, "[error] an employee id is required")
	assert.Contains(t, text, view.MsgConfirmDelete)
	assert.Contains(t, text, `[error] unknown command "bogus"`)
	assert.NotContains(t, text, view.MsgDeleted)

	employees := ctrl.State().Employees
	require.Len(t, employees, 1)
	assert.Equal(t, "250", employees[0].Salary)
	assert.Equal(t, "Ada", employees[0].EmployeeName)
}

package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/aanand-mishra/employees-api/internal/view"
)

// terminal is the Notifier and Confirmer backed by stdin/stdout.
type terminal struct {
	in  *bufio.Scanner
	out io.Writer
}

func (t *terminal) Success(msg string) { fmt.Fprintf(t.out, "[ok] %s\n", msg) }

func (t *terminal) Error(msg string) { fmt.Fprintf(t.out, "[error] %s\n", msg) }

func (t *terminal) Confirm(prompt string) bool {
	answer, ok := t.prompt(prompt + " [y/N]")
	if !ok {
		return false
	}
	answer = strings.ToLower(answer)
	return answer == "y" || answer == "yes"
}

// prompt prints label and reads one line. ok is false on EOF.
func (t *terminal) prompt(label string) (string, bool) {
	fmt.Fprintf(t.out, "%s: ", label)
	if !t.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(t.in.Text()), true
}

var fieldLabels = map[string]string{
	view.FieldEmployeeName: "Enter name",
	view.FieldMobileNumber: "Enter mobile number",
	view.FieldDepartment:   "Enter department",
	view.FieldSalary:       "Enter salary",
}

type app struct {
	ctrl *view.Controller
	ui   *terminal
}

func (a *app) run(ctx context.Context) {
	a.render()

	for {
		line, ok := a.ui.prompt("\ncommand (list, add, edit <id>, delete <id>, quit)")
		if !ok {
			return
		}

		cmd, arg, _ := strings.Cut(line, " ")
		switch cmd {
		case "", "list":
			_ = a.ctrl.Refresh(ctx)
			a.render()
		case "add":
			a.ctrl.OpenAdd()
			a.form(ctx)
		case "edit":
			id, ok := a.parseID(arg)
			if !ok {
				continue
			}
			if err := a.ctrl.OpenEdit(ctx, id); err != nil {
				a.ui.Error(err.Error())
				continue
			}
			a.form(ctx)
		case "delete":
			id, ok := a.parseID(arg)
			if !ok {
				continue
			}
			if confirmed, _ := a.ctrl.Delete(ctx, id); confirmed {
				a.render()
			}
		case "quit", "exit":
			return
		default:
			a.ui.Error("unknown command " + strconv.Quote(cmd))
		}
	}
}

// form walks the open dialog: each field shows its current value and
// an empty answer keeps it.
func (a *app) form(ctx context.Context) {
	state := a.ctrl.State()
	title := "Add Employee"
	if state.Editing {
		title = "Edit Employee"
	}
	fmt.Fprintf(a.ui.out, "\n== %s ==\n", title)

	for _, name := range view.FormFields {
		label := fieldLabels[name]
		if current := state.Form.Get(name); current != "" {
			label += " [" + current + "]"
		}
		value, ok := a.ui.prompt(label)
		if !ok {
			a.ctrl.CloseForm()
			return
		}
		if value != "" {
			_ = a.ctrl.SetField(name, value)
		}
	}

	if !a.ui.Confirm("SAVE CHANGES?") {
		a.ctrl.CloseForm()
		return
	}

	if err := a.ctrl.Submit(ctx); err == nil {
		a.render()
	}
}

func (a *app) parseID(arg string) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(arg), 10, 64)
	if err != nil {
		a.ui.Error("an employee id is required")
		return 0, false
	}
	return id, true
}

func (a *app) render() {
	renderTable(a.ui.out, a.ctrl.State().Employees)
}

func renderTable(w io.Writer, employees []view.Employee) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tEMPLOYEE NAME\tMOBILE NO.\tDEPARTMENT\tSALARY")
	for _, e := range employees {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", e.ID, e.EmployeeName, e.MobileNumber, e.Department, e.Salary)
	}
	_ = tw.Flush()
}

package response_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aanand-mishra/employees-api/internal/types"
	"github.com/aanand-mishra/employees-api/internal/utils/response"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()

	err := response.WriteJSON(rr, http.StatusTeapot, response.Fail(response.MsgInvalidID))

	require.NoError(t, err)
	assert.Equal(t, http.StatusTeapot, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"success":false,"message":"Invalid Id"}`, rr.Body.String())
}

func TestErrorEnvelopes(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")

	tests := []struct {
		name string
		resp response.Response
		want response.Response
	}{
		{
			name: "server error",
			resp: response.ServerError(boom),
			want: response.Response{Message: "Server error, Try again", Error: "boom"},
		},
		{
			name: "read error",
			resp: response.ReadError(boom),
			want: response.Response{EmpData: "Server error, Try again", Error: "boom"},
		},
		{
			name: "general error",
			resp: response.GeneralError(boom),
			want: response.Response{Message: "Invalid request body", Error: "boom"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.resp)
		})
	}
}

func TestValidationError(t *testing.T) {
	t.Parallel()

	err := validator.New().Struct(types.Employee{EmployeeName: "Ada", Department: "Eng"})

	var validateErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validateErrs)

	got := response.ValidationError(validateErrs)

	assert.False(t, got.Success)
	assert.Equal(t, response.MsgFieldsRequired, got.Message)
	assert.Equal(t, "field MobileNumber is required, field Salary is required", got.Error)
}

func TestAffectedResponseKeepsZero(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	require.NoError(t, response.WriteJSON(rr, http.StatusOK, response.AffectedResponse{
		Success: true,
		Message: response.MsgUpdated,
	}))

	assert.JSONEq(t, `{"success":true,"message":"Employee updated successfully","affectedRows":0}`,
		rr.Body.String())
}

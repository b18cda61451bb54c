package rosterclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiftdeck/shiftdeck/pkg/core/model"
)

func TestListEmployees(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/employees", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]model.Employee{
			{ID: "e1", Name: "Alice Smith", Role: "Barista", MaxWeeklyHours: 40},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	employees, err := client.ListEmployees(context.Background())

	require.NoError(t, err)
	require.Len(t, employees, 1)
	assert.Equal(t, "Alice Smith", employees[0].Name)
	assert.Equal(t, 40, employees[0].MaxWeeklyHours)
}

func TestListEmployees_EmptyIsNotAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("[]"))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	employees, err := client.ListEmployees(context.Background())

	require.NoError(t, err)
	assert.Empty(t, employees)
}

func TestCreateEmployee_SendsPayload(t *testing.T) {
	var received model.EmployeePayload
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(model.Employee{ID: "e9", Name: received.Name, Role: received.Role})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	employee, err := client.CreateEmployee(context.Background(), model.EmployeePayload{
		Name: "Bob Jones", Role: "Manager", MaxWeeklyHours: 35,
	})

	require.NoError(t, err)
	assert.Equal(t, "e9", employee.ID)
	assert.Equal(t, "Bob Jones", received.Name)
	assert.Equal(t, 35, received.MaxWeeklyHours)
}

func TestCreateEmployee_ClientSideValidation(t *testing.T) {
	// The server must never see a payload that fails the required-field check.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("request should not have been sent")
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.CreateEmployee(context.Background(), model.EmployeePayload{Role: "Manager"})

	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestGetEmployee_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"message": "not found"})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.GetEmployee(context.Background(), "missing")

	var notFoundErr *NotFoundError
	require.ErrorAs(t, err, &notFoundErr)
	assert.Equal(t, "employees", notFoundErr.Resource)
	assert.Equal(t, "missing", notFoundErr.ID)
}

func TestCreateAssignment_ServerValidationError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"message": "employeeId does not reference an existing employee"})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	date, err := model.ParseDate("2025-10-28")
	require.NoError(t, err)
	_, err = client.CreateAssignment(context.Background(), model.AssignmentPayload{
		EmployeeID: "ghost", ShiftID: "s1", Date: date,
	})

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Message, "employeeId")
}

func TestDo_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.ListShifts(context.Background())

	var serverErr *ServerError
	require.ErrorAs(t, err, &serverErr)
	assert.Equal(t, http.StatusInternalServerError, serverErr.StatusCode)
}

func TestDo_NetworkError(t *testing.T) {
	// Nothing listens here.
	client := NewClient("http://127.0.0.1:1")
	_, err := client.ListEmployees(context.Background())

	var netErr *NetworkError
	assert.ErrorAs(t, err, &netErr)
}

func TestErrorKindsAreDistinct(t *testing.T) {
	var validationErr *ValidationError
	var notFoundErr *NotFoundError

	err := error(&ServerError{StatusCode: 500})
	assert.False(t, errors.As(err, &validationErr))
	assert.False(t, errors.As(err, &notFoundErr))
}

func TestListAssignments_QueryParameters(t *testing.T) {
	var query map[string][]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
		w.Write([]byte("[]"))
	}))
	defer server.Close()

	start, err := model.ParseDate("2025-10-27")
	require.NoError(t, err)
	end, err := model.ParseDate("2025-11-02")
	require.NoError(t, err)

	client := NewClient(server.URL)
	_, err = client.ListAssignments(context.Background(), AssignmentFilter{
		StartDate:  start,
		EndDate:    end,
		EmployeeID: "e1",
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"2025-10-27"}, query["startDate"])
	assert.Equal(t, []string{"2025-11-02"}, query["endDate"])
	assert.Equal(t, []string{"e1"}, query["employeeId"])
	assert.NotContains(t, query, "shiftId")
}

func TestDeleteEmployee_NoContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/employees/e1", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	assert.NoError(t, client.DeleteEmployee(context.Background(), "e1"))
}

func TestClient_SendsConfiguredHeaders(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte("[]"))
	}))
	defer server.Close()

	client := NewClient(server.URL, WithHeaders(map[string]string{"Authorization": "Bearer token"}))
	_, err := client.ListEmployees(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "Bearer token", gotAuth)
}

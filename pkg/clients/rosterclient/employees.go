package rosterclient

import (
	"context"
	"net/http"

	"github.com/shiftdeck/shiftdeck/pkg/core/model"
)

// ListEmployees fetches all employees. An empty list is a valid result.
func (c *Client) ListEmployees(ctx context.Context) ([]model.Employee, error) {
	employees := []model.Employee{}
	if err := c.do(ctx, http.MethodGet, "/employees", nil, nil, &employees); err != nil {
		return nil, err
	}
	return employees, nil
}

// GetEmployee fetches a single employee by id.
func (c *Client) GetEmployee(ctx context.Context, id string) (*model.Employee, error) {
	var employee model.Employee
	if err := c.do(ctx, http.MethodGet, "/employees/"+id, nil, nil, &employee); err != nil {
		return nil, err
	}
	return &employee, nil
}

// CreateEmployee creates an employee; the server assigns the identifier.
func (c *Client) CreateEmployee(ctx context.Context, payload model.EmployeePayload) (*model.Employee, error) {
	if err := c.checkPayload(payload); err != nil {
		return nil, err
	}
	var employee model.Employee
	if err := c.do(ctx, http.MethodPost, "/employees", nil, payload, &employee); err != nil {
		return nil, err
	}
	return &employee, nil
}

// UpdateEmployee replaces the employee record with the given id.
func (c *Client) UpdateEmployee(ctx context.Context, id string, payload model.EmployeePayload) (*model.Employee, error) {
	if err := c.checkPayload(payload); err != nil {
		return nil, err
	}
	var employee model.Employee
	if err := c.do(ctx, http.MethodPut, "/employees/"+id, nil, payload, &employee); err != nil {
		return nil, err
	}
	return &employee, nil
}

// DeleteEmployee removes the employee with the given id.
func (c *Client) DeleteEmployee(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/employees/"+id, nil, nil, nil)
}

package rosterclient

import (
	"context"
	"net/http"
	"net/url"

	"github.com/shiftdeck/shiftdeck/pkg/core/model"
)

// AssignmentFilter narrows an assignment listing. StartDate/EndDate form an
// inclusive calendar-date range; filtering happens server-side.
type AssignmentFilter struct {
	StartDate  model.Date
	EndDate    model.Date
	EmployeeID string
	ShiftID    string
}

func (f AssignmentFilter) query() url.Values {
	q := url.Values{}
	if !f.StartDate.IsZero() {
		q.Set("startDate", f.StartDate.String())
	}
	if !f.EndDate.IsZero() {
		q.Set("endDate", f.EndDate.String())
	}
	if f.EmployeeID != "" {
		q.Set("employeeId", f.EmployeeID)
	}
	if f.ShiftID != "" {
		q.Set("shiftId", f.ShiftID)
	}
	return q
}

// ListAssignments fetches assignments matching the filter. A zero filter
// fetches everything.
func (c *Client) ListAssignments(ctx context.Context, filter AssignmentFilter) ([]model.Assignment, error) {
	assignments := []model.Assignment{}
	if err := c.do(ctx, http.MethodGet, "/assignments", filter.query(), nil, &assignments); err != nil {
		return nil, err
	}
	return assignments, nil
}

// GetAssignment fetches a single assignment by id.
func (c *Client) GetAssignment(ctx context.Context, id string) (*model.Assignment, error) {
	var assignment model.Assignment
	if err := c.do(ctx, http.MethodGet, "/assignments/"+id, nil, nil, &assignment); err != nil {
		return nil, err
	}
	return &assignment, nil
}

// CreateAssignment places an employee on a shift for one date. The server
// rejects references to unknown employees or shifts with a validation error.
func (c *Client) CreateAssignment(ctx context.Context, payload model.AssignmentPayload) (*model.Assignment, error) {
	if err := c.checkPayload(payload); err != nil {
		return nil, err
	}
	var assignment model.Assignment
	if err := c.do(ctx, http.MethodPost, "/assignments", nil, payload, &assignment); err != nil {
		return nil, err
	}
	return &assignment, nil
}

// UpdateAssignment replaces the assignment with the given id.
func (c *Client) UpdateAssignment(ctx context.Context, id string, payload model.AssignmentPayload) (*model.Assignment, error) {
	if err := c.checkPayload(payload); err != nil {
		return nil, err
	}
	var assignment model.Assignment
	if err := c.do(ctx, http.MethodPut, "/assignments/"+id, nil, payload, &assignment); err != nil {
		return nil, err
	}
	return &assignment, nil
}

// DeleteAssignment removes the assignment with the given id.
func (c *Client) DeleteAssignment(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/assignments/"+id, nil, nil, nil)
}

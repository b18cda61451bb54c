package rosterclient

import (
	"context"
	"net/http"

	"github.com/shiftdeck/shiftdeck/pkg/core/model"
)

// ListShifts fetches all shift templates.
func (c *Client) ListShifts(ctx context.Context) ([]model.ShiftTemplate, error) {
	shifts := []model.ShiftTemplate{}
	if err := c.do(ctx, http.MethodGet, "/shifts", nil, nil, &shifts); err != nil {
		return nil, err
	}
	return shifts, nil
}

// GetShift fetches a single shift template by id.
func (c *Client) GetShift(ctx context.Context, id string) (*model.ShiftTemplate, error) {
	var shift model.ShiftTemplate
	if err := c.do(ctx, http.MethodGet, "/shifts/"+id, nil, nil, &shift); err != nil {
		return nil, err
	}
	return &shift, nil
}

// CreateShift creates a shift template; the server assigns the identifier.
func (c *Client) CreateShift(ctx context.Context, payload model.ShiftPayload) (*model.ShiftTemplate, error) {
	if err := c.checkPayload(payload); err != nil {
		return nil, err
	}
	var shift model.ShiftTemplate
	if err := c.do(ctx, http.MethodPost, "/shifts", nil, payload, &shift); err != nil {
		return nil, err
	}
	return &shift, nil
}

// UpdateShift replaces the shift template with the given id.
func (c *Client) UpdateShift(ctx context.Context, id string, payload model.ShiftPayload) (*model.ShiftTemplate, error) {
	if err := c.checkPayload(payload); err != nil {
		return nil, err
	}
	var shift model.ShiftTemplate
	if err := c.do(ctx, http.MethodPut, "/shifts/"+id, nil, payload, &shift); err != nil {
		return nil, err
	}
	return &shift, nil
}

// DeleteShift removes the shift template with the given id.
func (c *Client) DeleteShift(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/shifts/"+id, nil, nil, nil)
}

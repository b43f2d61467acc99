package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// ShiftInput is the form payload for creating or updating a shift.
// Times are "HH:MM"; DaysOfWeek holds lowercase weekday names and is
// comma-joined on the wire.
type ShiftInput struct {
	Name          string
	StartTime     string
	EndTime       string
	CheckInStart  string
	CheckInEnd    string
	CheckOutStart string
	CheckOutEnd   string
	DaysOfWeek    []string
}

func (in ShiftInput) form() url.Values {
	return url.Values{
		"shift_name":      {in.Name},
		"start_time":      {in.StartTime},
		"end_time":        {in.EndTime},
		"check_in_start":  {in.CheckInStart},
		"check_in_end":    {in.CheckInEnd},
		"check_out_start": {in.CheckOutStart},
		"check_out_end":   {in.CheckOutEnd},
		"days_of_week":    {strings.Join(in.DaysOfWeek, ",")},
	}
}

type shiftsResponse struct {
	Shifts []Shift `json:"shifts"`
}

// Shifts fetches all active shifts.
func (c *Client) Shifts(ctx context.Context) ([]Shift, error) {
	var out shiftsResponse
	if err := c.get(ctx, "/api/admin/shifts", nil, &out); err != nil {
		return nil, err
	}
	return out.Shifts, nil
}

type createShiftResponse struct {
	Message string `json:"message"`
	ShiftID int    `json:"shift_id"`
}

// CreateShift creates a shift and returns its server-assigned ID.
func (c *Client) CreateShift(ctx context.Context, in ShiftInput) (int, error) {
	var out createShiftResponse
	if err := c.postForm(ctx, "POST", "/api/admin/shifts", in.form(), &out); err != nil {
		return 0, err
	}
	return out.ShiftID, nil
}

// UpdateShift replaces all fields of an existing shift.
func (c *Client) UpdateShift(ctx context.Context, shiftID int, in ShiftInput) error {
	return c.postForm(ctx, "PUT", fmt.Sprintf("/api/admin/shifts/%d", shiftID), in.form(), nil)
}

// DeleteShift removes a shift. The backend refuses while employees are
// still assigned to it.
func (c *Client) DeleteShift(ctx context.Context, shiftID int) error {
	return c.delete(ctx, fmt.Sprintf("/api/admin/shifts/%d", shiftID), nil)
}

// AssignShift assigns a shift to an employee from effectiveFrom
// (YYYY-MM-DD). effectiveTo may be empty for an open-ended assignment.
// Any previous assignment is deactivated server-side.
func (c *Client) AssignShift(ctx context.Context, employeeID string, shiftID int, effectiveFrom, effectiveTo string) error {
	form := url.Values{
		"shift_id":       {strconv.Itoa(shiftID)},
		"effective_from": {effectiveFrom},
	}
	if effectiveTo != "" {
		form.Set("effective_to", effectiveTo)
	}
	path := "/api/admin/employees/" + url.PathEscape(employeeID) + "/assign-shift"
	return c.postForm(ctx, "POST", path, form, nil)
}

type employeeShiftResponse struct {
	Shift *EmployeeShift `json:"shift"`
}

// EmployeeShiftAssignment fetches an employee's active shift, or nil when
// none is assigned.
func (c *Client) EmployeeShiftAssignment(ctx context.Context, employeeID string) (*EmployeeShift, error) {
	var out employeeShiftResponse
	path := "/api/admin/employees/" + url.PathEscape(employeeID) + "/shift"
	if err := c.get(ctx, path, nil, &out); err != nil {
		return nil, err
	}
	return out.Shift, nil
}

package api

import (
	"context"
	"fmt"
	"mime/multipart"
	"net/url"
	"strconv"

	"attendctl/internal/capture"
)

// Registration is the input for registering a new employee. Validation
// happens locally before submission (see internal/validate).
type Registration struct {
	EmployeeID string
	Name       string
	Email      string
	Password   string
	Role       string
	Image      capture.Image
}

type registerResponse struct {
	Message    string `json:"message"`
	EmployeeID string `json:"employee_id"`
}

// RegisterEmployee creates an employee with face data. Admin only.
func (c *Client) RegisterEmployee(ctx context.Context, reg Registration) (string, error) {
	var out registerResponse
	err := c.postMultipart(ctx, "POST", "/api/admin/register-employee", func(w *multipart.Writer) error {
		fields := [][2]string{
			{"employee_id", reg.EmployeeID},
			{"name", reg.Name},
			{"email", reg.Email},
			{"password", reg.Password},
			{"role", reg.Role},
		}
		for _, f := range fields {
			if err := w.WriteField(f[0], f[1]); err != nil {
				return fmt.Errorf("writing %s field: %w", f[0], err)
			}
		}
		return capture.Attach(w, reg.Image)
	}, &out)
	if err != nil {
		return "", err
	}
	return out.Message, nil
}

// AttendanceFilter narrows the admin attendance listing. Zero values
// mean "no filter".
type AttendanceFilter struct {
	Date       string
	EmployeeID string
}

type attendanceResponse struct {
	Records    []AttendanceRecord `json:"records"`
	Pagination Pagination         `json:"pagination"`
}

// Attendance fetches one page of all employees' attendance records.
func (c *Client) Attendance(ctx context.Context, filter AttendanceFilter, page, limit int) ([]AttendanceRecord, Pagination, error) {
	q := url.Values{
		"page":  {strconv.Itoa(page)},
		"limit": {strconv.Itoa(limit)},
	}
	if filter.Date != "" {
		q.Set("date", filter.Date)
	}
	if filter.EmployeeID != "" {
		q.Set("employee_id", filter.EmployeeID)
	}
	var out attendanceResponse
	if err := c.get(ctx, "/api/admin/attendance", q, &out); err != nil {
		return nil, Pagination{}, err
	}
	return out.Records, out.Pagination, nil
}

type employeesResponse struct {
	Employees  []Employee `json:"employees"`
	Pagination Pagination `json:"pagination"`
}

// Employees fetches one page of the employee roster.
func (c *Client) Employees(ctx context.Context, page, limit int) ([]Employee, Pagination, error) {
	q := url.Values{
		"page":  {strconv.Itoa(page)},
		"limit": {strconv.Itoa(limit)},
	}
	var out employeesResponse
	if err := c.get(ctx, "/api/admin/employees", q, &out); err != nil {
		return nil, Pagination{}, err
	}
	return out.Employees, out.Pagination, nil
}

// SetEmployeeStatus activates or deactivates an employee.
func (c *Client) SetEmployeeStatus(ctx context.Context, employeeID string, active bool) error {
	q := url.Values{"is_active": {strconv.FormatBool(active)}}
	path := "/api/admin/employees/" + url.PathEscape(employeeID) + "/status"
	return c.postJSON(ctx, "PATCH", path, q, nil, nil)
}

// DeleteEmployee permanently removes an employee. The backend refuses
// self-deletion.
func (c *Client) DeleteEmployee(ctx context.Context, employeeID string) error {
	return c.delete(ctx, "/api/admin/employees/"+url.PathEscape(employeeID), nil)
}

// AnalyticsReport fetches aggregate attendance figures, optionally bounded
// by start/end dates (YYYY-MM-DD, either may be empty).
func (c *Client) AnalyticsReport(ctx context.Context, startDate, endDate string) (*Analytics, error) {
	q := url.Values{}
	if startDate != "" {
		q.Set("start_date", startDate)
	}
	if endDate != "" {
		q.Set("end_date", endDate)
	}
	var out Analytics
	if err := c.get(ctx, "/api/admin/analytics", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type settingsResponse struct {
	Settings []Setting `json:"settings"`
}

// Settings fetches all system settings.
func (c *Client) Settings(ctx context.Context) ([]Setting, error) {
	var out settingsResponse
	if err := c.get(ctx, "/api/admin/settings", nil, &out); err != nil {
		return nil, err
	}
	return out.Settings, nil
}

// UpdateSetting sets a single setting value.
func (c *Client) UpdateSetting(ctx context.Context, key, value string) error {
	form := url.Values{"value": {value}}
	return c.postForm(ctx, "PUT", "/api/admin/settings/"+url.PathEscape(key), form, nil)
}

type bulkUpdateResponse struct {
	Message string   `json:"message"`
	Updated []string `json:"updated"`
}

// BulkUpdateSettings sets several settings in one call and returns the
// keys the server actually updated.
func (c *Client) BulkUpdateSettings(ctx context.Context, settings map[string]string) ([]string, error) {
	var out bulkUpdateResponse
	if err := c.postJSON(ctx, "POST", "/api/admin/settings/bulk-update", nil, settings, &out); err != nil {
		return nil, err
	}
	return out.Updated, nil
}

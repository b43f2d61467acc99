package api

import (
	"context"
	"fmt"
	"mime/multipart"
	"net/url"
	"strconv"

	"attendctl/internal/capture"
)

// CheckIn submits a check-in: coordinates plus the captured face image as
// a multipart form. The backend validates geofence, shift window and face
// match; the confirmation carries its verdict.
func (c *Client) CheckIn(ctx context.Context, lat, lon float64, img capture.Image) (*CheckResult, error) {
	return c.submitAttendance(ctx, "/api/attendance/check-in", lat, lon, img)
}

// CheckOut submits a check-out; same payload shape as CheckIn.
func (c *Client) CheckOut(ctx context.Context, lat, lon float64, img capture.Image) (*CheckResult, error) {
	return c.submitAttendance(ctx, "/api/attendance/check-out", lat, lon, img)
}

func (c *Client) submitAttendance(ctx context.Context, path string, lat, lon float64, img capture.Image) (*CheckResult, error) {
	var out CheckResult
	err := c.postMultipart(ctx, "POST", path, func(w *multipart.Writer) error {
		if err := w.WriteField("latitude", formatCoord(lat)); err != nil {
			return fmt.Errorf("writing latitude: %w", err)
		}
		if err := w.WriteField("longitude", formatCoord(lon)); err != nil {
			return fmt.Errorf("writing longitude: %w", err)
		}
		return capture.Attach(w, img)
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Status fetches the logged-in employee's attendance state for today.
func (c *Client) Status(ctx context.Context) (*DayStatus, error) {
	var out DayStatus
	if err := c.get(ctx, "/api/employee/status", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type myAttendanceResponse struct {
	Records    []AttendanceRecord `json:"records"`
	Pagination Pagination         `json:"pagination"`
}

// MyAttendance fetches one page of the caller's attendance history.
func (c *Client) MyAttendance(ctx context.Context, page, limit int) ([]AttendanceRecord, Pagination, error) {
	q := url.Values{
		"page":  {strconv.Itoa(page)},
		"limit": {strconv.Itoa(limit)},
	}
	var out myAttendanceResponse
	if err := c.get(ctx, "/api/employee/my-attendance", q, &out); err != nil {
		return nil, Pagination{}, err
	}
	return out.Records, out.Pagination, nil
}

// MyProfile fetches the caller's profile and attendance statistics.
func (c *Client) MyProfile(ctx context.Context) (*Profile, error) {
	var out Profile
	if err := c.get(ctx, "/api/employee/profile", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

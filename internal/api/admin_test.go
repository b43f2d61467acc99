package api_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"attendctl/internal/api"
	"attendctl/internal/capture"
)

func TestRegisterEmployeeMultipart(t *testing.T) {
	imgPath := filepath.Join(t.TempDir(), "face.jpg")
	if err := os.WriteFile(imgPath, []byte{0xff, 0xd8, 0xff, 0xe0}, 0o600); err != nil {
		t.Fatal(err)
	}
	img, err := capture.Parse(imgPath)
	if err != nil {
		t.Fatal(err)
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("parsing multipart form: %v", err)
		}
		for field, want := range map[string]string{
			"employee_id": "EMP002",
			"name":        "Grace Hopper",
			"email":       "grace@example.com",
			"password":    "Valid1Pass",
			"role":        "employee",
		} {
			if got := r.FormValue(field); got != want {
				t.Errorf("%s = %q, want %q", field, got, want)
			}
		}
		files := r.MultipartForm.File["face_image"]
		if len(files) != 1 {
			t.Fatalf("face_image parts = %d, want 1", len(files))
		}
		if len(r.MultipartForm.Value["face_image_base64"]) != 0 {
			t.Error("file submission must not carry the base64 field")
		}
		w.Write([]byte(`{"message":"Employee registered successfully","employee_id":"EMP002"}`))
	}))
	defer srv.Close()

	client := api.New(srv.URL, "tok")
	msg, err := client.RegisterEmployee(context.Background(), api.Registration{
		EmployeeID: "EMP002",
		Name:       "Grace Hopper",
		Email:      "grace@example.com",
		Password:   "Valid1Pass",
		Role:       "employee",
		Image:      img,
	})
	if err != nil {
		t.Fatalf("RegisterEmployee: %v", err)
	}
	if msg != "Employee registered successfully" {
		t.Errorf("message = %q", msg)
	}
}

func TestSetEmployeeStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch {
			t.Errorf("method = %s, want PATCH", r.Method)
		}
		if r.URL.Path != "/api/admin/employees/EMP002/status" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("is_active"); got != "false" {
			t.Errorf("is_active = %q, want false", got)
		}
		w.Write([]byte(`{"message":"Employee deactivated successfully"}`))
	}))
	defer srv.Close()

	client := api.New(srv.URL, "tok")
	if err := client.SetEmployeeStatus(context.Background(), "EMP002", false); err != nil {
		t.Fatalf("SetEmployeeStatus: %v", err)
	}
}

func TestCreateShiftForm(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Fatal(err)
		}
		if got := r.PostFormValue("shift_name"); got != "Morning" {
			t.Errorf("shift_name = %q", got)
		}
		if got := r.PostFormValue("days_of_week"); got != "monday,tuesday,wednesday" {
			t.Errorf("days_of_week = %q, want comma-joined", got)
		}
		if got := r.PostFormValue("check_in_start"); got != "06:00" {
			t.Errorf("check_in_start = %q", got)
		}
		w.Write([]byte(`{"message":"Shift created successfully","shift_id":3}`))
	}))
	defer srv.Close()

	client := api.New(srv.URL, "tok")
	id, err := client.CreateShift(context.Background(), api.ShiftInput{
		Name:          "Morning",
		StartTime:     "08:00",
		EndTime:       "16:00",
		CheckInStart:  "06:00",
		CheckInEnd:    "10:00",
		CheckOutStart: "15:00",
		CheckOutEnd:   "23:59",
		DaysOfWeek:    []string{"monday", "tuesday", "wednesday"},
	})
	if err != nil {
		t.Fatalf("CreateShift: %v", err)
	}
	if id != 3 {
		t.Errorf("shift id = %d, want 3", id)
	}
}

func TestAssignShiftOpenEnded(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Fatal(err)
		}
		if got := r.PostFormValue("shift_id"); got != "3" {
			t.Errorf("shift_id = %q", got)
		}
		if got := r.PostFormValue("effective_from"); got != "2026-09-01" {
			t.Errorf("effective_from = %q", got)
		}
		if _, present := r.PostForm["effective_to"]; present {
			t.Error("open-ended assignment must omit effective_to")
		}
		w.Write([]byte(`{"message":"Shift assigned successfully"}`))
	}))
	defer srv.Close()

	client := api.New(srv.URL, "tok")
	if err := client.AssignShift(context.Background(), "EMP002", 3, "2026-09-01", ""); err != nil {
		t.Fatalf("AssignShift: %v", err)
	}
}

func TestEmployeeShiftNull(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"shift":null}`))
	}))
	defer srv.Close()

	client := api.New(srv.URL, "tok")
	shift, err := client.EmployeeShiftAssignment(context.Background(), "EMP002")
	if err != nil {
		t.Fatalf("EmployeeShiftAssignment: %v", err)
	}
	if shift != nil {
		t.Errorf("shift = %+v, want nil", shift)
	}
}

func TestBulkUpdateSettings(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("content type = %q, want application/json", ct)
		}
		w.Write([]byte(`{"message":"Updated 2 settings","updated":["geofence_radius","office_lat"]}`))
	}))
	defer srv.Close()

	client := api.New(srv.URL, "tok")
	updated, err := client.BulkUpdateSettings(context.Background(), map[string]string{
		"geofence_radius": "0.5",
		"office_lat":      "6.5991886",
	})
	if err != nil {
		t.Fatalf("BulkUpdateSettings: %v", err)
	}
	if len(updated) != 2 {
		t.Errorf("updated = %v, want 2 keys", updated)
	}
}

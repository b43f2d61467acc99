package api

// Wire types for the attendance backend. Nullable columns come back as
// JSON null, hence the pointer fields.

// Pagination is the cursor the backend attaches to every paged list.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

// Location is a latitude/longitude pair.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// CheckResult is the confirmation returned by check-in and check-out.
type CheckResult struct {
	Message  string `json:"message"`
	Time     string `json:"time"`
	Location struct {
		Latitude   float64 `json:"latitude"`
		Longitude  float64 `json:"longitude"`
		Validation string  `json:"validation"`
	} `json:"location"`
	Confidence float64 `json:"confidence"`
}

// DayStatus is the current day's attendance state for the logged-in employee.
type DayStatus struct {
	CheckedIn    bool    `json:"checked_in"`
	CheckedOut   bool    `json:"checked_out"`
	CheckInTime  *string `json:"check_in_time"`
	CheckOutTime *string `json:"check_out_time"`
	Status       string  `json:"status"`
	Date         string  `json:"date"`
}

// AttendanceRecord is one row of an attendance listing. Name and Email are
// only populated by the admin listing, which joins the employee table.
type AttendanceRecord struct {
	ID                 int       `json:"id"`
	EmployeeID         string    `json:"employee_id,omitempty"`
	Name               string    `json:"name,omitempty"`
	Email              string    `json:"email,omitempty"`
	Date               string    `json:"date"`
	CheckInTime        *string   `json:"check_in_time"`
	CheckOutTime       *string   `json:"check_out_time"`
	CheckInLocation    *Location `json:"check_in_location"`
	CheckOutLocation   *Location `json:"check_out_location"`
	CheckInConfidence  *float64  `json:"check_in_confidence"`
	CheckOutConfidence *float64  `json:"check_out_confidence"`
	Status             string    `json:"status"`
}

// Employee is one row of the admin employee listing.
type Employee struct {
	EmployeeID string `json:"employee_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	IsActive   bool   `json:"is_active"`
	CreatedAt  string `json:"created_at"`
}

// Profile is the logged-in employee's record plus attendance statistics.
type Profile struct {
	Employee struct {
		EmployeeID string `json:"employee_id"`
		Name       string `json:"name"`
		Email      string `json:"email"`
		Role       string `json:"role"`
		JoinedDate string `json:"joined_date"`
	} `json:"employee"`
	Statistics struct {
		TotalAttendanceDays int     `json:"total_attendance_days"`
		CompleteDays        int     `json:"complete_days"`
		AverageConfidence   float64 `json:"average_confidence"`
	} `json:"statistics"`
}

// Analytics is the aggregate attendance report for a date range.
type Analytics struct {
	TotalRecords      int `json:"total_records"`
	CompleteDays      int `json:"complete_days"`
	IncompleteDays    int `json:"incomplete_days"`
	AverageConfidence struct {
		CheckIn  float64 `json:"check_in"`
		CheckOut float64 `json:"check_out"`
	} `json:"average_confidence"`
	TopEmployees []struct {
		Name           string `json:"name"`
		EmployeeID     string `json:"employee_id"`
		AttendanceDays int    `json:"attendance_days"`
	} `json:"top_employees"`
}

// Setting is one system setting row.
type Setting struct {
	Key         string `json:"key"`
	Value       string `json:"value"`
	Description string `json:"description"`
	UpdatedAt   string `json:"updated_at"`
	UpdatedBy   string `json:"updated_by"`
}

// Shift is a configured work shift. Times are "HH:MM" strings; DaysOfWeek
// holds lowercase weekday names.
type Shift struct {
	ID            int      `json:"id"`
	ShiftName     string   `json:"shift_name"`
	StartTime     string   `json:"start_time"`
	EndTime       string   `json:"end_time"`
	CheckInStart  string   `json:"check_in_start"`
	CheckInEnd    string   `json:"check_in_end"`
	CheckOutStart string   `json:"check_out_start"`
	CheckOutEnd   string   `json:"check_out_end"`
	DaysOfWeek    []string `json:"days_of_week"`
	EmployeeCount int      `json:"employee_count,omitempty"`
	CreatedAt     string   `json:"created_at,omitempty"`
}

// EmployeeShift is an employee's active shift assignment; the effective
// window bounds when the assignment applies. EffectiveTo nil means
// open-ended.
type EmployeeShift struct {
	Shift
	EffectiveFrom string  `json:"effective_from"`
	EffectiveTo   *string `json:"effective_to"`
}

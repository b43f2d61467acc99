// Package validate performs the local pre-submit checks; anything it
// rejects never reaches the network.
package validate

import (
	"fmt"
	"regexp"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var employeeIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

var v = func() *validator.Validate {
	val := validator.New()
	if err := val.RegisterValidation("password", func(fl validator.FieldLevel) bool {
		return PasswordOK(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	if err := val.RegisterValidation("employee_id", func(fl validator.FieldLevel) bool {
		return employeeIDPattern.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return val
}()

// PasswordOK applies the registration password policy: at least 8
// characters with one uppercase letter, one lowercase letter and one
// digit. The rule mirrors the backend's so rejects happen locally.
func PasswordOK(pw string) bool {
	if len(pw) < 8 {
		return false
	}
	var upper, lower, digit bool
	for _, r := range pw {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	return upper && lower && digit
}

// Registration is the locally validated employee registration input.
type Registration struct {
	EmployeeID string `validate:"required,min=3,max=50,employee_id"`
	Name       string `validate:"required,min=2,max=100"`
	Email      string `validate:"required,email"`
	Password   string `validate:"required,password"`
	Role       string `validate:"required,oneof=admin employee"`
}

// registrationMessages maps field+tag to a human message, in field order.
var registrationMessages = map[string]string{
	"EmployeeID.required":    "employee ID is required",
	"EmployeeID.min":         "employee ID must be 3-50 characters",
	"EmployeeID.max":         "employee ID must be 3-50 characters",
	"EmployeeID.employee_id": "employee ID may contain only letters, digits, hyphens and underscores",
	"Name.required":          "name is required",
	"Name.min":               "name must be 2-100 characters",
	"Name.max":               "name must be 2-100 characters",
	"Email.required":         "email is required",
	"Email.email":            "email address is not valid",
	"Password.required":      "password is required",
	"Password.password":      "password must be at least 8 characters with one uppercase letter, one lowercase letter and one digit",
	"Role.required":          "role is required",
	"Role.oneof":             `role must be "admin" or "employee"`,
}

// RegistrationInput validates reg and returns the first failure as a
// plain message.
func RegistrationInput(reg Registration) error {
	err := v.Struct(reg)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return err
	}
	fe := verrs[0]
	if msg, found := registrationMessages[fe.StructField()+"."+fe.Tag()]; found {
		return fmt.Errorf("%s", msg)
	}
	return fmt.Errorf("invalid %s", fe.StructField())
}

// Credentials checks login input.
func Credentials(email, password string) error {
	err := v.Var(email, "required,email")
	if err != nil {
		return fmt.Errorf("email address is not valid")
	}
	if password == "" {
		return fmt.Errorf("password is required")
	}
	return nil
}

package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"attendctl/internal/api"
	"attendctl/internal/capture"
	"attendctl/internal/pager"
	"attendctl/internal/validate"
)

var (
	employeesLimit int
	employeesAll   bool

	registerID       string
	registerName     string
	registerEmail    string
	registerPassword string
	registerRole     string
	registerImage    string

	employeeYes bool
)

var adminEmployeesCmd = &cobra.Command{
	Use:   "employees",
	Short: "Manage employees",
}

var employeesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List employees",
	Args:  cobra.NoArgs,
	RunE:  runEmployeesList,
}

var employeesRegisterCmd = &cobra.Command{
	Use:   "register",
	Short: "Register a new employee with face data",
	Args:  cobra.NoArgs,
	RunE:  runEmployeesRegister,
}

var employeesActivateCmd = &cobra.Command{
	Use:   "activate <employee-id>",
	Short: "Activate an employee",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runEmployeeStatus(args[0], true)
	},
}

var employeesDeactivateCmd = &cobra.Command{
	Use:   "deactivate <employee-id>",
	Short: "Deactivate an employee",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runEmployeeStatus(args[0], false)
	},
}

var employeesDeleteCmd = &cobra.Command{
	Use:   "delete <employee-id>",
	Short: "Permanently delete an employee",
	Args:  cobra.ExactArgs(1),
	RunE:  runEmployeesDelete,
}

func init() {
	employeesListCmd.Flags().IntVar(&employeesLimit, "limit", 50, "Records per page")
	employeesListCmd.Flags().BoolVar(&employeesAll, "all", false, "Load every page")

	employeesRegisterCmd.Flags().StringVar(&registerID, "id", "", "Employee ID (required)")
	employeesRegisterCmd.Flags().StringVar(&registerName, "name", "", "Full name (required)")
	employeesRegisterCmd.Flags().StringVar(&registerEmail, "email", "", "Email address (required)")
	employeesRegisterCmd.Flags().StringVar(&registerPassword, "password", "", "Initial password (required)")
	employeesRegisterCmd.Flags().StringVar(&registerRole, "role", "employee", "Role: employee or admin")
	employeesRegisterCmd.Flags().StringVar(&registerImage, "image", "", "Face image: JPEG path or base64 data URI (required)")
	_ = employeesRegisterCmd.MarkFlagRequired("id")
	_ = employeesRegisterCmd.MarkFlagRequired("name")
	_ = employeesRegisterCmd.MarkFlagRequired("email")
	_ = employeesRegisterCmd.MarkFlagRequired("password")
	_ = employeesRegisterCmd.MarkFlagRequired("image")

	employeesDeactivateCmd.Flags().BoolVar(&employeeYes, "yes", false, "Skip the confirmation prompt")
	employeesDeleteCmd.Flags().BoolVar(&employeeYes, "yes", false, "Skip the confirmation prompt")

	adminEmployeesCmd.AddCommand(employeesListCmd)
	adminEmployeesCmd.AddCommand(employeesRegisterCmd)
	adminEmployeesCmd.AddCommand(employeesActivateCmd)
	adminEmployeesCmd.AddCommand(employeesDeactivateCmd)
	adminEmployeesCmd.AddCommand(employeesDeleteCmd)
	adminEmployeesCmd.AddCommand(employeeShiftCmd)
}

func employeesPager(client *api.Client, limit int) *pager.Pager[api.Employee] {
	return pager.New(func(ctx context.Context, page, limit int) ([]api.Employee, api.Pagination, error) {
		return client.Employees(ctx, page, limit)
	}, limit)
}

func listEmployees(client *api.Client) {
	ctx := context.Background()
	p := employeesPager(client, employeesLimit)
	if err := p.Refresh(ctx); err != nil {
		fail(err)
	}
	for employeesAll && p.HasMore() {
		if _, err := p.LoadMore(ctx); err != nil {
			fail(err)
		}
	}

	for _, e := range p.Records() {
		state := "active"
		if !e.IsActive {
			state = "inactive"
		}
		fmt.Printf("%-12s %-24s %-28s %-8s %s\n", e.EmployeeID, e.Name, e.Email, e.Role, state)
	}
	if p.HasMore() {
		fmt.Printf("(%d of %d employees shown; use --all for everything)\n",
			len(p.Records()), p.Cursor().Total)
	}
}

func runEmployeesList(cmd *cobra.Command, args []string) error {
	listEmployees(adminClient())
	return nil
}

func runEmployeesRegister(cmd *cobra.Command, args []string) error {
	// Validate everything locally first; a bad password or ID never
	// leaves the machine.
	if err := validate.RegistrationInput(validate.Registration{
		EmployeeID: registerID,
		Name:       registerName,
		Email:      registerEmail,
		Password:   registerPassword,
		Role:       registerRole,
	}); err != nil {
		fail(api.Validationf("%v", err))
	}
	img, err := capture.Parse(registerImage)
	if err != nil {
		fail(err)
	}

	client := adminClient()
	msg, err := client.RegisterEmployee(context.Background(), api.Registration{
		EmployeeID: registerID,
		Name:       registerName,
		Email:      registerEmail,
		Password:   registerPassword,
		Role:       registerRole,
		Image:      img,
	})
	if err != nil {
		fail(err)
	}
	fmt.Println(msg)

	listEmployees(client)
	return nil
}

func runEmployeeStatus(employeeID string, active bool) error {
	client := adminClient()
	if !active && !confirm(fmt.Sprintf("Deactivate employee %s?", employeeID), employeeYes) {
		fmt.Println("Aborted.")
		return nil
	}

	if err := client.SetEmployeeStatus(context.Background(), employeeID, active); err != nil {
		fail(err)
	}
	if active {
		fmt.Printf("Employee %s activated.\n", employeeID)
	} else {
		fmt.Printf("Employee %s deactivated.\n", employeeID)
	}

	listEmployees(client)
	return nil
}

func runEmployeesDelete(cmd *cobra.Command, args []string) error {
	employeeID := args[0]
	client := adminClient()

	if !confirm(fmt.Sprintf("Permanently delete employee %s?", employeeID), employeeYes) {
		fmt.Println("Aborted.")
		return nil
	}

	if err := client.DeleteEmployee(context.Background(), employeeID); err != nil {
		fail(err)
	}
	fmt.Printf("Employee %s deleted.\n", employeeID)

	listEmployees(client)
	return nil
}

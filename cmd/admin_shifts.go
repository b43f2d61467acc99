package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"attendctl/internal/api"
)

var (
	shiftName          string
	shiftStart         string
	shiftEnd           string
	shiftCheckInStart  string
	shiftCheckInEnd    string
	shiftCheckOutStart string
	shiftCheckOutEnd   string
	shiftDays          string

	shiftYes bool

	assignShiftID int
	assignFrom    string
	assignTo      string
)

var adminShiftsCmd = &cobra.Command{
	Use:   "shifts",
	Short: "Manage work shifts",
}

var shiftsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List shifts",
	Args:  cobra.NoArgs,
	RunE:  runShiftsList,
}

var shiftsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a shift",
	Args:  cobra.NoArgs,
	RunE:  runShiftsCreate,
}

var shiftsUpdateCmd = &cobra.Command{
	Use:   "update <shift-id>",
	Short: "Update a shift",
	Args:  cobra.ExactArgs(1),
	RunE:  runShiftsUpdate,
}

var shiftsDeleteCmd = &cobra.Command{
	Use:   "delete <shift-id>",
	Short: "Delete a shift",
	Args:  cobra.ExactArgs(1),
	RunE:  runShiftsDelete,
}

var shiftsAssignCmd = &cobra.Command{
	Use:   "assign <employee-id>",
	Short: "Assign a shift to an employee",
	Args:  cobra.ExactArgs(1),
	RunE:  runShiftsAssign,
}

var employeeShiftCmd = &cobra.Command{
	Use:   "shift <employee-id>",
	Short: "Show an employee's active shift",
	Args:  cobra.ExactArgs(1),
	RunE:  runEmployeeShift,
}

func shiftFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&shiftName, "name", "", "Shift name (required)")
	cmd.Flags().StringVar(&shiftStart, "start", "", "Work start, HH:MM (required)")
	cmd.Flags().StringVar(&shiftEnd, "end", "", "Work end, HH:MM (required)")
	cmd.Flags().StringVar(&shiftCheckInStart, "check-in-start", "", "Check-in window start, HH:MM (required)")
	cmd.Flags().StringVar(&shiftCheckInEnd, "check-in-end", "", "Check-in window end, HH:MM (required)")
	cmd.Flags().StringVar(&shiftCheckOutStart, "check-out-start", "", "Check-out window start, HH:MM (required)")
	cmd.Flags().StringVar(&shiftCheckOutEnd, "check-out-end", "", "Check-out window end, HH:MM (required)")
	cmd.Flags().StringVar(&shiftDays, "days", "", "Comma-separated weekdays, e.g. monday,tuesday (required)")
	for _, f := range []string{"name", "start", "end", "check-in-start", "check-in-end", "check-out-start", "check-out-end", "days"} {
		_ = cmd.MarkFlagRequired(f)
	}
}

func init() {
	shiftFlags(shiftsCreateCmd)
	shiftFlags(shiftsUpdateCmd)

	shiftsDeleteCmd.Flags().BoolVar(&shiftYes, "yes", false, "Skip the confirmation prompt")

	shiftsAssignCmd.Flags().IntVar(&assignShiftID, "shift", 0, "Shift ID (required)")
	shiftsAssignCmd.Flags().StringVar(&assignFrom, "from", "", "Effective from, YYYY-MM-DD (required)")
	shiftsAssignCmd.Flags().StringVar(&assignTo, "to", "", "Effective to, YYYY-MM-DD (empty = open-ended)")
	_ = shiftsAssignCmd.MarkFlagRequired("shift")
	_ = shiftsAssignCmd.MarkFlagRequired("from")

	adminShiftsCmd.AddCommand(shiftsListCmd)
	adminShiftsCmd.AddCommand(shiftsCreateCmd)
	adminShiftsCmd.AddCommand(shiftsUpdateCmd)
	adminShiftsCmd.AddCommand(shiftsDeleteCmd)
	adminShiftsCmd.AddCommand(shiftsAssignCmd)
}

func shiftInput() api.ShiftInput {
	days := strings.Split(shiftDays, ",")
	for i, d := range days {
		days[i] = strings.ToLower(strings.TrimSpace(d))
	}
	return api.ShiftInput{
		Name:          shiftName,
		StartTime:     shiftStart,
		EndTime:       shiftEnd,
		CheckInStart:  shiftCheckInStart,
		CheckInEnd:    shiftCheckInEnd,
		CheckOutStart: shiftCheckOutStart,
		CheckOutEnd:   shiftCheckOutEnd,
		DaysOfWeek:    days,
	}
}

func listShifts(client *api.Client) {
	shifts, err := client.Shifts(context.Background())
	if err != nil {
		fail(err)
	}
	if len(shifts) == 0 {
		fmt.Println("No shifts configured.")
		return
	}
	for _, s := range shifts {
		fmt.Printf("#%d %-20s %s-%s  in %s-%s  out %s-%s  [%s]  %d employees\n",
			s.ID, s.ShiftName, s.StartTime, s.EndTime,
			s.CheckInStart, s.CheckInEnd, s.CheckOutStart, s.CheckOutEnd,
			strings.Join(s.DaysOfWeek, ","), s.EmployeeCount)
	}
}

func runShiftsList(cmd *cobra.Command, args []string) error {
	listShifts(adminClient())
	return nil
}

func runShiftsCreate(cmd *cobra.Command, args []string) error {
	client := adminClient()
	id, err := client.CreateShift(context.Background(), shiftInput())
	if err != nil {
		fail(err)
	}
	fmt.Printf("Shift created with ID %d.\n", id)
	listShifts(client)
	return nil
}

func runShiftsUpdate(cmd *cobra.Command, args []string) error {
	shiftID, err := strconv.Atoi(args[0])
	if err != nil {
		fail(fmt.Errorf("invalid shift ID %q", args[0]))
	}
	client := adminClient()
	if err := client.UpdateShift(context.Background(), shiftID, shiftInput()); err != nil {
		fail(err)
	}
	fmt.Println("Shift updated.")
	listShifts(client)
	return nil
}

func runShiftsDelete(cmd *cobra.Command, args []string) error {
	shiftID, err := strconv.Atoi(args[0])
	if err != nil {
		fail(fmt.Errorf("invalid shift ID %q", args[0]))
	}
	client := adminClient()

	if !confirm(fmt.Sprintf("Delete shift %d?", shiftID), shiftYes) {
		fmt.Println("Aborted.")
		return nil
	}

	if err := client.DeleteShift(context.Background(), shiftID); err != nil {
		fail(err)
	}
	fmt.Println("Shift deleted.")
	listShifts(client)
	return nil
}

func runShiftsAssign(cmd *cobra.Command, args []string) error {
	client := adminClient()
	employeeID := args[0]
	if err := client.AssignShift(context.Background(), employeeID, assignShiftID, assignFrom, assignTo); err != nil {
		fail(err)
	}
	fmt.Printf("Shift %d assigned to %s from %s", assignShiftID, employeeID, assignFrom)
	if assignTo != "" {
		fmt.Printf(" until %s", assignTo)
	}
	fmt.Println(".")
	return nil
}

func runEmployeeShift(cmd *cobra.Command, args []string) error {
	client := adminClient()
	shift, err := client.EmployeeShiftAssignment(context.Background(), args[0])
	if err != nil {
		fail(err)
	}
	if shift == nil {
		fmt.Println("No shift assigned.")
		return nil
	}
	fmt.Printf("%s (#%d)\n", shift.ShiftName, shift.ID)
	fmt.Printf("  Work: %s-%s on %s\n", shift.StartTime, shift.EndTime, strings.Join(shift.DaysOfWeek, ","))
	fmt.Printf("  Check-in window:  %s-%s\n", shift.CheckInStart, shift.CheckInEnd)
	fmt.Printf("  Check-out window: %s-%s\n", shift.CheckOutStart, shift.CheckOutEnd)
	fmt.Printf("  Effective: %s - ", shift.EffectiveFrom)
	if shift.EffectiveTo != nil {
		fmt.Println(*shift.EffectiveTo)
	} else {
		fmt.Println("open-ended")
	}
	return nil
}

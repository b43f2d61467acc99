package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"attendctl/internal/api"
	"attendctl/internal/poll"
	"attendctl/internal/timefmt"
)

var statusWatch bool

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show today's attendance status",
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

func init() {
	statusCmd.Flags().BoolVar(&statusWatch, "watch", false, "Refresh every 30 seconds until interrupted")
}

func runStatus(cmd *cobra.Command, args []string) error {
	client, sess, err := newClient(true)
	if err != nil {
		fail(err)
	}
	if sess.ExpiresSoon(time.Minute) {
		fmt.Fprintln(os.Stderr, "Warning: stored session looks expired; you may need to log in again.")
	}

	if !statusWatch {
		status, err := client.Status(context.Background())
		if err != nil {
			fail(err)
		}
		printStatus(status)
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	p := &poll.Poller{Tick: func() {
		status, err := client.Status(ctx)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return
		}
		fmt.Printf("[%s] ", time.Now().Format("15:04:05"))
		printStatusLine(status)
	}}
	if err := p.Run(ctx); err != nil {
		fail(err)
	}
	return nil
}

func printStatus(s *api.DayStatus) {
	fmt.Printf("Date: %s\n", s.Date)
	fmt.Printf("Status: %s\n", s.Status)
	fmt.Printf("Check-in:  %s\n", timefmt.Clock(s.CheckInTime))
	fmt.Printf("Check-out: %s\n", timefmt.Clock(s.CheckOutTime))
	if worked := timefmt.Worked(s.CheckInTime, s.CheckOutTime); worked != "" {
		fmt.Printf("Worked: %s\n", worked)
	}
}

func printStatusLine(s *api.DayStatus) {
	fmt.Printf("%s  in: %s  out: %s\n",
		s.Status, timefmt.Clock(s.CheckInTime), timefmt.Clock(s.CheckOutTime))
}

package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"attendctl/internal/config"
	"attendctl/internal/flow"
	"attendctl/internal/geo"
)

var (
	checkInImage string
	checkInLat   float64
	checkInLon   float64

	checkOutImage string
	checkOutLat   float64
	checkOutLon   float64
)

var checkInCmd = &cobra.Command{
	Use:   "check-in",
	Short: "Check in with a captured face image and current location",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAttendance(cmd, flow.CheckIn, checkInImage, checkInLat, checkInLon)
	},
}

var checkOutCmd = &cobra.Command{
	Use:   "check-out",
	Short: "Check out with a captured face image and current location",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAttendance(cmd, flow.CheckOut, checkOutImage, checkOutLat, checkOutLon)
	},
}

func init() {
	checkInCmd.Flags().StringVar(&checkInImage, "image", "", "Captured face image: JPEG path or base64 data URI (required)")
	checkInCmd.Flags().Float64Var(&checkInLat, "lat", 0, "Latitude (with --lon, overrides configured location)")
	checkInCmd.Flags().Float64Var(&checkInLon, "lon", 0, "Longitude (with --lat, overrides configured location)")
	_ = checkInCmd.MarkFlagRequired("image")

	checkOutCmd.Flags().StringVar(&checkOutImage, "image", "", "Captured face image: JPEG path or base64 data URI (required)")
	checkOutCmd.Flags().Float64Var(&checkOutLat, "lat", 0, "Latitude (with --lon, overrides configured location)")
	checkOutCmd.Flags().Float64Var(&checkOutLon, "lon", 0, "Longitude (with --lat, overrides configured location)")
	_ = checkOutCmd.MarkFlagRequired("image")
}

// locationProvider picks the position source: explicit flags win, then a
// configured locator command, then fixed configured coordinates.
func locationProvider(cmd *cobra.Command, cfg config.Config, lat, lon float64) geo.Provider {
	if cmd.Flags().Changed("lat") || cmd.Flags().Changed("lon") {
		return geo.Static{Pos: geo.Position{Latitude: lat, Longitude: lon}}
	}
	if cfg.Location.Command != "" {
		return geo.Command{Line: cfg.Location.Command}
	}
	if cfg.Location.Latitude != 0 || cfg.Location.Longitude != 0 {
		return geo.Static{Pos: geo.Position{Latitude: cfg.Location.Latitude, Longitude: cfg.Location.Longitude}}
	}
	return geo.None{}
}

func runAttendance(cmd *cobra.Command, action flow.Action, image string, lat, lon float64) error {
	client, _, err := newClient(true)
	if err != nil {
		fail(err)
	}
	cfg, err := config.Load()
	if err != nil {
		fail(err)
	}

	f := &flow.Flow{
		Client:   client,
		Provider: locationProvider(cmd, cfg, lat, lon),
		OnTransition: func(s flow.State) {
			switch s {
			case flow.StateLocationPending:
				fmt.Println("Acquiring location...")
			case flow.StateSubmitting:
				fmt.Printf("Submitting %s...\n", action)
			}
		},
	}

	outcome := f.Run(context.Background(), action, image)
	if outcome.Err != nil {
		fail(fmt.Errorf("%s failed: %w", action, outcome.Err))
	}

	conf := outcome.Confirmation
	fmt.Println(conf.Message)
	fmt.Printf("  Time: %s\n", conf.Time)
	fmt.Printf("  Location: %s\n", conf.Location.Validation)
	fmt.Printf("  Confidence: %.2f\n", conf.Confidence)

	if outcome.Status != nil {
		fmt.Println()
		printStatus(outcome.Status)
	}
	return nil
}

// Package flow drives an attendance submission attempt through its fixed
// sequence: capture, locate, submit. Steps are strictly sequential and
// nothing is started speculatively; a failed step aborts the attempt
// before the next one begins.
package flow

import (
	"context"

	"attendctl/internal/api"
	"attendctl/internal/capture"
	"attendctl/internal/geo"
)

// State is the orchestrator's position within one submission attempt.
type State int

const (
	StateIdle State = iota
	StateCapturing
	StateLocationPending
	StateSubmitting
	StateSuccess
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateCapturing:
		return "capturing"
	case StateLocationPending:
		return "location-pending"
	case StateSubmitting:
		return "submitting"
	case StateSuccess:
		return "success"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Action selects which attendance endpoint a submission targets.
type Action int

const (
	CheckIn Action = iota
	CheckOut
)

func (a Action) String() string {
	if a == CheckOut {
		return "check-out"
	}
	return "check-in"
}

// Submitter is the API surface the flow needs; *api.Client implements it.
type Submitter interface {
	CheckIn(ctx context.Context, lat, lon float64, img capture.Image) (*api.CheckResult, error)
	CheckOut(ctx context.Context, lat, lon float64, img capture.Image) (*api.CheckResult, error)
	Status(ctx context.Context) (*api.DayStatus, error)
}

// Outcome is the terminal result of one submission attempt.
type Outcome struct {
	State        State
	FailedDuring State // state in which the attempt failed, zero when successful
	Confirmation *api.CheckResult
	Status       *api.DayStatus // refreshed after success; nil if the re-fetch failed
	Err          error
}

// Flow runs submission attempts. One Flow handles one attempt at a time;
// Run blocks for the attempt's duration, so a single invocation can never
// have two submissions in flight.
type Flow struct {
	Client   Submitter
	Provider geo.Provider

	// OnTransition observes every state change. May be nil.
	OnTransition func(State)

	state State
}

// State returns the current state.
func (f *Flow) State() State { return f.state }

func (f *Flow) transition(s State) {
	f.state = s
	if f.OnTransition != nil {
		f.OnTransition(s)
	}
}

func (f *Flow) fail(err error) Outcome {
	during := f.state
	f.transition(StateFailed)
	out := Outcome{State: StateFailed, FailedDuring: during, Err: err}
	// Terminal states return control to idle on acknowledgment; for the
	// CLI that is as soon as the outcome is handed back.
	f.transition(StateIdle)
	return out
}

// Run performs one submission attempt with the raw capture result.
// Location acquisition is only started after the image is accepted, and
// no network call is made unless a position was acquired.
func (f *Flow) Run(ctx context.Context, action Action, rawImage string) Outcome {
	f.transition(StateCapturing)
	img, err := capture.Parse(rawImage)
	if err != nil {
		return f.fail(err)
	}

	f.transition(StateLocationPending)
	pos, err := f.Provider.Current(ctx)
	if err != nil {
		return f.fail(err)
	}

	f.transition(StateSubmitting)
	var result *api.CheckResult
	switch action {
	case CheckOut:
		result, err = f.Client.CheckOut(ctx, pos.Latitude, pos.Longitude, img)
	default:
		result, err = f.Client.CheckIn(ctx, pos.Latitude, pos.Longitude, img)
	}
	if err != nil {
		return f.fail(err)
	}

	f.transition(StateSuccess)
	out := Outcome{State: StateSuccess, Confirmation: result}

	// Refresh the displayed day status; the submission already succeeded,
	// so a failed re-fetch is reported but does not fail the attempt.
	if status, serr := f.Client.Status(ctx); serr == nil {
		out.Status = status
	}

	f.transition(StateIdle)
	return out
}

// Package poll re-runs a status fetch on a fixed interval while watch
// mode is active, and stops the recurring job when the watcher goes away.
package poll

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
)

// DefaultInterval matches the home-screen status poll cadence.
const DefaultInterval = 30 * time.Second

// every is a constant-delay schedule. cron's own ConstantDelaySchedule
// rounds delays under one second up to a full second; this one runs at
// the configured interval as-is.
type every time.Duration

func (e every) Next(t time.Time) time.Time { return t.Add(time.Duration(e)) }

// Poller invokes Tick immediately and then every Interval until the
// context is cancelled. The scheduler is always stopped before Run
// returns, so no recurring work leaks past the watch.
type Poller struct {
	Interval time.Duration
	Tick     func()
}

// Run blocks until ctx is done.
func (p *Poller) Run(ctx context.Context) error {
	interval := p.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}

	p.Tick()

	c := cron.New()
	c.Schedule(every(interval), cron.FuncJob(p.Tick))
	c.Start()
	defer func() {
		// Wait for an in-flight tick before returning.
		<-c.Stop().Done()
	}()

	<-ctx.Done()
	return nil
}

package health

import (
	"context"
	"errors"
	"time"

	"waifulist/core/errs"

	"golang.org/x/sync/errgroup"
)

// Pinger is anything whose reachability can be checked.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingFunc adapts a function to Pinger.
type PingFunc func(ctx context.Context) error

// Ping calls f.
func (f PingFunc) Ping(ctx context.Context) error { return f(ctx) }

// Status of one dependency.
type Status string

const (
	StatusUp       Status = "up"
	StatusDown     Status = "down"
	StatusDisabled Status = "disabled"
)

// Check is the result for one dependency.
type Check struct {
	Name    string `json:"name"`
	Status  Status `json:"status"`
	Error   string `json:"error,omitempty"`
	Latency string `json:"latency"`
}

// Report is the result of a health run.
type Report struct {
	Healthy bool    `json:"healthy"`
	Checks  []Check `json:"checks"`
}

type named struct {
	name string
	p    Pinger
}

// Checker runs reachability checks against registered dependencies.
type Checker struct {
	timeout time.Duration
	checks  []named
}

// NewChecker creates a checker bounding every check by timeout.
func NewChecker(timeout time.Duration) *Checker {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Checker{timeout: timeout}
}

// Add registers a dependency. Checks run in registration order.
func (c *Checker) Add(name string, p Pinger) *Checker {
	c.checks = append(c.checks, named{name: name, p: p})
	return c
}

// Run checks every dependency concurrently. Disabled dependencies do not make
// the report unhealthy.
func (c *Checker) Run(ctx context.Context) Report {
	report := Report{Healthy: true, Checks: make([]Check, len(c.checks))}

	var g errgroup.Group
	for i, n := range c.checks {
		g.Go(func() error {
			report.Checks[i] = c.run(ctx, n)
			return nil
		})
	}
	_ = g.Wait()

	for _, ch := range report.Checks {
		if ch.Status == StatusDown {
			report.Healthy = false
		}
	}
	return report
}

func (c *Checker) run(ctx context.Context, n named) Check {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()
	err := n.p.Ping(ctx)
	check := Check{Name: n.name, Status: StatusUp, Latency: time.Since(start).Round(time.Millisecond).String()}

	switch {
	case errors.Is(err, errs.ErrDisabled):
		check.Status = StatusDisabled
	case err != nil:
		check.Status = StatusDown
		check.Error = err.Error()
	}
	return check
}

// Package telemetry reports CLI runs to New Relic when a license key is
// present in the environment. Without one every method is a no-op.
package telemetry

import (
	"os"
	"time"

	"github.com/newrelic/go-agent/v3/newrelic"
)

// LicenseEnv is read to decide whether reporting is enabled.
const LicenseEnv = "NEW_RELIC_LICENSE_KEY"

// Recorder owns the agent application.
type Recorder struct {
	app *newrelic.Application
}

// New starts the agent if LicenseEnv is set. Settings from the standard
// NEW_RELIC_* variables override appName. A connection that is not ready
// within connectTimeout returns the recorder together with the error, so
// callers can carry on without reporting.
func New(appName string, connectTimeout time.Duration) (*Recorder, error) {
	if os.Getenv(LicenseEnv) == "" {
		return &Recorder{}, nil
	}

	app, err := newrelic.NewApplication(
		newrelic.ConfigAppName(appName),
		newrelic.ConfigFromEnvironment(),
	)
	if err != nil {
		return &Recorder{}, err
	}

	r := &Recorder{app: app}
	if connectTimeout > 0 {
		if err := app.WaitForConnection(connectTimeout); err != nil {
			return r, err
		}
	}
	return r, nil
}

// Enabled reports whether runs are being sent.
func (r *Recorder) Enabled() bool {
	return r != nil && r.app != nil
}

// Start begins a transaction named name.
func (r *Recorder) Start(name string) *Run {
	if !r.Enabled() {
		return &Run{}
	}
	return &Run{txn: r.app.StartTransaction(name)}
}

// Shutdown flushes pending data, waiting at most timeout.
func (r *Recorder) Shutdown(timeout time.Duration) {
	if !r.Enabled() {
		return
	}
	r.app.Shutdown(timeout)
}

// Run is one reported CLI invocation.
type Run struct {
	txn *newrelic.Transaction
}

// Segment times a step of the run; call the returned function when the step
// is done.
func (r *Run) Segment(name string) func() {
	if r == nil || r.txn == nil {
		return func() {}
	}
	seg := r.txn.StartSegment(name)
	return seg.End
}

// AddAttribute attaches a key/value pair to the run.
func (r *Run) AddAttribute(key string, value interface{}) {
	if r == nil || r.txn == nil {
		return
	}
	r.txn.AddAttribute(key, value)
}

// NoticeError records err on the run. Nil errors are ignored.
func (r *Run) NoticeError(err error) {
	if r == nil || r.txn == nil || err == nil {
		return
	}
	r.txn.NoticeError(err)
}

// End finishes the run.
func (r *Run) End() {
	if r == nil || r.txn == nil {
		return
	}
	r.txn.End()
}

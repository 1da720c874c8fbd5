package local

import (
	"context"
	"fmt"

	"github.com/jmgilman/go/hostfs/fs/core"
	"github.com/jmgilman/go/hostfs/logging"
)

// Platform is the host-backed core.Platform.
// It holds no per-call state and is safe for concurrent use.
type Platform struct {
	logger  *logging.Logger
	failer  core.Failer
	clock   core.Clock
	markers core.Markers
}

var _ core.Platform = (*Platform)(nil)

// Option configures a Platform.
type Option func(*Platform)

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *logging.Logger) Option {
	return func(p *Platform) {
		p.logger = logger
	}
}

// WithClock replaces the wall clock used by SetMtimeToNow and computes the
// integrity markers from it instead of using the process-wide markers.
func WithClock(clock core.Clock) Option {
	return func(p *Platform) {
		p.clock = clock
		p.markers = core.NewMarkers(clock.Now())
	}
}

// WithFailer sets the collaborator invoked on fatal conditions.
func WithFailer(failer core.Failer) Option {
	return func(p *Platform) {
		p.failer = failer
	}
}

// New creates a Platform.
func New(opts ...Option) *Platform {
	p := &Platform{
		logger:  logging.NewNopLogger(),
		clock:   core.SystemClock{},
		markers: core.ProcessMarkers(),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.failer == nil {
		p.failer = core.NewExitFailer(p.logger)
	}
	return p
}

// Type returns core.FSTypeLocal.
func (p *Platform) Type() core.FSType {
	return core.FSTypeLocal
}

// Markers returns the integrity markers this Platform stamps and checks.
func (p *Platform) Markers() core.Markers {
	return p.markers
}

// fail hands an unrecoverable condition to the Failer. It only returns if
// the configured Failer does.
func (p *Platform) fail(code core.ExitCode, format string, args ...any) {
	p.failer.Fail(code, fmt.Sprintf(format, args...))
}

func (p *Platform) debug(msg string, args ...any) {
	p.logger.Debug(context.Background(), msg, args...)
}

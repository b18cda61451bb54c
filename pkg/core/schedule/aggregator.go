package schedule

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/shiftdeck/shiftdeck/pkg/clients/rosterclient"
	"github.com/shiftdeck/shiftdeck/pkg/core/model"
)

// State is the aggregator's lifecycle state.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateReady
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	}
	return "unknown"
}

// ErrSuperseded is returned by Load when a newer window was requested while
// this load was still in flight. The stale result is discarded and never
// committed.
var ErrSuperseded = errors.New("load superseded by a newer window request")

// Snapshot is one fully loaded view of a week: the assignments inside the
// window plus the complete employee and shift-template collections. It is
// replaced wholesale on every re-fetch; there is no incremental merge.
type Snapshot struct {
	Window      WeekWindow
	Assignments []model.Assignment
	Employees   []model.Employee
	Shifts      []model.ShiftTemplate
}

// Gateway is the slice of the roster API the aggregator needs.
type Gateway interface {
	ListAssignments(ctx context.Context, filter rosterclient.AssignmentFilter) ([]model.Assignment, error)
	ListEmployees(ctx context.Context) ([]model.Employee, error)
	ListShifts(ctx context.Context) ([]model.ShiftTemplate, error)
}

// Aggregator loads consistent weekly snapshots from the gateway. Each Load
// issues the three list calls concurrently and commits the result only if all
// three succeed and no newer window has been requested in the meantime, so
// rapid week navigation can never display a stale week's data.
type Aggregator struct {
	gateway Gateway
	logger  *zap.Logger

	mu         sync.Mutex
	generation uint64
	cancel     context.CancelFunc
	state      State
	window     WeekWindow
	snapshot   *Snapshot
	lastErr    error
}

// NewAggregator creates an aggregator in the Idle state.
func NewAggregator(gateway Gateway, logger *zap.Logger) *Aggregator {
	return &Aggregator{
		gateway: gateway,
		logger:  logger,
		state:   StateIdle,
	}
}

// State returns the current lifecycle state.
func (a *Aggregator) State() State {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state
}

// Snapshot returns the committed snapshot, or nil if none has been committed.
func (a *Aggregator) Snapshot() *Snapshot {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.snapshot
}

// Window returns the most recently requested window.
func (a *Aggregator) Window() WeekWindow {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.window
}

// Err returns the error from the last failed load, if any.
func (a *Aggregator) Err() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.lastErr
}

// Load fetches a snapshot for the given window. It blocks until the fetch
// cycle settles and returns the committed snapshot, or ErrSuperseded if a
// newer Load was issued while this one was in flight, or the first fetch
// error otherwise. Any load already in flight is cancelled.
func (a *Aggregator) Load(ctx context.Context, window WeekWindow) (*Snapshot, error) {
	ctx, cancel := context.WithCancel(ctx)

	a.mu.Lock()
	a.generation++
	gen := a.generation
	if a.cancel != nil {
		a.cancel()
	}
	a.cancel = cancel
	a.state = StateLoading
	a.window = window
	a.mu.Unlock()

	a.logger.Debug("loading week",
		zap.String("start", window.Start.String()),
		zap.String("end", window.End.String()))

	snap, err := a.fetch(ctx, window)
	cancel()

	a.mu.Lock()
	defer a.mu.Unlock()

	if gen != a.generation {
		// A newer window was requested while this one was in flight. The
		// result, success or failure, must not be committed.
		a.logger.Debug("discarding superseded load", zap.String("start", window.Start.String()))
		return nil, ErrSuperseded
	}

	if err != nil {
		a.state = StateFailed
		a.lastErr = err
		a.logger.Warn("week load failed", zap.String("start", window.Start.String()), zap.Error(err))
		return nil, err
	}

	a.state = StateReady
	a.lastErr = nil
	a.snapshot = snap
	a.logger.Debug("week loaded",
		zap.String("start", window.Start.String()),
		zap.Int("assignments", len(snap.Assignments)),
		zap.Int("employees", len(snap.Employees)),
		zap.Int("shifts", len(snap.Shifts)))
	return snap, nil
}

// Refresh re-fetches the most recently requested window. Used after a
// mutation: the snapshot is always rebuilt from server truth rather than
// patched locally.
func (a *Aggregator) Refresh(ctx context.Context) (*Snapshot, error) {
	a.mu.Lock()
	window := a.window
	a.mu.Unlock()
	if window.Start.IsZero() {
		return nil, fmt.Errorf("refresh before any window was loaded")
	}
	return a.Load(ctx, window)
}

// fetch issues the three list calls concurrently and joins them. It fails on
// the first error; the remaining calls are cancelled through ctx and their
// results are still awaited so nothing leaks.
func (a *Aggregator) fetch(ctx context.Context, window WeekWindow) (*Snapshot, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		assignments []model.Assignment
		employees   []model.Employee
		shifts      []model.ShiftTemplate
	)

	errCh := make(chan error, 3)

	go func() {
		var err error
		assignments, err = a.gateway.ListAssignments(ctx, rosterclient.AssignmentFilter{
			StartDate: window.Start,
			EndDate:   window.End,
		})
		errCh <- err
	}()
	go func() {
		var err error
		employees, err = a.gateway.ListEmployees(ctx)
		errCh <- err
	}()
	go func() {
		var err error
		shifts, err = a.gateway.ListShifts(ctx)
		errCh <- err
	}()

	var firstErr error
	for i := 0; i < 3; i++ {
		if err := <-errCh; err != nil && firstErr == nil {
			firstErr = err
			cancel()
		}
	}
	if firstErr != nil {
		return nil, firstErr
	}

	return &Snapshot{
		Window:      window,
		Assignments: assignments,
		Employees:   employees,
		Shifts:      shifts,
	}, nil
}

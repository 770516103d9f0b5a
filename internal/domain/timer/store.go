package timer

import (
	"context"
	"errors"
	"sync"
	"time"
)

var (
	// ErrTimerRunning is returned when starting a timer that already runs
	// for the same analysis; callers are expected to check IsRunning first.
	ErrTimerRunning = errors.New("a timer is already running for this analysis")

	// ErrTimerNotRunning is returned when stopping an analysis with no
	// running timer.
	ErrTimerNotRunning = errors.New("no running timer for this analysis")
)

// Snapshotter persists the whole timer map. every Store mutation flushes
// through it so a process restart can rehydrate in-progress timers.
type Snapshotter interface {
	Save(ctx context.Context, states map[uint]State) error
	Load(ctx context.Context) (map[uint]State, error)
}

// Store is the process-wide timer map. All mutation goes through the store
// under one mutex, preserving the at-most-one-writer invariant the workflow
// relies on.
type Store struct {
	mu       sync.Mutex
	states   map[uint]State
	snapshot Snapshotter
	now      func() time.Time
}

func NewStore(snapshot Snapshotter) *Store {
	return &Store{
		states:   make(map[uint]State),
		snapshot: snapshot,
		now:      time.Now,
	}
}

// Rehydrate loads the snapshotted timer map. Missing snapshot data yields an
// empty map, not an error.
func (s *Store) Rehydrate(ctx context.Context) error {
	states, err := s.snapshot.Load(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if states == nil {
		states = make(map[uint]State)
	}
	s.states = states
	return nil
}

// Start creates a running timer for the analysis. The ticket itself is not
// mutated by starting a timer.
func (s *Store) Start(ctx context.Context, analysisID, ticketID, workerID uint, workerName string) (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.states[analysisID]; ok && existing.IsRunning {
		return State{}, ErrTimerRunning
	}

	state := State{
		AnalysisID: analysisID,
		TicketID:   ticketID,
		WorkerID:   workerID,
		WorkerName: workerName,
		StartTime:  s.now(),
		IsRunning:  true,
		Duration:   "0h 0m 0s",
	}
	s.states[analysisID] = state

	if err := s.snapshot.Save(ctx, s.copyLocked()); err != nil {
		delete(s.states, analysisID)
		return State{}, err
	}

	return state, nil
}

// Stop ends the running timer and computes its duration from the actual
// instants. The state stays in the store (stopped) until Clear removes it
// after the work log entry is persisted.
func (s *Store) Stop(ctx context.Context, analysisID uint) (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.states[analysisID]
	if !ok || !state.IsRunning {
		return State{}, ErrTimerNotRunning
	}

	end := s.now()
	state.EndTime = &end
	state.IsRunning = false
	state.Duration = state.format(end)
	s.states[analysisID] = state

	if err := s.snapshot.Save(ctx, s.copyLocked()); err != nil {
		return State{}, err
	}

	return state, nil
}

// Clear removes the timer state for the analysis, after its log entry has
// been submitted.
func (s *Store) Clear(ctx context.Context, analysisID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, ok := s.states[analysisID]
	if !ok {
		return nil
	}

	delete(s.states, analysisID)
	if err := s.snapshot.Save(ctx, s.copyLocked()); err != nil {
		s.states[analysisID] = prev
		return err
	}
	return nil
}

// Get returns the current state for the analysis, with the live duration
// refreshed for running timers.
func (s *Store) Get(analysisID uint) (State, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.states[analysisID]
	if !ok {
		return State{}, false
	}

	if state.IsRunning {
		state.Duration = state.format(s.now())
	}
	return state, true
}

// All returns a copy of every tracked state.
func (s *Store) All() map[uint]State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.copyLocked()
}

func (s *Store) copyLocked() map[uint]State {
	out := make(map[uint]State, len(s.states))
	for k, v := range s.states {
		out[k] = v
	}
	return out
}

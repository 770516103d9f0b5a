// Package timer tracks in-progress work sessions per analysis. The state map
// is process-local bookkeeping: it is snapshotted to durable storage on every
// mutation and rehydrated at startup, so a restart does not lose a running
// timer, but it is not synchronized across processes.
package timer

import (
	"time"

	"deskflow/internal/domain/worklog"
)

// State is one timer, keyed by analysis id.
type State struct {
	AnalysisID uint       `json:"analysis_id"`
	TicketID   uint       `json:"ticket_id"`
	WorkerID   uint       `json:"worker_id"`
	WorkerName string     `json:"worker_name"`
	StartTime  time.Time  `json:"start_time"`
	EndTime    *time.Time `json:"end_time,omitempty"`
	IsRunning  bool       `json:"is_running"`
	Duration   string     `json:"duration"`
}

// Elapsed reports the duration covered so far, against now for a running
// timer or against EndTime for a stopped one.
func (s State) Elapsed(now time.Time) time.Duration {
	end := now
	if s.EndTime != nil {
		end = *s.EndTime
	}
	if end.Before(s.StartTime) {
		return 0
	}
	return end.Sub(s.StartTime)
}

func (s State) format(now time.Time) string {
	return worklog.FormatDuration(s.Elapsed(now))
}

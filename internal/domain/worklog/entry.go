// Package worklog records time spent by workers on a ticket's analysis.
// Entries are created once per completed timer session and are immutable
// afterwards.
package worklog

import (
	"fmt"
	"time"
)

type Entry struct {
	id         uint
	ticketID   uint
	analysisID uint
	workerID   uint
	workerName string
	fromTime   string
	toTime     string
	duration   string
	logDate    string
	createdAt  time.Time
}

// NewEntryFromInstants builds an entry from the actual start/end instants of
// a timer session. The duration is computed from the instants themselves to
// preserve seconds precision; from_time/to_time are the local wall-clock
// HH:MM projections and log_date the ISO calendar date of the start instant.
func NewEntryFromInstants(
	ticketID uint,
	analysisID uint,
	workerID uint,
	workerName string,
	start time.Time,
	end time.Time,
) (*Entry, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if analysisID == 0 {
		return nil, fmt.Errorf("analysis ID is required")
	}
	if workerID == 0 {
		return nil, fmt.Errorf("worker ID is required")
	}
	if start.IsZero() || end.IsZero() {
		return nil, fmt.Errorf("start and end times are required")
	}
	if end.Before(start) {
		return nil, fmt.Errorf("end time precedes start time")
	}

	return &Entry{
		ticketID:   ticketID,
		analysisID: analysisID,
		workerID:   workerID,
		workerName: workerName,
		fromTime:   start.Local().Format("15:04"),
		toTime:     end.Local().Format("15:04"),
		duration:   FormatDuration(end.Sub(start)),
		logDate:    start.Local().Format("2006-01-02"),
		createdAt:  time.Now(),
	}, nil
}

func ReconstructEntry(
	id uint,
	ticketID uint,
	analysisID uint,
	workerID uint,
	workerName string,
	fromTime string,
	toTime string,
	duration string,
	logDate string,
	createdAt time.Time,
) (*Entry, error) {
	if id == 0 {
		return nil, fmt.Errorf("entry ID cannot be zero")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}

	return &Entry{
		id:         id,
		ticketID:   ticketID,
		analysisID: analysisID,
		workerID:   workerID,
		workerName: workerName,
		fromTime:   fromTime,
		toTime:     toTime,
		duration:   duration,
		logDate:    logDate,
		createdAt:  createdAt,
	}, nil
}

func (e *Entry) ID() uint {
	return e.id
}

func (e *Entry) TicketID() uint {
	return e.ticketID
}

func (e *Entry) AnalysisID() uint {
	return e.analysisID
}

func (e *Entry) WorkerID() uint {
	return e.workerID
}

func (e *Entry) WorkerName() string {
	return e.workerName
}

func (e *Entry) FromTime() string {
	return e.fromTime
}

func (e *Entry) ToTime() string {
	return e.toTime
}

func (e *Entry) Duration() string {
	return e.duration
}

func (e *Entry) LogDate() string {
	return e.logDate
}

func (e *Entry) CreatedAt() time.Time {
	return e.createdAt
}

func (e *Entry) SetID(id uint) error {
	if e.id != 0 {
		return fmt.Errorf("entry ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("entry ID cannot be zero")
	}
	e.id = id
	return nil
}

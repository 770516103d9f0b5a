package usecases

import (
	"context"
	"time"

	"deskflow/internal/domain/worklog"
	"deskflow/internal/shared/logger"
)

type WorkLogDTO struct {
	ID         uint      `json:"id"`
	TicketID   uint      `json:"ticket_id"`
	AnalysisID uint      `json:"analysis_id"`
	WorkerID   uint      `json:"worker_id"`
	WorkerName string    `json:"worker_name"`
	FromTime   string    `json:"from_time"`
	ToTime     string    `json:"to_time"`
	Duration   string    `json:"duration"`
	LogDate    string    `json:"log_date"`
	CreatedAt  time.Time `json:"created_at"`
}

type ListWorkLogsQuery struct {
	TicketID   uint
	AnalysisID uint
	WorkerID   uint
}

type ListWorkLogsResult struct {
	Entries       []WorkLogDTO
	TotalDuration string
}

type ListWorkLogsUseCase struct {
	entryRepo worklog.EntryRepository
	logger    logger.Interface
}

func NewListWorkLogsUseCase(entryRepo worklog.EntryRepository, logger logger.Interface) *ListWorkLogsUseCase {
	return &ListWorkLogsUseCase{
		entryRepo: entryRepo,
		logger:    logger,
	}
}

// Execute lists log entries for one scope and totals their durations.
// Unparsable duration strings count as zero in the total.
func (uc *ListWorkLogsUseCase) Execute(ctx context.Context, query ListWorkLogsQuery) (*ListWorkLogsResult, error) {
	var (
		entries []*worklog.Entry
		err     error
	)

	switch {
	case query.AnalysisID != 0:
		entries, err = uc.entryRepo.ListByAnalysisID(ctx, query.AnalysisID)
	case query.TicketID != 0:
		entries, err = uc.entryRepo.ListByTicketID(ctx, query.TicketID)
	case query.WorkerID != 0:
		entries, err = uc.entryRepo.ListByWorkerID(ctx, query.WorkerID)
	default:
		entries, err = uc.entryRepo.List(ctx)
	}
	if err != nil {
		uc.logger.Errorw("failed to list work logs", "error", err)
		return nil, err
	}

	items := make([]WorkLogDTO, 0, len(entries))
	for _, e := range entries {
		items = append(items, WorkLogDTO{
			ID:         e.ID(),
			TicketID:   e.TicketID(),
			AnalysisID: e.AnalysisID(),
			WorkerID:   e.WorkerID(),
			WorkerName: e.WorkerName(),
			FromTime:   e.FromTime(),
			ToTime:     e.ToTime(),
			Duration:   e.Duration(),
			LogDate:    e.LogDate(),
			CreatedAt:  e.CreatedAt(),
		})
	}

	return &ListWorkLogsResult{
		Entries:       items,
		TotalDuration: worklog.SumDurations(entries),
	}, nil
}

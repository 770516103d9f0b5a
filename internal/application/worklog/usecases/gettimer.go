package usecases

import (
	"time"

	"deskflow/internal/domain/timer"
	"deskflow/internal/shared/errors"
	"deskflow/internal/shared/logger"
)

type TimerStateDTO struct {
	AnalysisID uint       `json:"analysis_id"`
	TicketID   uint       `json:"ticket_id"`
	WorkerID   uint       `json:"worker_id"`
	WorkerName string     `json:"worker_name"`
	StartTime  time.Time  `json:"start_time"`
	EndTime    *time.Time `json:"end_time,omitempty"`
	IsRunning  bool       `json:"is_running"`
	Duration   string     `json:"duration"`
}

func toTimerStateDTO(s timer.State) TimerStateDTO {
	return TimerStateDTO{
		AnalysisID: s.AnalysisID,
		TicketID:   s.TicketID,
		WorkerID:   s.WorkerID,
		WorkerName: s.WorkerName,
		StartTime:  s.StartTime,
		EndTime:    s.EndTime,
		IsRunning:  s.IsRunning,
		Duration:   s.Duration,
	}
}

type GetTimerUseCase struct {
	store  *timer.Store
	logger logger.Interface
}

func NewGetTimerUseCase(store *timer.Store, logger logger.Interface) *GetTimerUseCase {
	return &GetTimerUseCase{
		store:  store,
		logger: logger,
	}
}

func (uc *GetTimerUseCase) Execute(analysisID uint) (*TimerStateDTO, error) {
	if analysisID == 0 {
		return nil, errors.NewValidationError("analysis ID is required")
	}

	state, ok := uc.store.Get(analysisID)
	if !ok {
		return nil, errors.NewNotFoundError("no timer for this analysis")
	}

	dto := toTimerStateDTO(state)
	return &dto, nil
}

type ListTimersUseCase struct {
	store  *timer.Store
	logger logger.Interface
}

func NewListTimersUseCase(store *timer.Store, logger logger.Interface) *ListTimersUseCase {
	return &ListTimersUseCase{
		store:  store,
		logger: logger,
	}
}

func (uc *ListTimersUseCase) Execute() []TimerStateDTO {
	states := uc.store.All()
	items := make([]TimerStateDTO, 0, len(states))
	for _, s := range states {
		items = append(items, toTimerStateDTO(s))
	}
	return items
}

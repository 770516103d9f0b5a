package usecases

import "context"

type SubmitAnalysisExecutor interface {
	Execute(ctx context.Context, cmd SubmitAnalysisCommand) (*SubmitAnalysisResult, error)
}

type ToggleMaterialExecutor interface {
	Execute(ctx context.Context, cmd ToggleMaterialCommand) (*ToggleMaterialResult, error)
}

type ListAnalysesExecutor interface {
	Execute(ctx context.Context, query ListAnalysesQuery) ([]AnalysisDTO, error)
}

type GetAnalysisExecutor interface {
	Execute(ctx context.Context, analysisID uint) (*AnalysisDTO, error)
}

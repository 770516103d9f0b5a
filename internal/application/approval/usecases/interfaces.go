package usecases

import "context"

type CreateApprovalExecutor interface {
	Execute(ctx context.Context, cmd CreateApprovalCommand) (*CreateApprovalResult, error)
}

type ListApprovalsExecutor interface {
	Execute(ctx context.Context, query ListApprovalsQuery) (*ListApprovalsResult, error)
}

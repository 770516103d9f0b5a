package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deskflow/internal/domain/ticket"
	vo "deskflow/internal/domain/ticket/valueobjects"
	"deskflow/internal/shared/logger"
)

func TestListTickets(t *testing.T) {
	var gotFilter ticket.TicketFilter
	repo := &mockTicketRepository{
		ListFunc: func(ctx context.Context, filters ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
			gotFilter = filters
			return []*ticket.Ticket{reconstructTicket(t, vo.StateRaised, 7)}, 1, nil
		},
	}

	uc := NewListTicketsUseCase(repo, logger.NewNop())

	result, err := uc.Execute(context.Background(), ListTicketsQuery{
		State:      "raised",
		AssignedTo: 3,
	})
	require.NoError(t, err)
	assert.Len(t, result.Tickets, 1)
	assert.Equal(t, int64(1), result.Total)
	assert.Equal(t, 1, result.Page)
	assert.Equal(t, 20, result.PageSize)

	require.NotNil(t, gotFilter.State)
	assert.Equal(t, vo.StateRaised, *gotFilter.State)
	require.NotNil(t, gotFilter.AssignedTo)
	assert.Equal(t, uint(3), *gotFilter.AssignedTo)
}

func TestListTickets_InvalidState(t *testing.T) {
	uc := NewListTicketsUseCase(&mockTicketRepository{}, logger.NewNop())

	_, err := uc.Execute(context.Background(), ListTicketsQuery{State: "limbo"})
	assert.Error(t, err)
}

func TestGetTicket(t *testing.T) {
	repo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return reconstructTicket(t, vo.StateRaised, 7), nil
		},
	}

	uc := NewGetTicketUseCase(repo, logger.NewNop())

	got, err := uc.Execute(context.Background(), GetTicketQuery{TicketID: 1})
	require.NoError(t, err)
	assert.Equal(t, uint(1), got.ID)
	assert.Equal(t, "Raised", got.Status)
	assert.Equal(t, uint(7), got.RaisedBy)
}

func TestGetTicket_NotFound(t *testing.T) {
	uc := NewGetTicketUseCase(&mockTicketRepository{}, logger.NewNop())

	_, err := uc.Execute(context.Background(), GetTicketQuery{TicketID: 1})
	assert.Error(t, err)
}

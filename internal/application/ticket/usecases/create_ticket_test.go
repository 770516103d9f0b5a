package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deskflow/internal/domain/status"
	"deskflow/internal/domain/ticket"
	"deskflow/internal/shared/logger"
)

func TestCreateTicket(t *testing.T) {
	var saved *ticket.Ticket
	repo := &mockTicketRepository{
		SaveFunc: func(ctx context.Context, tk *ticket.Ticket) error {
			saved = tk
			return tk.SetID(42)
		},
	}
	resolver := &mockStatusResolver{
		ResolveFunc: func(ctx context.Context, desiredName string, companyID *uint) (status.Resolution, error) {
			return status.Resolution{StatusID: 1, Name: "Raised", Resolved: true}, nil
		},
	}

	uc := NewCreateTicketUseCase(repo, &mockNumberGenerator{}, resolver, logger.NewNop())

	result, err := uc.Execute(context.Background(), CreateTicketCommand{
		Title:       "Projector not working",
		Description: "Meeting room 4 projector shows no signal.",
		Location:    "Meeting room 4",
		RaisedBy:    7,
	})
	require.NoError(t, err)
	require.NotNil(t, saved)

	assert.Equal(t, uint(42), result.TicketID)
	assert.Equal(t, "TKT-20250310-0001", result.Number)
	assert.Equal(t, "Raised", result.Status)
	assert.True(t, saved.State().IsRaised())
	require.NotNil(t, saved.StatusID())
	assert.Equal(t, uint(1), *saved.StatusID())
}

func TestCreateTicket_UnresolvedStatusKeepsLabel(t *testing.T) {
	var saved *ticket.Ticket
	repo := &mockTicketRepository{
		SaveFunc: func(ctx context.Context, tk *ticket.Ticket) error {
			saved = tk
			return nil
		},
	}

	uc := NewCreateTicketUseCase(repo, &mockNumberGenerator{}, &mockStatusResolver{}, logger.NewNop())

	_, err := uc.Execute(context.Background(), CreateTicketCommand{
		Title:       "Door badge reader down",
		Description: "Badge reader at the east entrance does not respond.",
		RaisedBy:    7,
	})
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Nil(t, saved.StatusID())
	assert.Equal(t, "Raised", saved.StatusLabel())
}

func TestCreateTicket_Validation(t *testing.T) {
	uc := NewCreateTicketUseCase(&mockTicketRepository{}, &mockNumberGenerator{}, &mockStatusResolver{}, logger.NewNop())

	tests := []struct {
		name string
		cmd  CreateTicketCommand
	}{
		{"missing title", CreateTicketCommand{RaisedBy: 7}},
		{"missing raiser", CreateTicketCommand{Title: "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.cmd)
			assert.Error(t, err)
		})
	}
}

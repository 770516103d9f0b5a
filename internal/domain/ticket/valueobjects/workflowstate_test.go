package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWorkflowState_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name    string
		from    WorkflowState
		to      WorkflowState
		allowed bool
	}{
		{"raised to material request", StateRaised, StateMaterialRequest, true},
		{"raised to material approved", StateRaised, StateMaterialApproved, true},
		{"raised straight to closed", StateRaised, StateClosed, false},
		{"material request to material approved", StateMaterialRequest, StateMaterialApproved, true},
		{"material approved back to material request", StateMaterialApproved, StateMaterialRequest, true},
		{"material approved to working in progress", StateMaterialApproved, StateWorkingInProgress, true},
		{"material approved to work completed", StateMaterialApproved, StateWorkCompleted, true},
		{"working in progress to work completed", StateWorkingInProgress, StateWorkCompleted, true},
		{"working in progress back to material request", StateWorkingInProgress, StateMaterialRequest, false},
		{"work completed to closed", StateWorkCompleted, StateClosed, true},
		{"closed is terminal", StateClosed, StateRaised, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestWorkflowState_MaterialToggle(t *testing.T) {
	// Revising an analysis may bounce a ticket between the two material
	// states any number of times before work starts.
	state := StateMaterialRequest
	for i := 0; i < 3; i++ {
		assert.True(t, state.CanTransitionTo(StateMaterialApproved))
		state = StateMaterialApproved
		assert.True(t, state.CanTransitionTo(StateMaterialRequest))
		state = StateMaterialRequest
	}
}

func TestStateFromLabel(t *testing.T) {
	tests := []struct {
		label string
		state WorkflowState
		ok    bool
	}{
		{"Raised", StateRaised, true},
		{"Material Request", StateMaterialRequest, true},
		{"Material Approved", StateMaterialApproved, true},
		{"Working In Progress", StateWorkingInProgress, true},
		{"Work Completed", StateWorkCompleted, true},
		{"Resolved", StateWorkCompleted, true},
		{"Closed", StateClosed, true},
		{"CLOSED", StateClosed, true},
		{"Pending Review", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			state, ok := StateFromLabel(tt.label)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.state, state)
			}
		})
	}
}

func TestWorkflowState_CanClose(t *testing.T) {
	assert.True(t, StateWorkCompleted.CanClose())
	assert.True(t, StateClosed.CanClose())
	assert.False(t, StateRaised.CanClose())
	assert.False(t, StateWorkingInProgress.CanClose())
}

func TestNewWorkflowState(t *testing.T) {
	state, err := NewWorkflowState("material_approved")
	assert.NoError(t, err)
	assert.Equal(t, StateMaterialApproved, state)

	_, err = NewWorkflowState("bogus")
	assert.Error(t, err)
}

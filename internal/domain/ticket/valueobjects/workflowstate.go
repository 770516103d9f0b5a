package valueobjects

import (
	"fmt"
	"strings"
)

// WorkflowState is the canonical enumeration of ticket lifecycle states.
// Backend status directory entries carry free-text names; StateFromLabel maps
// those names onto this enumeration.
type WorkflowState string

const (
	StateRaised            WorkflowState = "raised"
	StateMaterialRequest   WorkflowState = "material_request"
	StateMaterialApproved  WorkflowState = "material_approved"
	StateWorkingInProgress WorkflowState = "working_in_progress"
	StateWorkCompleted     WorkflowState = "work_completed"
	StateClosed            WorkflowState = "closed"
)

var validWorkflowStates = map[WorkflowState]bool{
	StateRaised:            true,
	StateMaterialRequest:   true,
	StateMaterialApproved:  true,
	StateWorkingInProgress: true,
	StateWorkCompleted:     true,
	StateClosed:            true,
}

// Material request and material approved may toggle repeatedly while the
// analysis is revised; work only starts out of material approved.
var workflowTransitions = map[WorkflowState][]WorkflowState{
	StateRaised: {
		StateMaterialRequest,
		StateMaterialApproved,
	},
	StateMaterialRequest: {
		StateMaterialApproved,
	},
	StateMaterialApproved: {
		StateMaterialRequest,
		StateWorkingInProgress,
		StateWorkCompleted,
	},
	StateWorkingInProgress: {
		StateWorkCompleted,
	},
	StateWorkCompleted: {
		StateClosed,
	},
	StateClosed: {},
}

var workflowDisplayNames = map[WorkflowState]string{
	StateRaised:            "Raised",
	StateMaterialRequest:   "Material Request",
	StateMaterialApproved:  "Material Approved",
	StateWorkingInProgress: "Working In Progress",
	StateWorkCompleted:     "Work Completed",
	StateClosed:            "Closed",
}

// labelRules maps free-text status name fragments to canonical states.
// Order matters: "material approved" must win over a bare "approved" check,
// and "progress" must be tested before "complet".
var labelRules = []struct {
	fragment string
	state    WorkflowState
}{
	{"material request", StateMaterialRequest},
	{"material approved", StateMaterialApproved},
	{"progress", StateWorkingInProgress},
	{"complet", StateWorkCompleted},
	{"resolve", StateWorkCompleted},
	{"close", StateClosed},
	{"raise", StateRaised},
}

func (s WorkflowState) String() string {
	return string(s)
}

// DisplayName returns the human-readable status label used when the status
// directory has no matching entry (degraded free-text mode).
func (s WorkflowState) DisplayName() string {
	if name, ok := workflowDisplayNames[s]; ok {
		return name
	}
	return string(s)
}

func (s WorkflowState) IsValid() bool {
	return validWorkflowStates[s]
}

func (s WorkflowState) CanTransitionTo(target WorkflowState) bool {
	allowed, ok := workflowTransitions[s]
	if !ok {
		return false
	}

	for _, state := range allowed {
		if state == target {
			return true
		}
	}
	return false
}

func (s WorkflowState) IsRaised() bool {
	return s == StateRaised
}

func (s WorkflowState) IsMaterialRequest() bool {
	return s == StateMaterialRequest
}

func (s WorkflowState) IsMaterialApproved() bool {
	return s == StateMaterialApproved
}

func (s WorkflowState) IsWorkingInProgress() bool {
	return s == StateWorkingInProgress
}

func (s WorkflowState) IsWorkCompleted() bool {
	return s == StateWorkCompleted
}

func (s WorkflowState) IsClosed() bool {
	return s == StateClosed
}

// CanClose reports whether a ticket in this state is close-adjacent.
func (s WorkflowState) CanClose() bool {
	return s == StateWorkCompleted || s == StateClosed
}

func NewWorkflowState(s string) (WorkflowState, error) {
	ws := WorkflowState(s)
	if !ws.IsValid() {
		return "", fmt.Errorf("invalid workflow state: %s", s)
	}
	return ws, nil
}

// StateFromLabel maps a free-text status directory name onto the canonical
// enumeration. Matching is case-insensitive and fragment-based; unmapped
// names return false.
func StateFromLabel(label string) (WorkflowState, bool) {
	lowered := strings.ToLower(label)
	for _, rule := range labelRules {
		if strings.Contains(lowered, rule.fragment) {
			return rule.state, true
		}
	}
	return "", false
}

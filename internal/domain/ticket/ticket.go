package ticket

import (
	"errors"
	"fmt"
	"time"

	vo "deskflow/internal/domain/ticket/valueobjects"
)

// ErrNotRaiser is returned when someone other than the raiser tries to close
// a ticket. Callers translate it into an authorization failure.
var ErrNotRaiser = errors.New("only the person who raised this ticket can close it")

type Ticket struct {
	id             uint
	number         string
	title          string
	description    string
	location       string
	companyID      *uint
	departmentID   *uint
	priorityID     *uint
	statusID       *uint
	statusLabel    string
	state          vo.WorkflowState
	raisedBy       uint
	assignedTo     []uint
	approvalStatus string
	approverID     *uint
	approvedAt     *time.Time
	imagePath      string
	version        int
	createdAt      time.Time
	updatedAt      time.Time
	closedAt       *time.Time
}

func NewTicket(
	title string,
	description string,
	location string,
	companyID *uint,
	departmentID *uint,
	priorityID *uint,
	raisedBy uint,
) (*Ticket, error) {
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > 200 {
		return nil, fmt.Errorf("title exceeds maximum length of 200 characters")
	}
	if len(description) == 0 {
		return nil, fmt.Errorf("description is required")
	}
	if len(description) > 5000 {
		return nil, fmt.Errorf("description exceeds maximum length of 5000 characters")
	}
	if raisedBy == 0 {
		return nil, fmt.Errorf("raiser ID is required")
	}

	now := time.Now()

	t := &Ticket{
		title:        title,
		description:  description,
		location:     location,
		companyID:    companyID,
		departmentID: departmentID,
		priorityID:   priorityID,
		state:        vo.StateRaised,
		statusLabel:  vo.StateRaised.DisplayName(),
		raisedBy:     raisedBy,
		assignedTo:   []uint{},
		version:      1,
		createdAt:    now,
		updatedAt:    now,
	}

	return t, nil
}

func ReconstructTicket(
	id uint,
	number string,
	title string,
	description string,
	location string,
	companyID *uint,
	departmentID *uint,
	priorityID *uint,
	statusID *uint,
	statusLabel string,
	state vo.WorkflowState,
	raisedBy uint,
	assignedTo []uint,
	approvalStatus string,
	approverID *uint,
	approvedAt *time.Time,
	imagePath string,
	version int,
	createdAt, updatedAt time.Time,
	closedAt *time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if len(number) == 0 {
		return nil, fmt.Errorf("ticket number is required")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if !state.IsValid() {
		return nil, fmt.Errorf("invalid workflow state: %s", state)
	}

	if assignedTo == nil {
		assignedTo = []uint{}
	}

	return &Ticket{
		id:             id,
		number:         number,
		title:          title,
		description:    description,
		location:       location,
		companyID:      companyID,
		departmentID:   departmentID,
		priorityID:     priorityID,
		statusID:       statusID,
		statusLabel:    statusLabel,
		state:          state,
		raisedBy:       raisedBy,
		assignedTo:     assignedTo,
		approvalStatus: approvalStatus,
		approverID:     approverID,
		approvedAt:     approvedAt,
		imagePath:      imagePath,
		version:        version,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
		closedAt:       closedAt,
	}, nil
}

func (t *Ticket) ID() uint {
	return t.id
}

func (t *Ticket) Number() string {
	return t.number
}

func (t *Ticket) Title() string {
	return t.title
}

func (t *Ticket) Description() string {
	return t.description
}

func (t *Ticket) Location() string {
	return t.location
}

func (t *Ticket) CompanyID() *uint {
	return t.companyID
}

func (t *Ticket) DepartmentID() *uint {
	return t.departmentID
}

func (t *Ticket) PriorityID() *uint {
	return t.priorityID
}

func (t *Ticket) StatusID() *uint {
	return t.statusID
}

func (t *Ticket) StatusLabel() string {
	return t.statusLabel
}

func (t *Ticket) State() vo.WorkflowState {
	return t.state
}

func (t *Ticket) RaisedBy() uint {
	return t.raisedBy
}

func (t *Ticket) AssignedTo() []uint {
	assigned := make([]uint, len(t.assignedTo))
	copy(assigned, t.assignedTo)
	return assigned
}

func (t *Ticket) ApprovalStatus() string {
	return t.approvalStatus
}

func (t *Ticket) ApproverID() *uint {
	return t.approverID
}

func (t *Ticket) ApprovedAt() *time.Time {
	return t.approvedAt
}

func (t *Ticket) ImagePath() string {
	return t.imagePath
}

func (t *Ticket) Version() int {
	return t.version
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
}

func (t *Ticket) ClosedAt() *time.Time {
	return t.closedAt
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

func (t *Ticket) SetNumber(number string) error {
	if len(t.number) > 0 {
		return fmt.Errorf("ticket number is already set")
	}
	if len(number) == 0 {
		return fmt.Errorf("ticket number cannot be empty")
	}
	t.number = number
	return nil
}

func (t *Ticket) SetImagePath(path string) {
	t.imagePath = path
	t.updatedAt = time.Now()
}

// SetStatusRef records the status directory resolution for the current state.
// A nil statusID with a non-empty label is the degraded free-text mode used
// when the directory has no matching entry.
func (t *Ticket) SetStatusRef(statusID *uint, label string) {
	t.statusID = statusID
	if label != "" {
		t.statusLabel = label
	}
}

// TransitionTo moves the ticket to the target workflow state. statusID and
// label carry the directory resolution for the target state.
func (t *Ticket) TransitionTo(target vo.WorkflowState, statusID *uint, label string) error {
	if !target.IsValid() {
		return fmt.Errorf("invalid workflow state: %s", target)
	}

	if t.state == target {
		t.SetStatusRef(statusID, label)
		return nil
	}

	if !t.state.CanTransitionTo(target) {
		return fmt.Errorf("cannot transition from %s to %s", t.state, target)
	}

	t.state = target
	t.SetStatusRef(statusID, label)
	t.updatedAt = time.Now()
	t.version++

	// closed_at is set if and only if the ticket is closed
	if target.IsClosed() {
		if t.closedAt == nil {
			now := time.Now()
			t.closedAt = &now
		}
	} else {
		t.closedAt = nil
	}

	return nil
}

// Close transitions the ticket to closed. Only the raiser may close.
func (t *Ticket) Close(closedBy uint, statusID *uint, label string) error {
	if closedBy != t.raisedBy {
		return ErrNotRaiser
	}

	if t.state.IsClosed() {
		return nil
	}

	if !t.state.CanClose() {
		return fmt.Errorf("cannot close ticket with status %s", t.state.DisplayName())
	}

	return t.TransitionTo(vo.StateClosed, statusID, label)
}

// CanBeClosedBy reports whether the given user is allowed to close the ticket.
func (t *Ticket) CanBeClosedBy(userID uint) bool {
	return userID == t.raisedBy
}

// AssignWorkers replaces the ordered set of assigned worker IDs.
func (t *Ticket) AssignWorkers(workerIDs []uint) error {
	seen := make(map[uint]bool, len(workerIDs))
	assigned := make([]uint, 0, len(workerIDs))
	for _, id := range workerIDs {
		if id == 0 {
			return fmt.Errorf("worker ID cannot be zero")
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		assigned = append(assigned, id)
	}

	t.assignedTo = assigned
	t.updatedAt = time.Now()
	t.version++
	return nil
}

// ApplyApproval records the outcome of an approval on the ticket itself.
func (t *Ticket) ApplyApproval(approverID uint, approvalStatus string, assignedTo []uint, approvedAt time.Time) error {
	if approverID == 0 {
		return fmt.Errorf("approver ID is required")
	}

	if err := t.AssignWorkers(assignedTo); err != nil {
		return err
	}

	t.approverID = &approverID
	t.approvalStatus = approvalStatus
	t.approvedAt = &approvedAt
	t.updatedAt = time.Now()
	return nil
}

// UpdateDetails mutates the editable descriptive fields.
func (t *Ticket) UpdateDetails(title, description, location *string, departmentID, priorityID *uint) error {
	if title != nil {
		if len(*title) == 0 {
			return fmt.Errorf("title cannot be empty")
		}
		if len(*title) > 200 {
			return fmt.Errorf("title exceeds maximum length of 200 characters")
		}
		t.title = *title
	}
	if description != nil {
		if len(*description) == 0 {
			return fmt.Errorf("description cannot be empty")
		}
		if len(*description) > 5000 {
			return fmt.Errorf("description exceeds maximum length of 5000 characters")
		}
		t.description = *description
	}
	if location != nil {
		t.location = *location
	}
	if departmentID != nil {
		t.departmentID = departmentID
	}
	if priorityID != nil {
		t.priorityID = priorityID
	}

	t.updatedAt = time.Now()
	t.version++
	return nil
}

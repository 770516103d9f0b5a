// Package workanalysis models a worker's assessment of a ticket, including
// whether materials are required. A ticket may accumulate several analyses
// over its life as submissions are revised.
package workanalysis

import (
	"fmt"
	"time"
)

// MaterialRequired is the Yes/No flag driving the material sub-flow.
type MaterialRequired string

const (
	MaterialYes MaterialRequired = "Yes"
	MaterialNo  MaterialRequired = "No"
)

func (m MaterialRequired) IsValid() bool {
	return m == MaterialYes || m == MaterialNo
}

func (m MaterialRequired) IsYes() bool {
	return m == MaterialYes
}

func (m MaterialRequired) String() string {
	return string(m)
}

func NewMaterialRequired(s string) (MaterialRequired, error) {
	m := MaterialRequired(s)
	if !m.IsValid() {
		return "", fmt.Errorf("invalid material_required value: %s", s)
	}
	return m, nil
}

type Analysis struct {
	id                  uint
	ticketID            uint
	workerID            uint
	materialRequired    MaterialRequired
	materialDescription string
	uploadedImages      []string
	analysisStatus      string
	approvedBy          *uint
	approvedAt          *time.Time
	createdAt           time.Time
	updatedAt           time.Time
}

func NewAnalysis(
	ticketID uint,
	workerID uint,
	materialRequired MaterialRequired,
	materialDescription string,
	uploadedImages []string,
) (*Analysis, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if workerID == 0 {
		return nil, fmt.Errorf("worker ID is required")
	}
	if !materialRequired.IsValid() {
		return nil, fmt.Errorf("invalid material_required value: %s", materialRequired)
	}
	if !materialRequired.IsYes() && materialDescription != "" {
		// Material description only accompanies a material request.
		materialDescription = ""
	}

	if uploadedImages == nil {
		uploadedImages = []string{}
	}

	now := time.Now()
	return &Analysis{
		ticketID:            ticketID,
		workerID:            workerID,
		materialRequired:    materialRequired,
		materialDescription: materialDescription,
		uploadedImages:      uploadedImages,
		analysisStatus:      "Submitted",
		createdAt:           now,
		updatedAt:           now,
	}, nil
}

func ReconstructAnalysis(
	id uint,
	ticketID uint,
	workerID uint,
	materialRequired MaterialRequired,
	materialDescription string,
	uploadedImages []string,
	analysisStatus string,
	approvedBy *uint,
	approvedAt *time.Time,
	createdAt, updatedAt time.Time,
) (*Analysis, error) {
	if id == 0 {
		return nil, fmt.Errorf("analysis ID cannot be zero")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if !materialRequired.IsValid() {
		return nil, fmt.Errorf("invalid material_required value: %s", materialRequired)
	}

	if uploadedImages == nil {
		uploadedImages = []string{}
	}

	return &Analysis{
		id:                  id,
		ticketID:            ticketID,
		workerID:            workerID,
		materialRequired:    materialRequired,
		materialDescription: materialDescription,
		uploadedImages:      uploadedImages,
		analysisStatus:      analysisStatus,
		approvedBy:          approvedBy,
		approvedAt:          approvedAt,
		createdAt:           createdAt,
		updatedAt:           updatedAt,
	}, nil
}

func (a *Analysis) ID() uint {
	return a.id
}

func (a *Analysis) TicketID() uint {
	return a.ticketID
}

func (a *Analysis) WorkerID() uint {
	return a.workerID
}

func (a *Analysis) MaterialRequired() MaterialRequired {
	return a.materialRequired
}

func (a *Analysis) MaterialDescription() string {
	return a.materialDescription
}

func (a *Analysis) UploadedImages() []string {
	images := make([]string, len(a.uploadedImages))
	copy(images, a.uploadedImages)
	return images
}

func (a *Analysis) AnalysisStatus() string {
	return a.analysisStatus
}

func (a *Analysis) ApprovedBy() *uint {
	return a.approvedBy
}

func (a *Analysis) ApprovedAt() *time.Time {
	return a.approvedAt
}

func (a *Analysis) CreatedAt() time.Time {
	return a.createdAt
}

func (a *Analysis) UpdatedAt() time.Time {
	return a.updatedAt
}

func (a *Analysis) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("analysis ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("analysis ID cannot be zero")
	}
	a.id = id
	return nil
}

// SetMaterialRequired toggles the material flag. Clearing to "No" also
// clears the material description but preserves uploaded images: they
// document work already done.
func (a *Analysis) SetMaterialRequired(required MaterialRequired, description string) error {
	if !required.IsValid() {
		return fmt.Errorf("invalid material_required value: %s", required)
	}

	a.materialRequired = required
	if required.IsYes() {
		a.materialDescription = description
	} else {
		a.materialDescription = ""
	}
	a.updatedAt = time.Now()
	return nil
}

// MarkApproved records who approved the material analysis.
func (a *Analysis) MarkApproved(approvedBy uint) error {
	if approvedBy == 0 {
		return fmt.Errorf("approver ID is required")
	}

	now := time.Now()
	a.approvedBy = &approvedBy
	a.approvedAt = &now
	a.analysisStatus = "Approved"
	a.updatedAt = now
	return nil
}

func (a *Analysis) AppendImages(paths []string) {
	a.uploadedImages = append(a.uploadedImages, paths...)
	a.updatedAt = time.Now()
}

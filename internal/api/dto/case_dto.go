package dto

import (
	"time"

	"github.com/firmdesk/practice-service/internal/domain"
)

// CaseRequest payload for opening or updating a case.
type CaseRequest struct {
	Title            string              `json:"title"`
	CaseNumber       string              `json:"case_number"`
	ClientID         string              `json:"client_id"`
	Status           domain.CaseStatus   `json:"status"`
	Priority         domain.CasePriority `json:"priority"`
	PracticeArea     string              `json:"practice_area"`
	AssignedAttorney string              `json:"assigned_attorney"`
	Description      string              `json:"description"`
	OpenDate         time.Time           `json:"open_date"`
	DueDate          *time.Time          `json:"due_date"`
}

// ToDomain converts the request into a domain case file.
func (r CaseRequest) ToDomain() *domain.CaseFile {
	return &domain.CaseFile{
		Title:            r.Title,
		CaseNumber:       r.CaseNumber,
		ClientID:         r.ClientID,
		Status:           r.Status,
		Priority:         r.Priority,
		PracticeArea:     r.PracticeArea,
		AssignedAttorney: r.AssignedAttorney,
		Description:      r.Description,
		OpenDate:         r.OpenDate,
		DueDate:          r.DueDate,
	}
}

// CaseResponse response.
type CaseResponse struct {
	ID               string              `json:"id"`
	Title            string              `json:"title"`
	CaseNumber       string              `json:"case_number"`
	ClientID         string              `json:"client_id"`
	Status           domain.CaseStatus   `json:"status"`
	Priority         domain.CasePriority `json:"priority"`
	PracticeArea     string              `json:"practice_area"`
	AssignedAttorney string              `json:"assigned_attorney"`
	Description      string              `json:"description"`
	OpenDate         time.Time           `json:"open_date"`
	DueDate          *time.Time          `json:"due_date,omitempty"`
	CreatedAt        time.Time           `json:"created_at"`
	UpdatedAt        time.Time           `json:"updated_at"`
}

// NewCaseResponse maps a domain case file.
func NewCaseResponse(caseFile *domain.CaseFile) CaseResponse {
	return CaseResponse{
		ID:               caseFile.ID,
		Title:            caseFile.Title,
		CaseNumber:       caseFile.CaseNumber,
		ClientID:         caseFile.ClientID,
		Status:           caseFile.Status,
		Priority:         caseFile.Priority,
		PracticeArea:     caseFile.PracticeArea,
		AssignedAttorney: caseFile.AssignedAttorney,
		Description:      caseFile.Description,
		OpenDate:         caseFile.OpenDate,
		DueDate:          caseFile.DueDate,
		CreatedAt:        caseFile.CreatedAt,
		UpdatedAt:        caseFile.UpdatedAt,
	}
}

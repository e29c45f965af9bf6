package dto

import (
	"time"

	"github.com/firmdesk/practice-service/internal/domain"
)

// InvoiceItemRequest describes one billable line.
type InvoiceItemRequest struct {
	Description string  `json:"description"`
	Hours       float64 `json:"hours"`
	Rate        float64 `json:"rate"`
}

// CreateInvoiceRequest payload.
type CreateInvoiceRequest struct {
	CaseID    string               `json:"case_id"`
	ClientID  string               `json:"client_id"`
	IssueDate time.Time            `json:"issue_date"`
	DueDate   time.Time            `json:"due_date"`
	Items     []InvoiceItemRequest `json:"items"`
}

// ToDomain converts the request into a domain invoice.
func (r CreateInvoiceRequest) ToDomain() *domain.Invoice {
	items := make([]domain.InvoiceItem, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, domain.InvoiceItem{
			Description: item.Description,
			Hours:       item.Hours,
			Rate:        item.Rate,
		})
	}
	return &domain.Invoice{
		CaseID:    r.CaseID,
		ClientID:  r.ClientID,
		IssueDate: r.IssueDate,
		DueDate:   r.DueDate,
		Items:     items,
	}
}

// InvoiceItemResponse response.
type InvoiceItemResponse struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Hours       float64 `json:"hours"`
	Rate        float64 `json:"rate"`
	Amount      float64 `json:"amount"`
}

// InvoiceResponse response.
type InvoiceResponse struct {
	ID        string                `json:"id"`
	CaseID    string                `json:"case_id"`
	ClientID  string                `json:"client_id"`
	Amount    float64               `json:"amount"`
	Status    domain.InvoiceStatus  `json:"status"`
	IssueDate time.Time             `json:"issue_date"`
	DueDate   time.Time             `json:"due_date"`
	Items     []InvoiceItemResponse `json:"items"`
	CreatedAt time.Time             `json:"created_at"`
	UpdatedAt time.Time             `json:"updated_at"`
}

// NewInvoiceResponse maps a domain invoice.
func NewInvoiceResponse(invoice *domain.Invoice) InvoiceResponse {
	items := make([]InvoiceItemResponse, 0, len(invoice.Items))
	for _, item := range invoice.Items {
		items = append(items, InvoiceItemResponse{
			ID:          item.ID,
			Description: item.Description,
			Hours:       item.Hours,
			Rate:        item.Rate,
			Amount:      item.Amount,
		})
	}
	return InvoiceResponse{
		ID:        invoice.ID,
		CaseID:    invoice.CaseID,
		ClientID:  invoice.ClientID,
		Amount:    invoice.Amount,
		Status:    invoice.Status,
		IssueDate: invoice.IssueDate,
		DueDate:   invoice.DueDate,
		Items:     items,
		CreatedAt: invoice.CreatedAt,
		UpdatedAt: invoice.UpdatedAt,
	}
}

package dto

import (
	"time"

	"github.com/firmdesk/practice-service/internal/domain"
	"github.com/firmdesk/practice-service/internal/integrity"
)

// DocumentRequest payload for creating or updating a document record.
type DocumentRequest struct {
	Title        string                  `json:"title"`
	Category     domain.DocumentCategory `json:"category"`
	CaseID       *string                 `json:"case_id"`
	ClientID     *string                 `json:"client_id"`
	Status       domain.DocumentStatus   `json:"status"`
	Tags         []string                `json:"tags"`
	Description  string                  `json:"description"`
	SizeBytes    int64                   `json:"size_bytes"`
	FileType     string                  `json:"file_type"`
	FileURL      string                  `json:"file_url"`
	Hash         *string                 `json:"hash"`
	LastModified time.Time               `json:"last_modified"`
}

// ToDomain converts the request into a domain document.
func (r DocumentRequest) ToDomain() *domain.Document {
	return &domain.Document{
		Title:        r.Title,
		Category:     r.Category,
		CaseID:       r.CaseID,
		ClientID:     r.ClientID,
		Status:       r.Status,
		Tags:         r.Tags,
		Description:  r.Description,
		SizeBytes:    r.SizeBytes,
		FileType:     r.FileType,
		FileURL:      r.FileURL,
		Hash:         r.Hash,
		LastModified: r.LastModified,
	}
}

// DocumentResponse response.
type DocumentResponse struct {
	ID            string                  `json:"id"`
	Title         string                  `json:"title"`
	Category      domain.DocumentCategory `json:"category"`
	CaseID        *string                 `json:"case_id,omitempty"`
	ClientID      *string                 `json:"client_id,omitempty"`
	UploadedBy    string                  `json:"uploaded_by"`
	Status        domain.DocumentStatus   `json:"status"`
	Tags          []string                `json:"tags"`
	Description   string                  `json:"description"`
	Version       int                     `json:"version"`
	SizeBytes     int64                   `json:"size_bytes"`
	SizeFormatted string                  `json:"size_formatted"`
	FileType      string                  `json:"file_type"`
	FileURL       string                  `json:"file_url"`
	Hash          *string                 `json:"hash,omitempty"`
	LastModified  time.Time               `json:"last_modified"`
	UploadedAt    time.Time               `json:"uploaded_at"`
	UpdatedAt     time.Time               `json:"updated_at"`
}

// NewDocumentResponse maps a domain document.
func NewDocumentResponse(doc *domain.Document) DocumentResponse {
	return DocumentResponse{
		ID:            doc.ID,
		Title:         doc.Title,
		Category:      doc.Category,
		CaseID:        doc.CaseID,
		ClientID:      doc.ClientID,
		UploadedBy:    doc.UploadedBy,
		Status:        doc.Status,
		Tags:          doc.Tags,
		Description:   doc.Description,
		Version:       doc.Version,
		SizeBytes:     doc.SizeBytes,
		SizeFormatted: integrity.FormatSize(doc.SizeBytes),
		FileType:      doc.FileType,
		FileURL:       doc.FileURL,
		Hash:          doc.Hash,
		LastModified:  doc.LastModified,
		UploadedAt:    doc.UploadedAt,
		UpdatedAt:     doc.UpdatedAt,
	}
}

// DiscrepancyResponse describes one detected mismatch.
type DiscrepancyResponse struct {
	Kind    integrity.DiscrepancyKind `json:"kind"`
	Message string                    `json:"message"`
}

// VerificationResponse is the result of an integrity check.
type VerificationResponse struct {
	DocumentID    string                `json:"document_id"`
	IsValid       bool                  `json:"is_valid"`
	Timestamp     time.Time             `json:"timestamp"`
	LocalSize     string                `json:"local_size"`
	CloudSize     string                `json:"cloud_size"`
	LocalHash     string                `json:"local_hash"`
	CloudHash     string                `json:"cloud_hash"`
	FileType      string                `json:"file_type"`
	LastModified  time.Time             `json:"last_modified"`
	Discrepancies []DiscrepancyResponse `json:"discrepancies"`
}

// NewVerificationResponse maps a check result.
func NewVerificationResponse(documentID string, result *integrity.CheckResult) VerificationResponse {
	discrepancies := make([]DiscrepancyResponse, 0, len(result.Discrepancies))
	for _, d := range result.Discrepancies {
		discrepancies = append(discrepancies, DiscrepancyResponse{
			Kind:    d.Kind,
			Message: d.String(),
		})
	}
	return VerificationResponse{
		DocumentID:    documentID,
		IsValid:       result.IsValid,
		Timestamp:     result.Timestamp,
		LocalSize:     integrity.FormatSize(result.LocalSize),
		CloudSize:     integrity.FormatSize(result.CloudSize),
		LocalHash:     result.LocalHash,
		CloudHash:     result.CloudHash,
		FileType:      result.FileType,
		LastModified:  result.LastModified,
		Discrepancies: discrepancies,
	}
}

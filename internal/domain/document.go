package domain

import "time"

// DocumentCategory enumerates legal document categories.
type DocumentCategory string

const (
	DocumentCategoryContract       DocumentCategory = "CONTRACT"
	DocumentCategoryPleading       DocumentCategory = "PLEADING"
	DocumentCategoryCorrespondence DocumentCategory = "CORRESPONDENCE"
	DocumentCategoryEvidence       DocumentCategory = "EVIDENCE"
	DocumentCategoryOther          DocumentCategory = "OTHER"
)

// DocumentStatus enumerates document workflow states.
type DocumentStatus string

const (
	DocumentStatusDraft    DocumentStatus = "DRAFT"
	DocumentStatusFinal    DocumentStatus = "FINAL"
	DocumentStatusArchived DocumentStatus = "ARCHIVED"
)

// Document records a stored file's metadata: the size, MIME type,
// modification time, storage locator, and optional content digest the
// integrity verifier compares candidate files against.
type Document struct {
	ID           string
	Title        string
	Category     DocumentCategory
	CaseID       *string
	ClientID     *string
	UploadedBy   string
	Status       DocumentStatus
	Tags         []string
	Description  string
	Version      int
	SizeBytes    int64
	FileType     string
	FileURL      string
	Hash         *string
	LastModified time.Time
	UploadedAt   time.Time
	UpdatedAt    time.Time
}

package integrity

import (
	"fmt"
	"io"
	"time"
)

// LocalFile describes the candidate file selected for verification.
// Content yields the full byte stream; a read failure surfaces as an
// UnreadableFileError from Verify.
type LocalFile struct {
	Name         string
	SizeBytes    int64
	FileType     string
	LastModified time.Time
	Content      io.Reader
}

// DiscrepancyKind tags a detected mismatch so consumers can branch on
// kind instead of parsing message text.
type DiscrepancyKind string

const (
	DiscrepancySize      DiscrepancyKind = "SIZE_MISMATCH"
	DiscrepancyType      DiscrepancyKind = "TYPE_MISMATCH"
	DiscrepancyHash      DiscrepancyKind = "HASH_MISMATCH"
	DiscrepancyTimestamp DiscrepancyKind = "TIMESTAMP_MISMATCH"
)

// Discrepancy is one detected mismatch between the candidate file and the
// recorded document. Only the fields relevant to Kind are populated.
type Discrepancy struct {
	Kind DiscrepancyKind

	LocalSize    int64
	RecordedSize int64

	LocalType    string
	RecordedType string

	Delta time.Duration
}

// String renders the human-readable mismatch description.
func (d Discrepancy) String() string {
	switch d.Kind {
	case DiscrepancySize:
		return fmt.Sprintf("File size mismatch: Local (%s) vs Cloud (%s)",
			FormatSize(d.LocalSize), FormatSize(d.RecordedSize))
	case DiscrepancyType:
		return fmt.Sprintf("File type mismatch: Local (%s) vs Cloud (%s)",
			d.LocalType, d.RecordedType)
	case DiscrepancyHash:
		return "File content hash mismatch - possible file corruption or tampering"
	case DiscrepancyTimestamp:
		return "Last modified timestamp mismatch"
	default:
		return string(d.Kind)
	}
}

// CheckResult is produced fresh per verification call. The captured inputs
// and computed hashes are retained for audit logging.
type CheckResult struct {
	IsValid       bool
	Timestamp     time.Time
	LocalSize     int64
	CloudSize     int64
	LocalHash     string
	CloudHash     string
	FileType      string
	LastModified  time.Time
	Discrepancies []Discrepancy
}

// Messages returns the discrepancy descriptions in detection order.
func (r *CheckResult) Messages() []string {
	out := make([]string, 0, len(r.Discrepancies))
	for _, d := range r.Discrepancies {
		out = append(out, d.String())
	}
	return out
}

// Package integrity compares a locally selected file against a stored
// document's recorded metadata and content hash, reporting every
// discrepancy found in a single pass.
package integrity

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/firmdesk/practice-service/internal/domain"
)

// timestampTolerance absorbs clock and rounding differences between the
// environment that stored the document and the one verifying it.
const timestampTolerance = time.Second

// ContentFetcher returns the full byte content behind a document locator.
type ContentFetcher interface {
	Fetch(ctx context.Context, locator string) ([]byte, error)
}

// Verifier runs integrity checks against recorded document metadata.
type Verifier struct {
	fetcher ContentFetcher
	logger  *zap.Logger
}

// NewVerifier constructs a verifier. The fetcher is consulted only when a
// document record carries no precomputed hash.
func NewVerifier(fetcher ContentFetcher, logger *zap.Logger) *Verifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Verifier{fetcher: fetcher, logger: logger}
}

// Verify runs all checks against the candidate file. Checks are
// independent and never short-circuit, so one result can carry multiple
// discrepancies. Mismatches are reported as data; only an unreadable
// candidate or a failed digest computation returns an error.
func (v *Verifier) Verify(ctx context.Context, doc *domain.Document, file LocalFile) (*CheckResult, error) {
	result := &CheckResult{
		Timestamp:    time.Now(),
		LocalSize:    file.SizeBytes,
		CloudSize:    doc.SizeBytes,
		FileType:     file.FileType,
		LastModified: file.LastModified,
	}

	if file.SizeBytes != doc.SizeBytes {
		result.Discrepancies = append(result.Discrepancies, Discrepancy{
			Kind:         DiscrepancySize,
			LocalSize:    file.SizeBytes,
			RecordedSize: doc.SizeBytes,
		})
	}

	if file.FileType != doc.FileType {
		result.Discrepancies = append(result.Discrepancies, Discrepancy{
			Kind:         DiscrepancyType,
			LocalType:    file.FileType,
			RecordedType: doc.FileType,
		})
	}

	localHash, err := hashReader(file.Content)
	if err != nil {
		return nil, &domain.UnreadableFileError{Err: err}
	}
	result.LocalHash = localHash

	cloudHash, err := v.recordedHash(ctx, doc)
	if err != nil {
		return nil, &domain.HashComputationError{Err: err}
	}
	result.CloudHash = cloudHash

	if localHash != cloudHash {
		result.Discrepancies = append(result.Discrepancies, Discrepancy{Kind: DiscrepancyHash})
	}

	delta := file.LastModified.Sub(doc.LastModified)
	if delta < 0 {
		delta = -delta
	}
	if delta > timestampTolerance {
		result.Discrepancies = append(result.Discrepancies, Discrepancy{
			Kind:  DiscrepancyTimestamp,
			Delta: delta,
		})
	}

	result.IsValid = len(result.Discrepancies) == 0

	v.logResult(doc.ID, result)
	return result, nil
}

// recordedHash returns the document's stored digest, computing it from the
// stored bytes when the record carries none.
func (v *Verifier) recordedHash(ctx context.Context, doc *domain.Document) (string, error) {
	if doc.Hash != nil && *doc.Hash != "" {
		return *doc.Hash, nil
	}
	if v.fetcher == nil {
		return "", fmt.Errorf("no recorded hash and no content fetcher configured")
	}
	data, err := v.fetcher.Fetch(ctx, doc.FileURL)
	if err != nil {
		return "", fmt.Errorf("fetch stored file: %w", err)
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}

// logResult is fire-and-forget; it never affects the returned result.
func (v *Verifier) logResult(documentID string, result *CheckResult) {
	v.logger.Info("document integrity check",
		zap.String("document_id", documentID),
		zap.Bool("is_valid", result.IsValid),
		zap.Time("timestamp", result.Timestamp),
		zap.String("local_size", FormatSize(result.LocalSize)),
		zap.String("cloud_size", FormatSize(result.CloudSize)),
		zap.String("local_hash", result.LocalHash),
		zap.String("cloud_hash", result.CloudHash),
		zap.String("file_type", result.FileType),
		zap.Time("last_modified", result.LastModified),
		zap.Strings("discrepancies", result.Messages()),
	)
}

func hashReader(r io.Reader) (string, error) {
	if r == nil {
		return "", fmt.Errorf("no file content")
	}
	h := sha256.New()
	if _, err := io.Copy(h, r); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// FormatSize renders a byte count with a binary scaling unit and two
// decimal places, e.g. 1536 -> "1.50 KB".
func FormatSize(bytes int64) string {
	units := []string{"B", "KB", "MB", "GB"}
	size := float64(bytes)
	unit := 0
	for size >= 1024 && unit < len(units)-1 {
		size /= 1024
		unit++
	}
	return fmt.Sprintf("%.2f %s", size, units[unit])
}

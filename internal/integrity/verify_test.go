package integrity

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/firmdesk/practice-service/internal/domain"
)

type stubFetcher struct {
	data []byte
	err  error
}

func (f *stubFetcher) Fetch(_ context.Context, _ string) ([]byte, error) {
	return f.data, f.err
}

func sha256Hex(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

func strPtr(s string) *string { return &s }

func TestVerifyIdenticalFile(t *testing.T) {
	content := []byte("signed retainer agreement")
	modified := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	doc := &domain.Document{
		ID:           "doc-1",
		SizeBytes:    int64(len(content)),
		FileType:     "application/pdf",
		Hash:         strPtr(sha256Hex(content)),
		LastModified: modified,
	}

	v := NewVerifier(nil, nil)
	result, err := v.Verify(context.Background(), doc, LocalFile{
		Name:         "retainer.pdf",
		SizeBytes:    int64(len(content)),
		FileType:     "application/pdf",
		LastModified: modified,
		Content:      bytes.NewReader(content),
	})
	require.NoError(t, err)

	assert.True(t, result.IsValid)
	assert.Empty(t, result.Discrepancies)
	assert.Equal(t, result.LocalHash, result.CloudHash)
}

func TestVerifyCollectsAllDiscrepancies(t *testing.T) {
	content := []byte("original content")
	doc := &domain.Document{
		ID:           "doc-2",
		SizeBytes:    int64(len(content)),
		FileType:     "application/pdf",
		Hash:         strPtr(sha256Hex(content)),
		LastModified: time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC),
	}

	tampered := []byte("tampered content padded out")
	v := NewVerifier(nil, nil)
	result, err := v.Verify(context.Background(), doc, LocalFile{
		Name:         "retainer.pdf",
		SizeBytes:    int64(len(tampered)),
		FileType:     "image/png",
		LastModified: doc.LastModified.Add(time.Hour),
		Content:      bytes.NewReader(tampered),
	})
	require.NoError(t, err)

	assert.False(t, result.IsValid)
	require.Len(t, result.Discrepancies, 4)
	kinds := make([]DiscrepancyKind, 0, 4)
	for _, d := range result.Discrepancies {
		kinds = append(kinds, d.Kind)
	}
	assert.Equal(t, []DiscrepancyKind{
		DiscrepancySize,
		DiscrepancyType,
		DiscrepancyHash,
		DiscrepancyTimestamp,
	}, kinds)
}

func TestVerifyTimestampTolerance(t *testing.T) {
	content := []byte("payload")
	modified := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	doc := &domain.Document{
		SizeBytes:    int64(len(content)),
		FileType:     "application/pdf",
		Hash:         strPtr(sha256Hex(content)),
		LastModified: modified,
	}

	v := NewVerifier(nil, nil)

	// inside the tolerance window
	result, err := v.Verify(context.Background(), doc, LocalFile{
		SizeBytes:    int64(len(content)),
		FileType:     "application/pdf",
		LastModified: modified.Add(900 * time.Millisecond),
		Content:      bytes.NewReader(content),
	})
	require.NoError(t, err)
	assert.True(t, result.IsValid)

	// just outside
	result, err = v.Verify(context.Background(), doc, LocalFile{
		SizeBytes:    int64(len(content)),
		FileType:     "application/pdf",
		LastModified: modified.Add(1100 * time.Millisecond),
		Content:      bytes.NewReader(content),
	})
	require.NoError(t, err)
	assert.False(t, result.IsValid)
	require.Len(t, result.Discrepancies, 1)
	assert.Equal(t, DiscrepancyTimestamp, result.Discrepancies[0].Kind)
}

func TestVerifyFetchesContentWhenNoRecordedHash(t *testing.T) {
	content := []byte("stored bytes")
	fetcher := &stubFetcher{data: content}
	modified := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	doc := &domain.Document{
		SizeBytes:    int64(len(content)),
		FileType:     "application/pdf",
		FileURL:      "s3://docs/retainer.pdf",
		LastModified: modified,
	}

	v := NewVerifier(fetcher, nil)
	result, err := v.Verify(context.Background(), doc, LocalFile{
		SizeBytes:    int64(len(content)),
		FileType:     "application/pdf",
		LastModified: modified,
		Content:      bytes.NewReader(content),
	})
	require.NoError(t, err)
	assert.True(t, result.IsValid)
	assert.Equal(t, sha256Hex(content), result.CloudHash)
}

func TestVerifyFetchFailure(t *testing.T) {
	fetcher := &stubFetcher{err: errors.New("bucket unavailable")}
	doc := &domain.Document{FileURL: "s3://docs/missing.pdf"}

	v := NewVerifier(fetcher, nil)
	_, err := v.Verify(context.Background(), doc, LocalFile{Content: bytes.NewReader([]byte("x"))})
	require.Error(t, err)

	var hashErr *domain.HashComputationError
	assert.ErrorAs(t, err, &hashErr)
}

func TestVerifyUnreadableCandidate(t *testing.T) {
	v := NewVerifier(nil, nil)
	_, err := v.Verify(context.Background(), &domain.Document{}, LocalFile{Content: nil})
	require.Error(t, err)

	var readErr *domain.UnreadableFileError
	assert.ErrorAs(t, err, &readErr)
}

func TestVerifyIsRepeatable(t *testing.T) {
	content := []byte("same file twice")
	modified := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	doc := &domain.Document{
		SizeBytes:    int64(len(content)),
		FileType:     "application/pdf",
		Hash:         strPtr(sha256Hex(content)),
		LastModified: modified,
	}

	v := NewVerifier(nil, nil)
	for i := 0; i < 2; i++ {
		result, err := v.Verify(context.Background(), doc, LocalFile{
			SizeBytes:    int64(len(content)),
			FileType:     "application/pdf",
			LastModified: modified,
			Content:      bytes.NewReader(content),
		})
		require.NoError(t, err)
		assert.True(t, result.IsValid)
	}
}

func TestFormatSize(t *testing.T) {
	cases := []struct {
		bytes int64
		want  string
	}{
		{0, "0.00 B"},
		{512, "512.00 B"},
		{1024, "1.00 KB"},
		{1536, "1.50 KB"},
		{1048576, "1.00 MB"},
		{5242880, "5.00 MB"},
		{1073741824, "1.00 GB"},
		{1610612736, "1.50 GB"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatSize(tc.bytes))
	}
}

func TestDiscrepancyMessages(t *testing.T) {
	d := Discrepancy{Kind: DiscrepancySize, LocalSize: 1536, RecordedSize: 1024}
	assert.Equal(t, "File size mismatch: Local (1.50 KB) vs Cloud (1.00 KB)", d.String())

	d = Discrepancy{Kind: DiscrepancyType, LocalType: "image/png", RecordedType: "application/pdf"}
	assert.Equal(t, "File type mismatch: Local (image/png) vs Cloud (application/pdf)", d.String())

	d = Discrepancy{Kind: DiscrepancyHash}
	assert.Equal(t, "File content hash mismatch - possible file corruption or tampering", d.String())

	d = Discrepancy{Kind: DiscrepancyTimestamp, Delta: 2 * time.Second}
	assert.Equal(t, "Last modified timestamp mismatch", d.String())
}

// Package jobs keeps a ledger of asynchronous Textract jobs so their status
// survives process restarts. Records are stored as JSON payloads keyed by job
// id in one of three drivers: memory, sqlite, or postgres.
package jobs

import (
	"context"
	"errors"
	"sort"
	"time"

	"textractkit/pkg/textract"
)

// ErrNotFound is returned when a job id has no ledger record.
var ErrNotFound = errors.New("jobs: job not found")

// Kind identifies which asynchronous operation started a job.
type Kind string

const (
	KindDocumentAnalysis Kind = "document_analysis"
	KindTextDetection    Kind = "text_detection"
	KindExpenseAnalysis  Kind = "expense_analysis"
)

// Kinds lists every supported job kind.
func Kinds() []Kind {
	return []Kind{KindDocumentAnalysis, KindTextDetection, KindExpenseAnalysis}
}

// Record is one ledger entry.
type Record struct {
	JobID              string                 `json:"job_id"`
	Kind               Kind                   `json:"kind"`
	ClientRequestToken string                 `json:"client_request_token"`
	JobTag             string                 `json:"job_tag,omitempty"`
	Bucket             string                 `json:"bucket,omitempty"`
	Key                string                 `json:"key,omitempty"`
	Features           []textract.FeatureType `json:"features,omitempty"`
	Status             textract.JobStatus     `json:"status,omitempty"`
	StatusMessage      string                 `json:"status_message,omitempty"`
	Pages              int32                  `json:"pages,omitempty"`
	CreatedAt          time.Time              `json:"created_at"`
	UpdatedAt          time.Time              `json:"updated_at"`
}

// Terminal reports whether the recorded status ends the job.
func (r Record) Terminal() bool {
	switch r.Status {
	case textract.JobStatusSucceeded, textract.JobStatusFailed, textract.JobStatusPartialSuccess:
		return true
	}
	return false
}

// Store persists ledger records. Save upserts by JobID.
type Store interface {
	Save(ctx context.Context, rec Record) error
	Get(ctx context.Context, jobID string) (Record, error)
	List(ctx context.Context) ([]Record, error)
	Close() error
}

// sortRecords orders records by creation time, then job id.
func sortRecords(records []Record) {
	sort.Slice(records, func(i, j int) bool {
		if !records[i].CreatedAt.Equal(records[j].CreatedAt) {
			return records[i].CreatedAt.Before(records[j].CreatedAt)
		}
		return records[i].JobID < records[j].JobID
	})
}

func validate(rec Record) error {
	if rec.JobID == "" {
		return errors.New("jobs: record requires a job id")
	}
	return nil
}

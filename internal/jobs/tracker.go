package jobs

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"textractkit/pkg/textract"
)

// Client is the subset of the Textract adapter the tracker drives.
type Client interface {
	StartDocumentAnalysis(context.Context, *textract.StartDocumentAnalysisRequest) (*textract.StartDocumentAnalysisResult, error)
	StartDocumentTextDetection(context.Context, *textract.StartDocumentTextDetectionRequest) (*textract.StartDocumentTextDetectionResult, error)
	StartExpenseAnalysis(context.Context, *textract.StartExpenseAnalysisRequest) (*textract.StartExpenseAnalysisResult, error)
	GetDocumentAnalysis(context.Context, *textract.GetDocumentAnalysisRequest) (*textract.GetDocumentAnalysisResult, error)
	GetDocumentTextDetection(context.Context, *textract.GetDocumentTextDetectionRequest) (*textract.GetDocumentTextDetectionResult, error)
	GetExpenseAnalysis(context.Context, *textract.GetExpenseAnalysisRequest) (*textract.GetExpenseAnalysisResult, error)
}

// StartInput describes a job to launch.
type StartInput struct {
	Kind     Kind
	Location *textract.DocumentLocation
	Features []textract.FeatureType
	JobTag   string
	// ClientRequestToken is generated when empty.
	ClientRequestToken string
}

// Tracker starts asynchronous jobs and mirrors their status into a Store.
type Tracker struct {
	client Client
	store  Store
	now    func() time.Time
	newID  func() string
}

// NewTracker wires client and store. A nil now uses time.Now.
func NewTracker(client Client, store Store, now func() time.Time) *Tracker {
	if now == nil {
		now = time.Now
	}
	return &Tracker{client: client, store: store, now: now, newID: uuid.NewString}
}

// Start launches the job described by in and records it as IN_PROGRESS.
func (t *Tracker) Start(ctx context.Context, in StartInput) (Record, error) {
	if in.Location.GetS3Object() == nil {
		return Record{}, errors.New("jobs: start requires an S3 document location")
	}
	token := in.ClientRequestToken
	if token == "" {
		token = t.newID()
	}
	var tag *string
	if in.JobTag != "" {
		tag = &in.JobTag
	}
	var (
		jobID string
		err   error
	)
	switch in.Kind {
	case KindDocumentAnalysis:
		var res *textract.StartDocumentAnalysisResult
		res, err = t.client.StartDocumentAnalysis(ctx, new(textract.StartDocumentAnalysisRequest).
			SetDocumentLocation(in.Location).
			SetFeatureTypes(in.Features).
			WithClientRequestToken(token).
			SetJobTag(tag))
		jobID = res.GetJobId()
	case KindTextDetection:
		var res *textract.StartDocumentTextDetectionResult
		res, err = t.client.StartDocumentTextDetection(ctx, new(textract.StartDocumentTextDetectionRequest).
			SetDocumentLocation(in.Location).
			WithClientRequestToken(token).
			SetJobTag(tag))
		jobID = res.GetJobId()
	case KindExpenseAnalysis:
		var res *textract.StartExpenseAnalysisResult
		res, err = t.client.StartExpenseAnalysis(ctx, new(textract.StartExpenseAnalysisRequest).
			SetDocumentLocation(in.Location).
			WithClientRequestToken(token).
			SetJobTag(tag))
		jobID = res.GetJobId()
	default:
		return Record{}, fmt.Errorf("jobs: unknown kind %q", in.Kind)
	}
	if err != nil {
		return Record{}, err
	}
	if jobID == "" {
		return Record{}, fmt.Errorf("jobs: %s returned no job id", in.Kind)
	}
	now := t.now().UTC()
	obj := in.Location.GetS3Object()
	rec := Record{
		JobID:              jobID,
		Kind:               in.Kind,
		ClientRequestToken: token,
		JobTag:             in.JobTag,
		Bucket:             obj.GetBucket(),
		Key:                obj.GetName(),
		Features:           in.Features,
		Status:             textract.JobStatusInProgress,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := t.store.Save(ctx, rec); err != nil {
		return Record{}, err
	}
	return rec, nil
}

// jobStatus is the status slice of every Get result.
type jobStatus interface {
	GetJobStatus() textract.JobStatus
	GetStatusMessage() string
	GetDocumentMetadata() *textract.DocumentMetadata
}

// Refresh asks the service for the current status of jobID and stores it.
func (t *Tracker) Refresh(ctx context.Context, jobID string) (Record, error) {
	rec, err := t.store.Get(ctx, jobID)
	if err != nil {
		return Record{}, err
	}
	var page jobStatus
	switch rec.Kind {
	case KindDocumentAnalysis:
		page, err = t.client.GetDocumentAnalysis(ctx, new(textract.GetDocumentAnalysisRequest).
			WithJobId(jobID).
			WithMaxResults(1))
	case KindTextDetection:
		page, err = t.client.GetDocumentTextDetection(ctx, new(textract.GetDocumentTextDetectionRequest).
			WithJobId(jobID).
			WithMaxResults(1))
	case KindExpenseAnalysis:
		page, err = t.client.GetExpenseAnalysis(ctx, new(textract.GetExpenseAnalysisRequest).
			WithJobId(jobID).
			WithMaxResults(1))
	default:
		return Record{}, fmt.Errorf("jobs: unknown kind %q", rec.Kind)
	}
	if err != nil {
		return Record{}, err
	}
	rec.Status = page.GetJobStatus()
	rec.StatusMessage = page.GetStatusMessage()
	if pages := page.GetDocumentMetadata().GetPages(); pages > 0 {
		rec.Pages = pages
	}
	rec.UpdatedAt = t.now().UTC()
	if err := t.store.Save(ctx, rec); err != nil {
		return Record{}, err
	}
	return rec, nil
}

// Store returns the ledger the tracker writes to.
func (t *Tracker) Store() Store { return t.store }

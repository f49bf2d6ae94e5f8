package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"textractkit/pkg/textract"
)

type fakeClient struct {
	Client
	analysisReq *textract.StartDocumentAnalysisRequest
	textReq     *textract.StartDocumentTextDetectionRequest
	expenseReq  *textract.StartExpenseAnalysisRequest
	getCalls    int
	status      textract.JobStatus
	message     string
	pages       int32
	startErr    error
}

func (f *fakeClient) StartDocumentAnalysis(_ context.Context, req *textract.StartDocumentAnalysisRequest) (*textract.StartDocumentAnalysisResult, error) {
	f.analysisReq = req
	if f.startErr != nil {
		return nil, f.startErr
	}
	return new(textract.StartDocumentAnalysisResult).WithJobId("job-analysis"), nil
}

func (f *fakeClient) StartDocumentTextDetection(_ context.Context, req *textract.StartDocumentTextDetectionRequest) (*textract.StartDocumentTextDetectionResult, error) {
	f.textReq = req
	return new(textract.StartDocumentTextDetectionResult).WithJobId("job-text"), nil
}

func (f *fakeClient) StartExpenseAnalysis(_ context.Context, req *textract.StartExpenseAnalysisRequest) (*textract.StartExpenseAnalysisResult, error) {
	f.expenseReq = req
	return new(textract.StartExpenseAnalysisResult), nil
}

func (f *fakeClient) GetDocumentTextDetection(_ context.Context, req *textract.GetDocumentTextDetectionRequest) (*textract.GetDocumentTextDetectionResult, error) {
	f.getCalls++
	if req.GetJobId() != "job-text" || req.GetMaxResults() != 1 {
		return nil, errors.New("unexpected request " + req.String())
	}
	res := new(textract.GetDocumentTextDetectionResult).WithJobStatus(f.status)
	if f.message != "" {
		res.WithStatusMessage(f.message)
	}
	if f.pages > 0 {
		res.WithDocumentMetadata(*new(textract.DocumentMetadata).WithPages(f.pages))
	}
	return res, nil
}

func location() *textract.DocumentLocation {
	return new(textract.DocumentLocation).
		WithS3Object(*new(textract.S3Object).WithBucket("docs").WithName("scan.pdf"))
}

func fixedClock() func() time.Time {
	ts := time.Date(2026, 5, 4, 9, 30, 0, 0, time.UTC)
	return func() time.Time {
		ts = ts.Add(time.Second)
		return ts
	}
}

func TestTrackerStartRecordsJob(t *testing.T) {
	ctx := context.Background()
	client := &fakeClient{}
	tracker := NewTracker(client, NewMemoryStore(), fixedClock())
	tracker.newID = func() string { return "generated-token" }

	rec, err := tracker.Start(ctx, StartInput{
		Kind:     KindDocumentAnalysis,
		Location: location(),
		Features: []textract.FeatureType{textract.FeatureTypeTables},
		JobTag:   "batch-7",
	})
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if rec.JobID != "job-analysis" || rec.Bucket != "docs" || rec.Key != "scan.pdf" {
		t.Fatalf("unexpected record: %+v", rec)
	}
	if rec.Status != textract.JobStatusInProgress || rec.ClientRequestToken != "generated-token" {
		t.Fatalf("unexpected status/token: %+v", rec)
	}
	req := client.analysisReq
	if req.GetClientRequestToken() != "generated-token" || req.GetJobTag() != "batch-7" {
		t.Fatalf("request missing token/tag: %s", req)
	}
	if len(req.GetFeatureTypes()) != 1 || req.GetFeatureTypes()[0] != textract.FeatureTypeTables {
		t.Fatalf("request features: %v", req.GetFeatureTypes())
	}
	stored, err := tracker.Store().Get(ctx, "job-analysis")
	if err != nil {
		t.Fatalf("stored record: %v", err)
	}
	if stored.ClientRequestToken != "generated-token" {
		t.Fatalf("stored token mismatch: %+v", stored)
	}
}

func TestTrackerStartDefaultsToUUIDToken(t *testing.T) {
	client := &fakeClient{}
	tracker := NewTracker(client, NewMemoryStore(), nil)
	rec, err := tracker.Start(context.Background(), StartInput{Kind: KindTextDetection, Location: location()})
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if len(rec.ClientRequestToken) != 36 {
		t.Fatalf("expected uuid token, got %q", rec.ClientRequestToken)
	}
	if client.textReq.GetJobTag() != "" || client.textReq.JobTag != nil {
		t.Fatalf("empty job tag should stay unset: %s", client.textReq)
	}
}

func TestTrackerStartFailures(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("boom")
	cases := []struct {
		name   string
		client *fakeClient
		in     StartInput
	}{
		{"missing location", &fakeClient{}, StartInput{Kind: KindDocumentAnalysis}},
		{"unknown kind", &fakeClient{}, StartInput{Kind: "translate", Location: location()}},
		{"service error", &fakeClient{startErr: boom}, StartInput{Kind: KindDocumentAnalysis, Location: location()}},
		{"empty job id", &fakeClient{}, StartInput{Kind: KindExpenseAnalysis, Location: location()}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := NewMemoryStore()
			if _, err := NewTracker(tc.client, store, nil).Start(ctx, tc.in); err == nil {
				t.Fatalf("expected error")
			}
			list, _ := store.List(ctx)
			if len(list) != 0 {
				t.Fatalf("failed start must not record a job: %+v", list)
			}
		})
	}
}

func TestTrackerRefreshUpdatesStatus(t *testing.T) {
	ctx := context.Background()
	client := &fakeClient{}
	tracker := NewTracker(client, NewMemoryStore(), fixedClock())
	started, err := tracker.Start(ctx, StartInput{Kind: KindTextDetection, Location: location()})
	if err != nil {
		t.Fatalf("Start: %v", err)
	}

	client.status = textract.JobStatusFailed
	client.message = "unsupported format"
	client.pages = 2
	rec, err := tracker.Refresh(ctx, started.JobID)
	if err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if rec.Status != textract.JobStatusFailed || rec.StatusMessage != "unsupported format" || rec.Pages != 2 {
		t.Fatalf("unexpected refreshed record: %+v", rec)
	}
	if !rec.Terminal() {
		t.Fatalf("failed job should be terminal")
	}
	if !rec.UpdatedAt.After(started.UpdatedAt) {
		t.Fatalf("updated at not advanced: %v <= %v", rec.UpdatedAt, started.UpdatedAt)
	}
	if client.getCalls != 1 {
		t.Fatalf("expected one status call, got %d", client.getCalls)
	}
}

func TestTrackerRefreshUnknownJob(t *testing.T) {
	tracker := NewTracker(&fakeClient{}, NewMemoryStore(), nil)
	if _, err := tracker.Refresh(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

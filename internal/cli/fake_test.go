package cli

import (
	"bytes"
	"context"
	"testing"
	"time"

	"textractkit/internal/config"
	"textractkit/internal/jobs"
	"textractkit/internal/staging"
	"textractkit/pkg/client"
	"textractkit/pkg/textract"
)

// fakeTextract records requests and returns canned results.
type fakeTextract struct {
	analyzeReq *textract.AnalyzeDocumentRequest
	detectReq  *textract.DetectDocumentTextRequest
	expenseReq *textract.AnalyzeExpenseRequest
	idReq      *textract.AnalyzeIDRequest
	startReq   *textract.StartDocumentAnalysisRequest
	calls      int

	status   textract.JobStatus
	waitErr  error
	analysis *textract.GetDocumentAnalysisResult
}

func (f *fakeTextract) AnalyzeDocument(_ context.Context, req *textract.AnalyzeDocumentRequest) (*textract.AnalyzeDocumentResult, error) {
	f.calls++
	f.analyzeReq = req
	return new(textract.AnalyzeDocumentResult).WithAnalyzeDocumentModelVersion("1.0"), nil
}

func (f *fakeTextract) DetectDocumentText(_ context.Context, req *textract.DetectDocumentTextRequest) (*textract.DetectDocumentTextResult, error) {
	f.calls++
	f.detectReq = req
	return new(textract.DetectDocumentTextResult).WithDocumentMetadata(*new(textract.DocumentMetadata).WithPages(1)), nil
}

func (f *fakeTextract) AnalyzeExpense(_ context.Context, req *textract.AnalyzeExpenseRequest) (*textract.AnalyzeExpenseResult, error) {
	f.calls++
	f.expenseReq = req
	return new(textract.AnalyzeExpenseResult), nil
}

func (f *fakeTextract) AnalyzeID(_ context.Context, req *textract.AnalyzeIDRequest) (*textract.AnalyzeIDResult, error) {
	f.calls++
	f.idReq = req
	return new(textract.AnalyzeIDResult), nil
}

func (f *fakeTextract) StartDocumentAnalysis(_ context.Context, req *textract.StartDocumentAnalysisRequest) (*textract.StartDocumentAnalysisResult, error) {
	f.calls++
	f.startReq = req
	return new(textract.StartDocumentAnalysisResult).WithJobId("job-1"), nil
}

func (f *fakeTextract) StartDocumentTextDetection(context.Context, *textract.StartDocumentTextDetectionRequest) (*textract.StartDocumentTextDetectionResult, error) {
	f.calls++
	return new(textract.StartDocumentTextDetectionResult).WithJobId("job-text"), nil
}

func (f *fakeTextract) StartExpenseAnalysis(context.Context, *textract.StartExpenseAnalysisRequest) (*textract.StartExpenseAnalysisResult, error) {
	f.calls++
	return new(textract.StartExpenseAnalysisResult).WithJobId("job-expense"), nil
}

func (f *fakeTextract) GetDocumentAnalysis(context.Context, *textract.GetDocumentAnalysisRequest) (*textract.GetDocumentAnalysisResult, error) {
	f.calls++
	return new(textract.GetDocumentAnalysisResult).WithJobStatus(f.status), nil
}

func (f *fakeTextract) GetDocumentTextDetection(context.Context, *textract.GetDocumentTextDetectionRequest) (*textract.GetDocumentTextDetectionResult, error) {
	f.calls++
	return new(textract.GetDocumentTextDetectionResult).WithJobStatus(f.status), nil
}

func (f *fakeTextract) GetExpenseAnalysis(context.Context, *textract.GetExpenseAnalysisRequest) (*textract.GetExpenseAnalysisResult, error) {
	f.calls++
	return new(textract.GetExpenseAnalysisResult).WithJobStatus(f.status), nil
}

func (f *fakeTextract) WaitForDocumentAnalysis(context.Context, string) (*textract.GetDocumentAnalysisResult, error) {
	f.calls++
	if f.waitErr != nil {
		return nil, f.waitErr
	}
	return f.analysis, nil
}

func (f *fakeTextract) WaitForDocumentTextDetection(context.Context, string) (*textract.GetDocumentTextDetectionResult, error) {
	f.calls++
	if f.waitErr != nil {
		return nil, f.waitErr
	}
	return new(textract.GetDocumentTextDetectionResult).WithJobStatus(textract.JobStatusSucceeded), nil
}

func (f *fakeTextract) WaitForExpenseAnalysis(context.Context, string) (*textract.GetExpenseAnalysisResult, error) {
	f.calls++
	return new(textract.GetExpenseAnalysisResult).WithJobStatus(textract.JobStatusSucceeded), nil
}

// harness runs commands against shared fakes; each run gets a fresh command
// tree so flag state does not leak between invocations.
type harness struct {
	t      *testing.T
	api    *fakeTextract
	store  *jobs.MemoryStore
	stager *staging.MemoryStager
	env    map[string]string
	opts   int
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	return &harness{
		t:      t,
		api:    &fakeTextract{},
		store:  jobs.NewMemoryStore(),
		stager: staging.NewMemory("stage-bucket"),
		env:    map[string]string{},
	}
}

func (h *harness) run(args ...string) (string, string, error) {
	a := newApp()
	a.lookupEnv = func(key string) (string, bool) {
		v, ok := h.env[key]
		return v, ok
	}
	a.now = func() time.Time { return time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC) }
	a.newClient = func(_ context.Context, _ config.Config, opts ...client.Option) (Textract, error) {
		h.opts = len(opts)
		return h.api, nil
	}
	a.openJobs = func(context.Context, jobs.Config) (jobs.Store, error) { return h.store, nil }
	a.openStager = func(context.Context, staging.Config) (staging.Stager, error) { return h.stager, nil }
	var stdout, stderr bytes.Buffer
	err := a.execute(context.Background(), args, &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}

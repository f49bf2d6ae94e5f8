package client

import (
	"context"
	"sync"
	"time"

	sdk "github.com/aws/aws-sdk-go-v2/service/textract"
)

// fakeAPI records inputs and replays canned outputs. Methods a test does not
// configure fall through to the nil embedded API and panic.
type fakeAPI struct {
	API

	mu  sync.Mutex
	err error

	analyzeIn  *sdk.AnalyzeDocumentInput
	analyzeOut *sdk.AnalyzeDocumentOutput

	detectIn  *sdk.DetectDocumentTextInput
	detectOut *sdk.DetectDocumentTextOutput

	startTextIn  *sdk.StartDocumentTextDetectionInput
	startAnaIn   *sdk.StartDocumentAnalysisInput
	startExpIn   *sdk.StartExpenseAnalysisInput
	startedJobID string

	expenseOut *sdk.AnalyzeExpenseOutput
	idIn       *sdk.AnalyzeIDInput
	idOut      *sdk.AnalyzeIDOutput

	analysisPages []*sdk.GetDocumentAnalysisOutput
	textPages     []*sdk.GetDocumentTextDetectionOutput
	expensePages  []*sdk.GetExpenseAnalysisOutput
	tokens        []*string
	onGet         func(call int)
}

func (f *fakeAPI) AnalyzeDocument(_ context.Context, in *sdk.AnalyzeDocumentInput, _ ...func(*sdk.Options)) (*sdk.AnalyzeDocumentOutput, error) {
	f.analyzeIn = in
	return f.analyzeOut, f.err
}

func (f *fakeAPI) DetectDocumentText(_ context.Context, in *sdk.DetectDocumentTextInput, _ ...func(*sdk.Options)) (*sdk.DetectDocumentTextOutput, error) {
	f.detectIn = in
	return f.detectOut, f.err
}

func (f *fakeAPI) StartDocumentAnalysis(_ context.Context, in *sdk.StartDocumentAnalysisInput, _ ...func(*sdk.Options)) (*sdk.StartDocumentAnalysisOutput, error) {
	f.startAnaIn = in
	return &sdk.StartDocumentAnalysisOutput{JobId: &f.startedJobID}, f.err
}

func (f *fakeAPI) StartDocumentTextDetection(_ context.Context, in *sdk.StartDocumentTextDetectionInput, _ ...func(*sdk.Options)) (*sdk.StartDocumentTextDetectionOutput, error) {
	f.startTextIn = in
	return &sdk.StartDocumentTextDetectionOutput{JobId: &f.startedJobID}, f.err
}

func (f *fakeAPI) StartExpenseAnalysis(_ context.Context, in *sdk.StartExpenseAnalysisInput, _ ...func(*sdk.Options)) (*sdk.StartExpenseAnalysisOutput, error) {
	f.startExpIn = in
	return &sdk.StartExpenseAnalysisOutput{JobId: &f.startedJobID}, f.err
}

func (f *fakeAPI) AnalyzeExpense(_ context.Context, _ *sdk.AnalyzeExpenseInput, _ ...func(*sdk.Options)) (*sdk.AnalyzeExpenseOutput, error) {
	return f.expenseOut, f.err
}

func (f *fakeAPI) AnalyzeID(_ context.Context, in *sdk.AnalyzeIDInput, _ ...func(*sdk.Options)) (*sdk.AnalyzeIDOutput, error) {
	f.idIn = in
	return f.idOut, f.err
}

// nextPage pops the head of pages, repeating the last page once drained.
func nextPage[T any](f *fakeAPI, pages *[]T, token *string) T {
	f.mu.Lock()
	f.tokens = append(f.tokens, token)
	call := len(f.tokens)
	page := (*pages)[0]
	if len(*pages) > 1 {
		*pages = (*pages)[1:]
	}
	hook := f.onGet
	f.mu.Unlock()
	if hook != nil {
		hook(call)
	}
	return page
}

func (f *fakeAPI) GetDocumentAnalysis(_ context.Context, in *sdk.GetDocumentAnalysisInput, _ ...func(*sdk.Options)) (*sdk.GetDocumentAnalysisOutput, error) {
	return nextPage(f, &f.analysisPages, in.NextToken), f.err
}

func (f *fakeAPI) GetDocumentTextDetection(_ context.Context, in *sdk.GetDocumentTextDetectionInput, _ ...func(*sdk.Options)) (*sdk.GetDocumentTextDetectionOutput, error) {
	return nextPage(f, &f.textPages, in.NextToken), f.err
}

func (f *fakeAPI) GetExpenseAnalysis(_ context.Context, in *sdk.GetExpenseAnalysisInput, _ ...func(*sdk.Options)) (*sdk.GetExpenseAnalysisOutput, error) {
	return nextPage(f, &f.expensePages, in.NextToken), f.err
}

type metricsCall struct {
	op      string
	success bool
}

type captureMetrics struct {
	mu    sync.Mutex
	calls []metricsCall
}

func (c *captureMetrics) Observe(_ context.Context, op string, success bool, _ time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls = append(c.calls, metricsCall{op: op, success: success})
}

type spanRecord struct {
	op  string
	err error
}

type captureTracer struct {
	mu    sync.Mutex
	ended []spanRecord
}

func (c *captureTracer) Start(ctx context.Context, op string) (context.Context, TraceSpan) {
	return ctx, &captureSpan{tracer: c, op: op}
}

type captureSpan struct {
	tracer *captureTracer
	op     string
}

func (s *captureSpan) End(err error) {
	s.tracer.mu.Lock()
	defer s.tracer.mu.Unlock()
	s.tracer.ended = append(s.tracer.ended, spanRecord{op: s.op, err: err})
}

type captureLogger struct {
	noopLogger
	mu       sync.Mutex
	messages []string
}

func (l *captureLogger) Debug(msg string, _ ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.messages = append(l.messages, msg)
}

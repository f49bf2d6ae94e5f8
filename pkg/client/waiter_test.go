package client

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	sdk "github.com/aws/aws-sdk-go-v2/service/textract"
	"github.com/aws/aws-sdk-go-v2/service/textract/types"

	"textractkit/pkg/textract"
)

func lineBlock(text string) types.Block {
	return types.Block{BlockType: types.BlockTypeLine, Text: aws.String(text)}
}

func TestWaitForDocumentAnalysisMergesPages(t *testing.T) {
	api := &fakeAPI{analysisPages: []*sdk.GetDocumentAnalysisOutput{
		{JobStatus: types.JobStatusInProgress},
		{JobStatus: types.JobStatusInProgress},
		{JobStatus: types.JobStatusSucceeded, NextToken: aws.String("page-2"), Blocks: []types.Block{lineBlock("one")}},
		{JobStatus: types.JobStatusSucceeded, Blocks: []types.Block{lineBlock("two")}, Warnings: []types.Warning{{ErrorCode: aws.String("W1"), Pages: []int32{2}}}},
	}}
	c := NewFromAPI(api, WithPollInterval(time.Millisecond))

	res, err := c.WaitForDocumentAnalysis(context.Background(), "job-1")
	if err != nil {
		t.Fatalf("WaitForDocumentAnalysis: %v", err)
	}
	if res.GetJobStatus() != textract.JobStatusSucceeded {
		t.Fatalf("unexpected status %q", res.GetJobStatus())
	}
	blocks := res.GetBlocks()
	if len(blocks) != 2 || blocks[0].GetText() != "one" || blocks[1].GetText() != "two" {
		t.Fatalf("unexpected merged blocks %v", blocks)
	}
	if len(res.GetWarnings()) != 1 || res.GetWarnings()[0].GetErrorCode() != "W1" {
		t.Fatalf("unexpected warnings %v", res.GetWarnings())
	}
	if res.NextToken != nil {
		t.Fatal("merged result must not carry a next token")
	}
	if len(api.tokens) != 4 || api.tokens[2] != nil || aws.ToString(api.tokens[3]) != "page-2" {
		t.Fatalf("unexpected token sequence %v", api.tokens)
	}
}

func TestWaitForDocumentTextDetectionPartialSuccess(t *testing.T) {
	api := &fakeAPI{textPages: []*sdk.GetDocumentTextDetectionOutput{
		{JobStatus: types.JobStatusPartialSuccess, Blocks: []types.Block{lineBlock("only")}, StatusMessage: aws.String("some pages failed")},
	}}
	res, err := NewFromAPI(api, WithPollInterval(time.Millisecond)).WaitForDocumentTextDetection(context.Background(), "job-2")
	if err != nil {
		t.Fatalf("WaitForDocumentTextDetection: %v", err)
	}
	if res.GetJobStatus() != textract.JobStatusPartialSuccess || len(res.GetBlocks()) != 1 {
		t.Fatalf("unexpected result %v", res)
	}
}

func TestWaitForExpenseAnalysisMergesDocuments(t *testing.T) {
	api := &fakeAPI{expensePages: []*sdk.GetExpenseAnalysisOutput{
		{JobStatus: types.JobStatusSucceeded, NextToken: aws.String("t2"), ExpenseDocuments: []types.ExpenseDocument{{ExpenseIndex: aws.Int32(1)}}},
		{JobStatus: types.JobStatusSucceeded, ExpenseDocuments: []types.ExpenseDocument{{ExpenseIndex: aws.Int32(2)}}},
	}}
	res, err := NewFromAPI(api, WithPollInterval(time.Millisecond)).WaitForExpenseAnalysis(context.Background(), "job-3")
	if err != nil {
		t.Fatalf("WaitForExpenseAnalysis: %v", err)
	}
	docs := res.GetExpenseDocuments()
	if len(docs) != 2 || docs[0].GetExpenseIndex() != 1 || docs[1].GetExpenseIndex() != 2 {
		t.Fatalf("unexpected documents %v", docs)
	}
}

func TestWaitReportsFailedJob(t *testing.T) {
	api := &fakeAPI{analysisPages: []*sdk.GetDocumentAnalysisOutput{
		{JobStatus: types.JobStatusInProgress},
		{JobStatus: types.JobStatusFailed, StatusMessage: aws.String("unsupported format")},
	}}
	_, err := NewFromAPI(api, WithPollInterval(time.Millisecond)).WaitForDocumentAnalysis(context.Background(), "job-4")
	if !errors.Is(err, ErrJobFailed) {
		t.Fatalf("expected ErrJobFailed, got %v", err)
	}
	var failed *JobFailedError
	if !errors.As(err, &failed) || failed.JobID != "job-4" || failed.Message != "unsupported format" {
		t.Fatalf("unexpected failure %+v", failed)
	}
}

func TestWaitHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	api := &fakeAPI{
		analysisPages: []*sdk.GetDocumentAnalysisOutput{{JobStatus: types.JobStatusInProgress}},
		onGet: func(call int) {
			if call == 2 {
				cancel()
			}
		},
	}
	_, err := NewFromAPI(api, WithPollInterval(time.Millisecond)).WaitForDocumentAnalysis(ctx, "job-5")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected cancellation, got %v", err)
	}
	if len(api.tokens) != 2 {
		t.Fatalf("expected polling to stop after cancel, got %d calls", len(api.tokens))
	}
}

func TestWaitPropagatesServiceErrors(t *testing.T) {
	api := &fakeAPI{
		analysisPages: []*sdk.GetDocumentAnalysisOutput{{}},
		err:           &types.InvalidJobIdException{Message: aws.String("no such job")},
	}
	_, err := NewFromAPI(api, WithPollInterval(time.Millisecond)).WaitForDocumentAnalysis(context.Background(), "missing")
	var target *textract.InvalidJobIdException
	if !errors.As(err, &target) {
		t.Fatalf("expected InvalidJobIdException, got %v", err)
	}
}

func TestIsTerminal(t *testing.T) {
	for _, status := range textract.JobStatus("").Values() {
		want := status != textract.JobStatusInProgress
		if IsTerminal(status) != want {
			t.Fatalf("IsTerminal(%q) = %v", status, !want)
		}
	}
	if IsTerminal("") {
		t.Fatal("absent status is not terminal")
	}
}

package client

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"

	"textractkit/pkg/textract"
)

// jobPage is implemented by the Get*Result types.
type jobPage interface {
	GetJobStatus() textract.JobStatus
	GetNextToken() string
	GetStatusMessage() string
}

// IsTerminal reports whether status ends an asynchronous job.
func IsTerminal(status textract.JobStatus) bool {
	switch status {
	case textract.JobStatusSucceeded, textract.JobStatusFailed, textract.JobStatusPartialSuccess:
		return true
	}
	return false
}

// waitForJob polls get until the job is terminal, then follows NextToken and
// folds every later page into the first one with merge.
func waitForJob[R jobPage](ctx context.Context, c *Client, operation, jobID string, get func(context.Context, *string) (R, error), merge func(dst, page R)) (R, error) {
	var zero R
	limiter := rate.NewLimiter(rate.Every(c.pollInterval), 1)

	var first R
	for {
		if err := limiter.Wait(ctx); err != nil {
			return zero, fmt.Errorf("textract %s: wait for job %s: %w", operation, jobID, err)
		}
		page, err := get(ctx, nil)
		if err != nil {
			return zero, err
		}
		status := page.GetJobStatus()
		if !IsTerminal(status) {
			c.logger.Debug("textract job pending", "operation", operation, "job_id", jobID, "status", string(status))
			continue
		}
		if status == textract.JobStatusFailed {
			return zero, &JobFailedError{Operation: operation, JobID: jobID, Message: page.GetStatusMessage()}
		}
		first = page
		break
	}

	pages := 1
	for token := first.GetNextToken(); token != ""; {
		if err := ctx.Err(); err != nil {
			return zero, fmt.Errorf("textract %s: wait for job %s: %w", operation, jobID, err)
		}
		next := token
		page, err := get(ctx, &next)
		if err != nil {
			return zero, err
		}
		merge(first, page)
		token = page.GetNextToken()
		pages++
	}
	c.logger.Info("textract job complete", "operation", operation, "job_id", jobID, "status", string(first.GetJobStatus()), "pages", pages)
	return first, nil
}

// WaitForDocumentAnalysis blocks until the analysis job finishes and returns
// all of its result pages merged into one result.
func (c *Client) WaitForDocumentAnalysis(ctx context.Context, jobID string) (*textract.GetDocumentAnalysisResult, error) {
	get := func(ctx context.Context, token *string) (*textract.GetDocumentAnalysisResult, error) {
		return c.GetDocumentAnalysis(ctx, &textract.GetDocumentAnalysisRequest{JobId: &jobID, NextToken: token})
	}
	return waitForJob(ctx, c, opGetDocumentAnalysis, jobID, get, func(dst, page *textract.GetDocumentAnalysisResult) {
		dst.Blocks = append(dst.Blocks, page.Blocks...)
		dst.Warnings = append(dst.Warnings, page.Warnings...)
		dst.NextToken = page.NextToken
	})
}

// WaitForDocumentTextDetection blocks until the text detection job finishes
// and returns all of its result pages merged into one result.
func (c *Client) WaitForDocumentTextDetection(ctx context.Context, jobID string) (*textract.GetDocumentTextDetectionResult, error) {
	get := func(ctx context.Context, token *string) (*textract.GetDocumentTextDetectionResult, error) {
		return c.GetDocumentTextDetection(ctx, &textract.GetDocumentTextDetectionRequest{JobId: &jobID, NextToken: token})
	}
	return waitForJob(ctx, c, opGetDocumentTextDetection, jobID, get, func(dst, page *textract.GetDocumentTextDetectionResult) {
		dst.Blocks = append(dst.Blocks, page.Blocks...)
		dst.Warnings = append(dst.Warnings, page.Warnings...)
		dst.NextToken = page.NextToken
	})
}

// WaitForExpenseAnalysis blocks until the expense job finishes and returns
// all of its result pages merged into one result.
func (c *Client) WaitForExpenseAnalysis(ctx context.Context, jobID string) (*textract.GetExpenseAnalysisResult, error) {
	get := func(ctx context.Context, token *string) (*textract.GetExpenseAnalysisResult, error) {
		return c.GetExpenseAnalysis(ctx, &textract.GetExpenseAnalysisRequest{JobId: &jobID, NextToken: token})
	}
	return waitForJob(ctx, c, opGetExpenseAnalysis, jobID, get, func(dst, page *textract.GetExpenseAnalysisResult) {
		dst.ExpenseDocuments = append(dst.ExpenseDocuments, page.ExpenseDocuments...)
		dst.Warnings = append(dst.Warnings, page.Warnings...)
		dst.NextToken = page.NextToken
	})
}

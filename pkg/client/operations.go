package client

import (
	"context"

	sdk "github.com/aws/aws-sdk-go-v2/service/textract"

	"textractkit/pkg/textract"
)

const (
	opAnalyzeDocument            = "AnalyzeDocument"
	opDetectDocumentText         = "DetectDocumentText"
	opStartDocumentAnalysis      = "StartDocumentAnalysis"
	opGetDocumentAnalysis        = "GetDocumentAnalysis"
	opStartDocumentTextDetection = "StartDocumentTextDetection"
	opGetDocumentTextDetection   = "GetDocumentTextDetection"
	opAnalyzeExpense             = "AnalyzeExpense"
	opStartExpenseAnalysis       = "StartExpenseAnalysis"
	opGetExpenseAnalysis         = "GetExpenseAnalysis"
	opAnalyzeID                  = "AnalyzeID"
)

// invoke sends in through send and converts the output. The result is either
// fully converted or nil alongside an error.
func invoke[In, Out, R any](ctx context.Context, c *Client, operation string, in In, send func(context.Context, In, ...func(*sdk.Options)) (Out, error), convert func(Out) (R, error)) (R, error) {
	var result R
	err := c.instrument(ctx, operation, func(ctx context.Context) error {
		out, err := send(ctx, in)
		if err != nil {
			return translateError(operation, err)
		}
		converted, err := convert(out)
		if err != nil {
			return conversionError(operation, err)
		}
		result = converted
		return nil
	})
	if err != nil {
		var zero R
		return zero, err
	}
	return result, nil
}

// AnalyzeDocument analyzes a single-page document for the requested features.
func (c *Client) AnalyzeDocument(ctx context.Context, req *textract.AnalyzeDocumentRequest) (*textract.AnalyzeDocumentResult, error) {
	return invoke(ctx, c, opAnalyzeDocument, analyzeDocumentInput(req), c.api.AnalyzeDocument, analyzeDocumentResult)
}

// DetectDocumentText detects lines and words in a single-page document.
func (c *Client) DetectDocumentText(ctx context.Context, req *textract.DetectDocumentTextRequest) (*textract.DetectDocumentTextResult, error) {
	return invoke(ctx, c, opDetectDocumentText, detectDocumentTextInput(req), c.api.DetectDocumentText, detectDocumentTextResult)
}

// StartDocumentAnalysis starts an asynchronous analysis job.
func (c *Client) StartDocumentAnalysis(ctx context.Context, req *textract.StartDocumentAnalysisRequest) (*textract.StartDocumentAnalysisResult, error) {
	return invoke(ctx, c, opStartDocumentAnalysis, startDocumentAnalysisInput(req), c.api.StartDocumentAnalysis,
		func(out *sdk.StartDocumentAnalysisOutput) (*textract.StartDocumentAnalysisResult, error) {
			return &textract.StartDocumentAnalysisResult{JobId: out.JobId}, nil
		})
}

// GetDocumentAnalysis fetches one page of an analysis job's results.
func (c *Client) GetDocumentAnalysis(ctx context.Context, req *textract.GetDocumentAnalysisRequest) (*textract.GetDocumentAnalysisResult, error) {
	return invoke(ctx, c, opGetDocumentAnalysis, getDocumentAnalysisInput(req), c.api.GetDocumentAnalysis, getDocumentAnalysisResult)
}

// StartDocumentTextDetection starts an asynchronous text detection job.
func (c *Client) StartDocumentTextDetection(ctx context.Context, req *textract.StartDocumentTextDetectionRequest) (*textract.StartDocumentTextDetectionResult, error) {
	return invoke(ctx, c, opStartDocumentTextDetection, startDocumentTextDetectionInput(req), c.api.StartDocumentTextDetection,
		func(out *sdk.StartDocumentTextDetectionOutput) (*textract.StartDocumentTextDetectionResult, error) {
			return &textract.StartDocumentTextDetectionResult{JobId: out.JobId}, nil
		})
}

// GetDocumentTextDetection fetches one page of a text detection job's results.
func (c *Client) GetDocumentTextDetection(ctx context.Context, req *textract.GetDocumentTextDetectionRequest) (*textract.GetDocumentTextDetectionResult, error) {
	return invoke(ctx, c, opGetDocumentTextDetection, getDocumentTextDetectionInput(req), c.api.GetDocumentTextDetection, getDocumentTextDetectionResult)
}

// AnalyzeExpense extracts invoice and receipt fields from a document.
func (c *Client) AnalyzeExpense(ctx context.Context, req *textract.AnalyzeExpenseRequest) (*textract.AnalyzeExpenseResult, error) {
	return invoke(ctx, c, opAnalyzeExpense, analyzeExpenseInput(req), c.api.AnalyzeExpense, analyzeExpenseResult)
}

// StartExpenseAnalysis starts an asynchronous expense analysis job.
func (c *Client) StartExpenseAnalysis(ctx context.Context, req *textract.StartExpenseAnalysisRequest) (*textract.StartExpenseAnalysisResult, error) {
	return invoke(ctx, c, opStartExpenseAnalysis, startExpenseAnalysisInput(req), c.api.StartExpenseAnalysis,
		func(out *sdk.StartExpenseAnalysisOutput) (*textract.StartExpenseAnalysisResult, error) {
			return &textract.StartExpenseAnalysisResult{JobId: out.JobId}, nil
		})
}

// GetExpenseAnalysis fetches one page of an expense analysis job's results.
func (c *Client) GetExpenseAnalysis(ctx context.Context, req *textract.GetExpenseAnalysisRequest) (*textract.GetExpenseAnalysisResult, error) {
	return invoke(ctx, c, opGetExpenseAnalysis, getExpenseAnalysisInput(req), c.api.GetExpenseAnalysis, getExpenseAnalysisResult)
}

// AnalyzeID extracts identity document fields from one or two pages.
func (c *Client) AnalyzeID(ctx context.Context, req *textract.AnalyzeIDRequest) (*textract.AnalyzeIDResult, error) {
	return invoke(ctx, c, opAnalyzeID, analyzeIDInput(req), c.api.AnalyzeID, analyzeIDResult)
}

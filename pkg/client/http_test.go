package client

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/aws/smithy-go"

	"textractkit/pkg/model"
	"textractkit/pkg/textract"
	"textractkit/testutil"
)

// jsonRoundTripper answers awsJson1.1 calls by X-Amz-Target.
type jsonRoundTripper struct {
	responses map[string]mockResponse
	targets   []string
	bodies    []string
}

type mockResponse struct {
	status    int
	errorType string
	body      string
}

func (m *jsonRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	target := strings.TrimPrefix(req.Header.Get("X-Amz-Target"), "Textract.")
	m.targets = append(m.targets, target)
	if req.Body != nil {
		body, _ := io.ReadAll(req.Body)
		m.bodies = append(m.bodies, string(body))
	}
	resp, ok := m.responses[target]
	if !ok {
		resp = mockResponse{status: http.StatusBadRequest, errorType: "InvalidParameterException", body: `{"Message":"unexpected call"}`}
	}
	header := http.Header{
		"Content-Type":     {"application/x-amz-json-1.1"},
		"X-Amzn-Requestid": {"req-" + target},
	}
	if resp.errorType != "" {
		header.Set("X-Amzn-ErrorType", resp.errorType)
	}
	return &http.Response{
		StatusCode: resp.status,
		Header:     header,
		Body:       io.NopCloser(bytes.NewReader([]byte(resp.body))),
		Request:    req,
	}, nil
}

func newMockClient(t *testing.T, rt *jsonRoundTripper) *Client {
	t.Helper()
	testutil.IsolateAWSEnv(t)
	c, err := New(context.Background(), Config{
		Region:          "us-east-1",
		Endpoint:        "https://mock.textract.local",
		AccessKeyID:     "AKIA",
		SecretAccessKey: "SECRET",
		HTTPClient:      &http.Client{Transport: rt},
		MaxAttempts:     1,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

func TestSDKRoundTrip(t *testing.T) {
	rt := &jsonRoundTripper{responses: map[string]mockResponse{
		"DetectDocumentText": {status: http.StatusOK, body: `{
			"DocumentMetadata": {"Pages": 1},
			"Blocks": [
				{"BlockType": "PAGE", "Id": "p1", "Relationships": [{"Type": "CHILD", "Ids": ["l1"]}]},
				{"BlockType": "LINE", "Id": "l1", "Text": "Hello", "Confidence": 99.5, "TextType": "PRINTED",
				 "Geometry": {"BoundingBox": {"Width": 0.5, "Height": 0.1, "Left": 0.25, "Top": 0.125}}}
			],
			"DetectDocumentTextModelVersion": "1.0"
		}`},
	}}
	c := newMockClient(t, rt)

	res, err := c.DetectDocumentText(context.Background(), new(textract.DetectDocumentTextRequest).
		SetDocument(new(textract.Document).WithS3Object(*new(textract.S3Object).WithBucket("docs").WithName("hello.png"))))
	if err != nil {
		t.Fatalf("DetectDocumentText: %v", err)
	}
	if len(rt.targets) != 1 || rt.targets[0] != "DetectDocumentText" {
		t.Fatalf("unexpected targets %v", rt.targets)
	}
	if !strings.Contains(rt.bodies[0], `"Bucket":"docs"`) || !strings.Contains(rt.bodies[0], `"Name":"hello.png"`) {
		t.Fatalf("request body missing document location: %s", rt.bodies[0])
	}
	blocks := res.GetBlocks()
	if len(blocks) != 2 || blocks[1].GetText() != "Hello" || blocks[1].GetTextType() != textract.TextTypePrinted {
		t.Fatalf("unexpected blocks %v", blocks)
	}
	if blocks[0].GetRelationships()[0].GetType() != textract.RelationshipTypeChild {
		t.Fatalf("unexpected relationship %v", blocks[0].GetRelationships())
	}
	if blocks[1].GetGeometry().GetBoundingBox().GetTop() != 0.125 {
		t.Fatalf("unexpected geometry %v", blocks[1].GetGeometry())
	}
}

func TestSDKErrorMapping(t *testing.T) {
	rt := &jsonRoundTripper{responses: map[string]mockResponse{
		"AnalyzeDocument": {
			status:    http.StatusBadRequest,
			errorType: "UnsupportedDocumentException",
			body:      `{"__type":"UnsupportedDocumentException","Message":"format not supported"}`,
		},
	}}
	c := newMockClient(t, rt)

	_, err := c.AnalyzeDocument(context.Background(), new(textract.AnalyzeDocumentRequest).
		SetDocument(new(textract.Document).WithBytes([]byte("GIF89a"))).
		WithFeatureTypes(textract.FeatureTypeTables))
	var target *textract.UnsupportedDocumentException
	if !errors.As(err, &target) {
		t.Fatalf("expected UnsupportedDocumentException, got %v", err)
	}
	if target.ErrorMessage() != "format not supported" {
		t.Fatalf("unexpected message %q", target.ErrorMessage())
	}
	var opErr *smithy.OperationError
	if !errors.As(err, &opErr) || opErr.Operation() != "AnalyzeDocument" {
		t.Fatalf("SDK operation error lost from chain: %v", err)
	}
	if id := RequestID(err); id != "req-AnalyzeDocument" {
		t.Fatalf("RequestID = %q", id)
	}
	if want := "textract AnalyzeDocument: api error UnsupportedDocumentException: format not supported"; err.Error() != want {
		t.Fatalf("error text = %q, want %q", err.Error(), want)
	}
}

func TestSDKUnknownEnumFailsCall(t *testing.T) {
	rt := &jsonRoundTripper{responses: map[string]mockResponse{
		"GetDocumentAnalysis": {status: http.StatusOK, body: `{"JobStatus": "PAUSED"}`},
	}}
	c := newMockClient(t, rt)

	res, err := c.GetDocumentAnalysis(context.Background(), new(textract.GetDocumentAnalysisRequest).WithJobId("job-1"))
	if !errors.Is(err, model.ErrInvalidEnumValue) || res != nil {
		t.Fatalf("expected invalid enum failure, got %v %v", res, err)
	}
}

func TestNewKeepsHTTPClientWithCABundle(t *testing.T) {
	testutil.IsolateAWSEnv(t)
	t.Setenv("AWS_CA_BUNDLE", testutil.WriteCABundle(t))

	rt := &jsonRoundTripper{responses: map[string]mockResponse{
		"DetectDocumentText": {status: http.StatusOK, body: `{"DocumentMetadata":{"Pages":1}}`},
	}}
	c, err := New(context.Background(), Config{
		Region:          "us-east-1",
		Endpoint:        "https://mock.textract.local",
		AccessKeyID:     "AKIA",
		SecretAccessKey: "SECRET",
		HTTPClient:      &http.Client{Transport: rt},
		MaxAttempts:     1,
	})
	if err != nil {
		t.Fatalf("New with AWS_CA_BUNDLE: %v", err)
	}
	req := new(textract.DetectDocumentTextRequest).WithDocument(textract.Document{Bytes: []byte("img")})
	res, err := c.DetectDocumentText(context.Background(), req)
	if err != nil {
		t.Fatalf("DetectDocumentText: %v", err)
	}
	if res.GetDocumentMetadata().GetPages() != 1 || len(rt.targets) != 1 {
		t.Fatalf("custom transport not used: %v targets=%v", res, rt.targets)
	}
}

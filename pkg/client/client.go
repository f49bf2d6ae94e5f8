// Package client adapts the generated Textract model to the AWS SDK runtime.
// Requests are converted field by field into SDK inputs, SDK outputs are
// converted back with strict enum parsing, and service errors are translated
// into the typed errors declared in pkg/textract.
package client

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	sdk "github.com/aws/aws-sdk-go-v2/service/textract"
)

// API is the subset of the SDK client used by Client.
type API interface {
	AnalyzeDocument(ctx context.Context, params *sdk.AnalyzeDocumentInput, optFns ...func(*sdk.Options)) (*sdk.AnalyzeDocumentOutput, error)
	DetectDocumentText(ctx context.Context, params *sdk.DetectDocumentTextInput, optFns ...func(*sdk.Options)) (*sdk.DetectDocumentTextOutput, error)
	StartDocumentAnalysis(ctx context.Context, params *sdk.StartDocumentAnalysisInput, optFns ...func(*sdk.Options)) (*sdk.StartDocumentAnalysisOutput, error)
	GetDocumentAnalysis(ctx context.Context, params *sdk.GetDocumentAnalysisInput, optFns ...func(*sdk.Options)) (*sdk.GetDocumentAnalysisOutput, error)
	StartDocumentTextDetection(ctx context.Context, params *sdk.StartDocumentTextDetectionInput, optFns ...func(*sdk.Options)) (*sdk.StartDocumentTextDetectionOutput, error)
	GetDocumentTextDetection(ctx context.Context, params *sdk.GetDocumentTextDetectionInput, optFns ...func(*sdk.Options)) (*sdk.GetDocumentTextDetectionOutput, error)
	AnalyzeExpense(ctx context.Context, params *sdk.AnalyzeExpenseInput, optFns ...func(*sdk.Options)) (*sdk.AnalyzeExpenseOutput, error)
	StartExpenseAnalysis(ctx context.Context, params *sdk.StartExpenseAnalysisInput, optFns ...func(*sdk.Options)) (*sdk.StartExpenseAnalysisOutput, error)
	GetExpenseAnalysis(ctx context.Context, params *sdk.GetExpenseAnalysisInput, optFns ...func(*sdk.Options)) (*sdk.GetExpenseAnalysisOutput, error)
	AnalyzeID(ctx context.Context, params *sdk.AnalyzeIDInput, optFns ...func(*sdk.Options)) (*sdk.AnalyzeIDOutput, error)
}

var _ API = (*sdk.Client)(nil)

// Config holds explicit construction parameters. Empty fields fall back to
// the SDK's default configuration chain.
type Config struct {
	Region          string
	Endpoint        string // optional; overrides the resolved service endpoint
	AccessKeyID     string // optional (falls back to default credentials chain)
	SecretAccessKey string // optional
	SessionToken    string // optional
	MaxAttempts     int

	// HTTPClient replaces the Textract client's transport. It is set on the
	// service options, not the shared config, because the shared loader
	// rejects custom clients when AWS_CA_BUNDLE is set.
	HTTPClient aws.HTTPClient
}

// Client issues Textract calls using the generated model types.
type Client struct {
	api          API
	logger       Logger
	metrics      MetricsRecorder
	tracer       Tracer
	now          func() time.Time
	pollInterval time.Duration
}

// New builds an SDK client from cfg and wraps it.
func New(ctx context.Context, cfg Config, opts ...Option) (*Client, error) {
	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}
	loadOpts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(region)}
	if cfg.AccessKeyID != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, cfg.SessionToken),
		))
	}
	if cfg.MaxAttempts > 0 {
		loadOpts = append(loadOpts, awsconfig.WithRetryMaxAttempts(cfg.MaxAttempts))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	api := sdk.NewFromConfig(awsCfg, func(o *sdk.Options) {
		if cfg.HTTPClient != nil {
			o.HTTPClient = cfg.HTTPClient
		}
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})
	return NewFromAPI(api, opts...), nil
}

// NewFromAPI wraps an existing SDK client or fake.
func NewFromAPI(api API, opts ...Option) *Client {
	c := &Client{
		api:          api,
		logger:       noopLogger{},
		metrics:      noopMetrics{},
		tracer:       noopTracer{},
		now:          time.Now,
		pollInterval: DefaultPollInterval,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

// instrument wraps fn with a trace span, a metrics observation, and a debug
// log line.
func (c *Client) instrument(ctx context.Context, operation string, fn func(context.Context) error) error {
	ctx, span := c.tracer.Start(ctx, operation)
	started := c.now()
	err := fn(ctx)
	elapsed := c.now().Sub(started)
	c.metrics.Observe(ctx, operation, err == nil, elapsed)
	span.End(err)
	if err != nil {
		c.logger.Debug("textract call failed", "operation", operation, "duration", elapsed, "error", err)
		return err
	}
	c.logger.Debug("textract call", "operation", operation, "duration", elapsed)
	return nil
}

package client

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	sdk "github.com/aws/aws-sdk-go-v2/service/textract"
	"github.com/aws/aws-sdk-go-v2/service/textract/types"
	"github.com/aws/smithy-go"

	"textractkit/pkg/model"
	"textractkit/pkg/textract"
)

func TestAnalyzeDocumentConvertsRequest(t *testing.T) {
	api := &fakeAPI{analyzeOut: &sdk.AnalyzeDocumentOutput{}}
	c := NewFromAPI(api)

	req := new(textract.AnalyzeDocumentRequest).
		SetDocument(new(textract.Document).WithS3Object(textract.S3Object{Bucket: aws.String("docs"), Name: aws.String("form.png")})).
		WithFeatureTypes(textract.FeatureTypeForms, textract.FeatureTypeQueries).
		WithQueriesConfig(*new(textract.QueriesConfig).WithQueries(*new(textract.Query).WithText("Who signed?").WithAlias("SIGNER"))).
		WithHumanLoopConfig(*new(textract.HumanLoopConfig).
			WithHumanLoopName("review").
			WithDataAttributes(*new(textract.HumanLoopDataAttributes).WithContentClassifiers(textract.ContentClassifierFreeOfAdultContent))).
		WithAdaptersConfig(*new(textract.AdaptersConfig).WithAdapters(*new(textract.Adapter).WithAdapterId("adapter-000001").WithVersion("1")))

	if _, err := c.AnalyzeDocument(context.Background(), req); err != nil {
		t.Fatalf("AnalyzeDocument: %v", err)
	}

	in := api.analyzeIn
	if aws.ToString(in.Document.S3Object.Bucket) != "docs" || aws.ToString(in.Document.S3Object.Name) != "form.png" {
		t.Fatalf("unexpected document %+v", in.Document.S3Object)
	}
	if len(in.FeatureTypes) != 2 || in.FeatureTypes[0] != types.FeatureTypeForms || in.FeatureTypes[1] != types.FeatureTypeQueries {
		t.Fatalf("unexpected feature types %v", in.FeatureTypes)
	}
	if q := in.QueriesConfig.Queries; len(q) != 1 || aws.ToString(q[0].Text) != "Who signed?" || aws.ToString(q[0].Alias) != "SIGNER" {
		t.Fatalf("unexpected queries %+v", q)
	}
	if aws.ToString(in.HumanLoopConfig.HumanLoopName) != "review" ||
		in.HumanLoopConfig.DataAttributes.ContentClassifiers[0] != types.ContentClassifierFreeOfAdultContent {
		t.Fatalf("unexpected human loop config %+v", in.HumanLoopConfig)
	}
	if aws.ToString(in.AdaptersConfig.Adapters[0].AdapterId) != "adapter-000001" {
		t.Fatalf("unexpected adapters %+v", in.AdaptersConfig)
	}
	if in.Document.Bytes != nil {
		t.Fatal("absent bytes must stay absent")
	}
}

func TestAnalyzeDocumentConvertsResult(t *testing.T) {
	api := &fakeAPI{analyzeOut: &sdk.AnalyzeDocumentOutput{
		DocumentMetadata: &types.DocumentMetadata{Pages: aws.Int32(1)},
		Blocks: []types.Block{
			{
				BlockType:  types.BlockTypeKeyValueSet,
				Id:         aws.String("kv-1"),
				Confidence: aws.Float32(97.5),
				EntityTypes: []types.EntityType{
					types.EntityTypeKey,
				},
				Relationships: []types.Relationship{{Type: types.RelationshipTypeValue, Ids: []string{"kv-2"}}},
				Geometry: &types.Geometry{
					BoundingBox: &types.BoundingBox{Width: 0.5, Height: 0.25, Left: 0.1, Top: 0.2},
					Polygon:     []types.Point{{X: 0.1, Y: 0.2}},
				},
			},
			{BlockType: types.BlockTypeSelectionElement, SelectionStatus: types.SelectionStatusSelected, Page: aws.Int32(1)},
		},
		HumanLoopActivationOutput:   &types.HumanLoopActivationOutput{HumanLoopArn: aws.String("arn:loop")},
		AnalyzeDocumentModelVersion: aws.String("1.0"),
	}}
	c := NewFromAPI(api)

	res, err := c.AnalyzeDocument(context.Background(), nil)
	if err != nil {
		t.Fatalf("AnalyzeDocument: %v", err)
	}
	if res.GetDocumentMetadata().GetPages() != 1 || res.GetAnalyzeDocumentModelVersion() != "1.0" {
		t.Fatalf("unexpected result %v", res)
	}
	blocks := res.GetBlocks()
	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(blocks))
	}
	kv := blocks[0]
	if kv.GetBlockType() != textract.BlockTypeKeyValueSet || kv.GetConfidence() != 97.5 || kv.GetId() != "kv-1" {
		t.Fatalf("unexpected block %v", &kv)
	}
	if kv.GetEntityTypes()[0] != textract.EntityTypeKey {
		t.Fatalf("unexpected entity types %v", kv.GetEntityTypes())
	}
	if rel := kv.GetRelationships()[0]; rel.GetType() != textract.RelationshipTypeValue || rel.GetIds()[0] != "kv-2" {
		t.Fatalf("unexpected relationship %v", &rel)
	}
	if box := kv.GetGeometry().GetBoundingBox(); box.GetWidth() != 0.5 || box.GetTop() != 0.2 {
		t.Fatalf("unexpected bounding box %v", box)
	}
	if kv.GetTextType() != "" || kv.TextType != nil {
		t.Fatal("empty SDK enum must convert to an absent field")
	}
	if blocks[1].GetSelectionStatus() != textract.SelectionStatusSelected {
		t.Fatalf("unexpected selection status %q", blocks[1].GetSelectionStatus())
	}
	if res.GetHumanLoopActivationOutput().GetHumanLoopArn() != "arn:loop" {
		t.Fatal("human loop output not converted")
	}
}

func TestUnknownEnumFailsCall(t *testing.T) {
	api := &fakeAPI{detectOut: &sdk.DetectDocumentTextOutput{
		Blocks: []types.Block{{BlockType: types.BlockTypeLine}, {BlockType: types.BlockType("PARAGRAPH")}},
	}}
	c := NewFromAPI(api)

	res, err := c.DetectDocumentText(context.Background(), new(textract.DetectDocumentTextRequest).
		SetDocument(new(textract.Document).WithBytes([]byte("img"))))
	if !errors.Is(err, model.ErrInvalidEnumValue) {
		t.Fatalf("expected invalid enum error, got %v", err)
	}
	if res != nil {
		t.Fatal("no partial result may be returned")
	}
	if !strings.Contains(err.Error(), "textract DetectDocumentText") {
		t.Fatalf("error must name the operation: %v", err)
	}
	if string(api.detectIn.Document.Bytes) != "img" {
		t.Fatal("document bytes must reach the SDK input")
	}
}

func TestServiceErrorsAreTyped(t *testing.T) {
	cases := []struct {
		name  string
		err   error
		check func(error) bool
	}{
		{
			name: "badDocument",
			err:  &types.BadDocumentException{Message: aws.String("unreadable")},
			check: func(err error) bool {
				var target *textract.BadDocumentException
				return errors.As(err, &target) && target.ErrorMessage() == "unreadable"
			},
		},
		{
			name: "throttling",
			err:  &types.ThrottlingException{Message: aws.String("slow down")},
			check: func(err error) bool {
				var target *textract.ThrottlingException
				return errors.As(err, &target) && target.ErrorFault() == smithy.FaultServer && textract.IsRetryable(err)
			},
		},
		{
			name: "unknownCode",
			err:  &smithy.GenericAPIError{Code: "SomethingNew", Message: "?"},
			check: func(err error) bool {
				var target *smithy.GenericAPIError
				return errors.As(err, &target) && target.ErrorCode() == "SomethingNew"
			},
		},
		{
			name: "transport",
			err:  context.DeadlineExceeded,
			check: func(err error) bool {
				return errors.Is(err, context.DeadlineExceeded)
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := NewFromAPI(&fakeAPI{err: tc.err})
			res, err := c.AnalyzeExpense(context.Background(), &textract.AnalyzeExpenseRequest{})
			if res != nil {
				t.Fatal("expected nil result on error")
			}
			if err == nil || !tc.check(err) {
				t.Fatalf("unexpected error %v", err)
			}
			if !strings.HasPrefix(err.Error(), "textract AnalyzeExpense: ") {
				t.Fatalf("error must carry the operation: %v", err)
			}
		})
	}
}

func TestInstrumentation(t *testing.T) {
	metrics := &captureMetrics{}
	tracer := &captureTracer{}
	logger := &captureLogger{}
	tick := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	clock := func() time.Time {
		tick = tick.Add(time.Second)
		return tick
	}

	api := &fakeAPI{detectOut: &sdk.DetectDocumentTextOutput{}}
	c := NewFromAPI(api, WithMetrics(metrics), WithTracer(tracer), WithLogger(logger), WithClock(clock))
	if _, err := c.DetectDocumentText(context.Background(), nil); err != nil {
		t.Fatalf("DetectDocumentText: %v", err)
	}
	api.err = &types.AccessDeniedException{}
	if _, err := c.DetectDocumentText(context.Background(), nil); err == nil {
		t.Fatal("expected error")
	}

	if len(metrics.calls) != 2 || !metrics.calls[0].success || metrics.calls[1].success {
		t.Fatalf("unexpected metrics %+v", metrics.calls)
	}
	if metrics.calls[0].op != "DetectDocumentText" {
		t.Fatalf("unexpected operation %q", metrics.calls[0].op)
	}
	if len(tracer.ended) != 2 || tracer.ended[0].err != nil || tracer.ended[1].err == nil {
		t.Fatalf("unexpected spans %+v", tracer.ended)
	}
	if len(logger.messages) != 2 || logger.messages[1] != "textract call failed" {
		t.Fatalf("unexpected log lines %v", logger.messages)
	}
}

func TestStartOperationsPassFields(t *testing.T) {
	api := &fakeAPI{startedJobID: "job-123"}
	c := NewFromAPI(api)
	location := textract.DocumentLocation{S3Object: new(textract.S3Object).WithBucket("docs").WithName("scan.pdf")}

	res, err := c.StartDocumentTextDetection(context.Background(), new(textract.StartDocumentTextDetectionRequest).
		WithDocumentLocation(location).
		WithClientRequestToken("token-1").
		WithJobTag("nightly").
		WithKMSKeyId("kms-1").
		WithNotificationChannel(textract.NotificationChannel{SNSTopicArn: aws.String("arn:topic"), RoleArn: aws.String("arn:role")}).
		WithOutputConfig(textract.OutputConfig{S3Bucket: aws.String("out")}))
	if err != nil {
		t.Fatalf("StartDocumentTextDetection: %v", err)
	}
	if res.GetJobId() != "job-123" {
		t.Fatalf("unexpected job id %q", res.GetJobId())
	}
	in := api.startTextIn
	if aws.ToString(in.ClientRequestToken) != "token-1" || aws.ToString(in.JobTag) != "nightly" || aws.ToString(in.KMSKeyId) != "kms-1" {
		t.Fatalf("unexpected input %+v", in)
	}
	if aws.ToString(in.NotificationChannel.SNSTopicArn) != "arn:topic" || aws.ToString(in.OutputConfig.S3Bucket) != "out" {
		t.Fatalf("unexpected notification/output %+v %+v", in.NotificationChannel, in.OutputConfig)
	}
	if aws.ToString(in.DocumentLocation.S3Object.Name) != "scan.pdf" {
		t.Fatalf("unexpected location %+v", in.DocumentLocation)
	}

	if _, err := c.StartDocumentAnalysis(context.Background(), new(textract.StartDocumentAnalysisRequest).
		WithDocumentLocation(location).
		WithFeatureTypes(textract.FeatureTypeTables)); err != nil {
		t.Fatalf("StartDocumentAnalysis: %v", err)
	}
	if api.startAnaIn.FeatureTypes[0] != types.FeatureTypeTables {
		t.Fatalf("unexpected feature types %v", api.startAnaIn.FeatureTypes)
	}

	if _, err := c.StartExpenseAnalysis(context.Background(), new(textract.StartExpenseAnalysisRequest).WithDocumentLocation(location)); err != nil {
		t.Fatalf("StartExpenseAnalysis: %v", err)
	}
	if aws.ToString(api.startExpIn.DocumentLocation.S3Object.Bucket) != "docs" {
		t.Fatalf("unexpected expense input %+v", api.startExpIn)
	}
}

func TestAnalyzeExpenseConvertsResult(t *testing.T) {
	api := &fakeAPI{expenseOut: &sdk.AnalyzeExpenseOutput{
		DocumentMetadata: &types.DocumentMetadata{Pages: aws.Int32(1)},
		ExpenseDocuments: []types.ExpenseDocument{{
			ExpenseIndex: aws.Int32(1),
			SummaryFields: []types.ExpenseField{{
				Type:           &types.ExpenseType{Text: aws.String("TOTAL"), Confidence: aws.Float32(99)},
				ValueDetection: &types.ExpenseDetection{Text: aws.String("12.50")},
				Currency:       &types.ExpenseCurrency{Code: aws.String("USD")},
			}},
			LineItemGroups: []types.LineItemGroup{{
				LineItemGroupIndex: aws.Int32(1),
				LineItems: []types.LineItemFields{{
					LineItemExpenseFields: []types.ExpenseField{{Type: &types.ExpenseType{Text: aws.String("ITEM")}}},
				}},
			}},
		}},
	}}
	res, err := NewFromAPI(api).AnalyzeExpense(context.Background(), nil)
	if err != nil {
		t.Fatalf("AnalyzeExpense: %v", err)
	}
	doc := res.GetExpenseDocuments()[0]
	total := doc.GetSummaryFields()[0]
	if total.GetType().GetText() != "TOTAL" || total.GetValueDetection().GetText() != "12.50" || total.GetCurrency().GetCode() != "USD" {
		t.Fatalf("unexpected summary field %v", &total)
	}
	item := doc.GetLineItemGroups()[0].GetLineItems()[0].GetLineItemExpenseFields()[0]
	if item.GetType().GetText() != "ITEM" {
		t.Fatalf("unexpected line item %v", &item)
	}
	if doc.GetBlocks() != nil {
		t.Fatal("absent blocks must stay absent")
	}
}

func TestAnalyzeIDConvertsPagesAndValues(t *testing.T) {
	api := &fakeAPI{idOut: &sdk.AnalyzeIDOutput{
		IdentityDocuments: []types.IdentityDocument{{
			DocumentIndex: aws.Int32(1),
			IdentityDocumentFields: []types.IdentityDocumentField{{
				Type: &types.AnalyzeIDDetections{Text: aws.String("DATE_OF_BIRTH")},
				ValueDetection: &types.AnalyzeIDDetections{
					Text:            aws.String("1 JAN 1990"),
					NormalizedValue: &types.NormalizedValue{Value: aws.String("1990-01-01T00:00:00"), ValueType: types.ValueTypeDate},
				},
			}},
		}},
		AnalyzeIDModelVersion: aws.String("1.0"),
	}}
	req := new(textract.AnalyzeIDRequest).WithDocumentPages(
		*new(textract.Document).WithS3Object(textract.S3Object{Bucket: aws.String("ids"), Name: aws.String("front.jpg")}),
		*new(textract.Document).WithS3Object(textract.S3Object{Bucket: aws.String("ids"), Name: aws.String("back.jpg")}),
	)
	res, err := NewFromAPI(api).AnalyzeID(context.Background(), req)
	if err != nil {
		t.Fatalf("AnalyzeID: %v", err)
	}
	if len(api.idIn.DocumentPages) != 2 || aws.ToString(api.idIn.DocumentPages[1].S3Object.Name) != "back.jpg" {
		t.Fatalf("unexpected pages %+v", api.idIn.DocumentPages)
	}
	field := res.GetIdentityDocuments()[0].GetIdentityDocumentFields()[0]
	if field.GetValueDetection().GetNormalizedValue().GetValueType() != textract.ValueTypeDate {
		t.Fatalf("unexpected field %v", &field)
	}

	api.idOut.IdentityDocuments[0].IdentityDocumentFields[0].ValueDetection.NormalizedValue.ValueType = "TIME"
	if _, err := NewFromAPI(api).AnalyzeID(context.Background(), req); !errors.Is(err, model.ErrInvalidEnumValue) {
		t.Fatalf("expected invalid enum error, got %v", err)
	}
}

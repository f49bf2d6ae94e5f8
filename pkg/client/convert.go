package client

import (
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	sdk "github.com/aws/aws-sdk-go-v2/service/textract"
	"github.com/aws/aws-sdk-go-v2/service/textract/types"

	"textractkit/pkg/textract"
)

// Outbound conversions read model fields in declaration order. Inbound
// conversions parse every enum strictly and abort on the first unknown value.

func mapList[S, D any](in []S, fn func(S) D) []D {
	if in == nil {
		return nil
	}
	out := make([]D, len(in))
	for i, v := range in {
		out[i] = fn(v)
	}
	return out
}

func mapListErr[S, D any](in []S, fn func(S) (D, error)) ([]D, error) {
	if in == nil {
		return nil, nil
	}
	out := make([]D, len(in))
	for i, v := range in {
		d, err := fn(v)
		if err != nil {
			return nil, err
		}
		out[i] = d
	}
	return out, nil
}

func enumListOut[D ~string, S ~string](in []S) []D {
	return mapList(in, func(v S) D { return D(v) })
}

// enumIn parses a wire value; the SDK's empty value means absent.
func enumIn[D ~string, S ~string](v S, parse func(string) (D, error)) (*D, error) {
	if v == "" {
		return nil, nil
	}
	d, err := parse(string(v))
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func enumListIn[D ~string, S ~string](in []S, parse func(string) (D, error)) ([]D, error) {
	return mapListErr(in, func(v S) (D, error) { return parse(string(v)) })
}

func s3ObjectOut(v *textract.S3Object) *types.S3Object {
	if v == nil {
		return nil
	}
	return &types.S3Object{Bucket: v.Bucket, Name: v.Name, Version: v.Version}
}

func documentOut(v *textract.Document) *types.Document {
	if v == nil {
		return nil
	}
	return &types.Document{Bytes: v.Bytes, S3Object: s3ObjectOut(v.S3Object)}
}

func documentLocationOut(v *textract.DocumentLocation) *types.DocumentLocation {
	if v == nil {
		return nil
	}
	return &types.DocumentLocation{S3Object: s3ObjectOut(v.S3Object)}
}

func queryOut(v textract.Query) types.Query {
	return types.Query{Text: v.Text, Alias: v.Alias, Pages: v.Pages}
}

func queriesConfigOut(v *textract.QueriesConfig) *types.QueriesConfig {
	if v == nil {
		return nil
	}
	return &types.QueriesConfig{Queries: mapList(v.Queries, queryOut)}
}

func adaptersConfigOut(v *textract.AdaptersConfig) *types.AdaptersConfig {
	if v == nil {
		return nil
	}
	return &types.AdaptersConfig{Adapters: mapList(v.Adapters, func(a textract.Adapter) types.Adapter {
		return types.Adapter{AdapterId: a.AdapterId, Pages: a.Pages, Version: a.Version}
	})}
}

func humanLoopConfigOut(v *textract.HumanLoopConfig) *types.HumanLoopConfig {
	if v == nil {
		return nil
	}
	out := &types.HumanLoopConfig{HumanLoopName: v.HumanLoopName, FlowDefinitionArn: v.FlowDefinitionArn}
	if v.DataAttributes != nil {
		out.DataAttributes = &types.HumanLoopDataAttributes{
			ContentClassifiers: enumListOut[types.ContentClassifier](v.DataAttributes.ContentClassifiers),
		}
	}
	return out
}

func notificationChannelOut(v *textract.NotificationChannel) *types.NotificationChannel {
	if v == nil {
		return nil
	}
	return &types.NotificationChannel{SNSTopicArn: v.SNSTopicArn, RoleArn: v.RoleArn}
}

func outputConfigOut(v *textract.OutputConfig) *types.OutputConfig {
	if v == nil {
		return nil
	}
	return &types.OutputConfig{S3Bucket: v.S3Bucket, S3Prefix: v.S3Prefix}
}

func analyzeDocumentInput(req *textract.AnalyzeDocumentRequest) *sdk.AnalyzeDocumentInput {
	if req == nil {
		req = new(textract.AnalyzeDocumentRequest)
	}
	return &sdk.AnalyzeDocumentInput{
		Document:        documentOut(req.Document),
		FeatureTypes:    enumListOut[types.FeatureType](req.FeatureTypes),
		HumanLoopConfig: humanLoopConfigOut(req.HumanLoopConfig),
		QueriesConfig:   queriesConfigOut(req.QueriesConfig),
		AdaptersConfig:  adaptersConfigOut(req.AdaptersConfig),
	}
}

func detectDocumentTextInput(req *textract.DetectDocumentTextRequest) *sdk.DetectDocumentTextInput {
	if req == nil {
		req = new(textract.DetectDocumentTextRequest)
	}
	return &sdk.DetectDocumentTextInput{Document: documentOut(req.Document)}
}

func startDocumentAnalysisInput(req *textract.StartDocumentAnalysisRequest) *sdk.StartDocumentAnalysisInput {
	if req == nil {
		req = new(textract.StartDocumentAnalysisRequest)
	}
	return &sdk.StartDocumentAnalysisInput{
		DocumentLocation:    documentLocationOut(req.DocumentLocation),
		FeatureTypes:        enumListOut[types.FeatureType](req.FeatureTypes),
		ClientRequestToken:  req.ClientRequestToken,
		JobTag:              req.JobTag,
		NotificationChannel: notificationChannelOut(req.NotificationChannel),
		OutputConfig:        outputConfigOut(req.OutputConfig),
		KMSKeyId:            req.KMSKeyId,
		QueriesConfig:       queriesConfigOut(req.QueriesConfig),
		AdaptersConfig:      adaptersConfigOut(req.AdaptersConfig),
	}
}

func getDocumentAnalysisInput(req *textract.GetDocumentAnalysisRequest) *sdk.GetDocumentAnalysisInput {
	if req == nil {
		req = new(textract.GetDocumentAnalysisRequest)
	}
	return &sdk.GetDocumentAnalysisInput{JobId: req.JobId, MaxResults: req.MaxResults, NextToken: req.NextToken}
}

func startDocumentTextDetectionInput(req *textract.StartDocumentTextDetectionRequest) *sdk.StartDocumentTextDetectionInput {
	if req == nil {
		req = new(textract.StartDocumentTextDetectionRequest)
	}
	return &sdk.StartDocumentTextDetectionInput{
		DocumentLocation:    documentLocationOut(req.DocumentLocation),
		ClientRequestToken:  req.ClientRequestToken,
		JobTag:              req.JobTag,
		NotificationChannel: notificationChannelOut(req.NotificationChannel),
		OutputConfig:        outputConfigOut(req.OutputConfig),
		KMSKeyId:            req.KMSKeyId,
	}
}

func getDocumentTextDetectionInput(req *textract.GetDocumentTextDetectionRequest) *sdk.GetDocumentTextDetectionInput {
	if req == nil {
		req = new(textract.GetDocumentTextDetectionRequest)
	}
	return &sdk.GetDocumentTextDetectionInput{JobId: req.JobId, MaxResults: req.MaxResults, NextToken: req.NextToken}
}

func analyzeExpenseInput(req *textract.AnalyzeExpenseRequest) *sdk.AnalyzeExpenseInput {
	if req == nil {
		req = new(textract.AnalyzeExpenseRequest)
	}
	return &sdk.AnalyzeExpenseInput{Document: documentOut(req.Document)}
}

func startExpenseAnalysisInput(req *textract.StartExpenseAnalysisRequest) *sdk.StartExpenseAnalysisInput {
	if req == nil {
		req = new(textract.StartExpenseAnalysisRequest)
	}
	return &sdk.StartExpenseAnalysisInput{
		DocumentLocation:    documentLocationOut(req.DocumentLocation),
		ClientRequestToken:  req.ClientRequestToken,
		JobTag:              req.JobTag,
		NotificationChannel: notificationChannelOut(req.NotificationChannel),
		OutputConfig:        outputConfigOut(req.OutputConfig),
		KMSKeyId:            req.KMSKeyId,
	}
}

func getExpenseAnalysisInput(req *textract.GetExpenseAnalysisRequest) *sdk.GetExpenseAnalysisInput {
	if req == nil {
		req = new(textract.GetExpenseAnalysisRequest)
	}
	return &sdk.GetExpenseAnalysisInput{JobId: req.JobId, MaxResults: req.MaxResults, NextToken: req.NextToken}
}

func analyzeIDInput(req *textract.AnalyzeIDRequest) *sdk.AnalyzeIDInput {
	if req == nil {
		req = new(textract.AnalyzeIDRequest)
	}
	return &sdk.AnalyzeIDInput{DocumentPages: mapList(req.DocumentPages, func(d textract.Document) types.Document {
		return *documentOut(&d)
	})}
}

func pointIn(v types.Point) textract.Point {
	return textract.Point{X: aws.Float32(v.X), Y: aws.Float32(v.Y)}
}

func geometryIn(v *types.Geometry) *textract.Geometry {
	if v == nil {
		return nil
	}
	out := &textract.Geometry{Polygon: mapList(v.Polygon, pointIn)}
	if b := v.BoundingBox; b != nil {
		out.BoundingBox = &textract.BoundingBox{
			Width:  aws.Float32(b.Width),
			Height: aws.Float32(b.Height),
			Left:   aws.Float32(b.Left),
			Top:    aws.Float32(b.Top),
		}
	}
	return out
}

func relationshipIn(v types.Relationship) (textract.Relationship, error) {
	kind, err := enumIn(v.Type, textract.ParseRelationshipType)
	if err != nil {
		return textract.Relationship{}, err
	}
	return textract.Relationship{Type: kind, Ids: v.Ids}, nil
}

func queryIn(v *types.Query) *textract.Query {
	if v == nil {
		return nil
	}
	return &textract.Query{Text: v.Text, Alias: v.Alias, Pages: v.Pages}
}

func blockIn(v types.Block) (textract.Block, error) {
	blockType, err := enumIn(v.BlockType, textract.ParseBlockType)
	if err != nil {
		return textract.Block{}, err
	}
	textType, err := enumIn(v.TextType, textract.ParseTextType)
	if err != nil {
		return textract.Block{}, err
	}
	relationships, err := mapListErr(v.Relationships, relationshipIn)
	if err != nil {
		return textract.Block{}, err
	}
	entityTypes, err := enumListIn(v.EntityTypes, textract.ParseEntityType)
	if err != nil {
		return textract.Block{}, err
	}
	selection, err := enumIn(v.SelectionStatus, textract.ParseSelectionStatus)
	if err != nil {
		return textract.Block{}, err
	}
	return textract.Block{
		BlockType:       blockType,
		Confidence:      v.Confidence,
		Text:            v.Text,
		TextType:        textType,
		RowIndex:        v.RowIndex,
		ColumnIndex:     v.ColumnIndex,
		RowSpan:         v.RowSpan,
		ColumnSpan:      v.ColumnSpan,
		Geometry:        geometryIn(v.Geometry),
		Id:              v.Id,
		Relationships:   relationships,
		EntityTypes:     entityTypes,
		SelectionStatus: selection,
		Page:            v.Page,
		Query:           queryIn(v.Query),
	}, nil
}

func blocksIn(in []types.Block) ([]textract.Block, error) {
	return mapListErr(in, blockIn)
}

func documentMetadataIn(v *types.DocumentMetadata) *textract.DocumentMetadata {
	if v == nil {
		return nil
	}
	return &textract.DocumentMetadata{Pages: v.Pages}
}

func humanLoopActivationOutputIn(v *types.HumanLoopActivationOutput) *textract.HumanLoopActivationOutput {
	if v == nil {
		return nil
	}
	return &textract.HumanLoopActivationOutput{
		HumanLoopArn:               v.HumanLoopArn,
		HumanLoopActivationReasons: v.HumanLoopActivationReasons,
		HumanLoopActivationConditionsEvaluationResults: v.HumanLoopActivationConditionsEvaluationResults,
	}
}

func warningIn(v types.Warning) textract.Warning {
	return textract.Warning{ErrorCode: v.ErrorCode, Pages: v.Pages}
}

func expenseDetectionIn(v *types.ExpenseDetection) *textract.ExpenseDetection {
	if v == nil {
		return nil
	}
	return &textract.ExpenseDetection{Text: v.Text, Geometry: geometryIn(v.Geometry), Confidence: v.Confidence}
}

func expenseFieldIn(v types.ExpenseField) textract.ExpenseField {
	out := textract.ExpenseField{
		LabelDetection: expenseDetectionIn(v.LabelDetection),
		ValueDetection: expenseDetectionIn(v.ValueDetection),
		PageNumber:     v.PageNumber,
		GroupProperties: mapList(v.GroupProperties, func(g types.ExpenseGroupProperty) textract.ExpenseGroupProperty {
			return textract.ExpenseGroupProperty{Types: g.Types, Id: g.Id}
		}),
	}
	if v.Type != nil {
		out.Type = &textract.ExpenseType{Text: v.Type.Text, Confidence: v.Type.Confidence}
	}
	if v.Currency != nil {
		out.Currency = &textract.ExpenseCurrency{Code: v.Currency.Code, Confidence: v.Currency.Confidence}
	}
	return out
}

func expenseDocumentIn(v types.ExpenseDocument) (textract.ExpenseDocument, error) {
	blocks, err := blocksIn(v.Blocks)
	if err != nil {
		return textract.ExpenseDocument{}, err
	}
	return textract.ExpenseDocument{
		ExpenseIndex:  v.ExpenseIndex,
		SummaryFields: mapList(v.SummaryFields, expenseFieldIn),
		LineItemGroups: mapList(v.LineItemGroups, func(g types.LineItemGroup) textract.LineItemGroup {
			return textract.LineItemGroup{
				LineItemGroupIndex: g.LineItemGroupIndex,
				LineItems: mapList(g.LineItems, func(item types.LineItemFields) textract.LineItemFields {
					return textract.LineItemFields{LineItemExpenseFields: mapList(item.LineItemExpenseFields, expenseFieldIn)}
				}),
			}
		}),
		Blocks: blocks,
	}, nil
}

func analyzeIDDetectionsIn(v *types.AnalyzeIDDetections) (*textract.AnalyzeIDDetections, error) {
	if v == nil {
		return nil, nil
	}
	out := &textract.AnalyzeIDDetections{Text: v.Text, Confidence: v.Confidence}
	if n := v.NormalizedValue; n != nil {
		valueType, err := enumIn(n.ValueType, textract.ParseValueType)
		if err != nil {
			return nil, err
		}
		out.NormalizedValue = &textract.NormalizedValue{Value: n.Value, ValueType: valueType}
	}
	return out, nil
}

func identityDocumentIn(v types.IdentityDocument) (textract.IdentityDocument, error) {
	fields, err := mapListErr(v.IdentityDocumentFields, func(f types.IdentityDocumentField) (textract.IdentityDocumentField, error) {
		kind, err := analyzeIDDetectionsIn(f.Type)
		if err != nil {
			return textract.IdentityDocumentField{}, err
		}
		value, err := analyzeIDDetectionsIn(f.ValueDetection)
		if err != nil {
			return textract.IdentityDocumentField{}, err
		}
		return textract.IdentityDocumentField{Type: kind, ValueDetection: value}, nil
	})
	if err != nil {
		return textract.IdentityDocument{}, err
	}
	blocks, err := blocksIn(v.Blocks)
	if err != nil {
		return textract.IdentityDocument{}, err
	}
	return textract.IdentityDocument{DocumentIndex: v.DocumentIndex, IdentityDocumentFields: fields, Blocks: blocks}, nil
}

func analyzeDocumentResult(out *sdk.AnalyzeDocumentOutput) (*textract.AnalyzeDocumentResult, error) {
	blocks, err := blocksIn(out.Blocks)
	if err != nil {
		return nil, err
	}
	return &textract.AnalyzeDocumentResult{
		DocumentMetadata:            documentMetadataIn(out.DocumentMetadata),
		Blocks:                      blocks,
		HumanLoopActivationOutput:   humanLoopActivationOutputIn(out.HumanLoopActivationOutput),
		AnalyzeDocumentModelVersion: out.AnalyzeDocumentModelVersion,
	}, nil
}

func detectDocumentTextResult(out *sdk.DetectDocumentTextOutput) (*textract.DetectDocumentTextResult, error) {
	blocks, err := blocksIn(out.Blocks)
	if err != nil {
		return nil, err
	}
	return &textract.DetectDocumentTextResult{
		DocumentMetadata:               documentMetadataIn(out.DocumentMetadata),
		Blocks:                         blocks,
		DetectDocumentTextModelVersion: out.DetectDocumentTextModelVersion,
	}, nil
}

func getDocumentAnalysisResult(out *sdk.GetDocumentAnalysisOutput) (*textract.GetDocumentAnalysisResult, error) {
	status, err := enumIn(out.JobStatus, textract.ParseJobStatus)
	if err != nil {
		return nil, err
	}
	blocks, err := blocksIn(out.Blocks)
	if err != nil {
		return nil, err
	}
	return &textract.GetDocumentAnalysisResult{
		DocumentMetadata:            documentMetadataIn(out.DocumentMetadata),
		JobStatus:                   status,
		NextToken:                   out.NextToken,
		Blocks:                      blocks,
		Warnings:                    mapList(out.Warnings, warningIn),
		StatusMessage:               out.StatusMessage,
		AnalyzeDocumentModelVersion: out.AnalyzeDocumentModelVersion,
	}, nil
}

func getDocumentTextDetectionResult(out *sdk.GetDocumentTextDetectionOutput) (*textract.GetDocumentTextDetectionResult, error) {
	status, err := enumIn(out.JobStatus, textract.ParseJobStatus)
	if err != nil {
		return nil, err
	}
	blocks, err := blocksIn(out.Blocks)
	if err != nil {
		return nil, err
	}
	return &textract.GetDocumentTextDetectionResult{
		DocumentMetadata:               documentMetadataIn(out.DocumentMetadata),
		JobStatus:                      status,
		NextToken:                      out.NextToken,
		Blocks:                         blocks,
		Warnings:                       mapList(out.Warnings, warningIn),
		StatusMessage:                  out.StatusMessage,
		DetectDocumentTextModelVersion: out.DetectDocumentTextModelVersion,
	}, nil
}

func analyzeExpenseResult(out *sdk.AnalyzeExpenseOutput) (*textract.AnalyzeExpenseResult, error) {
	docs, err := mapListErr(out.ExpenseDocuments, expenseDocumentIn)
	if err != nil {
		return nil, err
	}
	return &textract.AnalyzeExpenseResult{DocumentMetadata: documentMetadataIn(out.DocumentMetadata), ExpenseDocuments: docs}, nil
}

func getExpenseAnalysisResult(out *sdk.GetExpenseAnalysisOutput) (*textract.GetExpenseAnalysisResult, error) {
	status, err := enumIn(out.JobStatus, textract.ParseJobStatus)
	if err != nil {
		return nil, err
	}
	docs, err := mapListErr(out.ExpenseDocuments, expenseDocumentIn)
	if err != nil {
		return nil, err
	}
	return &textract.GetExpenseAnalysisResult{
		DocumentMetadata:           documentMetadataIn(out.DocumentMetadata),
		JobStatus:                  status,
		NextToken:                  out.NextToken,
		ExpenseDocuments:           docs,
		Warnings:                   mapList(out.Warnings, warningIn),
		StatusMessage:              out.StatusMessage,
		AnalyzeExpenseModelVersion: out.AnalyzeExpenseModelVersion,
	}, nil
}

func analyzeIDResult(out *sdk.AnalyzeIDOutput) (*textract.AnalyzeIDResult, error) {
	docs, err := mapListErr(out.IdentityDocuments, identityDocumentIn)
	if err != nil {
		return nil, err
	}
	return &textract.AnalyzeIDResult{
		IdentityDocuments:     docs,
		DocumentMetadata:      documentMetadataIn(out.DocumentMetadata),
		AnalyzeIDModelVersion: out.AnalyzeIDModelVersion,
	}, nil
}

func conversionError(operation string, err error) error {
	return fmt.Errorf("textract %s: convert output: %w", operation, err)
}

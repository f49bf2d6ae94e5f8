// Package textract defines the Amazon Textract request, result, and value
// objects, the closed enumerations the service uses, and one error type per
// service error code.
//
// Every type in model_gen.go is generated from docs/schema/textract-model.json.
// Value objects are plain structs with optional pointer and slice fields;
// fluent Set/With accessors return the receiver so calls can be chained:
//
//	req := new(textract.AnalyzeDocumentRequest).
//		SetDocument(new(textract.Document).WithS3Object(textract.S3Object{Bucket: aws.String("docs"), Name: aws.String("scan.png")})).
//		WithFeatureTypes(textract.FeatureTypeTables, textract.FeatureTypeForms)
//
// No value object validates its documented constraints; the service does.
package textract

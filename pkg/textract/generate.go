package textract

//go:generate go run ../../internal/tools/modelgen -schema ../../docs/schema/textract-model.json -out model_gen.go

package cli

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"textractkit/internal/staging"
	"textractkit/pkg/textract"
)

const s3Scheme = "s3://"

// parseS3URI splits s3://bucket/key.
func parseS3URI(uri string) (*textract.S3Object, bool, error) {
	rest, ok := strings.CutPrefix(uri, s3Scheme)
	if !ok {
		return nil, false, nil
	}
	bucket, key, _ := strings.Cut(rest, "/")
	if bucket == "" || key == "" {
		return nil, true, fmt.Errorf("malformed s3 uri %q: want s3://bucket/key", uri)
	}
	return new(textract.S3Object).WithBucket(bucket).WithName(key), true, nil
}

// documentArg reads arg as an S3 reference or a local file sent inline.
func documentArg(arg string) (*textract.Document, error) {
	obj, isS3, err := parseS3URI(arg)
	if err != nil {
		return nil, err
	}
	if isS3 {
		return new(textract.Document).SetS3Object(obj), nil
	}
	data, err := os.ReadFile(arg)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	return new(textract.Document).WithBytes(data), nil
}

// locationArg resolves arg to an S3 location, staging local files first.
func (a *app) locationArg(ctx context.Context, arg string) (*textract.DocumentLocation, error) {
	obj, isS3, err := parseS3URI(arg)
	if err != nil {
		return nil, err
	}
	if isS3 {
		return new(textract.DocumentLocation).SetS3Object(obj), nil
	}
	info, err := a.stageFile(ctx, arg)
	if err != nil {
		return nil, err
	}
	return info.DocumentLocation(), nil
}

func (a *app) stageFile(ctx context.Context, path string) (staging.Info, error) {
	st, err := a.documentStager(ctx)
	if err != nil {
		return staging.Info{}, err
	}
	f, err := os.Open(path)
	if err != nil {
		return staging.Info{}, fmt.Errorf("open document: %w", err)
	}
	defer func() { _ = f.Close() }()
	key := staging.Key(a.cfg.Staging.Prefix, path)
	info, err := st.Put(ctx, key, f, staging.PutOptions{ContentType: mime.TypeByExtension(filepath.Ext(path))})
	if err != nil {
		return staging.Info{}, err
	}
	a.logger.Debug("staged document", "bucket", info.Bucket, "key", info.Key, "size", info.Size)
	return info, nil
}

func parseFeatures(values []string) ([]textract.FeatureType, error) {
	var out []textract.FeatureType
	for _, v := range values {
		f, err := textract.ParseFeatureType(strings.ToUpper(strings.TrimSpace(v)))
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, nil
}

// parseQueries turns "text" or "text|ALIAS" flags into queries.
func parseQueries(values []string) []textract.Query {
	var out []textract.Query
	for _, v := range values {
		text, alias, hasAlias := strings.Cut(v, "|")
		q := new(textract.Query).WithText(strings.TrimSpace(text))
		if hasAlias && alias != "" {
			q.WithAlias(strings.TrimSpace(alias))
		}
		out = append(out, *q)
	}
	return out
}

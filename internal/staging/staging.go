// Package staging uploads local documents to S3 so asynchronous Textract
// jobs can read them, and turns stored objects into model document
// references.
package staging

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"textractkit/pkg/textract"
)

// Driver identifies a staging backend.
type Driver string

const (
	// DriverS3 stores documents in an S3 (or S3-compatible) bucket.
	DriverS3 Driver = "s3"
	// DriverMemory keeps documents in process memory (tests, dry runs).
	DriverMemory Driver = "memory"
)

var (
	// ErrUnsupported is returned when a backend lacks an optional capability.
	ErrUnsupported = errors.New("staging: unsupported operation")
	// ErrExists is returned when a key is already staged.
	ErrExists = errors.New("staging: object already exists")
	// ErrNotFound is returned for keys that were never staged.
	ErrNotFound = errors.New("staging: object not found")
)

// PutOptions carries optional object attributes.
type PutOptions struct {
	ContentType string
	Metadata    map[string]string
}

// Info describes a staged object.
type Info struct {
	Bucket       string            `json:"bucket"`
	Key          string            `json:"key"`
	VersionID    string            `json:"version_id,omitempty"`
	Size         int64             `json:"size_bytes"`
	ContentType  string            `json:"content_type,omitempty"`
	ETag         string            `json:"etag,omitempty"`
	Metadata     map[string]string `json:"metadata,omitempty"`
	LastModified time.Time         `json:"last_modified"`
}

// Stager is implemented by every staging backend. Put is create-only.
type Stager interface {
	Put(ctx context.Context, key string, r io.Reader, opts PutOptions) (Info, error)
	Head(ctx context.Context, key string) (Info, error)
	Delete(ctx context.Context, key string) error
	List(ctx context.Context, prefix string) ([]Info, error)
	PresignURL(ctx context.Context, key string, expiry time.Duration) (string, error)
	Bucket() string
	Driver() Driver
}

// S3Object returns the model reference for a staged object.
func (i Info) S3Object() *textract.S3Object {
	obj := new(textract.S3Object).WithBucket(i.Bucket).WithName(i.Key)
	if i.VersionID != "" {
		obj.WithVersion(i.VersionID)
	}
	return obj
}

// DocumentLocation wraps S3Object for the asynchronous Start operations.
func (i Info) DocumentLocation() *textract.DocumentLocation {
	return new(textract.DocumentLocation).SetS3Object(i.S3Object())
}

// Document wraps S3Object for the synchronous operations.
func (i Info) Document() *textract.Document {
	return new(textract.Document).SetS3Object(i.S3Object())
}

// Key joins prefix and the base name of file into an object key.
func Key(prefix, file string) string {
	name := path.Base(strings.ReplaceAll(file, "\\", "/"))
	if prefix == "" {
		return name
	}
	return strings.TrimSuffix(prefix, "/") + "/" + name
}

func checkKey(key string) error {
	if key == "" || strings.HasPrefix(key, "/") {
		return fmt.Errorf("staging: invalid key %q", key)
	}
	return nil
}

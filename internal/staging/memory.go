package staging

import (
	"context"
	"fmt"
	"io"
	"maps"
	"sort"
	"strings"
	"sync"
	"time"
)

const defaultMemoryBucket = "memory"

type memoryObject struct {
	info Info
	data []byte
}

// MemoryStager keeps staged documents in process memory.
type MemoryStager struct {
	mu     sync.RWMutex
	bucket string
	objs   map[string]memoryObject
	now    func() time.Time
}

var _ Stager = (*MemoryStager)(nil)

// NewMemory returns an empty stager reporting bucket in its references.
func NewMemory(bucket string) *MemoryStager {
	if bucket == "" {
		bucket = defaultMemoryBucket
	}
	return &MemoryStager{bucket: bucket, objs: make(map[string]memoryObject), now: time.Now}
}

func (s *MemoryStager) Bucket() string { return s.bucket }
func (s *MemoryStager) Driver() Driver { return DriverMemory }

// Put stores a new object; existing keys are rejected.
func (s *MemoryStager) Put(_ context.Context, key string, r io.Reader, opts PutOptions) (Info, error) {
	if err := checkKey(key); err != nil {
		return Info{}, err
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return Info{}, fmt.Errorf("read %s: %w", key, err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.objs[key]; exists {
		return Info{}, fmt.Errorf("%w: %s", ErrExists, key)
	}
	info := Info{
		Bucket:       s.bucket,
		Key:          key,
		Size:         int64(len(data)),
		ContentType:  opts.ContentType,
		Metadata:     maps.Clone(opts.Metadata),
		LastModified: s.now().UTC(),
	}
	s.objs[key] = memoryObject{info: info, data: data}
	return copyInfo(info), nil
}

// Head returns metadata for key.
func (s *MemoryStager) Head(_ context.Context, key string) (Info, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	obj, ok := s.objs[key]
	if !ok {
		return Info{}, fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	return copyInfo(obj.info), nil
}

// Bytes returns a copy of the staged content for key.
func (s *MemoryStager) Bytes(key string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	obj, ok := s.objs[key]
	if !ok {
		return nil, false
	}
	return append([]byte(nil), obj.data...), true
}

// Delete removes key. Missing keys are not an error.
func (s *MemoryStager) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	delete(s.objs, key)
	s.mu.Unlock()
	return nil
}

// List returns objects under prefix in key order.
func (s *MemoryStager) List(_ context.Context, prefix string) ([]Info, error) {
	s.mu.RLock()
	var out []Info
	for key, obj := range s.objs {
		if strings.HasPrefix(key, prefix) {
			out = append(out, copyInfo(obj.info))
		}
	}
	s.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out, nil
}

// PresignURL is not available for in-memory objects.
func (s *MemoryStager) PresignURL(context.Context, string, time.Duration) (string, error) {
	return "", ErrUnsupported
}

func copyInfo(info Info) Info {
	info.Metadata = maps.Clone(info.Metadata)
	return info
}

package observability

import (
	"context"
	"io"
	"slices"
	"sync"
	"time"

	"textractkit/internal/wire"
	"textractkit/pkg/client"
)

// TraceEntry is one finished span.
type TraceEntry struct {
	Operation  string    `json:"operation"`
	Status     string    `json:"status"`
	DurationMS float64   `json:"duration_ms"`
	Error      string    `json:"error,omitempty"`
	StartedAt  time.Time `json:"started_at"`
	EndedAt    time.Time `json:"ended_at"`
}

// JSONTracer writes finished spans as JSON lines and keeps them for
// inspection.
type JSONTracer struct {
	mu      sync.Mutex
	entries []TraceEntry
	w       io.Writer
	now     func() time.Time
}

var _ client.Tracer = (*JSONTracer)(nil)

// NewJSONTracer returns a tracer writing to w. A nil w only retains spans.
func NewJSONTracer(w io.Writer) *JSONTracer {
	return &JSONTracer{w: w, now: time.Now}
}

// Entries returns a copy of all finished spans.
func (t *JSONTracer) Entries() []TraceEntry {
	t.mu.Lock()
	defer t.mu.Unlock()
	return slices.Clone(t.entries)
}

// Start opens a span for operation.
func (t *JSONTracer) Start(ctx context.Context, operation string) (context.Context, client.TraceSpan) {
	return ctx, &jsonSpan{tracer: t, operation: operation, started: t.now().UTC()}
}

type jsonSpan struct {
	tracer    *JSONTracer
	operation string
	started   time.Time
	once      sync.Once
}

func (s *jsonSpan) End(err error) {
	s.once.Do(func() { s.tracer.finish(s, err) })
}

func (t *JSONTracer) finish(s *jsonSpan, err error) {
	ended := t.now().UTC()
	entry := TraceEntry{
		Operation:  s.operation,
		Status:     statusLabel(err == nil),
		DurationMS: float64(ended.Sub(s.started)) / float64(time.Millisecond),
		StartedAt:  s.started,
		EndedAt:    ended,
	}
	if err != nil {
		entry.Error = err.Error()
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.entries = append(t.entries, entry)
	if t.w != nil {
		line, mErr := wire.Marshal(entry)
		if mErr == nil {
			_, _ = t.w.Write(append(line, '\n'))
		}
	}
}

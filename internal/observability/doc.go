// Package observability provides concrete recorders and tracers for the
// Textract client hooks: an expvar aggregate, a Prometheus collector set, and
// a JSON-lines span writer.
package observability

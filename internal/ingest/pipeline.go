package ingest

import "context"

// Pipeline defines the common interface for data ingestion pipelines
type Pipeline interface {
	// Run executes one ingest cycle with the given context
	Run(ctx context.Context) error
}

// Report summarizes one ingest cycle.
type Report struct {
	Inserted       int
	Enriched       int
	Fallbacks      int
	Duplicates     int
	Malformed      int
	SourceFailures int
}

func (r *Report) add(o Report) {
	r.Inserted += o.Inserted
	r.Enriched += o.Enriched
	r.Fallbacks += o.Fallbacks
	r.Duplicates += o.Duplicates
	r.Malformed += o.Malformed
	r.SourceFailures += o.SourceFailures
}

// Package ingest implements the CSV roster ingestion pipeline: a byte stream
// of (group, student) rows is decoded, validated against the uploading faculty
// member's identity, folded into per-group drafts and committed to the store
// under natural-key upserts. Each upload is one complete stateless run; a
// failed or partial run is corrected by re-uploading, relying on the upsert
// keys for idempotence.
package ingest

import (
	"context"
	"io"

	"github.com/rs/zerolog"
)

// Pipeline wires the four ingestion stages together.
type Pipeline struct {
	committer *Committer
	log       zerolog.Logger
}

// NewPipeline creates a pipeline over the given store.
func NewPipeline(store Store, log zerolog.Logger) *Pipeline {
	return &Pipeline{
		committer: NewCommitter(store, log),
		log:       log,
	}
}

// Run processes one uploaded roster. Row-level problems are folded into the
// report; a non-nil error means nothing about the upload can be reported
// (malformed file or failing store).
func (p *Pipeline) Run(ctx context.Context, r io.Reader, guide Identity) (*Report, error) {
	rows, err := DecodeRows(r)
	if err != nil {
		return nil, err
	}

	report := NewReport()

	normalized := make([]NormalizedRow, 0, len(rows))
	for _, row := range rows {
		nr, rejection := NormalizeRow(row, guide)
		if rejection != nil {
			report.Skip(rejection.Reason)
			continue
		}
		normalized = append(normalized, nr)
	}

	drafts := AggregateRows(normalized)

	if err := p.committer.Commit(ctx, drafts, guide, report); err != nil {
		return nil, err
	}

	p.log.Info().
		Int("rows", len(rows)).
		Int("groups", len(drafts)).
		Int("createdProjects", report.CreatedProjects).
		Int("addedParticipants", report.AddedParticipants).
		Int("skippedRows", report.SkippedRows).
		Msg("Roster upload processed")

	return report, nil
}

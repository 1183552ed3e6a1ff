package sqlite

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mwhitmore/cbt-agent-mcp/internal/domain/session"
)

// ArchiveStore persists swept session records for post-hoc inspection.
// It implements session.Archiver. The registry never reads archives back;
// this table is append-only.
type ArchiveStore struct {
	db *DB
}

// NewArchiveStore creates an ArchiveStore backed by db.
func NewArchiveStore(db *DB) *ArchiveStore {
	return &ArchiveStore{db: db}
}

// ArchiveSession inserts one swept session record. List fields are stored
// as JSON text.
func (s *ArchiveStore) ArchiveSession(ctx context.Context, rec *session.Record) error {
	interventions, err := json.Marshal(rec.Interventions)
	if err != nil {
		return fmt.Errorf("failed to encode interventions: %w", err)
	}
	history, err := json.Marshal(rec.FrustrationHistory)
	if err != nil {
		return fmt.Errorf("failed to encode frustration history: %w", err)
	}

	query := `
		INSERT INTO session_archive (
			session_id, state, primary_issue, interventions_tried,
			progress_count, average_frustration, frustration_history,
			start_time, last_update
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = s.db.ExecContext(ctx, query,
		rec.ID,
		string(rec.State),
		rec.PrimaryIssue,
		string(interventions),
		len(rec.Progress),
		session.AverageFrustration(rec.FrustrationHistory),
		string(history),
		rec.StartedAt,
		rec.LastUpdate,
	)
	if err != nil {
		return fmt.Errorf("failed to archive session: %w", err)
	}

	return nil
}

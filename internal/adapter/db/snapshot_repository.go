package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"focusflow/internal/core/domain"
	"focusflow/internal/core/ports"
)

const createSnapshotTableQuery = `
CREATE TABLE IF NOT EXISTS workspace_snapshots (
  id         BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
  payload    MEDIUMBLOB      NOT NULL,
  saved_at   DATETIME(6)     NOT NULL,
  INDEX idx_saved_at (saved_at)
);
`

const insertSnapshotQuery = `
INSERT INTO workspace_snapshots (payload, saved_at) VALUES (?, ?);
`

const latestSnapshotQuery = `
SELECT payload FROM workspace_snapshots ORDER BY saved_at DESC, id DESC LIMIT 1;
`

// Keep a short history of snapshots around, drop the rest.
const pruneSnapshotsQuery = `
DELETE FROM workspace_snapshots
WHERE id NOT IN (
  SELECT id FROM (
    SELECT id FROM workspace_snapshots ORDER BY saved_at DESC, id DESC LIMIT 20
  ) keep
);
`

// SnapshotRepository persists opaque workspace snapshots in MySQL. The
// engine state is serialized whole; derived fields are recomputable, so
// the payload stays the single source of truth for raw state only.
type SnapshotRepository struct {
	db *sqlx.DB
}

var _ ports.SnapshotStore = (*SnapshotRepository)(nil)

func NewSnapshotRepository(db *sqlx.DB) (*SnapshotRepository, error) {
	if _, err := db.Exec(createSnapshotTableQuery); err != nil {
		return nil, err
	}
	return &SnapshotRepository{db: db}, nil
}

func (r *SnapshotRepository) Save(ctx context.Context, snapshot domain.Snapshot) error {
	payload, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}
	if _, err := r.db.ExecContext(ctx, insertSnapshotQuery, payload, time.Now().UTC()); err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, pruneSnapshotsQuery)
	return err
}

func (r *SnapshotRepository) Load(ctx context.Context) (domain.Snapshot, bool, error) {
	var payload []byte
	if err := r.db.GetContext(ctx, &payload, latestSnapshotQuery); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Snapshot{}, false, nil
		}
		return domain.Snapshot{}, false, err
	}

	var snapshot domain.Snapshot
	if err := json.Unmarshal(payload, &snapshot); err != nil {
		return domain.Snapshot{}, false, err
	}
	return snapshot, true, nil
}

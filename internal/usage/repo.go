// Package usage appends feature-usage and performance rows for dashboards.
// Writes are best-effort; callers log failures and move on.
package usage

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"
)

type Repo struct{ db *sql.DB }

func NewRepo(db *sql.DB) *Repo { return &Repo{db: db} }

func (r *Repo) LogUsage(ctx context.Context, userID, username, feature, action string, metadata map[string]any) error {
	mj, err := json.Marshal(metadata)
	if err != nil {
		mj = []byte("{}")
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO usage_log (user_id, username, feature, action, metadata, created_at)
		 VALUES ($1,$2,$3,$4,$5,$6)`,
		userID, username, feature, action, string(mj), time.Now().Unix())
	return err
}

func (r *Repo) LogPerformance(ctx context.Context, userID, feature string, score, total int, extra map[string]any) error {
	ej, err := json.Marshal(extra)
	if err != nil {
		ej = []byte("{}")
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO performance_log (user_id, feature, score, total_questions, extra, created_at)
		 VALUES ($1,$2,$3,$4,$5,$6)`,
		userID, feature, score, total, string(ej), time.Now().Unix())
	return err
}

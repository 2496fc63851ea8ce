package exam

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// SQLStore persists question sets, share tokens, and submissions through
// database/sql. Question lists and answer maps are stored as JSON text
// columns; placeholders are $N, which both the pgx and modernc sqlite
// drivers accept.
type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore { return &SQLStore{db: db} }

func (s *SQLStore) PutQuestionSet(ctx context.Context, qs QuestionSet) error {
	qj, err := json.Marshal(qs.Questions)
	if err != nil {
		return fmt.Errorf("marshal questions: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO question_sets (id, course, topic, creator_id, shareable, questions_json, created_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		qs.ID, qs.Course, qs.Topic, qs.CreatorID, qs.Shareable, string(qj), qs.CreatedAt)
	return err
}

func (s *SQLStore) PutShareToken(ctx context.Context, t ShareToken) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO share_tokens (id, question_set_id, creator_id, title, created_at)
		 VALUES ($1,$2,$3,$4,$5)`,
		t.ID, t.QuestionSetID, t.CreatorID, t.Title, t.CreatedAt)
	return err
}

func (s *SQLStore) GetShared(ctx context.Context, shareID string) (ShareToken, QuestionSet, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT t.id, t.question_set_id, t.creator_id, t.title, t.created_at,
		        q.course, q.topic, q.creator_id, q.shareable, q.questions_json, q.created_at
		 FROM share_tokens t JOIN question_sets q ON q.id = t.question_set_id
		 WHERE t.id=$1`, shareID)

	var t ShareToken
	var qs QuestionSet
	var qjson string
	err := row.Scan(&t.ID, &t.QuestionSetID, &t.CreatorID, &t.Title, &t.CreatedAt,
		&qs.Course, &qs.Topic, &qs.CreatorID, &qs.Shareable, &qjson, &qs.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ShareToken{}, QuestionSet{}, ErrNotFound
		}
		return ShareToken{}, QuestionSet{}, err
	}
	qs.ID = t.QuestionSetID
	if err := json.Unmarshal([]byte(qjson), &qs.Questions); err != nil {
		return ShareToken{}, QuestionSet{}, fmt.Errorf("decode questions: %w", err)
	}
	return t, qs, nil
}

func (s *SQLStore) PutSubmission(ctx context.Context, sub Submission) error {
	aj, err := json.Marshal(sub.Answers)
	if err != nil {
		return fmt.Errorf("marshal answers: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO submissions
		   (id, share_token_id, submitter_id, submitter_label, answers_json, score, total, percentage, grade, submitted_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`,
		sub.ID, sub.ShareTokenID, sub.SubmitterID, sub.SubmitterLabel, string(aj),
		sub.Score, sub.Total, sub.Percentage, sub.Grade, sub.SubmittedAt)
	return err
}

func (s *SQLStore) GetSubmission(ctx context.Context, shareID, submissionID string) (Submission, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, share_token_id, submitter_id, submitter_label, answers_json,
		        score, total, percentage, grade, submitted_at
		 FROM submissions WHERE id=$1 AND share_token_id=$2`, submissionID, shareID)

	var sub Submission
	var ajson string
	err := row.Scan(&sub.ID, &sub.ShareTokenID, &sub.SubmitterID, &sub.SubmitterLabel, &ajson,
		&sub.Score, &sub.Total, &sub.Percentage, &sub.Grade, &sub.SubmittedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Submission{}, ErrNotFound
		}
		return Submission{}, err
	}
	if err := json.Unmarshal([]byte(ajson), &sub.Answers); err != nil {
		sub.Answers = map[int]string{}
	}
	return sub, nil
}

func (s *SQLStore) ListPercentages(ctx context.Context, shareID, excludeSubmissionID string) ([]float64, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT percentage FROM submissions
		 WHERE share_token_id=$1 AND ($2 = '' OR id <> $2)
		 ORDER BY submitted_at`, shareID, excludeSubmissionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []float64
	for rows.Next() {
		var p float64
		if err := rows.Scan(&p); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

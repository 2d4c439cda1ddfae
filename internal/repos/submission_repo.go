package repos

import (
	"dialedbyh/internal/domain"

	"github.com/jmoiron/sqlx"
)

type SubmissionRepo struct{ db *sqlx.DB }

func NewSubmissionRepo(db *sqlx.DB) *SubmissionRepo { return &SubmissionRepo{db: db} }

// Insert writes one submission row. The caller sets the id; created_at falls
// back to the column default.
func (r *SubmissionRepo) Insert(s domain.Submission) error {
	_, err := r.db.Exec(`
	  INSERT INTO submissions
	    (id, submission_type, email, full_name, watch_details, watch_name, watch_ref, status, created_at)
	  VALUES
	    (?,  ?,               ?,     ?,         ?,             ?,          ?,         ?,      CURRENT_TIMESTAMP)
	`, s.ID, s.Type, s.Email, s.FullName, s.WatchDetails, s.WatchName, s.WatchRef, s.Status)
	return err
}

func (r *SubmissionRepo) Get(id string) (domain.Submission, error) {
	var s domain.Submission
	err := r.db.Get(&s, `
	  SELECT id, submission_type, email, full_name, watch_details, watch_name, watch_ref, status,
	         COALESCE(created_at,'') AS created_at
	  FROM submissions
	  WHERE id = ?
	`, id)
	return s, err
}

// ListLatest returns the most recent submissions, newest first.
func (r *SubmissionRepo) ListLatest(limit int) ([]domain.Submission, error) {
	if limit <= 0 {
		limit = 100
	}
	var out []domain.Submission
	err := r.db.Select(&out, `
	  SELECT id, submission_type, email, full_name, watch_details, watch_name, watch_ref, status,
	         COALESCE(created_at,'') AS created_at
	  FROM submissions
	  ORDER BY datetime(created_at) DESC
	  LIMIT ?
	`, limit)
	return out, err
}

func (r *SubmissionRepo) CountByStatus(status string) (int, error) {
	var n int
	err := r.db.Get(&n, `SELECT COUNT(*) FROM submissions WHERE status = ?`, status)
	return n, err
}

package resume

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"
)

// PGRepo implements Repo using Postgres. Documents are stored as JSONB at
// the canonical schema version; rows written by older deployments carry
// their original schema_version and are migrated on read.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new resume.
func (r *PGRepo) Create(ctx context.Context, res Resume) error {
	const query = `
INSERT INTO resumes (id, user_id, document, schema_version, job_description, ats_score, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	docJSON, err := json.Marshal(res.Document)
	if err != nil {
		return err
	}
	version := res.SchemaVersion
	if version == 0 {
		version = SchemaVersion
	}
	var atsScore sql.NullInt64
	if res.ATSScore != nil {
		atsScore = sql.NullInt64{Int64: int64(*res.ATSScore), Valid: true}
	}
	_, err = r.DB.ExecContext(
		ctx,
		query,
		res.ID,
		res.UserID,
		docJSON,
		version,
		res.JobDescription,
		atsScore,
		res.CreatedAt,
		res.UpdatedAt,
	)
	return err
}

// GetByID fetches a resume by id, migrating legacy document shapes.
func (r *PGRepo) GetByID(ctx context.Context, id string) (Resume, error) {
	const query = `
SELECT id, user_id, document, schema_version, job_description, ats_score, created_at, updated_at
FROM resumes
WHERE id = $1
LIMIT 1`
	row := r.DB.QueryRowContext(ctx, query, id)
	res, err := scanResume(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Resume{}, ErrNotFound
		}
		return Resume{}, err
	}
	return res, nil
}

// ListByUser lists resumes for an owner, newest-first.
func (r *PGRepo) ListByUser(ctx context.Context, userID string) ([]Resume, error) {
	const query = `
SELECT id, user_id, document, schema_version, job_description, ats_score, created_at, updated_at
FROM resumes
WHERE user_id = $1
ORDER BY updated_at DESC`

	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Resume
	for rows.Next() {
		res, err := scanResume(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	return out, rows.Err()
}

// Update is a full-document replace keyed by id and owner. The owner key in
// the WHERE clause re-verifies ownership server-side; a client-supplied
// owner field is never trusted.
func (r *PGRepo) Update(ctx context.Context, res Resume) error {
	const query = `
UPDATE resumes
SET document = $1, schema_version = $2, job_description = $3, updated_at = $4
WHERE id = $5 AND user_id = $6`

	docJSON, err := json.Marshal(res.Document)
	if err != nil {
		return err
	}
	version := res.SchemaVersion
	if version == 0 {
		version = SchemaVersion
	}
	result, err := r.DB.ExecContext(ctx, query, docJSON, version, res.JobDescription, res.UpdatedAt, res.ID, res.UserID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a resume owned by the given user.
func (r *PGRepo) Delete(ctx context.Context, id, userID string) error {
	const query = `DELETE FROM resumes WHERE id = $1 AND user_id = $2`
	result, err := r.DB.ExecContext(ctx, query, id, userID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanResume(row rowScanner) (Resume, error) {
	var (
		res      Resume
		docRaw   []byte
		version  int
		atsScore sql.NullInt64
		created  time.Time
		updated  time.Time
	)
	if err := row.Scan(
		&res.ID,
		&res.UserID,
		&docRaw,
		&version,
		&res.JobDescription,
		&atsScore,
		&created,
		&updated,
	); err != nil {
		return Resume{}, err
	}
	doc, err := DecodeStored(docRaw, version)
	if err != nil {
		return Resume{}, err
	}
	res.Document = doc
	res.SchemaVersion = SchemaVersion
	if atsScore.Valid {
		score := int(atsScore.Int64)
		res.ATSScore = &score
	}
	res.CreatedAt = created
	res.UpdatedAt = updated
	return res, nil
}

var _ Repo = (*PGRepo)(nil)

package db

import (
	"context"

	"github.com/resume-system/backend/internal/model"
)

func (db *Postgres) ListResumes(ctx context.Context, userID int64) ([]model.Resume, error) {
	query := `
		SELECT id, user_id, title, content, template, created_at, updated_at
		FROM resumes
		WHERE user_id = $1
		ORDER BY updated_at DESC
	`
	rows, err := db.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []model.Resume
	for rows.Next() {
		var r model.Resume
		if err := rows.Scan(&r.ID, &r.UserID, &r.Title, &r.Content, &r.Template, &r.CreatedAt, &r.UpdatedAt); err != nil {
			return nil, err
		}
		list = append(list, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if list == nil {
		list = []model.Resume{}
	}
	return list, nil
}

func (db *Postgres) GetResume(ctx context.Context, id, userID int64) (*model.Resume, error) {
	query := `
		SELECT id, user_id, title, content, template, created_at, updated_at
		FROM resumes
		WHERE id = $1 AND user_id = $2
	`
	var r model.Resume
	err := db.Pool.QueryRow(ctx, query, id, userID).Scan(
		&r.ID,
		&r.UserID,
		&r.Title,
		&r.Content,
		&r.Template,
		&r.CreatedAt,
		&r.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (db *Postgres) CreateResume(ctx context.Context, userID int64, title string, content []byte, template string) (*model.Resume, error) {
	query := `
		INSERT INTO resumes (user_id, title, content, template, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING id, user_id, title, content, template, created_at, updated_at
	`
	var r model.Resume
	err := db.Pool.QueryRow(ctx, query, userID, title, content, template).Scan(
		&r.ID,
		&r.UserID,
		&r.Title,
		&r.Content,
		&r.Template,
		&r.CreatedAt,
		&r.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// UpdateResume leaves any nil field unchanged (COALESCE semantics).
func (db *Postgres) UpdateResume(ctx context.Context, id, userID int64, title *string, content []byte, template *string) (*model.Resume, error) {
	query := `
		UPDATE resumes
		SET title = COALESCE($1, title),
		    content = COALESCE($2::jsonb, content),
		    template = COALESCE($3, template),
		    updated_at = NOW()
		WHERE id = $4 AND user_id = $5
		RETURNING id, user_id, title, content, template, created_at, updated_at
	`
	var r model.Resume
	err := db.Pool.QueryRow(ctx, query, title, content, template, id, userID).Scan(
		&r.ID,
		&r.UserID,
		&r.Title,
		&r.Content,
		&r.Template,
		&r.CreatedAt,
		&r.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (db *Postgres) DeleteResume(ctx context.Context, id, userID int64) (bool, error) {
	tag, err := db.Pool.Exec(ctx, `DELETE FROM resumes WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

package db

import (
	"context"
	"time"

	"github.com/resume-system/backend/internal/model"
)

func (db *Postgres) ListAchievements(ctx context.Context, userID int64) ([]model.Achievement, error) {
	query := `
		SELECT id, user_id, type, title, description, start_date, end_date, verified
		FROM achievements
		WHERE user_id = $1
		ORDER BY start_date DESC NULLS LAST
	`
	rows, err := db.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []model.Achievement
	for rows.Next() {
		var a model.Achievement
		if err := rows.Scan(&a.ID, &a.UserID, &a.Type, &a.Title, &a.Description, &a.StartDate, &a.EndDate, &a.Verified); err != nil {
			return nil, err
		}
		list = append(list, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if list == nil {
		list = []model.Achievement{}
	}
	return list, nil
}

func (db *Postgres) GetAchievement(ctx context.Context, id, userID int64) (*model.Achievement, error) {
	query := `
		SELECT id, user_id, type, title, description, start_date, end_date, verified
		FROM achievements
		WHERE id = $1 AND user_id = $2
	`
	var a model.Achievement
	err := db.Pool.QueryRow(ctx, query, id, userID).Scan(
		&a.ID,
		&a.UserID,
		&a.Type,
		&a.Title,
		&a.Description,
		&a.StartDate,
		&a.EndDate,
		&a.Verified,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (db *Postgres) CreateAchievement(ctx context.Context, userID int64, typ, title string, description *string, startDate, endDate *time.Time) (*model.Achievement, error) {
	query := `
		INSERT INTO achievements (user_id, type, title, description, start_date, end_date, verified)
		VALUES ($1, $2, $3, $4, $5, $6, FALSE)
		RETURNING id, user_id, type, title, description, start_date, end_date, verified
	`
	var a model.Achievement
	err := db.Pool.QueryRow(ctx, query, userID, typ, title, description, startDate, endDate).Scan(
		&a.ID,
		&a.UserID,
		&a.Type,
		&a.Title,
		&a.Description,
		&a.StartDate,
		&a.EndDate,
		&a.Verified,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// UpdateAchievement leaves any nil field unchanged (COALESCE semantics).
func (db *Postgres) UpdateAchievement(ctx context.Context, id, userID int64, req model.UpdateAchievementRequest) (*model.Achievement, error) {
	query := `
		UPDATE achievements
		SET type = COALESCE($1, type),
		    title = COALESCE($2, title),
		    description = COALESCE($3, description),
		    start_date = COALESCE($4, start_date),
		    end_date = COALESCE($5, end_date),
		    verified = COALESCE($6, verified)
		WHERE id = $7 AND user_id = $8
		RETURNING id, user_id, type, title, description, start_date, end_date, verified
	`
	var a model.Achievement
	err := db.Pool.QueryRow(ctx, query,
		req.Type,
		req.Title,
		req.Description,
		req.StartDate,
		req.EndDate,
		req.Verified,
		id,
		userID,
	).Scan(
		&a.ID,
		&a.UserID,
		&a.Type,
		&a.Title,
		&a.Description,
		&a.StartDate,
		&a.EndDate,
		&a.Verified,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (db *Postgres) DeleteAchievement(ctx context.Context, id, userID int64) (bool, error) {
	tag, err := db.Pool.Exec(ctx, `DELETE FROM achievements WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

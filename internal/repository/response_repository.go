package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/dkhalov/planner_bot/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ResponseRepository struct {
	pool *pgxpool.Pool
}

func NewResponseRepository(pool *pgxpool.Pool) *ResponseRepository {
	return &ResponseRepository{pool: pool}
}

// Save сохраняет ответ на ежедневный вопрос.
// Upsert по ключу (user_id, response_date): повторный ответ за тот же
// день полностью заменяет прежний, включая время ответа.
func (r *ResponseRepository) Save(ctx context.Context, resp *model.DailyResponse) error {
	query := `
		INSERT INTO daily_responses (user_id, response_date, status, custom_time, responded_at)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5)
		ON CONFLICT (user_id, response_date) DO UPDATE SET
			status       = EXCLUDED.status,
			custom_time  = EXCLUDED.custom_time,
			responded_at = EXCLUDED.responded_at
	`

	_, err := r.pool.Exec(ctx, query,
		resp.UserID,
		resp.ResponseDate,
		string(resp.Status),
		resp.CustomTime,
		resp.RespondedAt,
	)
	if err != nil {
		return fmt.Errorf("save daily response: %w", err)
	}

	return nil
}

// ListByDate возвращает ответы за дату с никами ответивших,
// в порядке поступления ответов
func (r *ResponseRepository) ListByDate(ctx context.Context, date time.Time) ([]model.ResponseRow, error) {
	query := `
		SELECT u.nickname, dr.status, COALESCE(dr.custom_time, ''), dr.responded_at
		FROM daily_responses dr
		JOIN users u ON u.id = dr.user_id
		WHERE dr.response_date = $1
		ORDER BY dr.responded_at
	`

	rows, err := r.pool.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("list responses by date: %w", err)
	}
	defer rows.Close()

	var result []model.ResponseRow
	for rows.Next() {
		var row model.ResponseRow
		var status string
		if err := rows.Scan(&row.Nickname, &status, &row.CustomTime, &row.RespondedAt); err != nil {
			return nil, fmt.Errorf("scan response row: %w", err)
		}
		row.Status = model.ResponseStatus(status)
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate response rows: %w", err)
	}

	return result, nil
}

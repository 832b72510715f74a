package repository

import (
	"context"
	"fmt"

	"github.com/dkhalov/planner_bot/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ScheduleRepository struct {
	pool *pgxpool.Pool
}

func NewScheduleRepository(pool *pgxpool.Pool) *ScheduleRepository {
	return &ScheduleRepository{pool: pool}
}

// SetEntry задаёт время начала для дня недели.
// Upsert по ключу (user_id, day_of_week): прежнее значение затирается.
func (r *ScheduleRepository) SetEntry(ctx context.Context, userID int64, dayOfWeek int, startTime string) error {
	query := `
		INSERT INTO weekly_schedule (user_id, day_of_week, start_time)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, day_of_week) DO UPDATE SET start_time = EXCLUDED.start_time
	`

	_, err := r.pool.Exec(ctx, query, userID, dayOfWeek, startTime)
	if err != nil {
		return fmt.Errorf("set schedule entry: %w", err)
	}

	return nil
}

// GetEntry возвращает время для дня недели, пустую строку если записи нет
func (r *ScheduleRepository) GetEntry(ctx context.Context, userID int64, dayOfWeek int) (string, error) {
	query := `
		SELECT start_time
		FROM weekly_schedule
		WHERE user_id = $1 AND day_of_week = $2
	`

	var startTime string
	err := r.pool.QueryRow(ctx, query, userID, dayOfWeek).Scan(&startTime)

	if err != nil {
		if err == pgx.ErrNoRows {
			return "", nil
		}
		return "", fmt.Errorf("get schedule entry: %w", err)
	}

	return startTime, nil
}

// ListAll возвращает все записи расписания с никами владельцев,
// отсортированные по нику, затем по дню недели. Дни без записей
// в выборку не попадают.
func (r *ScheduleRepository) ListAll(ctx context.Context) ([]model.ScheduleEntry, error) {
	query := `
		SELECT u.nickname, ws.day_of_week, ws.start_time
		FROM weekly_schedule ws
		JOIN users u ON u.id = ws.user_id
		ORDER BY u.nickname, ws.day_of_week
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list schedule entries: %w", err)
	}
	defer rows.Close()

	var entries []model.ScheduleEntry
	for rows.Next() {
		var entry model.ScheduleEntry
		if err := rows.Scan(&entry.Nickname, &entry.DayOfWeek, &entry.StartTime); err != nil {
			return nil, fmt.Errorf("scan schedule entry: %w", err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate schedule entries: %w", err)
	}

	return entries, nil
}

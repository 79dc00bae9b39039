package professional

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/dshmn/ProBook-AvailabilityService/internal/domain"
	"github.com/dshmn/ProBook-AvailabilityService/pkg/dbmetrics"
	"github.com/dshmn/ProBook-AvailabilityService/pkg/psqlbuilder"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий специалистов: карточка, еженедельное расписание,
// еженедельные перерывы. Расписание и перерывы - долгоживущая конфигурация,
// читаемая на каждом расчёте слотов.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория специалистов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает специалиста по ID (таймзона и длительность по умолчанию)
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Professional, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"display_name",
		"timezone",
		"default_duration_minutes",
		"created_at",
		"updated_at",
	).
		From("professionals").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var pro domain.Professional
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&pro.ID,
		&pro.DisplayName,
		&pro.Timezone,
		&pro.DefaultDurationMinutes,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrProfessionalNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan professional: %v", ErrScanRow, err)
	}

	pro.CreatedAt = createdAt.Time
	pro.UpdatedAt = updatedAt.Time

	return &pro, nil
}

// GetWeeklySchedule получает еженедельное расписание специалиста,
// упорядоченное по дню недели (одна запись на день)
func (r *Repository) GetWeeklySchedule(ctx context.Context, professionalID int64) ([]domain.WeeklyScheduleEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"professional_id",
		"day_of_week",
		"start_time",
		"end_time",
		"is_available",
		"created_at",
		"updated_at",
	).
		From("weekly_schedule").
		Where(squirrel.Eq{"professional_id": professionalID}).
		OrderBy("day_of_week ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetWeeklySchedule - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetWeeklySchedule - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	entries := make([]domain.WeeklyScheduleEntry, 0, 7)
	for rows.Next() {
		var entry domain.WeeklyScheduleEntry
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&entry.ID,
			&entry.ProfessionalID,
			&entry.DayOfWeek,
			&entry.StartTime,
			&entry.EndTime,
			&entry.IsAvailable,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetWeeklySchedule - scan row: %v", ErrScanRow, err)
		}

		entry.CreatedAt = createdAt.Time
		entry.UpdatedAt = updatedAt.Time
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetWeeklySchedule - rows error: %v", ErrScanRow, err)
	}

	return entries, nil
}

// GetBreaks получает еженедельные перерывы специалиста,
// упорядоченные по дню недели и времени начала
func (r *Repository) GetBreaks(ctx context.Context, professionalID int64) ([]domain.Break, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"professional_id",
		"day_of_week",
		"start_time",
		"end_time",
		"kind",
		"created_at",
	).
		From("breaks").
		Where(squirrel.Eq{"professional_id": professionalID}).
		OrderBy("day_of_week ASC, start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetBreaks - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetBreaks - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	breaks := make([]domain.Break, 0)
	for rows.Next() {
		var b domain.Break
		var createdAt sql.NullTime

		err := rows.Scan(
			&b.ID,
			&b.ProfessionalID,
			&b.DayOfWeek,
			&b.StartTime,
			&b.EndTime,
			&b.Kind,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetBreaks - scan row: %v", ErrScanRow, err)
		}

		b.CreatedAt = createdAt.Time
		breaks = append(breaks, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetBreaks - rows error: %v", ErrScanRow, err)
	}

	return breaks, nil
}

package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/ktnb/ARS-ReservationService/internal/domain"
	"github.com/ktnb/ARS-ReservationService/pkg/dbmetrics"
	"github.com/ktnb/ARS-ReservationService/pkg/psqlbuilder"
)

// Repository репозиторий рабочих часов тенанта и сотрудников.
// Таблицы business_hours и staff_business_hours хранят интервалы в местном
// времени тенанта ("HH:MM"); инварианты (start < end, часы сотрудника -
// подмножество часов тенанта) проверяются сервисным слоем при записи.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория рабочих часов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetTenantHours получает рабочие часы тенанта.
// Пустое расписание - валидный результат (тенант всегда закрыт).
func (r *Repository) GetTenantHours(ctx context.Context, tenantID int64) (domain.WeeklySchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("day_of_week", "start_time", "end_time").
		From("business_hours").
		Where(squirrel.Eq{"tenant_id": tenantID}).
		OrderBy("day_of_week ASC, start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetTenantHours - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetTenantHours - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	schedule := make(domain.WeeklySchedule, 0)

	for rows.Next() {
		var interval domain.BusinessHourInterval
		var dayOfWeek int

		if err := rows.Scan(&dayOfWeek, &interval.StartTime, &interval.EndTime); err != nil {
			return nil, fmt.Errorf("%w: GetTenantHours - scan row: %v", ErrScanRow, err)
		}

		interval.DayOfWeek = time.Weekday(dayOfWeek)
		schedule = append(schedule, interval)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetTenantHours - rows error: %v", ErrScanRow, err)
	}

	return schedule, nil
}

// GetStaffHours получает рабочие часы одного сотрудника.
// Отсутствие строк означает, что расписание сотрудника не настроено.
func (r *Repository) GetStaffHours(ctx context.Context, tenantID, staffID int64) (domain.WeeklySchedule, error) {
	schedules, err := r.getStaffHours(ctx, tenantID, &staffID)
	if err != nil {
		return nil, err
	}
	return schedules[staffID], nil
}

// GetAllStaffHours получает рабочие часы всех сотрудников тенанта,
// сгруппированные по staff_id
func (r *Repository) GetAllStaffHours(ctx context.Context, tenantID int64) (map[int64]domain.WeeklySchedule, error) {
	return r.getStaffHours(ctx, tenantID, nil)
}

// getStaffHours общая выборка staff_business_hours с опциональным фильтром
func (r *Repository) getStaffHours(ctx context.Context, tenantID int64, staffID *int64) (map[int64]domain.WeeklySchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("staff_id", "day_of_week", "start_time", "end_time").
		From("staff_business_hours").
		Where(squirrel.Eq{"tenant_id": tenantID})

	if staffID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"staff_id": *staffID})
	}

	query, args, err := selectBuilder.
		OrderBy("staff_id ASC, day_of_week ASC, start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: getStaffHours - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: getStaffHours - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	schedules := make(map[int64]domain.WeeklySchedule)

	for rows.Next() {
		var interval domain.BusinessHourInterval
		var id int64
		var dayOfWeek int

		if err := rows.Scan(&id, &dayOfWeek, &interval.StartTime, &interval.EndTime); err != nil {
			return nil, fmt.Errorf("%w: getStaffHours - scan row: %v", ErrScanRow, err)
		}

		interval.DayOfWeek = time.Weekday(dayOfWeek)
		schedules[id] = append(schedules[id], interval)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: getStaffHours - rows error: %v", ErrScanRow, err)
	}

	return schedules, nil
}

// ReplaceTenantHours заменяет рабочие часы тенанта целиком.
// Выполняется как delete + insert; вызывающий оборачивает в транзакцию
// через контекст, чтобы не остаться без расписания при сбое.
func (r *Repository) ReplaceTenantHours(ctx context.Context, tenantID int64, schedule domain.WeeklySchedule) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	deleteQuery, deleteArgs, err := psqlbuilder.Delete("business_hours").
		Where(squirrel.Eq{"tenant_id": tenantID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceTenantHours - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceTenantHours - execute delete: %v", ErrExecQuery, err)
	}

	if len(schedule) == 0 {
		return nil
	}

	insertBuilder := psqlbuilder.Insert("business_hours").
		Columns("tenant_id", "day_of_week", "start_time", "end_time")

	for _, interval := range schedule {
		insertBuilder = insertBuilder.Values(tenantID, int(interval.DayOfWeek), interval.StartTime, interval.EndTime)
	}

	insertQuery, insertArgs, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceTenantHours - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceTenantHours - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// ReplaceStaffHours заменяет рабочие часы одного сотрудника целиком
func (r *Repository) ReplaceStaffHours(ctx context.Context, tenantID, staffID int64, schedule domain.WeeklySchedule) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	deleteQuery, deleteArgs, err := psqlbuilder.Delete("staff_business_hours").
		Where(squirrel.Eq{"tenant_id": tenantID, "staff_id": staffID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceStaffHours - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceStaffHours - execute delete: %v", ErrExecQuery, err)
	}

	if len(schedule) == 0 {
		return nil
	}

	insertBuilder := psqlbuilder.Insert("staff_business_hours").
		Columns("tenant_id", "staff_id", "day_of_week", "start_time", "end_time")

	for _, interval := range schedule {
		insertBuilder = insertBuilder.Values(tenantID, staffID, int(interval.DayOfWeek), interval.StartTime, interval.EndTime)
	}

	insertQuery, insertArgs, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceStaffHours - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceStaffHours - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

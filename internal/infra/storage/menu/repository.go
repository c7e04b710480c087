package menu

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/ktnb/ARS-ReservationService/internal/domain"
	"github.com/ktnb/ARS-ReservationService/pkg/dbmetrics"
	"github.com/ktnb/ARS-ReservationService/pkg/psqlbuilder"
)

// Repository репозиторий меню бронирования (ровно одно меню на тенанта)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория меню
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByTenant получает меню тенанта.
// Отсутствие меню - не ошибка уровня бизнес-логики: вызывающий подставляет
// domain.DefaultMenu() при ErrMenuNotFound.
func (r *Repository) GetByTenant(ctx context.Context, tenantID int64) (*domain.ReservationMenu, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"tenant_id",
		"name",
		"duration_minutes",
		"start_minutes",
		"created_at",
		"updated_at",
	).
		From("reservation_menus").
		Where(squirrel.Eq{"tenant_id": tenantID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByTenant - build select query: %v", ErrBuildQuery, err)
	}

	var menu domain.ReservationMenu
	var startMinutes pq.Int64Array
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&menu.ID,
		&menu.TenantID,
		&menu.Name,
		&menu.DurationMinutes,
		&startMinutes,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrMenuNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByTenant - scan menu: %v", ErrScanRow, err)
	}

	menu.StartMinutes = make([]int, len(startMinutes))
	for i, minute := range startMinutes {
		menu.StartMinutes[i] = int(minute)
	}

	menu.CreatedAt = createdAt.Time
	menu.UpdatedAt = updatedAt.Time

	return &menu, nil
}

// Upsert создает или обновляет меню тенанта
func (r *Repository) Upsert(ctx context.Context, menu *domain.ReservationMenu) (*domain.ReservationMenu, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	startMinutes := make(pq.Int64Array, len(menu.StartMinutes))
	for i, minute := range menu.StartMinutes {
		startMinutes[i] = int64(minute)
	}

	query, args, err := psqlbuilder.Insert("reservation_menus").
		Columns("tenant_id", "name", "duration_minutes", "start_minutes").
		Values(menu.TenantID, menu.Name, menu.DurationMinutes, startMinutes).
		Suffix(`ON CONFLICT (tenant_id) DO UPDATE SET
			name = EXCLUDED.name,
			duration_minutes = EXCLUDED.duration_minutes,
			start_minutes = EXCLUDED.start_minutes,
			updated_at = NOW()
			RETURNING id, created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build upsert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&menu.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute upsert: %v", ErrExecQuery, err)
	}

	menu.CreatedAt = createdAt.Time
	menu.UpdatedAt = updatedAt.Time

	return menu, nil
}

package delivery

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"quickhaul/internal/entities"
	"quickhaul/internal/repository"
	"quickhaul/internal/service/delivery"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const deliveryColumns = `id, owner_id, driver_id, pickup_location, delivery_location, item_description,
	item_weight_kg, vehicle_type, scheduled_date, scheduled_time, additional_notes,
	distance_km, price, status, created_at, updated_at`

const (
	ownerForeignKey  = "deliveries_owner_id_fkey"
	driverForeignKey = "deliveries_driver_id_fkey"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func scanDelivery(row pgx.Row) (*DeliveryDB, error) {
	var deliveryDB DeliveryDB
	err := row.Scan(
		&deliveryDB.ID,
		&deliveryDB.OwnerID,
		&deliveryDB.DriverID,
		&deliveryDB.PickupLocation,
		&deliveryDB.DeliveryLocation,
		&deliveryDB.ItemDescription,
		&deliveryDB.ItemWeightKg,
		&deliveryDB.VehicleType,
		&deliveryDB.ScheduledDate,
		&deliveryDB.ScheduledTime,
		&deliveryDB.AdditionalNotes,
		&deliveryDB.DistanceKm,
		&deliveryDB.Price,
		&deliveryDB.Status,
		&deliveryDB.CreatedAt,
		&deliveryDB.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &deliveryDB, nil
}

// mapWriteError переводит ошибки postgres при записи в ошибки сервиса.
func mapWriteError(op string, err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return delivery.ErrDeliveryNotFound
	}
	if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
		switch repository.ConstraintName(err) {
		case ownerForeignKey:
			return fmt.Errorf("%w: owner account does not exist", delivery.ErrInvalidOwnerID)
		case driverForeignKey:
			return fmt.Errorf("%w: driver account does not exist", delivery.ErrInvalidDriverID)
		}
	}
	return fmt.Errorf("%w: %s: %w", delivery.ErrPersistence, op, err)
}

func (r *Repository) Create(ctx context.Context, deliveryEntity entities.Delivery) (*entities.Delivery, error) {
	deliveryDB := FromDomain(&deliveryEntity)

	query := `INSERT INTO deliveries (` + deliveryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING ` + deliveryColumns

	created, err := scanDelivery(r.querier.QueryRow(
		ctx,
		query,
		deliveryDB.ID,
		deliveryDB.OwnerID,
		deliveryDB.DriverID,
		deliveryDB.PickupLocation,
		deliveryDB.DeliveryLocation,
		deliveryDB.ItemDescription,
		deliveryDB.ItemWeightKg,
		deliveryDB.VehicleType,
		deliveryDB.ScheduledDate,
		deliveryDB.ScheduledTime,
		deliveryDB.AdditionalNotes,
		deliveryDB.DistanceKm,
		deliveryDB.Price,
		deliveryDB.Status,
		deliveryDB.CreatedAt,
		deliveryDB.UpdatedAt,
	))
	if err != nil {
		return nil, mapWriteError("create", err)
	}

	return ToDomain(created), nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.Delivery, error) {
	return r.getOne(ctx, id, false)
}

// GetByIDForUpdate держит блокировку строки до конца транзакции из контекста,
// поэтому смены статуса одной доставки идут строго по очереди.
func (r *Repository) GetByIDForUpdate(ctx context.Context, id string) (*entities.Delivery, error) {
	return r.getOne(ctx, id, true)
}

func (r *Repository) getOne(ctx context.Context, id string, forUpdate bool) (*entities.Delivery, error) {
	query := `SELECT ` + deliveryColumns + `
		FROM deliveries
		WHERE id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}

	deliveryDB, err := scanDelivery(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, delivery.ErrDeliveryNotFound
		}
		return nil, fmt.Errorf("%w: get by id: %w", delivery.ErrPersistence, err)
	}

	return ToDomain(deliveryDB), nil
}

func (r *Repository) UpdateStatus(ctx context.Context, update entities.DeliveryStatusUpdate) (*entities.Delivery, error) {
	builder := qb.
		Update("deliveries").
		Set("status", string(update.Status)).
		Set("updated_at", update.UpdatedAt)

	// водитель пишется только если передан, иначе остаётся прежний
	if update.DriverID != nil {
		builder = builder.Set("driver_id", *update.DriverID)
	}

	query, args, err := builder.
		Where(sq.Eq{"id": update.ID}).
		Suffix("RETURNING " + deliveryColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: build update status: %w", delivery.ErrPersistence, err)
	}

	updated, err := scanDelivery(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, mapWriteError("update status", err)
	}

	return ToDomain(updated), nil
}

// List - новые сверху; seq различает записи с одинаковым created_at.
func (r *Repository) List(ctx context.Context, filter entities.DeliveryFilter) ([]entities.Delivery, error) {
	builder := qb.
		Select(deliveryColumns).
		From("deliveries").
		OrderBy("created_at DESC", "seq DESC")

	if filter.AccountID != nil {
		builder = builder.Where(sq.Or{
			sq.Eq{"owner_id": *filter.AccountID},
			sq.Eq{"driver_id": *filter.AccountID},
		})
	}
	if filter.Status != nil {
		builder = builder.Where(sq.Eq{"status": string(*filter.Status)})
	}
	if filter.Search != nil {
		pattern := "%" + escapeLike(strings.TrimSpace(*filter.Search)) + "%"
		builder = builder.Where(sq.Or{
			sq.ILike{"id": pattern},
			sq.ILike{"pickup_location": pattern},
			sq.ILike{"delivery_location": pattern},
			sq.ILike{"item_description": pattern},
		})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: build list: %w", delivery.ErrPersistence, err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: list: %w", delivery.ErrPersistence, err)
	}
	defer rows.Close()

	deliveriesDB := make([]DeliveryDB, 0, 8)
	for rows.Next() {
		deliveryDB, err := scanDelivery(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: list scan: %w", delivery.ErrPersistence, err)
		}
		deliveriesDB = append(deliveriesDB, *deliveryDB)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: list rows: %w", delivery.ErrPersistence, err)
	}

	return ToDomainList(deliveriesDB), nil
}

func (r *Repository) CountByStatus(ctx context.Context) (map[entities.DeliveryStatus]int64, error) {
	query := `SELECT status, COUNT(*)
		FROM deliveries
		GROUP BY status`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: count by status: %w", delivery.ErrPersistence, err)
	}
	defer rows.Close()

	countsDB := make([]StatusCountDB, 0, len(entities.DeliveryStatuses))
	for rows.Next() {
		var c StatusCountDB
		if err := rows.Scan(&c.Status, &c.Count); err != nil {
			return nil, fmt.Errorf("%w: count scan: %w", delivery.ErrPersistence, err)
		}
		countsDB = append(countsDB, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: count rows: %w", delivery.ErrPersistence, err)
	}

	return ToStatusCounts(countsDB), nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

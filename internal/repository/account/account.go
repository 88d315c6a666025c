package account

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"quickhaul/internal/entities"
	"quickhaul/internal/repository"
	"quickhaul/internal/service/account"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const accountColumns = `id, name, email, credential_hash, role, phone, address,
	vehicle_type, license_plate, capacity_kg, availability, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func scanAccount(row pgx.Row) (*AccountDB, error) {
	var accountDB AccountDB
	err := row.Scan(
		&accountDB.ID,
		&accountDB.Name,
		&accountDB.Email,
		&accountDB.CredentialHash,
		&accountDB.Role,
		&accountDB.Phone,
		&accountDB.Address,
		&accountDB.VehicleType,
		&accountDB.LicensePlate,
		&accountDB.CapacityKg,
		&accountDB.Availability,
		&accountDB.CreatedAt,
		&accountDB.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &accountDB, nil
}

func (r *Repository) Create(ctx context.Context, accountEntity entities.Account) (*entities.Account, error) {
	accountDB := FromDomain(&accountEntity)

	query := `INSERT INTO accounts (
			id, name, email, credential_hash, role, phone, address,
			vehicle_type, license_plate, capacity_kg, availability, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING ` + accountColumns

	created, err := scanAccount(r.querier.QueryRow(
		ctx,
		query,
		accountDB.ID,
		accountDB.Name,
		accountDB.Email,
		accountDB.CredentialHash,
		accountDB.Role,
		accountDB.Phone,
		accountDB.Address,
		accountDB.VehicleType,
		accountDB.LicensePlate,
		accountDB.CapacityKg,
		accountDB.Availability,
		accountDB.CreatedAt,
		accountDB.UpdatedAt,
	))
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, account.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("%w: create: %w", account.ErrPersistence, err)
	}

	return ToDomain(created), nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.Account, error) {
	return r.getOne(ctx, qb.Select(accountColumns).From("accounts").Where(sq.Eq{"id": id}))
}

// GetByIDForUpdate блокирует строку до конца транзакции из контекста.
func (r *Repository) GetByIDForUpdate(ctx context.Context, id string) (*entities.Account, error) {
	return r.getOne(ctx, qb.Select(accountColumns).From("accounts").Where(sq.Eq{"id": id}).Suffix("FOR UPDATE"))
}

func (r *Repository) GetByEmail(ctx context.Context, email string) (*entities.Account, error) {
	return r.getOne(ctx, qb.Select(accountColumns).From("accounts").Where(sq.Eq{"email": email}))
}

func (r *Repository) getOne(ctx context.Context, builder sq.SelectBuilder) (*entities.Account, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: build select: %w", account.ErrPersistence, err)
	}

	accountDB, err := scanAccount(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, account.ErrAccountNotFound
		}
		return nil, fmt.Errorf("%w: select: %w", account.ErrPersistence, err)
	}

	return ToDomain(accountDB), nil
}

func (r *Repository) Update(ctx context.Context, accountModify entities.AccountModify) (*entities.Account, error) {
	modifyDB := FromDomainModify(&accountModify)
	if modifyDB.ID == nil {
		return nil, account.ErrInvalidAccountID
	}

	builder := qb.Update("accounts")

	// опциональные поля
	if modifyDB.Name != nil {
		builder = builder.Set("name", modifyDB.Name)
	}
	if modifyDB.Email != nil {
		builder = builder.Set("email", modifyDB.Email)
	}
	if modifyDB.CredentialHash != nil {
		builder = builder.Set("credential_hash", modifyDB.CredentialHash)
	}
	if modifyDB.Phone != nil {
		builder = builder.Set("phone", modifyDB.Phone)
	}
	if modifyDB.Address != nil {
		builder = builder.Set("address", modifyDB.Address)
	}
	if modifyDB.VehicleType != nil {
		builder = builder.Set("vehicle_type", modifyDB.VehicleType)
	}
	if modifyDB.LicensePlate != nil {
		builder = builder.Set("license_plate", modifyDB.LicensePlate)
	}
	if modifyDB.CapacityKg != nil {
		builder = builder.Set("capacity_kg", modifyDB.CapacityKg)
	}
	if modifyDB.Availability != nil {
		builder = builder.Set("availability", modifyDB.Availability)
	}

	builder = builder.
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": modifyDB.ID}).
		Suffix("RETURNING " + accountColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: build update: %w", account.ErrPersistence, err)
	}

	updated, err := scanAccount(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, account.ErrAccountNotFound
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, account.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("%w: update: %w", account.ErrPersistence, err)
	}

	return ToDomain(updated), nil
}

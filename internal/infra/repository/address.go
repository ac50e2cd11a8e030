package repository

import (
	"context"

	"storefront/internal/domain/address"
	"storefront/internal/infra"
	"storefront/internal/infra/repository/converter"
	"storefront/internal/infra/sqlc"
	"storefront/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type AddressQueries interface {
	CreateAddress(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateAddressParams) error
	UpdateAddress(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateAddressParams) (int64, error)
	DeleteAddress(ctx context.Context, db sqlc.DBTX, arg sqlc.DeleteAddressParams) (int64, error)
	FindAddressByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Addresses, error)
	CountAddressesByUser(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) (int64, error)
	ClearDefaultAddress(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) error
	SetDefaultAddress(ctx context.Context, db sqlc.DBTX, arg sqlc.SetDefaultAddressParams) (int64, error)
	PromoteLatestAddress(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) error
}

type AddressRepository struct {
	queries AddressQueries
}

func NewAddressRepository(queries AddressQueries) *AddressRepository {
	return &AddressRepository{queries: queries}
}

func (r *AddressRepository) Create(ctx context.Context, tx sqlc.DBTX, a *address.Address) error {
	if err := r.queries.CreateAddress(ctx, tx, converter.AddressToCreateParams(a)); err != nil {
		return infra.WrapRepoErr("failed to create address", err)
	}
	return nil
}

func (r *AddressRepository) Update(ctx context.Context, tx sqlc.DBTX, a *address.Address) error {
	rows, err := r.queries.UpdateAddress(ctx, tx, converter.AddressToUpdateParams(a))
	return expectAffected(rows, err, "address")
}

func (r *AddressRepository) Delete(ctx context.Context, tx sqlc.DBTX, id, userID uuid.UUID) error {
	rows, err := r.queries.DeleteAddress(ctx, tx, sqlc.DeleteAddressParams{ID: id, UserID: userID})
	return expectAffected(rows, err, "address")
}

func (r *AddressRepository) CountByUser(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) (int64, error) {
	n, err := r.queries.CountAddressesByUser(ctx, tx, userID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count addresses", err)
	}
	return n, nil
}

func (r *AddressRepository) SetDefault(ctx context.Context, tx sqlc.DBTX, id, userID uuid.UUID) error {
	if err := r.queries.ClearDefaultAddress(ctx, tx, userID); err != nil {
		return infra.WrapRepoErr("failed to clear default address", err)
	}
	rows, err := r.queries.SetDefaultAddress(ctx, tx, sqlc.SetDefaultAddressParams{ID: id, UserID: userID})
	return expectAffected(rows, err, "address")
}

func (r *AddressRepository) PromoteLatest(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) error {
	if err := r.queries.PromoteLatestAddress(ctx, tx, userID); err != nil {
		return infra.WrapRepoErr("failed to promote address", err)
	}
	return nil
}

func (r *AddressRepository) FindByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (*address.Address, error) {
	row, err := r.queries.FindAddressByID(ctx, db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("address not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find address", err)
	}
	return converter.AddressFromRow(row), nil
}

package readstore

import (
	"context"

	"storefront/internal/infra"
	"storefront/internal/infra/sqlc"
	"storefront/internal/pkg/pgconv"
	"storefront/internal/usecase/queries"

	"github.com/google/uuid"
)

type AddressReadQueries interface {
	ListAddressesByUser(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) ([]sqlc.Addresses, error)
}

type AddressReadStore struct {
	queries AddressReadQueries
	db      sqlc.DBTX
}

func NewAddressReadStore(queries AddressReadQueries, db sqlc.DBTX) *AddressReadStore {
	return &AddressReadStore{queries: queries, db: db}
}

func (r *AddressReadStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*queries.AddressView, error) {
	rows, err := r.queries.ListAddressesByUser(ctx, r.db, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list addresses", err)
	}
	out := make([]*queries.AddressView, 0, len(rows))
	for _, row := range rows {
		out = append(out, &queries.AddressView{
			ID:        row.ID,
			FullName:  row.FullName,
			Phone:     row.Phone,
			Line1:     row.Line1,
			Line2:     row.Line2,
			City:      row.City,
			State:     row.State,
			Pincode:   row.Pincode,
			IsDefault: row.IsDefault,
			CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		})
	}
	return out, nil
}

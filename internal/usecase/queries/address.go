package queries

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockgen -source=address.go -destination=../../../tests/mock/queries/address.go -package=queriesmock

type AddressReadStore interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*AddressView, error)
}

type AddressQueries interface {
	List(ctx context.Context, userID uuid.UUID) ([]*AddressView, error)
}

type addressQueriesImpl struct {
	readStore AddressReadStore
}

func NewAddressQueries(readStore AddressReadStore) AddressQueries {
	return &addressQueriesImpl{readStore: readStore}
}

func (q *addressQueriesImpl) List(ctx context.Context, userID uuid.UUID) ([]*AddressView, error) {
	return q.readStore.ListByUser(ctx, userID)
}

package commands

import (
	"context"

	"storefront/internal/domain/address"
	reqdto "storefront/internal/handler/dto/request"
	"storefront/internal/pkg/clock"
	"storefront/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=address.go -destination=../../../tests/mock/commands/address.go -package=commandsmock

type AddressCommands interface {
	Create(ctx context.Context, userID uuid.UUID, req reqdto.AddressRequest) (uuid.UUID, error)
	Update(ctx context.Context, userID, id uuid.UUID, req reqdto.AddressRequest) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
	SetDefault(ctx context.Context, userID, id uuid.UUID) error
}

type addressCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewAddressCommands(uow shared.UnitOfWork, clk clock.Clock) AddressCommands {
	return &addressCommandsImpl{uow: uow, clock: clk}
}

// Create makes the user's first address the default regardless of the request.
func (a *addressCommandsImpl) Create(ctx context.Context, userID uuid.UUID, req reqdto.AddressRequest) (uuid.UUID, error) {
	var id uuid.UUID
	err := a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		repo := tx.Addresses()
		if err := tx.Users().Lock(ctx, tx.DB(), userID); err != nil {
			return repoErr(err, ErrUserNotFound)
		}
		count, err := repo.CountByUser(ctx, tx.DB(), userID)
		if err != nil {
			return repoErr(err, nil)
		}
		makeDefault := req.IsDefault || count == 0

		addr, err := address.NewAddress(userID, req.ToParams(), false, a.clock.Now())
		if err != nil {
			return err
		}
		if err := repo.Create(ctx, tx.DB(), addr); err != nil {
			return repoErr(err, nil)
		}
		id = addr.ID()
		if makeDefault {
			return repoErr(repo.SetDefault(ctx, tx.DB(), addr.ID(), userID), nil)
		}
		return nil
	})
	return id, err
}

func (a *addressCommandsImpl) Update(ctx context.Context, userID, id uuid.UUID, req reqdto.AddressRequest) error {
	return a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		addr, err := a.owned(ctx, tx, userID, id)
		if err != nil {
			return err
		}
		if err := addr.Update(req.ToParams(), a.clock.Now()); err != nil {
			return err
		}
		if err := tx.Addresses().Update(ctx, tx.DB(), addr); err != nil {
			return repoErr(err, address.ErrAddressNotFound)
		}
		if req.IsDefault && !addr.IsDefault() {
			return repoErr(tx.Addresses().SetDefault(ctx, tx.DB(), id, userID), address.ErrAddressNotFound)
		}
		return nil
	})
}

// Delete promotes the most recent remaining address when the default goes away.
func (a *addressCommandsImpl) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		addr, err := a.owned(ctx, tx, userID, id)
		if err != nil {
			return err
		}
		if err := tx.Addresses().Delete(ctx, tx.DB(), id, userID); err != nil {
			return repoErr(err, address.ErrAddressNotFound)
		}
		if addr.IsDefault() {
			return repoErr(tx.Addresses().PromoteLatest(ctx, tx.DB(), userID), nil)
		}
		return nil
	})
}

func (a *addressCommandsImpl) SetDefault(ctx context.Context, userID, id uuid.UUID) error {
	return a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := a.owned(ctx, tx, userID, id); err != nil {
			return err
		}
		return repoErr(tx.Addresses().SetDefault(ctx, tx.DB(), id, userID), address.ErrAddressNotFound)
	})
}

// owned hides other users' addresses behind not-found.
func (a *addressCommandsImpl) owned(ctx context.Context, tx shared.Tx, userID, id uuid.UUID) (*address.Address, error) {
	addr, err := tx.Reads().AddressByID(ctx, id)
	if err != nil {
		return nil, repoErr(err, address.ErrAddressNotFound)
	}
	if !addr.IsOwnedBy(userID) {
		return nil, address.ErrAddressNotFound
	}
	return addr, nil
}

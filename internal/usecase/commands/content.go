package commands

import (
	"context"
	"log/slog"

	"storefront/internal/domain/content"
	reqdto "storefront/internal/handler/dto/request"
	"storefront/internal/pkg/clock"
	"storefront/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=content.go -destination=../../../tests/mock/commands/content.go -package=commandsmock

type ContentCommands interface {
	CreateHero(ctx context.Context, req reqdto.HeroRequest) (uuid.UUID, error)
	UpdateHero(ctx context.Context, id uuid.UUID, req reqdto.HeroRequest) error
	DeleteHero(ctx context.Context, id uuid.UUID) error

	CreateBroadcast(ctx context.Context, actor shared.Actor, req reqdto.BroadcastRequest) (uuid.UUID, error)
	UpdateBroadcast(ctx context.Context, id uuid.UUID, req reqdto.BroadcastRequest) error
	DeleteBroadcast(ctx context.Context, id uuid.UUID) error
	// SendBroadcast fans the broadcast out to every active customer and returns the recipient count.
	SendBroadcast(ctx context.Context, id uuid.UUID) (int, error)
}

type contentCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewContentCommands(uow shared.UnitOfWork, clk clock.Clock) ContentCommands {
	return &contentCommandsImpl{uow: uow, clock: clk}
}

func (c *contentCommandsImpl) CreateHero(ctx context.Context, req reqdto.HeroRequest) (uuid.UUID, error) {
	h, err := content.NewHeroImage(req.ToParams(), c.clock.Now())
	if err != nil {
		return uuid.Nil, err
	}
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return repoErr(tx.Content().CreateHero(ctx, tx.DB(), h), nil)
	})
	if err != nil {
		return uuid.Nil, err
	}
	return h.ID(), nil
}

func (c *contentCommandsImpl) UpdateHero(ctx context.Context, id uuid.UUID, req reqdto.HeroRequest) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		h, err := tx.Reads().HeroImageByID(ctx, id)
		if err != nil {
			return repoErr(err, ErrHeroNotFound)
		}
		if err := h.Update(req.ToParams(), c.clock.Now()); err != nil {
			return err
		}
		return repoErr(tx.Content().UpdateHero(ctx, tx.DB(), h), ErrHeroNotFound)
	})
}

func (c *contentCommandsImpl) DeleteHero(ctx context.Context, id uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return repoErr(tx.Content().DeleteHero(ctx, tx.DB(), id), ErrHeroNotFound)
	})
}

func (c *contentCommandsImpl) CreateBroadcast(ctx context.Context, actor shared.Actor, req reqdto.BroadcastRequest) (uuid.UUID, error) {
	b, err := content.NewBroadcast(req.Subject, req.Body, actor.ID, c.clock.Now())
	if err != nil {
		return uuid.Nil, err
	}
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return repoErr(tx.Content().CreateBroadcast(ctx, tx.DB(), b), nil)
	})
	if err != nil {
		return uuid.Nil, err
	}
	return b.ID(), nil
}

func (c *contentCommandsImpl) UpdateBroadcast(ctx context.Context, id uuid.UUID, req reqdto.BroadcastRequest) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Reads().BroadcastByID(ctx, id, true)
		if err != nil {
			return repoErr(err, ErrBroadcastNotFound)
		}
		if err := b.Edit(req.Subject, req.Body, c.clock.Now()); err != nil {
			return err
		}
		return repoErr(tx.Content().SaveBroadcast(ctx, tx.DB(), b), ErrBroadcastNotFound)
	})
}

// DeleteBroadcast only removes drafts; queued broadcasts are history.
func (c *contentCommandsImpl) DeleteBroadcast(ctx context.Context, id uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Reads().BroadcastByID(ctx, id, true)
		if err != nil {
			return repoErr(err, ErrBroadcastNotFound)
		}
		if err := b.CanDelete(); err != nil {
			return err
		}
		return repoErr(tx.Content().DeleteBroadcast(ctx, tx.DB(), id), ErrBroadcastNotFound)
	})
}

func (c *contentCommandsImpl) SendBroadcast(ctx context.Context, id uuid.UUID) (int, error) {
	var recipients int64
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Reads().BroadcastByID(ctx, id, true)
		if err != nil {
			return repoErr(err, ErrBroadcastNotFound)
		}
		if err := b.CanDelete(); err != nil {
			return err
		}
		now := c.clock.Now()
		recipients, err = tx.Notifications().CreateBroadcastJobs(ctx, tx.DB(), b, now)
		if err != nil {
			return repoErr(err, nil)
		}
		if err := b.Queue(int(recipients), now); err != nil {
			return err
		}
		return repoErr(tx.Content().SaveBroadcast(ctx, tx.DB(), b), ErrBroadcastNotFound)
	})
	if err != nil {
		return 0, err
	}
	slog.Info("Broadcast queued", "broadcast_id", id, "recipients", recipients)
	return int(recipients), nil
}

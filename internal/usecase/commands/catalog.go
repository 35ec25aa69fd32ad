package commands

import (
	"context"

	"slotbook/internal/domain/catalog"
	"slotbook/internal/pkg/errs"
	"slotbook/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateServiceInput struct {
	Name        string
	Description string
	DurationMin int
	PriceCents  int64
}

type CreateStaffInput struct {
	Name     string
	Title    string
	TimeZone string
}

type CatalogCommands interface {
	CreateService(ctx context.Context, in CreateServiceInput) (uuid.UUID, error)
	CreateStaff(ctx context.Context, in CreateStaffInput) (uuid.UUID, error)
}

type catalogCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewCatalogCommands(uow shared.UnitOfWork) CatalogCommands {
	return &catalogCommandsImpl{uow: uow}
}

func (c *catalogCommandsImpl) CreateService(ctx context.Context, in CreateServiceInput) (uuid.UUID, error) {
	price, err := catalog.NewMoney(in.PriceCents)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	svc, err := catalog.NewService(in.Name, in.Description, in.DurationMin, price)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	var id uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		created, err := tx.Catalog().CreateService(ctx, svc)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		id = created
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (c *catalogCommandsImpl) CreateStaff(ctx context.Context, in CreateStaffInput) (uuid.UUID, error) {
	staff, err := catalog.NewStaff(in.Name, in.Title, in.TimeZone)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	var id uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		created, err := tx.Catalog().CreateStaff(ctx, staff)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		id = created
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

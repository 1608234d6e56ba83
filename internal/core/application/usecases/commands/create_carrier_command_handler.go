package commands

import (
	"context"

	"shipping/internal/core/domain/model/carrier"
)

// CreateCarrierCommandHandler handles the business logic for carrier creation.
type CreateCarrierCommandHandler struct {
	uowFactory CarrierUoWFactory
}

// NewCreateCarrierCommandHandler creates a handler for carrier creation operations.
// Requires a CarrierUoWFactory for transactional persistence.
func NewCreateCarrierCommandHandler(uowFactory CarrierUoWFactory) CreateCarrierCommandHandler {
	return CreateCarrierCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the carrier creation command.
// Creates the carrier with an empty service catalog and persists it within
// a transaction.
func (h *CreateCarrierCommandHandler) Handle(ctx context.Context, cmd CreateCarrierCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	carrierRepo := uow.CarrierRepository()
	aggregate, err := carrier.NewCarrier(cmd.CarrierID(), cmd.Name())
	if err != nil {
		return err
	}

	if err = carrierRepo.Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

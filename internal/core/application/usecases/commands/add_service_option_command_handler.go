package commands

import (
	"context"
)

// AddServiceOptionCommandHandler handles catalog extension for carriers.
// Loads the carrier aggregate, registers the new service type and persists
// the updated catalog within a transaction.
type AddServiceOptionCommandHandler struct {
	uowFactory CarrierUoWFactory
}

// NewAddServiceOptionCommandHandler creates a handler for catalog extension operations.
// Requires a CarrierUoWFactory for transactional persistence.
func NewAddServiceOptionCommandHandler(uowFactory CarrierUoWFactory) AddServiceOptionCommandHandler {
	return AddServiceOptionCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the catalog extension command.
// The carrier aggregate enforces service type uniqueness and preserves
// registration order.
func (h *AddServiceOptionCommandHandler) Handle(ctx context.Context, cmd AddServiceOptionCommand) error {
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
	aggregate, err := carrierRepo.Get(ctx, cmd.CarrierID())
	if err != nil {
		return err
	}

	if err = aggregate.AddServiceOption(
		cmd.ServiceType(),
		cmd.CostPerPackage(),
		cmd.DaysInTransit(),
		cmd.MilesPerDay(),
	); err != nil {
		return err
	}

	if err = carrierRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

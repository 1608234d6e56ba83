package commands_test

import (
	"testing"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/domain/model/carrier"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAddServiceOptionCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	carrierID := kernel.NewUUID()
	milesPerDay, err := kernel.NewMiles(150)
	require.NoError(t, err)
	cmd, err := commands.NewAddServiceOptionCommand(carrierID, "ground", 5, 3, milesPerDay)
	require.NoError(t, err)

	testCarrier, err := carrier.NewCarrier(carrierID, "fedex")
	require.NoError(t, err)

	repo := new(MockCarrierRepository)
	uow := new(MockCarrierUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CarrierRepository").Return(repo).Once(),
		repo.On("Get", ctx, carrierID).Return(testCarrier, nil).Once(),
		repo.On("Update", ctx, testCarrier).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCarrierUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddServiceOptionCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)

	services := testCarrier.Services()
	require.Len(t, services, 1)
	assert.Equal(t, "ground", services[0].ServiceType())
	assert.Equal(t, 5, services[0].CostPerPackage())
	assert.Equal(t, 3, services[0].DaysInTransit())

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestAddServiceOptionCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.AddServiceOptionCommand{} // not constructed properly
	factory := new(MockCarrierUoWFactory)
	h := commands.NewAddServiceOptionCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	factory.AssertNotCalled(t, "Create")
}

func TestAddServiceOptionCommandHandler_Handle_CarrierNotFound(t *testing.T) {
	ctx := t.Context()
	carrierID := kernel.NewUUID()
	milesPerDay, err := kernel.NewMiles(150)
	require.NoError(t, err)
	cmd, err := commands.NewAddServiceOptionCommand(carrierID, "ground", 5, 3, milesPerDay)
	require.NoError(t, err)

	repo := new(MockCarrierRepository)
	uow := new(MockCarrierUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CarrierRepository").Return(repo).Once(),
		repo.On("Get", ctx, carrierID).Return(nil, errs.ErrObjectNotFound).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCarrierUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddServiceOptionCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestAddServiceOptionCommandHandler_Handle_DuplicateServiceType(t *testing.T) {
	ctx := t.Context()
	carrierID := kernel.NewUUID()
	milesPerDay, err := kernel.NewMiles(150)
	require.NoError(t, err)
	cmd, err := commands.NewAddServiceOptionCommand(carrierID, "ground", 5, 3, milesPerDay)
	require.NoError(t, err)

	testCarrier, err := carrier.NewCarrier(carrierID, "fedex")
	require.NoError(t, err)
	require.NoError(t, testCarrier.AddServiceOption("ground", 7, 2, milesPerDay))

	repo := new(MockCarrierRepository)
	uow := new(MockCarrierUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CarrierRepository").Return(repo).Once(),
		repo.On("Get", ctx, carrierID).Return(testCarrier, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCarrierUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddServiceOptionCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, carrier.ErrDuplicateServiceType)
}

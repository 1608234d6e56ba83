package commands_test

import (
	"testing"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateCarrierCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewCreateCarrierCommand(id, "fedex")
	require.NoError(t, err)
	assert.Equal(t, id, cmd.CarrierID())
	assert.Equal(t, "fedex", cmd.Name())
}

func TestNewCreateCarrierCommand_InvalidCarrierID(t *testing.T) {
	invalidID := kernel.UUID{} // zero value, should trigger validation error
	_, err := commands.NewCreateCarrierCommand(invalidID, "fedex")
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewCreateCarrierCommand_EmptyName(t *testing.T) {
	_, err := commands.NewCreateCarrierCommand(kernel.NewUUID(), "")
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCarrierNameIsRequired)
}

func TestCreateCarrierCommand_Validate_NotConstructed(t *testing.T) {
	var cmd commands.CreateCarrierCommand
	err := cmd.Validate()
	require.ErrorIs(t, err, commands.ErrCreateCarrierCommandIsNotConstructed)
}

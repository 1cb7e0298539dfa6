package commands_test

import (
	"testing"

	"kitchen/internal/core/application/usecases/commands"
	"kitchen/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAssignStationCommand_ValidInput(t *testing.T) {
	orderID := kernel.NewUUID()
	stationID := kernel.NewUUID()

	cmd, err := commands.NewAssignStationCommand(orderID, stationID)
	require.NoError(t, err)
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, stationID, cmd.StationID())
}

func TestNewAssignStationCommand_InvalidOrderID(t *testing.T) {
	_, err := commands.NewAssignStationCommand(kernel.UUID{}, kernel.NewUUID())
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewAssignStationCommand_InvalidStationID(t *testing.T) {
	_, err := commands.NewAssignStationCommand(kernel.NewUUID(), kernel.UUID{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestAssignStationCommand_ValidateZeroValue(t *testing.T) {
	var cmd commands.AssignStationCommand
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrAssignStationCommandIsNotConstructed)
}

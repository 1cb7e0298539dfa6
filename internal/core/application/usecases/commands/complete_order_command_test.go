package commands_test

import (
	"testing"

	"kitchen/internal/core/application/usecases/commands"
	"kitchen/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCompleteOrderCommand_ValidInput(t *testing.T) {
	orderID := kernel.NewUUID()

	cmd, err := commands.NewCompleteOrderCommand(orderID)
	require.NoError(t, err)
	assert.Equal(t, orderID, cmd.OrderID())
}

func TestNewCompleteOrderCommand_InvalidOrderID(t *testing.T) {
	_, err := commands.NewCompleteOrderCommand(kernel.UUID{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestCompleteOrderCommand_ValidateZeroValue(t *testing.T) {
	var cmd commands.CompleteOrderCommand
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCompleteOrderCommandIsNotConstructed)
}

package commands_test

import (
	"testing"

	"fleet/internal/core/application/usecases/commands"
	"fleet/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAssignVehicleCommand(t *testing.T) {
	t.Run("valid ids", func(t *testing.T) {
		driverID := kernel.NewUUID()
		vehicleID := kernel.NewUUID()

		cmd, err := commands.NewAssignVehicleCommand(driverID, vehicleID)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, cmd.DriverID().IsEqual(driverID))
		assert.True(t, cmd.VehicleID().IsEqual(vehicleID))
	})

	t.Run("invalid driver id", func(t *testing.T) {
		_, err := commands.NewAssignVehicleCommand(kernel.UUID{}, kernel.NewUUID())
		require.Error(t, err)
	})

	t.Run("invalid vehicle id", func(t *testing.T) {
		_, err := commands.NewAssignVehicleCommand(kernel.NewUUID(), kernel.UUID{})
		require.Error(t, err)
	})

	t.Run("zero value command fails validation", func(t *testing.T) {
		var cmd commands.AssignVehicleCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrAssignVehicleCommandIsNotConstructed)
	})
}

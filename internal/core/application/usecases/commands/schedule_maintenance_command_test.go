package commands_test

import (
	"testing"
	"time"

	"fleet/internal/core/application/usecases/commands"
	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/core/domain/model/maintenance"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewScheduleMaintenanceCommand(t *testing.T) {
	scheduledAt := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)

	t.Run("valid command generates record id", func(t *testing.T) {
		vehicleID := kernel.NewUUID()

		cmd, err := commands.NewScheduleMaintenanceCommand(
			vehicleID, scheduledAt, maintenance.TypePreventive, "oil change")

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		require.NoError(t, cmd.RecordID().Validate())
		assert.True(t, cmd.VehicleID().IsEqual(vehicleID))
		assert.Equal(t, scheduledAt, cmd.ScheduledAt())
		assert.Equal(t, maintenance.TypePreventive, cmd.Type())
		assert.Equal(t, "oil change", cmd.Notes())
	})

	t.Run("zero scheduledAt is rejected", func(t *testing.T) {
		_, err := commands.NewScheduleMaintenanceCommand(
			kernel.NewUUID(), time.Time{}, maintenance.TypePreventive, "")
		require.ErrorIs(t, err, maintenance.ErrScheduledAtIsRequired)
	})

	t.Run("unknown type is rejected", func(t *testing.T) {
		_, err := commands.NewScheduleMaintenanceCommand(
			kernel.NewUUID(), scheduledAt, maintenance.TypeUnknown, "")
		require.Error(t, err)
	})

	t.Run("zero value command fails validation", func(t *testing.T) {
		var cmd commands.ScheduleMaintenanceCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrScheduleMaintenanceCommandIsNotConstructed)
	})
}

func TestNewTransitionMaintenanceCommand(t *testing.T) {
	t.Run("valid command", func(t *testing.T) {
		recordID := kernel.NewUUID()

		cmd, err := commands.NewTransitionMaintenanceCommand(recordID, maintenance.StatusCancelled)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, cmd.RecordID().IsEqual(recordID))
		assert.Equal(t, maintenance.StatusCancelled, cmd.Target())
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		_, err := commands.NewTransitionMaintenanceCommand(kernel.NewUUID(), maintenance.StatusUnknown)
		require.Error(t, err)
	})
}

func TestNewCreateCommands(t *testing.T) {
	t.Run("create driver", func(t *testing.T) {
		cmd, err := commands.NewCreateDriverCommand("John Doe", "B-12345")
		require.NoError(t, err)
		require.NoError(t, cmd.DriverID().Validate())
		assert.Equal(t, "John Doe", cmd.Name())
		assert.Equal(t, "B-12345", cmd.LicenseCode())

		_, err = commands.NewCreateDriverCommand("", "B-12345")
		require.ErrorIs(t, err, commands.ErrNameIsRequired)

		_, err = commands.NewCreateDriverCommand("John Doe", "")
		require.ErrorIs(t, err, commands.ErrLicenseCodeIsRequired)
	})

	t.Run("create vehicle", func(t *testing.T) {
		cmd, err := commands.NewCreateVehicleCommand("A 123 BC", 1500)
		require.NoError(t, err)
		assert.Equal(t, "A 123 BC", cmd.Plate())
		assert.Equal(t, 1500, cmd.Capacity())

		_, err = commands.NewCreateVehicleCommand("", 1500)
		require.ErrorIs(t, err, commands.ErrPlateIsRequired)

		_, err = commands.NewCreateVehicleCommand("A 123 BC", 0)
		require.ErrorIs(t, err, commands.ErrCapacityIsInvalid)
	})

	t.Run("create order", func(t *testing.T) {
		cmd, err := commands.NewCreateOrderCommand(250)
		require.NoError(t, err)
		assert.Equal(t, 250, cmd.Weight())

		_, err = commands.NewCreateOrderCommand(-1)
		require.ErrorIs(t, err, commands.ErrWeightIsInvalid)
	})
}

package commands

import (
	"errors"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/pkg/guard"
)

var ErrUnassignVehicleCommandIsNotConstructed = errors.New(
	"UnassignVehicleCommand must be created via NewUnassignVehicleCommand constructor",
)

// UnassignVehicleCommand represents a request to release a vehicle from its
// driver. Unassigning an unbound vehicle is a no-op, not an error.
type UnassignVehicleCommand struct { //nolint:recvcheck //using for validation
	vehicleID kernel.UUID

	guard guard.ConstructorGuard
}

// NewUnassignVehicleCommand creates a command to release the given vehicle.
func NewUnassignVehicleCommand(vehicleID kernel.UUID) (UnassignVehicleCommand, error) {
	command := UnassignVehicleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setVehicleID(vehicleID); err != nil {
		return UnassignVehicleCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUnassignVehicleCommandIsNotConstructed if validation fails.
func (c UnassignVehicleCommand) Validate() error {
	return c.guard.Validate(ErrUnassignVehicleCommandIsNotConstructed)
}

// VehicleID returns the vehicle ID from the command.
func (c UnassignVehicleCommand) VehicleID() kernel.UUID {
	return c.vehicleID
}

func (c *UnassignVehicleCommand) setVehicleID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.vehicleID = id
	return nil
}

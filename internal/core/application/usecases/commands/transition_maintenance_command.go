package commands

import (
	"errors"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/core/domain/model/maintenance"
	"fleet/internal/pkg/guard"
)

var ErrTransitionMaintenanceCommandIsNotConstructed = errors.New(
	"TransitionMaintenanceCommand must be created via NewTransitionMaintenanceCommand constructor",
)

// TransitionMaintenanceCommand represents a request to move a maintenance
// record to a new lifecycle state.
type TransitionMaintenanceCommand struct { //nolint:recvcheck //using for validation
	recordID kernel.UUID
	target   maintenance.Status

	guard guard.ConstructorGuard
}

// NewTransitionMaintenanceCommand creates a command to move recordID to target.
func NewTransitionMaintenanceCommand(
	recordID kernel.UUID,
	target maintenance.Status,
) (TransitionMaintenanceCommand, error) {
	command := TransitionMaintenanceCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setRecordID(recordID),
		command.setTarget(target),
	); err != nil {
		return TransitionMaintenanceCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrTransitionMaintenanceCommandIsNotConstructed if validation fails.
func (c TransitionMaintenanceCommand) Validate() error {
	return c.guard.Validate(ErrTransitionMaintenanceCommandIsNotConstructed)
}

// RecordID returns the maintenance record ID from the command.
func (c TransitionMaintenanceCommand) RecordID() kernel.UUID {
	return c.recordID
}

// Target returns the requested lifecycle state.
func (c TransitionMaintenanceCommand) Target() maintenance.Status {
	return c.target
}

func (c *TransitionMaintenanceCommand) setRecordID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.recordID = id
	return nil
}

func (c *TransitionMaintenanceCommand) setTarget(target maintenance.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}

	c.target = target
	return nil
}

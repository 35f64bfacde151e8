package commands

import (
	"errors"
	"time"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/core/domain/model/maintenance"
	"fleet/internal/pkg/guard"
)

var ErrScheduleMaintenanceCommandIsNotConstructed = errors.New(
	"ScheduleMaintenanceCommand must be created via NewScheduleMaintenanceCommand constructor",
)

// ScheduleMaintenanceCommand represents a request to book maintenance for a
// vehicle at a point in time. A record ID is generated on construction so
// callers can reference the created record after Handle succeeds.
type ScheduleMaintenanceCommand struct { //nolint:recvcheck //using for validation
	recordID    kernel.UUID
	vehicleID   kernel.UUID
	scheduledAt time.Time
	mType       maintenance.Type
	notes       string

	guard guard.ConstructorGuard
}

// NewScheduleMaintenanceCommand creates a command to schedule maintenance.
// Notes may be empty. The past-date check belongs to the handler, where the
// clock is injected.
func NewScheduleMaintenanceCommand(
	vehicleID kernel.UUID,
	scheduledAt time.Time,
	mType maintenance.Type,
	notes string,
) (ScheduleMaintenanceCommand, error) {
	command := ScheduleMaintenanceCommand{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setRecordID(kernel.NewUUID()),
		command.setVehicleID(vehicleID),
		command.setScheduledAt(scheduledAt),
		command.setType(mType),
	); err != nil {
		return ScheduleMaintenanceCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrScheduleMaintenanceCommandIsNotConstructed if validation fails.
func (c ScheduleMaintenanceCommand) Validate() error {
	return c.guard.Validate(ErrScheduleMaintenanceCommandIsNotConstructed)
}

// RecordID returns the generated maintenance record ID.
func (c ScheduleMaintenanceCommand) RecordID() kernel.UUID {
	return c.recordID
}

// VehicleID returns the vehicle ID from the command.
func (c ScheduleMaintenanceCommand) VehicleID() kernel.UUID {
	return c.vehicleID
}

// ScheduledAt returns the requested maintenance time.
func (c ScheduleMaintenanceCommand) ScheduledAt() time.Time {
	return c.scheduledAt
}

// Type returns the maintenance type from the command.
func (c ScheduleMaintenanceCommand) Type() maintenance.Type {
	return c.mType
}

// Notes returns the free-form notes from the command.
func (c ScheduleMaintenanceCommand) Notes() string {
	return c.notes
}

func (c *ScheduleMaintenanceCommand) setRecordID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.recordID = id
	return nil
}

func (c *ScheduleMaintenanceCommand) setVehicleID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.vehicleID = id
	return nil
}

func (c *ScheduleMaintenanceCommand) setScheduledAt(scheduledAt time.Time) error {
	if scheduledAt.IsZero() {
		return maintenance.ErrScheduledAtIsRequired
	}

	c.scheduledAt = scheduledAt
	return nil
}

func (c *ScheduleMaintenanceCommand) setType(mType maintenance.Type) error {
	if err := mType.Validate(); err != nil {
		return err
	}

	c.mType = mType
	return nil
}

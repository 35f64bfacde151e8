package maintenance

import (
	"errors"
	"time"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/pkg/errs"
	"fleet/internal/pkg/guard"
)

// ConflictWindow is the interval around a record's scheduled time within
// which no other non-terminal record for the same vehicle may be scheduled.
// The boundary is inclusive: two records exactly 24h apart conflict.
const ConflictWindow = 24 * time.Hour

// Domain errors for maintenance records.
var (
	// ErrScheduledAtIsRequired is returned when creating a record without a scheduled time.
	ErrScheduledAtIsRequired = errs.NewValueIsRequiredError("scheduled at")
	// ErrRecordIsNotConstructed is returned when using an improperly initialized MaintenanceRecord.
	ErrRecordIsNotConstructed = errors.New("MaintenanceRecord must be created via NewMaintenanceRecord constructor")
	// ErrScheduledAtInPast is returned when scheduling maintenance strictly before the current time.
	ErrScheduledAtInPast = errors.New("maintenance cannot be scheduled in the past")
	// ErrSchedulingConflict is returned when another non-terminal record for the
	// same vehicle falls within the conflict window.
	ErrSchedulingConflict = errors.New("another maintenance is scheduled within the conflict window")
	// ErrPerformedAtInconsistent is returned when restoring a record whose
	// performedAt does not match its status: the timestamp is set if and only
	// if the record is completed.
	ErrPerformedAtInconsistent = errors.New("performedAt must be set exactly when the record is completed")
)

// MaintenanceRecord is the aggregate root for a scheduled maintenance window
// on a vehicle. Records are never deleted; they only move through the Status
// state machine until they reach a terminal state.
type MaintenanceRecord struct {
	// id uniquely identifies the record
	id kernel.UUID
	// vehicleID references the vehicle under maintenance
	vehicleID kernel.UUID
	// scheduledAt is when the maintenance window opens
	scheduledAt time.Time
	// performedAt is set when the record completes, nil otherwise
	performedAt *time.Time
	// mType classifies the work as preventive or corrective
	mType Type
	// notes is free text, may be empty
	notes string
	// status is the current state machine position
	status Status
	// guard ensures the record was properly constructed
	guard guard.ConstructorGuard
}

// NewMaintenanceRecord creates a record in the Pending state.
// Notes may be empty; scheduledAt must be non-zero. Whether scheduledAt lies
// in the future is the scheduling workflow's check, not the constructor's,
// so records with past dates can still be restored from storage.
func NewMaintenanceRecord(
	id kernel.UUID,
	vehicleID kernel.UUID,
	scheduledAt time.Time,
	mType Type,
	notes string,
) (*MaintenanceRecord, error) {
	r := &MaintenanceRecord{
		status: StatusPending,
		notes:  notes,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setVehicleID(vehicleID),
		r.setScheduledAt(scheduledAt),
		r.setType(mType),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreMaintenanceRecord reconstructs a record from persistent storage.
// The performedAt/status consistency invariant is verified: a completed
// record must carry a performedAt timestamp and no other record may.
func RestoreMaintenanceRecord(
	id kernel.UUID,
	vehicleID kernel.UUID,
	scheduledAt time.Time,
	performedAt *time.Time,
	mType Type,
	notes string,
	status Status,
) (*MaintenanceRecord, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	if (performedAt != nil) != (status == StatusCompleted) {
		return nil, ErrPerformedAtInconsistent
	}

	r := &MaintenanceRecord{
		status: status,
		notes:  notes,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setVehicleID(vehicleID),
		r.setScheduledAt(scheduledAt),
		r.setType(mType),
	); err != nil {
		return nil, err
	}

	if performedAt != nil {
		t := *performedAt
		r.performedAt = &t
	}

	return r, nil
}

// Validate checks that the record was created through its constructor.
func (r *MaintenanceRecord) Validate() error {
	if r == nil {
		return ErrRecordIsNotConstructed
	}
	return r.guard.Validate(ErrRecordIsNotConstructed)
}

// IsEqual compares two records by identifier.
func (r *MaintenanceRecord) IsEqual(other *MaintenanceRecord) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the record's unique identifier.
func (r *MaintenanceRecord) ID() kernel.UUID {
	return r.id
}

// VehicleID returns the identifier of the vehicle under maintenance.
func (r *MaintenanceRecord) VehicleID() kernel.UUID {
	return r.vehicleID
}

// ScheduledAt returns when the maintenance window opens.
func (r *MaintenanceRecord) ScheduledAt() time.Time {
	return r.scheduledAt
}

// PerformedAt returns when the work completed, or nil while the record is
// not completed. A copy is returned.
func (r *MaintenanceRecord) PerformedAt() *time.Time {
	if r.performedAt == nil {
		return nil
	}
	t := *r.performedAt
	return &t
}

// Type returns the maintenance classification.
func (r *MaintenanceRecord) Type() Type {
	return r.mType
}

// Notes returns the free-text notes.
func (r *MaintenanceRecord) Notes() string {
	return r.notes
}

// Status returns the current state machine position.
func (r *MaintenanceRecord) Status() Status {
	return r.status
}

// TransitionTo moves the record to target, enforcing the state machine.
// When the target is Completed, performedAt is set to now. The record is
// unchanged when the transition is rejected.
func (r *MaintenanceRecord) TransitionTo(target Status, now time.Time) error {
	newStatus, err := r.status.TransitionTo(target)
	if err != nil {
		return err
	}

	if newStatus == StatusCompleted {
		t := now
		r.performedAt = &t
	}

	r.status = newStatus
	return nil
}

func (r *MaintenanceRecord) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *MaintenanceRecord) setVehicleID(vehicleID kernel.UUID) error {
	if err := vehicleID.Validate(); err != nil {
		return err
	}
	r.vehicleID = vehicleID
	return nil
}

func (r *MaintenanceRecord) setScheduledAt(scheduledAt time.Time) error {
	if scheduledAt.IsZero() {
		return ErrScheduledAtIsRequired
	}
	r.scheduledAt = scheduledAt
	return nil
}

func (r *MaintenanceRecord) setType(mType Type) error {
	if err := mType.Validate(); err != nil {
		return err
	}
	r.mType = mType
	return nil
}

package driver

import (
	"errors"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/pkg/errs"
	"fleet/internal/pkg/guard"
)

// Domain errors for driver operations.
var (
	// ErrNameIsRequired is returned when creating a driver without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrLicenseCodeIsRequired is returned when creating a driver without a license code.
	ErrLicenseCodeIsRequired = errs.NewValueIsRequiredError("license code")
	// ErrDriverIsNotConstructed is returned when using an improperly initialized Driver.
	ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver constructor")
	// ErrDriverIsNotActive is returned when an operation requires an active driver.
	ErrDriverIsNotActive = errors.New("driver is not active")
)

// Driver is the aggregate root for a fleet driver. A driver may be bound to
// vehicles, but the binding itself is owned by the Vehicle aggregate: the
// driver holds no vehicle list, avoiding a second source of truth.
//
// Business rules:
//   - Drivers are created active and must have a name and a license code
//   - Only active drivers may be bound to vehicles
type Driver struct {
	// id uniquely identifies the driver
	id kernel.UUID
	// name is the driver's display name
	name string
	// licenseCode is the driving license identifier
	licenseCode string
	// active reports whether the driver may be bound to vehicles
	active bool
	// guard ensures the driver was properly constructed
	guard guard.ConstructorGuard
}

// NewDriver creates an active Driver. This is the only way to create a valid
// Driver for a fresh registration; use RestoreDriver when loading from storage.
func NewDriver(id kernel.UUID, name, licenseCode string) (*Driver, error) {
	d := &Driver{
		active: true,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setName(name),
		d.setLicenseCode(licenseCode),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDriver reconstructs a Driver from persistent storage, preserving
// its activity flag.
func RestoreDriver(id kernel.UUID, name, licenseCode string, active bool) (*Driver, error) {
	d := &Driver{
		active: active,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setName(name),
		d.setLicenseCode(licenseCode),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// Validate checks that the Driver was created through its constructor.
func (d *Driver) Validate() error {
	if d == nil {
		return ErrDriverIsNotConstructed
	}
	return d.guard.Validate(ErrDriverIsNotConstructed)
}

// IsEqual compares two drivers by identifier.
func (d *Driver) IsEqual(other *Driver) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the driver's unique identifier.
func (d *Driver) ID() kernel.UUID {
	return d.id
}

// Name returns the driver's display name.
func (d *Driver) Name() string {
	return d.name
}

// LicenseCode returns the driving license identifier.
func (d *Driver) LicenseCode() string {
	return d.licenseCode
}

// IsActive reports whether the driver may be bound to vehicles.
func (d *Driver) IsActive() bool {
	return d.active
}

// EnsureActive returns ErrDriverIsNotActive when the driver is deactivated.
func (d *Driver) EnsureActive() error {
	if !d.active {
		return ErrDriverIsNotActive
	}
	return nil
}

// Activate marks the driver as active.
func (d *Driver) Activate() {
	d.active = true
}

// Deactivate marks the driver as inactive. Existing bindings are not touched
// here; unbinding is the assignment workflow's responsibility.
func (d *Driver) Deactivate() {
	d.active = false
}

func (d *Driver) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Driver) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	d.name = name
	return nil
}

func (d *Driver) setLicenseCode(licenseCode string) error {
	if licenseCode == "" {
		return ErrLicenseCodeIsRequired
	}
	d.licenseCode = licenseCode
	return nil
}

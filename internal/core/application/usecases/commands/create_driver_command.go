package commands

import (
	"errors"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/pkg/guard"
)

var (
	ErrCreateDriverCommandIsNotConstructed = errors.New(
		"CreateDriverCommand must be created via NewCreateDriverCommand constructor",
	)
	ErrNameIsRequired        = errors.New("name is required")
	ErrLicenseCodeIsRequired = errors.New("license code is required")
)

// CreateDriverCommand represents a request to register a new driver.
// Automatically generates a unique ID for the driver.
type CreateDriverCommand struct { //nolint:recvcheck //using for validation
	driverID    kernel.UUID
	name        string
	licenseCode string

	guard guard.ConstructorGuard
}

// NewCreateDriverCommand creates a command to register a new driver.
func NewCreateDriverCommand(name, licenseCode string) (CreateDriverCommand, error) {
	command := CreateDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDriverID(kernel.NewUUID()),
		command.setName(name),
		command.setLicenseCode(licenseCode),
	); err != nil {
		return CreateDriverCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDriverCommand) Validate() error {
	return c.guard.Validate(ErrCreateDriverCommandIsNotConstructed)
}

// DriverID returns the generated driver ID.
func (c CreateDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}

// Name returns the driver name from the command.
func (c CreateDriverCommand) Name() string {
	return c.name
}

// LicenseCode returns the license code from the command.
func (c CreateDriverCommand) LicenseCode() string {
	return c.licenseCode
}

func (c *CreateDriverCommand) setDriverID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.driverID = id
	return nil
}

func (c *CreateDriverCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateDriverCommand) setLicenseCode(licenseCode string) error {
	if licenseCode == "" {
		return ErrLicenseCodeIsRequired
	}

	c.licenseCode = licenseCode
	return nil
}

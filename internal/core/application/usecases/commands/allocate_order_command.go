package commands

import (
	"errors"

	"fleet/internal/pkg/guard"
)

var ErrAllocateOrderCommandIsNotConstructed = errors.New(
	"AllocateOrderCommand must be created via NewAllocateOrderCommand constructor",
)

// AllocateOrderCommand triggers the placement of one pending order onto a
// manned vehicle. This is a parameterless command; the handler picks the
// first order in Created status.
type AllocateOrderCommand struct {
	guard guard.ConstructorGuard
}

// NewAllocateOrderCommand creates a new command to trigger order allocation.
func NewAllocateOrderCommand() AllocateOrderCommand {
	return AllocateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *AllocateOrderCommand) Validate() error {
	return c.guard.Validate(
		ErrAllocateOrderCommandIsNotConstructed,
	)
}

package commands

import (
	"errors"

	"kitchen/internal/pkg/guard"
)

var ErrEscalatePrioritiesCommandIsNotConstructed = errors.New(
	"EscalatePrioritiesCommand must be created via NewEscalatePrioritiesCommand constructor",
)

// EscalatePrioritiesCommand triggers a sweep over all active orders, raising
// the priority of any order that has waited past its escalation timeout.
// The command carries no parameters; it exists to keep the scheduled job on
// the same validated command path as every other write operation.
type EscalatePrioritiesCommand struct {
	guard guard.ConstructorGuard
}

// NewEscalatePrioritiesCommand creates a command to run an escalation sweep.
func NewEscalatePrioritiesCommand() EscalatePrioritiesCommand {
	return EscalatePrioritiesCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c EscalatePrioritiesCommand) Validate() error {
	return c.guard.Validate(ErrEscalatePrioritiesCommandIsNotConstructed)
}

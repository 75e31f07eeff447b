package commands

import (
	"errors"

	"bakery/internal/pkg/guard"
)

var ErrDispatchDueOrdersCommandIsNotConstructed = errors.New(
	"DispatchDueOrdersCommand must be created via NewDispatchDueOrdersCommand constructor",
)

// DispatchDueOrdersCommand requests one auto-dispatch sweep over today's orders.
// This is a parameterless command; "today" and the hour come from the business clock.
type DispatchDueOrdersCommand struct {
	guard guard.ConstructorGuard
}

func NewDispatchDueOrdersCommand() DispatchDueOrdersCommand {
	return DispatchDueOrdersCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c DispatchDueOrdersCommand) Validate() error {
	return c.guard.Validate(ErrDispatchDueOrdersCommandIsNotConstructed)
}

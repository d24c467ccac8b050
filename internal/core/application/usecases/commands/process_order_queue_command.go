package commands

import (
	"errors"

	"github.com/M-o-m-e-n/restaurant-ordering-system/internal/pkg/guard"
)

var ErrProcessOrderQueueCommandIsNotConstructed = errors.New(
	"ProcessOrderQueueCommand must be created via NewProcessOrderQueueCommand constructor",
)

// ProcessOrderQueueCommand represents a request to drain the background
// order queue. The command carries no parameters.
type ProcessOrderQueueCommand struct {
	guard guard.ConstructorGuard
}

// NewProcessOrderQueueCommand creates a command to drain the queue.
func NewProcessOrderQueueCommand() ProcessOrderQueueCommand {
	return ProcessOrderQueueCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c ProcessOrderQueueCommand) Validate() error {
	return c.guard.Validate(ErrProcessOrderQueueCommandIsNotConstructed)
}

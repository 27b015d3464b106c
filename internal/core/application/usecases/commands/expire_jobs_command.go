package commands

import (
	"errors"

	"campuseats/internal/pkg/guard"
)

var (
	ErrExpireJobsCommandIsNotConstructed = errors.New(
		"ExpireJobsCommand must be created via NewExpireJobsCommand constructor",
	)
)

// ExpireJobsCommand triggers the expiry sweep over the job board.
// Jobs past their deadline are taken off the board and their backing orders
// move to the terminal ExpiredNoCourier status.
//
// Example:
//
//	cmd := NewExpireJobsCommand()
//	handler := NewExpireJobsCommandHandler(uowFactory)
//
//	// Run every second so couriers never see a claimable expired job.
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("expiry sweep failed: %v", err)
//	}
type ExpireJobsCommand struct {
	guard guard.ConstructorGuard
}

// NewExpireJobsCommand creates a command to sweep expired jobs.
// This is a parameterless command that processes the whole board.
func NewExpireJobsCommand() ExpireJobsCommand {
	return ExpireJobsCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrExpireJobsCommandIsNotConstructed if validation fails.
func (c ExpireJobsCommand) Validate() error {
	return c.guard.Validate(ErrExpireJobsCommandIsNotConstructed)
}

package commands

import (
	"errors"

	"campuseats/internal/core/domain/model/kernel"
	"campuseats/internal/pkg/guard"
)

var (
	ErrAcceptJobCommandIsNotConstructed = errors.New(
		"AcceptJobCommand must be created via NewAcceptJobCommand constructor",
	)
)

// AcceptJobCommand represents a courier's attempt to claim an open job.
//
// Example:
//
//	cmd, err := NewAcceptJobCommand(jobID, courierID)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewAcceptJobCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    // a conflict error here means another courier got there first
//	    return err
//	}
type AcceptJobCommand struct { //nolint:recvcheck //using for validation
	jobID     kernel.UUID
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAcceptJobCommand creates a command for a courier to claim a job.
// Validates both identifiers.
func NewAcceptJobCommand(jobID kernel.UUID, courierID kernel.UUID) (AcceptJobCommand, error) {
	acceptCommand := AcceptJobCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		acceptCommand.setJobID(jobID),
		acceptCommand.setCourierID(courierID),
	); err != nil {
		return AcceptJobCommand{}, err
	}

	return acceptCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAcceptJobCommandIsNotConstructed if validation fails.
func (c AcceptJobCommand) Validate() error {
	return c.guard.Validate(ErrAcceptJobCommandIsNotConstructed)
}

// JobID returns the identifier of the job being claimed.
func (c AcceptJobCommand) JobID() kernel.UUID {
	return c.jobID
}

// CourierID returns the identifier of the claiming courier.
func (c AcceptJobCommand) CourierID() kernel.UUID {
	return c.courierID
}

func (c *AcceptJobCommand) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}

	c.jobID = jobID
	return nil
}

func (c *AcceptJobCommand) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	c.courierID = courierID
	return nil
}

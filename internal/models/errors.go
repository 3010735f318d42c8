package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	// ErrInvalidAmount is returned when a target amount is not positive or
	// an update would push it below the amount already invested.
	ErrInvalidAmount = errors.New("the full amount must be positive and may never be lower than the invested amount")

	// ErrClosedProject is returned for edits to fully invested projects.
	ErrClosedProject = errors.New("a closed project cannot be edited")

	// ErrFundedEntity is returned when a resource that already received or
	// distributed funds is deleted.
	ErrFundedEntity = errors.New("a resource with invested funds cannot be deleted")

	// ErrAllocationConflict is returned when a concurrent allocation pass
	// touched the same counterparts. The request can be retried.
	ErrAllocationConflict = errors.New("another allocation is in progress, please retry")

	ErrProjectNameNotUnique = errors.New("the name of the charity project must be unique")
	ErrNameRequired         = errors.New("the name must be set")
	ErrDescriptionRequired  = errors.New("the description must be set")
)

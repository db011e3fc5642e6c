package deliverygroup

import (
	"fmt"

	"retail/internal/pkg/errs"
)

type Status int

const (
	Unknown Status = iota
	Preparing
	Completed
)

func (s Status) String() string {
	switch s {
	case Preparing:
		return "preparing"
	case Completed:
		return "completed"
	default:
		return "unknown"
	}
}

func (s Status) Validate() error {
	if s != Preparing && s != Completed {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// Complete moves Preparing to Completed.
func (s Status) Complete() (Status, error) {
	if s != Preparing {
		return Unknown, errs.NewOperationNotAllowedErrorWithCause(
			"status transition is not allowed",
			fmt.Errorf("%s is not a valid status to complete", s),
		)
	}
	return Completed, nil
}

package sale

import (
	"fmt"

	"retail/internal/pkg/errs"
)

type Status int

const (
	Unknown Status = iota
	Completed
	Cancelled
)

func (s Status) String() string {
	switch s {
	case Completed:
		return "completed"
	case Cancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

func ParseStatus(s string) (Status, error) {
	for _, status := range []Status{Completed, Cancelled} {
		if status.String() == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a sale status", s))
}

func (s Status) Validate() error {
	if s != Completed && s != Cancelled {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

package delivery

import (
	"fmt"

	"retail/internal/pkg/errs"
)

// Status is the lifecycle state of a delivery. It is persisted as an integer;
// the string form is used on the API.
type Status int

const (
	// Unknown catches uninitialized values.
	Unknown Status = iota
	Pending
	Assigned
	InProgress
	Delivered
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Pending:    "pending",
		Assigned:   "assigned",
		InProgress: "in_progress",
		Delivered:  "delivered",
		Cancelled:  "cancelled",
	}
}

// ParseStatus maps the API representation back to a Status.
func ParseStatus(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if status != Unknown && str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a delivery status", s))
}

func (s Status) Validate() error {
	if s < Pending || s > Cancelled {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsFinal reports whether no transition leaves s.
func (s Status) IsFinal() bool {
	return s == Delivered || s == Cancelled
}

// Assign moves Pending to Assigned. Only pending deliveries can be taken.
func (s Status) Assign() (Status, error) {
	if s != Pending {
		return Unknown, transitionError(s, "assign")
	}
	return Assigned, nil
}

// StartDispatch moves Assigned to InProgress when the delivery is loaded
// into a delivery group.
func (s Status) StartDispatch() (Status, error) {
	if s != Assigned {
		return Unknown, transitionError(s, "dispatch")
	}
	return InProgress, nil
}

// Complete moves Assigned or InProgress to Delivered.
func (s Status) Complete() (Status, error) {
	if s != Assigned && s != InProgress {
		return Unknown, transitionError(s, "complete")
	}
	return Delivered, nil
}

// Cancel moves any non-final status to Cancelled.
func (s Status) Cancel() (Status, error) {
	if err := s.Validate(); err != nil {
		return Unknown, err
	}
	if s.IsFinal() {
		return Unknown, transitionError(s, "cancel")
	}
	return Cancelled, nil
}

// ValidateCanHaveStorekeeper checks the status/assignee consistency:
// Pending deliveries have nobody assigned, Assigned, InProgress and
// Delivered ones always do. Cancelled allows both.
func (s Status) ValidateCanHaveStorekeeper(assigned bool) error {
	switch {
	case assigned && s == Pending:
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have a storekeeper", s),
		)
	case !assigned && (s == Assigned || s == InProgress || s == Delivered):
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have no storekeeper", s),
		)
	}
	return nil
}

func transitionError(from Status, action string) error {
	return errs.NewOperationNotAllowedErrorWithCause(
		"status transition is not allowed",
		fmt.Errorf("%s is not a valid status to %s", from, action),
	)
}

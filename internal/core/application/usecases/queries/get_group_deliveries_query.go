package queries

import (
	"errors"

	"retail/internal/core/domain/model/kernel"
	"retail/internal/pkg/guard"
)

var ErrGetGroupDeliveriesQueryIsNotConstructed = errors.New(
	"GetGroupDeliveriesQuery must be created via NewGetGroupDeliveriesQuery constructor",
)

type GetGroupDeliveriesQuery struct {
	groupID kernel.UUID
	guard   guard.ConstructorGuard
}

func NewGetGroupDeliveriesQuery(groupID kernel.UUID) (GetGroupDeliveriesQuery, error) {
	if err := groupID.Validate(); err != nil {
		return GetGroupDeliveriesQuery{}, err
	}
	return GetGroupDeliveriesQuery{groupID: groupID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetGroupDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetGroupDeliveriesQueryIsNotConstructed)
}

func (q GetGroupDeliveriesQuery) GroupID() kernel.UUID {
	return q.groupID
}

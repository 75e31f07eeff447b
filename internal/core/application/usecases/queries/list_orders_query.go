// Package queries contains read operations over orders.
// Queries never change order data themselves; the listing may trigger the
// auto-dispatch sweep through a separate command before it reads.
package queries

import (
	"errors"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"
	"bakery/internal/core/ports"
	"bakery/internal/pkg/errs"
	"bakery/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersInput holds the raw listing filters. Nil fields do not restrict.
type ListOrdersInput struct {
	DeliveryDate       *string
	CustomerLocationID *int64
	CompanyID          *int64
	Status             *string
}

// ListOrdersQuery lists orders matching every given filter, ordered by id.
//
// Example:
//
//	date := "2024-06-11"
//	query, err := NewListOrdersQuery(ListOrdersInput{DeliveryDate: &date})
//	if err != nil {
//	    return err
//	}
//	orders, err := handler.Handle(ctx, query)
type ListOrdersQuery struct {
	filter ports.OrderFilter

	guard guard.ConstructorGuard
}

func NewListOrdersQuery(in ListOrdersInput) (ListOrdersQuery, error) {
	q := ListOrdersQuery{guard: guard.NewConstructorGuard()}

	var errList []error
	if in.DeliveryDate != nil {
		d, err := kernel.ParseDate(*in.DeliveryDate)
		if err != nil {
			errList = append(errList, errs.NewValueIsInvalidErrorWithCause("fecha_entrega", err))
		} else {
			q.filter.DeliveryDate = &d
		}
	}
	if in.CustomerLocationID != nil {
		id := *in.CustomerLocationID
		q.filter.CustomerLocationID = &id
	}
	if in.CompanyID != nil {
		id := *in.CompanyID
		q.filter.CompanyID = &id
	}
	if in.Status != nil {
		s, err := order.ParseStatus(*in.Status)
		if err != nil {
			errList = append(errList, err)
		} else {
			q.filter.Status = &s
		}
	}

	if err := errors.Join(errList...); err != nil {
		return ListOrdersQuery{}, err
	}
	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) Filter() ports.OrderFilter {
	return q.filter
}

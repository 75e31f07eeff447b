package ports

import (
	"context"

	"bakery/internal/core/domain/model/customer"
)

// CustomerLocationRepository looks up delivery locations.
type CustomerLocationRepository interface {
	// Get returns the location or errs.ObjectNotFoundError.
	Get(ctx context.Context, id int64) (*customer.Location, error)
}

// CompanyRepository looks up client companies.
type CompanyRepository interface {
	// Get returns the company or errs.ObjectNotFoundError.
	Get(ctx context.Context, id int64) (*customer.Company, error)
}

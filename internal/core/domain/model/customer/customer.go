// Package customer holds the read-only master data the order lifecycle
// depends on: client companies and their delivery locations ("casinos" or
// branches). Creating and editing them is handled elsewhere.
package customer

import (
	"errors"
	"fmt"
	"strings"

	"bakery/internal/pkg/errs"
	"bakery/internal/pkg/guard"
)

var (
	ErrCompanyIsNotConstructed  = errors.New("Company must be created via NewCompany constructor")
	ErrLocationIsNotConstructed = errors.New("Location must be created via NewLocation constructor")
)

// Company is a client business that owns one or more delivery locations.
type Company struct {
	id    int64
	name  string
	guard guard.ConstructorGuard
}

func NewCompany(id int64, name string) (*Company, error) {
	if err := errors.Join(validateID("company id", id), validateName("company name", name)); err != nil {
		return nil, err
	}
	return &Company{id: id, name: strings.TrimSpace(name), guard: guard.NewConstructorGuard()}, nil
}

func (c *Company) Validate() error {
	if c == nil {
		return ErrCompanyIsNotConstructed
	}
	return c.guard.Validate(ErrCompanyIsNotConstructed)
}

func (c *Company) ID() int64    { return c.id }
func (c *Company) Name() string { return c.name }

// Location is a delivery site (cafeteria or branch) of a company. Orders are
// placed per location; the owning company is always derived from here.
type Location struct {
	id        int64
	companyID int64
	name      string
	address   string
	guard     guard.ConstructorGuard
}

func NewLocation(id, companyID int64, name, address string) (*Location, error) {
	if err := errors.Join(
		validateID("customer location id", id),
		validateID("company id", companyID),
		validateName("customer location name", name),
	); err != nil {
		return nil, err
	}
	return &Location{
		id:        id,
		companyID: companyID,
		name:      strings.TrimSpace(name),
		address:   strings.TrimSpace(address),
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (l *Location) Validate() error {
	if l == nil {
		return ErrLocationIsNotConstructed
	}
	return l.guard.Validate(ErrLocationIsNotConstructed)
}

func (l *Location) ID() int64        { return l.id }
func (l *Location) CompanyID() int64 { return l.companyID }
func (l *Location) Name() string     { return l.name }
func (l *Location) Address() string  { return l.address }

func validateID(param string, id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(param, fmt.Errorf("%d is not greater than 0", id))
	}
	return nil
}

func validateName(param, name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError(param)
	}
	return nil
}

// Package customerrepo reads the client companies and their delivery
// locations. Both tables are maintained outside this service; the repository
// is read-only apart from the seeding helpers used by fixtures.
package customerrepo

import (
	"bakery/internal/core/domain/model/customer"
)

// CompanyDTO represents the companies table.
type CompanyDTO struct {
	ID   int64  `gorm:"primaryKey;autoIncrement:false"`
	Name string `gorm:"type:text;not null"`
}

func (CompanyDTO) TableName() string {
	return "companies"
}

// LocationDTO represents the customer_locations table (a "casino" in the
// business vocabulary).
type LocationDTO struct {
	ID        int64      `gorm:"primaryKey;autoIncrement:false"`
	CompanyID int64      `gorm:"not null;index"`
	Company   CompanyDTO `gorm:"foreignKey:CompanyID"`
	Name      string     `gorm:"type:text;not null"`
	Address   string     `gorm:"type:text;not null;default:''"`
}

func (LocationDTO) TableName() string {
	return "customer_locations"
}

func companyFromDomain(c *customer.Company) CompanyDTO {
	return CompanyDTO{ID: c.ID(), Name: c.Name()}
}

func companyToDomain(dto CompanyDTO) (*customer.Company, error) {
	return customer.NewCompany(dto.ID, dto.Name)
}

func locationFromDomain(l *customer.Location) LocationDTO {
	return LocationDTO{ID: l.ID(), CompanyID: l.CompanyID(), Name: l.Name(), Address: l.Address()}
}

func locationToDomain(dto LocationDTO) (*customer.Location, error) {
	return customer.NewLocation(dto.ID, dto.CompanyID, dto.Name, dto.Address)
}

package customerrepo

import (
	"context"
	"errors"

	"bakery/internal/core/domain/model/customer"
	"bakery/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCompanyRepository implements ports.CompanyRepository using GORM.
type GormCompanyRepository struct {
	db *gorm.DB
}

func NewGormCompanyRepository(db *gorm.DB) *GormCompanyRepository {
	return &GormCompanyRepository{db: db}
}

// Get retrieves a company by id.
func (r *GormCompanyRepository) Get(ctx context.Context, id int64) (*customer.Company, error) {
	var dto CompanyDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("company id", id)
		}
		return nil, err
	}
	return companyToDomain(dto)
}

// Save inserts or replaces a company.
func (r *GormCompanyRepository) Save(ctx context.Context, c *customer.Company) error {
	if err := c.Validate(); err != nil {
		return err
	}
	dto := companyFromDomain(c)
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(&dto).Error
}

// GormLocationRepository implements ports.CustomerLocationRepository using GORM.
type GormLocationRepository struct {
	db *gorm.DB
}

func NewGormLocationRepository(db *gorm.DB) *GormLocationRepository {
	return &GormLocationRepository{db: db}
}

// Get retrieves a customer location by id.
func (r *GormLocationRepository) Get(ctx context.Context, id int64) (*customer.Location, error) {
	var dto LocationDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("customer location id", id)
		}
		return nil, err
	}
	return locationToDomain(dto)
}

// Save inserts or replaces a location. Its company must exist.
func (r *GormLocationRepository) Save(ctx context.Context, l *customer.Location) error {
	if err := l.Validate(); err != nil {
		return err
	}
	dto := locationFromDomain(l)
	return r.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&dto).Error
}

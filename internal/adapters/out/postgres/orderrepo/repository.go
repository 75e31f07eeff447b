package orderrepo

import (
	"context"
	"errors"
	"fmt"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"
	"bakery/internal/core/ports"
	"bakery/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Sequence names, created by postgres.Migrate.
const (
	OrderSequence = "orders_id_seq"
	LineSequence  = "order_lines_id_seq"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db       *gorm.DB
	tracker  aggregateTracker
	lockRows bool
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id int64, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository. tracker may be
// nil for read-only use.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// ForUpdate returns a repository whose Get and FindDueForDispatch lock the
// selected order rows until the surrounding transaction ends.
func (r *GormOrderRepository) ForUpdate() *GormOrderRepository {
	locked := *r
	locked.lockRows = true
	return &locked
}

// NextID issues the next order id from orders_id_seq.
func (r *GormOrderRepository) NextID(ctx context.Context) (int64, error) {
	var id int64
	if err := r.db.WithContext(ctx).Raw("SELECT nextval('" + OrderSequence + "')").Scan(&id).Error; err != nil {
		return 0, err
	}
	return id, nil
}

// NextLineIDs issues n ids from order_lines_id_seq in one round trip.
func (r *GormOrderRepository) NextLineIDs(ctx context.Context, n int) ([]int64, error) {
	if n <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("line id count", fmt.Errorf("%d is not greater than 0", n))
	}

	ids := make([]int64, 0, n)
	err := r.db.WithContext(ctx).
		Raw("SELECT nextval('"+LineSequence+"') FROM generate_series(1, ?) ORDER BY 1", n).
		Scan(&ids).Error
	if err != nil {
		return nil, err
	}
	if len(ids) != n {
		return nil, fmt.Errorf("%s returned %d ids, want %d", LineSequence, len(ids), n)
	}
	return ids, nil
}

// Add saves a new order and its lines.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)
	if err := db.Omit(clause.Associations).Create(&dto).Error; err != nil {
		return err
	}
	if err := db.Create(&dto.Lines).Error; err != nil {
		return err
	}

	r.track(aggregate)
	return nil
}

// Update saves the order header and makes order_lines match the aggregate:
// lines that are gone are deleted and new ones inserted. Existing lines are
// never rewritten since line items are immutable.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	// A map is used so zero values (false flags, empty notes) are written too.
	result := db.Model(&OrderDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
		"delivery_date":   dto.DeliveryDate,
		"delivery_time":   dto.DeliveryTime,
		"status":          dto.Status,
		"total":           dto.Total,
		"notes":           dto.Notes,
		"recurring":       dto.Recurring,
		"recurrence_days": dto.RecurrenceDays,
		"origin":          dto.Origin,
		"driver_id":       dto.DriverID,
		"email_sent":      dto.EmailSent,
		"message_sent":    dto.MessageSent,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order id", dto.ID)
	}

	if err := db.Where("order_id = ? AND id NOT IN ?", dto.ID, aggregate.LineIDs()).
		Delete(&LineDTO{}).Error; err != nil {
		return err
	}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&dto.Lines).Error; err != nil {
		return err
	}

	r.track(aggregate)
	return nil
}

// Get retrieves an order with its lines by id.
func (r *GormOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	var dto OrderDTO
	err := r.query(ctx).First(&dto, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order id", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// Find returns the orders matching every set field of filter, ordered by id.
func (r *GormOrderRepository) Find(ctx context.Context, filter ports.OrderFilter) ([]*order.Order, error) {
	q := r.query(ctx)
	if filter.DeliveryDate != nil {
		q = q.Where("delivery_date = ?", filter.DeliveryDate.Time())
	}
	if filter.CustomerLocationID != nil {
		q = q.Where("customer_location_id = ?", *filter.CustomerLocationID)
	}
	if filter.CompanyID != nil {
		q = q.Where("company_id = ?", *filter.CompanyID)
	}
	if filter.Status != nil {
		q = q.Where("status = ?", filter.Status.String())
	}

	var dtos []OrderDTO
	if err := q.Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}
	return toDomainList(dtos)
}

// FindDueForDispatch returns the orders delivering on date in one of statuses.
func (r *GormOrderRepository) FindDueForDispatch(
	ctx context.Context,
	date kernel.Date,
	statuses []order.Status,
) ([]*order.Order, error) {
	if len(statuses) == 0 {
		return []*order.Order{}, nil
	}
	values := make([]string, len(statuses))
	for i, s := range statuses {
		values[i] = s.String()
	}

	var dtos []OrderDTO
	err := r.query(ctx).
		Where("delivery_date = ? AND status IN ?", date.Time(), values).
		Order("id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}
	return toDomainList(dtos)
}

func (r *GormOrderRepository) query(ctx context.Context) *gorm.DB {
	q := r.db.WithContext(ctx).Preload("Lines", func(db *gorm.DB) *gorm.DB {
		return db.Order("id")
	})
	if r.lockRows {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return q
}

func (r *GormOrderRepository) track(aggregate *order.Order) {
	if r.tracker != nil {
		r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	}
}

func toDomainList(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}

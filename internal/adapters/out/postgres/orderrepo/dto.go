// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order aggregate, handling
// the conversion between the domain model and the orders/order_lines tables.
package orderrepo

import (
	"time"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the orders table. Ids come from orders_id_seq, never
// from a column default, so the repository can issue them before insert.
type OrderDTO struct {
	ID                 int64           `gorm:"primaryKey;autoIncrement:false"`
	CustomerLocationID int64           `gorm:"not null;index"`
	CompanyID          int64           `gorm:"not null;index"`
	CreatedOn          time.Time       `gorm:"type:date;not null"`
	CreatedAt          time.Time       `gorm:"not null"`
	DeliveryDate       time.Time       `gorm:"type:date;not null;index"`
	DeliveryTime       string          `gorm:"type:varchar(5);not null"`
	Status             string          `gorm:"type:varchar(20);not null;index"`
	Total              decimal.Decimal `gorm:"type:numeric;not null"`
	Notes              string          `gorm:"type:text;not null;default:''"`
	Recurring          bool            `gorm:"not null;default:false"`
	RecurrenceDays     pq.StringArray  `gorm:"type:text[]"`
	Origin             string          `gorm:"type:varchar(20);not null"`
	DriverID           *int64
	EmailSent          bool      `gorm:"not null;default:false"`
	MessageSent        bool      `gorm:"not null;default:false"`
	Lines              []LineDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// LineDTO represents the order_lines table. Subtotal is stored as written so
// that a later change of the multiplication rule never rewrites history.
type LineDTO struct {
	ID          int64           `gorm:"primaryKey;autoIncrement:false"`
	OrderID     int64           `gorm:"not null;index"`
	ProductID   int64           `gorm:"not null"`
	ProductName string          `gorm:"type:text;not null;default:''"`
	Quantity    decimal.Decimal `gorm:"type:numeric;not null"`
	Unit        string          `gorm:"type:varchar(10);not null"`
	UnitPrice   decimal.Decimal `gorm:"type:numeric;not null"`
	Subtotal    decimal.Decimal `gorm:"type:numeric;not null"`
}

func (LineDTO) TableName() string {
	return "order_lines"
}

func fromDomain(o *order.Order) OrderDTO {
	return OrderDTO{
		ID:                 o.ID(),
		CustomerLocationID: o.CustomerLocationID(),
		CompanyID:          o.CompanyID(),
		CreatedOn:          o.CreatedOn().Time(),
		CreatedAt:          o.CreatedAt(),
		DeliveryDate:       o.DeliveryDate().Time(),
		DeliveryTime:       o.DeliveryTime().String(),
		Status:             o.Status().String(),
		Total:              o.Total(),
		Notes:              o.Notes(),
		Recurring:          o.Recurring(),
		RecurrenceDays:     pq.StringArray(kernel.WeekdayStrings(o.RecurrenceDays())),
		Origin:             string(o.Origin()),
		DriverID:           o.DriverID(),
		EmailSent:          o.EmailSent(),
		MessageSent:        o.MessageSent(),
		Lines:              linesFromDomain(o),
	}
}

func linesFromDomain(o *order.Order) []LineDTO {
	lines := make([]LineDTO, 0, len(o.Lines()))
	for _, l := range o.Lines() {
		lines = append(lines, LineDTO{
			ID:          l.ID(),
			OrderID:     l.OrderID(),
			ProductID:   l.ProductID(),
			ProductName: l.ProductName(),
			Quantity:    l.Quantity(),
			Unit:        string(l.Unit()),
			UnitPrice:   l.UnitPrice(),
			Subtotal:    l.Subtotal(),
		})
	}
	return lines
}

// toDomain rebuilds the aggregate through RestoreOrder, so rows whose total
// no longer matches their lines are reported instead of served.
func toDomain(dto OrderDTO) (*order.Order, error) {
	lines := make([]*order.LineItem, 0, len(dto.Lines))
	for _, l := range dto.Lines {
		line, err := order.RestoreLineItem(l.ID, l.OrderID, order.LineDraft{
			ProductID:   l.ProductID,
			ProductName: l.ProductName,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
			Unit:        l.Unit,
		}, l.Subtotal)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	deliveryTime, err := kernel.ParseTimeOfDay(dto.DeliveryTime)
	if err != nil {
		return nil, err
	}
	days, err := kernel.ParseWeekdays(dto.RecurrenceDays)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(order.Snapshot{
		ID:                 dto.ID,
		CustomerLocationID: dto.CustomerLocationID,
		CompanyID:          dto.CompanyID,
		CreatedOn:          kernel.DateOf(dto.CreatedOn),
		CreatedAt:          dto.CreatedAt,
		DeliveryDate:       kernel.DateOf(dto.DeliveryDate),
		DeliveryTime:       deliveryTime,
		Status:             order.Status(dto.Status),
		Total:              dto.Total,
		Notes:              dto.Notes,
		Recurring:          dto.Recurring,
		RecurrenceDays:     days,
		Origin:             order.Origin(dto.Origin),
		DriverID:           dto.DriverID,
		EmailSent:          dto.EmailSent,
		MessageSent:        dto.MessageSent,
		Lines:              lines,
	})
}

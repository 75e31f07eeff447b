package postgres

import (
	"fmt"

	"bakery/internal/adapters/out/postgres/customerrepo"
	"bakery/internal/adapters/out/postgres/orderrepo"

	"gorm.io/gorm"
)

// Migrate creates or updates the schema and the id sequences. Sequences are
// moved past any existing ids so a database populated before they existed
// keeps issuing fresh ids.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&customerrepo.CompanyDTO{},
		&customerrepo.LocationDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.LineDTO{},
	); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}

	for _, seq := range []struct{ name, table string }{
		{orderrepo.OrderSequence, "orders"},
		{orderrepo.LineSequence, "order_lines"},
	} {
		if err := db.Exec(fmt.Sprintf("CREATE SEQUENCE IF NOT EXISTS %s", seq.name)).Error; err != nil {
			return fmt.Errorf("create sequence %s: %w", seq.name, err)
		}
		err := db.Exec(fmt.Sprintf(
			"SELECT setval('%[1]s', GREATEST(m.max_id, s.last_value), m.max_id > 0 OR s.is_called) "+
				"FROM (SELECT COALESCE(MAX(id), 0) AS max_id FROM %[2]s) m, %[1]s s",
			seq.name, seq.table,
		)).Error
		if err != nil {
			return fmt.Errorf("align sequence %s: %w", seq.name, err)
		}
	}

	return nil
}

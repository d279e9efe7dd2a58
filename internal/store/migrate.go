package store

import (
	"context"
	_ "embed"
	"fmt"

	"gorm.io/gorm"
)

var (
	//go:embed sql/schema.sql
	schemaSQL string

	//go:embed sql/procedures.sql
	proceduresSQL string
)

// Migrate creates the tables and indexes used by the service.
// When installProcedures is set the privileged update_user_wallet procedure is (re)installed.
func Migrate(ctx context.Context, db *gorm.DB, installProcedures bool) error {
	if err := db.WithContext(ctx).Exec(schemaSQL).Error; err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}

	if installProcedures {
		if err := db.WithContext(ctx).Exec(proceduresSQL).Error; err != nil {
			return fmt.Errorf("failed to install procedures: %w", err)
		}
	}

	return nil
}

package daemon

import (
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/mcap-hotel/staffdesk/internal/config"
	"github.com/mcap-hotel/staffdesk/internal/db/models"
)

// Migrate creates or updates the schema for all models and applies the
// single-active constraint where the engine supports it.
func Migrate(cfg *config.Config, db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Role{},
		&models.User{},
		&models.RoleUser{},
		&models.Assignment{},
		&models.Habitacion{},
		&models.Estancia{},
		&models.Consumo{},
	); err != nil {
		return err
	}

	// At most one active assignment per employee per day. MySQL has no
	// partial indexes; there the transactional replace flow is the only
	// guard.
	if cfg.DB.Engine == config.EngineMySQL {
		log.Warn().Msg("mysql engine: single-active assignment index not available, relying on transactional replace")
		return nil
	}

	return db.Exec(
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_assignments_active_user_date
		 ON assignments (user_id, date) WHERE is_active`,
	).Error
}

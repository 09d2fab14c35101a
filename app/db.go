package app

import (
	"gorm.io/gorm"

	"github.com/mcap-hotel/staffdesk/internal/config"
	"github.com/mcap-hotel/staffdesk/internal/daemon"
	"github.com/mcap-hotel/staffdesk/internal/logger"
)

// openDatabase reads the configuration, initializes logging and opens the
// database for console commands. The schema migration is idempotent, so a
// console command works against a fresh database too.
func openDatabase() (*gorm.DB, error) {
	var err error

	if cfg, err = config.ReadConfig(configPath); err != nil {
		return nil, err
	}

	if err = logger.Init(cfg.Log); err != nil {
		return nil, err
	}

	db, err := daemon.OpenDB(&cfg)
	if err != nil {
		return nil, err
	}

	if err = daemon.Migrate(&cfg, db); err != nil {
		return nil, err
	}

	return db, nil
}

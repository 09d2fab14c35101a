// Package daemon wires configuration, database, sessions and the web service
// together into the runnable staffdesk process.
package daemon

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/storage"
	sessionmemory "github.com/gofiber/storage/memory/v2"
	sessionmysql "github.com/gofiber/storage/mysql/v2"
	sessionpostgres "github.com/gofiber/storage/postgres/v3"
	"github.com/rs/zerolog/log"
	gormmysql "gorm.io/driver/mysql"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/mcap-hotel/staffdesk/internal/config"
	"github.com/mcap-hotel/staffdesk/internal/db/dsn"
	"github.com/mcap-hotel/staffdesk/internal/web"
	"github.com/mcap-hotel/staffdesk/internal/web/session"
)

// Daemon represents the main application daemon.
type Daemon struct {
	cfg        *config.Config
	webService web.Service
}

// Start starts the Daemon's web service.
func (d *Daemon) Start() error {
	return d.webService.Start(fmt.Sprintf(":%d", d.cfg.Webserver.Port))
}

// OpenDB opens a gorm connection for the configured engine. Used by the web
// daemon and all console commands.
func OpenDB(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector

	switch cfg.DB.Engine {
	case config.EnginePostgres:
		dialector = gormpostgres.Open(dsn.Create(cfg))
	case config.EngineSQLite:
		dialector = sqlite.Open(dsn.Create(cfg))
	default:
		dialector = gormmysql.Open(dsn.Create(cfg))
	}

	db, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	return db, nil
}

// New creates a new Daemon instance with the provided configuration.
func New(cfg *config.Config) *Daemon {
	if cfg == nil {
		log.Fatal().Msg("config is nil")
		return nil
	}

	db, err := OpenDB(cfg)
	if err != nil {
		panic("failed to connect database")
	}

	if err = Migrate(cfg, db); err != nil {
		panic("failed to migrate database")
	}

	seed(cfg, db)

	session.Init(sessionStorage(cfg))

	return &Daemon{
		cfg:        cfg,
		webService: *web.New(cfg, db),
	}
}

// sessionStorage selects the fiber session backend matching the DB engine.
// The sqlite engine keeps sessions in process memory.
func sessionStorage(cfg *config.Config) storage.Storage {
	switch cfg.DB.Engine {
	case config.EngineMySQL:
		return sessionmysql.New(sessionmysql.Config{
			ConnectionURI: dsn.Create(cfg),
			Table:         "sessions",
		})
	case config.EnginePostgres:
		return sessionpostgres.New(sessionpostgres.Config{
			ConnectionURI: dsn.Create(cfg),
			Table:         "sessions",
		})
	default:
		return sessionmemory.New()
	}
}

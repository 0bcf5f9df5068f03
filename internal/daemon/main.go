// Package daemon wires configuration, storage and the numbering core together.
package daemon

import (
	"github.com/glebarez/sqlite"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/wodanio-group/bos/internal/config"
	"github.com/wodanio-group/bos/internal/db/controller/option"
	"github.com/wodanio-group/bos/internal/db/dsn"
	"github.com/wodanio-group/bos/internal/db/models"
	"github.com/wodanio-group/bos/internal/logger/adapter/gormlogger"
	"github.com/wodanio-group/bos/internal/numbering"
)

// Option keys the daemon seeds and the allocators read.
const (
	KeyCustomerIDCounter = "CUSTOMER_ID_COUNTER"
	KeyCustomerIDSchema  = "CUSTOMER_ID_SCHEMA"
	KeyQuoteIDCounter    = "QUOTE_ID_COUNTER"
	KeyQuoteIDSchema     = "QUOTE_ID_SCHEMA"
)

// Daemon represents the bootstrapped application core.
type Daemon struct {
	DB        *gorm.DB
	Customers *numbering.Allocator
	Quotes    *numbering.Allocator
}

// New opens the configured database, migrates the schema, seeds the
// option records and binds the business-ID allocators.
func New(cfg *config.Config) (*Daemon, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}

	db, err := open(cfg)
	if err != nil {
		return nil, err
	}

	if err = db.AutoMigrate(
		&models.Option{},
		&models.Quote{},
		&models.QuoteItem{},
	); err != nil {
		return nil, errors.Wrap(err, "failed to migrate database")
	}

	if err = seed(cfg, db); err != nil {
		return nil, err
	}

	store, err := option.NewStore(db)
	if err != nil {
		return nil, err
	}

	log.Info().Str("engine", cfg.DB.GormEngine).Msg("database ready")

	return &Daemon{
		DB:        db,
		Customers: numbering.New(store, KeyCustomerIDCounter, KeyCustomerIDSchema),
		Quotes:    numbering.New(store, KeyQuoteIDCounter, KeyQuoteIDSchema),
	}, nil
}

func open(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector

	switch cfg.DB.GormEngine {
	case config.EngineSQLite:
		dialector = sqlite.Open(dsn.Create(cfg))
	case config.EnginePostgres:
		dialector = postgres.Open(dsn.Create(cfg))
	case config.EngineMySQL:
		dialector = mysql.Open(dsn.Create(cfg))
	default:
		return nil, errors.Wrap(config.ErrUnknownGormEngine, cfg.DB.GormEngine)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.New(cfg.DevMode),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect database")
	}

	return db, nil
}

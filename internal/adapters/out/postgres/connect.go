package postgres

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"workorders/internal/adapters/out/postgres/outboxrepo"
	"workorders/internal/adapters/out/postgres/workorderrepo"

	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config selects and addresses the database.
type Config struct {
	Driver     string
	Host       string
	Port       string
	User       string
	Password   string
	Name       string
	SSLMode    string
	SQLitePath string
}

// DSN returns the PostgreSQL connection string.
func (c Config) DSN() string {
	sslMode := c.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, sslMode)
}

// Open connects to the configured database.
func Open(cfg Config, log *slog.Logger) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch strings.ToLower(cfg.Driver) {
	case "", DriverPostgres:
		dialector = gorm_postgres.Open(cfg.DSN())
	case DriverSQLite:
		if cfg.SQLitePath == "" {
			return nil, errors.New("sqlite driver requires a database path")
		}
		dialector = sqlite.Open(cfg.SQLitePath)
	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", cfg.Driver, err)
	}

	if log != nil {
		log.Info("database connected", "driver", dialector.Name())
	}
	return db, nil
}

// Migrate creates or upgrades the tables of the service.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&workorderrepo.WorkOrderDTO{}, &outboxrepo.NotificationDTO{})
}

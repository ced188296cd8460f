package database

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/zwrk/workout-api/internal/config"
	"github.com/zwrk/workout-api/internal/entities"
)

// models lists every table the application owns, in dependency order.
var models = []any{
	&entities.User{},
	&entities.Exercise{},
	&entities.Tag{},
	&entities.ExerciseTag{},
	&entities.Set{},
	&entities.AuditEvent{},
}

type Database struct {
	DB     *gorm.DB
	driver config.DatabaseDriver
}

// NewDatabase opens (or creates) a SQLite database at dbPath and migrates it.
func NewDatabase(dbPath string) (*Database, error) {
	return Open(config.Database{Driver: config.DriverSQLite, Path: dbPath})
}

// Open connects to the configured store and migrates it.
func Open(cfg config.Database) (*Database, error) {
	dialector, err := dialectorFor(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(models...); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	driver := cfg.Driver
	if driver == "" {
		driver = config.DriverSQLite
	}
	return &Database{DB: db, driver: driver}, nil
}

func dialectorFor(cfg config.Database) (gorm.Dialector, error) {
	switch cfg.Driver {
	case config.DriverSQLite, "":
		if cfg.Path == "" {
			return nil, errors.New("database path is required for sqlite")
		}
		return sqlite.Open(SQLiteDSN(cfg.Path)), nil
	case config.DriverPostgres:
		if cfg.DSN == "" {
			return nil, errors.New("DATABASE_DSN is required for postgres")
		}
		return postgres.Open(cfg.DSN), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// SQLiteDSN enables foreign key enforcement so cascade rules hold, and waits
// on locks instead of failing concurrent writers. Transactions take the write
// lock at BEGIN; a deferred read-then-write upgrade fails with
// "database is locked" without honouring the busy timeout.
func SQLiteDSN(path string) string {
	const params = "_foreign_keys=on&_busy_timeout=5000&_txlock=immediate"
	if strings.Contains(path, "?") {
		return path + "&" + params
	}
	return path + "?" + params
}

// Driver reports which store backs this connection.
func (d *Database) Driver() config.DatabaseDriver {
	return d.driver
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// SeedOwner makes sure the user every request acts as exists.
func (d *Database) SeedOwner(ownerID uint, log *zap.Logger) error {
	var existing entities.User
	result := d.DB.First(&existing, ownerID)
	if result.Error == nil {
		return nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to look up owner %d: %w", ownerID, result.Error)
	}

	owner := entities.User{
		ID:        ownerID,
		FirstName: "Workout",
		LastName:  "Owner",
		Email:     fmt.Sprintf("owner+%d@zwrk.local", ownerID),
	}
	if err := d.DB.Create(&owner).Error; err != nil {
		return fmt.Errorf("failed to create owner %d: %w", ownerID, err)
	}

	// Explicit ids do not advance PostgreSQL sequences.
	if d.driver == config.DriverPostgres {
		err := d.DB.Exec("SELECT setval(pg_get_serial_sequence('users', 'id'), (SELECT MAX(id) FROM users))").Error
		if err != nil {
			return fmt.Errorf("failed to advance users sequence: %w", err)
		}
	}

	if log != nil {
		log.Info("seeded owner user", zap.Uint("user_id", ownerID))
	}
	return nil
}

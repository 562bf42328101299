package postgres

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/xy-planning-network/waypoint"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

const (
	// PG Docs: https://www.postgresql.org/docs/current/libpq-connect.html#LIBPQ-PARAMKEYWORDS
	cxnStr = "host=%s port=%s dbname=%s user=%s password=%s sslmode=%s"

	publicSchema = "public"
)

// CxnConfig holds connection information used to connect to a PostgreSQL database.
type CxnConfig struct {
	IsTestDB bool
	URL      string
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	SSLMode  string

	// LogQueries logs every statement rather than only slow ones.
	LogQueries  bool
	MaxIdleCxns int
	MaxOpenCxns int
}

// Connect creates a database connection through GORM according to the connection config
// and runs all migrations.
//
// Connecting to a test database drops the public schema before migrating.
// Connect leaves the schema untouched when migrations is empty.
func Connect(config *CxnConfig, migrations []Migration, env waypoint.Environment) (*DB, error) {
	if config == nil {
		return nil, fmt.Errorf("%w: no CxnConfig", waypoint.ErrBadConfig)
	}

	// https://gorm.io/docs/logger.html
	c := logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  logger.Warn,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	}

	if env.IsDevelopment() {
		c.Colorful = true
	}

	if config.LogQueries {
		c.LogLevel = logger.Info
	}

	db, err := gorm.Open(postgres.Open(buildCxnStr(config)), &gorm.Config{
		Logger: logger.New(log.New(os.Stdout, "\r\n", log.LstdFlags), c),
		NamingStrategy: schema.NamingStrategy{
			NameReplacer: strings.NewReplacer("Table", ""),
		},
		NowFunc: func() time.Time {
			return time.Now().Truncate(time.Microsecond)
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: can't open database: %s", waypoint.ErrUnexpected, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("%w: %s", waypoint.ErrUnexpected, err)
	}

	if config.MaxIdleCxns > 0 {
		sqlDB.SetMaxIdleConns(config.MaxIdleCxns)
	}

	if config.MaxOpenCxns > 0 {
		sqlDB.SetMaxOpenConns(config.MaxOpenCxns)
	}

	if config.IsTestDB {
		if err := db.Exec("DROP SCHEMA IF EXISTS public CASCADE;").Error; err != nil {
			return nil, fmt.Errorf("%w: can't reset test database: %s", waypoint.ErrUnexpected, err)
		}
	}

	if len(migrations) == 0 {
		return NewDB(db), nil
	}

	if err := MigrateUp(db, publicSchema, migrations); err != nil {
		return nil, err
	}

	return NewDB(db), nil
}

func buildCxnStr(config *CxnConfig) string {
	if config.URL != "" {
		return config.URL
	}

	sslMode := config.SSLMode
	if sslMode == "" {
		// PG Docs: https://www.postgresql.org/docs/current/libpq-ssl.html#LIBPQ-SSL-SSLMODE-STATEMENTS
		sslMode = "prefer"
	}

	return fmt.Sprintf(
		cxnStr,
		config.Host,
		config.Port,
		config.Name,
		config.User,
		config.Password,
		sslMode,
	)
}

// WipeDB queries for all of the tables in schema and then drops the data in these tables.
func WipeDB(db *gorm.DB, schema string) error {
	var tables []string
	err := db.
		Table("information_schema.tables").
		Select("table_name").
		Where("table_schema = ?", schema).
		Not("table_type = ?", "VIEW").
		Where("table_name <> ?", migrationsTable).
		Pluck("table_name", &tables).
		Error
	if err != nil {
		return err
	}

	if len(tables) == 0 {
		return nil
	}

	quoted := make([]string, len(tables))
	for i, t := range tables {
		quoted[i] = fmt.Sprintf("%q.%q", schema, t)
	}

	return db.Exec(fmt.Sprintf("TRUNCATE %s CASCADE;", strings.Join(quoted, ", "))).Error
}

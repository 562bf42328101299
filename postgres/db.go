package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/xy-planning-network/waypoint"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// A DB builds and runs queries against PostgreSQL,
// returning waypoint's errors rather than GORM's or the driver's.
//
// Every query building method returns a new *DB,
// so a *DB can be shared between goroutines and extended by each of them.
type DB struct {
	// Some *gorm.DB methods mutate the *gorm.DB they are called on.
	// Methods of DB chain from a *gorm.DB returned by another call
	// or from a new *gorm.DB.Session.
	db *gorm.DB
}

// NewDB constructs a *DB from a *gorm.DB.
func NewDB(db *gorm.DB) *DB { return &DB{db: db} }

// DB exposes the underlying *gorm.DB backing DB.
//
// NB: use in exceptional circumstances only.
func (db *DB) DB() *gorm.DB { return db.db }

// WithContext runs the queries built from the returned *DB with ctx,
// cancelling them when ctx is done.
func (db *DB) WithContext(ctx context.Context) *DB { return &DB{db: db.db.WithContext(ctx)} }

// Ping verifies a connection to the database is still alive.
func (db *DB) Ping(ctx context.Context) error {
	sqlDB, err := db.db.DB()
	if err != nil {
		return fmt.Errorf("%w: %s", waypoint.ErrUnexpected, err)
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %s", waypoint.ErrUnexpected, err)
	}

	return nil
}

// fail returns a *DB whose finishers return err without running a query.
func (db *DB) fail(err error) *DB {
	gdb := db.db.Session(&gorm.Session{})
	_ = gdb.AddError(err)

	return &DB{db: gdb}
}

// **************************************************************************
// FINISHERS
//
// Finishers run the query built so far.
// Each returns the first error raised while building the query, if any,
// without touching the database.
//
// **************************************************************************

// Create inserts value, a pointer to a model, into its table,
// setting fields like ID the database generates.
//
// If value is not a pointer, Create returns ErrUnaddressable.
// If value is not a model, Create returns ErrMissingData.
// If value violates a unique constraint, Create returns ErrExists.
// If value violates a foreign key or not null constraint, Create returns ErrNotValid.
func (db *DB) Create(value any) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %T must be a non-nil pointer or slice", waypoint.ErrUnaddressable, value)
		}
	}()

	if db.db.Error != nil {
		return db.db.Error
	}

	err = db.db.Session(&gorm.Session{FullSaveAssociations: false}).Create(value).Error
	if errors.Is(err, schema.ErrUnsupportedDataType) || errors.Is(err, gorm.ErrInvalidData) {
		return fmt.Errorf("%w: %T is not a model", waypoint.ErrMissingData, value)
	}

	return translate(fmt.Sprintf("creating %T", value), err)
}

// Find retrieves all records matching the current query into dest,
// a pointer to a slice of models.
//
// If no records match, Find returns ErrNotFound.
// If records cannot be scanned into dest, Find returns ErrNotValid.
func (db *DB) Find(dest any) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %T cannot be scanned into", waypoint.ErrNotValid, dest)
		}
	}()

	if db.db.Error != nil {
		return db.db.Error
	}

	res := db.db.Find(dest)
	if res.Error != nil {
		return translate(fmt.Sprintf("finding %T", dest), res.Error)
	}

	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: no %T", waypoint.ErrNotFound, dest)
	}

	return nil
}

// First retrieves the first record matching the current query into dest,
// ordered by primary key unless the query sets an order.
//
// If no records match, First returns ErrNotFound.
func (db *DB) First(dest any) error {
	if db.db.Error != nil {
		return db.db.Error
	}

	return translate(fmt.Sprintf("finding first %T", dest), db.db.First(dest).Error)
}

// **************************************************************************
// QUERY BUILDERS
//
// Query builders add clauses to the current query.
// Chain them in any order before calling a finisher.
//
// **************************************************************************

// Order applies an ORDER BY clause to the current query.
func (db *DB) Order(order string) *DB {
	return &DB{db: db.db.Order(order)}
}

// A Scope is a reusable set of query building calls
// applied to preloaded associations with Preload.
type Scope func(*DB) *DB

// Preload fetches the records of a model's association, named by its field, such as Schedules.
// Nested associations are named with dot syntax: Schedules.Availability.
//
// Scopes filter or order the preloaded records:
//
//	byID := func(dbx *DB) *DB { return dbx.Order("id") }
//	db.Preload("Schedules", byID).Where("email = ?", email).First(&user)
func (db *DB) Preload(association string, scopes ...Scope) *DB {
	if len(scopes) == 0 {
		return &DB{db: db.db.Preload(association)}
	}

	// GORM applies these conditions to the association's query, not the current one.
	apply := func(dbx *gorm.DB) *gorm.DB {
		wrapped := NewDB(dbx)
		for _, scope := range scopes {
			wrapped = scope(wrapped)
		}

		return wrapped.DB()
	}

	return &DB{db: db.db.Preload(association, apply)}
}

// Select limits the columns the current query retrieves.
func (db *DB) Select(columns ...string) *DB { return &DB{db: db.db.Select(columns)} }

// Where adds a condition to the current query, joined to others with AND.
//
// query is a SQL fragment with placeholders for args.
// A nil query is rejected with ErrNotValid.
func (db *DB) Where(query any, args ...any) *DB {
	if query == nil {
		return db.fail(fmt.Errorf("%w: nil query", waypoint.ErrNotValid))
	}

	return &DB{db: db.db.Where(query, args...)}
}

// **************************************************************************
// HELPERS
//
// **************************************************************************

// translate maps err, raised while running op, onto waypoint's errors.
func translate(op string, err error) error {
	switch {
	case err == nil:
		return nil

	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%w: %s", waypoint.ErrNotFound, op)

	case errSQLUnaddressable.MatchString(err.Error()):
		return fmt.Errorf("%w: %s: %s", waypoint.ErrUnaddressable, op, err)

	case errSQLScan.MatchString(err.Error()):
		return fmt.Errorf("%w: %s: %s", waypoint.ErrNotValid, op, err)
	}

	if known := classify(err); known != nil {
		return known
	}

	return fmt.Errorf("%w: %s: %s", waypoint.ErrUnexpected, op, err)
}

package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/xy-planning-network/waypoint"
	"github.com/xy-planning-network/waypoint/postgres"
)

// availabilityColumns are the only columns read for a schedule's availability.
var availabilityColumns = []string{"id", "days", `"startTime"`, `"endTime"`, `"userId"`, `"scheduleId"`, "date"}

// A UserFinder retrieves a User along with their Schedules and each Schedule's Availability.
type UserFinder interface {
	FindUserByEmail(ctx context.Context, email string) (*waypoint.User, error)
}

// A Store reads users from the scheduling platform's database.
type Store struct {
	db *postgres.DB
}

// NewStore constructs a *Store reading from db.
func NewStore(db *postgres.DB) *Store { return &Store{db: db} }

// FindUserByEmail retrieves the User whose email is email,
// preloading their Schedules and each Schedule's Availability, both ordered by id.
//
// If no User matches, FindUserByEmail returns waypoint.ErrNotFound.
func (s *Store) FindUserByEmail(ctx context.Context, email string) (*waypoint.User, error) {
	if email == "" {
		return nil, fmt.Errorf("%w: no email", waypoint.ErrMissingData)
	}

	u := new(waypoint.User)
	err := s.db.
		WithContext(ctx).
		Preload("Schedules", byID).
		Preload("Schedules.Availability", byID, selectAvailability).
		Where("email = ?", email).
		First(u)
	if err != nil {
		return nil, err
	}

	return u, nil
}

// FindUserIDByEmail retrieves the id of the User whose email is email.
//
// If no User matches, FindUserIDByEmail returns waypoint.ErrNotFound.
func (s *Store) FindUserIDByEmail(ctx context.Context, email string) (int64, error) {
	if email == "" {
		return 0, fmt.Errorf("%w: no email", waypoint.ErrMissingData)
	}

	var u waypoint.User
	err := s.db.
		WithContext(ctx).
		Select("id").
		Where("email = ?", email).
		First(&u)
	if errors.Is(err, waypoint.ErrNotFound) {
		return 0, fmt.Errorf("%w: user with email %s", waypoint.ErrNotFound, email)
	}

	if err != nil {
		return 0, err
	}

	return u.ID, nil
}

func byID(db *postgres.DB) *postgres.DB { return db.Order("id") }

func selectAvailability(db *postgres.DB) *postgres.DB { return db.Select(availabilityColumns...) }

package conferencing

import (
	"context"
	"errors"

	"github.com/xy-planning-network/waypoint"
	"github.com/xy-planning-network/waypoint/postgres"
)

// videoPattern matches types ending in waypoint.VideoTypeSuffix.
// LIKE treats an unescaped underscore as a wildcard.
const videoPattern = `%\_video`

// A Repository reads Credentials for conferencing apps.
//
// Every method is read-only.
type Repository struct {
	db *postgres.DB
}

// NewRepository constructs a *Repository reading from db.
func NewRepository(db *postgres.DB) *Repository { return &Repository{db: db} }

// FindConferencingApps retrieves the conferencing app Credentials belonging to the user.
func (repo *Repository) FindConferencingApps(ctx context.Context, userID int64) ([]waypoint.Credential, error) {
	return repo.findVideo(ctx, `"userId" = ?`, userID)
}

// FindTeamConferencingApps retrieves the conferencing app Credentials belonging to the team.
func (repo *Repository) FindTeamConferencingApps(ctx context.Context, teamID int64) ([]waypoint.Credential, error) {
	return repo.findVideo(ctx, `"teamId" = ?`, teamID)
}

// FindGoogleMeet retrieves the user's Google Meet Credential.
//
// If the user has none, FindGoogleMeet returns a nil *waypoint.Credential and nil error.
func (repo *Repository) FindGoogleMeet(ctx context.Context, userID int64) (*waypoint.Credential, error) {
	return repo.first(
		repo.db.WithContext(ctx).
			Where(`"userId" = ?`, userID).
			Where("type = ?", waypoint.GoogleMeetType),
	)
}

// FindConferencingApp retrieves the user's Credential for the app.
//
// If the user has none, FindConferencingApp returns a nil *waypoint.Credential and nil error.
func (repo *Repository) FindConferencingApp(ctx context.Context, userID int64, app string) (*waypoint.Credential, error) {
	return repo.first(
		repo.db.WithContext(ctx).
			Where(`"userId" = ?`, userID).
			Where(`"appId" = ?`, app),
	)
}

// FindTeamConferencingApp retrieves the team's Credential for the app.
//
// If the team has none, FindTeamConferencingApp returns a nil *waypoint.Credential and nil error.
func (repo *Repository) FindTeamConferencingApp(ctx context.Context, teamID int64, app string) (*waypoint.Credential, error) {
	return repo.first(
		repo.db.WithContext(ctx).
			Where(`"teamId" = ?`, teamID).
			Where(`"appId" = ?`, app),
	)
}

func (repo *Repository) findVideo(ctx context.Context, owner string, id int64) ([]waypoint.Credential, error) {
	creds := make([]waypoint.Credential, 0)
	err := repo.db.
		WithContext(ctx).
		Where(owner, id).
		Where("type LIKE ?", videoPattern).
		Find(&creds)
	if errors.Is(err, waypoint.ErrNotFound) {
		return make([]waypoint.Credential, 0), nil
	}

	if err != nil {
		return nil, err
	}

	return creds, nil
}

func (repo *Repository) first(query *postgres.DB) (*waypoint.Credential, error) {
	cred := new(waypoint.Credential)
	err := query.Order("id").First(cred)
	if errors.Is(err, waypoint.ErrNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	return cred, nil
}

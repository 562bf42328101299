package conferencing_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
	"github.com/xy-planning-network/waypoint"
	"github.com/xy-planning-network/waypoint/conferencing"
	"github.com/xy-planning-network/waypoint/postgres"
	"github.com/xy-planning-network/waypoint/postgres/postgrestest"
	"gorm.io/datatypes"
)

type RepositoryTestSuite struct {
	suite.Suite

	db   *postgres.DB
	repo *conferencing.Repository

	userID int64
	teamID int64
}

func TestRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RepositoryTestSuite))
}

func (suite *RepositoryTestSuite) SetupSuite() {
	db, err := postgrestest.Connect()
	if errors.Is(err, postgrestest.ErrSkip) {
		suite.T().Skip(err.Error())
	}

	suite.Require().Nil(err)
	suite.db = db
	suite.repo = conferencing.NewRepository(db)
}

func (suite *RepositoryTestSuite) SetupTest() {
	u := waypoint.User{Email: "husserl@example.com", TimeZone: "Europe/Berlin", WeekStart: "Monday"}
	suite.Require().Nil(suite.db.Create(&u))
	suite.userID = u.ID
	suite.teamID = 42

	zoom, daily, gcal := "zoom", "daily-video", "google-calendar"
	meet := "google-meet"
	creds := []waypoint.Credential{
		{Type: "zoom_video", AppID: &zoom, UserID: &suite.userID},
		{Type: waypoint.GoogleMeetType, AppID: &meet, UserID: &suite.userID},
		{Type: "google_calendar", AppID: &gcal, UserID: &suite.userID},
		// underscore must not act as a wildcard
		{Type: "fakevideo", UserID: &suite.userID},
		{Type: "daily_video", AppID: &daily, TeamID: &suite.teamID},
	}

	for i := range creds {
		creds[i].Key = datatypes.JSON(`{"access_token":"secret"}`)
		suite.Require().Nil(suite.db.Create(&creds[i]))
	}
}

func (suite *RepositoryTestSuite) TearDownTest() {
	suite.Require().Nil(postgrestest.Wipe(suite.db))
}

func (suite *RepositoryTestSuite) TestFindConferencingApps() {
	// Act
	actual, err := suite.repo.FindConferencingApps(context.Background(), suite.userID)

	// Assert
	suite.Require().Nil(err)
	suite.Require().Len(actual, 2)
	for _, c := range actual {
		suite.Require().True(c.IsVideo())
		suite.Require().Equal(suite.userID, *c.UserID)
	}

	// Act
	actual, err = suite.repo.FindConferencingApps(context.Background(), suite.userID+1)

	// Assert
	suite.Require().Nil(err)
	suite.Require().NotNil(actual)
	suite.Require().Empty(actual)
}

func (suite *RepositoryTestSuite) TestFindTeamConferencingApps() {
	// Act
	actual, err := suite.repo.FindTeamConferencingApps(context.Background(), suite.teamID)

	// Assert
	suite.Require().Nil(err)
	suite.Require().Len(actual, 1)
	suite.Require().Equal("daily_video", actual[0].Type)

	// Act
	actual, err = suite.repo.FindTeamConferencingApps(context.Background(), suite.teamID+1)

	// Assert
	suite.Require().Nil(err)
	suite.Require().NotNil(actual)
	suite.Require().Empty(actual)
}

func (suite *RepositoryTestSuite) TestFindGoogleMeet() {
	// Act
	actual, err := suite.repo.FindGoogleMeet(context.Background(), suite.userID)

	// Assert
	suite.Require().Nil(err)
	suite.Require().NotNil(actual)
	suite.Require().Equal(waypoint.GoogleMeetType, actual.Type)

	// Act
	actual, err = suite.repo.FindGoogleMeet(context.Background(), suite.userID+1)

	// Assert
	suite.Require().Nil(err)
	suite.Require().Nil(actual)
}

func (suite *RepositoryTestSuite) TestFindConferencingApp() {
	// Act
	actual, err := suite.repo.FindConferencingApp(context.Background(), suite.userID, "zoom")

	// Assert
	suite.Require().Nil(err)
	suite.Require().NotNil(actual)
	suite.Require().Equal("zoom_video", actual.Type)

	// Act
	actual, err = suite.repo.FindConferencingApp(context.Background(), suite.userID, "daily-video")

	// Assert
	suite.Require().Nil(err)
	suite.Require().Nil(actual)
}

func (suite *RepositoryTestSuite) TestFindTeamConferencingApp() {
	// Act
	actual, err := suite.repo.FindTeamConferencingApp(context.Background(), suite.teamID, "daily-video")

	// Assert
	suite.Require().Nil(err)
	suite.Require().NotNil(actual)
	suite.Require().Equal(suite.teamID, *actual.TeamID)

	// Act
	actual, err = suite.repo.FindTeamConferencingApp(context.Background(), suite.teamID, "zoom")

	// Assert
	suite.Require().Nil(err)
	suite.Require().Nil(actual)
}

func (suite *RepositoryTestSuite) TestCancelled() {
	// Arrange
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Act
	_, err := suite.repo.FindConferencingApps(ctx, suite.userID)

	// Assert
	suite.Require().ErrorIs(err, waypoint.ErrUnexpected)
}

package postgres_test

import (
	"context"
	"time"

	"github.com/lib/pq"
	"github.com/xy-planning-network/waypoint"
	"github.com/xy-planning-network/waypoint/postgres"
	"gorm.io/datatypes"
)

func (suite *DBTestSuite) insertUser(email string) waypoint.User {
	suite.T().Helper()

	u := waypoint.User{Email: email, TimeZone: "America/Denver", WeekStart: "Monday"}
	suite.Require().Nil(suite.db.Create(&u))

	return u
}

func (suite *DBTestSuite) TestPing() {
	suite.Require().Nil(suite.db.Ping(context.Background()))
}

func (suite *DBTestSuite) TestCreate() {
	// Arrange
	u := waypoint.User{Email: "husserl@example.com", TimeZone: "Europe/Berlin", WeekStart: "Monday"}

	// Act
	err := suite.db.Create(&u)

	// Assert
	suite.Require().Nil(err)
	suite.Require().NotZero(u.ID)

	// Act
	err = suite.db.Create(&waypoint.User{Email: "husserl@example.com", TimeZone: "UTC", WeekStart: "Sunday"})

	// Assert
	suite.Require().ErrorIs(err, waypoint.ErrExists)

	// Act
	missing := int64(-1)
	err = suite.db.Create(&waypoint.Schedule{UserID: missing, Name: "Nope"})

	// Assert
	suite.Require().ErrorIs(err, waypoint.ErrNotValid)
}

func (suite *DBTestSuite) TestFirst() {
	// Arrange
	expected := suite.insertUser("husserl@example.com")

	// Act
	var actual waypoint.User
	err := suite.db.Where("email = ?", expected.Email).First(&actual)

	// Assert
	suite.Require().Nil(err)
	suite.Require().Equal(expected.ID, actual.ID)
	suite.Require().Equal("America/Denver", actual.TimeZone)

	// Act
	err = suite.db.Where("email = ?", "nobody@example.com").First(new(waypoint.User))

	// Assert
	suite.Require().ErrorIs(err, waypoint.ErrNotFound)

	// Act
	err = suite.db.Where("id = ?", "husserl").First(new(waypoint.User))

	// Assert
	suite.Require().ErrorIs(err, waypoint.ErrNotValid)
}

func (suite *DBTestSuite) TestFind() {
	// Arrange
	u := suite.insertUser("husserl@example.com")
	for _, typ := range []string{"zoom_video", "google_calendar"} {
		suite.Require().Nil(suite.db.Create(&waypoint.Credential{Type: typ, Key: datatypes.JSON(`{}`), UserID: &u.ID}))
	}

	// Act
	var actual []waypoint.Credential
	err := suite.db.Where(`"userId" = ?`, u.ID).Order("id").Find(&actual)

	// Assert
	suite.Require().Nil(err)
	suite.Require().Len(actual, 2)
	suite.Require().Equal("zoom_video", actual[0].Type)

	// Act
	actual = nil
	err = suite.db.Where(`"userId" = ?`, u.ID+1).Find(&actual)

	// Assert
	suite.Require().ErrorIs(err, waypoint.ErrNotFound)
	suite.Require().Empty(actual)
}

func (suite *DBTestSuite) TestPreload() {
	// Arrange
	u := suite.insertUser("husserl@example.com")
	for _, name := range []string{"Working Hours", "Weekends"} {
		s := waypoint.Schedule{UserID: u.ID, Name: name}
		suite.Require().Nil(suite.db.Create(&s))

		start, err := waypoint.NewTimeOfDay("09:00")
		suite.Require().Nil(err)
		end, err := waypoint.NewTimeOfDay("17:30:00")
		suite.Require().Nil(err)

		a := waypoint.Availability{UserID: &u.ID, ScheduleID: &s.ID, Days: pq.Int64Array{1, 2, 3}, StartTime: start, EndTime: end}
		suite.Require().Nil(suite.db.Create(&a))
	}

	byID := func(dbx *postgres.DB) *postgres.DB { return dbx.Order("id") }

	// Act
	var actual waypoint.User
	err := suite.db.
		Preload("Schedules", byID).
		Preload("Schedules.Availability", byID).
		Where("id = ?", u.ID).
		First(&actual)

	// Assert
	suite.Require().Nil(err)
	suite.Require().Len(actual.Schedules, 2)
	suite.Require().Equal("Working Hours", actual.Schedules[0].Name)
	suite.Require().Len(actual.Schedules[0].Availability, 1)
	suite.Require().Equal(pq.Int64Array{1, 2, 3}, actual.Schedules[0].Availability[0].Days)
	suite.Require().Equal("17:30:00", actual.Schedules[0].Availability[0].EndTime.String())
}

func (suite *DBTestSuite) TestWithContext() {
	// Arrange
	suite.insertUser("husserl@example.com")
	ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()
	time.Sleep(time.Millisecond)

	// Act
	err := suite.db.WithContext(ctx).Where("email = ?", "husserl@example.com").First(new(waypoint.User))

	// Assert
	suite.Require().ErrorIs(err, waypoint.ErrUnexpected)
}

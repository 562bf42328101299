package waypoint

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"
)

// An Availability is a bookable window on the given days of the week.
// A non-nil Date marks the window as an override for that specific date.
type Availability struct {
	ID         int64         `gorm:"primaryKey"`
	UserID     *int64        `gorm:"column:userId"`
	ScheduleID *int64        `gorm:"column:scheduleId"`
	Days       pq.Int64Array `gorm:"column:days;type:integer[]"`
	StartTime  TimeOfDay     `gorm:"column:startTime;type:time"`
	EndTime    TimeOfDay     `gorm:"column:endTime;type:time"`
	Date       *time.Time    `gorm:"column:date;type:date"`
}

func (Availability) TableName() string { return "Availability" }

const timeOfDayLayout = "15:04:05"

// A TimeOfDay is a wall clock time without a date or zone,
// stored in a PostgreSQL "time without time zone" column.
//
// TimeOfDay marshals to JSON as a timestamp on 1970-01-01 UTC,
// e.g., "1970-01-01T09:00:00.000Z".
type TimeOfDay struct {
	Hour, Minute, Second int
}

// NewTimeOfDay parses s, formatted as HH:MM or HH:MM:SS, into a TimeOfDay.
func NewTimeOfDay(s string) (TimeOfDay, error) {
	layout := timeOfDayLayout
	if strings.Count(s, ":") == 1 {
		layout = "15:04"
	}

	if i := strings.IndexByte(s, '.'); i > 0 {
		s = s[:i]
	}

	t, err := time.Parse(layout, s)
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("%w: time of day %q: %s", ErrNotValid, s, err)
	}

	return TimeOfDay{t.Hour(), t.Minute(), t.Second()}, nil
}

// String formats the TimeOfDay as HH:MM:SS.
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
}

// Time places the TimeOfDay on 1970-01-01 UTC.
func (t TimeOfDay) Time() time.Time {
	return time.Date(1970, time.January, 1, t.Hour, t.Minute, t.Second, 0, time.UTC)
}

// MarshalJSON implements [encoding/json.Marshaler].
func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Time().Format("2006-01-02T15:04:05.000Z"))
}

// Scan implements [database/sql.Scanner].
func (t *TimeOfDay) Scan(src any) error {
	var err error
	switch v := src.(type) {
	case time.Time:
		*t = TimeOfDay{v.Hour(), v.Minute(), v.Second()}
	case string:
		*t, err = NewTimeOfDay(v)
	case []byte:
		*t, err = NewTimeOfDay(string(v))
	case nil:
		*t = TimeOfDay{}
	default:
		err = fmt.Errorf("%w: cannot scan %T into TimeOfDay", ErrNotValid, src)
	}

	return err
}

// Value implements [database/sql/driver.Valuer].
func (t TimeOfDay) Value() (driver.Value, error) { return t.String(), nil }
